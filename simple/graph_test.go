package simple

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/hupe1980/graphapi/graph"
	"github.com/hupe1980/graphapi/schema"
	"github.com/hupe1980/graphapi/testutil"
	"github.com/hupe1980/graphapi/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tGraph = Graph[testutil.Vertex, testutil.Edge]

var (
	_ graph.MutableGraph[testutil.Vertex, testutil.Edge] = (*tGraph)(nil)
	_ graph.Remover[testutil.Vertex, testutil.Edge]      = (*tGraph)(nil)
	_ graph.Clearer                                      = (*tGraph)(nil)
)

func newGraph(t *testing.T, opts ...Option) (*tGraph, testutil.Indexes) {
	t.Helper()
	s, ix := testutil.Schema()
	return New(s, opts...), ix
}

func vertices(t *testing.T, g *tGraph, search graph.VertexSearch) []graph.VertexID {
	t.Helper()
	it, err := g.Vertices(search)
	require.NoError(t, err)
	return graph.CollectVertices(it)
}

func edges(t *testing.T, g *tGraph, id graph.VertexID, search graph.EdgeSearch) []graph.EdgeID {
	t.Helper()
	it, err := g.Edges(id, search)
	require.NoError(t, err)
	return graph.CollectEdges(it)
}

func TestAddAndGet(t *testing.T) {
	g, _ := newGraph(t)
	refs := testutil.Populate(g)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())

	bryn, ok := g.Vertex(refs.Bryn)
	require.True(t, ok)
	assert.Equal(t, "Bryn", bryn.Payload().Name)
	assert.Equal(t, refs.Bryn, bryn.ID())

	e, ok := g.Edge(refs.BrynKnowsJulia)
	require.True(t, ok)
	assert.Equal(t, int64(1999), e.Payload().Since)
	assert.Equal(t, refs.Bryn, e.Tail())
	assert.Equal(t, refs.Julia, e.Head())

	_, ok = g.Vertex(graph.VertexID{Label: testutil.LabelPerson, Slot: 99})
	assert.False(t, ok)
	_, ok = g.Vertex(graph.VertexID{Label: 42})
	assert.False(t, ok)
}

func TestAddEdgeUnknownEndpoint(t *testing.T) {
	g, _ := newGraph(t)
	bryn := g.AddVertex(testutil.Person("Bryn", 45, "bryn", ""))
	ghost := graph.VertexID{Label: testutil.LabelPerson, Slot: 7}

	_, err := g.AddEdge(bryn, ghost, testutil.Knows(2000))
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = g.AddEdge(ghost, bryn, testutil.Knows(2000))
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddVertexUnknownLabelPanics(t *testing.T) {
	g, _ := newGraph(t)
	assert.Panics(t, func() { g.AddVertex(testutil.Vertex{Kind: 17}) })
}

func TestIndexRoundTrip(t *testing.T) {
	g, ix := newGraph(t)

	want := make(map[string]graph.VertexID)
	for i := 0; i < 50; i++ {
		name := fmt.Sprintf("person-%02d", i)
		want[name] = g.AddVertex(testutil.Person(name, uint64(i), name, ""))
	}

	for name, id := range want {
		got := vertices(t, g, graph.VertexIndex(ix.PersonName, value.String(name)))
		assert.Equal(t, []graph.VertexID{id}, got, name)

		got = vertices(t, g, graph.VertexIndex(ix.PersonUsername, value.String(name)))
		assert.Equal(t, []graph.VertexID{id}, got, name)
	}
	assert.Empty(t, vertices(t, g, graph.VertexIndex(ix.PersonName, value.String("nobody"))))
}

func TestRangeLookup(t *testing.T) {
	g, ix := newGraph(t)

	byAge := make(map[uint64]graph.VertexID)
	for i, age := range []uint64{20, 28, 34, 45, 48, 60} {
		byAge[age] = g.AddVertex(testutil.Person(fmt.Sprint("p", i), age, fmt.Sprint("u", i), ""))
	}

	got := vertices(t, g, graph.VertexRange(ix.PersonAge, value.Between(value.Uint(30), value.Uint(50))))
	assert.ElementsMatch(t, []graph.VertexID{byAge[34], byAge[45], byAge[48]}, got)

	got = vertices(t, g, graph.VertexIndex(ix.PersonAge, value.Uint(45)))
	assert.Equal(t, []graph.VertexID{byAge[45]}, got)

	got = vertices(t, g, graph.VertexRange(ix.PersonAge, value.Full()).WithLimit(2))
	assert.Equal(t, []graph.VertexID{byAge[20], byAge[28]}, got)
}

func TestFullTextSearch(t *testing.T) {
	g, ix := newGraph(t)
	phone := g.AddVertex(testutil.Person("a", 1, "a", "phone"))
	g.AddVertex(testutil.Person("b", 2, "b", "telescope"))

	assert.Equal(t, []graph.VertexID{phone}, vertices(t, g, graph.VertexFullText(ix.PersonBiography, "fone")))
	assert.Empty(t, vertices(t, g, graph.VertexFullText(ix.PersonBiography, "banana")))
	assert.Empty(t, vertices(t, g, graph.VertexFullText(ix.PersonBiography, "")))
}

func TestLabelAndScan(t *testing.T) {
	g, _ := newGraph(t)
	refs := testutil.Populate(g)

	assert.Equal(t, []graph.VertexID{refs.Bryn, refs.Julia}, vertices(t, g, graph.VertexLabel(testutil.LabelPerson)))
	assert.Equal(t, []graph.VertexID{refs.Rust}, vertices(t, g, graph.VertexLabel(testutil.LabelRust)))
	assert.Equal(t,
		[]graph.VertexID{refs.Bryn, refs.Julia, refs.GraphAPI, refs.Rust},
		vertices(t, g, graph.ScanVertices()))
	assert.Equal(t, []graph.VertexID{refs.Bryn}, vertices(t, g, graph.ScanVertices().WithLimit(1)))
	assert.Empty(t, vertices(t, g, graph.ScanVertices().WithLimit(0)))
}

func TestVerticesRejectsInvalidSearch(t *testing.T) {
	g, ix := newGraph(t)

	_, err := g.Vertices(graph.VertexRange(ix.PersonName, value.Full()))
	assert.ErrorIs(t, err, graph.ErrUnsupported)

	_, err = g.Vertices(graph.VertexIndex(ix.PersonName, value.String("x")).Labelled(testutil.LabelProject))
	assert.ErrorIs(t, err, graph.ErrInvalidSearch)

	// An index of another schema with the same ordinal but a different kind.
	other := schema.NewBuilder[testutil.Vertex, testutil.Edge]().VertexLabels("P").EdgeLabels("E")
	foreign := other.VertexIndex("foreign", 0, schema.Ordered, value.KindUint,
		func(testutil.Vertex) (value.Value, bool) { return value.Value{}, false })
	other.MustBuild()
	_, err = g.Vertices(graph.VertexIndex(foreign, value.Uint(1)))
	assert.ErrorIs(t, err, graph.ErrInvalidSearch)
}

func TestVerticesRejectsKeyKindMismatch(t *testing.T) {
	g, ix := newGraph(t)
	rng := testutil.NewRNG(7)
	rng.RandomPeople(g, 10)

	tests := []struct {
		name   string
		search graph.VertexSearch
	}{
		{"range lower bound", graph.VertexRange(ix.PersonAge, value.From(value.Int(30)))},
		{"range upper bound", graph.VertexRange(ix.PersonAge, value.Until(value.String("50")))},
		{"ordered point lookup", graph.VertexIndex(ix.PersonAge, value.Int(45))},
		{"hash point lookup", graph.VertexIndex(ix.PersonName, value.Uint(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Vertices(tt.search)
			assert.ErrorIs(t, err, graph.ErrInvalidSearch)

			_, err = g.Walk().Vertices(tt.search).Count()
			assert.ErrorIs(t, err, graph.ErrInvalidSearch)
		})
	}

	n, err := g.Walk().Vertices(graph.VertexRange(ix.PersonAge, value.From(value.Uint(0)))).Count()
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

func TestEdgeSearches(t *testing.T) {
	g, _ := newGraph(t)
	refs := testutil.Populate(g)

	tests := []struct {
		name   string
		at     graph.VertexID
		search graph.EdgeSearch
		want   []graph.EdgeID
	}{
		{"all of bryn", refs.Bryn, graph.ScanEdges(),
			[]graph.EdgeID{refs.BrynKnowsJulia, refs.BrynCreatedGraphAPI, refs.JuliaKnowsBryn}},
		{"outgoing of bryn", refs.Bryn, graph.ScanEdges().Outgoing(),
			[]graph.EdgeID{refs.BrynKnowsJulia, refs.BrynCreatedGraphAPI}},
		{"incoming of bryn", refs.Bryn, graph.ScanEdges().Incoming(),
			[]graph.EdgeID{refs.JuliaKnowsBryn}},
		{"created by bryn", refs.Bryn, graph.EdgeLabel(testutil.LabelCreated),
			[]graph.EdgeID{refs.BrynCreatedGraphAPI}},
		{"to projects", refs.Bryn, graph.ScanEdges().AdjacentLabelled(testutil.LabelProject),
			[]graph.EdgeID{refs.BrynCreatedGraphAPI}},
		{"knows to projects", refs.Bryn, graph.EdgeLabel(testutil.LabelKnows).AdjacentLabelled(testutil.LabelProject),
			nil},
		{"incoming knows from people", refs.Bryn, graph.EdgeLabel(testutil.LabelKnows).Incoming().AdjacentLabelled(testutil.LabelPerson),
			[]graph.EdgeID{refs.JuliaKnowsBryn}},
		{"limited", refs.Bryn, graph.ScanEdges().WithLimit(1),
			[]graph.EdgeID{refs.BrynKnowsJulia}},
		{"language of project", refs.GraphAPI, graph.ScanEdges().Outgoing(),
			[]graph.EdgeID{refs.GraphAPILanguageRust}},
		{"unknown vertex", graph.VertexID{Label: testutil.LabelRust, Slot: 9}, graph.ScanEdges(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, edges(t, g, tt.at, tt.search))
		})
	}
}

func TestSelfLoop(t *testing.T) {
	g, _ := newGraph(t)
	v := g.AddVertex(testutil.Person("Narcissus", 30, "n", ""))

	id, err := g.AddEdge(v, v, testutil.Knows(2001))
	require.NoError(t, err)

	assert.Equal(t, []graph.EdgeID{id}, edges(t, g, v, graph.ScanEdges().Outgoing()))
	assert.Equal(t, []graph.EdgeID{id}, edges(t, g, v, graph.ScanEdges().Incoming()))
	assert.Equal(t, []graph.EdgeID{id, id}, edges(t, g, v, graph.ScanEdges()))

	_, ok := g.RemoveVertex(v)
	require.True(t, ok)
	assert.Equal(t, 0, g.EdgeCount())

	v = g.AddVertex(testutil.Person("Echo", 30, "e", ""))
	id, err = g.AddEdge(v, v, testutil.Knows(2002))
	require.NoError(t, err)
	_, ok = g.RemoveEdge(id)
	require.True(t, ok)
	assert.Empty(t, edges(t, g, v, graph.ScanEdges()))
}

func TestRemoveVertexCascades(t *testing.T) {
	g, ix := newGraph(t)
	refs := testutil.Populate(g)

	removed, ok := g.RemoveVertex(refs.Bryn)
	require.True(t, ok)
	assert.Equal(t, "Bryn", removed.Name)

	_, ok = g.RemoveVertex(refs.Bryn)
	assert.False(t, ok)

	assert.ElementsMatch(t,
		[]graph.VertexID{refs.Julia, refs.GraphAPI, refs.Rust},
		vertices(t, g, graph.ScanVertices()))
	assert.Equal(t, 1, g.EdgeCount())

	for _, id := range []graph.EdgeID{refs.BrynKnowsJulia, refs.JuliaKnowsBryn, refs.BrynCreatedGraphAPI} {
		_, ok := g.Edge(id)
		assert.False(t, ok, id.String())
	}
	_, ok = g.Edge(refs.GraphAPILanguageRust)
	assert.True(t, ok)

	assert.Empty(t, edges(t, g, refs.Julia, graph.ScanEdges()))
	assert.Equal(t, []graph.EdgeID{refs.GraphAPILanguageRust}, edges(t, g, refs.GraphAPI, graph.ScanEdges()))

	assert.Empty(t, vertices(t, g, graph.VertexIndex(ix.PersonName, value.String("Bryn"))))
	assert.Empty(t, vertices(t, g, graph.VertexFullText(ix.PersonBiography, "graph")))
}

func TestRemoveEdge(t *testing.T) {
	g, _ := newGraph(t)
	refs := testutil.Populate(g)

	e, ok := g.RemoveEdge(refs.BrynKnowsJulia)
	require.True(t, ok)
	assert.Equal(t, int64(1999), e.Since)

	_, ok = g.RemoveEdge(refs.BrynKnowsJulia)
	assert.False(t, ok)

	assert.Equal(t, []graph.EdgeID{refs.BrynCreatedGraphAPI}, edges(t, g, refs.Bryn, graph.ScanEdges().Outgoing()))
	assert.Empty(t, edges(t, g, refs.Julia, graph.ScanEdges().Incoming()))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestStaleEdgeIDAfterSlotReuse(t *testing.T) {
	g, _ := newGraph(t)
	refs := testutil.Populate(g)

	_, ok := g.RemoveEdge(refs.BrynKnowsJulia)
	require.True(t, ok)

	reused, err := g.AddEdge(refs.Julia, refs.GraphAPI, testutil.Knows(2020))
	require.NoError(t, err)
	assert.Equal(t, refs.BrynKnowsJulia.Slot, reused.Slot)

	_, ok = g.Edge(refs.BrynKnowsJulia)
	assert.False(t, ok)
	_, ok = g.RemoveEdge(refs.BrynKnowsJulia)
	assert.False(t, ok)
	_, ok = g.Edge(reused)
	assert.True(t, ok)
}

func TestVertexSlotReuse(t *testing.T) {
	g, ix := newGraph(t)
	a := g.AddVertex(testutil.Person("a", 1, "a", ""))
	g.AddVertex(testutil.Person("b", 2, "b", ""))

	_, ok := g.RemoveVertex(a)
	require.True(t, ok)
	_, ok = g.Vertex(a)
	assert.False(t, ok)

	c := g.AddVertex(testutil.Person("c", 3, "c", ""))
	assert.Equal(t, a, c)
	assert.Empty(t, vertices(t, g, graph.VertexIndex(ix.PersonName, value.String("a"))))
	assert.Equal(t, []graph.VertexID{c}, vertices(t, g, graph.VertexIndex(ix.PersonName, value.String("c"))))
}

func TestVertexMutUpdateReindexes(t *testing.T) {
	g, ix := newGraph(t)
	refs := testutil.Populate(g)

	m, ok := g.VertexMut(refs.Bryn)
	require.True(t, ok)
	m.Update(func(v *testutil.Vertex) {
		v.Age = 21
		v.Name = "Brynn"
	})

	assert.Equal(t, uint64(21), m.Payload().Age)
	assert.Empty(t, vertices(t, g, graph.VertexIndex(ix.PersonName, value.String("Bryn"))))
	assert.Equal(t, []graph.VertexID{refs.Bryn}, vertices(t, g, graph.VertexIndex(ix.PersonName, value.String("Brynn"))))
	assert.Equal(t,
		[]graph.VertexID{refs.Julia},
		vertices(t, g, graph.VertexRange(ix.PersonAge, value.Between(value.Uint(30), value.Uint(50)))))

	assert.Panics(t, func() {
		m.Update(func(v *testutil.Vertex) { v.Kind = testutil.LabelProject })
	})
}

func TestVertexMutUpdateWithListener(t *testing.T) {
	g, ix := newGraph(t)
	refs := testutil.Populate(g)

	m, ok := g.VertexMut(refs.Julia)
	require.True(t, ok)
	m.UpdateWith(func(v *testutil.Vertex, l schema.MutationListener) {
		ix.SetAge(v, l, 31)
		ix.SetBiography(v, l, "phone")
	})

	assert.Equal(t, []graph.VertexID{refs.Julia}, vertices(t, g, graph.VertexIndex(ix.PersonAge, value.Uint(31))))
	assert.Empty(t, vertices(t, g, graph.VertexIndex(ix.PersonAge, value.Uint(48))))
	assert.Equal(t, []graph.VertexID{refs.Julia}, vertices(t, g, graph.VertexFullText(ix.PersonBiography, "fone")))
	assert.Empty(t, vertices(t, g, graph.VertexFullText(ix.PersonBiography, "English")))
}

func TestEdgeMut(t *testing.T) {
	g, _ := newGraph(t)
	refs := testutil.Populate(g)

	m, ok := g.EdgeMut(refs.BrynKnowsJulia)
	require.True(t, ok)
	m.Update(func(e *testutil.Edge) { e.Since = 2005 })

	e, ok := g.Edge(refs.BrynKnowsJulia)
	require.True(t, ok)
	assert.Equal(t, int64(2005), e.Payload().Since)
}

func TestClear(t *testing.T) {
	g, ix := newGraph(t)
	testutil.Populate(g)

	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, vertices(t, g, graph.ScanVertices()))
	assert.Empty(t, vertices(t, g, graph.VertexIndex(ix.PersonName, value.String("Bryn"))))

	refs := testutil.Populate(g)
	assert.Equal(t, uint32(0), refs.Bryn.Slot)
	assert.Equal(t, []graph.VertexID{refs.Bryn}, vertices(t, g, graph.VertexIndex(ix.PersonName, value.String("Bryn"))))
}

func TestRandomGraphInvariants(t *testing.T) {
	g, _ := newGraph(t)
	rng := testutil.NewRNG(4711)
	ids := rng.RandomPeople(g, 200)
	require.Equal(t, 199, g.EdgeCount())

	removed := make(map[graph.VertexID]bool)
	for i := 0; i < 50; i++ {
		id := ids[rng.Intn(len(ids))]
		if removed[id] {
			continue
		}
		_, ok := g.RemoveVertex(id)
		require.True(t, ok)
		removed[id] = true
	}

	total := 0
	for _, id := range vertices(t, g, graph.ScanVertices()) {
		require.False(t, removed[id])
		out := edges(t, g, id, graph.ScanEdges().Outgoing())
		total += len(out)
		for _, e := range out {
			assert.False(t, removed[e.Head], "edge %s points at a removed vertex", e)

			// Every outgoing entry has its mirror at the head.
			in := edges(t, g, e.Head, graph.ScanEdges().Incoming())
			assert.Contains(t, in, e)
		}
	}
	assert.Equal(t, g.EdgeCount(), total)
}

type countingCollector struct {
	NoopMetricsCollector
	adds, edges, removes, cascaded, indexUpdates int
	searches                                     []string
}

func (c *countingCollector) RecordAddVertex(time.Duration)      { c.adds++ }
func (c *countingCollector) RecordAddEdge(time.Duration, error) { c.edges++ }
func (c *countingCollector) RecordRemoveVertex(n int, _ time.Duration) {
	c.removes++
	c.cascaded += n
}
func (c *countingCollector) RecordIndexUpdate(string) { c.indexUpdates++ }
func (c *countingCollector) RecordSearch(kind string, _ error) {
	c.searches = append(c.searches, kind)
}

func TestMetricsCollector(t *testing.T) {
	mc := &countingCollector{}
	g, ix := newGraph(t, WithMetricsCollector(mc), WithCapacity(4))
	refs := testutil.Populate(g)

	_, _ = g.Vertices(graph.VertexIndex(ix.PersonName, value.String("Bryn")))
	_, _ = g.Vertices(graph.VertexRange(ix.PersonName, value.Full()))
	_, _ = g.Edges(refs.Bryn, graph.ScanEdges())

	m, _ := g.VertexMut(refs.Bryn)
	m.Update(func(v *testutil.Vertex) { v.Age++ })
	g.RemoveVertex(refs.Bryn)

	assert.Equal(t, 4, mc.adds)
	assert.Equal(t, 4, mc.edges)
	assert.Equal(t, 1, mc.removes)
	assert.Equal(t, 3, mc.cascaded)
	assert.Equal(t, 1, mc.indexUpdates)
	sort.Strings(mc.searches)
	assert.Equal(t, []string{"edges", "index", "invalid"}, mc.searches)
}

func TestReferenceDataset(t *testing.T) {
	g, ix := newGraph(t)
	refs := testutil.Populate(g)

	byName, err := g.Walk().Vertices(graph.VertexIndex(ix.PersonName, value.String("Bryn"))).Collect()
	require.NoError(t, err)
	assert.Equal(t, []graph.VertexID{refs.Bryn}, byName)

	byAge, err := g.Walk().Vertices(graph.VertexRange(ix.PersonAge, value.Between(value.Uint(30), value.Uint(50)))).Collect()
	require.NoError(t, err)
	assert.ElementsMatch(t, []graph.VertexID{refs.Bryn, refs.Julia}, byAge)

	out, err := g.Walk().VerticesByID(refs.Bryn).Edges(graph.ScanEdges().Outgoing()).Collect()
	require.NoError(t, err)
	assert.ElementsMatch(t, []graph.EdgeID{refs.BrynKnowsJulia, refs.BrynCreatedGraphAPI}, out)

	_, ok := g.RemoveVertex(refs.Bryn)
	require.True(t, ok)

	assert.ElementsMatch(t,
		[]graph.VertexID{refs.Julia, refs.GraphAPI, refs.Rust},
		vertices(t, g, graph.ScanVertices()))

	var surviving []graph.EdgeID
	for _, id := range vertices(t, g, graph.ScanVertices()) {
		surviving = append(surviving, edges(t, g, id, graph.ScanEdges().Outgoing())...)
	}
	assert.Equal(t, []graph.EdgeID{refs.GraphAPILanguageRust}, surviving)

	// Two hops in both directions from every survivor never reach Bryn.
	for _, start := range []graph.VertexID{refs.Julia, refs.GraphAPI, refs.Rust} {
		reached, err := g.Walk().
			VerticesByID(start).
			Edges(graph.ScanEdges().Outgoing()).Head().
			Edges(graph.ScanEdges().Incoming()).Tail().
			Collect()
		require.NoError(t, err)
		assert.NotContains(t, reached, refs.Bryn)
	}
}

func TestIteratorsSurviveWritesBetweenPulls(t *testing.T) {
	g, ix := newGraph(t)
	refs := testutil.Populate(g)

	it, err := g.Edges(refs.Bryn, graph.ScanEdges().Outgoing())
	require.NoError(t, err)
	first, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, refs.BrynKnowsJulia, first)

	_, ok = g.RemoveEdge(refs.BrynCreatedGraphAPI)
	require.True(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)

	vit, err := g.Vertices(graph.VertexRange(ix.PersonAge, value.Full()))
	require.NoError(t, err)
	v, ok := vit.Next()
	require.True(t, ok)
	assert.Equal(t, refs.Bryn, v)

	_, ok = g.RemoveVertex(refs.Julia)
	require.True(t, ok)
	_, ok = vit.Next()
	assert.False(t, ok)
}
