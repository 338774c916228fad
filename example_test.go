package graphapi_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/graphapi"
	"github.com/hupe1980/graphapi/graph"
	"github.com/hupe1980/graphapi/schema"
	"github.com/hupe1980/graphapi/testutil"
	"github.com/hupe1980/graphapi/value"
	"github.com/hupe1980/graphapi/walker"
)

type person = graph.VertexRef[testutil.Vertex]

// Example demonstrates a range lookup followed by an edge hop.
func Example() {
	s, ix := testutil.Schema()
	g := graphapi.New(s)
	testutil.Populate(g)

	names, err := walker.MapVertices(
		g.Walk().
			Vertices(graph.VertexRange(ix.PersonAge, value.Between(value.Uint(30), value.Uint(50)))).
			Edges(graph.EdgeLabel(testutil.LabelKnows).Outgoing()).
			Head(),
		func(v person, _ *walker.Context) string { return v.Payload().Name },
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(names)
	// Output: [Julia Bryn]
}

// Example_fullText demonstrates a phonetic full-text search.
func Example_fullText() {
	s, ix := testutil.Schema()
	g := graphapi.New(s)
	testutil.Populate(g)

	names, err := walker.MapVertices(
		g.Walk().Vertices(graph.VertexFullText(ix.PersonBiography, "graf")),
		func(v person, _ *walker.Context) string { return v.Payload().Name },
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(names)
	// Output: [Bryn]
}

// Example_detour demonstrates keeping vertices based on a sub-walk.
func Example_detour() {
	s, _ := testutil.Schema()
	g := graphapi.New(s)
	testutil.Populate(g)

	creators, err := g.Walk().
		Vertices(graph.VertexLabel(testutil.LabelPerson)).
		Detour(func(sub *walker.VertexBuilder[testutil.Vertex, testutil.Edge, graph.Graph[testutil.Vertex, testutil.Edge]]) walker.Path[testutil.Vertex, testutil.Edge] {
			return sub.Edges(graph.EdgeLabel(testutil.LabelCreated).Outgoing())
		}).
		Count()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("creators:", creators)
	// Output: creators: 1
}

// Example_mutate demonstrates updating indexed fields from a walk.
func Example_mutate() {
	s, ix := testutil.Schema()
	g := graphapi.New(s)
	testutil.Populate(g)

	n, err := walker.MutateVertices(
		g.WalkMut().Vertices(graph.VertexLabel(testutil.LabelPerson)),
		func(mg graph.MutableGraph[testutil.Vertex, testutil.Edge], id graph.VertexID, _ *walker.Context) {
			m, _ := mg.VertexMut(id)
			m.UpdateWith(func(v *testutil.Vertex, l schema.MutationListener) {
				ix.SetAge(v, l, v.Age+10)
			})
		},
	)
	if err != nil {
		log.Fatal(err)
	}

	over50, _ := g.Walk().Vertices(graph.VertexRange(ix.PersonAge, value.From(value.Uint(50)))).Count()
	fmt.Printf("updated %d, over 50: %d\n", n, over50)
	// Output: updated 2, over 50: 2
}

// Example_metrics demonstrates collecting store metrics.
func Example_metrics() {
	metrics := &graphapi.BasicMetricsCollector{}
	s, _ := testutil.Schema()
	g := graphapi.New(s, graphapi.WithMetricsCollector(metrics))
	refs := testutil.Populate(g)

	g.RemoveVertex(refs.Bryn)

	stats := metrics.GetStats()
	fmt.Printf("vertices: %d, edges: %d, cascaded: %d\n", stats.AddVertexCount, stats.AddEdgeCount, stats.CascadedEdges)
	// Output: vertices: 4, edges: 4, cascaded: 3
}

// Example_unsupported demonstrates the error returned for a search the
// index cannot serve.
func Example_unsupported() {
	s, ix := testutil.Schema()
	g := graphapi.New(s)

	_, err := g.Walk().Vertices(graph.VertexRange(ix.PersonName, value.Full())).Collect()

	var ue *graphapi.UnsupportedError
	fmt.Println(errors.Is(err, graphapi.ErrUnsupported), errors.As(err, &ue))
	// Output: true true
}
