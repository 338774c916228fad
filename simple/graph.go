package simple

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hupe1980/graphapi/graph"
	"github.com/hupe1980/graphapi/internal/index"
	"github.com/hupe1980/graphapi/internal/logging"
	"github.com/hupe1980/graphapi/schema"
	"github.com/hupe1980/graphapi/value"
	"github.com/hupe1980/graphapi/walker"
)

// Graph is an in-memory property graph partitioned by label.
//
// Each vertex label owns a partition of (payload, adjacency set) pairs and
// each edge label a partition of payloads, both addressed by stable slots.
// Every schema index has its own storage, kept in sync with the indexed
// fields on insert, update and removal.
//
// Graph is not safe for concurrent use.
type Graph[V, E schema.Element] struct {
	schema   *schema.Schema[V, E]
	vertices []*labelledVertices[V]
	edges    []*labelledEdges[E]
	indexes  []index.Storage

	logger    *logging.Logger
	dbgLogger *slog.Logger
	metrics   MetricsCollector
}

// New creates an empty graph for schema s.
func New[V, E schema.Element](s *schema.Schema[V, E], optFns ...Option) *Graph[V, E] {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	g := &Graph[V, E]{
		schema:    s,
		vertices:  make([]*labelledVertices[V], s.VertexLabelCount()),
		edges:     make([]*labelledEdges[E], s.EdgeLabelCount()),
		indexes:   make([]index.Storage, len(s.Indexes())),
		logger:    logging.Wrap(opts.logger),
		dbgLogger: opts.logger,
		metrics:   opts.metrics,
	}
	for i := range g.vertices {
		g.vertices[i] = newLabelledVertices[V](opts.capacity)
	}
	for i := range g.edges {
		g.edges[i] = newLabelledEdges[E](opts.capacity)
	}
	for _, idx := range s.Indexes() {
		g.indexes[idx.Ordinal()] = index.New(idx.Kind())
	}

	g.logger.Debug("graph created",
		"vertex_labels", len(g.vertices),
		"edge_labels", len(g.edges),
		"indexes", len(g.indexes),
	)
	return g
}

// Schema returns the schema the graph was created with.
func (g *Graph[V, E]) Schema() *schema.Schema[V, E] { return g.schema }

// Capabilities implements graph.Graph. Graph supports every capability.
func (g *Graph[V, E]) Capabilities() graph.Capabilities { return graph.AllCapabilities }

// Walk starts a read-only walk over the graph.
func (g *Graph[V, E]) Walk() *walker.Start[V, E, graph.Graph[V, E]] {
	return walker.Walk[V, E](g).WithLogger(g.dbgLogger)
}

// WalkMut starts a walk that may end in a mutation.
func (g *Graph[V, E]) WalkMut() *walker.Start[V, E, graph.MutableGraph[V, E]] {
	return walker.WalkMut[V, E](g).WithLogger(g.dbgLogger)
}

// VertexCount returns the number of live vertices.
func (g *Graph[V, E]) VertexCount() int {
	n := 0
	for _, lv := range g.vertices {
		n += lv.slots.Len()
	}
	return n
}

// EdgeCount returns the number of live edges.
func (g *Graph[V, E]) EdgeCount() int {
	n := 0
	for _, le := range g.edges {
		n += le.slots.Len()
	}
	return n
}

// AddVertex implements graph.MutableGraph. It panics if v's label is not
// part of the schema.
func (g *Graph[V, E]) AddVertex(v V) graph.VertexID {
	start := time.Now()
	l := v.Label()
	slot, stored := g.vertexPartition(l).add(v)
	id := graph.VertexID{Label: l, Slot: slot}
	g.insertIndexes(id, stored.payload)

	g.metrics.RecordAddVertex(time.Since(start))
	g.logger.LogAddVertex(logCtx, id, g.schema.VertexLabelName(l))
	return id
}

// AddEdge implements graph.MutableGraph.
func (g *Graph[V, E]) AddEdge(tail, head graph.VertexID, e E) (graph.EdgeID, error) {
	start := time.Now()
	if _, ok := g.vertex(tail); !ok {
		err := fmt.Errorf("%w: tail %s", graph.ErrVertexNotFound, tail)
		g.metrics.RecordAddEdge(time.Since(start), err)
		g.logger.LogAddEdge(logCtx, graph.EdgeID{}, err)
		return graph.EdgeID{}, err
	}
	if _, ok := g.vertex(head); !ok {
		err := fmt.Errorf("%w: head %s", graph.ErrVertexNotFound, head)
		g.metrics.RecordAddEdge(time.Since(start), err)
		g.logger.LogAddEdge(logCtx, graph.EdgeID{}, err)
		return graph.EdgeID{}, err
	}

	l := e.Label()
	slot := g.edgePartition(l).slots.Push(e)
	id := graph.EdgeID{Label: l, Slot: slot, Tail: tail, Head: head}

	out := adjacency{dir: dirOut, edgeLabel: l, vertexLabel: head.Label, edgeSlot: slot, vertexSlot: head.Slot}
	g.vertices[tail.Label].addAdjacency(tail.Slot, out)
	g.vertices[head.Label].addAdjacency(head.Slot, out.mirror(tail))

	g.metrics.RecordAddEdge(time.Since(start), nil)
	g.logger.LogAddEdge(logCtx, id, nil)
	return id, nil
}

// Vertex implements graph.Graph.
func (g *Graph[V, E]) Vertex(id graph.VertexID) (graph.VertexRef[V], bool) {
	v, ok := g.vertex(id)
	if !ok {
		return graph.VertexRef[V]{}, false
	}
	return graph.NewVertexRef(id, v.payload), true
}

// VertexMut implements graph.MutableGraph.
func (g *Graph[V, E]) VertexMut(id graph.VertexID) (graph.VertexMut[V], bool) {
	v, ok := g.vertex(id)
	if !ok {
		return graph.VertexMut[V]{}, false
	}
	apply := func(fn func(*V)) { g.update(id, v, fn) }
	return graph.NewVertexMut(id, &v.payload, g.listener(id), apply), true
}

// Edge implements graph.Graph. Ids whose slot was reused by a different
// edge are reported as missing.
func (g *Graph[V, E]) Edge(id graph.EdgeID) (graph.EdgeRef[E], bool) {
	if !g.edgeLive(id) {
		return graph.EdgeRef[E]{}, false
	}
	e, _ := g.edges[id.Label].slots.Get(id.Slot)
	return graph.NewEdgeRef(id, e), true
}

// EdgeMut implements graph.MutableGraph. The reference is invalidated by the
// next AddEdge.
func (g *Graph[V, E]) EdgeMut(id graph.EdgeID) (graph.EdgeMut[E], bool) {
	if !g.edgeLive(id) {
		return graph.EdgeMut[E]{}, false
	}
	e, ok := g.edges[id.Label].slots.GetMut(id.Slot)
	if !ok {
		panicf("edge %s has adjacency entries but no payload", id)
	}
	return graph.NewEdgeMut(id, e), true
}

// RemoveVertex implements graph.Remover. Every incident edge is removed
// together with its mirrored adjacency entry.
func (g *Graph[V, E]) RemoveVertex(id graph.VertexID) (V, bool) {
	start := time.Now()
	v, ok := g.vertex(id)
	if !ok {
		g.logger.LogRemoveVertex(logCtx, id, false, 0)
		var zero V
		return zero, false
	}

	var incident []adjacency
	v.adjacency.Scan(func(a adjacency) bool {
		incident = append(incident, a)
		return true
	})

	cascaded := 0
	for _, a := range incident {
		other := a.other()
		if other != id {
			if !g.vertices[other.Label].removeAdjacency(other.Slot, a.mirror(id)) {
				panicf("vertex %s: mirrored adjacency of edge %s missing at %s", id, a.edgeID(id), other)
			}
		}
		// A self-loop holds both of its entries here; the edge goes once.
		if _, removed := g.edgePartition(a.edgeLabel).slots.Remove(a.edgeSlot); removed {
			cascaded++
		}
	}

	g.removeIndexes(id, v.payload)
	g.vertices[id.Label].remove(id.Slot)

	g.metrics.RecordRemoveVertex(cascaded, time.Since(start))
	g.logger.LogRemoveVertex(logCtx, id, true, cascaded)
	return v.payload, true
}

// RemoveEdge implements graph.Remover.
func (g *Graph[V, E]) RemoveEdge(id graph.EdgeID) (E, bool) {
	start := time.Now()
	var zero E
	if !g.edgeLive(id) {
		g.logger.LogRemoveEdge(logCtx, id, false)
		return zero, false
	}

	out := adjacency{dir: dirOut, edgeLabel: id.Label, vertexLabel: id.Head.Label, edgeSlot: id.Slot, vertexSlot: id.Head.Slot}
	g.vertices[id.Tail.Label].removeAdjacency(id.Tail.Slot, out)
	if !g.vertices[id.Head.Label].removeAdjacency(id.Head.Slot, out.mirror(id.Tail)) {
		panicf("edge %s: incoming adjacency missing at head", id)
	}
	e, ok := g.edges[id.Label].slots.Remove(id.Slot)
	if !ok {
		panicf("edge %s has adjacency entries but no payload", id)
	}

	g.metrics.RecordRemoveEdge(time.Since(start))
	g.logger.LogRemoveEdge(logCtx, id, true)
	return e, true
}

// Clear implements graph.Clearer.
func (g *Graph[V, E]) Clear() {
	for _, lv := range g.vertices {
		lv.slots.Clear()
	}
	for _, le := range g.edges {
		le.slots.Clear()
	}
	for _, idx := range g.indexes {
		idx.Clear()
	}
	g.logger.Debug("graph cleared")
}

// Vertices implements graph.Graph.
//
// An index search delegates to the index storage, a label search walks that
// label's partition and a plain scan walks every partition in label order.
// The search limit caps every path.
func (g *Graph[V, E]) Vertices(search graph.VertexSearch) (graph.VertexIter, error) {
	it, kind, err := g.openVertices(search)
	g.metrics.RecordSearch(kind, err)
	g.logger.LogSearch(logCtx, kind, err)
	if err != nil {
		return nil, err
	}
	return withLimit(it, search), nil
}

func (g *Graph[V, E]) openVertices(search graph.VertexSearch) (graph.VertexIter, string, error) {
	if err := search.Validate(g.Capabilities()); err != nil {
		return nil, "invalid", err
	}

	idx, indexed := search.Index()
	if !indexed {
		label, labelled := search.Label()
		if !labelled {
			return &partitionIter[V]{parts: g.vertices, last: len(g.vertices) - 1}, "scan", nil
		}
		if int(label) >= len(g.vertices) {
			return noVertices{}, "label", nil
		}
		return &partitionIter[V]{parts: g.vertices, label: int(label), last: int(label)}, "label", nil
	}

	storage, err := g.indexStorage(idx)
	if err != nil {
		return nil, "index", err
	}

	var (
		slots index.SlotIter
		kind  string
	)
	switch search.Mode() {
	case graph.IndexValue:
		lookup, ok := storage.(index.PointLookup)
		if !ok {
			return nil, "index", &graph.UnsupportedError{Op: "point lookup on " + idx.Name(), Capability: graph.SupportsVertexHashIndex}
		}
		slots, kind = lookup.Get(search.Value()), "index"
	case graph.IndexRange:
		lookup, ok := storage.(index.RangeLookup)
		if !ok {
			return nil, "range", &graph.UnsupportedError{Op: "range lookup on " + idx.Name(), Capability: graph.SupportsVertexRangeIndex}
		}
		slots, kind = lookup.Range(search.Range()), "range"
	case graph.IndexText:
		lookup, ok := storage.(index.TextSearch)
		if !ok {
			return nil, "text", &graph.UnsupportedError{Op: "full-text search on " + idx.Name(), Capability: graph.SupportsVertexFullTextIndex}
		}
		slots, kind = lookup.Search(search.Text()), "text"
	}
	return &indexIter{label: idx.Label(), it: slots}, kind, nil
}

// Edges implements graph.Graph. Each direction, edge label and adjacent
// label combination of the search is a contiguous range of the vertex's
// adjacency set; the ranges are visited lazily in that order. A self-loop
// is reported once per matching direction.
func (g *Graph[V, E]) Edges(id graph.VertexID, search graph.EdgeSearch) (graph.EdgeIter, error) {
	err := search.Validate(g.Capabilities())
	g.metrics.RecordSearch("edges", err)
	g.logger.LogSearch(logCtx, "edges", err)
	if err != nil {
		return nil, err
	}

	v, ok := g.vertex(id)
	if !ok {
		return noEdges{}, nil
	}
	return newEdgeIter(id, v.adjacency, edgeRanges(search, len(g.edges)), search), nil
}

func (g *Graph[V, E]) vertex(id graph.VertexID) (*vertex[V], bool) {
	if int(id.Label) >= len(g.vertices) {
		return nil, false
	}
	return g.vertices[id.Label].get(id.Slot)
}

// edgeLive reports whether id denotes a stored edge with the endpoints
// recorded in the id.
func (g *Graph[V, E]) edgeLive(id graph.EdgeID) bool {
	if int(id.Label) >= len(g.edges) {
		return false
	}
	tail, ok := g.vertex(id.Tail)
	if !ok {
		return false
	}
	_, ok = tail.adjacency.Get(adjacency{
		dir:         dirOut,
		edgeLabel:   id.Label,
		vertexLabel: id.Head.Label,
		edgeSlot:    id.Slot,
		vertexSlot:  id.Head.Slot,
	})
	return ok
}

func (g *Graph[V, E]) vertexPartition(l schema.Label) *labelledVertices[V] {
	if int(l) >= len(g.vertices) {
		panicf("vertex label %d out of range, schema has %d vertex labels", l, len(g.vertices))
	}
	return g.vertices[l]
}

func (g *Graph[V, E]) edgePartition(l schema.Label) *labelledEdges[E] {
	if int(l) >= len(g.edges) {
		panicf("edge label %d out of range, schema has %d edge labels", l, len(g.edges))
	}
	return g.edges[l]
}

func (g *Graph[V, E]) indexStorage(idx schema.Index) (index.Storage, error) {
	if idx.Ordinal() < 0 || idx.Ordinal() >= len(g.indexes) {
		return nil, fmt.Errorf("%w: unknown index %q", graph.ErrInvalidSearch, idx.Name())
	}
	storage := g.indexes[idx.Ordinal()]
	if storage.Kind() != idx.Kind() {
		return nil, fmt.Errorf("%w: index %q is not part of this graph's schema", graph.ErrInvalidSearch, idx.Name())
	}
	return storage, nil
}

func (g *Graph[V, E]) insertIndexes(id graph.VertexID, v V) {
	for _, idx := range g.schema.VertexIndexes(id.Label) {
		if val, ok := g.schema.Value(idx, v); ok {
			g.indexes[idx.Ordinal()].Insert(val, id.Slot)
		}
	}
}

func (g *Graph[V, E]) removeIndexes(id graph.VertexID, v V) {
	for _, idx := range g.schema.VertexIndexes(id.Label) {
		if val, ok := g.schema.Value(idx, v); ok {
			g.indexes[idx.Ordinal()].Remove(val, id.Slot)
		}
	}
}

// listener returns the mutation listener for vertex id. It moves the
// vertex's index entry from before to after.
func (g *Graph[V, E]) listener(id graph.VertexID) schema.MutationListener {
	return schema.MutationListenerFunc(func(idx schema.Index, before, after value.Value) {
		g.reindex(id, idx, before, after)
	})
}

func (g *Graph[V, E]) reindex(id graph.VertexID, idx schema.Index, before, after value.Value) {
	if idx.Label() != id.Label {
		panicf("index %q belongs to vertex label %d, not %s", idx.Name(), idx.Label(), id)
	}
	storage := g.indexes[idx.Ordinal()]
	if before.IsValid() {
		storage.Remove(before, id.Slot)
	}
	if after.IsValid() {
		storage.Insert(after, id.Slot)
	}
	g.metrics.RecordIndexUpdate(idx.Name())
	if g.logger.Enabled(logCtx, slog.LevelDebug) {
		g.logger.WithIndex(idx.Name()).LogIndexUpdate(logCtx, id, before, after)
	}
}

// update runs fn against the stored vertex and re-indexes every indexed
// field whose value changed.
func (g *Graph[V, E]) update(id graph.VertexID, v *vertex[V], fn func(*V)) {
	before := g.schema.Values(v.payload)
	fn(&v.payload)
	if l := v.payload.Label(); l != id.Label {
		panicf("update changed the label of %s to %d", id, l)
	}
	after := g.schema.Values(v.payload)
	for i, idx := range g.schema.VertexIndexes(id.Label) {
		if !before[i].Equal(after[i]) {
			g.reindex(id, idx, before[i], after[i])
		}
	}
}

// logCtx is passed to log calls; store operations carry no caller context.
var logCtx = context.Background()

func panicf(format string, args ...any) {
	panic(fmt.Sprintf("simple: "+format, args...))
}
