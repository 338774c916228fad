package graph

// VertexIter is a forward pull iterator over vertex ids.
type VertexIter interface {
	// Next returns the next id, or false once the iterator is exhausted.
	Next() (VertexID, bool)
}

// EdgeIter is a forward pull iterator over edge ids.
type EdgeIter interface {
	// Next returns the next id, or false once the iterator is exhausted.
	Next() (EdgeID, bool)
}

// Graph is the read side of a graph backend. Walkers are written purely
// against this contract.
//
// Optional features are advertised through Capabilities; searches that need
// a missing capability fail with an error wrapping ErrUnsupported instead of
// falling back to a scan.
type Graph[V, E any] interface {
	// Vertex returns the vertex with the given id.
	Vertex(id VertexID) (VertexRef[V], bool)
	// Edge returns the edge with the given id.
	Edge(id EdgeID) (EdgeRef[E], bool)
	// Vertices returns the vertices matching search.
	Vertices(search VertexSearch) (VertexIter, error)
	// Edges returns the edges of vertex id matching search. An unknown vertex
	// yields an empty iterator.
	Edges(id VertexID, search EdgeSearch) (EdgeIter, error)
	// Capabilities returns the optional features of the backend.
	Capabilities() Capabilities
}

// MutableGraph is a Graph that accepts new elements and in-place updates.
type MutableGraph[V, E any] interface {
	Graph[V, E]

	// AddVertex stores v and returns its id.
	AddVertex(v V) VertexID
	// AddEdge stores e from tail to head. Both endpoints must exist; a
	// self-loop is allowed.
	AddEdge(tail, head VertexID, e E) (EdgeID, error)
	// VertexMut returns a mutable reference to a vertex.
	VertexMut(id VertexID) (VertexMut[V], bool)
	// EdgeMut returns a mutable reference to an edge.
	EdgeMut(id EdgeID) (EdgeMut[E], bool)
}

// Remover is implemented by backends with SupportsElementRemoval.
type Remover[V, E any] interface {
	// RemoveVertex removes a vertex together with all incident edges.
	RemoveVertex(id VertexID) (V, bool)
	// RemoveEdge removes an edge.
	RemoveEdge(id EdgeID) (E, bool)
}

// Clearer is implemented by backends with SupportsClear.
type Clearer interface {
	// Clear removes every element.
	Clear()
}

// CollectVertices drains it into a slice.
func CollectVertices(it VertexIter) []VertexID {
	var out []VertexID
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		out = append(out, id)
	}
	return out
}

// CollectEdges drains it into a slice.
func CollectEdges(it EdgeIter) []EdgeID {
	var out []EdgeID
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		out = append(out, id)
	}
	return out
}
