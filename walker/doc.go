// Package walker implements lazy, composable graph traversals.
//
// A walk starts from Walk or WalkMut, picks its starting vertices and
// chains steps. Nothing touches the graph until a terminal step pulls
// elements through the chain:
//
//	ids, err := walker.Walk[Vertex, Edge](g).
//		Vertices(graph.VertexIndex(personName, value.String("Bryn"))).
//		Edges(graph.EdgeLabel(LabelKnows).Outgoing()).
//		Head().
//		Collect()
//
// # Steps
//
//	Filter          keep elements matching a predicate
//	Take, Limit     yield at most n elements
//	Edges           expand vertices into their edges
//	Head, Tail      map edges to an endpoint
//	PushContext     attach derived data to elements
//	MutateContext   change the current context link in place
//	Detour          keep elements for which a sub-walk finds something
//	Control         include, skip or stop per element
//	Reduce          fold all elements into one
//	Probe, Dbg      observe elements without changing the walk
//
// # Terminals
//
// Collect, Count, First and ForEach are methods on the builders. Fold, Map
// and Mutate change the result type and are therefore functions:
// FoldVertices, MapVertices, MutateVertices and their edge counterparts.
//
// MutateVertices and MutateEdges accept only builders started with WalkMut.
// They drain the walk before calling the mutation callback for the first
// time, so mutations never change what the walk visits.
//
// # Errors
//
// Searches are validated against the graph's capabilities when they are
// added to the walk. The first error ends the walk and is returned by the
// terminal step.
//
// Builders are single use. Every step consumes the builder it is called on;
// reusing a consumed builder panics.
package walker
