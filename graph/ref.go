package graph

import "github.com/hupe1980/graphapi/schema"

// VertexRef is a read-only view of a stored vertex.
type VertexRef[V any] struct {
	id      VertexID
	payload V
}

// NewVertexRef creates a VertexRef. Backends use it to hand out vertices.
func NewVertexRef[V any](id VertexID, payload V) VertexRef[V] {
	return VertexRef[V]{id: id, payload: payload}
}

// ID returns the vertex id.
func (r VertexRef[V]) ID() VertexID { return r.id }

// Payload returns a copy of the stored vertex.
func (r VertexRef[V]) Payload() V { return r.payload }

// EdgeRef is a read-only view of a stored edge.
type EdgeRef[E any] struct {
	id      EdgeID
	payload E
}

// NewEdgeRef creates an EdgeRef.
func NewEdgeRef[E any](id EdgeID, payload E) EdgeRef[E] {
	return EdgeRef[E]{id: id, payload: payload}
}

// ID returns the edge id.
func (r EdgeRef[E]) ID() EdgeID { return r.id }

// Payload returns a copy of the stored edge.
func (r EdgeRef[E]) Payload() E { return r.payload }

// Tail returns the source vertex id.
func (r EdgeRef[E]) Tail() VertexID { return r.id.Tail }

// Head returns the target vertex id.
func (r EdgeRef[E]) Head() VertexID { return r.id.Head }

// VertexMut is a mutable reference to a stored vertex.
//
// Changes must go through Update or UpdateWith so the backend can keep its
// indexes in sync. The reference is only valid until the next structural
// change of the graph.
type VertexMut[V any] struct {
	id       VertexID
	payload  *V
	listener schema.MutationListener
	apply    func(fn func(*V))
}

// NewVertexMut creates a VertexMut. apply must run fn against payload and
// report every changed indexed field to the backend; listener receives
// changes reported by setter-style code.
func NewVertexMut[V any](id VertexID, payload *V, listener schema.MutationListener, apply func(fn func(*V))) VertexMut[V] {
	return VertexMut[V]{id: id, payload: payload, listener: listener, apply: apply}
}

// ID returns the vertex id.
func (m VertexMut[V]) ID() VertexID { return m.id }

// Payload returns a copy of the stored vertex.
func (m VertexMut[V]) Payload() V { return *m.payload }

// Update runs fn against the stored vertex. Indexed fields changed by fn are
// detected and re-indexed.
func (m VertexMut[V]) Update(fn func(v *V)) {
	m.apply(fn)
}

// UpdateWith runs fn against the stored vertex and hands it the mutation
// listener. fn must report every indexed field it changes.
func (m VertexMut[V]) UpdateWith(fn func(v *V, l schema.MutationListener)) {
	fn(m.payload, m.listener)
}

// EdgeMut is a mutable reference to a stored edge.
type EdgeMut[E any] struct {
	id      EdgeID
	payload *E
}

// NewEdgeMut creates an EdgeMut.
func NewEdgeMut[E any](id EdgeID, payload *E) EdgeMut[E] {
	return EdgeMut[E]{id: id, payload: payload}
}

// ID returns the edge id.
func (m EdgeMut[E]) ID() EdgeID { return m.id }

// Payload returns a copy of the stored edge.
func (m EdgeMut[E]) Payload() E { return *m.payload }

// Update runs fn against the stored edge.
func (m EdgeMut[E]) Update(fn func(e *E)) {
	fn(m.payload)
}
