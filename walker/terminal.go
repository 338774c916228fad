package walker

import "github.com/hupe1980/graphapi/graph"

// drain pulls every element of w and calls fn with it. It stops early when
// fn returns false.
func drain[V, E any, ID comparable](g graph.Graph[V, E], w Walker[V, E, ID], fn func(id ID, ctx *Context) bool) {
	for id, ok := w.Next(g); ok; id, ok = w.Next(g) {
		if !fn(id, w.Context()) {
			return
		}
	}
}

// Collect returns the ids of every vertex of the walk.
func (b *VertexBuilder[V, E, G]) Collect() ([]graph.VertexID, error) {
	var out []graph.VertexID
	drain(graph.Graph[V, E](b.g), b.consume(), func(id graph.VertexID, _ *Context) bool {
		out = append(out, id)
		return true
	})
	if b.st.err != nil {
		return nil, b.st.err
	}
	return out, nil
}

// Count returns the number of vertices of the walk.
func (b *VertexBuilder[V, E, G]) Count() (int, error) {
	n := 0
	drain(graph.Graph[V, E](b.g), b.consume(), func(graph.VertexID, *Context) bool {
		n++
		return true
	})
	return n, b.st.err
}

// First returns the first vertex of the walk.
func (b *VertexBuilder[V, E, G]) First() (graph.VertexID, bool, error) {
	var (
		first graph.VertexID
		found bool
	)
	drain(graph.Graph[V, E](b.g), b.consume(), func(id graph.VertexID, _ *Context) bool {
		first, found = id, true
		return false
	})
	if b.st.err != nil {
		return graph.VertexID{}, false, b.st.err
	}
	return first, found, nil
}

// ForEach calls fn with every vertex of the walk and its context.
func (b *VertexBuilder[V, E, G]) ForEach(fn func(v graph.VertexRef[V], ctx *Context)) error {
	g := graph.Graph[V, E](b.g)
	drain(g, b.consume(), func(id graph.VertexID, ctx *Context) bool {
		if ref, ok := g.Vertex(id); ok {
			fn(ref, ctx)
		}
		return true
	})
	return b.st.err
}

// Collect returns the ids of every edge of the walk.
func (b *EdgeBuilder[V, E, G]) Collect() ([]graph.EdgeID, error) {
	var out []graph.EdgeID
	drain(graph.Graph[V, E](b.g), b.consume(), func(id graph.EdgeID, _ *Context) bool {
		out = append(out, id)
		return true
	})
	if b.st.err != nil {
		return nil, b.st.err
	}
	return out, nil
}

// Count returns the number of edges of the walk.
func (b *EdgeBuilder[V, E, G]) Count() (int, error) {
	n := 0
	drain(graph.Graph[V, E](b.g), b.consume(), func(graph.EdgeID, *Context) bool {
		n++
		return true
	})
	return n, b.st.err
}

// First returns the first edge of the walk.
func (b *EdgeBuilder[V, E, G]) First() (graph.EdgeID, bool, error) {
	var (
		first graph.EdgeID
		found bool
	)
	drain(graph.Graph[V, E](b.g), b.consume(), func(id graph.EdgeID, _ *Context) bool {
		first, found = id, true
		return false
	})
	if b.st.err != nil {
		return graph.EdgeID{}, false, b.st.err
	}
	return first, found, nil
}

// ForEach calls fn with every edge of the walk and its context.
func (b *EdgeBuilder[V, E, G]) ForEach(fn func(e graph.EdgeRef[E], ctx *Context)) error {
	g := graph.Graph[V, E](b.g)
	drain(g, b.consume(), func(id graph.EdgeID, ctx *Context) bool {
		if ref, ok := g.Edge(id); ok {
			fn(ref, ctx)
		}
		return true
	})
	return b.st.err
}

// FoldVertices combines every vertex of the walk into an accumulator,
// starting from init.
func FoldVertices[V, E any, G graph.Graph[V, E], A any](b *VertexBuilder[V, E, G], init A, fn func(acc A, v graph.VertexRef[V], ctx *Context) A) (A, error) {
	acc := init
	if err := b.ForEach(func(v graph.VertexRef[V], ctx *Context) {
		acc = fn(acc, v, ctx)
	}); err != nil {
		return init, err
	}
	return acc, nil
}

// FoldEdges combines every edge of the walk into an accumulator, starting
// from init.
func FoldEdges[V, E any, G graph.Graph[V, E], A any](b *EdgeBuilder[V, E, G], init A, fn func(acc A, e graph.EdgeRef[E], ctx *Context) A) (A, error) {
	acc := init
	if err := b.ForEach(func(e graph.EdgeRef[E], ctx *Context) {
		acc = fn(acc, e, ctx)
	}); err != nil {
		return init, err
	}
	return acc, nil
}

// MapVertices returns fn applied to every vertex of the walk, in walk order.
func MapVertices[V, E any, G graph.Graph[V, E], R any](b *VertexBuilder[V, E, G], fn func(v graph.VertexRef[V], ctx *Context) R) ([]R, error) {
	var out []R
	if err := b.ForEach(func(v graph.VertexRef[V], ctx *Context) {
		out = append(out, fn(v, ctx))
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// MapEdges returns fn applied to every edge of the walk, in walk order.
func MapEdges[V, E any, G graph.Graph[V, E], R any](b *EdgeBuilder[V, E, G], fn func(e graph.EdgeRef[E], ctx *Context) R) ([]R, error) {
	var out []R
	if err := b.ForEach(func(e graph.EdgeRef[E], ctx *Context) {
		out = append(out, fn(e, ctx))
	}); err != nil {
		return nil, err
	}
	return out, nil
}

type visit[ID comparable] struct {
	id  ID
	ctx *Context
}

// MutateVertices calls fn once per vertex of the walk with write access to
// the graph, and returns the number of calls.
//
// The walk is drained before the first call, so fn never affects which
// vertices are visited. It is only available on walks started with WalkMut.
func MutateVertices[V, E any](b *VertexBuilder[V, E, graph.MutableGraph[V, E]], fn func(g graph.MutableGraph[V, E], id graph.VertexID, ctx *Context)) (int, error) {
	var visits []visit[graph.VertexID]
	drain(graph.Graph[V, E](b.g), b.consume(), func(id graph.VertexID, ctx *Context) bool {
		visits = append(visits, visit[graph.VertexID]{id: id, ctx: ctx})
		return true
	})
	if b.st.err != nil {
		return 0, b.st.err
	}
	for _, v := range visits {
		fn(b.g, v.id, v.ctx)
	}
	return len(visits), nil
}

// MutateEdges is the edge counterpart of MutateVertices.
func MutateEdges[V, E any](b *EdgeBuilder[V, E, graph.MutableGraph[V, E]], fn func(g graph.MutableGraph[V, E], id graph.EdgeID, ctx *Context)) (int, error) {
	var visits []visit[graph.EdgeID]
	drain(graph.Graph[V, E](b.g), b.consume(), func(id graph.EdgeID, ctx *Context) bool {
		visits = append(visits, visit[graph.EdgeID]{id: id, ctx: ctx})
		return true
	})
	if b.st.err != nil {
		return 0, b.st.err
	}
	for _, v := range visits {
		fn(b.g, v.id, v.ctx)
	}
	return len(visits), nil
}
