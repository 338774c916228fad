package walker

import "github.com/hupe1980/graphapi/graph"

// EdgeBuilder extends a walk whose current elements are edges.
type EdgeBuilder[V, E any, G graph.Graph[V, E]] struct {
	g     G
	st    *state
	w     Walker[V, E, graph.EdgeID]
	taken bool
}

func (b *EdgeBuilder[V, E, G]) consume() Walker[V, E, graph.EdgeID] {
	if b.taken {
		panic("walker: edge builder already consumed")
	}
	b.taken = true
	return b.w
}

func (b *EdgeBuilder[V, E, G]) then(w Walker[V, E, graph.EdgeID]) *EdgeBuilder[V, E, G] {
	return &EdgeBuilder[V, E, G]{g: b.g, st: b.st, w: w}
}

func onEdge[V, E any, R any](fn func(graph.EdgeRef[E], *Context) R) func(graph.Graph[V, E], graph.EdgeID, *Context) (R, bool) {
	return func(g graph.Graph[V, E], id graph.EdgeID, ctx *Context) (R, bool) {
		ref, ok := g.Edge(id)
		if !ok {
			var zero R
			return zero, false
		}
		return fn(ref, ctx), true
	}
}

// Filter keeps the edges for which fn returns true.
func (b *EdgeBuilder[V, E, G]) Filter(fn func(e graph.EdgeRef[E], ctx *Context) bool) *EdgeBuilder[V, E, G] {
	call := onEdge[V](fn)
	return b.then(&filter[V, E, graph.EdgeID]{
		parent: b.consume(),
		pred: func(g graph.Graph[V, E], id graph.EdgeID, ctx *Context) bool {
			keep, ok := call(g, id, ctx)
			return ok && keep
		},
	})
}

// Take yields at most n edges.
func (b *EdgeBuilder[V, E, G]) Take(n int) *EdgeBuilder[V, E, G] {
	return b.then(&take[V, E, graph.EdgeID]{parent: b.consume(), remaining: n})
}

// Limit is an alias for Take.
func (b *EdgeBuilder[V, E, G]) Limit(n int) *EdgeBuilder[V, E, G] {
	return b.Take(n)
}

// Head continues the walk with the target vertex of each edge.
func (b *EdgeBuilder[V, E, G]) Head() *VertexBuilder[V, E, G] {
	return &VertexBuilder[V, E, G]{g: b.g, st: b.st, w: &endpoint[V, E]{parent: b.consume(), head: true}}
}

// Tail continues the walk with the source vertex of each edge.
func (b *EdgeBuilder[V, E, G]) Tail() *VertexBuilder[V, E, G] {
	return &VertexBuilder[V, E, G]{g: b.g, st: b.st, w: &endpoint[V, E]{parent: b.consume()}}
}

// PushContext attaches the value returned by fn to each edge as a new
// context link.
func (b *EdgeBuilder[V, E, G]) PushContext(fn func(e graph.EdgeRef[E], ctx *Context) any) *EdgeBuilder[V, E, G] {
	call := onEdge[V](fn)
	return b.then(&pushContext[V, E, graph.EdgeID]{
		parent: b.consume(),
		fn: func(g graph.Graph[V, E], id graph.EdgeID, ctx *Context) any {
			v, _ := call(g, id, ctx)
			return v
		},
	})
}

// PushDefaultContext pushes a DefaultEdgeContext holding the edge id and a
// copy of its payload.
func (b *EdgeBuilder[V, E, G]) PushDefaultContext() *EdgeBuilder[V, E, G] {
	return b.PushContext(func(e graph.EdgeRef[E], _ *Context) any {
		return DefaultEdgeContext[E]{ID: e.ID(), Edge: e.Payload()}
	})
}

// MutateContext calls fn with the current context link of each edge.
func (b *EdgeBuilder[V, E, G]) MutateContext(fn func(e graph.EdgeRef[E], ctx *Context)) *EdgeBuilder[V, E, G] {
	return b.then(&mutateContext[V, E, graph.EdgeID]{
		parent: b.consume(),
		fn: func(g graph.Graph[V, E], id graph.EdgeID, ctx *Context) {
			if ref, ok := g.Edge(id); ok {
				fn(ref, ctx)
			}
		},
	})
}

// Detour keeps the edges for which the sub-walk built by fn yields at least
// one element.
func (b *EdgeBuilder[V, E, G]) Detour(fn func(sub *EdgeBuilder[V, E, G]) Path[V, E]) *EdgeBuilder[V, E, G] {
	parent := b.consume()
	ch := make(chan hop[graph.EdgeID], 1)
	build := func() stepper[V, E] {
		sub := &EdgeBuilder[V, E, G]{
			g:  b.g,
			st: b.st,
			w:  &waypoint[V, E, graph.EdgeID]{ch: ch},
		}
		return fn(sub).stepper()
	}
	return b.then(newDetour(parent, ch, build))
}

// Control decides per edge whether to yield it and whether to go on.
func (b *EdgeBuilder[V, E, G]) Control(fn func(e graph.EdgeRef[E], ctx *Context) Flow) *EdgeBuilder[V, E, G] {
	call := onEdge[V](fn)
	return b.then(&control[V, E, graph.EdgeID]{
		parent: b.consume(),
		fn: func(g graph.Graph[V, E], id graph.EdgeID, ctx *Context) Flow {
			flow, ok := call(g, id, ctx)
			if !ok {
				return ContinueSkip
			}
			return flow
		},
	})
}

// Reduce folds all edges into one, like VertexBuilder.Reduce.
func (b *EdgeBuilder[V, E, G]) Reduce(fn func(acc graph.EdgeRef[E], accCtx *Context, next graph.EdgeRef[E], nextCtx *Context) graph.EdgeRef[E]) *EdgeBuilder[V, E, G] {
	return b.then(&reduce[V, E, graph.EdgeID]{
		parent: b.consume(),
		fn: func(g graph.Graph[V, E], acc graph.EdgeID, accCtx *Context, next graph.EdgeID, nextCtx *Context) graph.EdgeID {
			accRef, ok := g.Edge(acc)
			if !ok {
				return next
			}
			nextRef, ok := g.Edge(next)
			if !ok {
				return acc
			}
			return fn(accRef, accCtx, nextRef, nextCtx).ID()
		},
	})
}

// Probe calls fn for every edge passing through.
func (b *EdgeBuilder[V, E, G]) Probe(fn func(e graph.EdgeRef[E], ctx *Context)) *EdgeBuilder[V, E, G] {
	return b.then(&probe[V, E, graph.EdgeID]{
		parent: b.consume(),
		fn: func(g graph.Graph[V, E], id graph.EdgeID, ctx *Context) {
			if ref, ok := g.Edge(id); ok {
				fn(ref, ctx)
			}
		},
	})
}

// Dbg logs every edge passing through, tagged with tag.
func (b *EdgeBuilder[V, E, G]) Dbg(tag string) *EdgeBuilder[V, E, G] {
	return b.then(&dbg[V, E, graph.EdgeID]{parent: b.consume(), logger: b.st.logger, tag: tag})
}

func (b *EdgeBuilder[V, E, G]) stepper() stepper[V, E] {
	return pathOf[V, E, graph.EdgeID]{w: b.consume()}
}
