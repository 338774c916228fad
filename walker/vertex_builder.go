package walker

import "github.com/hupe1980/graphapi/graph"

// VertexBuilder extends a walk whose current elements are vertices.
type VertexBuilder[V, E any, G graph.Graph[V, E]] struct {
	g     G
	st    *state
	w     Walker[V, E, graph.VertexID]
	taken bool
}

func (b *VertexBuilder[V, E, G]) consume() Walker[V, E, graph.VertexID] {
	if b.taken {
		panic("walker: vertex builder already consumed")
	}
	b.taken = true
	return b.w
}

func (b *VertexBuilder[V, E, G]) then(w Walker[V, E, graph.VertexID]) *VertexBuilder[V, E, G] {
	return &VertexBuilder[V, E, G]{g: b.g, st: b.st, w: w}
}

// onVertex resolves id before calling fn. Vanished vertices are reported
// as missing.
func onVertex[V, E any, R any](fn func(graph.VertexRef[V], *Context) R) func(graph.Graph[V, E], graph.VertexID, *Context) (R, bool) {
	return func(g graph.Graph[V, E], id graph.VertexID, ctx *Context) (R, bool) {
		ref, ok := g.Vertex(id)
		if !ok {
			var zero R
			return zero, false
		}
		return fn(ref, ctx), true
	}
}

// Filter keeps the vertices for which fn returns true.
func (b *VertexBuilder[V, E, G]) Filter(fn func(v graph.VertexRef[V], ctx *Context) bool) *VertexBuilder[V, E, G] {
	call := onVertex[V, E](fn)
	return b.then(&filter[V, E, graph.VertexID]{
		parent: b.consume(),
		pred: func(g graph.Graph[V, E], id graph.VertexID, ctx *Context) bool {
			keep, ok := call(g, id, ctx)
			return ok && keep
		},
	})
}

// Take yields at most n vertices.
func (b *VertexBuilder[V, E, G]) Take(n int) *VertexBuilder[V, E, G] {
	return b.then(&take[V, E, graph.VertexID]{parent: b.consume(), remaining: n})
}

// Limit is an alias for Take.
func (b *VertexBuilder[V, E, G]) Limit(n int) *VertexBuilder[V, E, G] {
	return b.Take(n)
}

// Edges continues the walk with the edges of each vertex matching search.
func (b *VertexBuilder[V, E, G]) Edges(search graph.EdgeSearch) *EdgeBuilder[V, E, G] {
	parent := b.consume()
	if err := search.Validate(b.g.Capabilities()); err != nil {
		b.st.fail(err)
	}
	return &EdgeBuilder[V, E, G]{
		g:  b.g,
		st: b.st,
		w:  &edges[V, E]{st: b.st, parent: parent, search: search},
	}
}

// PushContext attaches the value returned by fn to each vertex as a new
// context link.
func (b *VertexBuilder[V, E, G]) PushContext(fn func(v graph.VertexRef[V], ctx *Context) any) *VertexBuilder[V, E, G] {
	call := onVertex[V, E](fn)
	return b.then(&pushContext[V, E, graph.VertexID]{
		parent: b.consume(),
		fn: func(g graph.Graph[V, E], id graph.VertexID, ctx *Context) any {
			v, _ := call(g, id, ctx)
			return v
		},
	})
}

// PushDefaultContext pushes a DefaultVertexContext holding the vertex id and
// a copy of its payload.
func (b *VertexBuilder[V, E, G]) PushDefaultContext() *VertexBuilder[V, E, G] {
	return b.PushContext(func(v graph.VertexRef[V], _ *Context) any {
		return DefaultVertexContext[V]{ID: v.ID(), Vertex: v.Payload()}
	})
}

// MutateContext calls fn with the current context link of each vertex. fn
// may change the link in place with Context.Set.
func (b *VertexBuilder[V, E, G]) MutateContext(fn func(v graph.VertexRef[V], ctx *Context)) *VertexBuilder[V, E, G] {
	return b.then(&mutateContext[V, E, graph.VertexID]{
		parent: b.consume(),
		fn: func(g graph.Graph[V, E], id graph.VertexID, ctx *Context) {
			if ref, ok := g.Vertex(id); ok {
				fn(ref, ctx)
			}
		},
	})
}

// Detour keeps the vertices for which the sub-walk built by fn yields at
// least one element. fn receives a builder positioned at the vertex and is
// invoked once per vertex. The vertex continues with the context of the
// first sub-walk result.
func (b *VertexBuilder[V, E, G]) Detour(fn func(sub *VertexBuilder[V, E, G]) Path[V, E]) *VertexBuilder[V, E, G] {
	parent := b.consume()
	ch := make(chan hop[graph.VertexID], 1)
	build := func() stepper[V, E] {
		sub := &VertexBuilder[V, E, G]{
			g:  b.g,
			st: b.st,
			w:  &waypoint[V, E, graph.VertexID]{ch: ch},
		}
		return fn(sub).stepper()
	}
	return b.then(newDetour(parent, ch, build))
}

// Control decides per vertex whether to yield it and whether to go on.
// Break variants end the walk: later pulls return nothing without touching
// upstream steps.
func (b *VertexBuilder[V, E, G]) Control(fn func(v graph.VertexRef[V], ctx *Context) Flow) *VertexBuilder[V, E, G] {
	call := onVertex[V, E](fn)
	return b.then(&control[V, E, graph.VertexID]{
		parent: b.consume(),
		fn: func(g graph.Graph[V, E], id graph.VertexID, ctx *Context) Flow {
			flow, ok := call(g, id, ctx)
			if !ok {
				return ContinueSkip
			}
			return flow
		},
	})
}

// Reduce folds all vertices into one. The first vertex seeds the
// accumulator and its context; fn combines the accumulator with each later
// vertex and may update the accumulator context. The walk continues with the
// surviving vertex, or with nothing if there were no vertices.
func (b *VertexBuilder[V, E, G]) Reduce(fn func(acc graph.VertexRef[V], accCtx *Context, next graph.VertexRef[V], nextCtx *Context) graph.VertexRef[V]) *VertexBuilder[V, E, G] {
	return b.then(&reduce[V, E, graph.VertexID]{
		parent: b.consume(),
		fn: func(g graph.Graph[V, E], acc graph.VertexID, accCtx *Context, next graph.VertexID, nextCtx *Context) graph.VertexID {
			accRef, ok := g.Vertex(acc)
			if !ok {
				return next
			}
			nextRef, ok := g.Vertex(next)
			if !ok {
				return acc
			}
			return fn(accRef, accCtx, nextRef, nextCtx).ID()
		},
	})
}

// Probe calls fn for every vertex passing through.
func (b *VertexBuilder[V, E, G]) Probe(fn func(v graph.VertexRef[V], ctx *Context)) *VertexBuilder[V, E, G] {
	return b.then(&probe[V, E, graph.VertexID]{
		parent: b.consume(),
		fn: func(g graph.Graph[V, E], id graph.VertexID, ctx *Context) {
			if ref, ok := g.Vertex(id); ok {
				fn(ref, ctx)
			}
		},
	})
}

// Dbg logs every vertex passing through, tagged with tag.
func (b *VertexBuilder[V, E, G]) Dbg(tag string) *VertexBuilder[V, E, G] {
	return b.then(&dbg[V, E, graph.VertexID]{parent: b.consume(), logger: b.st.logger, tag: tag})
}

func (b *VertexBuilder[V, E, G]) stepper() stepper[V, E] {
	return pathOf[V, E, graph.VertexID]{w: b.consume()}
}
