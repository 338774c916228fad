package walker

import "github.com/hupe1980/graphapi/graph"

// Path is the result of a detour callback: a vertex or edge builder whose
// walk starts at the detour's waypoint.
type Path[V, E any] interface {
	stepper() stepper[V, E]
}

// stepper drives a sub-walk without exposing its element type.
type stepper[V, E any] interface {
	step(g graph.Graph[V, E]) (*Context, bool)
}

type pathOf[V, E any, ID comparable] struct {
	w Walker[V, E, ID]
}

func (p pathOf[V, E, ID]) step(g graph.Graph[V, E]) (*Context, bool) {
	if _, ok := p.w.Next(g); !ok {
		return nil, false
	}
	return p.w.Context(), true
}

// detour runs a fresh sub-walk for each parent element and yields the
// element if the sub-walk produces at least one result. The element keeps
// the context of the first sub-walk result.
//
// The parent element is handed to the sub-walk through ch, a single-slot
// waypoint: exactly one element is in flight per sub-walk.
type detour[V, E any, ID comparable] struct {
	parent  Walker[V, E, ID]
	ch      chan hop[ID]
	build   func() stepper[V, E]
	pending stepper[V, E]
	ctx     *Context
}

func newDetour[V, E any, ID comparable](parent Walker[V, E, ID], ch chan hop[ID], build func() stepper[V, E]) *detour[V, E, ID] {
	// The first sub-walk is built up front and serves the first element.
	return &detour[V, E, ID]{
		parent:  parent,
		ch:      ch,
		build:   build,
		pending: build(),
	}
}

func (d *detour[V, E, ID]) Next(g graph.Graph[V, E]) (ID, bool) {
	for {
		id, ok := d.parent.Next(g)
		if !ok {
			return id, false
		}
		park(d.ch, hop[ID]{id: id, ctx: d.parent.Context()})

		sub := d.pending
		d.pending = nil
		if sub == nil {
			sub = d.build()
		}
		if ctx, ok := sub.step(g); ok {
			d.ctx = ctx
			return id, true
		}
	}
}

func (d *detour[V, E, ID]) Context() *Context {
	if d.ctx == nil {
		return d.parent.Context()
	}
	return d.ctx
}

// reduce drains its parent on the first pull and yields the surviving
// accumulator once.
type reduce[V, E any, ID comparable] struct {
	parent Walker[V, E, ID]
	fn     func(g graph.Graph[V, E], acc ID, accCtx *Context, next ID, nextCtx *Context) ID
	done   bool
	ctx    *Context
}

func (r *reduce[V, E, ID]) Next(g graph.Graph[V, E]) (ID, bool) {
	var zero ID
	if r.done {
		return zero, false
	}
	r.done = true

	acc, ok := r.parent.Next(g)
	if !ok {
		return zero, false
	}
	// The accumulator owns a copy of the first element's context link.
	first := r.parent.Context()
	r.ctx = NewContext(first.Value(), first.Parent())

	for next, ok := r.parent.Next(g); ok; next, ok = r.parent.Next(g) {
		acc = r.fn(g, acc, r.ctx, next, r.parent.Context())
	}
	return acc, true
}

func (r *reduce[V, E, ID]) Context() *Context {
	if r.ctx == nil {
		return r.parent.Context()
	}
	return r.ctx
}
