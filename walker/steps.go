package walker

import (
	"context"

	"github.com/hupe1980/graphapi/graph"
	"github.com/hupe1980/graphapi/internal/logging"
)

type filter[V, E any, ID comparable] struct {
	parent Walker[V, E, ID]
	pred   func(g graph.Graph[V, E], id ID, ctx *Context) bool
}

func (f *filter[V, E, ID]) Next(g graph.Graph[V, E]) (ID, bool) {
	for {
		id, ok := f.parent.Next(g)
		if !ok {
			return id, false
		}
		if f.pred(g, id, f.parent.Context()) {
			return id, true
		}
	}
}

func (f *filter[V, E, ID]) Context() *Context { return f.parent.Context() }

type take[V, E any, ID comparable] struct {
	parent    Walker[V, E, ID]
	remaining int
}

func (t *take[V, E, ID]) Next(g graph.Graph[V, E]) (ID, bool) {
	if t.remaining <= 0 {
		var zero ID
		return zero, false
	}
	id, ok := t.parent.Next(g)
	if ok {
		t.remaining--
	}
	return id, ok
}

func (t *take[V, E, ID]) Context() *Context { return t.parent.Context() }

// endpoint maps an edge to its head or tail vertex.
type endpoint[V, E any] struct {
	parent Walker[V, E, graph.EdgeID]
	head   bool
}

func (e *endpoint[V, E]) Next(g graph.Graph[V, E]) (graph.VertexID, bool) {
	id, ok := e.parent.Next(g)
	if !ok {
		return graph.VertexID{}, false
	}
	if e.head {
		return id.Head, true
	}
	return id.Tail, true
}

func (e *endpoint[V, E]) Context() *Context { return e.parent.Context() }

type pushContext[V, E any, ID comparable] struct {
	parent Walker[V, E, ID]
	fn     func(g graph.Graph[V, E], id ID, ctx *Context) any
	ctx    *Context
}

func (p *pushContext[V, E, ID]) Next(g graph.Graph[V, E]) (ID, bool) {
	id, ok := p.parent.Next(g)
	if !ok {
		return id, false
	}
	prev := p.parent.Context()
	p.ctx = NewContext(p.fn(g, id, prev), prev)
	return id, true
}

func (p *pushContext[V, E, ID]) Context() *Context {
	if p.ctx == nil {
		return p.parent.Context()
	}
	return p.ctx
}

type mutateContext[V, E any, ID comparable] struct {
	parent Walker[V, E, ID]
	fn     func(g graph.Graph[V, E], id ID, ctx *Context)
}

func (m *mutateContext[V, E, ID]) Next(g graph.Graph[V, E]) (ID, bool) {
	id, ok := m.parent.Next(g)
	if ok {
		m.fn(g, id, m.parent.Context())
	}
	return id, ok
}

func (m *mutateContext[V, E, ID]) Context() *Context { return m.parent.Context() }

type control[V, E any, ID comparable] struct {
	parent Walker[V, E, ID]
	fn     func(g graph.Graph[V, E], id ID, ctx *Context) Flow
	done   bool
}

func (c *control[V, E, ID]) Next(g graph.Graph[V, E]) (ID, bool) {
	var zero ID
	for !c.done {
		id, ok := c.parent.Next(g)
		if !ok {
			return zero, false
		}
		switch c.fn(g, id, c.parent.Context()) {
		case ContinueInclude:
			return id, true
		case ContinueSkip:
		case BreakInclude:
			c.done = true
			return id, true
		default:
			c.done = true
		}
	}
	return zero, false
}

func (c *control[V, E, ID]) Context() *Context { return c.parent.Context() }

type probe[V, E any, ID comparable] struct {
	parent Walker[V, E, ID]
	fn     func(g graph.Graph[V, E], id ID, ctx *Context)
}

func (p *probe[V, E, ID]) Next(g graph.Graph[V, E]) (ID, bool) {
	id, ok := p.parent.Next(g)
	if ok {
		p.fn(g, id, p.parent.Context())
	}
	return id, ok
}

func (p *probe[V, E, ID]) Context() *Context { return p.parent.Context() }

// dbg logs every element passing through.
type dbg[V, E any, ID comparable] struct {
	parent Walker[V, E, ID]
	logger *logging.Logger
	tag    string
	seen   int
}

func (d *dbg[V, E, ID]) Next(g graph.Graph[V, E]) (ID, bool) {
	id, ok := d.parent.Next(g)
	if !ok {
		d.logger.LogWalk(context.Background(), d.tag, d.seen, nil)
		return id, false
	}
	d.seen++
	ctx := d.parent.Context()
	d.logger.LogWalkElement(context.Background(), d.tag, id, ctx.Value(), ctx.Depth())
	return id, true
}

func (d *dbg[V, E, ID]) Context() *Context { return d.parent.Context() }

// edges walks the edges of each parent vertex before pulling the next one.
type edges[V, E any] struct {
	st     *state
	parent Walker[V, E, graph.VertexID]
	search graph.EdgeSearch
	cur    graph.EdgeIter
	ctx    *Context
}

func (e *edges[V, E]) Next(g graph.Graph[V, E]) (graph.EdgeID, bool) {
	for {
		if e.cur != nil {
			if id, ok := e.cur.Next(); ok {
				return id, true
			}
			e.cur = nil
		}
		vid, ok := e.parent.Next(g)
		if !ok {
			return graph.EdgeID{}, false
		}
		it, err := g.Edges(vid, e.search)
		if err != nil {
			e.st.fail(err)
			return graph.EdgeID{}, false
		}
		e.cur = it
		e.ctx = e.parent.Context()
	}
}

func (e *edges[V, E]) Context() *Context {
	if e.ctx == nil {
		return e.parent.Context()
	}
	return e.ctx
}
