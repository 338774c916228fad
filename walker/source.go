package walker

import "github.com/hupe1980/graphapi/graph"

// verticesSource opens the store iterator on the first pull.
type verticesSource[V, E any] struct {
	st     *state
	search graph.VertexSearch
	it     graph.VertexIter
	opened bool
	done   bool
	ctx    *Context
}

func (s *verticesSource[V, E]) Next(g graph.Graph[V, E]) (graph.VertexID, bool) {
	if s.done {
		return graph.VertexID{}, false
	}
	if !s.opened {
		s.opened = true
		if s.st.err != nil {
			s.done = true
			return graph.VertexID{}, false
		}
		it, err := g.Vertices(s.search)
		if err != nil {
			s.st.fail(err)
			s.done = true
			return graph.VertexID{}, false
		}
		s.it = it
	}
	id, ok := s.it.Next()
	if !ok {
		s.done = true
		s.it = nil
	}
	return id, ok
}

func (s *verticesSource[V, E]) Context() *Context { return s.ctx }

// verticesByID yields the given ids that are still live.
type verticesByID[V, E any] struct {
	st  *state
	ids []graph.VertexID
	pos int
	ctx *Context
}

func (s *verticesByID[V, E]) Next(g graph.Graph[V, E]) (graph.VertexID, bool) {
	if s.st.err != nil {
		return graph.VertexID{}, false
	}
	for s.pos < len(s.ids) {
		id := s.ids[s.pos]
		s.pos++
		if _, ok := g.Vertex(id); ok {
			return id, true
		}
	}
	return graph.VertexID{}, false
}

func (s *verticesByID[V, E]) Context() *Context { return s.ctx }

// hop is one element handed into a detour.
type hop[ID comparable] struct {
	id  ID
	ctx *Context
}

// waypoint is the source of a detour's sub-walk. It yields the element
// currently parked in ch, if any.
type waypoint[V, E any, ID comparable] struct {
	ch  chan hop[ID]
	ctx *Context
}

func (w *waypoint[V, E, ID]) Next(graph.Graph[V, E]) (ID, bool) {
	select {
	case h := <-w.ch:
		w.ctx = h.ctx
		return h.id, true
	default:
		var zero ID
		return zero, false
	}
}

func (w *waypoint[V, E, ID]) Context() *Context { return w.ctx }

// park replaces whatever is waiting in ch with h.
func park[ID comparable](ch chan hop[ID], h hop[ID]) {
	select {
	case <-ch:
	default:
	}
	ch <- h
}
