package walker

import (
	"log/slog"

	"github.com/hupe1980/graphapi/graph"
	"github.com/hupe1980/graphapi/internal/logging"
)

// Start is the entry point of a walk, bound to a graph.
//
// G is graph.Graph for read-only walks (Walk) and graph.MutableGraph for
// walks that may end in MutateVertices or MutateEdges (WalkMut).
//
// Start and every builder derived from it can be consumed exactly once;
// calling a step or terminal on a consumed builder panics.
type Start[V, E any, G graph.Graph[V, E]] struct {
	g     G
	st    *state
	taken bool
}

// Walk starts a read-only walk over g.
func Walk[V, E any](g graph.Graph[V, E]) *Start[V, E, graph.Graph[V, E]] {
	return &Start[V, E, graph.Graph[V, E]]{g: g, st: newState()}
}

// WalkMut starts a walk over g that may mutate it in a terminal step.
func WalkMut[V, E any](g graph.MutableGraph[V, E]) *Start[V, E, graph.MutableGraph[V, E]] {
	return &Start[V, E, graph.MutableGraph[V, E]]{g: g, st: newState()}
}

// WithLogger sets the logger used by Dbg steps. It defaults to slog.Default.
func (s *Start[V, E, G]) WithLogger(l *slog.Logger) *Start[V, E, G] {
	if l != nil {
		s.st.logger = logging.Wrap(l)
	}
	return s
}

func (s *Start[V, E, G]) consume() {
	if s.taken {
		panic("walker: walk already started")
	}
	s.taken = true
}

// Vertices starts the walk with the vertices matching search. The search is
// validated against the graph's capabilities; a rejected search makes the
// terminal step return the error.
func (s *Start[V, E, G]) Vertices(search graph.VertexSearch) *VertexBuilder[V, E, G] {
	s.consume()
	if err := search.Validate(s.g.Capabilities()); err != nil {
		s.st.fail(err)
	}
	return &VertexBuilder[V, E, G]{
		g:  s.g,
		st: s.st,
		w:  &verticesSource[V, E]{st: s.st, search: search, ctx: &Context{}},
	}
}

// VerticesByID starts the walk with the given vertices. Ids that do not
// denote a live vertex are skipped.
func (s *Start[V, E, G]) VerticesByID(ids ...graph.VertexID) *VertexBuilder[V, E, G] {
	s.consume()
	return &VertexBuilder[V, E, G]{
		g:  s.g,
		st: s.st,
		w:  &verticesByID[V, E]{st: s.st, ids: append([]graph.VertexID(nil), ids...), ctx: &Context{}},
	}
}
