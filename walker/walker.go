package walker

import (
	"log/slog"

	"github.com/hupe1980/graphapi/graph"
	"github.com/hupe1980/graphapi/internal/logging"
)

// Walker is a lazy pull iterator over the elements of a walk.
//
// Every step owns its parent walker and implements Next by pulling from the
// parent. Context returns the context of the element most recently
// returned by Next.
type Walker[V, E any, ID comparable] interface {
	Next(g graph.Graph[V, E]) (ID, bool)
	Context() *Context
}

// Flow is returned by the callback of a Control step.
type Flow uint8

const (
	// ContinueInclude yields the element and keeps walking.
	ContinueInclude Flow = iota
	// ContinueSkip drops the element and keeps walking.
	ContinueSkip
	// BreakInclude yields the element and ends the walk.
	BreakInclude
	// BreakTerminate ends the walk without yielding the element.
	BreakTerminate
)

func (f Flow) String() string {
	switch f {
	case ContinueInclude:
		return "continue_include"
	case ContinueSkip:
		return "continue_skip"
	case BreakInclude:
		return "break_include"
	case BreakTerminate:
		return "break_terminate"
	default:
		return "Flow(?)"
	}
}

// state is shared by every builder and step of one walk.
type state struct {
	err    error
	logger *logging.Logger
}

func newState() *state {
	return &state{logger: logging.Wrap(slog.Default())}
}

// fail records the first error of the walk. Sources stop producing
// elements once an error is recorded.
func (s *state) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}
