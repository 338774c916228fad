// Package logging provides the structured logger shared by the store, the
// walker engine and the public facade.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/graphapi/graph"
	"github.com/hupe1980/graphapi/value"
)

// Logger wraps slog.Logger with graph-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// New creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// Wrap adapts a plain slog.Logger. A nil logger yields Noop.
func Wrap(l *slog.Logger) *Logger {
	if l == nil {
		return Noop()
	}
	return &Logger{Logger: l}
}

// NewJSON creates a Logger that outputs JSON-formatted logs.
func NewJSON(level slog.Level) *Logger {
	return New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewText creates a Logger that outputs human-readable text logs.
func NewText(level slog.Level) *Logger {
	return New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// Noop creates a Logger that discards all log output.
func Noop() *Logger {
	return New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithIndex adds an index name field to the logger.
func (l *Logger) WithIndex(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", name),
	}
}

// LogAddVertex logs a vertex insert.
func (l *Logger) LogAddVertex(ctx context.Context, id graph.VertexID, label string) {
	l.DebugContext(ctx, "vertex added",
		"id", id.String(),
		"label", label,
	)
}

// LogAddEdge logs an edge insert. id is the zero EdgeID when err is set.
func (l *Logger) LogAddEdge(ctx context.Context, id graph.EdgeID, err error) {
	if err != nil {
		l.ErrorContext(ctx, "add edge failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "edge added",
			"id", id.String(),
		)
	}
}

// LogRemoveVertex logs a vertex removal. found is false when the vertex did
// not exist.
func (l *Logger) LogRemoveVertex(ctx context.Context, id graph.VertexID, found bool, cascaded int) {
	if !found {
		l.DebugContext(ctx, "remove vertex: not found",
			"id", id.String(),
		)
	} else {
		l.DebugContext(ctx, "vertex removed",
			"id", id.String(),
			"cascaded_edges", cascaded,
		)
	}
}

// LogRemoveEdge logs an edge removal. found is false for missing or stale ids.
func (l *Logger) LogRemoveEdge(ctx context.Context, id graph.EdgeID, found bool) {
	if !found {
		l.DebugContext(ctx, "remove edge: not found",
			"id", id.String(),
		)
	} else {
		l.DebugContext(ctx, "edge removed",
			"id", id.String(),
		)
	}
}

// LogIndexUpdate logs an index entry moving from before to after.
func (l *Logger) LogIndexUpdate(ctx context.Context, id graph.VertexID, before, after value.Value) {
	l.DebugContext(ctx, "index updated",
		"id", id.String(),
		"before", before.String(),
		"after", after.String(),
	)
}

// LogSearch logs a search being opened or rejected.
func (l *Logger) LogSearch(ctx context.Context, search string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"search", search,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search opened",
			"search", search,
		)
	}
}

// LogWalkElement logs one element passing a Dbg step.
func (l *Logger) LogWalkElement(ctx context.Context, tag string, id, current any, depth int) {
	l.InfoContext(ctx, "walker element",
		"tag", tag,
		"id", id,
		"context", current,
		"depth", depth,
	)
}

// LogWalk logs the outcome of a walk.
func (l *Logger) LogWalk(ctx context.Context, tag string, elements int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "walker failed",
			"tag", tag,
			"elements", elements,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "walker exhausted",
			"tag", tag,
			"elements", elements,
		)
	}
}
