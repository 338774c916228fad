package graphapi

import (
	"log/slog"

	"github.com/hupe1980/graphapi/internal/logging"
)

// Logger wraps slog.Logger with graph-specific context.
// The store and Dbg walker steps log through its helpers.
type Logger = logging.Logger

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	return logging.New(handler)
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return logging.NewJSON(level)
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return logging.NewText(level)
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return logging.Noop()
}
