package simple

import (
	"log/slog"
)

// Option configures a Graph.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	metrics  MetricsCollector
	capacity int
}

func defaultOptions() options {
	return options{
		metrics:  NoopMetricsCollector{},
		capacity: 16,
	}
}

// WithLogger sets the logger for store operations and Dbg walker steps.
// Without it the store logs nothing and Dbg steps use slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified of store operations.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metrics = mc
		}
	}
}

// WithCapacity sets the initial slot capacity of every label partition.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.capacity = n
		}
	}
}
