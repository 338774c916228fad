package graphapi

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	capacity         int
}

// Option configures graph construction.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &graphapi.BasicMetricsCollector{}
//	g := graphapi.New(s, graphapi.WithMetricsCollector(metrics))
//	// ... use g ...
//	stats := metrics.GetStats()
//	fmt.Printf("Vertices: %d, Cascaded edges: %d\n", stats.AddVertexCount, stats.CascadedEdges)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for store operations and Dbg
// walker steps. Pass nil to disable store logging.
//
// Example with JSON logging:
//
//	logger := graphapi.NewJSONLogger(slog.LevelDebug)
//	g := graphapi.New(s, graphapi.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithCapacity sets the initial slot capacity of every label partition.
// Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.capacity = n
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		capacity:         16,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
