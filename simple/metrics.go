package simple

import "time"

// MetricsCollector receives operational metrics from a Graph.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordAddVertex is called after each vertex insert.
	RecordAddVertex(duration time.Duration)

	// RecordAddEdge is called after each edge insert; err is non-nil when an
	// endpoint was missing.
	RecordAddEdge(duration time.Duration, err error)

	// RecordRemoveVertex is called after a vertex was removed. cascaded is
	// the number of incident edges removed with it.
	RecordRemoveVertex(cascaded int, duration time.Duration)

	// RecordRemoveEdge is called after an edge was removed.
	RecordRemoveEdge(duration time.Duration)

	// RecordIndexUpdate is called whenever an indexed field changes value.
	RecordIndexUpdate(index string)

	// RecordSearch is called when a vertex or edge search is opened. kind is
	// "scan", "label", "index", "range", "text" or "edges".
	RecordSearch(kind string, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAddVertex(time.Duration)         {}
func (NoopMetricsCollector) RecordAddEdge(time.Duration, error)    {}
func (NoopMetricsCollector) RecordRemoveVertex(int, time.Duration) {}
func (NoopMetricsCollector) RecordRemoveEdge(time.Duration)        {}
func (NoopMetricsCollector) RecordIndexUpdate(string)              {}
func (NoopMetricsCollector) RecordSearch(string, error)            {}
