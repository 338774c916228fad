package graphapi

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/graphapi/simple"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    graphapi.NoopMetricsCollector
//	    vertices prometheus.Counter
//	    searches *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordSearch(kind string, err error) {
//	    p.searches.WithLabelValues(kind).Inc()
//	}
//
// See examples/observability for a complete collector.
type MetricsCollector = simple.MetricsCollector

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector = simple.NoopMetricsCollector

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddVertexCount      atomic.Int64
	AddVertexTotalNanos atomic.Int64
	AddEdgeCount        atomic.Int64
	AddEdgeErrors       atomic.Int64
	AddEdgeTotalNanos   atomic.Int64
	RemoveVertexCount      atomic.Int64
	RemoveVertexTotalNanos atomic.Int64
	CascadedEdges          atomic.Int64
	RemoveEdgeCount        atomic.Int64
	RemoveEdgeTotalNanos   atomic.Int64
	IndexUpdates           atomic.Int64
	SearchCount            atomic.Int64
	SearchErrors           atomic.Int64
	IndexSearches          atomic.Int64
}

// RecordAddVertex implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAddVertex(duration time.Duration) {
	b.AddVertexCount.Add(1)
	b.AddVertexTotalNanos.Add(duration.Nanoseconds())
}

// RecordAddEdge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAddEdge(duration time.Duration, err error) {
	b.AddEdgeCount.Add(1)
	b.AddEdgeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AddEdgeErrors.Add(1)
	}
}

// RecordRemoveVertex implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemoveVertex(cascaded int, duration time.Duration) {
	b.RemoveVertexCount.Add(1)
	b.RemoveVertexTotalNanos.Add(duration.Nanoseconds())
	b.CascadedEdges.Add(int64(cascaded))
}

// RecordRemoveEdge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemoveEdge(duration time.Duration) {
	b.RemoveEdgeCount.Add(1)
	b.RemoveEdgeTotalNanos.Add(duration.Nanoseconds())
}

// RecordIndexUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndexUpdate(index string) {
	b.IndexUpdates.Add(1)
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(kind string, err error) {
	b.SearchCount.Add(1)
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	switch kind {
	case "index", "range", "text":
		b.IndexSearches.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddVertexCount:       b.AddVertexCount.Load(),
		AddVertexAvgNanos:    avg(b.AddVertexTotalNanos.Load(), b.AddVertexCount.Load()),
		AddEdgeCount:         b.AddEdgeCount.Load(),
		AddEdgeErrors:        b.AddEdgeErrors.Load(),
		AddEdgeAvgNanos:      avg(b.AddEdgeTotalNanos.Load(), b.AddEdgeCount.Load()),
		RemoveVertexCount:    b.RemoveVertexCount.Load(),
		RemoveVertexAvgNanos: avg(b.RemoveVertexTotalNanos.Load(), b.RemoveVertexCount.Load()),
		CascadedEdges:        b.CascadedEdges.Load(),
		RemoveEdgeCount:      b.RemoveEdgeCount.Load(),
		RemoveEdgeAvgNanos:   avg(b.RemoveEdgeTotalNanos.Load(), b.RemoveEdgeCount.Load()),
		IndexUpdates:         b.IndexUpdates.Load(),
		SearchCount:          b.SearchCount.Load(),
		SearchErrors:         b.SearchErrors.Load(),
		IndexSearches:        b.IndexSearches.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddVertexCount       int64
	AddVertexAvgNanos    int64
	AddEdgeCount         int64
	AddEdgeErrors        int64
	AddEdgeAvgNanos      int64
	RemoveVertexCount    int64
	RemoveVertexAvgNanos int64
	CascadedEdges        int64
	RemoveEdgeCount      int64
	RemoveEdgeAvgNanos   int64
	IndexUpdates         int64
	SearchCount          int64
	SearchErrors         int64
	IndexSearches        int64
}
