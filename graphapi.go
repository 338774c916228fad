package graphapi

import (
	"github.com/hupe1980/graphapi/schema"
	"github.com/hupe1980/graphapi/simple"
)

// New creates an empty in-memory graph for schema s.
//
// Example:
//
//	s := graphapi.NewSchema[Vertex, Edge]().
//	    VertexLabels("Person").
//	    EdgeLabels("Knows").
//	    MustBuild()
//	g := graphapi.New(s, graphapi.WithLogLevel(slog.LevelDebug))
func New[V, E schema.Element](s *schema.Schema[V, E], optFns ...Option) *simple.Graph[V, E] {
	o := applyOptions(optFns)

	simpleOpts := []simple.Option{
		simple.WithMetricsCollector(o.metricsCollector),
		simple.WithCapacity(o.capacity),
	}
	if o.logger != nil {
		simpleOpts = append(simpleOpts, simple.WithLogger(o.logger.Logger))
	}
	return simple.New(s, simpleOpts...)
}

// NewSchema starts a schema registration for vertex type V and edge type E.
func NewSchema[V, E schema.Element]() *schema.Builder[V, E] {
	return schema.NewBuilder[V, E]()
}
