package graphapi

import (
	"github.com/hupe1980/graphapi/graph"
	"github.com/hupe1980/graphapi/schema"
)

var (
	// ErrUnsupported is returned when a graph lacks the capability a search
	// needs. Match it with errors.Is.
	ErrUnsupported = graph.ErrUnsupported

	// ErrInvalidSearch is returned for self-contradicting searches.
	ErrInvalidSearch = graph.ErrInvalidSearch

	// ErrVertexNotFound is returned by AddEdge when an endpoint is missing.
	ErrVertexNotFound = graph.ErrVertexNotFound

	// ErrInvalidSchema is returned by schema builders for inconsistent
	// registrations.
	ErrInvalidSchema = schema.ErrInvalidSchema
)

// UnsupportedError carries the operation and capability behind an
// ErrUnsupported.
type UnsupportedError = graph.UnsupportedError
