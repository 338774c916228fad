package graph

import (
	"fmt"

	"github.com/hupe1980/graphapi/schema"
	"github.com/hupe1980/graphapi/value"
)

// IndexMode says how a VertexSearch uses its index.
type IndexMode uint8

const (
	// IndexNone means the search does not use an index.
	IndexNone IndexMode = iota
	// IndexValue is a point lookup.
	IndexValue
	// IndexRange is a range lookup on an ordered index.
	IndexRange
	// IndexText is a full-text search.
	IndexText
)

// VertexSearch describes which vertices a query visits.
//
// A VertexSearch is an immutable value: every builder method returns a
// modified copy. Building a search never touches a graph; it is evaluated
// when passed to Graph.Vertices.
type VertexSearch struct {
	label    schema.Label
	hasLabel bool
	index    schema.Index
	mode     IndexMode
	value    value.Value
	rng      value.Range
	text     string
	limit    int
	hasLimit bool
}

// ScanVertices returns a search over every vertex.
func ScanVertices() VertexSearch { return VertexSearch{} }

// VertexLabel returns a search over the vertices of one label.
func VertexLabel(l schema.Label) VertexSearch {
	return ScanVertices().Labelled(l)
}

// VertexIndex returns a point lookup on idx.
func VertexIndex(idx schema.Index, v value.Value) VertexSearch {
	return ScanVertices().Indexed(idx, v)
}

// VertexRange returns a range lookup on an ordered index.
func VertexRange(idx schema.Index, r value.Range) VertexSearch {
	return ScanVertices().Ranged(idx, r)
}

// VertexFullText returns a full-text search on idx.
func VertexFullText(idx schema.Index, text string) VertexSearch {
	return ScanVertices().Matching(idx, text)
}

// Labelled restricts the search to one label.
func (s VertexSearch) Labelled(l schema.Label) VertexSearch {
	s.label, s.hasLabel = l, true
	return s
}

// Indexed turns the search into a point lookup on idx.
func (s VertexSearch) Indexed(idx schema.Index, v value.Value) VertexSearch {
	s.index, s.mode, s.value = idx, IndexValue, v
	return s
}

// Ranged turns the search into a range lookup on idx.
func (s VertexSearch) Ranged(idx schema.Index, r value.Range) VertexSearch {
	s.index, s.mode, s.rng = idx, IndexRange, r
	return s
}

// Matching turns the search into a full-text search on idx.
func (s VertexSearch) Matching(idx schema.Index, text string) VertexSearch {
	s.index, s.mode, s.text = idx, IndexText, text
	return s
}

// WithLimit caps the number of results.
func (s VertexSearch) WithLimit(n int) VertexSearch {
	s.limit, s.hasLimit = n, true
	return s
}

// Label returns the label restriction, if any.
func (s VertexSearch) Label() (schema.Label, bool) { return s.label, s.hasLabel }

// Mode returns how the search uses its index.
func (s VertexSearch) Mode() IndexMode { return s.mode }

// Index returns the index used by the search, if any.
func (s VertexSearch) Index() (schema.Index, bool) { return s.index, s.mode != IndexNone }

// Value returns the point lookup key.
func (s VertexSearch) Value() value.Value { return s.value }

// Range returns the range lookup bounds.
func (s VertexSearch) Range() value.Range { return s.rng }

// Text returns the full-text query.
func (s VertexSearch) Text() string { return s.text }

// Limit returns the result cap, if any.
func (s VertexSearch) Limit() (int, bool) { return s.limit, s.hasLimit }

// Validate checks the search against a backend's capabilities.
func (s VertexSearch) Validate(caps Capabilities) error {
	if s.hasLimit && s.limit < 0 {
		return fmt.Errorf("%w: negative limit %d", ErrInvalidSearch, s.limit)
	}
	if s.hasLabel && s.mode == IndexNone && !caps.Has(SupportsVertexLabelIndex) {
		return unsupported("vertex label search", SupportsVertexLabelIndex)
	}
	if s.mode == IndexNone {
		return nil
	}
	if s.hasLabel && s.label != s.index.Label() {
		return fmt.Errorf("%w: index %s belongs to label %d, search is labelled %d",
			ErrInvalidSearch, s.index.Name(), s.index.Label(), s.label)
	}

	switch s.mode {
	case IndexValue:
		if !s.value.IsValid() {
			return fmt.Errorf("%w: point lookup on %s without a value", ErrInvalidSearch, s.index.Name())
		}
		switch s.index.Kind() {
		case schema.Hash:
			if !caps.Has(SupportsVertexHashIndex) {
				return unsupported("hash lookup on "+s.index.Name(), SupportsVertexHashIndex)
			}
		case schema.Ordered:
			if !caps.Has(SupportsVertexRangeIndex) {
				return unsupported("ordered lookup on "+s.index.Name(), SupportsVertexRangeIndex)
			}
		default:
			return unsupported("point lookup on full-text index "+s.index.Name(), SupportsVertexHashIndex)
		}
		return s.checkKind("key", s.value)
	case IndexRange:
		if !s.index.Ordered() || !caps.Has(SupportsVertexRangeIndex) {
			return unsupported("range lookup on "+s.index.Name(), SupportsVertexRangeIndex)
		}
		if !s.rng.Lower.Unbounded() {
			if err := s.checkKind("lower bound", s.rng.Lower.Value); err != nil {
				return err
			}
		}
		if !s.rng.Upper.Unbounded() {
			return s.checkKind("upper bound", s.rng.Upper.Value)
		}
	case IndexText:
		if !s.index.FullText() || !caps.Has(SupportsVertexFullTextIndex) {
			return unsupported("full-text search on "+s.index.Name(), SupportsVertexFullTextIndex)
		}
	}
	return nil
}

// checkKind rejects keys whose kind differs from the index type.
func (s VertexSearch) checkKind(what string, v value.Value) error {
	if v.Kind != s.index.Type() {
		return fmt.Errorf("%w: %s of kind %s on index %s of kind %s",
			ErrInvalidSearch, what, v.Kind, s.index.Name(), s.index.Type())
	}
	return nil
}

// EdgeSearch describes which edges of a vertex a query visits.
//
// Like VertexSearch it is an immutable value. The direction is always set;
// the zero value searches both directions.
type EdgeSearch struct {
	label       schema.Label
	hasLabel    bool
	adjacent    schema.Label
	hasAdjacent bool
	direction   Direction
	limit       int
	hasLimit    bool
}

// ScanEdges returns a search over every edge of a vertex.
func ScanEdges() EdgeSearch { return EdgeSearch{} }

// EdgeLabel returns a search over the edges of one label.
func EdgeLabel(l schema.Label) EdgeSearch {
	return ScanEdges().Labelled(l)
}

// Labelled restricts the search to one edge label.
func (s EdgeSearch) Labelled(l schema.Label) EdgeSearch {
	s.label, s.hasLabel = l, true
	return s
}

// AdjacentLabelled restricts the search to edges whose other endpoint has
// label l.
func (s EdgeSearch) AdjacentLabelled(l schema.Label) EdgeSearch {
	s.adjacent, s.hasAdjacent = l, true
	return s
}

// Outgoing restricts the search to outgoing edges.
func (s EdgeSearch) Outgoing() EdgeSearch {
	s.direction = Outgoing
	return s
}

// Incoming restricts the search to incoming edges.
func (s EdgeSearch) Incoming() EdgeSearch {
	s.direction = Incoming
	return s
}

// Both searches edges in both directions.
func (s EdgeSearch) Both() EdgeSearch {
	s.direction = Both
	return s
}

// WithLimit caps the number of results per vertex.
func (s EdgeSearch) WithLimit(n int) EdgeSearch {
	s.limit, s.hasLimit = n, true
	return s
}

// Label returns the edge label restriction, if any.
func (s EdgeSearch) Label() (schema.Label, bool) { return s.label, s.hasLabel }

// AdjacentLabel returns the adjacent vertex label restriction, if any.
func (s EdgeSearch) AdjacentLabel() (schema.Label, bool) { return s.adjacent, s.hasAdjacent }

// Direction returns the direction restriction.
func (s EdgeSearch) Direction() Direction { return s.direction }

// Limit returns the result cap, if any.
func (s EdgeSearch) Limit() (int, bool) { return s.limit, s.hasLimit }

// Validate checks the search against a backend's capabilities.
func (s EdgeSearch) Validate(caps Capabilities) error {
	if s.hasLimit && s.limit < 0 {
		return fmt.Errorf("%w: negative limit %d", ErrInvalidSearch, s.limit)
	}
	if s.direction > Incoming {
		return fmt.Errorf("%w: unknown direction %s", ErrInvalidSearch, s.direction)
	}
	if s.hasLabel && !caps.Has(SupportsEdgeLabelIndex) {
		return unsupported("edge label search", SupportsEdgeLabelIndex)
	}
	if s.hasAdjacent && !caps.Has(SupportsEdgeAdjacentLabelIndex) {
		return unsupported("adjacent label search", SupportsEdgeAdjacentLabelIndex)
	}
	return nil
}
