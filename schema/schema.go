package schema

import (
	"errors"
	"fmt"

	"github.com/hupe1980/graphapi/value"
)

// ErrInvalidSchema is returned by Builder.Build for inconsistent registrations.
var ErrInvalidSchema = errors.New("schema: invalid schema")

// Label is the ordinal of a vertex or edge variant.
type Label uint16

// Element is implemented by vertex and edge payload types.
type Element interface {
	// Label returns the variant ordinal of the element.
	Label() Label
}

// IndexKind selects the index storage used for a field.
type IndexKind uint8

const (
	// Hash is an unordered index supporting point lookups.
	Hash IndexKind = iota
	// Ordered is a sorted index supporting point and range lookups.
	Ordered
	// FullText is a phonetic full-text index over string fields.
	FullText
)

// String returns the kind name.
func (k IndexKind) String() string {
	switch k {
	case Hash:
		return "hash"
	case Ordered:
		return "ordered"
	case FullText:
		return "full_text"
	default:
		return fmt.Sprintf("IndexKind(%d)", k)
	}
}

// Index describes one indexed vertex field.
type Index struct {
	ordinal int
	name    string
	label   Label
	kind    IndexKind
	ty      value.Kind
}

// Ordinal returns the position of the index in the schema.
func (i Index) Ordinal() int { return i.ordinal }

// Name returns the index name.
func (i Index) Name() string { return i.name }

// Label returns the vertex label the indexed field belongs to.
func (i Index) Label() Label { return i.label }

// Kind returns the index kind.
func (i Index) Kind() IndexKind { return i.kind }

// Type returns the value kind stored in the field.
func (i Index) Type() value.Kind { return i.ty }

// Ordered reports whether the index supports range lookups.
func (i Index) Ordered() bool { return i.kind == Ordered }

// FullText reports whether the index is a full-text index.
func (i Index) FullText() bool { return i.kind == FullText }

func (i Index) String() string { return i.name }

// MutationListener is notified when an indexed field changes.
// before or after is the zero Value when the field was or becomes unset.
type MutationListener interface {
	Update(index Index, before, after value.Value)
}

// MutationListenerFunc adapts a function to MutationListener.
type MutationListenerFunc func(index Index, before, after value.Value)

// Update implements MutationListener.
func (f MutationListenerFunc) Update(index Index, before, after value.Value) {
	f(index, before, after)
}

// Accessor extracts the value of one field from an element.
// It returns false when the element does not carry the field.
type Accessor[T any] func(T) (value.Value, bool)

// Schema is the static registration table for a vertex type V and an edge
// type E. It is immutable after Build.
type Schema[V Element, E Element] struct {
	vertexLabels []string
	edgeLabels   []string
	indexes      []Index
	accessors    []Accessor[V]
	byLabel      [][]Index
	byName       map[string]Index
}

// VertexLabelCount returns the number of vertex labels.
func (s *Schema[V, E]) VertexLabelCount() int { return len(s.vertexLabels) }

// EdgeLabelCount returns the number of edge labels.
func (s *Schema[V, E]) EdgeLabelCount() int { return len(s.edgeLabels) }

// VertexLabelName returns the registered name of a vertex label.
func (s *Schema[V, E]) VertexLabelName(l Label) string {
	if int(l) >= len(s.vertexLabels) {
		return fmt.Sprintf("Label(%d)", l)
	}
	return s.vertexLabels[l]
}

// EdgeLabelName returns the registered name of an edge label.
func (s *Schema[V, E]) EdgeLabelName(l Label) string {
	if int(l) >= len(s.edgeLabels) {
		return fmt.Sprintf("Label(%d)", l)
	}
	return s.edgeLabels[l]
}

// Indexes returns every index in ordinal order.
func (s *Schema[V, E]) Indexes() []Index { return s.indexes }

// VertexIndexes returns the indexes declared for a vertex label.
func (s *Schema[V, E]) VertexIndexes(l Label) []Index {
	if int(l) >= len(s.byLabel) {
		return nil
	}
	return s.byLabel[l]
}

// Index looks up an index by name.
func (s *Schema[V, E]) Index(name string) (Index, bool) {
	idx, ok := s.byName[name]
	return idx, ok
}

// Value extracts the field covered by idx from v. The zero Value is
// returned when v has a different label or does not carry the field.
// It panics when the accessor returns a value of a different kind than
// the index declares.
func (s *Schema[V, E]) Value(idx Index, v V) (value.Value, bool) {
	if idx.ordinal < 0 || idx.ordinal >= len(s.accessors) || v.Label() != idx.label {
		return value.Value{}, false
	}
	out, ok := s.accessors[idx.ordinal](v)
	if !ok || !out.IsValid() {
		return value.Value{}, false
	}
	if out.Kind != idx.ty {
		panic(fmt.Sprintf("schema: index %s returned a %s value, declared %s", idx.name, out.Kind, idx.ty))
	}
	return out, true
}

// Values returns the current value of every index declared for v's label,
// aligned with VertexIndexes(v.Label()).
func (s *Schema[V, E]) Values(v V) []value.Value {
	indexes := s.VertexIndexes(v.Label())
	if len(indexes) == 0 {
		return nil
	}
	out := make([]value.Value, len(indexes))
	for i, idx := range indexes {
		out[i], _ = s.Value(idx, v)
	}
	return out
}
