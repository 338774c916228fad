package schema

import (
	"errors"
	"fmt"

	"github.com/hupe1980/graphapi/value"
)

type pendingIndex[V any] struct {
	name     string
	label    Label
	kind     IndexKind
	ty       value.Kind
	accessor Accessor[V]
}

// Builder registers labels and indexes for a schema.
//
// Example:
//
//	b := schema.NewBuilder[Vertex, Edge]()
//	b.VertexLabels("Person", "Project")
//	b.EdgeLabels("Knows", "Created")
//	byName := b.VertexIndex("person_name", LabelPerson, schema.Hash, value.KindString, personName)
//	s, err := b.Build()
type Builder[V Element, E Element] struct {
	vertexLabels []string
	edgeLabels   []string
	indexes      []pendingIndex[V]
}

// NewBuilder creates an empty Builder.
func NewBuilder[V Element, E Element]() *Builder[V, E] {
	return &Builder[V, E]{}
}

// VertexLabels appends vertex labels; their ordinals follow registration order.
func (b *Builder[V, E]) VertexLabels(names ...string) *Builder[V, E] {
	b.vertexLabels = append(b.vertexLabels, names...)
	return b
}

// EdgeLabels appends edge labels; their ordinals follow registration order.
func (b *Builder[V, E]) EdgeLabels(names ...string) *Builder[V, E] {
	b.edgeLabels = append(b.edgeLabels, names...)
	return b
}

// VertexIndex registers an indexed field and returns its descriptor.
// Full-text indexes must cover string fields.
func (b *Builder[V, E]) VertexIndex(name string, label Label, kind IndexKind, ty value.Kind, accessor Accessor[V]) Index {
	b.indexes = append(b.indexes, pendingIndex[V]{
		name:     name,
		label:    label,
		kind:     kind,
		ty:       ty,
		accessor: accessor,
	})
	return Index{
		ordinal: len(b.indexes) - 1,
		name:    name,
		label:   label,
		kind:    kind,
		ty:      ty,
	}
}

// Build validates the registrations and returns the schema.
func (b *Builder[V, E]) Build() (*Schema[V, E], error) {
	var errs []error
	if len(b.vertexLabels) == 0 {
		errs = append(errs, errors.New("no vertex labels"))
	}
	if len(b.edgeLabels) == 0 {
		errs = append(errs, errors.New("no edge labels"))
	}
	if n := len(b.vertexLabels); n > 1<<16 {
		errs = append(errs, fmt.Errorf("too many vertex labels: %d", n))
	}
	if n := len(b.edgeLabels); n > 1<<16 {
		errs = append(errs, fmt.Errorf("too many edge labels: %d", n))
	}
	errs = append(errs, duplicates("vertex label", b.vertexLabels)...)
	errs = append(errs, duplicates("edge label", b.edgeLabels)...)

	s := &Schema[V, E]{
		vertexLabels: append([]string(nil), b.vertexLabels...),
		edgeLabels:   append([]string(nil), b.edgeLabels...),
		indexes:      make([]Index, 0, len(b.indexes)),
		accessors:    make([]Accessor[V], 0, len(b.indexes)),
		byLabel:      make([][]Index, len(b.vertexLabels)),
		byName:       make(map[string]Index, len(b.indexes)),
	}

	for i, p := range b.indexes {
		switch {
		case p.name == "":
			errs = append(errs, fmt.Errorf("index %d has no name", i))
			continue
		case p.accessor == nil:
			errs = append(errs, fmt.Errorf("index %q has no accessor", p.name))
			continue
		case int(p.label) >= len(b.vertexLabels):
			errs = append(errs, fmt.Errorf("index %q refers to unknown vertex label %d", p.name, p.label))
			continue
		case p.kind > FullText:
			errs = append(errs, fmt.Errorf("index %q has unknown kind %s", p.name, p.kind))
			continue
		case p.kind == FullText && p.ty != value.KindString:
			errs = append(errs, fmt.Errorf("full-text index %q must cover a string field, got %s", p.name, p.ty))
			continue
		}
		if _, dup := s.byName[p.name]; dup {
			errs = append(errs, fmt.Errorf("duplicate index %q", p.name))
			continue
		}

		idx := Index{ordinal: i, name: p.name, label: p.label, kind: p.kind, ty: p.ty}
		s.indexes = append(s.indexes, idx)
		s.accessors = append(s.accessors, p.accessor)
		s.byLabel[p.label] = append(s.byLabel[p.label], idx)
		s.byName[p.name] = idx
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, errors.Join(errs...))
	}
	return s, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder[V, E]) MustBuild() *Schema[V, E] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func duplicates(kind string, names []string) []error {
	seen := make(map[string]struct{}, len(names))
	var errs []error
	for _, n := range names {
		if _, ok := seen[n]; ok {
			errs = append(errs, fmt.Errorf("duplicate %s %q", kind, n))
		}
		seen[n] = struct{}{}
	}
	return errs
}
