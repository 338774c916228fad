package graph

import (
	"fmt"

	"github.com/hupe1980/graphapi/schema"
)

// VertexID identifies a vertex by its label partition and slot.
// It stays valid until the vertex is removed; the slot may then be reused.
type VertexID struct {
	Label schema.Label
	Slot  uint32
}

func (id VertexID) String() string {
	return fmt.Sprintf("v(%d:%d)", id.Label, id.Slot)
}

// EdgeID identifies an edge and embeds both endpoints, so the direction of
// an edge is known without a lookup. Tail is the source and Head the target.
type EdgeID struct {
	Label schema.Label
	Slot  uint32
	Tail  VertexID
	Head  VertexID
}

func (id EdgeID) String() string {
	return fmt.Sprintf("e(%d:%d %s->%s)", id.Label, id.Slot, id.Tail, id.Head)
}

// Direction restricts edge iteration relative to the starting vertex.
type Direction uint8

const (
	// Both matches outgoing and incoming edges.
	Both Direction = iota
	// Outgoing matches edges whose tail is the starting vertex.
	Outgoing
	// Incoming matches edges whose head is the starting vertex.
	Incoming
)

func (d Direction) String() string {
	switch d {
	case Both:
		return "both"
	case Outgoing:
		return "outgoing"
	case Incoming:
		return "incoming"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}
