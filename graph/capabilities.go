package graph

import "strings"

// Capabilities is a set of optional backend features.
type Capabilities uint16

const (
	// SupportsVertexLabelIndex allows vertex searches restricted by label.
	SupportsVertexLabelIndex Capabilities = 1 << iota
	// SupportsVertexHashIndex allows point lookups on hash indexes.
	SupportsVertexHashIndex
	// SupportsVertexRangeIndex allows point and range lookups on ordered indexes.
	SupportsVertexRangeIndex
	// SupportsVertexFullTextIndex allows full-text searches.
	SupportsVertexFullTextIndex
	// SupportsEdgeLabelIndex allows edge searches restricted by label.
	SupportsEdgeLabelIndex
	// SupportsEdgeAdjacentLabelIndex allows edge searches restricted by the
	// label of the adjacent vertex.
	SupportsEdgeAdjacentLabelIndex
	// SupportsElementRemoval allows removing vertices and edges.
	SupportsElementRemoval
	// SupportsClear allows emptying the graph.
	SupportsClear
)

// AllCapabilities contains every capability.
const AllCapabilities = SupportsVertexLabelIndex |
	SupportsVertexHashIndex |
	SupportsVertexRangeIndex |
	SupportsVertexFullTextIndex |
	SupportsEdgeLabelIndex |
	SupportsEdgeAdjacentLabelIndex |
	SupportsElementRemoval |
	SupportsClear

var capabilityNames = []string{
	"vertex_label_index",
	"vertex_hash_index",
	"vertex_range_index",
	"vertex_full_text_index",
	"edge_label_index",
	"edge_adjacent_label_index",
	"element_removal",
	"clear",
}

// Has reports whether every capability in other is present.
func (c Capabilities) Has(other Capabilities) bool {
	return c&other == other
}

func (c Capabilities) String() string {
	if c == 0 {
		return "none"
	}
	var names []string
	for i, name := range capabilityNames {
		if c&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}
