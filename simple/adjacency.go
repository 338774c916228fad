package simple

import (
	"math"

	"github.com/hupe1980/graphapi/graph"
	"github.com/hupe1980/graphapi/schema"
	"github.com/tidwall/btree"
)

const (
	dirOut uint8 = iota
	dirIn
)

// adjacency is one entry of a vertex's adjacency set. Every edge has an
// outgoing entry at its tail and a mirrored incoming entry at its head.
//
// Entries sort by direction, edge label, adjacent vertex label, edge slot
// and adjacent vertex slot, so every combination of the first three is a
// contiguous range of the set.
type adjacency struct {
	dir         uint8
	edgeLabel   schema.Label
	vertexLabel schema.Label
	edgeSlot    uint32
	vertexSlot  uint32
}

func adjacencyLess(a, b adjacency) bool {
	if a.dir != b.dir {
		return a.dir < b.dir
	}
	if a.edgeLabel != b.edgeLabel {
		return a.edgeLabel < b.edgeLabel
	}
	if a.vertexLabel != b.vertexLabel {
		return a.vertexLabel < b.vertexLabel
	}
	if a.edgeSlot != b.edgeSlot {
		return a.edgeSlot < b.edgeSlot
	}
	return a.vertexSlot < b.vertexSlot
}

func newAdjacencySet() *btree.BTreeG[adjacency] {
	return btree.NewBTreeGOptions(adjacencyLess, btree.Options{NoLocks: true, Degree: 8})
}

// mirror returns the entry stored at the other endpoint. at is the vertex
// holding a.
func (a adjacency) mirror(at graph.VertexID) adjacency {
	return adjacency{
		dir:         a.dir ^ 1,
		edgeLabel:   a.edgeLabel,
		vertexLabel: at.Label,
		edgeSlot:    a.edgeSlot,
		vertexSlot:  at.Slot,
	}
}

// other returns the adjacent vertex.
func (a adjacency) other() graph.VertexID {
	return graph.VertexID{Label: a.vertexLabel, Slot: a.vertexSlot}
}

// edgeID rebuilds the edge id of a as seen from vertex at.
func (a adjacency) edgeID(at graph.VertexID) graph.EdgeID {
	id := graph.EdgeID{Label: a.edgeLabel, Slot: a.edgeSlot}
	if a.dir == dirOut {
		id.Tail, id.Head = at, a.other()
	} else {
		id.Tail, id.Head = a.other(), at
	}
	return id
}

// adjacencyRange is an inclusive [lo, hi] range of adjacency entries.
type adjacencyRange struct {
	lo, hi adjacency
}

// edgeRanges translates an edge search into adjacency ranges. Each range
// covers one direction and, where restricted, one edge label and one
// adjacent vertex label.
func edgeRanges(search graph.EdgeSearch, edgeLabels int) []adjacencyRange {
	var dirs []uint8
	switch search.Direction() {
	case graph.Outgoing:
		dirs = []uint8{dirOut}
	case graph.Incoming:
		dirs = []uint8{dirIn}
	default:
		dirs = []uint8{dirOut, dirIn}
	}

	type span struct{ lo, hi schema.Label }
	full := span{0, math.MaxUint16}

	var edgeSpans []span
	edgeLabel, hasEdge := search.Label()
	vertexLabel, hasVertex := search.AdjacentLabel()
	switch {
	case hasEdge:
		edgeSpans = []span{{edgeLabel, edgeLabel}}
	case hasVertex:
		// An adjacent label restriction under an open edge label needs one
		// range per edge label.
		for l := 0; l < edgeLabels; l++ {
			edgeSpans = append(edgeSpans, span{schema.Label(l), schema.Label(l)})
		}
	default:
		edgeSpans = []span{full}
	}

	vertexSpan := full
	if hasVertex {
		vertexSpan = span{vertexLabel, vertexLabel}
	}

	out := make([]adjacencyRange, 0, len(dirs)*len(edgeSpans))
	for _, d := range dirs {
		for _, es := range edgeSpans {
			out = append(out, adjacencyRange{
				lo: adjacency{dir: d, edgeLabel: es.lo, vertexLabel: vertexSpan.lo},
				hi: adjacency{
					dir:         d,
					edgeLabel:   es.hi,
					vertexLabel: vertexSpan.hi,
					edgeSlot:    math.MaxUint32,
					vertexSlot:  math.MaxUint32,
				},
			})
		}
	}
	return out
}

// edgeIter lazily concatenates the adjacency ranges of one vertex. Each
// step re-seeks past the last yielded entry, so the set may change between
// pulls.
type edgeIter struct {
	at        graph.VertexID
	set       *btree.BTreeG[adjacency]
	ranges    []adjacencyRange
	pos       int
	last      adjacency
	open      bool
	remaining int
	limited   bool
}

func newEdgeIter(at graph.VertexID, set *btree.BTreeG[adjacency], ranges []adjacencyRange, search graph.EdgeSearch) *edgeIter {
	limit, limited := search.Limit()
	return &edgeIter{
		at:        at,
		set:       set,
		ranges:    ranges,
		remaining: limit,
		limited:   limited,
	}
}

func (e *edgeIter) Next() (graph.EdgeID, bool) {
	if e.limited && e.remaining <= 0 {
		return graph.EdgeID{}, false
	}
	for e.pos < len(e.ranges) {
		r := e.ranges[e.pos]
		pivot := r.lo
		if e.open {
			pivot = e.last
		}

		var (
			next  adjacency
			found bool
		)
		e.set.Ascend(pivot, func(a adjacency) bool {
			if e.open && !adjacencyLess(e.last, a) {
				return true
			}
			next, found = a, true
			return false
		})

		if found && !adjacencyLess(r.hi, next) {
			e.open = true
			e.last = next
			e.remaining--
			return next.edgeID(e.at), true
		}
		e.pos++
		e.open = false
	}
	return graph.EdgeID{}, false
}

type noEdges struct{}

func (noEdges) Next() (graph.EdgeID, bool) { return graph.EdgeID{}, false }
