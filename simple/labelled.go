package simple

import (
	"github.com/hupe1980/graphapi/internal/tombstone"
	"github.com/tidwall/btree"
)

// vertex is a stored vertex together with its adjacency set.
type vertex[V any] struct {
	payload   V
	adjacency *btree.BTreeG[adjacency]
}

// labelledVertices is the storage partition of one vertex label.
// Entries are held by pointer so payload addresses stay valid across pushes.
type labelledVertices[V any] struct {
	slots *tombstone.Vec[*vertex[V]]
}

func newLabelledVertices[V any](capacity int) *labelledVertices[V] {
	return &labelledVertices[V]{slots: tombstone.New[*vertex[V]](capacity)}
}

func (lv *labelledVertices[V]) add(payload V) (uint32, *vertex[V]) {
	v := &vertex[V]{payload: payload, adjacency: newAdjacencySet()}
	return lv.slots.Push(v), v
}

func (lv *labelledVertices[V]) get(slot uint32) (*vertex[V], bool) {
	return lv.slots.Get(slot)
}

func (lv *labelledVertices[V]) remove(slot uint32) (*vertex[V], bool) {
	return lv.slots.Remove(slot)
}

func (lv *labelledVertices[V]) addAdjacency(slot uint32, a adjacency) {
	v, ok := lv.slots.Get(slot)
	if !ok {
		panicf("adjacency added to missing vertex slot %d", slot)
	}
	v.adjacency.Set(a)
}

func (lv *labelledVertices[V]) removeAdjacency(slot uint32, a adjacency) bool {
	v, ok := lv.slots.Get(slot)
	if !ok {
		return false
	}
	_, ok = v.adjacency.Delete(a)
	return ok
}

// labelledEdges is the storage partition of one edge label.
type labelledEdges[E any] struct {
	slots *tombstone.Vec[E]
}

func newLabelledEdges[E any](capacity int) *labelledEdges[E] {
	return &labelledEdges[E]{slots: tombstone.New[E](capacity)}
}
