package index

import (
	"github.com/hupe1980/graphapi/schema"
	"github.com/hupe1980/graphapi/value"
)

type hashEntry struct {
	key   value.Value
	slots *SlotSet
}

// Hash is an unordered index: key -> set of slots.
//
// Keys are bucketed by Value.Hash; a bucket holds every distinct key that
// shares the hash, so collisions only cost an extra comparison.
type Hash struct {
	buckets map[uint64][]hashEntry
	keys    int
}

// NewHash creates an empty hash index.
func NewHash() *Hash {
	return &Hash{buckets: make(map[uint64][]hashEntry)}
}

// Kind implements Storage.
func (h *Hash) Kind() schema.IndexKind { return schema.Hash }

// Insert implements Storage.
func (h *Hash) Insert(key value.Value, slot uint32) {
	if !key.IsValid() {
		return
	}
	hv := key.Hash()
	bucket := h.buckets[hv]
	for _, e := range bucket {
		if e.key.Equal(key) {
			e.slots.Add(slot)
			return
		}
	}
	set := NewSlotSet()
	set.Add(slot)
	h.buckets[hv] = append(bucket, hashEntry{key: key, slots: set})
	h.keys++
}

// Remove implements Storage.
func (h *Hash) Remove(key value.Value, slot uint32) {
	if !key.IsValid() {
		return
	}
	hv := key.Hash()
	bucket := h.buckets[hv]
	for i, e := range bucket {
		if !e.key.Equal(key) {
			continue
		}
		e.slots.Remove(slot)
		if e.slots.IsEmpty() {
			bucket = append(bucket[:i], bucket[i+1:]...)
			if len(bucket) == 0 {
				delete(h.buckets, hv)
			} else {
				h.buckets[hv] = bucket
			}
			h.keys--
		}
		return
	}
}

// Get implements PointLookup.
func (h *Hash) Get(key value.Value) SlotIter {
	for _, e := range h.buckets[key.Hash()] {
		if e.key.Equal(key) {
			return e.slots.Iter()
		}
	}
	return Empty()
}

// Clear implements Storage.
func (h *Hash) Clear() {
	clear(h.buckets)
	h.keys = 0
}

// Len implements Storage.
func (h *Hash) Len() int { return h.keys }
