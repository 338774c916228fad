package index

import (
	"github.com/hupe1980/graphapi/schema"
	"github.com/hupe1980/graphapi/value"
	"github.com/tidwall/btree"
)

type orderedEntry struct {
	key   value.Value
	slots *SlotSet
}

func orderedLess(a, b orderedEntry) bool {
	return value.Compare(a.key, b.key) < 0
}

// Ordered is a sorted index: key -> set of slots, ordered by value.Compare.
// It answers point lookups and range lookups in O(log n + k).
type Ordered struct {
	tree *btree.BTreeG[orderedEntry]
}

// NewOrdered creates an empty ordered index.
func NewOrdered() *Ordered {
	// NoLocks: the store is single-threaded.
	return &Ordered{
		tree: btree.NewBTreeGOptions(orderedLess, btree.Options{NoLocks: true}),
	}
}

// Kind implements Storage.
func (o *Ordered) Kind() schema.IndexKind { return schema.Ordered }

// Insert implements Storage.
func (o *Ordered) Insert(key value.Value, slot uint32) {
	if !key.IsValid() {
		return
	}
	if e, ok := o.tree.Get(orderedEntry{key: key}); ok {
		e.slots.Add(slot)
		return
	}
	set := NewSlotSet()
	set.Add(slot)
	o.tree.Set(orderedEntry{key: key, slots: set})
}

// Remove implements Storage.
func (o *Ordered) Remove(key value.Value, slot uint32) {
	if !key.IsValid() {
		return
	}
	e, ok := o.tree.Get(orderedEntry{key: key})
	if !ok {
		return
	}
	e.slots.Remove(slot)
	if e.slots.IsEmpty() {
		o.tree.Delete(e)
	}
}

// Get implements PointLookup.
func (o *Ordered) Get(key value.Value) SlotIter {
	if e, ok := o.tree.Get(orderedEntry{key: key}); ok {
		return e.slots.Iter()
	}
	return Empty()
}

// Range implements RangeLookup. Entries are visited lazily in key order
// and each entry's slots in ascending order. The cursor re-seeks past the
// last visited key on every step, so writes between pulls are allowed.
func (o *Ordered) Range(r value.Range) SlotIter {
	if r.Empty() || o.tree.Len() == 0 {
		return Empty()
	}
	return &rangeIter{tree: o.tree, rng: r}
}

// Clear implements Storage.
func (o *Ordered) Clear() { o.tree.Clear() }

// Len implements Storage.
func (o *Ordered) Len() int { return o.tree.Len() }

type rangeIter struct {
	tree    *btree.BTreeG[orderedEntry]
	rng     value.Range
	last    value.Value
	slots   []uint32
	started bool
	done    bool
}

func (r *rangeIter) Next() (uint32, bool) {
	for {
		if len(r.slots) > 0 {
			s := r.slots[0]
			r.slots = r.slots[1:]
			return s, true
		}
		if r.done {
			return 0, false
		}

		e, ok := r.advance()
		if !ok || !r.rng.BelowUpper(e.key) {
			r.done = true
			return 0, false
		}
		r.last = e.key
		r.slots = e.slots.ToArray()
	}
}

// advance returns the first entry after the last visited key that lies
// above the lower bound.
func (r *rangeIter) advance() (orderedEntry, bool) {
	var (
		found orderedEntry
		ok    bool
	)
	visit := func(e orderedEntry) bool {
		if r.started && value.Compare(e.key, r.last) <= 0 {
			return true
		}
		if !r.rng.AboveLower(e.key) {
			return true
		}
		found, ok = e, true
		return false
	}

	switch {
	case r.started:
		r.tree.Ascend(orderedEntry{key: r.last}, visit)
	case r.rng.Lower.Unbounded():
		r.tree.Scan(visit)
	default:
		r.tree.Ascend(orderedEntry{key: r.rng.Lower.Value}, visit)
	}
	r.started = true
	return found, ok
}
