package index

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// SlotIter is a forward pull iterator over element slots.
type SlotIter interface {
	// Next returns the next slot, or false once the iterator is exhausted.
	Next() (uint32, bool)
}

// SlotSet is a compressed set of element slots.
// It wraps a 32-bit roaring bitmap; slots iterate in ascending order.
type SlotSet struct {
	rb *roaring.Bitmap
}

// NewSlotSet creates an empty slot set.
func NewSlotSet() *SlotSet {
	return &SlotSet{rb: roaring.New()}
}

// Add adds a slot. It reports whether the slot was newly added.
func (s *SlotSet) Add(slot uint32) bool {
	return s.rb.CheckedAdd(slot)
}

// Remove removes a slot. It reports whether the slot was present.
func (s *SlotSet) Remove(slot uint32) bool {
	return s.rb.CheckedRemove(slot)
}

// Contains checks if a slot is in the set.
func (s *SlotSet) Contains(slot uint32) bool {
	return s.rb.Contains(slot)
}

// IsEmpty returns true if the set is empty.
func (s *SlotSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of slots in the set.
func (s *SlotSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clear removes all slots from the set.
func (s *SlotSet) Clear() {
	s.rb.Clear()
}

// ToArray returns the slots in ascending order.
func (s *SlotSet) ToArray() []uint32 {
	return s.rb.ToArray()
}

// Iter returns a pull iterator over the set. Every step resumes after the
// last returned slot, so the set may be modified between pulls.
func (s *SlotSet) Iter() SlotIter {
	return &bitmapIter{rb: s.rb}
}

type bitmapIter struct {
	rb   *roaring.Bitmap
	from uint64
}

func (b *bitmapIter) Next() (uint32, bool) {
	if b.from > math.MaxUint32 {
		return 0, false
	}
	it := b.rb.Iterator()
	it.AdvanceIfNeeded(uint32(b.from))
	if !it.HasNext() {
		b.from = math.MaxUint32 + 1
		return 0, false
	}
	slot := it.Next()
	b.from = uint64(slot) + 1
	return slot, true
}

type emptyIter struct{}

func (emptyIter) Next() (uint32, bool) { return 0, false }

// Empty returns an iterator that yields nothing.
func Empty() SlotIter { return emptyIter{} }

// Collect drains it into a slice.
func Collect(it SlotIter) []uint32 {
	var out []uint32
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		out = append(out, s)
	}
	return out
}
