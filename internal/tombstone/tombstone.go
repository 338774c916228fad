// Package tombstone provides a slot vector with O(1) removal and stable indices.
//
// Removed slots leave a tombstone behind and are recycled by later pushes,
// most recently freed first. An index therefore denotes the same element
// until that element is removed.
package tombstone

import "iter"

type slot[T any] struct {
	value T
	live  bool
}

// Vec stores values in stable slots.
// Vec is not safe for concurrent use.
type Vec[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// New creates an empty Vec with room for capacity values.
func New[T any](capacity int) *Vec[T] {
	return &Vec[T]{slots: make([]slot[T], 0, capacity)}
}

// Push stores v and returns its slot. The most recently freed slot is reused
// if there is one.
func (v *Vec[T]) Push(value T) uint32 {
	v.live++
	if n := len(v.free); n > 0 {
		idx := v.free[n-1]
		v.free = v.free[:n-1]
		v.slots[idx] = slot[T]{value: value, live: true}
		return idx
	}
	v.slots = append(v.slots, slot[T]{value: value, live: true})
	return uint32(len(v.slots) - 1)
}

// Remove takes the value out of idx and frees the slot.
// Removing a free or unknown slot is a no-op.
func (v *Vec[T]) Remove(idx uint32) (T, bool) {
	var zero T
	if int(idx) >= len(v.slots) || !v.slots[idx].live {
		return zero, false
	}
	out := v.slots[idx].value
	v.slots[idx] = slot[T]{}
	v.free = append(v.free, idx)
	v.live--
	return out, true
}

// Get returns the value stored in idx.
func (v *Vec[T]) Get(idx uint32) (T, bool) {
	if int(idx) >= len(v.slots) || !v.slots[idx].live {
		var zero T
		return zero, false
	}
	return v.slots[idx].value, true
}

// GetMut returns a pointer to the value stored in idx.
// The pointer is invalidated by the next Push.
func (v *Vec[T]) GetMut(idx uint32) (*T, bool) {
	if int(idx) >= len(v.slots) || !v.slots[idx].live {
		return nil, false
	}
	return &v.slots[idx].value, true
}

// Contains reports whether idx holds a live value.
func (v *Vec[T]) Contains(idx uint32) bool {
	return int(idx) < len(v.slots) && v.slots[idx].live
}

// Len returns the number of live values.
func (v *Vec[T]) Len() int { return v.live }

// Clear removes all values and forgets every freed slot.
func (v *Vec[T]) Clear() {
	clear(v.slots)
	v.slots = v.slots[:0]
	v.free = v.free[:0]
	v.live = 0
}

// Next returns the first live slot at or after from.
func (v *Vec[T]) Next(from uint32) (uint32, bool) {
	for i := int(from); i < len(v.slots); i++ {
		if v.slots[i].live {
			return uint32(i), true
		}
	}
	return 0, false
}

// All iterates live slots in ascending order, skipping tombstones.
func (v *Vec[T]) All() iter.Seq2[uint32, T] {
	return func(yield func(uint32, T) bool) {
		for i := range v.slots {
			if !v.slots[i].live {
				continue
			}
			if !yield(uint32(i), v.slots[i].value) {
				return
			}
		}
	}
}
