package tombstone

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushGetRemove(t *testing.T) {
	v := New[string](4)

	a := v.Push("a")
	b := v.Push("b")
	c := v.Push("c")
	assert.Equal(t, []uint32{0, 1, 2}, []uint32{a, b, c})
	assert.Equal(t, 3, v.Len())

	got, ok := v.Remove(b)
	require.True(t, ok)
	assert.Equal(t, "b", got)

	_, ok = v.Get(b)
	assert.False(t, ok, "removed slot must be empty")

	_, ok = v.Remove(b)
	assert.False(t, ok, "second removal is a no-op")
	assert.Equal(t, 2, v.Len())

	d := v.Push("d")
	assert.Equal(t, b, d, "freed slot must be reused")

	val, ok := v.Get(d)
	require.True(t, ok)
	assert.Equal(t, "d", val)
}

func TestReuseIsLIFO(t *testing.T) {
	v := New[int](0)
	for i := range 5 {
		v.Push(i)
	}
	v.Remove(1)
	v.Remove(3)

	assert.Equal(t, uint32(3), v.Push(30))
	assert.Equal(t, uint32(1), v.Push(10))
	assert.Equal(t, uint32(5), v.Push(50))
}

func TestGetMut(t *testing.T) {
	v := New[int](0)
	idx := v.Push(1)

	p, ok := v.GetMut(idx)
	require.True(t, ok)
	*p = 42

	got, _ := v.Get(idx)
	assert.Equal(t, 42, got)

	_, ok = v.GetMut(99)
	assert.False(t, ok)
}

func TestIterationSkipsTombstones(t *testing.T) {
	v := New[int](0)
	for i := range 6 {
		v.Push(i * 10)
	}
	v.Remove(0)
	v.Remove(4)

	var slots []uint32
	for slot := range v.All() {
		slots = append(slots, slot)
	}
	assert.Equal(t, []uint32{1, 2, 3, 5}, slots)

	var pulled []uint32
	for slot, ok := v.Next(0); ok; slot, ok = v.Next(slot + 1) {
		pulled = append(pulled, slot)
	}
	assert.Equal(t, slots, pulled)
}

func TestClear(t *testing.T) {
	v := New[int](0)
	v.Push(1)
	v.Remove(v.Push(2))
	v.Clear()

	assert.Equal(t, 0, v.Len())
	assert.Equal(t, uint32(0), v.Push(3))
}

func TestRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v := New[int](0)
	shadow := map[uint32]int{}

	for i := range 2000 {
		if len(shadow) > 0 && rng.Intn(3) == 0 {
			// remove an arbitrary live slot, then push: the freed slot comes back
			var victim uint32
			for k := range shadow {
				victim = k
				break
			}
			got, ok := v.Remove(victim)
			require.True(t, ok)
			assert.Equal(t, shadow[victim], got)
			delete(shadow, victim)

			slot := v.Push(i)
			assert.Equal(t, victim, slot)
			shadow[slot] = i
			continue
		}
		shadow[v.Push(i)] = i
	}

	assert.Equal(t, len(shadow), v.Len())
	for slot, want := range shadow {
		got, ok := v.Get(slot)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}
