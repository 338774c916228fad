package testutil

import (
	"math/rand"
)

// RNG is a seeded random source for reproducible fixtures.
// It is not safe for concurrent use.
type RNG struct {
	rand *rand.Rand
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{rand: rand.New(rand.NewSource(seed))}
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int { return r.rand.Intn(n) }

// Uint64n returns a pseudo-random number in [lo, hi).
func (r *RNG) Uint64n(lo, hi uint64) uint64 {
	return lo + uint64(r.rand.Int63n(int64(hi-lo)))
}

// Bool returns true with probability p.
func (r *RNG) Bool(p float64) bool { return r.rand.Float64() < p }

// Word returns a random lowercase word of length n.
func (r *RNG) Word(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + r.rand.Intn(26))
	}
	return string(b)
}

// Zipf returns a value in [0, n) where small values are most likely.
// s must be greater than 1; larger values skew harder towards zero.
func (r *RNG) Zipf(n int, s float64) int {
	if n <= 1 {
		return 0
	}
	return int(rand.NewZipf(r.rand, s, 1, uint64(n-1)).Uint64())
}
