package value

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	id1 := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	id2 := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"int less", Int(-1), Int(3), -1},
		{"int equal", Int(7), Int(7), 0},
		{"uint greater", Uint(10), Uint(2), 1},
		{"float", Float(1.5), Float(2.5), -1},
		{"string", String("alice"), String("bob"), -1},
		{"bool", Bool(false), Bool(true), -1},
		{"uuid", UUID(id1), UUID(id2), -1},
		{"kind order", Bool(true), Int(0), -1},
		{"invalid first", Value{}, Bool(false), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
		})
	}
}

func TestKeyDistinguishesKinds(t *testing.T) {
	assert.NotEqual(t, Int(1).Key(), Uint(1).Key())
	assert.NotEqual(t, String("1").Key(), Int(1).Key())
	assert.Equal(t, String("bryn").Key(), String("bryn").Key())
	assert.Equal(t, String("bryn").Hash(), String("bryn").Hash())
}

func TestKeyAgreesWithEqual(t *testing.T) {
	negZero := Float(math.Copysign(0, -1))
	nan := Float(math.NaN())
	otherNaN := Float(math.Float64frombits(math.Float64bits(math.NaN()) | 1))

	tests := []struct {
		name string
		a, b Value
	}{
		{"signed zero", Float(0), negZero},
		{"nan payloads", nan, otherNaN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.a.Equal(tt.b))
			assert.Equal(t, tt.a.Key(), tt.b.Key())
			assert.Equal(t, tt.a.Hash(), tt.b.Hash())
		})
	}

	assert.NotEqual(t, Float(0).Key(), Float(1).Key())
	assert.NotEqual(t, nan.Key(), Float(0).Key())
}

func TestAccessors(t *testing.T) {
	v := Uint(45)
	u, ok := v.AsUint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(45), u)

	_, ok = v.AsInt64()
	assert.False(t, ok)

	s, ok := String("graph").AsString()
	assert.True(t, ok)
	assert.Equal(t, "graph", s)

	assert.False(t, Value{}.IsValid())
	assert.True(t, Bool(false).IsValid())
	assert.True(t, String("a") == String("a"))
}

func TestRange(t *testing.T) {
	r := Between(Uint(30), Uint(50))

	for _, age := range []uint64{20, 28, 29, 50, 60} {
		assert.False(t, r.Contains(Uint(age)), "age %d", age)
	}
	for _, age := range []uint64{30, 34, 45, 48, 49} {
		assert.True(t, r.Contains(Uint(age)), "age %d", age)
	}

	assert.True(t, Inclusive(Uint(1), Uint(2)).Contains(Uint(2)))
	assert.False(t, Above(Uint(1)).Contains(Uint(1)))
	assert.True(t, Through(Uint(1)).Contains(Uint(1)))
	assert.False(t, Until(Uint(1)).Contains(Uint(1)))
	assert.True(t, Full().Contains(String("anything")))
	assert.Equal(t, "[30, 50)", r.String())
}

func TestRangeEmpty(t *testing.T) {
	assert.True(t, Between(Uint(5), Uint(5)).Empty())
	assert.True(t, Between(Uint(6), Uint(5)).Empty())
	assert.False(t, Inclusive(Uint(5), Uint(5)).Empty())
	assert.False(t, From(Uint(5)).Empty())
}
