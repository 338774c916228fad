package value

import (
	"bytes"
	"cmp"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid marks the zero Value, used for "no value".
	KindInvalid Kind = iota
	// KindBool represents a boolean value.
	KindBool
	// KindInt represents a signed integer value.
	KindInt
	// KindUint represents an unsigned integer value.
	KindUint
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindUUID represents a UUID value.
	KindUUID
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindUUID:
		return "uuid"
	default:
		return "invalid"
	}
}

// Value is a small typed scalar used as an index key.
//
// The zero Value has KindInvalid and stands for an absent field.
// Values are comparable with == and ordered by Compare.
type Value struct {
	Kind Kind
	I64  int64
	U64  uint64
	F64  float64
	B    bool
	s    string
	id   uuid.UUID
}

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Int returns a signed integer Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Uint returns an unsigned integer Value.
func Uint(v uint64) Value { return Value{Kind: KindUint, U64: v} }

// Float returns a float Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, s: v} }

// UUID returns a UUID Value.
func UUID(v uuid.UUID) Value { return Value{Kind: KindUUID, id: v} }

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool { return v.Kind != KindInvalid }

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// AsInt64 returns the integer value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsUint64 returns the unsigned value if Kind is KindUint.
func (v Value) AsUint64() (uint64, bool) {
	if v.Kind != KindUint {
		return 0, false
	}
	return v.U64, true
}

// AsFloat64 returns the float value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsUUID returns the UUID value if Kind is KindUUID.
func (v Value) AsUUID() (uuid.UUID, bool) {
	if v.Kind != KindUUID {
		return uuid.Nil, false
	}
	return v.id, true
}

// Key returns a stable string representation for use in maps. Values that
// are Equal share a key: -0 and +0 map together, as do all NaNs.
func (v Value) Key() string {
	switch v.Kind {
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	case KindInt:
		return "i:" + strconv.FormatInt(v.I64, 10)
	case KindUint:
		return "u:" + strconv.FormatUint(v.U64, 10)
	case KindFloat:
		switch {
		case math.IsNaN(v.F64):
			return "f:nan"
		case v.F64 == 0:
			return "f:0"
		}
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.s
	case KindUUID:
		return "x:" + v.id.String()
	default:
		return "invalid"
	}
}

// Hash returns a 64-bit hash of the value's key.
func (v Value) Hash() uint64 {
	return xxhash.Sum64String(v.Key())
}

// Equal reports whether v and other hold the same kind and value.
func (v Value) Equal(other Value) bool {
	return Compare(v, other) == 0
}

// String returns a human readable form of the value.
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.B)
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindUint:
		return strconv.FormatUint(v.U64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindUUID:
		return v.id.String()
	default:
		return "<invalid>"
	}
}

// Compare orders values by kind first and by value within a kind.
// It returns -1, 0 or +1. NaN floats sort before all other floats.
func Compare(a, b Value) int {
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case KindBool:
		switch {
		case a.B == b.B:
			return 0
		case !a.B:
			return -1
		default:
			return 1
		}
	case KindInt:
		return cmp.Compare(a.I64, b.I64)
	case KindUint:
		return cmp.Compare(a.U64, b.U64)
	case KindFloat:
		return cmp.Compare(a.F64, b.F64)
	case KindString:
		return cmp.Compare(a.s, b.s)
	case KindUUID:
		return bytes.Compare(a.id[:], b.id[:])
	default:
		return 0
	}
}

// Less reports whether a sorts before b.
func Less(a, b Value) bool {
	return Compare(a, b) < 0
}
