package value

import "strings"

// Bound is one end of a Range. The zero Bound is unbounded.
type Bound struct {
	Value     Value
	Inclusive bool
}

// Unbounded reports whether the bound places no restriction.
func (b Bound) Unbounded() bool { return !b.Value.IsValid() }

// Range is an interval of Values used for ordered index lookups.
type Range struct {
	Lower Bound
	Upper Bound
}

// Between returns the half-open range [lo, hi).
func Between(lo, hi Value) Range {
	return Range{
		Lower: Bound{Value: lo, Inclusive: true},
		Upper: Bound{Value: hi},
	}
}

// Inclusive returns the closed range [lo, hi].
func Inclusive(lo, hi Value) Range {
	return Range{
		Lower: Bound{Value: lo, Inclusive: true},
		Upper: Bound{Value: hi, Inclusive: true},
	}
}

// From returns the range [lo, +inf).
func From(lo Value) Range {
	return Range{Lower: Bound{Value: lo, Inclusive: true}}
}

// Above returns the range (lo, +inf).
func Above(lo Value) Range {
	return Range{Lower: Bound{Value: lo}}
}

// Until returns the range (-inf, hi).
func Until(hi Value) Range {
	return Range{Upper: Bound{Value: hi}}
}

// Through returns the range (-inf, hi].
func Through(hi Value) Range {
	return Range{Upper: Bound{Value: hi, Inclusive: true}}
}

// Full returns the unbounded range.
func Full() Range { return Range{} }

// AboveLower reports whether v satisfies the lower bound.
func (r Range) AboveLower(v Value) bool {
	if r.Lower.Unbounded() {
		return true
	}
	c := Compare(v, r.Lower.Value)
	return c > 0 || (c == 0 && r.Lower.Inclusive)
}

// BelowUpper reports whether v satisfies the upper bound.
func (r Range) BelowUpper(v Value) bool {
	if r.Upper.Unbounded() {
		return true
	}
	c := Compare(v, r.Upper.Value)
	return c < 0 || (c == 0 && r.Upper.Inclusive)
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v Value) bool {
	return r.AboveLower(v) && r.BelowUpper(v)
}

// Empty reports whether no value can satisfy the range.
func (r Range) Empty() bool {
	if r.Lower.Unbounded() || r.Upper.Unbounded() {
		return false
	}
	c := Compare(r.Lower.Value, r.Upper.Value)
	if c > 0 {
		return true
	}
	return c == 0 && !(r.Lower.Inclusive && r.Upper.Inclusive)
}

// String renders the range in interval notation.
func (r Range) String() string {
	var sb strings.Builder
	if r.Lower.Inclusive {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	if r.Lower.Unbounded() {
		sb.WriteString("-inf")
	} else {
		sb.WriteString(r.Lower.Value.String())
	}
	sb.WriteString(", ")
	if r.Upper.Unbounded() {
		sb.WriteString("+inf")
	} else {
		sb.WriteString(r.Upper.Value.String())
	}
	if r.Upper.Inclusive {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}
	return sb.String()
}
