// Package value provides the scalar Value type used as index keys and the
// Range type used for ordered index lookups.
//
// # Ordering
//
// Values are ordered by Kind first and by their payload within a Kind, so a
// Range over one kind never matches values of another kind:
//
//	r := value.Between(value.Uint(30), value.Uint(50)) // [30, 50)
//	r.Contains(value.Uint(45))                          // true
//	r.Contains(value.Int(45))                           // false, different kind
//
// The zero Value is invalid and stands for "no value"; element accessors
// return it for fields that are unset.
package value
