package strvalues

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// This file implements the normalise-then-compare equality family and the
// matching hash. Equality is ordinal, order-sensitive sequence equality and
// is independent of the internal form: a single-element container always
// equals a one-element slice container holding the same string.

// Equal reports whether a and b hold the same elements in the same order,
// compared ordinally (byte-wise).
func Equal(a, b Values) bool {
	n := a.Count()
	if n != b.Count() {
		return false
	}
	for i := 0; i < n; i++ {
		ea, _ := a.At(i)
		eb, _ := b.At(i)
		if ea != eb {
			return false
		}
	}
	return true
}

// Equal reports whether v and other hold the same elements in the same
// order. It is the method form of the package-level [Equal].
func (v Values) Equal(other Values) bool {
	return Equal(v, other)
}

// EqualScalar reports whether v holds exactly one element equal to s.
// The bare scalar is normalised into the single-element form first, so a
// one-element slice container compares equal to its scalar.
func EqualScalar(v Values, s string) bool {
	return Equal(v, New(s))
}

// EqualSlice reports whether v's elements match ss in order.
// The bare slice is normalised first: a nil ss matches the element-less
// container.
func EqualSlice(v Values, ss []string) bool {
	return Equal(v, From(ss))
}

// IsNullOrEmpty reports whether v carries no usable value: no elements at
// all, or exactly one element that is itself the empty string. A container
// with two or more elements is never null-or-empty, regardless of their
// contents.
func IsNullOrEmpty(v Values) bool {
	switch v.Count() {
	case 0:
		return true
	case 1:
		s, _ := v.At(0)
		return s == ""
	default:
		return false
	}
}

// Hash returns an order-sensitive 64-bit hash of the elements.
//
// Equal containers hash identically regardless of internal form, so Hash
// agrees with [Equal]. Each element is length-prefixed before hashing so
// that ["ab"] and ["a", "b"] cannot collide structurally.
func (v Values) Hash() uint64 {
	d := xxhash.New()
	var lenbuf [8]byte
	for s := range v.Seq() {
		binary.LittleEndian.PutUint64(lenbuf[:], uint64(len(s)))
		_, _ = d.Write(lenbuf[:])
		_, _ = d.WriteString(s)
	}
	return d.Sum64()
}
