package strvalues

import (
	"fmt"
	"iter"
	"strings"
)

// kind is the closed set of internal representations of a [Values].
// Every operation switches exhaustively over these three cases.
type kind uint8

const (
	kindEmpty  kind = iota // no elements
	kindSingle             // exactly one element, stored without a slice
	kindMany               // zero or more elements in a backing slice
)

// Values is an immutable container of zero, one, or many strings.
//
// The zero value is the element-less container and is ready to use. A
// single element is stored inline with no slice allocation; only the
// multi-element form carries a backing slice. A many-form container
// holding zero or one element is valid (it arises from [From]) and is
// indistinguishable from the canonical form in every observable way.
type Values struct {
	kind kind
	one  string
	many []string
}

// emptySlice is the shared result of ToSlice on an element-less container,
// so that callers always receive a concrete zero-length slice without a
// fresh allocation.
var emptySlice = []string{}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Values holding exactly one element.
//
// Note that New("") holds one (empty) element and is therefore not equal
// to [Empty]; use Empty or the zero value for the no-element container.
func New(s string) Values {
	return Values{kind: kindSingle, one: s}
}

// From creates a Values over ss without copying. Ownership of the slice
// transfers to the container: the caller must not modify ss afterwards.
// From(nil) is the element-less container; a non-nil zero- or one-element
// slice is stored as-is and behaves identically to its canonical form.
func From(ss []string) Values {
	if ss == nil {
		return Values{}
	}
	return Values{kind: kindMany, many: ss}
}

// Empty returns the Values with no elements. Equivalent to the zero value.
func Empty() Values {
	return Values{}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements. It is O(1) for every form.
func (v Values) Count() int {
	switch v.kind {
	case kindSingle:
		return 1
	case kindMany:
		return len(v.many)
	default:
		return 0
	}
}

// At returns the element at index i (0-based).
// Returns [ErrIndexOutOfRange] when i is outside [0, Count()-1]; indexing
// never wraps or clamps, and every index of an element-less container is
// out of range.
func (v Values) At(i int) (string, error) {
	switch v.kind {
	case kindSingle:
		if i == 0 {
			return v.one, nil
		}
	case kindMany:
		if i >= 0 && i < len(v.many) {
			return v.many[i], nil
		}
	}
	return "", fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, v.Count())
}

// Get returns the element at index i together with a presence flag.
// It is the comma-ok form of [Values.At].
func (v Values) Get(i int) (string, bool) {
	s, err := v.At(i)
	return s, err == nil
}

// ToSlice returns the elements as a []string snapshot.
//
// The result is never nil: an element-less container yields a shared
// zero-length slice. A single element yields a fresh one-element slice.
// The many form returns its backing slice directly to avoid a copy — the
// caller must treat the result as read-only. Use [Values.CopyTo] when a
// privately owned copy is required.
func (v Values) ToSlice() []string {
	switch v.kind {
	case kindSingle:
		return []string{v.one}
	case kindMany:
		return v.many
	default:
		return emptySlice
	}
}

// CopyTo copies every element into dst and returns the number of elements
// copied. Returns [ErrNilDestination] when dst is nil and there are
// elements to copy, and [ErrDestinationTooSmall] when len(dst) < Count().
// Copying an element-less container is a no-op and always succeeds.
func (v Values) CopyTo(dst []string) (int, error) {
	n := v.Count()
	if n == 0 {
		return 0, nil
	}
	if dst == nil {
		return 0, ErrNilDestination
	}
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrDestinationTooSmall, n, len(dst))
	}
	switch v.kind {
	case kindSingle:
		dst[0] = v.one
	case kindMany:
		copy(dst, v.many)
	}
	return n, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Scalar conversion
// ─────────────────────────────────────────────────────────────────────────────

// Scalar converts the container to a single string.
//
// Zero elements yield ("", false) — no value, which is distinct from a
// container holding one empty string. One element is returned verbatim
// with no join applied. Two or more elements are joined with a comma in
// their original order. Use [Values.String] where a concrete string is
// always required.
func (v Values) Scalar() (string, bool) {
	switch v.Count() {
	case 0:
		return "", false
	case 1:
		s, _ := v.At(0)
		return s, true
	default:
		return strings.Join(v.many, ","), true
	}
}

// String returns the comma-joined display form, substituting "" for the
// no-value case. It implements [fmt.Stringer].
func (v Values) String() string {
	s, _ := v.Scalar()
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Concatenation
// ─────────────────────────────────────────────────────────────────────────────

// Concat returns a container holding a's elements followed by b's.
// When either side has no elements the other side is returned unchanged,
// with no allocation.
func Concat(a, b Values) Values {
	na, nb := a.Count(), b.Count()
	if na == 0 {
		return b
	}
	if nb == 0 {
		return a
	}
	out := make([]string, 0, na+nb)
	out = appendAll(out, a)
	out = appendAll(out, b)
	return Values{kind: kindMany, many: out}
}

// Concat returns a container holding v's elements followed by other's.
// It is the method form of the package-level [Concat].
func (v Values) Concat(other Values) Values {
	return Concat(v, other)
}

func appendAll(dst []string, v Values) []string {
	switch v.kind {
	case kindSingle:
		return append(dst, v.one)
	case kindMany:
		return append(dst, v.many...)
	default:
		return dst
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether s is one of the elements.
func (v Values) Contains(s string) bool {
	return v.IndexOf(s) >= 0
}

// IndexOf returns the index of the first element equal to s, or -1.
func (v Values) IndexOf(s string) int {
	switch v.kind {
	case kindSingle:
		if v.one == s {
			return 0
		}
	case kindMany:
		for i, e := range v.many {
			if e == s {
				return i
			}
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(element, index) for every element in index order.
func (v Values) Each(fn func(string, int)) {
	i := 0
	for s := range v.Seq() {
		fn(s, i)
		i++
	}
}

// Seq returns a lazy, restartable sequence of the elements in index order.
// The single form yields its scalar exactly once; the element-less form
// yields nothing.
//
//	for s := range v.Seq() {
//	    // ...
//	}
func (v Values) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		switch v.kind {
		case kindSingle:
			yield(v.one)
		case kindMany:
			for _, s := range v.many {
				if !yield(s) {
					return
				}
			}
		}
	}
}
