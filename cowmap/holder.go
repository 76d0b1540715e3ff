package cowmap

import "maps"

// CloneFunc produces a newly allocated, independent map with the same
// contents as m. It must be pure: no mutation of m, and the result must
// share no structure with it.
type CloneFunc[K comparable, V any] func(m map[K]V) map[K]V

// Clone is the default [CloneFunc]: a shallow copy via [maps.Clone].
// Values are copied by assignment, so reference-typed values still alias
// the originals; supply a deep-copying CloneFunc when that matters.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	return maps.Clone(m)
}

// ownership is the two-state lifecycle of a [Holder]. The transition is
// one-way: borrowed → owned on the first write, never back.
type ownership uint8

const (
	borrowed ownership = iota // reads go to the shared source
	owned                     // reads and writes go to the private copy
)

// Holder wraps a shared source map and forks a private copy on the first
// write. It never mutates the source, so any number of holders may borrow
// the same source at once.
type Holder[K comparable, V any] struct {
	source map[K]V
	copy   map[K]V
	clone  CloneFunc[K, V]
	state  ownership
}

// NewHolder creates a borrowed holder over source.
// Returns [ErrNilSource] or [ErrNilClone] when either argument is absent.
func NewHolder[K comparable, V any](source map[K]V, clone CloneFunc[K, V]) (*Holder[K, V], error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if clone == nil {
		return nil, ErrNilClone
	}
	return &Holder[K, V]{source: source, clone: clone}, nil
}

// Derive creates a new borrowed holder over parent's current effective
// view: the private copy if parent has forked, otherwise parent's original
// source. The clone function is inherited. Mutating the derived holder
// forks it privately and never affects the parent.
func Derive[K comparable, V any](parent *Holder[K, V]) *Holder[K, V] {
	return &Holder[K, V]{source: parent.Read(), clone: parent.clone}
}

// Read returns the map to query: the private copy once forked, otherwise
// the shared source. It never triggers a fork and is O(1). The caller must
// not mutate the result; use [Holder.Write] for that.
func (h *Holder[K, V]) Read() map[K]V {
	if h.state == owned {
		return h.copy
	}
	return h.source
}

// Write returns the map to mutate, forking the source into a private copy
// on the first call. The fork happens exactly once: subsequent calls
// return the same copy without re-cloning. O(n) in the source size on the
// first call, O(1) thereafter.
func (h *Holder[K, V]) Write() map[K]V {
	if h.state == borrowed {
		h.copy = h.clone(h.source)
		h.state = owned
	}
	return h.copy
}

// Forked reports whether the holder has created its private copy.
// Exposed for diagnostics and derivation logic; ordinary callers never
// need it.
func (h *Holder[K, V]) Forked() bool {
	return h.state == owned
}
