package cowmap

import "iter"

// Map is a standard key/value map surface over a [Holder]. Reads route
// through the holder's read view and writes through its write view;
// consumers use it like any mutable map, unaware of the lazy fork except
// for the sharing guarantee it provides. Iteration order follows the
// builtin map's own semantics (unordered).
type Map[K comparable, V any] struct {
	holder Holder[K, V]
}

// New creates a Map borrowing source until the first write.
// Returns [ErrNilSource] or [ErrNilClone] when either argument is absent.
func New[K comparable, V any](source map[K]V, clone CloneFunc[K, V]) (*Map[K, V], error) {
	h, err := NewHolder(source, clone)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{holder: *h}, nil
}

// DeriveMap creates a new unforked Map layered over parent's current
// effective contents, inheriting its clone function.
func DeriveMap[K comparable, V any](parent *Map[K, V]) *Map[K, V] {
	return &Map[K, V]{holder: *Derive(&parent.holder)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads — served by the holder's read view, never forcing a fork
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under key together with a presence flag.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.holder.Read()[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.holder.Read()[key]
	return ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.holder.Read())
}

// Keys returns all keys, in unspecified order.
func (m *Map[K, V]) Keys() []K {
	view := m.holder.Read()
	out := make([]K, 0, len(view))
	for k := range view {
		out = append(out, k)
	}
	return out
}

// Values returns all values, in unspecified order.
func (m *Map[K, V]) Values() []V {
	view := m.holder.Read()
	out := make([]V, 0, len(view))
	for _, v := range view {
		out = append(out, v)
	}
	return out
}

// Each calls fn for every entry, in unspecified order.
func (m *Map[K, V]) Each(fn func(K, V)) {
	for k, v := range m.holder.Read() {
		fn(k, v)
	}
}

// Seq returns an iterator over the entries, in unspecified order.
//
//	for k, v := range m.Seq() {
//	    // ...
//	}
func (m *Map[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.holder.Read() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Forked reports whether the underlying holder has created its private
// copy. Exposed for diagnostics.
func (m *Map[K, V]) Forked() bool {
	return m.holder.Forked()
}

// ─────────────────────────────────────────────────────────────────────────────
// Writes — served by the holder's write view, forking on first use
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key, inserting or updating per the builtin map's
// own assignment semantics.
func (m *Map[K, V]) Set(key K, value V) {
	m.holder.Write()[key] = value
}

// Delete removes key. Deleting an absent key is a no-op, but still forks.
func (m *Map[K, V]) Delete(key K) {
	delete(m.holder.Write(), key)
}

// Clear removes every entry from the private copy; the shared source is
// untouched.
func (m *Map[K, V]) Clear() {
	clear(m.holder.Write())
}
