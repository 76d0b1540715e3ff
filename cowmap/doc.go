// Package cowmap provides a copy-on-write overlay for Go maps, inspired by
// .NET MVC's CopyOnWriteDictionary and its holder.
//
// # Overview
//
// Read-heavy code often wants many logical "copies" of a base map (default
// configuration, shared header sets) where almost none of the copies are
// ever mutated. Cloning the base eagerly for every copy wastes an O(n)
// allocation per consumer. A [Holder] instead borrows the shared source and
// forks a private copy only on the first write:
//
//	base := map[string]int{"retries": 3}
//	m, _ := cowmap.New(base, cowmap.Clone[string, int])
//	m.Get("retries")   // reads the shared base, no copy made
//	m.Set("retries", 5) // forks: base is cloned once, then mutated privately
//	base["retries"]    // still 3 — the source is never touched
//
// The fork happens at most once per holder; every later read and write acts
// on the private copy.
//
// # Derivation chains
//
// [Derive] builds a new borrowed holder over a parent's current effective
// view — the parent's private copy if it has forked, otherwise the parent's
// original source. Layering holder upon holder therefore never accumulates
// redundant clones: each layer pays for at most its own fork.
//
// # Concurrency
//
// Holders are not internally synchronised. Concurrent writes (or a write
// concurrent with reads) on one holder are undefined; callers needing that
// must serialise access themselves. Reads on one holder with no write in
// flight are safe, and any number of holders may share one source
// concurrently, because no holder ever mutates its source.
package cowmap
