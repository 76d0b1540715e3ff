package strvalues

// This file provides the mutating half of a generic list surface so that a
// Values can stand in wherever such a surface is expected. The container is
// a fixed, read-only view once constructed: every operation here fails with
// [ErrReadOnly] and leaves the container untouched. Build a new container
// ([New], [From], [Concat]) instead of mutating an existing one.

// Add always fails with [ErrReadOnly].
func (v Values) Add(string) error { return ErrReadOnly }

// Insert always fails with [ErrReadOnly].
func (v Values) Insert(int, string) error { return ErrReadOnly }

// Set always fails with [ErrReadOnly]; elements cannot be assigned by index.
func (v Values) Set(int, string) error { return ErrReadOnly }

// Remove always fails with [ErrReadOnly].
func (v Values) Remove(string) error { return ErrReadOnly }

// RemoveAt always fails with [ErrReadOnly].
func (v Values) RemoveAt(int) error { return ErrReadOnly }

// Clear always fails with [ErrReadOnly].
func (v Values) Clear() error { return ErrReadOnly }
