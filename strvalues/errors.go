package strvalues

import "errors"

// Sentinel errors returned by Values operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := v.At(5)
//	if errors.Is(err, strvalues.ErrIndexOutOfRange) {
//	    // index was outside [0, Count()-1]
//	}
var (
	// ErrIndexOutOfRange is returned by [Values.At] when the index is
	// outside [0, Count()-1]. Every index is out of range on an
	// element-less container.
	ErrIndexOutOfRange = errors.New("strvalues: index out of range")

	// ErrReadOnly is returned by every mutating list operation: a Values
	// is a fixed, read-only view once constructed.
	ErrReadOnly = errors.New("strvalues: container is read-only")

	// ErrNilDestination is returned by [Values.CopyTo] when the destination
	// slice is nil and there are elements to copy.
	ErrNilDestination = errors.New("strvalues: nil destination slice")

	// ErrDestinationTooSmall is returned by [Values.CopyTo] when the
	// destination slice cannot hold every element.
	ErrDestinationTooSmall = errors.New("strvalues: destination slice too small")
)
