package cowmap

import "errors"

// Sentinel errors returned by holder and map construction.
//
// Use [errors.Is] for comparisons:
//
//	_, err := cowmap.New[string, int](nil, cowmap.Clone[string, int])
//	if errors.Is(err, cowmap.ErrNilSource) {
//	    // no backing map was supplied
//	}
var (
	// ErrNilSource is returned by [NewHolder] and [New] when the source
	// map is nil.
	ErrNilSource = errors.New("cowmap: source map must not be nil")

	// ErrNilClone is returned by [NewHolder] and [New] when the clone
	// function is nil.
	ErrNilClone = errors.New("cowmap: clone function must not be nil")
)
