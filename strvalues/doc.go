// Package strvalues provides Values, an immutable container for zero, one,
// or many strings, inspired by .NET's Microsoft.Extensions.Primitives
// StringValues.
//
// # Overview
//
// Frameworks frequently pass around "a string, or maybe several strings"
// (HTTP header values, query parameters, configuration entries). Forcing
// every such value into a []string allocates a slice even in the
// overwhelmingly common zero- and one-element cases. Values collapses those
// cases into non-allocating forms while behaving, to every observer, like
// an ordinary read-only string sequence:
//
//	v := strvalues.New("gzip")             // one element, no slice
//	v = strvalues.Concat(v, strvalues.From([]string{"br", "deflate"}))
//	v.Count()                              // → 3
//	s, _ := v.Scalar()                     // → "gzip,br,deflate"
//
// # Representation independence
//
// A Values holding exactly one element behaves identically whether it was
// built from a scalar or from a one-element slice: Equal, Hash, Scalar,
// and every other accessor cannot tell the two apart. Code never needs to
// care which internal form it received.
//
// # Immutability
//
// Values is a plain value type and never changes after construction.
// Deriving operations ([Concat]) return new containers; the mutating half
// of a list surface (Add, Insert, Remove, …) is present for generic
// consumers but always fails with [ErrReadOnly]. Values are safe for
// unsynchronised concurrent reads.
//
// # .NET equivalents
//
// The API maps 1-to-1 to StringValues where Go allows. Differences:
//   - Go has no null string, so the absent scalar becomes the comma-ok
//     form: Scalar returns ("", false) for an element-less container,
//     while String always returns a concrete string.
//   - Implicit conversions become explicit constructors ([New], [From])
//     and conversion methods ([Values.Scalar], [Values.ToSlice]).
//   - Operator equality becomes named functions ([Equal], [EqualScalar],
//     [EqualSlice]) that normalise both sides before comparing.
package strvalues
