// Package compare contains comparison functions shared by the ordered
// containers of this module.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Partial is a comparison function for ordered types whose values may not all
// be mutually ordered. It returns ok=false when a and b are unordered, which
// for floating point types happens when either operand is NaN; NaN is
// unordered even against itself.
func Partial[T constraints.Ordered](a, b T) (cmp int, ok bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return +1, true
	case a == b:
		return 0, true
	default:
		return 0, false
	}
}
