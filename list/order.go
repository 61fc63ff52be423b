package list

import (
	"encoding/binary"
	"hash/maphash"

	"golang.org/x/exp/constraints"

	"github.com/commonlib/datastructures/compare"
)

// Equal returns true if a and b hold equal values in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc returns true if a and b have the same length and eq holds for
// every pair of values at the same position.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for x, y := a.head, b.head; x != nil; x, y = x.next, y.next {
		if !eq(x.Value, y.Value) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically: the first unequal pair of
// values decides the result, and if one list is a strict prefix of the other
// it is the lesser. The result is -1, 0, or +1.
func Compare[T constraints.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, compare.Function[T])
}

// CompareFunc is like Compare, using cmp to compare pairs of values.
func CompareFunc[T any](a, b *List[T], cmp func(T, T) int) int {
	x, y := a.head, b.head
	for x != nil && y != nil {
		if c := cmp(x.Value, y.Value); c != 0 {
			return c
		}
		x, y = x.next, y.next
	}
	switch {
	case x != nil:
		return +1
	case y != nil:
		return -1
	default:
		return 0
	}
}

// PartialCompare compares a and b lexicographically like Compare, but for
// value types with unordered values (floating point NaN): if any pair of
// values examined by the comparison is unordered, the lists themselves are
// unordered and PartialCompare returns ok=false.
func PartialCompare[T constraints.Ordered](a, b *List[T]) (cmp int, ok bool) {
	return PartialCompareFunc(a, b, compare.Partial[T])
}

// PartialCompareFunc is like PartialCompare, using cmp to compare pairs of
// values.
func PartialCompareFunc[T any](a, b *List[T], cmp func(T, T) (int, bool)) (int, bool) {
	x, y := a.head, b.head
	for x != nil && y != nil {
		c, ok := cmp(x.Value, y.Value)
		if !ok {
			return 0, false
		}
		if c != 0 {
			return c, true
		}
		x, y = x.next, y.next
	}
	switch {
	case x != nil:
		return +1, true
	case y != nil:
		return -1, true
	default:
		return 0, true
	}
}

// Hash writes the content of the list to h: the length first, then every
// value in forward order through f. Lists holding equal values in the same
// order produce the same hash for the same seed.
func (list *List[T]) Hash(h *maphash.Hash, f func(h *maphash.Hash, value T)) {
	b := [8]byte{}
	binary.LittleEndian.PutUint64(b[:], uint64(list.size))
	h.Write(b[:])
	for e := list.head; e != nil; e = e.next {
		f(h, e.Value)
	}
}
