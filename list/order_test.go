package list

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	n := new(List[uint8])
	m := new(List[uint8])
	require.True(t, Equal(n, m))

	n.PushFront(1)
	require.False(t, Equal(n, m))
	m.PushBack(1)
	require.True(t, Equal(n, m))

	require.False(t, Equal(New[int](2, 3, 4), New[int](1, 2, 3)))
}

func TestEqualFunc(t *testing.T) {
	n := New("a", "b")
	m := New("A", "B")

	require.False(t, Equal(n, m))
	require.True(t, EqualFunc(n, m, func(x, y string) bool {
		return x == y || x == string(y[0]+'a'-'A')
	}))
}

func TestCompare(t *testing.T) {
	empty := new(List[int])
	m := New(1, 2, 3)

	require.Equal(t, 0, Compare(empty, empty))
	require.Equal(t, 0, Compare(m, m.Clone()))

	// A strict prefix is the lesser list.
	require.Equal(t, -1, Compare(empty, m))
	require.Equal(t, +1, Compare(m, empty))
	require.Equal(t, -1, Compare(New(1, 2), m))

	// The first unequal pair decides, before any length difference.
	require.Equal(t, -1, Compare(New(1, 2, 3), New(1, 3)))
	require.Equal(t, +1, Compare(New(2), New(1, 2, 3)))
}

func TestCompareFunc(t *testing.T) {
	m := New("aa", "b")
	n := New("c", "dd")

	byLength := func(a, b string) int { return len(a) - len(b) }
	require.Equal(t, +1, CompareFunc(m, n, byLength))
	require.Equal(t, 0, CompareFunc(m, m.Clone(), byLength))
}

func TestPartialCompare(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		scenario string
		a, b     *List[float64]
		cmp      int
		ok       bool
	}{
		{
			scenario: "lists of NaN are incomparable",
			a:        New(nan),
			b:        New(nan),
			ok:       false,
		},

		{
			scenario: "NaN is incomparable to ordinary values",
			a:        New(nan),
			b:        New(1.0),
			ok:       false,
		},

		{
			scenario: "incomparability propagates from any examined pair",
			a:        New(1.0, 2.0, nan),
			b:        New(1.0, 2.0, 3.0),
			ok:       false,
		},

		{
			scenario: "exhaustion of one list still orders the pair",
			a:        New(1.0, 2.0, 4.0, 2.0),
			b:        New(1.0),
			cmp:      +1,
			ok:       true,
		},

		{
			scenario: "ordinary values compare lexicographically",
			a:        New(1.0, 2.0),
			b:        New(1.0, 3.0),
			cmp:      -1,
			ok:       true,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			cmp, ok := PartialCompare(test.a, test.b)
			require.Equal(t, test.ok, ok)
			if ok {
				require.Equal(t, test.cmp, cmp)
			}
		})
	}
}

func hashOf(seed maphash.Seed, list *List[int]) uint64 {
	h := maphash.Hash{}
	h.SetSeed(seed)
	list.Hash(&h, func(h *maphash.Hash, value int) {
		b := [8]byte{}
		binary.LittleEndian.PutUint64(b[:], uint64(value))
		h.Write(b[:])
	})
	return h.Sum64()
}

func TestHash(t *testing.T) {
	seed := maphash.MakeSeed()

	x := new(List[int])
	y := new(List[int])
	require.Equal(t, hashOf(seed, x), hashOf(seed, y))

	x.PushBack(1)
	x.PushBack(2)
	x.PushBack(3)

	y.PushFront(3)
	y.PushFront(2)
	y.PushFront(1)

	// Same values in the same order hash identically, however the lists were
	// built.
	require.Equal(t, hashOf(seed, x), hashOf(seed, y))

	y.PopBack()
	require.NotEqual(t, hashOf(seed, x), hashOf(seed, y))
}
