package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyBounds(t *testing.T) {
	b := New[int]()
	lo, hi := b.Bounds()
	require.Equal(t, 0, lo)
	require.Equal(t, 0, hi)
	_, ok := b.Get(0)
	require.False(t, ok)
}

func TestExtendEndExtendFront(t *testing.T) {
	b := New[int]()
	b.ExtendEnd([]int{0, 1, 2})
	lo, hi := b.Bounds()
	require.Equal(t, 0, lo)
	require.Equal(t, 3, hi)
	v, ok := b.Get(1)
	require.True(t, ok)
	require.Equal(t, 1, v)

	b.ExtendFront([]int{-2, -1})
	lo, hi = b.Bounds()
	require.Equal(t, -2, lo)
	require.Equal(t, 3, hi)
	for i, want := range []int{-2, -1, 0, 1, 2} {
		v, ok := b.Get(lo + i)
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	_, ok = b.Get(-3)
	require.False(t, ok)
	_, ok = b.Get(3)
	require.False(t, ok)
}

func TestGetRangeBlankOutsideBounds(t *testing.T) {
	b := New[int]()
	b.ExtendEnd([]int{10, 20})
	vals := b.GetRange(-1, 3)
	require.Len(t, vals, 4)
	require.False(t, vals[0].OK)
	require.True(t, vals[1].OK)
	require.Equal(t, 10, vals[1].Value)
	require.True(t, vals[2].OK)
	require.Equal(t, 20, vals[2].Value)
	require.False(t, vals[3].OK)
}

func TestBinarySearchExact(t *testing.T) {
	b := New[int]()
	b.ExtendEnd([]int{0, 2, 4, 6, 8})
	proj := func(v int) (int, bool) { return v, true }
	i, ok := b.BinarySearch(4, proj)
	require.True(t, ok)
	require.Equal(t, 2, i)

	i, ok = b.BinarySearch(5, proj)
	require.False(t, ok)
	require.Equal(t, 3, i)
}

// gapEl models a cell with an address that may be absent (a gap row),
// mirroring AlignedCell's one-sided addressing.
type gapEl struct {
	addr    int
	present bool
}

func TestBinarySearchSkipsGaps(t *testing.T) {
	b := New[gapEl]()
	// addr sequence: 0, 1, 1(gap), 1(gap), 2, 3
	b.ExtendEnd([]gapEl{
		{0, true},
		{1, true},
		{0, false},
		{0, false},
		{2, true},
		{3, true},
	})
	proj := func(v gapEl) (int, bool) {
		if !v.present {
			return 0, false
		}
		return v.addr, true
	}
	i, ok := b.BinarySearch(2, proj)
	require.True(t, ok)
	require.Equal(t, 4, i)

	i, ok = b.BinarySearch(1, proj)
	require.True(t, ok)
	require.Equal(t, 1, i)
}

func TestFirstLast(t *testing.T) {
	b := New[int]()
	_, ok := b.First()
	require.False(t, ok)
	b.ExtendEnd([]int{7})
	b.ExtendFront([]int{5, 6})
	v, ok := b.First()
	require.True(t, ok)
	require.Equal(t, 5, v)
	v, ok = b.Last()
	require.True(t, ok)
	require.Equal(t, 7, v)
}
