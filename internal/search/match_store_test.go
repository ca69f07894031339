package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchStoreIsIn(t *testing.T) {
	m := NewMatchStore()
	m.AddMatch(Range{10, 12})
	require.True(t, m.IsIn(10))
	require.True(t, m.IsIn(11))
	require.False(t, m.IsIn(12))
	require.False(t, m.IsIn(9))
}

func TestSearchWrapAround(t *testing.T) {
	m := NewMatchStore()
	m.AddMatch(Range{10, 12})

	next := m.Next(15)
	require.True(t, next.Wrapped)
	require.Equal(t, Range{10, 12}, next.Match)

	prev := m.Prev(5)
	require.True(t, prev.Wrapped)
	require.Equal(t, Range{10, 12}, prev.Match)

	next = m.Next(8)
	require.False(t, next.Wrapped)
	require.Equal(t, Range{10, 12}, next.Match)
}

func TestMatchStoreEmpty(t *testing.T) {
	m := NewMatchStore()
	require.True(t, m.Next(0).None)
	require.True(t, m.Prev(0).None)
	require.False(t, m.IsIn(0))
}

func TestMatchStoreMultipleRangesOrdering(t *testing.T) {
	m := NewMatchStore()
	m.AddMatch(Range{5, 8})
	m.AddMatch(Range{20, 25})
	m.AddMatch(Range{30, 31})

	require.Equal(t, Range{20, 25}, m.Next(10).Match)
	require.False(t, m.Next(10).Wrapped)
	require.Equal(t, Range{5, 8}, m.Prev(10).Match)
	require.False(t, m.Prev(10).Wrapped)

	// Past the last match, Next wraps to the first.
	r := m.Next(100)
	require.True(t, r.Wrapped)
	require.Equal(t, Range{5, 8}, r.Match)

	// Before the first match, Prev wraps to the last.
	r = m.Prev(0)
	require.True(t, r.Wrapped)
	require.Equal(t, Range{30, 31}, r.Match)
}
