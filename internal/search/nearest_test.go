package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNearestNextAcrossPanes(t *testing.T) {
	left := NewResults(Query{Text: "a"})
	left.Store.AddMatch(Range{100, 101})
	right := NewResults(Query{Text: "a"})
	right.Store.AddMatch(Range{50, 51})

	toIndex := func(addr int, side int) (int, bool) {
		switch {
		case side == 0 && addr == 100:
			return 30, true
		case side == 1 && addr == 50:
			return 25, true
		default:
			return 0, false
		}
	}
	row, ok := NearestNext([]Pane{
		{Results: left, Addr: 0, Side: 0},
		{Results: right, Addr: 0, Side: 1},
	}, toIndex)
	require.True(t, ok)
	require.Equal(t, 25, row)
}

func TestNearestNextFallsBackWhenOtherPaneEmpty(t *testing.T) {
	left := NewResults(Query{Text: "a"})
	left.Store.AddMatch(Range{100, 101})

	toIndex := func(addr int, side int) (int, bool) {
		if side == 0 && addr == 100 {
			return 30, true
		}
		return 0, false
	}
	row, ok := NearestNext([]Pane{
		{Results: left, Addr: 0, Side: 0},
		{Results: nil, Addr: 0, Side: 1},
	}, toIndex)
	require.True(t, ok)
	require.Equal(t, 30, row)
}

func TestNearestPrioritizesNonWrapped(t *testing.T) {
	// Left's only match requires wrapping; right's does not. Right must win
	// even though its row index is numerically larger.
	left := NewResults(Query{Text: "a"})
	left.Store.AddMatch(Range{5, 6})
	right := NewResults(Query{Text: "a"})
	right.Store.AddMatch(Range{5, 6})

	toIndex := func(addr int, side int) (int, bool) { return 100 + side, true }

	row, ok := NearestNext([]Pane{
		{Results: left, Addr: 10, Side: 0},  // wraps (nothing after 10)
		{Results: right, Addr: 0, Side: 1},  // does not wrap
	}, toIndex)
	require.True(t, ok)
	require.Equal(t, 101, row)
}

func TestNearestPrevBreaksTiesDescending(t *testing.T) {
	left := NewResults(Query{Text: "a"})
	left.Store.AddMatch(Range{5, 6})
	right := NewResults(Query{Text: "a"})
	right.Store.AddMatch(Range{8, 9})

	toIndex := func(addr int, side int) (int, bool) {
		if side == 0 {
			return 10, true
		}
		return 20, true
	}
	row, ok := NearestPrev([]Pane{
		{Results: left, Addr: 100, Side: 0},
		{Results: right, Addr: 100, Side: 1},
	}, toIndex)
	require.True(t, ok)
	require.Equal(t, 20, row)
}

func TestNearestNoneWhenAllEmpty(t *testing.T) {
	_, ok := NearestNext(nil, func(int, int) (int, bool) { return 0, true })
	require.False(t, ok)
}
