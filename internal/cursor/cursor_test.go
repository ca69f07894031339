package cursor

import (
	"testing"

	"github.com/grailbio/biodiff/internal/action"
	"github.com/stretchr/testify/require"
)

func TestCursorXWithinViewport(t *testing.T) {
	c := New(8, 4, 8)
	delta := c.Mov(action.Move{Kind: action.MoveCursorX, X: 1}, Range{-8, 8})
	require.Equal(t, 0, delta)
	col, row := c.ColRow()
	require.Equal(t, 1, col)
	require.Equal(t, 0, row)
}

func TestCursorXOverflowShiftsViewport(t *testing.T) {
	c := New(8, 4, 8)
	for i := 0; i < 7; i++ {
		c.Mov(action.Move{Kind: action.MoveCursorX, X: 1}, Range{-8, 8})
	}
	col, _ := c.ColRow()
	require.Equal(t, 7, col)
	delta := c.Mov(action.Move{Kind: action.MoveCursorX, X: 1}, Range{-8, 8})
	require.Equal(t, 1, delta)
	col, _ = c.ColRow()
	require.Equal(t, 7, col)
}

func TestCursorYOverflowWeightsByBytesPerRow(t *testing.T) {
	c := New(8, 4, 8)
	for i := 0; i < 3; i++ {
		c.Mov(action.Move{Kind: action.MoveCursorY, Y: 1}, Range{-8, 32})
	}
	delta := c.Mov(action.Move{Kind: action.MoveCursorY, Y: 1}, Range{-8, 32})
	require.Equal(t, 8, delta)
}

func TestInvariantCursorWithinSize(t *testing.T) {
	c := New(8, 4, 8)
	moves := []action.Move{
		{Kind: action.MoveCursorX, X: -5},
		{Kind: action.MoveCursorY, Y: 10},
		{Kind: action.MoveCursorX, X: 3},
		{Kind: action.MoveViewY, Y: -2},
	}
	for _, m := range moves {
		c.Mov(m, Range{-100, 100})
		require.GreaterOrEqual(t, c.Index(), 0)
		require.Less(t, c.Index(), c.Size())
	}
}

func TestJumpThenUnboundedLandsOnTarget(t *testing.T) {
	c := New(8, 4, 8)
	c.Mov(action.Move{Kind: action.MoveCursorX, X: 3}, Range{-8, 8})
	c.Mov(action.Move{Kind: action.MoveCursorY, Y: 1}, Range{-8, 8})
	// Jumping by 0 should reproduce the current grid position exactly.
	col, row := c.Jump(0)
	require.Equal(t, 3, col)
	require.Equal(t, 1, row)
}

func TestFullRowMove(t *testing.T) {
	c := New(8, 4, 8)
	rows, ok := c.FullRowMove(16)
	require.True(t, ok)
	require.Equal(t, 2, rows)
	_, ok = c.FullRowMove(5)
	require.False(t, ok)
}
