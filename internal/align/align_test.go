package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/biodiff/internal/action"
	"github.com/grailbio/biodiff/internal/query"
	"github.com/grailbio/biodiff/internal/search"
)

func testQuery(t *testing.T) search.Query {
	t.Helper()
	q, err := search.NewQuery("a", query.Plain)
	require.NoError(t, err)
	return q
}

func matchedCells(n int, startAddr int) []Cell {
	cells := make([]Cell, n)
	for i := 0; i < n; i++ {
		cells[i] = Cell{
			LeftAddr: startAddr + i, RightAddr: startAddr + i,
			LeftByte: Byte(byte('a' + i%26)), RightByte: Byte(byte('a' + i%26)),
		}
	}
	return cells
}

func newFilledView(t *testing.T, cols, rows, n int) *View {
	t.Helper()
	v := New(
		FileState{Name: "left", Content: []byte("abcdefghijklmnop")},
		FileState{Name: "right", Content: []byte("abcdefghijklmnop")},
		cols, rows, false,
	)
	require.True(t, v.Append(matchedCells(n, 0)))
	return v
}

func TestAppendPrependViewportIntersection(t *testing.T) {
	v := New(
		FileState{Name: "a", Content: []byte("abc")},
		FileState{Name: "b", Content: []byte("abc")},
		4, 4, false,
	)
	// a 4x4 viewport starting at index 0 is not touched by cells appended
	// far beyond it.
	assert.True(t, v.Append(matchedCells(16, 0)))

	far := matchedCells(4, 1000)
	assert.False(t, v.Append(far))

	lo, _ := v.Bounds()
	outOfView := matchedCells(4, lo-1000)
	assert.False(t, v.Prepend(outOfView))
}

func TestContentFindsFirstMappedCellWhenRowStartIsAGap(t *testing.T) {
	v := New(
		FileState{Name: "a", Content: []byte("abcdef")},
		FileState{Name: "b", Content: []byte("abcdef")},
		4, 1, false,
	)
	require.True(t, v.Append(matchedCells(4, 0)))
	require.True(t, v.Prepend(matchedCells(2, -2)))

	// Put the row's first column (viewportIndex+0) one step before the
	// buffer's lowest mapped index, so column 0 is a gap but column 1
	// within the same row is mapped.
	v.viewportIndex = -3

	lines := v.Content()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].HasLeftAddr, "row address must come from the first mapped cell, not column 0")
	assert.True(t, lines[0].HasRightAddr)
	assert.Equal(t, -2, lines[0].LeftAddr)
	assert.Equal(t, -2, lines[0].RightAddr)
}

func TestGotoFindsMappedAddress(t *testing.T) {
	v := newFilledView(t, 4, 4, 16)
	redraw, err := v.Goto(false, 10)
	require.NoError(t, err)
	assert.True(t, redraw.Changed)

	left, right, ok := v.CurrentCursorAddresses()
	require.True(t, ok)
	assert.Equal(t, 10, left)
	assert.Equal(t, 10, right)
}

func TestGotoUnmappedAddressErrors(t *testing.T) {
	v := newFilledView(t, 4, 4, 16)
	_, err := v.Goto(false, 9999)
	require.Error(t, err)
	var target *GotoErrAddressNotMapped
	assert.ErrorAs(t, err, &target)
}

func TestJumpNextDifferenceSkipsToMismatch(t *testing.T) {
	v := New(
		FileState{Name: "a", Content: []byte("aaaaa")},
		FileState{Name: "b", Content: []byte("aaaaa")},
		5, 5, false,
	)
	cells := matchedCells(5, 0)
	cells[3].RightByte = Byte('z')
	require.True(t, v.Append(cells))

	v.JumpNextDifference(true, false)
	left, right, ok := v.CurrentCursorAddresses()
	require.True(t, ok)
	assert.Equal(t, 3, left)
	assert.Equal(t, 3, right)
}

func TestJumpNextDifferenceInsertionsOnly(t *testing.T) {
	v := New(
		FileState{Name: "a", Content: []byte("aaaaa")},
		FileState{Name: "b", Content: []byte("aaaaa")},
		5, 5, false,
	)
	cells := matchedCells(5, 0)
	cells[2].RightByte = Byte('z')           // mismatch, not a gap
	cells[4].LeftByte = OptByte{Present: false} // gap
	require.True(t, v.Append(cells))

	v.JumpNextDifference(true, true)
	_, _, ok := v.CurrentCursorAddresses()
	require.True(t, ok)
	c, found := v.buf.Get(v.cursorIndex())
	require.True(t, found)
	assert.True(t, c.IsGapLeft())
}

func TestDestructSucceedsOnMappedCursor(t *testing.T) {
	v := newFilledView(t, 4, 4, 16)
	_, err := v.Goto(false, 5)
	require.NoError(t, err)

	first, second, ok := v.Destruct()
	require.True(t, ok)
	assert.Equal(t, 5, first.Index)
	assert.Equal(t, 5, second.Index)
	assert.Equal(t, "left", first.Name)
	assert.Equal(t, "right", second.Name)
}

func TestDestructFailsOnUnmappedCursor(t *testing.T) {
	v := New(
		FileState{Name: "a", Content: []byte("abc")},
		FileState{Name: "b", Content: []byte("abc")},
		4, 4, false,
	)
	_, _, ok := v.Destruct()
	assert.False(t, ok)
}

func TestResizeAddRemoveColumn(t *testing.T) {
	v := newFilledView(t, 4, 4, 16)
	assert.True(t, v.AddColumn())

	for v.RemoveColumn() {
	}
	assert.False(t, v.RemoveColumn())
}

func TestAutoColumnAppliesHeuristic(t *testing.T) {
	v := newFilledView(t, 4, 4, 16)
	applied := v.AutoColumn(func(left, right []byte) int { return 8 })
	assert.True(t, applied)

	notApplied := v.AutoColumn(func(left, right []byte) int { return 0 })
	assert.False(t, notApplied)
}

func TestMoveAroundReflectsRTL(t *testing.T) {
	ltr := newFilledView(t, 4, 4, 16)
	rtl := newFilledView(t, 4, 4, 16)
	rtl.rightToLeft = true

	ltr.MoveAround(action.Move{Kind: action.MoveCursorX, X: 1})
	rtl.MoveAround(action.Move{Kind: action.MoveCursorX, X: 1})

	lCol, _ := ltr.CursorColRow()
	rCol, _ := rtl.CursorColRow()
	assert.NotEqual(t, lCol, rCol)
}

func TestSetupSearchScopesByActivePane(t *testing.T) {
	v := newFilledView(t, 4, 4, 16)
	contexts := v.SetupSearch(testQuery(t), action.ActiveFirst)
	require.Len(t, contexts, 1)
	assert.Equal(t, 0, contexts[0].Pane)
}
