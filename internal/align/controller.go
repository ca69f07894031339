package align

import (
	"github.com/grailbio/biodiff/internal/action"
	"github.com/grailbio/biodiff/internal/cursor"
	"github.com/grailbio/biodiff/internal/search"
)

// Redraw reports what a caller needs to repaint after an operation:
// Changed is false when nothing visible moved (so no work is needed),
// ScrollRows/IsScroll carry a pure-scroll amount when the whole viewport
// shifted by whole rows (a "full row move", which a painter can
// realize by scrolling instead of a full redraw).
type Redraw struct {
	Changed    bool
	ScrollRows int
	IsScroll   bool
}

// MoveAround applies a cursor movement intent, reflecting the X axis
// for right-to-left layouts at this boundary so internal/cursor never
// has to reason about layout direction.
func (v *View) MoveAround(m action.Move) Redraw {
	if v.rightToLeft {
		m = m.ReflectRTL()
	}
	bufLo, bufHi := v.buf.Bounds()
	bounds := cursor.Range{Lo: bufLo - v.viewportIndex, Hi: bufHi - v.viewportIndex}
	oldCol, oldRow := v.cur.ColRow()
	delta := v.cur.Mov(m, bounds)
	v.viewportIndex += delta
	col, row := v.cur.ColRow()
	if rows, ok := v.cur.FullRowMove(delta); ok && delta != 0 {
		return Redraw{Changed: true, ScrollRows: rows, IsScroll: true}
	}
	return Redraw{Changed: delta != 0 || col != oldCol || row != oldRow}
}

// Append adds cells at the high end of the buffer, returning whether
// the change intersects the current viewport.
func (v *View) Append(cells []Cell) bool {
	_, hi := v.buf.Bounds()
	v.buf.ExtendEnd(cells)
	return v.IsInView(hi, hi+len(cells))
}

// Prepend adds cells at the low end of the buffer, returning whether
// the change intersects the current viewport.
func (v *View) Prepend(cells []Cell) bool {
	lo, _ := v.buf.Bounds()
	v.buf.ExtendFront(cells)
	return v.IsInView(lo-len(cells), lo)
}

// Apply dispatches a single alignment-stream message to Append/Prepend.
func (v *View) Apply(msg Message) bool {
	switch msg.Kind {
	case Append:
		return v.Append(msg.Cells)
	case Prepend:
		return v.Prepend(msg.Cells)
	default:
		return false
	}
}

// GotoIndex moves the cursor so that signed buffer index equals index.
func (v *View) GotoIndex(index int) Redraw {
	delta := index - v.cursorIndex()
	col, row := v.cur.Jump(delta)
	return v.MoveAround(action.Move{Kind: action.MoveUnbounded, X: col, Y: row})
}

// GotoErrAddressNotMapped is returned by Goto when the requested
// address has no row yet.
type GotoErrAddressNotMapped struct{ Right bool; Addr int }

func (e *GotoErrAddressNotMapped) Error() string {
	return "address does not (yet) exist"
}

// Goto jumps to the row whose address on the given side equals addr.
func (v *View) Goto(right bool, addr int) (Redraw, error) {
	proj := ProjLeft
	if right {
		proj = ProjRight
	}
	i, ok := v.buf.BinarySearch(addr, proj)
	if !ok {
		return Redraw{}, &GotoErrAddressNotMapped{Right: right, Addr: addr}
	}
	return v.GotoIndex(i), nil
}

// indexAddress mirrors Goto's binary search but reports ok=false
// instead of an error, for use by search navigation's toIndex callback.
func (v *View) indexAddress(right bool, addr int) (int, bool) {
	proj := ProjLeft
	if right {
		proj = ProjRight
	}
	return v.buf.BinarySearch(addr, proj)
}

// JumpNextDifference moves to the next (or, if !forward, previous) row
// where the two sides disagree -- or, if insertionsOnly, only to rows
// that are a gap on one side. It clamps at the buffer's bounds rather
// than overshooting.
func (v *View) JumpNextDifference(forward, insertionsOnly bool) Redraw {
	lo, hi := v.buf.Bounds()
	cur := v.cursorIndex()
	predicate := func(i int) bool {
		c, ok := v.buf.Get(i)
		if !ok {
			return true
		}
		if c.LeftByte.Present != c.RightByte.Present {
			return true
		}
		if insertionsOnly {
			return false
		}
		return c.LeftByte.Present && c.RightByte.Present && c.LeftByte.Value != c.RightByte.Value
	}
	target := cur
	if forward {
		for i := cur + 1; i < hi; i++ {
			if predicate(i) {
				target = i
				break
			}
			target = i
		}
		if target >= hi {
			target = hi - 1
		}
	} else {
		for i := cur - 1; i >= lo; i-- {
			if predicate(i) {
				target = i
				break
			}
			target = i
		}
		if target < lo {
			target = lo
		}
	}
	return v.GotoIndex(target)
}

// JumpStart moves the cursor to the lowest mapped index.
func (v *View) JumpStart() Redraw {
	lo, _ := v.buf.Bounds()
	return v.GotoIndex(lo)
}

// JumpEnd moves the cursor to the highest mapped index.
func (v *View) JumpEnd() Redraw {
	_, hi := v.buf.Bounds()
	return v.GotoIndex(hi - 1)
}

// JumpNextSearchResult jumps to the nearest search match (across both
// panes) strictly after the cursor, preferring a non-wrapped match.
func (v *View) JumpNextSearchResult() (Redraw, bool) {
	left, right, ok := v.CurrentCursorAddresses()
	if !ok {
		c, any := v.buf.First()
		if !any {
			return Redraw{}, false
		}
		left, right = c.LeftAddr, c.RightAddr
	}
	row, found := search.NearestNext(v.searchPanes(left, right), v.toIndex)
	if !found {
		return Redraw{}, false
	}
	return v.GotoIndex(row), true
}

// JumpPrevSearchResult is the symmetric operation for "previous".
func (v *View) JumpPrevSearchResult() (Redraw, bool) {
	left, right, ok := v.CurrentCursorAddresses()
	if !ok {
		c, any := v.buf.Last()
		if !any {
			return Redraw{}, false
		}
		left, right = c.LeftAddr, c.RightAddr
	}
	row, found := search.NearestPrev(v.searchPanes(left, right), v.toIndex)
	if !found {
		return Redraw{}, false
	}
	return v.GotoIndex(row), true
}

func (v *View) searchPanes(left, right int) []search.Pane {
	return []search.Pane{
		{Results: v.leftSearch, Addr: left, Side: 0},
		{Results: v.rightSearch, Addr: right, Side: 1},
	}
}

func (v *View) toIndex(addr int, side int) (int, bool) {
	return v.indexAddress(side == 1, addr)
}

// SetupSearch installs empty search results on the panes named by
// active, returning the (side, query) pairs the caller should spawn
// search.Context workers for (CursorActive-scoped setup: a search can
// target just the first pane, just the second, or both at once).
func (v *View) SetupSearch(q search.Query, active action.CursorActive) []search.Context {
	var contexts []search.Context
	if active.IsFirst() {
		v.leftSearch = search.NewResults(q)
		contexts = append(contexts, *search.NewContext(0, q))
	}
	if active.IsSecond() {
		v.rightSearch = search.NewResults(q)
		contexts = append(contexts, *search.NewContext(1, q))
	}
	return contexts
}

// AddSearchResults folds a worker's batch into the matching pane's
// results, silently dropping batches whose query no longer matches the
// pane's current search (a worker from a since-replaced search can
// still be in flight when its results arrive).
func (v *View) AddSearchResults(batch search.Batch) {
	if batch.Match == nil {
		return
	}
	var results *search.Results
	switch batch.Pane {
	case 0:
		results = v.leftSearch
	case 1:
		results = v.rightSearch
	}
	if results == nil || !results.Query.Equal(batch.Query) {
		return
	}
	results.Store.AddMatch(*batch.Match)
}

// ClearSearch clears search results on both panes.
func (v *View) ClearSearch() {
	v.leftSearch = nil
	v.rightSearch = nil
}

// CurrentSearchQuery returns the query of whichever pane has one, if
// any (both panes share the same query once a search is active).
func (v *View) CurrentSearchQuery() (search.Query, bool) {
	if v.leftSearch != nil {
		return v.leftSearch.Query, true
	}
	if v.rightSearch != nil {
		return v.rightSearch.Query, true
	}
	return search.Query{}, false
}

// StartSelection / ClearSelection record and drop a pending selection
// anchor for the unaligned view; the aligned view itself does not
// render a selection.
func (v *View) StartSelection(active action.CursorActive) {
	v.selection = &Selection{Active: true, Active2: active, Anchor: v.cursorIndex()}
}

func (v *View) ClearSelection() { v.selection = nil }

// SetCursorActive changes which pane(s) subsequent operations apply to.
func (v *View) SetCursorActive(active action.CursorActive) { v.active = active }

// CursorActiveState returns the currently active pane selection.
func (v *View) CursorActiveState() action.CursorActive { return v.active }

// Resize changes the viewport geometry (e.g. on terminal resize or
// AddColumn/RemoveColumn), returning whether the displayed geometry
// actually changed.
func (v *View) Resize(cols, rows int) bool {
	oldCols, oldRows := v.cur.Cols(), v.cur.Rows()
	v.viewportIndex += v.cur.Resize(cols, rows, cols)
	return oldCols != cols || oldRows != rows
}

// AddColumn / RemoveColumn adjust the fixed column count by one.
func (v *View) AddColumn() bool    { return v.Resize(v.cur.Cols()+1, v.cur.Rows()) }
func (v *View) RemoveColumn() bool {
	if v.cur.Cols() <= 1 {
		return false
	}
	return v.Resize(v.cur.Cols()-1, v.cur.Rows())
}

// AutoColumn applies the column-autocorrelation heuristic's result.
func (v *View) AutoColumn(heuristic func(left, right []byte) int) bool {
	left, right := v.BytesInView()
	n := heuristic(left, right)
	if n <= 0 {
		return false
	}
	return v.Resize(n, v.cur.Rows())
}

// CursorColRow returns the cursor's local (viewport-relative) column
// and row, for a painter to highlight.
func (v *View) CursorColRow() (col, row int) { return v.cur.ColRow() }

// Filenames returns the two panes' display names.
func (v *View) Filenames() (string, string) { return v.filenames[0], v.filenames[1] }
