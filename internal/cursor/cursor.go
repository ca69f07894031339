// Package cursor implements the 2-D cursor/viewport model: a cursor
// position within a grid of configurable columns, translating movement
// intents into buffer index deltas and scroll amounts. The model is
// always left-to-right; right-to-left reflection happens one layer up,
// in the controller, so this package never needs to know about layout
// direction.
package cursor

import "github.com/grailbio/biodiff/internal/action"

// Range is a half-open integer range, used here to express buffer
// bounds relative to the viewport's current leading index.
type Range struct {
	Lo, Hi int
}

func (r Range) Empty() bool { return r.Hi <= r.Lo }

// Cursor holds the geometry and local (viewport-relative) position of
// the 2-D cursor.
type Cursor struct {
	cols, rows  int
	bytesPerRow int
	col, row    int
}

// New creates a cursor at the grid origin for a cols x rows viewport.
// bytesPerRow is the number of underlying buffer indices one grid row
// advances by (normally equal to cols, but kept distinct so the
// aligned view's one-byte-per-cell layout and a future
// multi-byte-per-cell layout can share this type).
func New(cols, rows, bytesPerRow int) *Cursor {
	return &Cursor{cols: cols, rows: rows, bytesPerRow: bytesPerRow}
}

func (c *Cursor) Cols() int        { return c.cols }
func (c *Cursor) Rows() int        { return c.rows }
func (c *Cursor) BytesPerRow() int { return c.bytesPerRow }

// Size is the number of cells in the viewport.
func (c *Cursor) Size() int { return c.cols * c.rows }

// Index is the cursor's position within the viewport, as a single
// local (viewport-relative) index.
func (c *Cursor) Index() int { return c.row*c.cols + c.col }

// ColRow returns the cursor's column and row within the viewport.
func (c *Cursor) ColRow() (col, row int) { return c.col, c.row }

func (c *Cursor) clampCol() {
	if c.col < 0 {
		c.col = 0
	}
	if c.col >= c.cols {
		c.col = c.cols - 1
	}
}

func (c *Cursor) clampRow() {
	if c.row < 0 {
		c.row = 0
	}
	if c.row >= c.rows {
		c.row = c.rows - 1
	}
}

// Mov applies a movement intent and returns the delta that must be
// added to the caller's viewport leading index. bufBounds expresses
// the backing buffer's bounds relative to the viewport's current
// leading index (i.e. buffer.lo - viewportIndex .. buffer.hi -
// viewportIndex); it is accepted for future tightening of the "shift
// only if data could exist there" rule, but an out-of-bounds viewport
// is itself valid (unmapped cells render blank), so no movement here
// is ever refused outright.
func (c *Cursor) Mov(m action.Move, bufBounds Range) int {
	switch m.Kind {
	case action.MoveCursorX:
		return c.movCursor1D(&c.col, c.cols, m.X, 1)
	case action.MoveCursorY:
		return c.movCursor1D(&c.row, c.rows, m.Y, c.bytesPerRow)
	case action.MoveViewX:
		return m.X
	case action.MoveViewY:
		return m.Y * c.bytesPerRow
	case action.MoveUnbounded:
		return c.movUnbounded(m.X, m.Y)
	default:
		return 0
	}
}

// movCursor1D moves a single axis by delta, shifting the viewport by
// one unit (of the given weight) when the cursor would leave the grid
// on that axis.
func (c *Cursor) movCursor1D(axis *int, size int, delta int, weight int) int {
	if delta == 0 {
		return 0
	}
	newVal := *axis + delta
	shift := 0
	for newVal < 0 {
		newVal++
		shift -= weight
	}
	for newVal >= size {
		newVal--
		shift += weight
	}
	*axis = newVal
	return shift
}

// movUnbounded performs an absolute move to local grid position
// (col, row), shifting the viewport so that position is reachable:
// any whole rows/columns outside the current grid become a viewport
// shift, and the remainder becomes the new in-grid cursor position.
func (c *Cursor) movUnbounded(col, row int) int {
	shift := 0
	for col < 0 {
		col += c.cols
		shift--
	}
	for col >= c.cols {
		col -= c.cols
		shift++
	}
	rowShift := 0
	for row < 0 {
		row += c.rows
		rowShift--
	}
	for row >= c.rows {
		row -= c.rows
		rowShift++
	}
	c.col, c.row = col, row
	return shift + rowShift*c.bytesPerRow
}

// FullRowMove reports the number of whole rows a movement shifted the
// viewport by, when the movement was a pure view/row shift that can be
// painted by scrolling rather than a full redraw. It returns ok=false
// for sub-row shifts (column-only movement within a row), which need a
// full redraw.
func (c *Cursor) FullRowMove(indexDiff int) (rows int, ok bool) {
	if c.bytesPerRow == 0 || indexDiff%c.bytesPerRow != 0 {
		return 0, false
	}
	return indexDiff / c.bytesPerRow, true
}

// Jump converts a signed index delta (relative to the current cursor
// position) into a (col, row) pair suitable for Unbounded.
func (c *Cursor) Jump(addrDelta int) (col, row int) {
	total := c.Index() + addrDelta
	row = floorDiv(total, c.bytesPerRow)
	col = total - row*c.bytesPerRow
	// col must additionally be reduced into [0, cols) terms consistent
	// with the grid; bytesPerRow == cols for the one-byte-per-cell
	// aligned view, so this is already in range.
	return col, row
}

func floorDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Resize changes the viewport geometry, returning the index delta
// needed to keep the cursor's underlying buffer position stable (the
// cursor's local column/row are clamped into the new grid).
func (c *Cursor) Resize(cols, rows, bytesPerRow int) int {
	oldIndex := c.row*c.bytesPerRow + c.col
	c.cols, c.rows, c.bytesPerRow = cols, rows, bytesPerRow
	c.clampCol()
	c.clampRow()
	newIndex := c.row*c.bytesPerRow + c.col
	return oldIndex - newIndex
}
