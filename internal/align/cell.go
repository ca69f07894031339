// Package align implements the aligned-view engine: the buffer that
// holds alignment cells, the controller that drives cursor movement,
// goto, difference/search navigation and redraw decisions over it,
// and the FileState value the view is built from and decomposed back
// into.
package align

// OptByte is an optional byte: absent means a gap on that side (an
// insertion into the other side).
type OptByte struct {
	Value   byte
	Present bool
}

// Byte returns a present OptByte.
func Byte(b byte) OptByte { return OptByte{Value: b, Present: true} }

// Cell is one row of the aligned projection. Addresses are always
// present; at least one of LeftByte/RightByte must be present.
type Cell struct {
	LeftAddr, RightAddr int
	LeftByte, RightByte OptByte
}

// IsGapLeft reports whether this row has no byte on the left (an
// insertion into the right file).
func (c Cell) IsGapLeft() bool { return !c.LeftByte.Present }

// IsGapRight reports whether this row has no byte on the right (an
// insertion into the left file).
func (c Cell) IsGapRight() bool { return !c.RightByte.Present }

// ProjLeft and ProjRight are the SignedBuffer binary-search
// projections for goto-by-address: they return the cell's address on
// that side, or ok=false on a gap.
func ProjLeft(c Cell) (int, bool) {
	if !c.LeftByte.Present {
		return 0, false
	}
	return c.LeftAddr, true
}

func ProjRight(c Cell) (int, bool) {
	if !c.RightByte.Present {
		return 0, false
	}
	return c.RightAddr, true
}
