package controller

import (
	"fmt"

	"github.com/grailbio/biodiff/internal/align"
	"github.com/grailbio/biodiff/internal/render"
	"github.com/grailbio/biodiff/internal/term"
)

// Paint draws the view's current viewport to backend and flushes it,
// translating each cell pair's presence/equality into the closed
// foreground enumeration: same bytes render HexSame, differing bytes
// HexDiff, and a byte with no counterpart HexOneside, with the right
// pane's half of each column rendered in the matching Secondary
// variant so the two panes stay visually distinct within one row.
func Paint(v *align.View, b term.Backend) {
	lines := v.Content()
	cursorCol, cursorRow := v.CursorColRow()
	for row, line := range lines {
		b.SetLine(row)
		for col, pair := range line.Bytes {
			effect := term.EffectNone
			if row == cursorRow && col == cursorCol {
				effect = term.Inverted
			}
			leftFg, rightFg := pairColors(pair)
			leftBg, rightBg := term.Blank, term.Blank
			if pair.Left.Present && pair.Left.InSearchResult {
				leftBg = term.Highlight
			}
			if pair.Right.Present && pair.Right.InSearchResult {
				rightBg = term.Highlight
			}
			b.AppendText(hexOrGap(pair.Left)+" ", leftFg, leftBg, effect)
			b.AppendText(hexOrGap(pair.Right)+" ", rightFg, rightBg, effect)
		}
	}
	b.Refresh()
}

func pairColors(p render.BytePair) (left, right term.Fg) {
	switch {
	case !p.Left.Present:
		return term.Unimportant, term.HexOnesideSecondary
	case !p.Right.Present:
		return term.HexOneside, term.Unimportant
	case p.Left.Byte == p.Right.Byte:
		return term.HexSame, term.HexSameSecondary
	default:
		return term.HexDiff, term.HexDiffSecondary
	}
}

func hexOrGap(b render.ByteData) string {
	if !b.Present {
		return "--"
	}
	return fmt.Sprintf("%02x", b.Byte)
}
