package align

import (
	"github.com/grailbio/biodiff/internal/render"
	"github.com/grailbio/biodiff/internal/search"
)

// Content assembles the current viewport into a row of
// render.DoubleHexLine values, one per viewport row, for the painter.
func (v *View) Content() []render.DoubleHexLine {
	cols, rows := v.cur.Cols(), v.cur.Rows()
	viewLo := v.viewportIndex
	viewHi := v.viewportIndex + v.cur.Size()
	bufLo, bufHi := v.buf.Bounds()

	lo, hi := maxInt(viewLo, bufLo), minInt(viewHi, bufHi)
	var leftScan, rightScan *search.Scan
	if lo < hi {
		startCell, okStart := v.buf.Get(lo)
		endCell, okEnd := v.buf.Get(hi - 1)
		if okStart && okEnd && v.leftSearch != nil {
			leftScan = search.NewScan(v.leftSearch.Store.InRange(startCell.LeftAddr, endCell.LeftAddr+1))
		}
		if okStart && okEnd && v.rightSearch != nil {
			rightScan = search.NewScan(v.rightSearch.Store.InRange(startCell.RightAddr, endCell.RightAddr+1))
		}
	}

	lines := make([]render.DoubleHexLine, 0, rows)
	for y := 0; y < rows; y++ {
		base := v.viewportIndex + y*cols
		line := render.DoubleHexLine{Bytes: make([]render.BytePair, 0, cols)}
		for x := 0; x < cols; x++ {
			if c, ok := v.buf.Get(base + x); ok {
				line.LeftAddr, line.HasLeftAddr = c.LeftAddr, true
				line.RightAddr, line.HasRightAddr = c.RightAddr, true
				break
			}
		}
		for x := 0; x < cols; x++ {
			c, ok := v.buf.Get(base + x)
			if !ok {
				line.Bytes = append(line.Bytes, render.BytePair{})
				continue
			}
			leftInResult := leftScan != nil && c.LeftByte.Present && leftScan.At(c.LeftAddr)
			rightInResult := rightScan != nil && c.RightByte.Present && rightScan.At(c.RightAddr)
			line.Bytes = append(line.Bytes, render.BytePair{
				Left:  render.MaybeByte(c.LeftByte.Value, c.LeftByte.Present, leftInResult),
				Right: render.MaybeByte(c.RightByte.Value, c.RightByte.Present, rightInResult),
			})
		}
		lines = append(lines, line)
	}
	return lines
}

// BytesInView returns the visible bytes on each side, used as input to
// the column-autocorrelation heuristic the AutoColumn action invokes.
func (v *View) BytesInView() (left, right []byte) {
	lo := v.viewportIndex
	hi := v.viewportIndex + v.cur.Size()
	for i := lo; i < hi; i++ {
		c, ok := v.buf.Get(i)
		if !ok {
			continue
		}
		if c.LeftByte.Present {
			left = append(left, c.LeftByte.Value)
		}
		if c.RightByte.Present {
			right = append(right, c.RightByte.Value)
		}
	}
	return left, right
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
