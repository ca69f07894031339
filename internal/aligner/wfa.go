package aligner

import (
	"context"

	"github.com/shenwei356/wfa"

	"github.com/grailbio/biodiff/internal/align"
)

// DefaultChunkBytes bounds how much of each file a single wavefront
// alignment call covers. Chunking keeps memory bounded on large files
// (the WFA DP table is quadratic in the worst case) and gives the
// controller a steady stream of Append/Prepend messages to redraw
// against instead of one all-at-once result.
const DefaultChunkBytes = 1 << 16

// WFAAligner implements Aligner over github.com/shenwei356/wfa, the
// pack's gap-affine wavefront alignment implementation.
type WFAAligner struct {
	penalties *wfa.Penalties
	options   *wfa.Options
	chunk     int
}

// NewWFAAligner returns a WFAAligner using the WFA paper's default
// penalties and global alignment within each chunk. chunkBytes <= 0
// selects DefaultChunkBytes.
func NewWFAAligner(chunkBytes int) *WFAAligner {
	if chunkBytes <= 0 {
		chunkBytes = DefaultChunkBytes
	}
	return &WFAAligner{
		penalties: wfa.DefaultPenalties,
		options:   wfa.DefaultOptions,
		chunk:     chunkBytes,
	}
}

// AlignForward aligns successive chunks of left[origin.Left:] against
// right[origin.Right:], sending one Append message per chunk in
// increasing-address order until either file is exhausted or the
// context is cancelled.
func (a *WFAAligner) AlignForward(ctx context.Context, left, right []byte, origin Origin, send func(align.Message) bool) {
	lp, rp := origin.Left, origin.Right
	for lp < len(left) && rp < len(right) {
		if ctx.Err() != nil {
			return
		}
		lEnd := min(lp+a.chunk, len(left))
		rEnd := min(rp+a.chunk, len(right))
		cells := a.alignChunk(left[lp:lEnd], right[rp:rEnd], lp, rp)
		if !send(align.Message{Kind: align.Append, Cells: cells}) {
			return
		}
		lp, rp = lEnd, rEnd
	}
	// One file ran out first; the remainder of the other is a run of
	// gap rows, still emitted as Append so the view reflects the tail.
	if lp < len(left) || rp < len(right) {
		if ctx.Err() != nil {
			return
		}
		cells := tailGapCells(left[lp:], right[rp:], lp, rp)
		send(align.Message{Kind: align.Append, Cells: cells})
	}
}

// AlignBackward is the symmetric operation, walking from origin toward
// the start of both files and sending one Prepend message per chunk in
// decreasing-address order.
func (a *WFAAligner) AlignBackward(ctx context.Context, left, right []byte, origin Origin, send func(align.Message) bool) {
	lp, rp := origin.Left, origin.Right
	for lp > 0 && rp > 0 {
		if ctx.Err() != nil {
			return
		}
		lStart := max(lp-a.chunk, 0)
		rStart := max(rp-a.chunk, 0)
		cells := a.alignChunk(left[lStart:lp], right[rStart:rp], lStart, rStart)
		if !send(align.Message{Kind: align.Prepend, Cells: cells}) {
			return
		}
		lp, rp = lStart, rStart
	}
	if lp > 0 || rp > 0 {
		if ctx.Err() != nil {
			return
		}
		cells := tailGapCells(left[:lp], right[:rp], 0, 0)
		send(align.Message{Kind: align.Prepend, Cells: cells})
	}
}

// alignChunk runs one global wavefront alignment over q (left) and t
// (right), converting its CIGAR into aligned cells whose addresses are
// offset by lOff/rOff.
func (a *WFAAligner) alignChunk(q, t []byte, lOff, rOff int) []align.Cell {
	if len(q) == 0 || len(t) == 0 {
		return tailGapCells(q, t, lOff, rOff)
	}
	algn := wfa.New(a.penalties, a.options)
	defer wfa.RecycleAligner(algn)
	result, err := algn.Align(q, t)
	if err != nil {
		// The aligner failed to converge on this chunk; render it as
		// two unaligned runs of gap rows rather than losing the bytes.
		return tailGapCells(q, t, lOff, rOff)
	}
	defer wfa.RecycleAlignmentResult(result)

	cells := make([]align.Cell, 0, len(q)+len(t))
	var qi, ti int
	for _, op := range result.Ops {
		n := int(op & wfa.MaskLower32)
		code := op >> 32
		for i := 0; i < n; i++ {
			switch code {
			case wfa.OpM, wfa.OpX:
				cells = append(cells, align.Cell{
					LeftAddr: lOff + qi, RightAddr: rOff + ti,
					LeftByte: align.Byte(q[qi]), RightByte: align.Byte(t[ti]),
				})
				qi++
				ti++
			case wfa.OpI:
				cells = append(cells, align.Cell{
					LeftAddr: lOff + qi, RightAddr: rOff + ti,
					RightByte: align.Byte(t[ti]),
				})
				ti++
			case wfa.OpD, wfa.OpH:
				cells = append(cells, align.Cell{
					LeftAddr: lOff + qi, RightAddr: rOff + ti,
					LeftByte: align.Byte(q[qi]),
				})
				qi++
			}
		}
	}
	return cells
}

// tailGapCells renders bytes that have no counterpart on the other
// side (one file ran out, or the aligner could not be run) as a run of
// gap rows: left bytes first (right absent), then right bytes (left
// absent), addresses advancing independently on each side.
func tailGapCells(left, right []byte, lOff, rOff int) []align.Cell {
	cells := make([]align.Cell, 0, len(left)+len(right))
	for i, b := range left {
		cells = append(cells, align.Cell{LeftAddr: lOff + i, RightAddr: rOff, LeftByte: align.Byte(b)})
	}
	for i, b := range right {
		cells = append(cells, align.Cell{LeftAddr: lOff + len(left), RightAddr: rOff + i, RightByte: align.Byte(b)})
	}
	return cells
}
