package aligner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/biodiff/internal/align"
)

func collectCells(t *testing.T, msgs []align.Message) []align.Cell {
	t.Helper()
	var cells []align.Cell
	for _, m := range msgs {
		cells = append(cells, m.Cells...)
	}
	return cells
}

func TestAlignForwardIdenticalBytes(t *testing.T) {
	a := NewWFAAligner(0)
	left := []byte("abcdef")
	right := []byte("abcdef")

	var msgs []align.Message
	a.AlignForward(context.Background(), left, right, Origin{}, func(m align.Message) bool {
		msgs = append(msgs, m)
		return true
	})
	require.NotEmpty(t, msgs)
	for _, m := range msgs {
		assert.Equal(t, align.Append, m.Kind)
	}
	cells := collectCells(t, msgs)
	for _, c := range cells {
		require.True(t, c.LeftByte.Present)
		require.True(t, c.RightByte.Present)
		assert.Equal(t, c.LeftByte.Value, c.RightByte.Value)
	}
}

func TestAlignForwardStopsOnCancel(t *testing.T) {
	a := NewWFAAligner(4)
	left := make([]byte, 64)
	right := make([]byte, 64)
	for i := range left {
		left[i] = byte(i)
		right[i] = byte(i)
	}
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	a.AlignForward(ctx, left, right, Origin{}, func(m align.Message) bool {
		calls++
		if calls == 1 {
			cancel()
		}
		return true
	})
	assert.LessOrEqual(t, calls, 2)
}

func TestAlignForwardUnequalLengthsProducesGapTail(t *testing.T) {
	a := NewWFAAligner(0)
	left := []byte("abcdefgh")
	right := []byte("abcd")

	var msgs []align.Message
	a.AlignForward(context.Background(), left, right, Origin{}, func(m align.Message) bool {
		msgs = append(msgs, m)
		return true
	})
	cells := collectCells(t, msgs)
	require.NotEmpty(t, cells)
	last := cells[len(cells)-1]
	assert.True(t, last.LeftByte.Present)
	assert.False(t, last.RightByte.Present)
}

func TestAlignBackwardFromOrigin(t *testing.T) {
	a := NewWFAAligner(0)
	left := []byte("xxabc")
	right := []byte("xxabc")

	var msgs []align.Message
	a.AlignBackward(context.Background(), left, right, Origin{Left: 5, Right: 5}, func(m align.Message) bool {
		msgs = append(msgs, m)
		return true
	})
	require.NotEmpty(t, msgs)
	for _, m := range msgs {
		assert.Equal(t, align.Prepend, m.Kind)
	}
	cells := collectCells(t, msgs)
	assert.Equal(t, 0, cells[0].LeftAddr)
	assert.Equal(t, 0, cells[0].RightAddr)
}
