// Package aligner wraps a wavefront alignment engine behind a narrow
// producer interface, streaming align.Message values outward from a
// fixed origin in both directions: the aligner itself is treated as a
// black-box collaborator. The correctness of the alignment algorithm is
// explicitly out of scope here; this package only adapts its output
// into the aligned-cell stream internal/align consumes.
package aligner

import (
	"context"

	"github.com/grailbio/biodiff/internal/align"
)

// Origin is the (left, right) byte offset pair that signed buffer
// index 0 anchors at.
type Origin struct {
	Left, Right int
}

// Aligner produces the aligned-cell stream for a pair of files, in two
// independent directions from origin: forward (growing the high end,
// align.Append messages) and backward (growing the low end,
// align.Prepend messages). send returning false means the consumer
// has gone away and the aligner must stop promptly.
//
// Implementations must allow AlignForward and AlignBackward to run at
// the same time on one value (the controller runs exactly one
// alignment worker per direction, both concurrently); neither method
// is called from more than one goroutine at once.
type Aligner interface {
	AlignForward(ctx context.Context, left, right []byte, origin Origin, send func(align.Message) bool)
	AlignBackward(ctx context.Context, left, right []byte, origin Origin, send func(align.Message) bool)
}
