package align

import (
	"github.com/grailbio/biodiff/internal/action"
	"github.com/grailbio/biodiff/internal/buffer"
	"github.com/grailbio/biodiff/internal/cursor"
	"github.com/grailbio/biodiff/internal/search"
)

// FileState is the per-file collaborator an aligned View is built from
// and decomposed back into.
type FileState struct {
	Name    string
	Content []byte
	Index   int
	Search  *search.Results
}

// Selection records a pending start/clear selection request for the
// unaligned side-by-side view to consume once control returns to it;
// the aligned view itself only tracks and clears the anchor.
type Selection struct {
	Active bool
	Active2 action.CursorActive
	Anchor  int
}

// View is the aligned-view engine's state: the buffer of aligned
// cells, the viewport cursor, both match stores, the cursor-active
// selection, and the original byte streams needed to decompose back
// into FileStates.
type View struct {
	buf           *buffer.SignedBuffer[Cell]
	viewportIndex int
	cur           *cursor.Cursor
	rightToLeft   bool

	filenames            [2]string
	leftFile, rightFile  []byte
	leftOrigin, rightOrigin int
	leftSearch, rightSearch *search.Results

	active    action.CursorActive
	selection *Selection
}

// New creates an aligned View. Signed buffer index 0 is defined to
// anchor at (first.Index, second.Index) -- the cursor positions the two
// FileStates carried when the view was opened -- and the cursor starts
// at the viewport's top-left cell, which is exactly that origin: the
// first emission anchors signed index 0 at the origin. cols/rows size
// the initial viewport; bytesPerRow equals cols since the aligned view
// lays out one byte per cell.
func New(first, second FileState, cols, rows int, rightToLeft bool) *View {
	return &View{
		buf:           buffer.New[Cell](),
		viewportIndex: 0,
		cur:           cursor.New(cols, rows, cols),
		rightToLeft:   rightToLeft,
		filenames:     [2]string{first.Name, second.Name},
		leftFile:      first.Content,
		rightFile:     second.Content,
		leftOrigin:    first.Index,
		rightOrigin:   second.Index,
		leftSearch:    first.Search,
		rightSearch:   second.Search,
		active:        action.ActiveBoth,
	}
}

// Origin is the (left, right) byte offsets the aligner must anchor
// signed buffer index 0 at.
func (v *View) Origin() (left, right int) { return v.leftOrigin, v.rightOrigin }

// Files returns the original byte streams of the two panes, for
// handing to the aligner and search workers.
func (v *View) Files() (left, right []byte) { return v.leftFile, v.rightFile }

// Buffer bounds, for callers (e.g. the aligner origin/backpressure
// logic) that need to know how much has been produced so far.
func (v *View) Bounds() (lo, hi int) { return v.buf.Bounds() }

func (v *View) cursorIndex() int { return v.viewportIndex + v.cur.Index() }

// CurrentCursorAddresses returns the (left, right) file addresses the
// cursor currently points at, if the cursor is over a mapped cell.
func (v *View) CurrentCursorAddresses() (left, right int, ok bool) {
	c, found := v.buf.Get(v.cursorIndex())
	if !found {
		return 0, 0, false
	}
	return c.LeftAddr, c.RightAddr, true
}

// IsInView reports whether the half-open signed range [lo, hi)
// overlaps the currently visible viewport.
func (v *View) IsInView(lo, hi int) bool {
	viewLo := v.viewportIndex
	viewHi := v.viewportIndex + v.cur.Size()
	return !(viewLo >= hi || viewHi <= lo)
}

// Destruct decomposes the view back into its two FileStates: if the
// cursor currently points at a mapped cell, the two FileStates carry
// that cell's per-side addresses and their respective search results;
// otherwise destruction fails and the caller keeps this same view open
// (a silent no-op, not an error).
func (v *View) Destruct() (first, second FileState, ok bool) {
	left, right, ok := v.CurrentCursorAddresses()
	if !ok {
		return FileState{}, FileState{}, false
	}
	return FileState{
			Name:    v.filenames[0],
			Content: v.leftFile,
			Index:   left,
			Search:  v.leftSearch,
		}, FileState{
			Name:    v.filenames[1],
			Content: v.rightFile,
			Index:   right,
			Search:  v.rightSearch,
		}, true
}
