// Package term implements the terminal back-end contract (set_line,
// set_pos, append_text, scroll, refresh, size, clear) plus the closed
// color/effect enumeration and key binding table, on top of
// charmbracelet/bubbletea and charmbracelet/lipgloss -- the same stack
// github.com/shhac/prtea's diff viewer uses for a scrolling, styled
// terminal pane.
package term

// Fg is the closed foreground color enumeration.
type Fg int

const (
	Unimportant Fg = iota
	HexSame
	HexSameSecondary
	HexDiff
	HexDiffSecondary
	HexOneside
	HexOnesideSecondary
)

// Bg is the closed background enumeration.
type Bg int

const (
	Blank Bg = iota
	Highlight
)

// Effect is the closed text-effect enumeration.
type Effect int

const (
	EffectNone Effect = iota
	Inverted
	Bold
)

// Backend is the narrow contract the controller drives the terminal
// through. Implementations need not be safe for concurrent use; the
// controller is the sole writer.
type Backend interface {
	// SetLine moves the write cursor to the start of row, clearing it.
	SetLine(row int)
	// SetPos moves the write cursor to (col, row) without clearing.
	SetPos(col, row int)
	// AppendText writes text at the write cursor, advancing it, styled
	// per the given foreground/background/effect.
	AppendText(text string, fg Fg, bg Bg, effect Effect)
	// Scroll shifts the whole screen by n rows (positive: content moves
	// up, revealing blank rows at the bottom; negative: the reverse).
	Scroll(n int)
	// Refresh flushes pending writes to the physical terminal.
	Refresh()
	// Size reports the current terminal dimensions.
	Size() (cols, rows int)
	// Clear blanks the whole screen.
	Clear()
}
