package term

import (
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	styleUnimportant       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleHexSame           = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleHexSameSecondary  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	styleHexDiff           = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	styleHexDiffSecondary  = lipgloss.NewStyle().Foreground(lipgloss.Color("174"))
	styleHexOneside        = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styleHexOnesideSecondary = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))
)

func fgStyle(fg Fg) lipgloss.Style {
	switch fg {
	case HexSame:
		return styleHexSame
	case HexSameSecondary:
		return styleHexSameSecondary
	case HexDiff:
		return styleHexDiff
	case HexDiffSecondary:
		return styleHexDiffSecondary
	case HexOneside:
		return styleHexOneside
	case HexOnesideSecondary:
		return styleHexOnesideSecondary
	default:
		return styleUnimportant
	}
}

func applyBg(s lipgloss.Style, bg Bg) lipgloss.Style {
	if bg == Highlight {
		return s.Background(lipgloss.Color("237"))
	}
	return s
}

func applyEffect(s lipgloss.Style, e Effect) lipgloss.Style {
	switch e {
	case Inverted:
		return s.Reverse(true)
	case Bold:
		return s.Bold(true)
	default:
		return s
	}
}

// styleKey identifies a cell's styling without holding a lipgloss.Style
// directly -- lipgloss.Style wraps an internal map and so is not a
// comparable type, which the grid's run-length rendering needs.
type styleKey struct {
	fg Fg
	bg Bg
	ef Effect
}

func (k styleKey) style() lipgloss.Style {
	return applyEffect(applyBg(fgStyle(k.fg), k.bg), k.ef)
}

type cell struct {
	r     rune
	style styleKey
}

// BubbleBackend implements Backend over a bubbletea Program: writes
// accumulate into an in-memory grid of styled cells, and Refresh tells
// the running program to repaint from that grid.
type BubbleBackend struct {
	mu   sync.Mutex
	cols int
	rows int
	grid [][]cell

	curRow, curCol int

	program *tea.Program
}

// NewBubbleBackend returns a backend sized cols x rows. Call
// AttachProgram once the bubbletea program is started so Refresh can
// reach it.
func NewBubbleBackend(cols, rows int) *BubbleBackend {
	b := &BubbleBackend{}
	b.resize(cols, rows)
	return b
}

// AttachProgram wires the running bubbletea program so Refresh can
// trigger a repaint.
func (b *BubbleBackend) AttachProgram(p *tea.Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.program = p
}

func (b *BubbleBackend) resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	b.cols, b.rows = cols, rows
	b.grid = make([][]cell, rows)
	for i := range b.grid {
		b.grid[i] = blankRow(cols)
	}
}

func blankRow(cols int) []cell {
	row := make([]cell, cols)
	for i := range row {
		row[i] = cell{r: ' ', style: styleKey{fg: Unimportant}}
	}
	return row
}

// Resize changes the backend's dimensions, in response to a
// tea.WindowSizeMsg.
func (b *BubbleBackend) Resize(cols, rows int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resize(cols, rows)
}

func (b *BubbleBackend) SetLine(row int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if row < 0 || row >= b.rows {
		return
	}
	b.grid[row] = blankRow(b.cols)
	b.curRow, b.curCol = row, 0
}

func (b *BubbleBackend) SetPos(col, row int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.curRow, b.curCol = row, col
}

func (b *BubbleBackend) AppendText(text string, fg Fg, bg Bg, effect Effect) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.curRow < 0 || b.curRow >= b.rows {
		return
	}
	style := styleKey{fg: fg, bg: bg, ef: effect}
	for _, r := range text {
		if b.curCol < 0 || b.curCol >= b.cols {
			b.curCol++
			continue
		}
		b.grid[b.curRow][b.curCol] = cell{r: r, style: style}
		b.curCol++
	}
}

func (b *BubbleBackend) Scroll(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n == 0 || len(b.grid) == 0 {
		return
	}
	rows := b.rows
	newGrid := make([][]cell, rows)
	for i := range newGrid {
		src := i + n
		if src >= 0 && src < rows {
			newGrid[i] = b.grid[src]
		} else {
			newGrid[i] = blankRow(b.cols)
		}
	}
	b.grid = newGrid
}

func (b *BubbleBackend) Refresh() {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()
	if p != nil {
		p.Send(refreshMsg{})
	}
}

func (b *BubbleBackend) Size() (cols, rows int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cols, b.rows
}

func (b *BubbleBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resize(b.cols, b.rows)
}

// Render renders the current grid as a single styled string, for a
// bubbletea Model's View().
func (b *BubbleBackend) Render() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out strings.Builder
	for i, row := range b.grid {
		if i > 0 {
			out.WriteByte('\n')
		}
		var runStyle styleKey
		var run strings.Builder
		flush := func() {
			if run.Len() > 0 {
				out.WriteString(runStyle.style().Render(run.String()))
				run.Reset()
			}
		}
		for j, c := range row {
			if j == 0 {
				runStyle = c.style
			} else if c.style != runStyle {
				flush()
				runStyle = c.style
			}
			run.WriteRune(c.r)
		}
		flush()
	}
	return out.String()
}

// refreshMsg is sent to the bubbletea program to trigger a repaint
// from the backend's grid.
type refreshMsg struct{}
