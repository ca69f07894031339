package term

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grailbio/biodiff/internal/action"
)

// bindings is the physical-key -> action.Action table, grounded on
// github.com/shhac/prtea's DiffViewerKeys (a bubbles/key.Binding table
// keyed by feature, matched in Update via key.Matches).
type bindings struct {
	up, down, left, right             key.Binding
	upAlt, downAlt, leftAlt, rightAlt key.Binding
	pgUp, pgDown, top, bottom         key.Binding
	nextDiff, prevDiff                key.Binding
	nextIns, prevIns                  key.Binding
	nextSearch, prevSearch            key.Binding
	goTo, search                      key.Binding
	startSel, clearSel                key.Binding
	addCol, removeCol, autoCol, resetCol key.Binding
	cursorFirst, cursorBoth, cursorSecond key.Binding
	refresh, quit, help, algoConfig   key.Binding
	unalign, align, setOffset         key.Binding
}

// DefaultBindings mirrors the closed action set with a conventional
// hex-viewer key layout.
var DefaultBindings = bindings{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	left:        key.NewBinding(key.WithKeys("left", "h")),
	right:       key.NewBinding(key.WithKeys("right", "l")),
	upAlt:       key.NewBinding(key.WithKeys("shift+up", "K")),
	downAlt:     key.NewBinding(key.WithKeys("shift+down", "J")),
	leftAlt:     key.NewBinding(key.WithKeys("shift+left", "H")),
	rightAlt:    key.NewBinding(key.WithKeys("shift+right", "L")),
	pgUp:        key.NewBinding(key.WithKeys("pgup", "ctrl+b")),
	pgDown:      key.NewBinding(key.WithKeys("pgdown", "ctrl+f")),
	top:         key.NewBinding(key.WithKeys("g")),
	bottom:      key.NewBinding(key.WithKeys("G")),
	nextDiff:    key.NewBinding(key.WithKeys("n")),
	prevDiff:    key.NewBinding(key.WithKeys("N")),
	nextIns:     key.NewBinding(key.WithKeys("]")),
	prevIns:     key.NewBinding(key.WithKeys("[")),
	nextSearch:  key.NewBinding(key.WithKeys("f3")),
	prevSearch:  key.NewBinding(key.WithKeys("shift+f3")),
	goTo:        key.NewBinding(key.WithKeys("ctrl+g")),
	search:      key.NewBinding(key.WithKeys("/")),
	startSel:    key.NewBinding(key.WithKeys("v")),
	clearSel:    key.NewBinding(key.WithKeys("esc")),
	addCol:      key.NewBinding(key.WithKeys("+")),
	removeCol:   key.NewBinding(key.WithKeys("-")),
	autoCol:     key.NewBinding(key.WithKeys("=")),
	resetCol:    key.NewBinding(key.WithKeys("0")),
	cursorFirst: key.NewBinding(key.WithKeys("1")),
	cursorBoth:  key.NewBinding(key.WithKeys("2")),
	cursorSecond: key.NewBinding(key.WithKeys("3")),
	refresh:     key.NewBinding(key.WithKeys("ctrl+l")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	help:        key.NewBinding(key.WithKeys("?")),
	algoConfig:  key.NewBinding(key.WithKeys("a")),
	unalign:     key.NewBinding(key.WithKeys("u")),
	align:       key.NewBinding(key.WithKeys("A")),
	setOffset:   key.NewBinding(key.WithKeys("o")),
}

// Resolve maps a bubbletea key message to the action it triggers, if
// any, from the closed action set.
func Resolve(msg tea.KeyMsg, b bindings) (action.Action, bool) {
	switch {
	case key.Matches(msg, b.up):
		return action.Up, true
	case key.Matches(msg, b.down):
		return action.Down, true
	case key.Matches(msg, b.left):
		return action.Left, true
	case key.Matches(msg, b.right):
		return action.Right, true
	case key.Matches(msg, b.upAlt):
		return action.UpAlt, true
	case key.Matches(msg, b.downAlt):
		return action.DownAlt, true
	case key.Matches(msg, b.leftAlt):
		return action.LeftAlt, true
	case key.Matches(msg, b.rightAlt):
		return action.RightAlt, true
	case key.Matches(msg, b.pgUp):
		return action.PgUp, true
	case key.Matches(msg, b.pgDown):
		return action.PgDown, true
	case key.Matches(msg, b.top):
		return action.Top, true
	case key.Matches(msg, b.bottom):
		return action.Bottom, true
	case key.Matches(msg, b.nextDiff):
		return action.NextDifference, true
	case key.Matches(msg, b.prevDiff):
		return action.PrevDifference, true
	case key.Matches(msg, b.nextIns):
		return action.NextInsertion, true
	case key.Matches(msg, b.prevIns):
		return action.PrevInsertion, true
	case key.Matches(msg, b.nextSearch):
		return action.NextSearch, true
	case key.Matches(msg, b.prevSearch):
		return action.PrevSearch, true
	case key.Matches(msg, b.goTo):
		return action.Goto, true
	case key.Matches(msg, b.search):
		return action.Search, true
	case key.Matches(msg, b.startSel):
		return action.StartSelection, true
	case key.Matches(msg, b.clearSel):
		return action.ClearSelection, true
	case key.Matches(msg, b.addCol):
		return action.AddColumn, true
	case key.Matches(msg, b.removeCol):
		return action.RemoveColumn, true
	case key.Matches(msg, b.autoCol):
		return action.AutoColumn, true
	case key.Matches(msg, b.resetCol):
		return action.ResetColumn, true
	case key.Matches(msg, b.cursorFirst):
		return action.CursorFirst, true
	case key.Matches(msg, b.cursorBoth):
		return action.CursorBoth, true
	case key.Matches(msg, b.cursorSecond):
		return action.CursorSecond, true
	case key.Matches(msg, b.refresh):
		return action.Refresh, true
	case key.Matches(msg, b.quit):
		return action.Quit, true
	case key.Matches(msg, b.help):
		return action.Help, true
	case key.Matches(msg, b.algoConfig):
		return action.AlgorithmConfig, true
	case key.Matches(msg, b.unalign):
		return action.Unalign, true
	case key.Matches(msg, b.align):
		return action.Align, true
	case key.Matches(msg, b.setOffset):
		return action.SetOffset, true
	default:
		return 0, false
	}
}
