package term

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grailbio/biodiff/internal/action"
	"github.com/grailbio/biodiff/internal/query"
)

// ActionMsg wraps a resolved user action as a bubbletea message, for
// callers that want to drive the controller from something other than
// a live keyboard (tests, scripted demos).
type ActionMsg struct{ Action action.Action }

// Model is the bubbletea root model: it owns a BubbleBackend and
// forwards resolved key presses and window-size changes to the
// caller-supplied handlers (the controller, once wired in
// cmd/biodiff). It renders by asking the backend for its current grid
// each time View is called, per bubbletea's declarative render loop.
//
// Search is the one action that needs more than a single keystroke:
// "/" opens a text prompt (searchInput, a bubbles/textinput.Model,
// grounded on shhac/prtea's DiffViewerModel.searchInput) that captures
// every following key itself until Enter submits the query text to
// onSearch or Esc cancels -- the same searchMode-gated key handling
// that reference model uses for its own "/" prompt.
type Model struct {
	backend  *BubbleBackend
	bindings bindings
	onAction func(action.Action)
	onResize func(cols, rows int)
	onSearch func(text string, kind query.Kind)
	done     bool

	searchMode  bool
	searchInput textinput.Model
}

// NewModel creates a Model backed by backend. onAction is invoked
// synchronously from Update for every resolved key press; onResize for
// every window resize (including the initial one bubbletea sends at
// startup); onSearch once the user submits a query from the "/"
// prompt.
func NewModel(backend *BubbleBackend, onAction func(action.Action), onResize func(cols, rows int), onSearch func(text string, kind query.Kind)) Model {
	si := textinput.New()
	si.Prompt = "/"
	si.CharLimit = 256
	return Model{
		backend:     backend,
		bindings:    DefaultBindings,
		onAction:    onAction,
		onResize:    onResize,
		onSearch:    onSearch,
		searchInput: si,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.backend.Resize(msg.Width, msg.Height)
		if m.onResize != nil {
			m.onResize(msg.Width, msg.Height)
		}
		return m, nil
	case tea.KeyMsg:
		if m.searchMode {
			return m.updateSearchMode(msg)
		}
		if a, ok := Resolve(msg, m.bindings); ok {
			if a == action.Quit {
				m.done = true
			}
			if a == action.Search {
				m.searchMode = true
				m.searchInput.Reset()
				return m, m.searchInput.Focus()
			}
			if m.onAction != nil {
				m.onAction(a)
			}
			if m.done {
				return m, tea.Quit
			}
		}
		return m, nil
	case ActionMsg:
		if m.onAction != nil {
			m.onAction(msg.Action)
		}
		return m, nil
	case refreshMsg:
		return m, nil
	default:
		return m, nil
	}
}

// updateSearchMode handles a key press while the search prompt is
// open, capturing every key for the text input until Enter submits or
// Esc cancels.
func (m Model) updateSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := m.searchInput.Value()
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.Reset()
		if text != "" && m.onSearch != nil {
			m.onSearch(text, query.Plain)
		}
		return m, nil
	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.Reset()
		return m, nil
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
}

func (m Model) View() string {
	if m.searchMode {
		return m.backend.Render() + "\n" + m.searchInput.View()
	}
	return m.backend.Render()
}
