// Package controller is the single-consumer message loop: a
// multi-producer, single-consumer queue delivering the sum type
// {UserAction, AppendCells, PrependCells, SearchBatch}, drained by one
// goroutine that owns the aligned View and the terminal back-end. It
// is the sole synchronisation point between the alignment worker, the
// search workers, and user input.
package controller

import (
	"context"
	"sync"

	"github.com/grailbio/base/log"

	"github.com/grailbio/biodiff/internal/action"
	"github.com/grailbio/biodiff/internal/align"
	"github.com/grailbio/biodiff/internal/aligner"
	"github.com/grailbio/biodiff/internal/cache"
	"github.com/grailbio/biodiff/internal/render"
	"github.com/grailbio/biodiff/internal/search"
	"github.com/grailbio/biodiff/internal/term"
	"github.com/grailbio/biodiff/internal/uierr"
)

// Kind distinguishes the four message shapes carried over the queue.
type Kind int

const (
	UserAction Kind = iota
	AppendCells
	PrependCells
	SearchBatch
)

// Message is the sum type carried over the controller's queue.
type Message struct {
	Kind   Kind
	Action action.Action
	Param  int // Goto address, column delta, etc. -- action-specific
	Cells  []align.Cell
	Batch  search.Batch
}

// Controller owns the aligned View and drives it from a single
// goroutine (Run) -- the "single controller task" scheduling model.
type Controller struct {
	view    *align.View
	backend term.Backend
	al      aligner.Aligner
	cache   *cache.LRU
	algo    string

	queue chan Message

	searchCtxs []search.Context
	alignStop  context.CancelFunc

	wg   sync.WaitGroup
	quit chan struct{}
}

// New creates a controller over view, painting to backend and running
// al for alignment. algo names the algorithm parameters for cache
// fingerprinting.
func New(view *align.View, backend term.Backend, al aligner.Aligner, c *cache.LRU, algo string) *Controller {
	return &Controller{
		view:    view,
		backend: backend,
		al:      al,
		cache:   c,
		algo:    algo,
		queue:   make(chan Message),
		quit:    make(chan struct{}),
	}
}

// Start launches the alignment worker (forward and backward) and
// renders the initial viewport. Call Run in the same or a different
// goroutine to begin draining messages.
func (c *Controller) Start(ctx context.Context) {
	left, right := c.view.Files()
	lo0, hi0 := c.view.Origin()
	origin := aligner.Origin{Left: lo0, Right: hi0}

	if _, entry, ok := c.lookupCache(left, right, origin); ok {
		for _, m := range entry.Forward {
			c.enqueueLocked(Message{Kind: AppendCells, Cells: m.Cells})
		}
		for _, m := range entry.Backward {
			c.enqueueLocked(Message{Kind: PrependCells, Cells: m.Cells})
		}
		Paint(c.view, c.backend)
		return
	}

	alignCtx, cancel := context.WithCancel(ctx)
	c.alignStop = cancel

	var forward, backward []align.Message
	var mu sync.Mutex

	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		c.al.AlignForward(alignCtx, left, right, origin, func(m align.Message) bool {
			mu.Lock()
			forward = append(forward, m)
			mu.Unlock()
			select {
			case c.queue <- Message{Kind: AppendCells, Cells: m.Cells}:
				return true
			case <-c.quit:
				return false
			}
		})
	}()
	go func() {
		defer c.wg.Done()
		c.al.AlignBackward(alignCtx, left, right, origin, func(m align.Message) bool {
			mu.Lock()
			backward = append(backward, m)
			mu.Unlock()
			select {
			case c.queue <- Message{Kind: PrependCells, Cells: m.Cells}:
				return true
			case <-c.quit:
				return false
			}
		})
	}()

	go func() {
		c.wg.Wait()
		if c.cache != nil {
			key := cache.Fingerprint(left, right, c.algo)
			mu.Lock()
			c.cache.Put(key, cache.Entry{
				Origin:   struct{ Left, Right int }{origin.Left, origin.Right},
				Forward:  append([]align.Message(nil), forward...),
				Backward: append([]align.Message(nil), backward...),
			})
			mu.Unlock()
		}
	}()

	Paint(c.view, c.backend)
}

func (c *Controller) lookupCache(left, right []byte, origin aligner.Origin) (cache.Key, cache.Entry, bool) {
	if c.cache == nil {
		return 0, cache.Entry{}, false
	}
	key := cache.Fingerprint(left, right, c.algo)
	entry, ok := c.cache.Get(key)
	if !ok || entry.Origin.Left != origin.Left || entry.Origin.Right != origin.Right {
		return key, cache.Entry{}, false
	}
	return key, entry, true
}

// enqueueLocked delivers a message synchronously at startup, before Run
// is draining the channel (used to replay a cached alignment stream).
func (c *Controller) enqueueLocked(m Message) {
	c.applyMessage(m)
}

// Send delivers msg to the controller's queue; it blocks until Run
// receives it or the controller has stopped.
func (c *Controller) Send(m Message) bool {
	select {
	case c.queue <- m:
		return true
	case <-c.quit:
		return false
	}
}

// Run drains the message queue until Stop is called or a fatal error
// occurs, applying the controller's error propagation policy:
// recoverable errors never abort the loop, fatal errors tear down and
// return.
func (c *Controller) Run() error {
	for {
		select {
		case m := <-c.queue:
			if err := c.dispatch(m); err != nil {
				if uierr.IsFatal(err) {
					c.teardown()
					return err
				}
				log.Error.Printf("biodiff: recoverable error: %v", err)
			}
		case <-c.quit:
			return nil
		}
	}
}

// Stop signals Run and the alignment/search workers to exit.
func (c *Controller) Stop() {
	select {
	case <-c.quit:
	default:
		close(c.quit)
	}
	if c.alignStop != nil {
		c.alignStop()
	}
	for i := range c.searchCtxs {
		c.searchCtxs[i].Cancel()
	}
}

func (c *Controller) teardown() {
	c.Stop()
	c.backend.Clear()
	c.backend.Refresh()
}

func (c *Controller) dispatch(m Message) error {
	switch m.Kind {
	case UserAction:
		return c.ProcessAction(m.Action, m.Param)
	default:
		c.applyMessage(m)
		return nil
	}
}

func (c *Controller) applyMessage(m Message) {
	switch m.Kind {
	case AppendCells:
		if c.view.Append(m.Cells) {
			Paint(c.view, c.backend)
		}
	case PrependCells:
		if c.view.Prepend(m.Cells) {
			Paint(c.view, c.backend)
		}
	case SearchBatch:
		c.view.AddSearchResults(m.Batch)
		Paint(c.view, c.backend)
	}
}

// ProcessAction applies a single resolved user action from the closed
// action set and repaints if anything changed.
func (c *Controller) ProcessAction(a action.Action, param int) error {
	switch a {
	case action.Up:
		c.move(action.MoveCursorY, 0, -1)
	case action.Down:
		c.move(action.MoveCursorY, 0, 1)
	case action.Left:
		c.move(action.MoveCursorX, -1, 0)
	case action.Right:
		c.move(action.MoveCursorX, 1, 0)
	case action.UpAlt:
		c.move(action.MoveViewY, 0, -1)
	case action.DownAlt:
		c.move(action.MoveViewY, 0, 1)
	case action.LeftAlt:
		c.move(action.MoveViewX, -1, 0)
	case action.RightAlt:
		c.move(action.MoveViewX, 1, 0)
	case action.PgUp:
		_, rows := c.backend.Size()
		c.move(action.MoveViewY, 0, -rows)
	case action.PgDown:
		_, rows := c.backend.Size()
		c.move(action.MoveViewY, 0, rows)
	case action.Top:
		c.view.JumpStart()
		Paint(c.view, c.backend)
	case action.Bottom:
		c.view.JumpEnd()
		Paint(c.view, c.backend)
	case action.NextDifference:
		c.view.JumpNextDifference(true, false)
		Paint(c.view, c.backend)
	case action.PrevDifference:
		c.view.JumpNextDifference(false, false)
		Paint(c.view, c.backend)
	case action.NextInsertion:
		c.view.JumpNextDifference(true, true)
		Paint(c.view, c.backend)
	case action.PrevInsertion:
		c.view.JumpNextDifference(false, true)
		Paint(c.view, c.backend)
	case action.NextSearch:
		c.view.JumpNextSearchResult()
		Paint(c.view, c.backend)
	case action.PrevSearch:
		c.view.JumpPrevSearchResult()
		Paint(c.view, c.backend)
	case action.Goto:
		right := param < 0
		if _, err := c.view.Goto(right, abs(param)); err != nil {
			side := "left"
			if right {
				side = "right"
			}
			return uierr.UnmappedAddressError(side, abs(param))
		}
		Paint(c.view, c.backend)
	case action.StartSelection:
		c.view.StartSelection(c.view.CursorActiveState())
	case action.ClearSelection:
		c.view.ClearSelection()
		c.view.ClearSearch()
		c.CancelSearch()
		Paint(c.view, c.backend)
	case action.AddColumn:
		if c.view.AddColumn() {
			Paint(c.view, c.backend)
		}
	case action.RemoveColumn:
		if c.view.RemoveColumn() {
			Paint(c.view, c.backend)
		}
	case action.ResetColumn:
		if c.view.Resize(16, c.backendRows()) {
			Paint(c.view, c.backend)
		}
	case action.CursorFirst:
		c.view.SetCursorActive(action.ActiveFirst)
	case action.CursorBoth:
		c.view.SetCursorActive(action.ActiveBoth)
	case action.CursorSecond:
		c.view.SetCursorActive(action.ActiveSecond)
	case action.Refresh:
		c.backend.Clear()
		Paint(c.view, c.backend)
	case action.AutoColumn:
		if c.view.AutoColumn(render.LevenshteinColumns) {
			Paint(c.view, c.backend)
		}
	case action.Search:
		// The query text itself is collected by the terminal prompt
		// (internal/term.Model's searchMode) before an action ever
		// reaches this dispatcher, and submission calls
		// Controller.StartSearch directly once the text compiles. A
		// Search action arriving here carries no text (e.g. a scripted
		// ActionMsg driven with no prompt behind it), so it is a
		// deliberate no-op rather than a silent fall to default.
	case action.Unalign:
		// The unaligned side-by-side view itself is an external
		// collaborator outside this module's scope; here we only need
		// to exercise the boundary, decomposing back to per-file state
		// on a mapped cursor and silently keeping the aligned view open
		// otherwise.
		if first, second, ok := c.view.Destruct(); ok {
			log.Debug.Printf("biodiff: destructured to %s@%d / %s@%d", first.Name, first.Index, second.Name, second.Index)
		}
	case action.Quit:
		c.Stop()
	default:
		// Help/AlgorithmConfig/Align/SetOffset open modal or
		// mode-switching UI outside the aligned view's scope; the
		// controller still recognizes them in the closed action set but
		// the aligned view has nothing further to do for them here.
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (c *Controller) move(kind action.MoveKind, x, y int) {
	c.view.MoveAround(action.Move{Kind: kind, X: x, Y: y})
	Paint(c.view, c.backend)
}

func (c *Controller) backendRows() int {
	_, rows := c.backend.Size()
	return rows
}

// StartSearch launches a search for the already compiled query q over
// the active pane(s), cancelling any previous search workers first.
func (c *Controller) StartSearch(q search.Query) {
	c.CancelSearch()
	left, right := c.view.Files()
	contexts := c.view.SetupSearch(q, c.view.CursorActiveState())
	c.searchCtxs = contexts
	for i := range contexts {
		ctx := contexts[i]
		data := left
		if ctx.Pane == 1 {
			data = right
		}
		go ctx.Start(data, func(b search.Batch) bool {
			select {
			case c.queue <- Message{Kind: SearchBatch, Batch: b}:
				return true
			case <-c.quit:
				return false
			}
		})
	}
}

// CancelSearch cancels any running search workers without clearing
// the results already collected.
func (c *Controller) CancelSearch() {
	for i := range c.searchCtxs {
		c.searchCtxs[i].Cancel()
	}
	c.searchCtxs = nil
}
