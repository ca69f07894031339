package search

import "sync/atomic"

// Batch is one message from a search worker to the controller: either
// a single match, or a nil Match signalling the terminal "no more
// results" event. It is tagged with the Query it was produced for so
// the controller can discard batches belonging to a search the user
// has since cleared or replaced.
type Batch struct {
	Pane  int
	Query Query
	Match *Range
}

// Context is the worker-side handle for one pane's search: an
// identifier, the query being searched for, and an advisory
// cancellation flag. Cancellation is a single atomic bool with relaxed
// semantics: the worker only needs to notice eventually, and the
// controller already filters stale batches by query identity.
type Context struct {
	Pane    int
	Query   Query
	running *atomic.Bool
}

// NewContext creates a running search context for pane over query.
func NewContext(pane int, q Query) *Context {
	running := &atomic.Bool{}
	running.Store(true)
	return &Context{Pane: pane, Query: q, running: running}
}

// Cancel flips the running flag; the worker observes it at its next
// emission and terminates.
func (c *Context) Cancel() { c.running.Store(false) }

// Start scans data with the compiled query and delivers one Batch per
// match via send, followed by a terminal Batch with Match == nil. send
// returning false means the receiver has disconnected and the worker
// must stop immediately without emitting further batches.
//
// Start runs synchronously; callers that want worker-thread behavior
// run it in its own goroutine.
func (c *Context) Start(data []byte, send func(Batch) bool) {
	locs := c.Query.Automaton.FindAllIndex(data, -1)
	for _, loc := range locs {
		if !c.running.Load() {
			send(Batch{Pane: c.Pane, Query: c.Query, Match: nil})
			return
		}
		r := Range{Start: loc[0], End: loc[1]}
		if !send(Batch{Pane: c.Pane, Query: c.Query, Match: &r}) {
			return
		}
	}
	send(Batch{Pane: c.Pane, Query: c.Query, Match: nil})
}
