// Package search implements per-stream match storage with
// forward/backward wrap-around lookup and the incremental search
// worker protocol.
package search

import "github.com/tidwall/btree"

// Range is a half-open byte range [Start, End) matched by a query.
type Range struct {
	Start, End int
}

type entry struct {
	key, val int
}

func lessEntry(a, b entry) bool { return a.key < b.key }

// MatchStore holds the non-overlapping matches for one byte stream, as
// two ordered indices (start->end and end->start) so both forward and
// backward neighbour queries are O(log n). Grounded on
// github.com/tidwall/btree.BTreeG, the corpus's (erigon-lib) stand-in
// for Rust's BTreeMap, which the original design is written against.
type MatchStore struct {
	starts *btree.BTreeG[entry]
	ends   *btree.BTreeG[entry]
}

// NewMatchStore returns an empty store.
func NewMatchStore() *MatchStore {
	return &MatchStore{
		starts: btree.NewBTreeG(lessEntry),
		ends:   btree.NewBTreeG(lessEntry),
	}
}

// AddMatch records a non-overlapping match range.
func (m *MatchStore) AddMatch(r Range) {
	m.starts.Set(entry{r.Start, r.End})
	m.ends.Set(entry{r.End, r.Start})
}

// Len returns the number of matches stored.
func (m *MatchStore) Len() int { return m.starts.Len() }

// IsIn reports whether addr falls inside some match.
func (m *MatchStore) IsIn(addr int) bool {
	var found entry
	ok := false
	m.starts.Descend(entry{key: addr}, func(item entry) bool {
		found = item
		ok = true
		return false
	})
	return ok && addr < found.val
}

// WrapResult is the outcome of a directional lookup: Match carries the
// match and Wrapped reports whether it required wrapping around the
// ends of the store.
type WrapResult struct {
	Match   Range
	Wrapped bool
	None    bool
}

// Next returns the first match strictly after addr, wrapping around to
// the overall first match if none exists, or None=true if the store is
// empty.
func (m *MatchStore) Next(addr int) WrapResult {
	if m.starts.Len() == 0 {
		return WrapResult{None: true}
	}
	var e entry
	found := false
	m.starts.Ascend(entry{key: addr + 1}, func(item entry) bool {
		e = item
		found = true
		return false
	})
	if found {
		return WrapResult{Match: Range{e.key, e.val}}
	}
	m.starts.Ascend(entry{}, func(item entry) bool {
		e = item
		found = true
		return false
	})
	return WrapResult{Match: Range{e.key, e.val}, Wrapped: true}
}

// Prev returns the last match whose end is <= addr, wrapping around to
// the overall last match (by end) if none exists, or None=true if the
// store is empty.
func (m *MatchStore) Prev(addr int) WrapResult {
	if m.ends.Len() == 0 {
		return WrapResult{None: true}
	}
	var e entry
	found := false
	m.ends.Descend(entry{key: addr}, func(item entry) bool {
		e = item
		found = true
		return false
	})
	if found {
		return WrapResult{Match: Range{e.val, e.key}}
	}
	m.ends.Descend(entry{key: maxKey}, func(item entry) bool {
		e = item
		found = true
		return false
	})
	return WrapResult{Match: Range{e.val, e.key}, Wrapped: true}
}

const maxKey = int(^uint(0) >> 1)

// InRange returns the matches whose start address lies in [lo, hi), in
// ascending order, for a viewport's visible-range rendering.
func (m *MatchStore) InRange(lo, hi int) []Range {
	var out []Range
	m.starts.Ascend(entry{key: lo}, func(item entry) bool {
		if item.key >= hi {
			return false
		}
		out = append(out, Range{item.key, item.val})
		return true
	})
	return out
}
