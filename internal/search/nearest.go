package search

// Pane bundles one side's search results with its current cursor
// address and a side identifier passed through to ToIndex.
type Pane struct {
	Results *Results
	Addr    int
	Side    int
}

// ToIndex maps a byte address on the given side to a signed row index
// in the aligned buffer, or ok=false if no row currently holds it.
type ToIndex func(addr int, side int) (int, bool)

type candidate struct {
	wrapped bool
	row     int
}

func less(a, b candidate) bool {
	if a.wrapped != b.wrapped {
		return !a.wrapped // non-wrapped sorts first
	}
	return a.row < b.row
}

// NearestNext selects the nearest next match across all panes,
// preferring a non-wrapped result over a wrapped one and, among ties,
// the smallest row index.
func NearestNext(panes []Pane, toIndex ToIndex) (int, bool) {
	return nearest(panes, toIndex, false)
}

// NearestPrev is the symmetric operation for "previous", which breaks
// ties by the largest row index (nearest behind the cursor) by
// reversing the comparison key.
func NearestPrev(panes []Pane, toIndex ToIndex) (int, bool) {
	return nearest(panes, toIndex, true)
}

func nearest(panes []Pane, toIndex ToIndex, prev bool) (int, bool) {
	best := candidate{}
	haveBest := false
	for _, p := range panes {
		if p.Results == nil {
			continue
		}
		var wr WrapResult
		if prev {
			wr = p.Results.Store.Prev(p.Addr)
		} else {
			wr = p.Results.Store.Next(p.Addr)
		}
		if wr.None {
			continue
		}
		row, ok := toIndex(wr.Match.Start, p.Side)
		if !ok {
			continue
		}
		c := candidate{wrapped: wr.Wrapped, row: row}
		if prev {
			c.row = -c.row
		}
		if !haveBest || less(c, best) {
			best = c
			haveBest = true
		}
	}
	if !haveBest {
		return 0, false
	}
	if prev {
		return -best.row, true
	}
	return best.row, true
}
