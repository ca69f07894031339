package search

import "github.com/grailbio/biodiff/internal/query"

// Query identifies a compiled search. Equality is structural over
// (Text, Kind) only; Automaton is a derived cache excluded from
// equality so a SearchBatch tagged with an older Query value (built by
// a since-cancelled search) can still be matched against a newer,
// value-equal one.
type Query struct {
	Text      string
	Kind      query.Kind
	Automaton query.Automaton
}

// NewQuery compiles text under kind and returns the resulting Query.
func NewQuery(text string, kind query.Kind) (Query, error) {
	automaton, err := query.Compile(text, kind)
	if err != nil {
		return Query{}, err
	}
	return Query{Text: text, Kind: kind, Automaton: automaton}, nil
}

// Equal reports structural equality over (Text, Kind), ignoring the
// compiled automaton.
func (q Query) Equal(other Query) bool {
	return q.Text == other.Text && q.Kind == other.Kind
}

// Results pairs a Query with the matches found for it so far.
type Results struct {
	Query Query
	Store *MatchStore
}

// NewResults returns an empty Results for query, created when a search
// is initiated.
func NewResults(q Query) *Results {
	return &Results{Query: q, Store: NewMatchStore()}
}
