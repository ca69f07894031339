package search

import (
	"testing"

	"github.com/grailbio/biodiff/internal/query"
	"github.com/stretchr/testify/require"
)

func TestContextStartEmitsMatchesThenTerminal(t *testing.T) {
	q, err := NewQuery("ab", query.Plain)
	require.NoError(t, err)
	ctx := NewContext(0, q)

	var batches []Batch
	ctx.Start([]byte("xxabxxabxx"), func(b Batch) bool {
		batches = append(batches, b)
		return true
	})
	require.Len(t, batches, 3)
	require.Equal(t, Range{2, 4}, *batches[0].Match)
	require.Equal(t, Range{6, 8}, *batches[1].Match)
	require.Nil(t, batches[2].Match)
}

func TestContextCancelStopsEarly(t *testing.T) {
	q, err := NewQuery("ab", query.Plain)
	require.NoError(t, err)
	ctx := NewContext(0, q)
	ctx.Cancel()

	var batches []Batch
	ctx.Start([]byte("abababab"), func(b Batch) bool {
		batches = append(batches, b)
		return true
	})
	require.Len(t, batches, 1)
	require.Nil(t, batches[0].Match)
}

func TestContextSendFalseStopsImmediately(t *testing.T) {
	q, err := NewQuery("ab", query.Plain)
	require.NoError(t, err)
	ctx := NewContext(0, q)

	calls := 0
	ctx.Start([]byte("abababab"), func(b Batch) bool {
		calls++
		return false
	})
	require.Equal(t, 1, calls)
}
