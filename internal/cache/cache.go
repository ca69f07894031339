// Package cache memoizes alignment streams so reopening the same pair
// of files under the same algorithm parameters replays cached cells
// instead of re-running the aligner. Keyed by a fast fingerprint of
// (leftBytes, rightBytes, algoParams), grounded on fusion/kmer_index.go's
// use of github.com/dgryski/go-farm for hash-table keys.
package cache

import (
	"container/list"
	"sync"

	farm "github.com/dgryski/go-farm"

	"github.com/grailbio/biodiff/internal/align"
)

// Key fingerprints one alignment run.
type Key uint64

// Fingerprint computes the cache key for a pair of byte streams under
// the given algorithm parameter string (e.g. "wfa;mismatch=4,gapopen=6,gapext=2").
func Fingerprint(left, right []byte, algoParams string) Key {
	h := farm.Hash64WithSeed(left, 0)
	h = farm.Hash64WithSeed(right, h)
	h = farm.Hash64WithSeed([]byte(algoParams), h)
	return Key(h)
}

// Entry is one cached alignment stream: the full set of cells produced
// in each direction, in emission order, plus the origin they were
// anchored at.
type Entry struct {
	Origin   struct{ Left, Right int }
	Forward  []align.Message
	Backward []align.Message
}

// LRU caches up to capacity alignment streams, evicting the least
// recently used entry when full.
type LRU struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	items    map[Key]*list.Element
}

type lruItem struct {
	key   Key
	entry Entry
}

// New returns an LRU holding up to capacity entries.
func New(capacity int) *LRU {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU{capacity: capacity, ll: list.New(), items: make(map[Key]*list.Element)}
}

// Get returns the cached entry for key, promoting it to most-recently-used.
func (c *LRU) Get(key Key) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		return Entry{}, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*lruItem).entry, true
}

// Put inserts or replaces the entry for key, evicting the
// least-recently-used entry if the cache is at capacity.
func (c *LRU) Put(key Key, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value.(*lruItem).entry = entry
		c.ll.MoveToFront(el)
		return
	}
	el := c.ll.PushFront(&lruItem{key: key, entry: entry})
	c.items[key] = el
	if c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.items, oldest.Value.(*lruItem).key)
		}
	}
}

// Len returns the number of entries currently cached.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
