// Package cache provides a small sharded LRU cache used to memoize
// text measurement results.
//
// Layout passes ask the same height-for-width questions over and over:
// the fixed-point solver re-queries labels at slightly different widths
// on every iteration, and interactive resizing repeats whole passes.
// Shaping text is by far the most expensive part of a pass, so the
// measure package keys shaped results by (text, width bucket) and keeps
// them here.
package cache

import (
	"container/list"
	"hash/maphash"
	"sync"
	"sync/atomic"
)

const (
	// shardCount is a power of two so shard selection is a bitmask.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultCapacity is the per-shard entry limit used when New is
	// called with a non-positive capacity.
	DefaultCapacity = 256
)

// Cache is a thread-safe sharded LRU cache. The zero value is not
// usable; create instances with New.
type Cache[K comparable, V any] struct {
	seed     maphash.Seed
	shards   [shardCount]shard[K, V]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*list.Element
	order   *list.List // front = most recently used
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding up to capacity entries per shard
// (16 shards). A non-positive capacity selects DefaultCapacity.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &Cache[K, V]{
		seed:     maphash.MakeSeed(),
		capacity: capacity,
	}
	for i := range c.shards {
		c.shards[i].entries = make(map[K]*list.Element)
		c.shards[i].order = list.New()
	}
	return c
}

func (c *Cache[K, V]) shardFor(key K) *shard[K, V] {
	h := maphash.Comparable(c.seed, key)
	return &c.shards[h&shardMask]
}

// Get returns the cached value for key and whether it was present.
// A hit refreshes the entry's recency.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)

	s.mu.Lock()
	el, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.order.MoveToFront(el)
	value := el.Value.(*entry[K, V]).value
	s.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Put stores a value, evicting the least recently used entries of the
// shard when it is full.
func (c *Cache[K, V]) Put(key K, value V) {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[key]; ok {
		el.Value.(*entry[K, V]).value = value
		s.order.MoveToFront(el)
		return
	}

	c.evictLocked(s)
	s.entries[key] = s.order.PushFront(&entry[K, V]{key: key, value: value})
}

// GetOrCompute returns the cached value for key, computing and storing
// it on a miss. The compute function runs with the shard locked so the
// same key is never computed twice concurrently; keep it fast.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() V) V {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[key]; ok {
		s.order.MoveToFront(el)
		c.hits.Add(1)
		return el.Value.(*entry[K, V]).value
	}

	c.misses.Add(1)
	value := compute()

	c.evictLocked(s)
	s.entries[key] = s.order.PushFront(&entry[K, V]{key: key, value: value})
	return value
}

// evictLocked makes room for one more entry. Caller holds s.mu.
func (c *Cache[K, V]) evictLocked(s *shard[K, V]) {
	for s.order.Len() >= c.capacity {
		oldest := s.order.Back()
		if oldest == nil {
			return
		}
		s.order.Remove(oldest)
		delete(s.entries, oldest.Value.(*entry[K, V]).key)
		c.evictions.Add(1)
	}
}

// Len returns the total number of entries across all shards.
func (c *Cache[K, V]) Len() int {
	total := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Clear drops all entries. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.entries = make(map[K]*list.Element)
		s.order.Init()
		s.mu.Unlock()
	}
}

// Stats holds cumulative cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Stats returns the cumulative counters. Reads are atomic and do not
// block cache operations.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
