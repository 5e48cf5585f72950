// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package cache

import (
	"sync"
	"time"
)

// lfuEntry is a node in a frequency bucket.
type lfuEntry[V any] struct {
	key       string
	value     V
	freq      int
	expiresAt time.Time
	prev      *lfuEntry[V]
	next      *lfuEntry[V]
}

// bucket is a doubly-linked list of entries sharing one frequency. The
// front holds the most recently touched entry.
type bucket[V any] struct {
	head lfuEntry[V]
	size int
}

func newBucket[V any]() *bucket[V] {
	b := &bucket[V]{}
	b.head.next = &b.head
	b.head.prev = &b.head
	return b
}

func (b *bucket[V]) pushFront(e *lfuEntry[V]) {
	e.prev = &b.head
	e.next = b.head.next
	b.head.next.prev = e
	b.head.next = e
	b.size++
}

func (b *bucket[V]) unlink(e *lfuEntry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next = nil, nil
	b.size--
}

func (b *bucket[V]) back() *lfuEntry[V] {
	if b.size == 0 {
		return nil
	}
	return b.head.prev
}

// LFU is a thread-safe least-frequently-used cache with per-entry TTL.
// Get, Set and eviction are O(1). Among entries with the lowest frequency
// the least recently touched one is evicted first. Expired entries are
// removed lazily on access.
type LFU[V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]*lfuEntry[V]
	buckets  map[int]*bucket[V]
	minFreq  int
	now      func() time.Time

	hits   int64
	misses int64
}

// NewLFU creates an LFU holding at most capacity entries that expire ttl
// after their last Set.
func NewLFU[V any](capacity int, ttl time.Duration) *LFU[V] {
	if capacity <= 0 {
		capacity = 10000
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &LFU[V]{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*lfuEntry[V], capacity),
		buckets:  make(map[int]*bucket[V]),
		now:      time.Now,
	}
}

// Get returns the value for key and bumps its frequency.
func (c *LFU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		c.remove(e)
		c.misses++
		return zero, false
	}
	c.touch(e)
	c.hits++
	return e.value, true
}

// Set stores value under key, evicting if the cache is full.
func (c *LFU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.touch(e)
		return
	}

	if len(c.entries) >= c.capacity {
		c.evict()
	}

	e := &lfuEntry[V]{key: key, value: value, freq: 1, expiresAt: expiresAt}
	c.bucketFor(1).pushFront(e)
	c.entries[key] = e
	c.minFreq = 1
}

// Delete removes key. It reports whether the key was present.
func (c *LFU[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if ok {
		c.remove(e)
	}
	return ok
}

// Len returns the number of stored entries, including expired ones not yet
// collected.
func (c *LFU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Frequency returns the access count of key, or 0 if absent.
func (c *LFU[V]) Frequency(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		return e.freq
	}
	return 0
}

// Stats returns hit and miss counters and the current size.
func (c *LFU[V]) Stats() (hits, misses int64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, len(c.entries)
}

// Clear drops every entry. Counters are kept.
func (c *LFU[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*lfuEntry[V], c.capacity)
	c.buckets = make(map[int]*bucket[V])
	c.minFreq = 0
}

// Caller holds c.mu for everything below.

func (c *LFU[V]) bucketFor(freq int) *bucket[V] {
	b := c.buckets[freq]
	if b == nil {
		b = newBucket[V]()
		c.buckets[freq] = b
	}
	return b
}

func (c *LFU[V]) touch(e *lfuEntry[V]) {
	old := c.buckets[e.freq]
	old.unlink(e)
	if old.size == 0 {
		delete(c.buckets, e.freq)
		if c.minFreq == e.freq {
			c.minFreq++
		}
	}
	e.freq++
	c.bucketFor(e.freq).pushFront(e)
}

func (c *LFU[V]) remove(e *lfuEntry[V]) {
	if b := c.buckets[e.freq]; b != nil {
		b.unlink(e)
		if b.size == 0 {
			delete(c.buckets, e.freq)
		}
	}
	delete(c.entries, e.key)
}

func (c *LFU[V]) evict() {
	b := c.buckets[c.minFreq]
	if b == nil || b.size == 0 {
		// minFreq is stale after removals; find the real minimum.
		c.minFreq = 0
		for freq, candidate := range c.buckets {
			if candidate.size > 0 && (c.minFreq == 0 || freq < c.minFreq) {
				c.minFreq = freq
			}
		}
		if b = c.buckets[c.minFreq]; b == nil {
			return
		}
	}
	if victim := b.back(); victim != nil {
		c.remove(victim)
	}
}
