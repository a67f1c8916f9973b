// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package cache provides a bounded, TTL-aware LRU used to memoize query
// results. Entries are never persisted.
package cache

import (
	"sync"
	"time"
)

const (
	defaultCapacity = 1024
	defaultTTL      = 10 * time.Minute
)

type entry[V any] struct {
	key       string
	value     V
	prev      *entry[V]
	next      *entry[V]
	expiresAt time.Time
}

// LRU is a thread-safe least recently used cache with lazy TTL expiry.
// Get, Add and eviction are O(1): a map indexes nodes of a doubly linked
// list whose head side holds the most recently used entry.
type LRU[V any] struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration
	now      func() time.Time

	items map[string]*entry[V]

	// sentinels; head.next is newest, tail.prev is oldest
	head *entry[V]
	tail *entry[V]

	hits   int64
	misses int64
}

// NewLRU creates a cache holding at most capacity entries for ttl each.
// Non-positive arguments fall back to 1024 entries and ten minutes.
func NewLRU[V any](capacity int, ttl time.Duration) *LRU[V] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	c := &LRU[V]{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*entry[V], capacity),
		head:     &entry[V]{},
		tail:     &entry[V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get returns the value for key if present and unexpired, marking it most
// recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.items[key]
	if !ok {
		c.misses++
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		c.removeEntry(e)
		c.misses++
		return zero, false
	}

	c.moveToFront(e)
	c.hits++
	return e.value, true
}

// Add inserts or refreshes key, evicting the least recently used entry when
// over capacity.
func (c *LRU[V]) Add(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry[V]{key: key, value: value, expiresAt: expiresAt}
	c.addToFront(e)
	c.items[key] = e

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// Len returns the number of entries, expired ones included until touched.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// CleanupExpired removes all expired entries and returns how many were
// dropped.
func (c *LRU[V]) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for e := c.tail.prev; e != c.head; {
		prev := e.prev
		if now.After(e.expiresAt) {
			c.removeEntry(e)
			removed++
		}
		e = prev
	}
	return removed
}

// Stats returns hit/miss counters and the current size.
func (c *LRU[V]) Stats() (hits, misses int64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, len(c.items)
}

// Internal methods (must be called with lock held)

func (c *LRU[V]) addToFront(e *entry[V]) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *LRU[V]) moveToFront(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	c.addToFront(e)
}

func (c *LRU[V]) removeEntry(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(c.items, e.key)
}

func (c *LRU[V]) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
}
