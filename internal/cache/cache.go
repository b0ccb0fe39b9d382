// Package cache provides an in-memory key/value store whose entries expire a fixed
// duration after insertion.
package cache

import (
	"log/slog"
	"sync"
	"time"
)

const DefaultTTL = time.Hour

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is safe for concurrent use. An expired entry is treated as absent.
// Keys are never evicted for any reason other than expiry.
type Cache[V any] struct {
	name  string
	ttl   time.Duration
	now   func() time.Time
	clone func(V) V

	mu      sync.RWMutex
	entries map[string]entry[V]

	observer Observer
}

// Observer is notified of every lookup. *metrics.Metrics implements it.
type Observer interface {
	ObserveCacheLookup(cache string, hit bool)
}

type Option[V any] func(*Cache[V])

// WithClock replaces time.Now, mostly for tests.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) {
		c.now = now
	}
}

// WithClone copies values on Set and Get so callers never share cached memory.
func WithClone[V any](clone func(V) V) Option[V] {
	return func(c *Cache[V]) {
		c.clone = clone
	}
}

func WithObserver[V any](observer Observer) Option[V] {
	return func(c *Cache[V]) {
		c.observer = observer
	}
}

func New[V any](name string, ttl time.Duration, opts ...Option[V]) *Cache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache[V]{
		name:    name,
		ttl:     ttl,
		now:     time.Now,
		clone:   func(v V) V { return v },
		entries: make(map[string]entry[V]),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache[V]) Name() string {
	return c.name
}

func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		if current, still := c.entries[key]; still && current.expiresAt.Equal(e.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		ok = false
	}

	if c.observer != nil {
		c.observer.ObserveCacheLookup(c.name, ok)
	}
	slog.Default().Debug("cache lookup", "cache", c.name, "key", key, "hit", ok)

	if !ok {
		var zero V
		return zero, false
	}
	return c.clone(e.value), true
}

func (c *Cache[V]) Set(key string, value V) {
	e := entry[V]{
		value:     c.clone(value),
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

// Len counts stored entries, including expired ones not yet purged.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge drops expired entries and returns how many were removed.
func (c *Cache[V]) Purge() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}
