// Package cache implements the resolver's question-to-answer cache: a
// single-entry-per-question store with lazy, TTL-driven eviction and no
// size bound — reclamation happens only when a stale entry is read.
package cache

import (
	"sync"

	"github.com/pinedns/pinedns/clock"
	"github.com/pinedns/pinedns/wire"
)

// Cache is the resolver's lookup/insert contract. HasFresh gates reads: a
// caller checks it before calling Get.
type Cache interface {
	// HasFresh reports whether a fresh (non-expired) entry exists for q.
	// If an entry exists but has gone stale, it is removed as a side
	// effect and false is returned.
	HasFresh(q wire.Question) bool

	// Get returns the stored record for q, if any, without checking
	// freshness — callers gate on HasFresh first.
	Get(q wire.Question) (wire.ResourceRecord, bool)

	// Put replaces any existing entry for q.
	Put(q wire.Question, r wire.ResourceRecord)
}

// New selects a Cache backend per the configured name: "bigcache" for the
// bigcache-backed opt-in backend, "" or "ttl" for the unbounded default, anything
// else falling back to a no-op cache.
func New(backend string, clk clock.Clock) (Cache, error) {
	switch backend {
	case "", "ttl":
		return NewTTLCache(clk), nil
	case "bigcache":
		return NewBoundedCache(clk)
	case "none":
		return DummyCache{}, nil
	default:
		return DummyCache{}, nil
	}
}

// TTLCache is the default Cache: an in-memory map with no LRU and no size
// bound.
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]wire.ResourceRecord
	clock   clock.Clock
}

// NewTTLCache returns an empty cache whose freshness checks are driven by
// clk, so tests can advance time deterministically.
func NewTTLCache(clk clock.Clock) *TTLCache {
	return &TTLCache{
		entries: make(map[string]wire.ResourceRecord),
		clock:   clk,
	}
}

// HasFresh implements Cache.
func (c *TTLCache) HasFresh(q wire.Question) bool {
	key := q.Key()

	c.mu.Lock()
	defer c.mu.Unlock()

	rr, ok := c.entries[key]
	if !ok {
		return false
	}

	if !rr.Fresh(c.clock.Now()) {
		delete(c.entries, key)
		return false
	}

	return true
}

// Get implements Cache.
func (c *TTLCache) Get(q wire.Question) (wire.ResourceRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rr, ok := c.entries[q.Key()]
	return rr, ok
}

// Put implements Cache.
func (c *TTLCache) Put(q wire.Question, r wire.ResourceRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[q.Key()] = r
}

// DummyCache answers every lookup as a miss and discards every insert. It
// is selected when caching is disabled in configuration.
type DummyCache struct{}

// HasFresh always reports a miss.
func (DummyCache) HasFresh(wire.Question) bool { return false }

// Get always reports nothing stored.
func (DummyCache) Get(wire.Question) (wire.ResourceRecord, bool) {
	return wire.ResourceRecord{}, false
}

// Put discards the entry.
func (DummyCache) Put(wire.Question, wire.ResourceRecord) {}
