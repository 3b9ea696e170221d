package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/allegro/bigcache/v3"

	"github.com/pinedns/pinedns/clock"
	"github.com/pinedns/pinedns/wire"
)

// BoundedCache is the opt-in C11 backend: a bigcache-backed store used in
// place of the map TTLCache uses by default. It is built from bigcache's
// default config, which sets no hard memory limit; bigcache drops entries
// older than its life window on its own, alongside the TTL check made on
// read. Selecting it trades away the default's "no eviction but by TTL"
// guarantee.
type BoundedCache struct {
	backend *bigcache.BigCache
	clock   clock.Clock
}

// boundedEntry is the JSON form stored against each question key.
type boundedEntry struct {
	Record wire.ResourceRecord
}

// NewBoundedCache constructs a BoundedCache with bigcache's defaults
// sized for a two-hour shard lifetime; TTL freshness is still enforced
// on read against clk, independent of bigcache's own expiry.
func NewBoundedCache(clk clock.Clock) (*BoundedCache, error) {
	backend, err := bigcache.New(context.Background(), bigcache.DefaultConfig(120*time.Minute))
	if err != nil {
		return nil, err
	}
	return &BoundedCache{backend: backend, clock: clk}, nil
}

// HasFresh implements Cache.
func (c *BoundedCache) HasFresh(q wire.Question) bool {
	entry, ok := c.lookup(q)
	if !ok {
		return false
	}
	if !entry.Record.Fresh(c.clock.Now()) {
		c.backend.Delete(q.Key())
		return false
	}
	return true
}

// Get implements Cache.
func (c *BoundedCache) Get(q wire.Question) (wire.ResourceRecord, bool) {
	entry, ok := c.lookup(q)
	if !ok {
		return wire.ResourceRecord{}, false
	}
	return entry.Record, true
}

// Put implements Cache.
func (c *BoundedCache) Put(q wire.Question, r wire.ResourceRecord) {
	raw, err := json.Marshal(boundedEntry{Record: r})
	if err != nil {
		return
	}
	c.backend.Set(q.Key(), raw)
}

func (c *BoundedCache) lookup(q wire.Question) (boundedEntry, bool) {
	raw, err := c.backend.Get(q.Key())
	if err != nil {
		return boundedEntry{}, false
	}

	var entry boundedEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return boundedEntry{}, false
	}
	return entry, true
}
