package cache

import (
	"testing"
	"time"

	"github.com/pinedns/pinedns/clock"
	"github.com/pinedns/pinedns/wire"
)

func sampleQuestion() wire.Question {
	return wire.Question{
		Name:  wire.ParseDomainName("example.com"),
		Type:  wire.TypeA,
		Class: wire.ClassIN,
	}
}

func sampleRecord(now time.Time, ttl uint32) wire.ResourceRecord {
	return wire.ResourceRecord{
		Name:      wire.ParseDomainName("example.com"),
		Type:      wire.TypeA,
		Class:     wire.ClassIN,
		TTL:       ttl,
		RData:     []byte{0, 0, 0, 0},
		CreatedAt: now,
	}
}

// P5: an entry is fresh until its ttl elapses, and HasFresh reflects that.
func TestTTLCacheFreshness(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := clock.NewManual(now)
	c := NewTTLCache(clk)

	q := sampleQuestion()
	c.Put(q, sampleRecord(now, 30))

	if !c.HasFresh(q) {
		t.Fatal("expected entry to be fresh immediately after put")
	}

	clk.Advance(29 * time.Second)
	if !c.HasFresh(q) {
		t.Fatal("expected entry to still be fresh before ttl elapses")
	}

	clk.Advance(2 * time.Second)
	if c.HasFresh(q) {
		t.Fatal("expected entry to be stale once ttl has elapsed")
	}
}

// P6: reading a stale entry evicts it as a side effect; a subsequent Get
// finds nothing.
func TestTTLCacheLazyEviction(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := clock.NewManual(now)
	c := NewTTLCache(clk)

	q := sampleQuestion()
	c.Put(q, sampleRecord(now, 5))

	clk.Advance(10 * time.Second)
	if c.HasFresh(q) {
		t.Fatal("expected entry to have expired")
	}

	if _, ok := c.Get(q); ok {
		t.Fatal("expected stale entry to have been evicted by HasFresh")
	}
}

// P7: putting a new record for the same question replaces the old one.
func TestTTLCacheLastWriteWins(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := clock.NewManual(now)
	c := NewTTLCache(clk)

	q := sampleQuestion()
	first := sampleRecord(now, 30)
	first.RData = []byte{1, 1, 1, 1}
	c.Put(q, first)

	second := sampleRecord(now, 30)
	second.RData = []byte{2, 2, 2, 2}
	c.Put(q, second)

	got, ok := c.Get(q)
	if !ok {
		t.Fatal("expected an entry after two puts")
	}
	if got.DataString() != "2.2.2.2" {
		t.Fatalf("expected last write to win, got %s", got.DataString())
	}
}

func TestTTLCacheMiss(t *testing.T) {
	c := NewTTLCache(clock.System{})
	if c.HasFresh(sampleQuestion()) {
		t.Fatal("expected miss on empty cache")
	}
	if _, ok := c.Get(sampleQuestion()); ok {
		t.Fatal("expected no entry on empty cache")
	}
}

func TestDummyCacheAlwaysMisses(t *testing.T) {
	var c DummyCache
	q := sampleQuestion()
	c.Put(q, sampleRecord(time.Now(), 60))

	if c.HasFresh(q) {
		t.Fatal("dummy cache should never report fresh")
	}
	if _, ok := c.Get(q); ok {
		t.Fatal("dummy cache should never return a stored value")
	}
}

func TestBoundedCacheRoundTrip(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := clock.NewManual(now)

	c, err := NewBoundedCache(clk)
	if err != nil {
		t.Fatalf("NewBoundedCache: %v", err)
	}

	q := sampleQuestion()
	c.Put(q, sampleRecord(now, 30))

	if !c.HasFresh(q) {
		t.Fatal("expected entry to be fresh immediately after put")
	}

	got, ok := c.Get(q)
	if !ok {
		t.Fatal("expected a stored entry")
	}
	if got.DataString() != "0.0.0.0" {
		t.Fatalf("unexpected round-tripped record: %+v", got)
	}

	clk.Advance(31 * time.Second)
	if c.HasFresh(q) {
		t.Fatal("expected entry to have expired")
	}
}
