package cachefake

import (
	"sync"
	"testing"
	"time"

	"github.com/goforj/ttlcache/cachecore"
)

// Op identifies a cache operation for assertions.
type Op = cachecore.Op

const (
	OpPut   = cachecore.OpPut
	OpGet   = cachecore.OpGet
	OpEvict = cachecore.OpEvict
	OpSweep = cachecore.OpSweep
	OpClose = cachecore.OpClose
)

const defaultTTL = 10 * time.Second

type item struct {
	value     any
	expiresAt time.Time
}

// Fake is a deterministic cachecore.Cache for tests. Time only moves through
// Advance, and expired entries are only reclaimed by Get or Sweep.
type Fake struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    time.Time
	items  map[string]item
	counts map[Op]map[string]int
	closed bool
}

var _ cachecore.Cache = (*Fake)(nil)

// New creates a Fake with the given TTL; ttl <= 0 uses 10s.
func New(ttl time.Duration) *Fake {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Fake{
		ttl:    ttl,
		now:    time.Unix(0, 0).UTC(),
		items:  make(map[string]item),
		counts: make(map[Op]map[string]int),
	}
}

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// Now returns the fake clock reading.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Put implements cachecore.Cache.
func (f *Fake) Put(key string, value any) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recordLocked(OpPut, key)

	if cachecore.IsAbsent(value) {
		return false
	}
	if _, exists := f.items[key]; exists {
		return false
	}
	f.items[key] = item{value: value, expiresAt: f.now.Add(f.ttl)}
	return true
}

// Get implements cachecore.Cache.
func (f *Fake) Get(key string) (any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recordLocked(OpGet, key)

	it, ok := f.items[key]
	if !ok {
		return nil, false
	}
	if f.now.Before(it.expiresAt) {
		return it.value, true
	}
	delete(f.items, key)
	f.recordLocked(OpEvict, key)
	return nil, false
}

// Sweep removes every expired entry, like one pass of the real sweeper.
// It is a no-op after Close.
func (f *Fake) Sweep() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return 0
	}
	f.recordLocked(OpSweep, "")

	removed := 0
	for key, it := range f.items {
		if !f.now.Before(it.expiresAt) {
			delete(f.items, key)
			removed++
		}
	}
	return removed
}

// Len implements cachecore.Cache.
func (f *Fake) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

// Close implements cachecore.Cache.
func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.recordLocked(OpClose, "")
	return nil
}

// Reset clears recorded counts.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = make(map[Op]map[string]int)
}

// AssertCalled verifies key was touched by op the expected number of times.
func (f *Fake) AssertCalled(t testing.TB, op Op, key string, times int) {
	t.Helper()
	if got := f.Count(op, key); got != times {
		t.Fatalf("expected %s %q called %d times, got %d", op, key, times, got)
	}
}

// AssertNotCalled ensures key was never touched by op.
func (f *Fake) AssertNotCalled(t testing.TB, op Op, key string) {
	t.Helper()
	if got := f.Count(op, key); got != 0 {
		t.Fatalf("expected %s %q not called, got %d", op, key, got)
	}
}

// AssertTotal ensures the total call count for an op matches times.
func (f *Fake) AssertTotal(t testing.TB, op Op, times int) {
	t.Helper()
	if got := f.Total(op); got != times {
		t.Fatalf("expected %s total=%d, got %d", op, times, got)
	}
}

// Count returns calls for op+key.
func (f *Fake) Count(op Op, key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[op][key]
}

// Total returns total calls for an op across keys.
func (f *Fake) Total(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum int
	for _, v := range f.counts[op] {
		sum += v
	}
	return sum
}

func (f *Fake) recordLocked(op Op, key string) {
	if f.counts[op] == nil {
		f.counts[op] = make(map[string]int)
	}
	f.counts[op][key]++
}
