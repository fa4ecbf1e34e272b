package ttlcache

import (
	"sync"
	"testing"
	"time"

	"github.com/goforj/ttlcache/cachecore"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// newTestCache builds a private cache whose sweeper is effectively idle
// unless opts override the interval.
func newTestCache(t *testing.T, opts ...Option) *TTLCache {
	t.Helper()
	base := []Option{WithSweepInterval(time.Hour)}
	c := newTTLCache(append(base, opts...)...)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

type opRecord struct {
	op  string
	key string
	hit bool
	err error
}

type observerSpy struct {
	mu  sync.Mutex
	ops []opRecord
}

func (o *observerSpy) OnCacheOp(op cachecore.Op, key string, hit bool, err error, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ops = append(o.ops, opRecord{op: string(op), key: key, hit: hit, err: err})
}

func (o *observerSpy) records() []opRecord {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]opRecord(nil), o.ops...)
}
