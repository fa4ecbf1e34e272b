package ttlcache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goforj/ttlcache/cachecore"
)

// TTLCache is a concurrency-safe in-memory cache where every entry lives for
// the same default TTL. Expired entries are removed on read and by a
// background sweeper owned by the cache.
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]entry

	ttl           time.Duration
	sweepInterval time.Duration
	clock         Clock
	logger        *zap.Logger
	observer      Observer

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

var _ cachecore.Cache = (*TTLCache)(nil)

func newTTLCache(opts ...Option) *TTLCache {
	var s settings
	for _, opt := range opts {
		s = opt(s)
	}
	s = s.withDefaults()

	ctx, cancel := context.WithCancel(context.Background())
	c := &TTLCache{
		entries:       make(map[string]entry),
		ttl:           s.ttl,
		sweepInterval: s.sweepInterval,
		clock:         s.clock,
		logger:        s.logger,
		observer:      s.observer,
		ctx:           ctx,
		cancel:        cancel,
		done:          make(chan struct{}),
	}

	go c.runSweeper()

	return c
}

// TTL reports the lifetime applied to every entry.
func (c *TTLCache) TTL() time.Duration {
	return c.ttl
}

// Put stores value under key unless the key is already present.
//
// It reports false when value is nil (including typed nils) or when key is
// held by another entry, live or expired but not yet reclaimed.
func (c *TTLCache) Put(key string, value any) bool {
	start := time.Now()
	if cachecore.IsAbsent(value) {
		c.observe(cachecore.OpPut, key, false, nil, start)
		return false
	}

	e := entry{value: value, expiresAt: c.clock.Now().Add(c.ttl)}

	c.mu.Lock()
	_, exists := c.entries[key]
	if !exists {
		c.entries[key] = e
	}
	c.mu.Unlock()

	c.observe(cachecore.OpPut, key, !exists, nil, start)
	return !exists
}

// Get returns the value stored under key while it is live.
//
// An expired entry found here is removed before reporting a miss. A hit is a
// snapshot: the key may be reclaimed right after Get returns.
func (c *TTLCache) Get(key string) (any, bool) {
	start := time.Now()
	now := c.clock.Now()

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.observe(cachecore.OpGet, key, false, nil, start)
		return nil, false
	}
	if !e.expired(now) {
		c.observe(cachecore.OpGet, key, true, nil, start)
		return e.value, true
	}

	evicted := c.evictIfExpired(key, now)
	if evicted {
		c.observe(cachecore.OpEvict, key, true, nil, start)
	}
	c.observe(cachecore.OpGet, key, false, nil, start)
	return nil, false
}

// evictIfExpired re-checks under the write lock because the key may have been
// swept or re-inserted since it was read.
func (c *TTLCache) evictIfExpired(key string, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.expired(now) {
		return false
	}
	delete(c.entries, key)
	return true
}

// Len returns the number of stored entries.
//
// Note: Len includes entries that have expired but haven't been reclaimed yet.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the background sweeper. It does not wait for the sweeper to
// exit; use Done for that.
//
// Close is safe to call multiple times. The cache stays usable afterwards,
// but expired entries are only removed when read.
func (c *TTLCache) Close() error {
	start := time.Now()
	c.cancel()
	c.observe(cachecore.OpClose, "", false, nil, start)
	return nil
}

// Done is closed once the sweeper goroutine has exited.
func (c *TTLCache) Done() <-chan struct{} {
	return c.done
}
