package ttlcache

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goforj/ttlcache/cachecore"
)

// ErrSweepFault wraps any failure raised while running one sweep pass.
var ErrSweepFault = errors.New("ttlcache: sweep failed")

// runSweeper reclaims expired entries every sweepInterval until the cache is
// closed. A failed pass is logged and the loop keeps going.
func (c *TTLCache) runSweeper() {
	defer close(c.done)

	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			c.logger.Debug("ttlcache sweeper stopped")
			return
		case <-ticker.C:
			if c.ctx.Err() != nil {
				c.logger.Debug("ttlcache sweeper stopped")
				return
			}
			removed, err := c.sweepOnce()
			if err != nil {
				c.logger.Warn("ttlcache sweep failed", zap.Error(err))
				continue
			}
			if removed > 0 {
				c.logger.Debug("ttlcache sweep removed expired entries",
					zap.Int("removed", removed),
					zap.Int("remaining", c.Len()),
				)
			}
		}
	}
}

// sweepOnce is the fault boundary of the sweeper: nothing raised by a pass,
// or by observers of it, escapes as a panic.
func (c *TTLCache) sweepOnce() (removed int, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSweepFault, r)
			c.observeSweepFault(err, start)
		}
	}()

	removed = c.removeExpired()
	c.observe(cachecore.OpSweep, "", removed > 0, nil, start)
	return removed, nil
}

// observeSweepFault reports a fault without letting a second panic escape.
func (c *TTLCache) observeSweepFault(err error, start time.Time) {
	defer func() { _ = recover() }()
	c.observe(cachecore.OpSweep, "", false, err, start)
}

// removeExpired deletes every entry that is expired now. This is a full O(n)
// scan under the write lock.
func (c *TTLCache) removeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	var expired []string
	for key, e := range c.entries {
		if e.expired(now) {
			expired = append(expired, key)
		}
	}
	for _, key := range expired {
		delete(c.entries, key)
	}
	return len(expired)
}
