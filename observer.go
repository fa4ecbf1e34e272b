package ttlcache

import (
	"time"

	"github.com/goforj/ttlcache/cachecore"
)

// Observer receives events for cache operations.
// It is called after each operation completes.
type Observer interface {
	OnCacheOp(op cachecore.Op, key string, hit bool, err error, dur time.Duration)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(op cachecore.Op, key string, hit bool, err error, dur time.Duration)

// OnCacheOp implements Observer.
func (f ObserverFunc) OnCacheOp(op cachecore.Op, key string, hit bool, err error, dur time.Duration) {
	if f == nil {
		return
	}
	f(op, key, hit, err, dur)
}

func (c *TTLCache) observe(op cachecore.Op, key string, hit bool, err error, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.OnCacheOp(op, key, hit, err, time.Since(start))
}
