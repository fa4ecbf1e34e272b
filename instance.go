package ttlcache

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrAlreadyInitialized is returned by Configure once the shared instance exists.
var ErrAlreadyInitialized = errors.New("ttlcache: shared instance already initialized")

var (
	instance     *TTLCache
	instanceOnce sync.Once

	pendingMu   sync.Mutex
	pending     []Option
	initialized bool
)

// Configure registers options applied when the shared instance is built.
// Options override values loaded from the environment.
//
// It must be called before the first Instance call; afterwards it returns
// ErrAlreadyInitialized and changes nothing.
// @group Singleton
//
// Example: short TTL for a batch job
//
//	_ = ttlcache.Configure(ttlcache.WithDefaultTTL(30 * time.Second))
//	c := ttlcache.Instance()
//	fmt.Println(c.TTL()) // 30s
func Configure(opts ...Option) error {
	pendingMu.Lock()
	defer pendingMu.Unlock()
	if initialized {
		return ErrAlreadyInitialized
	}
	pending = append(pending, opts...)
	return nil
}

// Instance returns the process-wide cache, building it and starting its
// sweeper on first use.
// @group Singleton
//
// Example: share one cache
//
//	c := ttlcache.Instance()
//	ok := c.Put("user:42", "Ada")
//	v, found := ttlcache.Instance().Get("user:42")
//	fmt.Println(ok, found, v) // true true Ada
func Instance() *TTLCache {
	instanceOnce.Do(func() {
		pendingMu.Lock()
		initialized = true
		opts := pending
		pending = nil
		pendingMu.Unlock()

		instance = buildInstance(opts)
	})
	return instance
}

func buildInstance(opts []Option) *TTLCache {
	cfg, cfgErr := LoadConfig()
	logger, logErr := cfg.Logger()

	base := []Option{
		WithDefaultTTL(cfg.DefaultTTL()),
		WithLogger(logger),
	}
	// Without an explicit interval the sweep follows the final TTL,
	// including one set through Configure.
	if cfg.SweepIntervalSeconds > 0 {
		base = append(base, WithSweepInterval(cfg.SweepInterval()))
	}
	c := newTTLCache(append(base, opts...)...)

	if cfgErr != nil {
		c.logger.Warn("ttlcache config invalid, using defaults", zap.Error(cfgErr))
	}
	if logErr != nil {
		c.logger.Warn("ttlcache logger config invalid, logging disabled", zap.Error(logErr))
	}
	c.logger.Info("ttlcache instance created",
		zap.Duration("ttl", c.ttl),
		zap.Duration("sweep_interval", c.sweepInterval),
	)
	return c
}
