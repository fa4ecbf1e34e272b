package ttlcache

import (
	"time"

	"go.uber.org/zap"
)

type settings struct {
	ttl           time.Duration
	sweepInterval time.Duration
	clock         Clock
	logger        *zap.Logger
	observer      Observer
}

func (s settings) withDefaults() settings {
	if s.ttl <= 0 {
		s.ttl = defaultTTLSeconds * time.Second
	}
	if s.sweepInterval <= 0 {
		s.sweepInterval = s.ttl
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Option mutates the settings used to build the shared instance.
type Option func(settings) settings

// WithDefaultTTL overrides the lifetime of every entry.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(s settings) settings {
		s.ttl = ttl
		return s
	}
}

// WithSweepInterval overrides the period of the background sweep.
func WithSweepInterval(interval time.Duration) Option {
	return func(s settings) settings {
		s.sweepInterval = interval
		return s
	}
}

// WithClock replaces the time source used for expiration.
func WithClock(clock Clock) Option {
	return func(s settings) settings {
		s.clock = clock
		return s
	}
}

// WithLogger sets the logger used by the sweeper.
func WithLogger(logger *zap.Logger) Option {
	return func(s settings) settings {
		s.logger = logger
		return s
	}
}

// WithObserver attaches an observer to receive operation events.
func WithObserver(o Observer) Option {
	return func(s settings) settings {
		s.observer = o
		return s
	}
}
