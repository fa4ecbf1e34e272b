package ttlcache

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix         = "TTLCACHE_"
	defaultTTLSeconds = 10
)

// Config is the environment-driven configuration of the shared instance.
//
//	TTLCACHE_DEFAULT_TTL_SECONDS     lifetime of every entry (default 10)
//	TTLCACHE_SWEEP_INTERVAL_SECONDS  reclamation period (default: the TTL)
//	TTLCACHE_LOG_LEVEL               zap level; empty disables logging
type Config struct {
	DefaultTTLSeconds int `env:"DEFAULT_TTL_SECONDS" envDefault:"10"`

	// SweepIntervalSeconds <= 0 means "same as the TTL".
	SweepIntervalSeconds int `env:"SWEEP_INTERVAL_SECONDS"`

	LogLevel string `env:"LOG_LEVEL"`
}

// LoadConfig reads Config from TTLCACHE_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}.withDefaults(), fmt.Errorf("ttlcache: load config: %w", err)
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	if c.DefaultTTLSeconds <= 0 {
		c.DefaultTTLSeconds = defaultTTLSeconds
	}
	return c
}

// DefaultTTL returns the entry lifetime as a duration.
func (c Config) DefaultTTL() time.Duration {
	return time.Duration(c.withDefaults().DefaultTTLSeconds) * time.Second
}

// SweepInterval returns the reclamation period as a duration.
func (c Config) SweepInterval() time.Duration {
	if c.SweepIntervalSeconds <= 0 {
		return c.DefaultTTL()
	}
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// Logger builds the logger selected by LogLevel.
func (c Config) Logger() (*zap.Logger, error) {
	if c.LogLevel == "" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zap.NewNop(), fmt.Errorf("ttlcache: log level %q: %w", c.LogLevel, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
