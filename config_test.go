package ttlcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := (Config{}).withDefaults()

	require.Equal(t, defaultTTLSeconds, cfg.DefaultTTLSeconds)
	require.Zero(t, cfg.SweepIntervalSeconds, "unset interval stays unset so it can follow the TTL")
	require.Equal(t, 10*time.Second, cfg.DefaultTTL())
	require.Equal(t, 10*time.Second, cfg.SweepInterval())
}

func TestConfigWithDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := (Config{DefaultTTLSeconds: 3, SweepIntervalSeconds: 7, LogLevel: "warn"}).withDefaults()

	require.Equal(t, 3*time.Second, cfg.DefaultTTL())
	require.Equal(t, 7*time.Second, cfg.SweepInterval())
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TTLCACHE_DEFAULT_TTL_SECONDS", "3")
	t.Setenv("TTLCACHE_SWEEP_INTERVAL_SECONDS", "1")
	t.Setenv("TTLCACHE_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, cfg.DefaultTTL())
	require.Equal(t, time.Second, cfg.SweepInterval())
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigSweepFollowsTTL(t *testing.T) {
	t.Setenv("TTLCACHE_DEFAULT_TTL_SECONDS", "4")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 4*time.Second, cfg.SweepInterval())
}

func TestLoadConfigInvalidFallsBackToDefaults(t *testing.T) {
	t.Setenv("TTLCACHE_DEFAULT_TTL_SECONDS", "soon")

	cfg, err := LoadConfig()
	require.Error(t, err)
	require.Equal(t, 10*time.Second, cfg.DefaultTTL())
}

func TestConfigLogger(t *testing.T) {
	logger, err := (Config{}).Logger()
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger, err = (Config{LogLevel: "debug"}).Logger()
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger, err = (Config{LogLevel: "loud"}).Logger()
	require.Error(t, err)
	require.NotNil(t, logger)
}

func TestBuildInstanceAppliesEnvAndOptions(t *testing.T) {
	t.Setenv("TTLCACHE_DEFAULT_TTL_SECONDS", "5")

	c := buildInstance([]Option{WithSweepInterval(time.Hour)})
	t.Cleanup(func() { _ = c.Close() })

	require.Equal(t, 5*time.Second, c.TTL())
	require.Equal(t, time.Hour, c.sweepInterval)
}

func TestBuildInstanceSweepFollowsConfiguredTTL(t *testing.T) {
	c := buildInstance([]Option{WithDefaultTTL(30 * time.Second)})
	t.Cleanup(func() { _ = c.Close() })

	require.Equal(t, 30*time.Second, c.TTL())
	require.Equal(t, c.ttl, c.sweepInterval)
}

func TestBuildInstanceKeepsExplicitEnvSweepInterval(t *testing.T) {
	t.Setenv("TTLCACHE_SWEEP_INTERVAL_SECONDS", "2")

	c := buildInstance([]Option{WithDefaultTTL(30 * time.Second)})
	t.Cleanup(func() { _ = c.Close() })

	require.Equal(t, 30*time.Second, c.TTL())
	require.Equal(t, 2*time.Second, c.sweepInterval)
}
