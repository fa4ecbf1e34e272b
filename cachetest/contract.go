package cachetest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goforj/ttlcache/cachecore"
)

// Options configures shared cache contract checks.
type Options struct {
	// CaseName is used to namespace keys. Defaults to t.Name().
	CaseName string
	// TTL is the lifetime the cache under test applies to every entry.
	TTL time.Duration
	// Advance moves the clock observed by the cache under test.
	Advance func(d time.Duration)
}

// RunCacheContract runs the put/get/expiry contract against c.
func RunCacheContract(t *testing.T, c cachecore.Cache, opts Options) {
	t.Helper()
	require.Positive(t, opts.TTL, "contract needs the cache TTL")
	require.NotNil(t, opts.Advance, "contract needs a clock to advance")

	caseName := opts.CaseName
	if caseName == "" {
		caseName = t.Name()
	}
	key := func(s string) string {
		return sanitize(caseName) + ":" + s
	}

	// Absent values are rejected and leave no entry behind.
	var nilPtr *int
	require.False(t, c.Put(key("nil"), nil))
	require.False(t, c.Put(key("nil"), nilPtr))
	_, ok := c.Get(key("nil"))
	require.False(t, ok)

	// Put never overwrites a live entry.
	require.True(t, c.Put(key("alpha"), "v1"))
	require.False(t, c.Put(key("alpha"), "v2"))
	value, ok := c.Get(key("alpha"))
	require.True(t, ok)
	require.Equal(t, "v1", value)

	// Live up to, but excluding, insertion time plus TTL.
	require.True(t, c.Put(key("ttl"), 42))
	opts.Advance(opts.TTL - time.Nanosecond)
	value, ok = c.Get(key("ttl"))
	require.True(t, ok, "entry must be live just before its TTL elapses")
	require.Equal(t, 42, value)

	opts.Advance(time.Nanosecond)
	_, ok = c.Get(key("ttl"))
	require.False(t, ok, "entry must be expired once its TTL elapsed")

	// An expired key is free again once reclaimed.
	_, ok = c.Get(key("alpha"))
	require.False(t, ok)
	require.True(t, c.Put(key("alpha"), "v3"))
	value, ok = c.Get(key("alpha"))
	require.True(t, ok)
	require.Equal(t, "v3", value)

	// Misses on unknown keys are not errors.
	_, ok = c.Get(key("missing"))
	require.False(t, ok)
}

func sanitize(name string) string {
	return strings.NewReplacer("/", "_", " ", "_").Replace(name)
}
