// Package cachetest provides a reusable behavioral contract suite for
// cachecore.Cache implementations.
//
// The suite needs control over time, so callers pass an Advance function
// that moves the clock seen by the cache under test.
//
// Example pattern:
//
//	func TestFakeContract(t *testing.T) {
//		fake := cachefake.New(time.Second)
//		cachetest.RunCacheContract(t, fake, cachetest.Options{
//			TTL:     time.Second,
//			Advance: fake.Advance,
//		})
//	}
package cachetest
