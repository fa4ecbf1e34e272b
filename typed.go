package ttlcache

import (
	"github.com/samber/mo"

	"github.com/goforj/ttlcache/cachecore"
)

// GetAs returns the value under key as T.
// A stored value of another type is reported as a miss.
// @group Typed Reads
//
// Example: typed read
//
//	c := ttlcache.Instance()
//	_ = c.Put("user:42:name", "Ada")
//	name, ok := ttlcache.GetAs[string](c, "user:42:name")
//	fmt.Println(ok, name) // true Ada
func GetAs[T any](c cachecore.Reader, key string) (T, bool) {
	var zero T
	value, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// GetOption is GetAs returning an option instead of a found flag.
// @group Typed Reads
//
// Example: option with fallback
//
//	retries := ttlcache.GetOption[int](ttlcache.Instance(), "retries").OrElse(3)
//	fmt.Println(retries) // 3
func GetOption[T any](c cachecore.Reader, key string) mo.Option[T] {
	value, ok := GetAs[T](c, key)
	if !ok {
		return mo.None[T]()
	}
	return mo.Some(value)
}
