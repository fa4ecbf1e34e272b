package cachecore

// Reader is the read side of the shared cache contract.
type Reader interface {
	Get(key string) (any, bool)
}

// Writer is the write side of the shared cache contract.
type Writer interface {
	Put(key string, value any) bool
}

// Cache is the shared app cache contract.
// Applications should depend on it rather than on the singleton directly.
type Cache interface {
	Reader
	Writer
	Len() int
	Close() error
}
