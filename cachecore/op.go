package cachecore

// Op identifies a cache operation reported to observers and fakes.
type Op string

const (
	OpPut   Op = "put"
	OpGet   Op = "get"
	OpEvict Op = "evict"
	OpSweep Op = "sweep"
	OpClose Op = "close"
)
