package ttlcache

import "time"

type entry struct {
	value     any
	expiresAt time.Time
}

// expired reports whether the entry is no longer live at now.
// expiresAt is an exclusive upper bound.
func (e entry) expired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}
