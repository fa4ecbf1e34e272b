// Package ttlcache provides a process-wide, in-memory key/value cache whose
// entries expire a fixed duration after insertion.
//
// The cache is reached through Instance. Put never overwrites: a key stays
// taken until its entry is reclaimed, either by a Get that finds it expired or
// by the background sweeper, which scans the whole store once per interval.
// Close stops the sweeper; Put and Get keep working.
package ttlcache
