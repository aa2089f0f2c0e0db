// Package cache provides a generic, bounded key/value cache with a
// pluggable eviction policy and storage backend.
//
// Design
//
//   - Capacity and policy are fixed at construction via Options; there
//     is no resizing after New. Only Swap changes them, by exchanging
//     them with another Cache.
//
//   - Storage: a hash-table-backed storage.Hashed is used by default.
//     Supplying Options.Less switches to the comparator-ordered
//     storage.Ordered instead.
//
//   - Policy: any implementation of policy.Policy decides which
//     resident key is evicted next. The policy subpackages (none, lru,
//     mru, lfu, lfustar, lfuaging, lfuagingstar, arc) cover the usual
//     cache-replacement strategies; custom ones can be supplied too.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     NoopMetrics is used by default; see metrics/prom for a
//     Prometheus-backed adapter.
//
// Basic usage
//
//	c := cache.New[string, string](cache.Options[string, string]{
//	    MaxSize: 128,
//	    Policy:  lru.New[string](),
//	})
//	_ = c.Insert("a", "1")
//	v, err := c.Fetch("a")
//
// Thread-safety
//
// Cache is single-owner: no method performs any locking. A Cache
// shared across goroutines must be protected by the caller, typically
// with a sync.Mutex wrapped around every call:
//
//	var mu sync.Mutex
//	c := cache.New[string, int](cache.Options[string, int]{MaxSize: 64, Policy: lru.New[string]()})
//
//	mu.Lock()
//	_ = c.Insert("k", 1)
//	mu.Unlock()
//
// See the package's sync_test.go for a worked example using
// golang.org/x/sync/errgroup to drive concurrent callers through such
// a caller-owned mutex.
package cache
