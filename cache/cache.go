package cache

import (
	"fmt"

	"github.com/akashihi/stlcache/policy"
	"github.com/akashihi/stlcache/storage"
)

// Cache is a bounded, single-owner key/value store backed by a
// pluggable eviction Policy and Storage backend.
//
// Cache is not safe for concurrent use. Callers sharing a Cache
// across goroutines must provide their own external synchronization;
// see the package-level example in doc.go.
type Cache[K comparable, V any] struct {
	storage storage.Storage[K, V]
	policy  policy.Policy[K]
	metrics Metrics
	maxSize int
	size    int
}

// New constructs a Cache from opt. New panics if opt.Policy is nil or
// opt.MaxSize is not positive.
func New[K comparable, V any](opt Options[K, V]) *Cache[K, V] {
	if opt.Policy == nil {
		panic("cache: Options.Policy must not be nil")
	}
	if opt.MaxSize <= 0 {
		panic("cache: Options.MaxSize must be > 0")
	}

	m := opt.Metrics
	if m == nil {
		m = NoopMetrics{}
	}

	var st storage.Storage[K, V]
	if opt.Less != nil {
		st = storage.NewOrdered[K, V](opt.Less)
	} else {
		st = storage.NewHashed[K, V]()
	}

	return &Cache[K, V]{
		storage: st,
		policy:  opt.Policy,
		metrics: m,
		maxSize: opt.MaxSize,
	}
}

// Insert adds k→v. It fails with ErrInvalidKey if k is already
// present. If the cache is full, it evicts entries — consulting the
// policy for a victim each time — until there is room, failing with
// ErrCacheFull if the policy cannot name one.
func (c *Cache[K, V]) Insert(k K, v V) error {
	if c.storage.Count(k) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidKey, k)
	}
	for c.size >= c.maxSize {
		victim := c.policy.Victim()
		if !victim.Present() {
			return ErrCacheFull
		}
		c.evict(victim.Key())
	}
	if err := c.policy.Insert(k); err != nil {
		return err
	}
	c.storage.Insert(k, v)
	c.size++
	c.metrics.Size(c.size)
	return nil
}

func (c *Cache[K, V]) evict(k K) {
	if c.storage.Erase(k) {
		c.size--
	}
	c.policy.Remove(k)
	c.metrics.Evict()
}

// Check reports whether k is present. It touches the policy exactly
// as Fetch would, even on a miss — matching stlcache's check(), which
// deliberately updates usage bookkeeping regardless of outcome.
func (c *Cache[K, V]) Check(k K) bool {
	c.policy.Touch(k)
	return c.storage.Count(k) > 0
}

// Fetch returns the value for k, touching the policy regardless of
// hit or miss (see Check). It returns ErrInvalidKey if k is absent.
func (c *Cache[K, V]) Fetch(k K) (V, error) {
	c.policy.Touch(k)
	v, ok := c.storage.Find(k)
	if !ok {
		c.metrics.Miss()
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrInvalidKey, k)
	}
	c.metrics.Hit()
	return v, nil
}

// Touch updates k's usage bookkeeping without reading or requiring
// its value. It is a no-op, exception-safe on a missing key.
func (c *Cache[K, V]) Touch(k K) {
	c.policy.Touch(k)
}

// Erase removes k if present, reporting whether it was.
func (c *Cache[K, V]) Erase(k K) bool {
	if c.storage.Count(k) == 0 {
		return false
	}
	c.storage.Erase(k)
	c.policy.Remove(k)
	c.size--
	c.metrics.Size(c.size)
	return true
}

// Clear removes every entry.
func (c *Cache[K, V]) Clear() {
	c.storage.Clear()
	c.policy.Clear()
	c.size = 0
	c.metrics.Size(0)
}

// Count reports 1 if k is present and 0 otherwise, without touching
// the policy — unlike Check, Count has no side effects.
func (c *Cache[K, V]) Count(k K) int {
	return c.storage.Count(k)
}

// Size returns the number of resident entries.
func (c *Cache[K, V]) Size() int { return c.size }

// MaxSize returns the configured capacity.
func (c *Cache[K, V]) MaxSize() int { return c.maxSize }

// Empty reports whether the cache holds no entries.
func (c *Cache[K, V]) Empty() bool { return c.size == 0 }

// Swap exchanges the entire contents — storage, policy state, and
// capacity — of c and other. Both caches must use storage and policy
// implementations of the same concrete type, or Swap returns
// ErrInvalidPolicy/ErrInvalidStorage without modifying either cache.
func (c *Cache[K, V]) Swap(other *Cache[K, V]) error {
	if err := c.storage.Swap(other.storage); err != nil {
		return err
	}
	if err := c.policy.Swap(other.policy); err != nil {
		_ = c.storage.Swap(other.storage) // swap storage back
		return err
	}
	c.maxSize, other.maxSize = other.maxSize, c.maxSize
	c.size, other.size = other.size, c.size
	return nil
}

// Load returns the value for k. On a hit, it behaves like Fetch. On a
// miss, it calls fetch and, if fetch succeeds, inserts the result
// before returning it.
func (c *Cache[K, V]) Load(k K, fetch func() (V, error)) (V, error) {
	if v, err := c.Fetch(k); err == nil {
		return v, nil
	}
	v, err := fetch()
	if err != nil {
		var zero V
		return zero, err
	}
	if err := c.Insert(k, v); err != nil {
		return v, err
	}
	return v, nil
}
