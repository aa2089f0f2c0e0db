// Package lfustar implements LFU*, a variant proposed by M. Arlitt
// that restricts eviction to entries with a reference count of
// exactly one, leaving anything that has been reused at least once
// alone.
package lfustar

import (
	"github.com/akashihi/stlcache/policy"
	"github.com/akashihi/stlcache/policy/lfu"
)

// Policy reuses LFU's bucketed bookkeeping but only ever names a
// victim from the reference-count-one bucket.
type Policy[K comparable] struct {
	*lfu.Policy[K]
}

// New constructs an empty Policy. less breaks ties within the
// count-one bucket; nil falls back to insertion order.
func New[K comparable](less func(a, b K) bool) *Policy[K] {
	return &Policy[K]{Policy: lfu.New[K](less)}
}

func (p *Policy[K]) Victim() policy.Victim[K] {
	return p.VictimAt(1)
}

func (p *Policy[K]) Swap(other policy.Policy[K]) error {
	o, ok := other.(*Policy[K])
	if !ok {
		return policy.ErrInvalidPolicy
	}
	return p.Policy.Swap(o.Policy)
}
