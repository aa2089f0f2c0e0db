// Package lfuagingstar combines LFU-Aging's time-based decay with
// LFU*'s restriction of eviction to entries at exactly reference
// count one. The original C++ implementation built this through
// virtual multiple inheritance of both policies; here it is plain
// composition over lfuaging.Policy.
package lfuagingstar

import (
	"time"

	"github.com/akashihi/stlcache/policy"
	"github.com/akashihi/stlcache/policy/lfuaging"
)

// Policy is LFU-Aging with victim selection narrowed to the
// reference-count-one bucket, as LFU* does.
type Policy[K comparable] struct {
	*lfuaging.Policy[K]
}

// New constructs an empty Policy.
func New[K comparable](age time.Duration, clock lfuaging.Clock, less func(a, b K) bool) *Policy[K] {
	return &Policy[K]{Policy: lfuaging.New[K](age, clock, less)}
}

func (p *Policy[K]) Victim() policy.Victim[K] {
	p.Expire()
	return p.VictimAt(1)
}

func (p *Policy[K]) Swap(other policy.Policy[K]) error {
	o, ok := other.(*Policy[K])
	if !ok {
		return policy.ErrInvalidPolicy
	}
	return p.Policy.Swap(o.Policy)
}
