// Package mru implements the "Most Recently Used" eviction policy by
// reusing LRU's recency tracking and picking the opposite end of the
// list as the victim.
package mru

import (
	"github.com/akashihi/stlcache/policy"
	"github.com/akashihi/stlcache/policy/lru"
)

// Policy names the most recently touched entry as the eviction
// victim instead of the least recently touched one.
type Policy[K comparable] struct {
	*lru.Policy[K]
}

// New constructs an empty Policy.
func New[K comparable]() *Policy[K] {
	return &Policy[K]{Policy: lru.New[K]()}
}

func (p *Policy[K]) Victim() policy.Victim[K] {
	front := p.Entries().Front()
	if front == nil {
		return policy.EmptyVictim[K]()
	}
	return policy.NewVictim(front.Value.(K))
}

func (p *Policy[K]) Swap(other policy.Policy[K]) error {
	o, ok := other.(*Policy[K])
	if !ok {
		return policy.ErrInvalidPolicy
	}
	return p.Policy.Swap(o.Policy)
}
