// Package none implements a random-expiration policy: it tracks
// resident keys without any usage ordering and names a
// pseudo-randomly chosen one as the eviction victim.
package none

import (
	"math/rand"

	"github.com/akashihi/stlcache/policy"
)

// Policy is the "no particular order" eviction policy. It is always
// able to name a victim as long as it holds at least one key.
type Policy[K comparable] struct {
	keys []K
	idx  map[K]int
	rng  *rand.Rand
}

// New constructs an empty Policy.
func New[K comparable]() *Policy[K] {
	return &Policy[K]{
		idx: make(map[K]int),
		rng: rand.New(rand.NewSource(1)),
	}
}

func (p *Policy[K]) Insert(k K) error {
	if _, ok := p.idx[k]; ok {
		return nil
	}
	p.idx[k] = len(p.keys)
	p.keys = append(p.keys, k)
	return nil
}

func (p *Policy[K]) Remove(k K) {
	i, ok := p.idx[k]
	if !ok {
		return
	}
	last := len(p.keys) - 1
	moved := p.keys[last]
	p.keys[i] = moved
	p.idx[moved] = i
	p.keys = p.keys[:last]
	delete(p.idx, k)
}

// Touch is a no-op: the none policy never weighs usage.
func (p *Policy[K]) Touch(K) {}

func (p *Policy[K]) Clear() {
	p.keys = nil
	p.idx = make(map[K]int)
}

func (p *Policy[K]) Swap(other policy.Policy[K]) error {
	o, ok := other.(*Policy[K])
	if !ok {
		return policy.ErrInvalidPolicy
	}
	p.keys, o.keys = o.keys, p.keys
	p.idx, o.idx = o.idx, p.idx
	return nil
}

func (p *Policy[K]) Victim() policy.Victim[K] {
	if len(p.keys) == 0 {
		return policy.EmptyVictim[K]()
	}
	return policy.NewVictim(p.keys[p.rng.Intn(len(p.keys))])
}
