// Package lfuaging implements LFU with time-based aging: reference
// counts earned long ago stop protecting an entry from eviction
// forever, because a victim lookup first decays any entry that has
// gone untouched for longer than Age.
package lfuaging

import (
	"time"

	"github.com/akashihi/stlcache/policy"
	"github.com/akashihi/stlcache/policy/lfu"
)

// Clock abstracts the time source so aging can be tested
// deterministically instead of sleeping in real time.
type Clock interface{ Now() time.Time }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Policy decays a resident entry's reference count back toward 1
// once it has gone Age without being touched.
type Policy[K comparable] struct {
	*lfu.Policy[K]
	age       time.Duration
	clock     Clock
	lastTouch map[K]time.Time
}

// New constructs an empty Policy. age of zero disables aging
// entirely (the policy behaves as plain LFU). A nil clock defaults
// to the wall clock.
func New[K comparable](age time.Duration, clock Clock, less func(a, b K) bool) *Policy[K] {
	if clock == nil {
		clock = realClock{}
	}
	return &Policy[K]{
		Policy:    lfu.New[K](less),
		age:       age,
		clock:     clock,
		lastTouch: make(map[K]time.Time),
	}
}

func (p *Policy[K]) Insert(k K) error {
	if err := p.Policy.Insert(k); err != nil {
		return err
	}
	p.lastTouch[k] = p.clock.Now()
	return nil
}

func (p *Policy[K]) Touch(k K) {
	p.Policy.Touch(k)
	if p.Policy.Count(k) > 0 {
		p.lastTouch[k] = p.clock.Now()
	}
}

func (p *Policy[K]) Remove(k K) {
	p.Policy.Remove(k)
	delete(p.lastTouch, k)
}

func (p *Policy[K]) Clear() {
	p.Policy.Clear()
	p.lastTouch = make(map[K]time.Time)
}

// Expire decays every entry that has gone Age without a touch. It is
// called automatically before selecting a victim, but is exported so
// a composed policy (LFU*-Aging) can trigger the same pass before
// applying its own victim restriction.
func (p *Policy[K]) Expire() {
	if p.age <= 0 {
		return
	}
	now := p.clock.Now()
	for _, k := range p.Policy.Keys() {
		last, ok := p.lastTouch[k]
		if !ok {
			continue
		}
		if now.Sub(last) >= p.age {
			p.Policy.Decay(k)
			p.lastTouch[k] = now
		}
	}
}

func (p *Policy[K]) Victim() policy.Victim[K] {
	p.Expire()
	return p.Policy.Victim()
}

func (p *Policy[K]) Swap(other policy.Policy[K]) error {
	o, ok := other.(*Policy[K])
	if !ok {
		return policy.ErrInvalidPolicy
	}
	if err := p.Policy.Swap(o.Policy); err != nil {
		return err
	}
	// The original implementation swapped the aging timestamp map
	// (and Age) through a self-assignment (old = self; self = other;
	// self = old) that never wrote anything into the other policy.
	// Swapped directly here instead.
	p.lastTouch, o.lastTouch = o.lastTouch, p.lastTouch
	p.age, o.age = o.age, p.age
	return nil
}
