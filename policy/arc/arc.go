// Package arc implements a simplified Adaptive Replacement Cache
// (ARC) policy: recently-used-once entries live in T1 (LRU-ordered),
// reused entries live in T2 (LFU-ordered), and ghost lists B1/B2
// remember recently evicted keys — without their values — from each,
// nudging an adaptive split point p toward whichever list has been
// proving more useful to keep.
package arc

import (
	"github.com/akashihi/stlcache/policy"
	"github.com/akashihi/stlcache/policy/lfu"
	"github.com/akashihi/stlcache/policy/lru"
)

// Policy is the four-list ARC automaton: T1/T2 hold resident keys,
// B1/B2 hold ghost (value-less) history of recently evicted keys.
//
// Victim selection is simplified relative to the original ARC paper's
// size-vs-target-p comparison: it compares the resident T1/T2 sizes
// directly, ties going to T2. Ghost lists B1/B2 are each trimmed to
// size/2 rather than the paper's dynamic target.
type Policy[K comparable] struct {
	t1, b1 *lru.Policy[K]
	t2, b2 *lfu.Policy[K]

	t1Entries, b1Entries map[K]struct{}
	t2Entries, b2Entries map[K]struct{}

	size int // capacity bound; each ghost list is trimmed to size/2
	p    int // adaptive target size for T1
}

// New constructs an empty Policy for a cache of capacity size. Each
// ghost list keeps at most size/2 keys; resident keys are not bounded
// by the policy itself.
func New[K comparable](size int) *Policy[K] {
	return &Policy[K]{
		t1: lru.New[K](), b1: lru.New[K](),
		t2: lfu.New[K](nil), b2: lfu.New[K](nil),
		t1Entries: make(map[K]struct{}),
		b1Entries: make(map[K]struct{}),
		t2Entries: make(map[K]struct{}),
		b2Entries: make(map[K]struct{}),
		size:      size,
	}
}

func (p *Policy[K]) Insert(k K) error {
	if _, ok := p.b1Entries[k]; ok {
		delete(p.b1Entries, k)
		p.b1.Remove(k)
		if p.p < p.size {
			p.p++
		}
		p.t1.Insert(k)
		p.t1Entries[k] = struct{}{}
		return nil
	}
	if _, ok := p.b2Entries[k]; ok {
		delete(p.b2Entries, k)
		p.b2.Remove(k)
		if p.p > 0 {
			p.p--
		}
		p.t2.Insert(k)
		p.t2Entries[k] = struct{}{}
		return nil
	}
	p.t1.Insert(k)
	p.t1Entries[k] = struct{}{}
	return nil
}

func (p *Policy[K]) Touch(k K) {
	if _, ok := p.t1Entries[k]; ok {
		delete(p.t1Entries, k)
		p.t1.Remove(k)
		p.t2.Insert(k)
		p.t2Entries[k] = struct{}{}
		return
	}
	if _, ok := p.t2Entries[k]; ok {
		p.t2.Touch(k)
	}
	// keys known only to a ghost list, or unknown altogether, are
	// ignored: touch is exception-safe on non-resident keys.
}

func (p *Policy[K]) Remove(k K) {
	switch {
	case p.has(p.t1Entries, k):
		delete(p.t1Entries, k)
		p.t1.Remove(k)
		p.ghostT1(k)
	case p.has(p.t2Entries, k):
		delete(p.t2Entries, k)
		p.t2.Remove(k)
		p.ghostT2(k)
	case p.has(p.b1Entries, k):
		delete(p.b1Entries, k)
		p.b1.Remove(k)
	case p.has(p.b2Entries, k):
		delete(p.b2Entries, k)
		p.b2.Remove(k)
	}
}

func (p *Policy[K]) has(set map[K]struct{}, k K) bool {
	_, ok := set[k]
	return ok
}

func (p *Policy[K]) ghostT1(k K) {
	_ = p.b1.Insert(k)
	p.b1Entries[k] = struct{}{}
	for len(p.b1Entries) > p.size/2 {
		v := p.b1.Victim()
		if !v.Present() {
			break
		}
		p.b1.Remove(v.Key())
		delete(p.b1Entries, v.Key())
	}
}

func (p *Policy[K]) ghostT2(k K) {
	_ = p.b2.Insert(k)
	p.b2Entries[k] = struct{}{}
	for len(p.b2Entries) > p.size/2 {
		v := p.b2.Victim()
		if !v.Present() {
			break
		}
		p.b2.Remove(v.Key())
		delete(p.b2Entries, v.Key())
	}
}

func (p *Policy[K]) Clear() {
	p.t1.Clear()
	p.b1.Clear()
	p.t2.Clear()
	p.b2.Clear()
	p.t1Entries = make(map[K]struct{})
	p.b1Entries = make(map[K]struct{})
	p.t2Entries = make(map[K]struct{})
	p.b2Entries = make(map[K]struct{})
	p.p = 0
}

func (p *Policy[K]) Swap(other policy.Policy[K]) error {
	o, ok := other.(*Policy[K])
	if !ok {
		return policy.ErrInvalidPolicy
	}
	if err := p.t1.Swap(o.t1); err != nil {
		return err
	}
	if err := p.b1.Swap(o.b1); err != nil {
		return err
	}
	if err := p.t2.Swap(o.t2); err != nil {
		return err
	}
	if err := p.b2.Swap(o.b2); err != nil {
		return err
	}
	p.t1Entries, o.t1Entries = o.t1Entries, p.t1Entries
	p.b1Entries, o.b1Entries = o.b1Entries, p.b1Entries
	p.t2Entries, o.t2Entries = o.t2Entries, p.t2Entries
	p.b2Entries, o.b2Entries = o.b2Entries, p.b2Entries
	// The original implementation's target-size swap used a
	// self-assignment (old = self; self = other; self = old) that
	// never wrote into the other policy. Swapped directly here.
	p.size, o.size = o.size, p.size
	p.p, o.p = o.p, p.p
	return nil
}

func (p *Policy[K]) Victim() policy.Victim[K] {
	if len(p.t1Entries) > len(p.t2Entries) {
		if v := p.t1.Victim(); v.Present() {
			return v
		}
		return p.t2.Victim()
	}
	if v := p.t2.Victim(); v.Present() {
		return v
	}
	return p.t1.Victim()
}
