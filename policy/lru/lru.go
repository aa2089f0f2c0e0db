// Package lru implements the "Least Recently Used" eviction policy.
package lru

import (
	"container/list"

	"github.com/akashihi/stlcache/policy"
)

// Policy tracks entries on a recency list: touching a key moves it to
// the front, and the back of the list is always the victim. It is
// always able to name a victim as long as it holds at least one key.
type Policy[K comparable] struct {
	entries *list.List
	index   map[K]*list.Element
}

// New constructs an empty Policy.
func New[K comparable]() *Policy[K] {
	return &Policy[K]{entries: list.New(), index: make(map[K]*list.Element)}
}

func (p *Policy[K]) Insert(k K) error {
	el := p.entries.PushFront(k)
	p.index[k] = el
	return nil
}

func (p *Policy[K]) Remove(k K) {
	el, ok := p.index[k]
	if !ok {
		return
	}
	p.entries.Remove(el)
	delete(p.index, k)
}

func (p *Policy[K]) Touch(k K) {
	el, ok := p.index[k]
	if !ok {
		return
	}
	p.entries.MoveToFront(el)
}

func (p *Policy[K]) Clear() {
	p.entries.Init()
	p.index = make(map[K]*list.Element)
}

func (p *Policy[K]) Swap(other policy.Policy[K]) error {
	o, ok := other.(*Policy[K])
	if !ok {
		return policy.ErrInvalidPolicy
	}
	p.entries, o.entries = o.entries, p.entries
	p.index, o.index = o.index, p.index
	return nil
}

func (p *Policy[K]) Victim() policy.Victim[K] {
	back := p.entries.Back()
	if back == nil {
		return policy.EmptyVictim[K]()
	}
	return policy.NewVictim(back.Value.(K))
}

// Entries exposes the recency list, MRU at Front and LRU at Back, for
// policies built by composition on top of LRU (e.g. MRU, ARC).
func (p *Policy[K]) Entries() *list.List { return p.entries }
