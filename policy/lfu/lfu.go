// Package lfu implements the "Least Frequently Used" eviction policy.
package lfu

import (
	"container/list"

	"github.com/akashihi/stlcache/policy"
)

// Policy buckets resident keys by reference count. Touching a key
// moves it to the next bucket up; the victim is drawn from the
// lowest non-empty bucket. Within a bucket, ties break by an optional
// caller-supplied comparator, falling back to insertion order when
// none is given.
type Policy[K comparable] struct {
	less func(a, b K) bool

	counts   map[K]int
	buckets  map[int]*list.List
	elems    map[K]*list.Element
	minCount int
}

// New constructs an empty Policy. less, when non-nil, breaks ties
// between equally-referenced keys; nil falls back to insertion order.
func New[K comparable](less func(a, b K) bool) *Policy[K] {
	return &Policy[K]{
		less:    less,
		counts:  make(map[K]int),
		buckets: make(map[int]*list.List),
		elems:   make(map[K]*list.Element),
	}
}

func (p *Policy[K]) bucket(c int) *list.List {
	b, ok := p.buckets[c]
	if !ok {
		b = list.New()
		p.buckets[c] = b
	}
	return b
}

func (p *Policy[K]) insertOrdered(l *list.List, k K) *list.Element {
	if p.less == nil {
		return l.PushBack(k)
	}
	for e := l.Front(); e != nil; e = e.Next() {
		if p.less(k, e.Value.(K)) {
			return l.InsertBefore(k, e)
		}
	}
	return l.PushBack(k)
}

func (p *Policy[K]) Insert(k K) error {
	if _, ok := p.counts[k]; ok {
		return nil
	}
	p.counts[k] = 1
	p.elems[k] = p.insertOrdered(p.bucket(1), k)
	if p.minCount == 0 || p.minCount > 1 {
		p.minCount = 1
	}
	return nil
}

func (p *Policy[K]) Remove(k K) {
	c, ok := p.counts[k]
	if !ok {
		return
	}
	b := p.buckets[c]
	b.Remove(p.elems[k])
	delete(p.elems, k)
	delete(p.counts, k)
	if b.Len() == 0 {
		delete(p.buckets, c)
		if c == p.minCount {
			p.minCount = p.recomputeMinCount()
		}
	}
}

func (p *Policy[K]) Touch(k K) {
	c, ok := p.counts[k]
	if !ok {
		return
	}
	oldBucket := p.buckets[c]
	oldBucket.Remove(p.elems[k])
	newCount := c + 1
	p.counts[k] = newCount
	p.elems[k] = p.insertOrdered(p.bucket(newCount), k)
	if oldBucket.Len() == 0 {
		delete(p.buckets, c)
		if c == p.minCount {
			p.minCount = p.recomputeMinCount()
		}
	}
}

// Decay lowers k's reference count by one, floored at 1, without
// treating it as a touch. Used by aging policies during an expiry
// pass to walk popularity back down over time.
func (p *Policy[K]) Decay(k K) {
	c, ok := p.counts[k]
	if !ok || c <= 1 {
		return
	}
	b := p.buckets[c]
	b.Remove(p.elems[k])
	newCount := c - 1
	p.counts[k] = newCount
	p.elems[k] = p.insertOrdered(p.bucket(newCount), k)
	if b.Len() == 0 {
		delete(p.buckets, c)
	}
	if p.minCount == 0 || newCount < p.minCount {
		p.minCount = newCount
	}
}

// Count returns k's current reference count, or 0 if k is unknown.
func (p *Policy[K]) Count(k K) int { return p.counts[k] }

// Keys returns every resident key, in no particular order. Used by
// aging policies to walk all entries during an expiry pass.
func (p *Policy[K]) Keys() []K {
	ks := make([]K, 0, len(p.counts))
	for k := range p.counts {
		ks = append(ks, k)
	}
	return ks
}

func (p *Policy[K]) recomputeMinCount() int {
	min := 0
	for c, b := range p.buckets {
		if b.Len() == 0 {
			continue
		}
		if min == 0 || c < min {
			min = c
		}
	}
	return min
}

func (p *Policy[K]) Clear() {
	p.counts = make(map[K]int)
	p.buckets = make(map[int]*list.List)
	p.elems = make(map[K]*list.Element)
	p.minCount = 0
}

func (p *Policy[K]) Swap(other policy.Policy[K]) error {
	o, ok := other.(*Policy[K])
	if !ok {
		return policy.ErrInvalidPolicy
	}
	p.counts, o.counts = o.counts, p.counts
	p.buckets, o.buckets = o.buckets, p.buckets
	p.elems, o.elems = o.elems, p.elems
	p.minCount, o.minCount = o.minCount, p.minCount
	p.less, o.less = o.less, p.less
	return nil
}

func (p *Policy[K]) Victim() policy.Victim[K] {
	return p.VictimAt(p.minCount)
}

// VictimAt returns the front entry of the bucket for an exact
// reference count, used by derived policies (LFU*) that restrict
// eviction to a specific count instead of the global minimum.
func (p *Policy[K]) VictimAt(count int) policy.Victim[K] {
	if count == 0 {
		return policy.EmptyVictim[K]()
	}
	b, ok := p.buckets[count]
	if !ok || b.Len() == 0 {
		return policy.EmptyVictim[K]()
	}
	return policy.NewVictim(b.Front().Value.(K))
}
