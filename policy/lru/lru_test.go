package lru

import (
	"testing"

	"github.com/akashihi/stlcache/policy"
)

func TestPolicy_TouchPromotesToFront(t *testing.T) {
	p := New[string]()
	_ = p.Insert("a")
	_ = p.Insert("b")
	_ = p.Insert("c")
	// recency order is c, b, a (c most recent) -> victim is a

	p.Touch("a")
	// a is now most recent -> victim should be b

	v := p.Victim()
	if !v.Present() || v.Key() != "b" {
		t.Fatalf("want victim b, got %+v", v)
	}
}

func TestPolicy_RemoveUnknownKeyIsNoop(t *testing.T) {
	p := New[int]()
	_ = p.Insert(1)
	p.Remove(99)
	if v := p.Victim(); !v.Present() || v.Key() != 1 {
		t.Fatalf("removing an unknown key must not disturb state, got %+v", v)
	}
}

func TestPolicy_ClearEmptiesVictim(t *testing.T) {
	p := New[int]()
	_ = p.Insert(1)
	_ = p.Insert(2)
	p.Clear()
	if v := p.Victim(); v.Present() {
		t.Fatalf("expected no victim after Clear, got %v", v.Key())
	}
}

func TestPolicy_SwapRejectsIncompatibleType(t *testing.T) {
	p := New[int]()
	if err := p.Swap(stubPolicy[int]{}); err == nil {
		t.Fatal("expected an error swapping with an incompatible policy")
	}
}

type stubPolicy[K comparable] struct{}

func (stubPolicy[K]) Insert(K) error                       { return nil }
func (stubPolicy[K]) Remove(K)                             {}
func (stubPolicy[K]) Touch(K)                              {}
func (stubPolicy[K]) Clear()                               {}
func (stubPolicy[K]) Swap(policy.Policy[K]) error           { return nil }
func (stubPolicy[K]) Victim() policy.Victim[K]              { return policy.EmptyVictim[K]() }
