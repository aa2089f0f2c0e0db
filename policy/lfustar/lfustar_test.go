package lfustar

import "testing"

func TestPolicy_VictimOnlyFromCountOneBucket(t *testing.T) {
	p := New[string](nil)
	_ = p.Insert("a")
	_ = p.Insert("b")
	p.Touch("a") // a at refcount 2, b stays at 1

	v := p.Victim()
	if !v.Present() || v.Key() != "b" {
		t.Fatalf("want victim b (the only count-1 entry), got %+v", v)
	}
}

func TestPolicy_NoVictimWhenNothingAtCountOne(t *testing.T) {
	p := New[string](nil)
	_ = p.Insert("a")
	p.Touch("a") // a now at refcount 2, nothing left at 1

	if v := p.Victim(); v.Present() {
		t.Fatalf("expected no victim when no entry is at refcount 1, got %v", v.Key())
	}
}
