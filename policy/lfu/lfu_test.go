package lfu

import "testing"

func TestPolicy_VictimIsLeastFrequentlyUsed(t *testing.T) {
	p := New[string](nil)
	_ = p.Insert("a")
	_ = p.Insert("b")
	_ = p.Insert("c")
	// all at refcount 1 -> victim is the first inserted, "a"

	v := p.Victim()
	if !v.Present() || v.Key() != "a" {
		t.Fatalf("want victim a, got %+v", v)
	}

	p.Touch("a")
	p.Touch("a")
	// a now at refcount 3, b and c still at 1 -> victim is b (inserted before c)

	v = p.Victim()
	if !v.Present() || v.Key() != "b" {
		t.Fatalf("want victim b, got %+v", v)
	}
}

func TestPolicy_DecayLowersCountFlooredAtOne(t *testing.T) {
	p := New[string](nil)
	_ = p.Insert("a")
	p.Touch("a")
	p.Touch("a")
	if got := p.Count("a"); got != 3 {
		t.Fatalf("want count 3, got %d", got)
	}

	p.Decay("a")
	if got := p.Count("a"); got != 2 {
		t.Fatalf("want count 2 after decay, got %d", got)
	}

	p.Decay("a")
	p.Decay("a")
	p.Decay("a")
	if got := p.Count("a"); got != 1 {
		t.Fatalf("decay must floor at 1, got %d", got)
	}
}

func TestPolicy_LessComparatorBreaksTies(t *testing.T) {
	less := func(a, b string) bool { return a < b }
	p := New[string](less)
	_ = p.Insert("c")
	_ = p.Insert("a")
	_ = p.Insert("b")
	// all at refcount 1, comparator orders lexicographically -> victim "a"

	v := p.Victim()
	if !v.Present() || v.Key() != "a" {
		t.Fatalf("want victim a with comparator tie-break, got %+v", v)
	}
}

func TestPolicy_RemoveUpdatesMinCount(t *testing.T) {
	p := New[string](nil)
	_ = p.Insert("a")
	_ = p.Insert("b")
	p.Touch("a") // a at 2, b at 1
	p.Remove("b")

	v := p.Victim()
	if !v.Present() || v.Key() != "a" {
		t.Fatalf("want victim a after removing the only count-1 entry, got %+v", v)
	}
}
