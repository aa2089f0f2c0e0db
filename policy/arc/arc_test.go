package arc

import "testing"

func TestPolicy_FreshEntriesLiveInT1(t *testing.T) {
	p := New[string](4)
	_ = p.Insert("a")
	_ = p.Insert("b")

	v := p.Victim()
	if !v.Present() || v.Key() != "a" {
		t.Fatalf("want LRU victim a from T1, got %+v", v)
	}
}

func TestPolicy_TouchPromotesToT2(t *testing.T) {
	p := New[string](4)
	_ = p.Insert("a")
	_ = p.Insert("b")
	_ = p.Insert("c")
	p.Touch("a") // a moves to T2, leaving b and c in T1

	v := p.Victim()
	if !v.Present() || v.Key() != "b" {
		t.Fatalf("want b (LRU end of T1, which outnumbers T2) as victim, got %+v", v)
	}
}

func TestPolicy_GhostHitReturnsToT1(t *testing.T) {
	p := New[string](4)
	_ = p.Insert("a")
	p.Remove("a") // a now lives in B1 (ghost)

	if _, ok := p.b1Entries["a"]; !ok {
		t.Fatal("expected a to be ghosted into B1 after removal from T1")
	}

	_ = p.Insert("a") // re-admission should hit the B1 ghost and return to T1
	if _, ok := p.t1Entries["a"]; !ok {
		t.Fatal("expected a to be promoted back into T1 on a B1 ghost hit")
	}
	if _, ok := p.b1Entries["a"]; ok {
		t.Fatal("a must no longer be ghosted after being re-admitted")
	}
}

func TestPolicy_GhostListsAreTrimmedToHalfSize(t *testing.T) {
	p := New[string](4)
	for _, k := range []string{"a", "b", "c", "d"} {
		_ = p.Insert(k)
		p.Remove(k)
	}
	if got := len(p.b1Entries); got > 2 {
		t.Fatalf("B1 ghost list must stay bounded to size/2 == 2, got %d", got)
	}
}

func TestPolicy_SwapExchangesState(t *testing.T) {
	a := New[int](4)
	b := New[int](4)
	_ = a.Insert(1)
	_ = b.Insert(2)

	if err := a.Swap(b); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if v := a.Victim(); !v.Present() || v.Key() != 2 {
		t.Fatalf("a should now hold key 2, got %+v", v)
	}
}
