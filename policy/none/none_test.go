package none

import "testing"

func TestPolicy_VictimOnlyAmongResident(t *testing.T) {
	p := New[string]()
	if v := p.Victim(); v.Present() {
		t.Fatalf("empty policy must have no victim, got %v", v.Key())
	}

	for _, k := range []string{"a", "b", "c"} {
		if err := p.Insert(k); err != nil {
			t.Fatalf("Insert(%q): %v", k, err)
		}
	}

	resident := map[string]bool{"a": true, "b": true, "c": true}
	for i := 0; i < 20; i++ {
		v := p.Victim()
		if !v.Present() {
			t.Fatal("expected a victim")
		}
		if !resident[v.Key()] {
			t.Fatalf("victim %q not among resident keys", v.Key())
		}
	}
}

func TestPolicy_RemoveThenEmpty(t *testing.T) {
	p := New[int]()
	_ = p.Insert(1)
	p.Remove(1)
	if v := p.Victim(); v.Present() {
		t.Fatalf("expected no victim after removing the only key, got %v", v.Key())
	}
	// removing an unknown key must not panic
	p.Remove(42)
}

func TestPolicy_SwapExchangesState(t *testing.T) {
	a := New[int]()
	b := New[int]()
	_ = a.Insert(1)
	_ = b.Insert(2)

	if err := a.Swap(b); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if v := a.Victim(); !v.Present() || v.Key() != 2 {
		t.Fatalf("a should now hold key 2, got %+v", v)
	}
	if v := b.Victim(); !v.Present() || v.Key() != 1 {
		t.Fatalf("b should now hold key 1, got %+v", v)
	}
}
