package lfuaging

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time       { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestPolicy_LastInserted(t *testing.T) {
	clk := &fakeClock{}
	p := New[string](time.Second, clk, nil)
	_ = p.Insert("a")
	_ = p.Insert("b")

	// both fresh, no aging yet -> first inserted wins ties
	v := p.Victim()
	if !v.Present() || v.Key() != "a" {
		t.Fatalf("want victim a, got %+v", v)
	}
}

func TestPolicy_Touch(t *testing.T) {
	clk := &fakeClock{}
	p := New[string](time.Second, clk, nil)
	_ = p.Insert("a")
	_ = p.Insert("b")
	p.Touch("a") // a at refcount 2

	v := p.Victim()
	if !v.Present() || v.Key() != "b" {
		t.Fatalf("want victim b, got %+v", v)
	}
}

func TestPolicy_Expire(t *testing.T) {
	clk := &fakeClock{}
	p := New[string](time.Second, clk, nil)
	_ = p.Insert("a")
	p.Touch("a")
	p.Touch("a") // a at refcount 3

	_ = p.Insert("b") // b at refcount 1

	if got := p.Count("a"); got != 3 {
		t.Fatalf("want a at 3 before aging, got %d", got)
	}

	clk.advance(2 * time.Second)
	p.Expire()

	if got := p.Count("a"); got != 2 {
		t.Fatalf("want a decayed to 2 after one expire pass, got %d", got)
	}
}
