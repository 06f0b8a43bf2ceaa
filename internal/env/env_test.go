package env

import (
	"testing"

	"github.com/ondrovic/goschem/internal/value"
)

func TestDefineAndLookupInSameFrame(t *testing.T) {
	e := New()
	e.Define("x", value.Num(10))

	v, err := e.Lookup("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num() != 10 {
		t.Fatalf("expected 10, got %v", v.Num())
	}
}

func TestLookupFallsBackToParent(t *testing.T) {
	root := New()
	root.Define("x", value.Num(1))
	child := NewChild(root)

	v, err := child.Lookup("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num() != 1 {
		t.Fatalf("expected to see parent binding, got %v", v.Num())
	}
}

func TestDefineShadowsInChildOnly(t *testing.T) {
	root := New()
	root.Define("x", value.Num(1))
	child := NewChild(root)
	child.Define("x", value.Num(2))

	if v, _ := child.Lookup("x"); v.Num() != 2 {
		t.Fatalf("child should see its own binding")
	}
	if v, _ := root.Lookup("x"); v.Num() != 1 {
		t.Fatalf("parent binding should be untouched by child's define")
	}
}

func TestSetMutatesNearestBinding(t *testing.T) {
	root := New()
	root.Define("x", value.Num(1))
	child := NewChild(root)

	if err := child.Set("x", value.Num(99)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := root.Lookup("x"); v.Num() != 99 {
		t.Fatalf("set! should mutate the existing binding in the chain, got %v", v.Num())
	}
}

func TestLookupUnboundIsAnError(t *testing.T) {
	e := New()
	if _, err := e.Lookup("nope"); err == nil {
		t.Fatalf("expected an unbound-identifier error")
	}
}

func TestSetUnboundIsAnError(t *testing.T) {
	e := New()
	if err := e.Set("nope", value.Num(1)); err == nil {
		t.Fatalf("expected an unbound-identifier error")
	}
}

func TestManyBindingsGrowTheTable(t *testing.T) {
	e := New()
	for i := 0; i < 100; i++ {
		e.Define(string(rune('a'+i%26))+string(rune(i)), value.Num(float64(i)))
	}
	count := 0
	e.Walk(func(value.Value) { count++ })
	if count != 100 {
		t.Fatalf("expected 100 live bindings after growth, got %d", count)
	}
}
