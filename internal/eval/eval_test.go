package eval_test

import (
	"testing"

	"github.com/ondrovic/goschem/internal/builtin"
	"github.com/ondrovic/goschem/internal/env"
	"github.com/ondrovic/goschem/internal/eval"
	"github.com/ondrovic/goschem/internal/reader"
	"github.com/ondrovic/goschem/internal/value"
)

// newTestInterp builds a fully-wired evaluator with every built-in
// registered, the way internal/interp.New does, without depending on
// that package (which in turn depends on this one).
func newTestInterp(t *testing.T) (*eval.Evaluator, *env.Environment) {
	t.Helper()
	h := value.NewHeap()
	root := env.New()
	builtin.Register(h, root)
	ev := eval.New(h, value.Null(), value.Null())
	return ev, root
}

func evalString(t *testing.T, text string) value.Value {
	t.Helper()
	ev, root := newTestInterp(t)
	forms, err := reader.ReadAll(text, "test", ev.Heap)
	if err != nil {
		t.Fatalf("parse error for %q: %v", text, err)
	}
	var result value.Value
	for _, f := range forms {
		result, err = ev.Eval(f, root)
		if err != nil {
			t.Fatalf("eval error for %q: %v", text, err)
		}
	}
	return result
}

func TestSelfEvaluatingAtoms(t *testing.T) {
	if v := evalString(t, "42"); v.Num() != 42 {
		t.Fatalf("expected 42, got %v", v)
	}
	if v := evalString(t, "#t"); !v.Bool() {
		t.Fatalf("expected #t")
	}
}

func TestQuoteReturnsUnevaluated(t *testing.T) {
	v := evalString(t, "(quote (1 2 3))")
	elems, ok := value.ToSlice(v)
	if !ok || len(elems) != 3 {
		t.Fatalf("expected (1 2 3) unevaluated, got %v", v)
	}
}

func TestIfBranches(t *testing.T) {
	if v := evalString(t, "(if #t 1 2)"); v.Num() != 1 {
		t.Fatalf("expected the consequent, got %v", v)
	}
	if v := evalString(t, "(if #f 1 2)"); v.Num() != 2 {
		t.Fatalf("expected the alternate, got %v", v)
	}
	if v := evalString(t, "(if #f 1)"); !value.IsNull(v) {
		t.Fatalf("expected the empty list when the alternate is omitted")
	}
}

func TestDefineAndLookup(t *testing.T) {
	if v := evalString(t, "(define x 10) x"); v.Num() != 10 {
		t.Fatalf("expected 10, got %v", v)
	}
}

func TestLambdaApplication(t *testing.T) {
	if v := evalString(t, "((lambda (x y) (+ x y)) 3 4)"); v.Num() != 7 {
		t.Fatalf("expected 7, got %v", v)
	}
}

func TestDefineProcedureShorthand(t *testing.T) {
	v := evalString(t, "(define (square x) (* x x)) (square 5)")
	if v.Num() != 25 {
		t.Fatalf("expected 25, got %v", v)
	}
}

func TestSetBangMutatesEnclosingBinding(t *testing.T) {
	v := evalString(t, "(define x 1) (set! x 2) x")
	if v.Num() != 2 {
		t.Fatalf("expected 2, got %v", v)
	}
}

func TestLetBindsSimultaneously(t *testing.T) {
	// y should see the outer x (1), not the let-bound x (2).
	v := evalString(t, "(define x 1) (let ((x 2) (y x)) y)")
	if v.Num() != 1 {
		t.Fatalf("let should evaluate inits in the outer environment, got %v", v)
	}
}

func TestLetStarBindsSequentially(t *testing.T) {
	v := evalString(t, "(let* ((x 2) (y (* x x))) y)")
	if v.Num() != 4 {
		t.Fatalf("let* should see earlier bindings, got %v", v)
	}
}

func TestCondElse(t *testing.T) {
	v := evalString(t, "(cond (#f 1) (#f 2) (else 3))")
	if v.Num() != 3 {
		t.Fatalf("expected the else clause, got %v", v)
	}
}

func TestCaseSelectsMatchingClause(t *testing.T) {
	v := evalString(t, "(case (* 2 3) ((2 3 5 7) 'prime) ((1 4 6 8 9) 'composite) (else 'other))")
	if v.SymbolName() != "composite" {
		t.Fatalf("expected composite, got %v", v)
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	if v := evalString(t, "(and 1 2 3)"); v.Num() != 3 {
		t.Fatalf("and should return the last value, got %v", v)
	}
	if v := evalString(t, "(and 1 #f 3)"); !v.IsFalse() {
		t.Fatalf("and should short-circuit on #f, got %v", v)
	}
	if v := evalString(t, "(or #f #f 5)"); v.Num() != 5 {
		t.Fatalf("or should return the first truthy value, got %v", v)
	}
	if v := evalString(t, "(or)"); !v.IsFalse() {
		t.Fatalf("(or) should be #f")
	}
}

func TestQuasiquoteUnquoteSplicing(t *testing.T) {
	v := evalString(t, "(define xs (list 2 3)) `(1 ,@xs 4)")
	elems, ok := value.ToSlice(v)
	if !ok || len(elems) != 4 {
		t.Fatalf("expected (1 2 3 4), got %v", v)
	}
	if elems[0].Num() != 1 || elems[1].Num() != 2 || elems[3].Num() != 4 {
		t.Fatalf("splicing produced wrong elements: %v", elems)
	}
}

func TestDeepTailRecursionDoesNotOverflowTheGoStack(t *testing.T) {
	v := evalString(t, `
		(define (count n acc)
		  (if (= n 0) acc (count (- n 1) (+ acc 1))))
		(count 1000000 0)
	`)
	if v.Num() != 1000000 {
		t.Fatalf("expected 1000000, got %v", v)
	}
}

func TestVariadicRestParameter(t *testing.T) {
	v := evalString(t, "(define (f a . rest) rest) (f 1 2 3 4)")
	elems, ok := value.ToSlice(v)
	if !ok || len(elems) != 3 {
		t.Fatalf("expected rest = (2 3 4), got %v", v)
	}
}

func TestApplyingNonProcedureIsATypeError(t *testing.T) {
	ev, root := newTestInterp(t)
	forms, err := reader.ReadAll("(1 2 3)", "test", ev.Heap)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := ev.Eval(forms[0], root); err == nil {
		t.Fatalf("expected a type error calling a non-procedure")
	}
}

func TestUnboundVariableIsAnError(t *testing.T) {
	ev, root := newTestInterp(t)
	forms, err := reader.ReadAll("never-defined", "test", ev.Heap)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := ev.Eval(forms[0], root); err == nil {
		t.Fatalf("expected an unbound-identifier error")
	}
}
