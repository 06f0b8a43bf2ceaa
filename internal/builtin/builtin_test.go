package builtin_test

import (
	"testing"

	"github.com/ondrovic/goschem/internal/builtin"
	"github.com/ondrovic/goschem/internal/env"
	"github.com/ondrovic/goschem/internal/eval"
	"github.com/ondrovic/goschem/internal/reader"
	"github.com/ondrovic/goschem/internal/value"
)

func run(t *testing.T, text string) value.Value {
	t.Helper()
	h := value.NewHeap()
	root := env.New()
	builtin.Register(h, root)
	ev := eval.New(h, value.Null(), value.Null())

	forms, err := reader.ReadAll(text, "test", h)
	if err != nil {
		t.Fatalf("parse error: %v", err)
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

func runExpectError(t *testing.T, text string) error {
	t.Helper()
	h := value.NewHeap()
	root := env.New()
	builtin.Register(h, root)
	ev := eval.New(h, value.Null(), value.Null())

	forms, err := reader.ReadAll(text, "test", h)
	if err != nil {
		return err
	}
	for _, f := range forms {
		if _, err := ev.Eval(f, root); err != nil {
			return err
		}
	}
	return nil
}

func TestArithmetic(t *testing.T) {
	if v := run(t, "(+ 1 2 3)"); v.Num() != 6 {
		t.Fatalf("expected 6, got %v", v)
	}
	if v := run(t, "(- 10 1 2)"); v.Num() != 7 {
		t.Fatalf("expected 7, got %v", v)
	}
	if v := run(t, "(- 5)"); v.Num() != -5 {
		t.Fatalf("expected -5, got %v", v)
	}
	if v := run(t, "(* 2 3 4)"); v.Num() != 24 {
		t.Fatalf("expected 24, got %v", v)
	}
}

func TestDivisionByZeroIsNotAnError(t *testing.T) {
	v := run(t, "(/ 1 0)")
	if !isInf(v.Num()) {
		t.Fatalf("expected (/ 1 0) to produce infinity, got %v", v.Num())
	}
}

func isInf(f float64) bool { return f > 1e300 || f < -1e300 }

func TestComparisons(t *testing.T) {
	if v := run(t, "(< 1 2 3)"); !v.Bool() {
		t.Fatalf("expected #t")
	}
	if v := run(t, "(< 1 3 2)"); v.Bool() {
		t.Fatalf("expected #f")
	}
	if v := run(t, "(= 1 1 1)"); !v.Bool() {
		t.Fatalf("expected #t")
	}
}

func TestEqualityFamily(t *testing.T) {
	if v := run(t, "(eq? 'a 'a)"); !v.Bool() {
		t.Fatalf("eq? on interned symbols should be #t")
	}
	if v := run(t, `(equal? (list 1 2) (list 1 2))`); !v.Bool() {
		t.Fatalf("equal? should recurse into list structure")
	}
	if v := run(t, `(eq? (list 1 2) (list 1 2))`); v.Bool() {
		t.Fatalf("eq? on distinct cons cells should be #f")
	}
}

func TestPairsAndLists(t *testing.T) {
	if v := run(t, "(car (cons 1 2))"); v.Num() != 1 {
		t.Fatalf("expected 1, got %v", v)
	}
	if v := run(t, "(cdr (cons 1 2))"); v.Num() != 2 {
		t.Fatalf("expected 2, got %v", v)
	}
	if v := run(t, "(length (list 1 2 3))"); v.Num() != 3 {
		t.Fatalf("expected 3, got %v", v)
	}
	if v := run(t, "(length '())"); v.Num() != 0 {
		t.Fatalf("expected length of the empty list to be 0, got %v", v)
	}
	if v := run(t, "(null? '())"); !v.Bool() {
		t.Fatalf("expected #t")
	}
	if v := run(t, "(pair? '())"); v.Bool() {
		t.Fatalf("the empty list is not a pair")
	}
	if v := run(t, "(append (list 1 2) (list 3 4))"); func() bool {
		elems, ok := value.ToSlice(v)
		return ok && len(elems) == 4
	}() == false {
		t.Fatalf("expected a 4-element appended list, got %v", v)
	}
}

func TestCarOfNonPairIsATypeError(t *testing.T) {
	if err := runExpectError(t, "(car 5)"); err == nil {
		t.Fatalf("expected a type error")
	}
}

func TestStringOperations(t *testing.T) {
	if v := run(t, `(string-length "hello")`); v.Num() != 5 {
		t.Fatalf("expected 5, got %v", v)
	}
	if v := run(t, `(string-ref "hello" 0)`); v.Char() != 'h' {
		t.Fatalf("expected h, got %v", v)
	}
}

func TestStringRefOutOfRangeIsAnError(t *testing.T) {
	if err := runExpectError(t, `(string-ref "hi" 5)`); err == nil {
		t.Fatalf("expected an index-out-of-range error")
	}
	if err := runExpectError(t, `(string-ref "hi" 2)`); err == nil {
		t.Fatalf("index 2 is out of range for a 2-character string (bounds are 0<=k<length)")
	}
}

func TestVectorOperations(t *testing.T) {
	if v := run(t, "(vector-ref (vector 1 2 3) 1)"); v.Num() != 2 {
		t.Fatalf("expected 2, got %v", v)
	}
	if v := run(t, "(vector-length (make-vector 5 0))"); v.Num() != 5 {
		t.Fatalf("expected 5, got %v", v)
	}
}

func TestSymbolStringConversion(t *testing.T) {
	if v := run(t, `(string->symbol "foo")`); v.Tag() != value.Symbol || v.SymbolName() != "foo" {
		t.Fatalf("expected symbol foo, got %v", v)
	}
	if v := run(t, `(symbol->string 'foo)`); v.Tag() != value.String || string(v.Bytes()) != "foo" {
		t.Fatalf("expected string foo, got %v", v)
	}
}

func TestApply(t *testing.T) {
	v := run(t, "(apply + (list 1 2 3))")
	if v.Num() != 6 {
		t.Fatalf("expected 6, got %v", v)
	}
	v = run(t, "(apply + 1 2 (list 3 4))")
	if v.Num() != 10 {
		t.Fatalf("expected 10, got %v", v)
	}
}

func TestErrorRaisesAUserCondition(t *testing.T) {
	err := runExpectError(t, `(error "boom")`)
	if err == nil {
		t.Fatalf("expected an error")
	}
}
