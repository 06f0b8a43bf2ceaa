// Package builtin implements the §6.3 built-in procedure surface
// using the uniform calling convention of §4.4: every built-in has
// signature (Env, operand-list) -> Value and receives UNEVALUATED
// operands, since special forms share the same procedure slot in the
// language's value space. The nth/nth_optional/nth_typed/nth_integer
// helpers below are what every built-in uses to evaluate the operands
// it actually needs, in the order it needs them — grounded on the
// teacher's per-form argument handling in interpreter.go, generalized
// into the spec's named helper functions instead of one-off inline
// evaluation at each call site.
package builtin

import (
	"github.com/ondrovic/goschem/internal/escape"
	"github.com/ondrovic/goschem/internal/value"
)

func nthExpr(operands value.Value, n int) (value.Value, bool) {
	cur := operands
	for i := 1; i < n; i++ {
		if value.IsNull(cur) || cur.Tag() != value.Pair {
			return value.Value{}, false
		}
		cur = cur.Cdr()
	}
	if value.IsNull(cur) || cur.Tag() != value.Pair {
		return value.Value{}, false
	}
	return cur.Car(), true
}

// Nth evaluates the n-th operand (1-based). Errors with an arity-error
// if absent.
func Nth(it value.Interp, en value.Env, operands value.Value, n int) (value.Value, error) {
	expr, ok := nthExpr(operands, n)
	if !ok {
		return value.Value{}, escape.Arityf("Too few parameters passed")
	}
	return it.Eval(expr, en)
}

// NthOptional evaluates the n-th operand if present; ok is false if it
// was omitted, with no error.
func NthOptional(it value.Interp, en value.Env, operands value.Value, n int) (v value.Value, ok bool, err error) {
	expr, present := nthExpr(operands, n)
	if !present {
		return value.Value{}, false, nil
	}
	v, err = it.Eval(expr, en)
	if err != nil {
		return value.Value{}, false, err
	}
	return v, true, nil
}

// NthTyped evaluates the n-th operand and asserts its tag.
func NthTyped(it value.Interp, en value.Env, operands value.Value, n int, expected value.Tag) (value.Value, error) {
	v, err := Nth(it, en, operands, n)
	if err != nil {
		return value.Value{}, err
	}
	if v.Tag() != expected || (expected == value.Pair && value.IsNull(v)) {
		return value.Value{}, escape.Typef(expected.String(), v.KindName())
	}
	return v, nil
}

// NthInteger evaluates the n-th operand and asserts it's a number that
// is also an exact integral value (§4.4, §9 "Numbers").
func NthInteger(it value.Interp, en value.Env, operands value.Value, n int) (int, error) {
	v, err := NthTyped(it, en, operands, n, value.Number)
	if err != nil {
		return 0, err
	}
	if !v.IsInteger() {
		return 0, escape.New(escape.ArithmeticError, "integer expected, got %g", v.Num())
	}
	return int(v.Num()), nil
}

// EvalAll evaluates every operand left to right, for variadic
// built-ins (+, list, vector, …) that consume however many operands
// were passed rather than a fixed arity.
func EvalAll(it value.Interp, en value.Env, operands value.Value) ([]value.Value, error) {
	var out []value.Value
	for cur := operands; !value.IsNull(cur); cur = cur.Cdr() {
		if cur.Tag() != value.Pair {
			return nil, escape.New(escape.SyntaxError, "improper operand list")
		}
		v, err := it.Eval(cur.Car(), en)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Count returns the number of operands without evaluating any of them.
func Count(operands value.Value) int {
	n := 0
	for cur := operands; cur.Tag() == value.Pair && !value.IsNull(cur); cur = cur.Cdr() {
		n++
	}
	return n
}
