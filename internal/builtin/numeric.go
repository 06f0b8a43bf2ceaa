package builtin

import (
	"math"

	"github.com/ondrovic/goschem/internal/escape"
	"github.com/ondrovic/goschem/internal/value"
)

func numbers(it value.Interp, en value.Env, operands value.Value) ([]float64, error) {
	vs, err := EvalAll(it, en, operands)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vs))
	for i, v := range vs {
		if v.Tag() != value.Number {
			return nil, escape.Typef("number", v.KindName())
		}
		out[i] = v.Num()
	}
	return out, nil
}

func biAdd(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	ns, err := numbers(it, en, operands)
	if err != nil {
		return value.Value{}, err
	}
	sum := 0.0
	for _, n := range ns {
		sum += n
	}
	return value.Num(sum), nil
}

func biMul(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	ns, err := numbers(it, en, operands)
	if err != nil {
		return value.Value{}, err
	}
	product := 1.0
	for _, n := range ns {
		product *= n
	}
	return value.Num(product), nil
}

func biSub(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	ns, err := numbers(it, en, operands)
	if err != nil {
		return value.Value{}, err
	}
	if len(ns) == 0 {
		return value.Value{}, escape.Arityf("Too few parameters passed")
	}
	if len(ns) == 1 {
		return value.Num(-ns[0]), nil
	}
	result := ns[0]
	for _, n := range ns[1:] {
		result -= n
	}
	return value.Num(result), nil
}

// biDiv implements / without treating division by zero as an error:
// IEEE-754 infinity or NaN is the documented result (§8 negative case).
func biDiv(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	ns, err := numbers(it, en, operands)
	if err != nil {
		return value.Value{}, err
	}
	if len(ns) == 0 {
		return value.Value{}, escape.Arityf("Too few parameters passed")
	}
	if len(ns) == 1 {
		return value.Num(1 / ns[0]), nil
	}
	result := ns[0]
	for _, n := range ns[1:] {
		result /= n
	}
	return value.Num(result), nil
}

func biModulo(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	a, err := NthInteger(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	b, err := NthInteger(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	if b == 0 {
		return value.Num(math.NaN()), nil
	}
	m := a % b
	if (m < 0) != (b < 0) && m != 0 {
		m += b
	}
	return value.Num(float64(m)), nil
}

func compareChain(it value.Interp, en value.Env, operands value.Value, ok func(a, b float64) bool) (value.Value, error) {
	ns, err := numbers(it, en, operands)
	if err != nil {
		return value.Value{}, err
	}
	for i := 1; i < len(ns); i++ {
		if !ok(ns[i-1], ns[i]) {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

func biNumEq(it value.Interp, en value.Env, o value.Value) (value.Value, error) {
	return compareChain(it, en, o, func(a, b float64) bool { return a == b })
}
func biLt(it value.Interp, en value.Env, o value.Value) (value.Value, error) {
	return compareChain(it, en, o, func(a, b float64) bool { return a < b })
}
func biGt(it value.Interp, en value.Env, o value.Value) (value.Value, error) {
	return compareChain(it, en, o, func(a, b float64) bool { return a > b })
}
func biLe(it value.Interp, en value.Env, o value.Value) (value.Value, error) {
	return compareChain(it, en, o, func(a, b float64) bool { return a <= b })
}
func biGe(it value.Interp, en value.Env, o value.Value) (value.Value, error) {
	return compareChain(it, en, o, func(a, b float64) bool { return a >= b })
}

func biZeroP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Number)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Num() == 0), nil
}

func biPositiveP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Number)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Num() > 0), nil
}

func biNegativeP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Number)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Num() < 0), nil
}

func biOddP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	n, err := NthInteger(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(n%2 != 0), nil
}

func biEvenP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	n, err := NthInteger(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(n%2 == 0), nil
}

func biMin(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	ns, err := numbers(it, en, operands)
	if err != nil {
		return value.Value{}, err
	}
	if len(ns) == 0 {
		return value.Value{}, escape.Arityf("Too few parameters passed")
	}
	m := ns[0]
	for _, n := range ns[1:] {
		if n < m {
			m = n
		}
	}
	return value.Num(m), nil
}

func biMax(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	ns, err := numbers(it, en, operands)
	if err != nil {
		return value.Value{}, err
	}
	if len(ns) == 0 {
		return value.Value{}, escape.Arityf("Too few parameters passed")
	}
	m := ns[0]
	for _, n := range ns[1:] {
		if n > m {
			m = n
		}
	}
	return value.Num(m), nil
}

// Type predicates. complex? and rational? always report false, and
// exact? always reports false: only IEEE-754 doubles are supported
// (§6.3 normative surface, Non-goals numeric tower).

func biNumberP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Tag() == value.Number), nil
}

func biComplexP(value.Interp, value.Env, value.Value) (value.Value, error) {
	return value.Bool(false), nil
}

func biRealP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	return biNumberP(it, en, operands)
}

func biRationalP(value.Interp, value.Env, value.Value) (value.Value, error) {
	return value.Bool(false), nil
}

func biIntegerP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Tag() == value.Number && v.IsInteger()), nil
}

func biExactP(value.Interp, value.Env, value.Value) (value.Value, error) {
	return value.Bool(false), nil
}

func biInexactP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	return biNumberP(it, en, operands)
}

func biBooleanP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Tag() == value.Boolean), nil
}
