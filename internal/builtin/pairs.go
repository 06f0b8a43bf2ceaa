package builtin

import (
	"github.com/ondrovic/goschem/internal/escape"
	"github.com/ondrovic/goschem/internal/value"
)

func biPairP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Tag() == value.Pair && !value.IsNull(v)), nil
}

func biCons(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	a, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	b, err := Nth(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	return it.NewPair(a, b), nil
}

func biCar(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Pair)
	if err != nil {
		return value.Value{}, err
	}
	return v.Car(), nil
}

func biCdr(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Pair)
	if err != nil {
		return value.Value{}, err
	}
	return v.Cdr(), nil
}

func biSetCarBang(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Pair)
	if err != nil {
		return value.Value{}, err
	}
	x, err := Nth(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	v.SetCar(x)
	return value.Null(), nil
}

func biSetCdrBang(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Pair)
	if err != nil {
		return value.Value{}, err
	}
	x, err := Nth(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	v.SetCdr(x)
	return value.Null(), nil
}

func biNullP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(value.IsNull(v)), nil
}

func biListP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	_, ok := value.ToSlice(v)
	return value.Bool(ok), nil
}

// buildList allocates a proper list terminated by the empty list from
// elems, in the given interpreter's heap, via the Interp/NewPair
// surface so builtins never need direct heap access.
func buildList(it value.Interp, elems []value.Value) value.Value {
	result := value.Null()
	for i := len(elems) - 1; i >= 0; i-- {
		result = it.NewPair(elems[i], result)
	}
	return result
}

// biList resolves the Open Question: iterate the operands, evaluating
// each, producing a proper list terminated by the empty list.
func biList(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	elems, err := EvalAll(it, en, operands)
	if err != nil {
		return value.Value{}, err
	}
	return buildList(it, elems), nil
}

// biLength resolves the Open Question: pairs counted from 0.
func biLength(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	n, ok := value.Length(v)
	if !ok {
		return value.Value{}, escape.Typef("list", v.KindName())
	}
	return value.Num(float64(n)), nil
}

func biAppend(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	lists, err := EvalAll(it, en, operands)
	if err != nil {
		return value.Value{}, err
	}
	h, ok := it.(heapProvider)
	if !ok {
		return value.Value{}, escape.New(escape.IOError, "append unsupported by this interpreter")
	}
	return value.Append(h.HeapForLoad(), lists), nil
}
