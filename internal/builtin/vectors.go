package builtin

import (
	"github.com/ondrovic/goschem/internal/escape"
	"github.com/ondrovic/goschem/internal/value"
)

func biVectorP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Tag() == value.Vector), nil
}

func biMakeVector(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	n, err := NthInteger(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	if n < 0 {
		return value.Value{}, escape.New(escape.IndexOutOfRange, "make-vector: length %d must be non-negative", n)
	}
	fill := value.Bool(false)
	if v, ok, err := NthOptional(it, en, operands, 2); err != nil {
		return value.Value{}, err
	} else if ok {
		fill = v
	}
	elems := make([]value.Value, n)
	for i := range elems {
		elems[i] = fill
	}
	return it.NewVector(elems), nil
}

func biVector(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	elems, err := EvalAll(it, en, operands)
	if err != nil {
		return value.Value{}, err
	}
	return it.NewVector(elems), nil
}

func biVectorLength(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Vector)
	if err != nil {
		return value.Value{}, err
	}
	return value.Num(float64(len(v.Elems()))), nil
}

func biVectorRef(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Vector)
	if err != nil {
		return value.Value{}, err
	}
	k, err := NthInteger(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	elems := v.Elems()
	if k < 0 || k >= len(elems) {
		return value.Value{}, escape.New(escape.IndexOutOfRange, "vector index %d out of range [0,%d)", k, len(elems))
	}
	return elems[k], nil
}

func biVectorSetBang(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Vector)
	if err != nil {
		return value.Value{}, err
	}
	k, err := NthInteger(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	x, err := Nth(it, en, operands, 3)
	if err != nil {
		return value.Value{}, err
	}
	elems := v.Elems()
	if k < 0 || k >= len(elems) {
		return value.Value{}, escape.New(escape.IndexOutOfRange, "vector index %d out of range [0,%d)", k, len(elems))
	}
	elems[k] = x
	return value.Null(), nil
}

func biVectorFillBang(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Vector)
	if err != nil {
		return value.Value{}, err
	}
	x, err := Nth(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	elems := v.Elems()
	for i := range elems {
		elems[i] = x
	}
	return value.Null(), nil
}

func biVectorToList(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Vector)
	if err != nil {
		return value.Value{}, err
	}
	return buildList(it, v.Elems()), nil
}

func biListToVector(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	elems, ok := value.ToSlice(v)
	if !ok {
		return value.Value{}, escape.Typef("list", v.KindName())
	}
	return it.NewVector(elems), nil
}
