package builtin

import "github.com/ondrovic/goschem/internal/value"

func biEqP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	a, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	b, err := Nth(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(value.Eq(a, b)), nil
}

func biEqvP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	a, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	b, err := Nth(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(value.Eqv(a, b)), nil
}

func biEqualP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	a, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	b, err := Nth(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(value.Equal(a, b)), nil
}

func biNot(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.IsFalse()), nil
}
