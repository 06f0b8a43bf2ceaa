package builtin

import "github.com/ondrovic/goschem/internal/value"

func biCharP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Tag() == value.Character), nil
}

func biCharToInteger(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Character)
	if err != nil {
		return value.Value{}, err
	}
	return value.Num(float64(v.Char())), nil
}

func biIntegerToChar(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	n, err := NthInteger(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Char(rune(n)), nil
}
