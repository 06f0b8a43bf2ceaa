package builtin

import "github.com/ondrovic/goschem/internal/value"

func biSymbolP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Tag() == value.Symbol), nil
}

func biSymbolToString(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.Symbol)
	if err != nil {
		return value.Value{}, err
	}
	return it.NewString(v.SymbolName()), nil
}

func biStringToSymbol(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.String)
	if err != nil {
		return value.Value{}, err
	}
	return value.Sym(string(v.Bytes())), nil
}

func biProcedureP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Tag() == value.Procedure), nil
}
