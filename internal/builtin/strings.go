package builtin

import "github.com/ondrovic/goschem/internal/escape"
import "github.com/ondrovic/goschem/internal/value"

func biStringP(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := Nth(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(v.Tag() == value.String), nil
}

func biMakeString(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	n, err := NthInteger(it, en, operands, 1)
	if err != nil {
		return value.Value{}, err
	}
	if n < 0 {
		return value.Value{}, escape.New(escape.IndexOutOfRange, "make-string: length %d must be non-negative", n)
	}
	fill := byte(' ')
	if c, ok, err := NthOptional(it, en, operands, 2); err != nil {
		return value.Value{}, err
	} else if ok {
		if c.Tag() != value.Character {
			return value.Value{}, escape.Typef("character", c.KindName())
		}
		fill = byte(c.Char())
	}
	return it.NewStringN(n, fill), nil
}

func biStringLength(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.String)
	if err != nil {
		return value.Value{}, err
	}
	return value.Num(float64(len(v.Bytes()))), nil
}

// biStringRef resolves the Open Question: bounds are 0 <= k < length,
// not the teacher's off-by-one `<` check.
func biStringRef(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.String)
	if err != nil {
		return value.Value{}, err
	}
	k, err := NthInteger(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	buf := v.Bytes()
	if k < 0 || k >= len(buf) {
		return value.Value{}, escape.New(escape.IndexOutOfRange, "string index %d out of range [0,%d)", k, len(buf))
	}
	return value.Char(rune(buf[k])), nil
}

func biStringSetBang(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	v, err := NthTyped(it, en, operands, 1, value.String)
	if err != nil {
		return value.Value{}, err
	}
	k, err := NthInteger(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	c, err := NthTyped(it, en, operands, 3, value.Character)
	if err != nil {
		return value.Value{}, err
	}
	buf := v.Bytes()
	if k < 0 || k >= len(buf) {
		return value.Value{}, escape.New(escape.IndexOutOfRange, "string index %d out of range [0,%d)", k, len(buf))
	}
	buf[k] = byte(c.Char())
	return value.Null(), nil
}
