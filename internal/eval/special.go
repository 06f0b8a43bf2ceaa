package eval

import (
	"github.com/ondrovic/goschem/internal/escape"
	"github.com/ondrovic/goschem/internal/value"
)

// evalSpecial handles one special form. If tail is true, the caller
// should resume its trampoline loop at the returned tailPos instead of
// treating result as final — this is how if/begin/let/let*/cond/case/
// and/or achieve constant-depth tail calls (§4.3).
func (ev *Evaluator) evalSpecial(name string, form value.Value, en value.Env) (next tailPos, result value.Value, tail bool, err error) {
	operands := form.Cdr()

	switch name {
	case "quote":
		return tailPos{}, operands.Car(), false, nil

	case "lambda":
		formals := operands.Car()
		body := operands.Cdr()
		return tailPos{}, ev.Heap.NewClosure("", formals, body, en), false, nil

	case "if":
		test, err := ev.Eval(operands.Car(), en)
		if err != nil {
			return tailPos{}, value.Value{}, false, err
		}
		rest := operands.Cdr()
		if !test.IsFalse() {
			return tailPos{expr: rest.Car(), env: en}, value.Value{}, true, nil
		}
		if value.IsNull(rest.Cdr()) {
			return tailPos{}, value.Null(), false, nil
		}
		return tailPos{expr: rest.Cdr().Car(), env: en}, value.Value{}, true, nil

	case "set!":
		sym := operands.Car()
		v, err := ev.Eval(operands.Cdr().Car(), en)
		if err != nil {
			return tailPos{}, value.Value{}, false, err
		}
		if err := en.Set(sym.SymbolName(), v); err != nil {
			return tailPos{}, value.Value{}, false, err
		}
		return tailPos{}, value.Null(), false, nil

	case "define":
		target := operands.Car()
		if target.Tag() == value.Pair {
			// (define (name . formals) body...)
			name := target.Car().SymbolName()
			formals := target.Cdr()
			body := operands.Cdr()
			closure := ev.Heap.NewClosure(name, formals, body, en)
			en.Define(name, closure)
			return tailPos{}, value.Sym(name), false, nil
		}
		name := target.SymbolName()
		v, err := ev.Eval(operands.Cdr().Car(), en)
		if err != nil {
			return tailPos{}, value.Value{}, false, err
		}
		en.Define(name, v)
		return tailPos{}, value.Sym(name), false, nil

	case "begin":
		return ev.tailSequence(operands, en)

	case "let":
		return ev.evalLet(operands, en)

	case "let*":
		return ev.evalLetStar(operands, en)

	case "cond":
		return ev.evalCond(operands, en)

	case "case":
		return ev.evalCase(operands, en)

	case "and":
		return ev.evalAnd(operands, en)

	case "or":
		return ev.evalOr(operands, en)

	case "quasiquote":
		v, err := ev.quasiquote(operands.Car(), en, 1)
		return tailPos{}, v, false, err
	}

	return tailPos{}, value.Value{}, false, escape.New(escape.SyntaxError, "unknown special form %q", name)
}

// tailSequence evaluates all but the last form of a body eagerly and
// hands the last one back for the caller's trampoline to resume on —
// the shared shape behind begin, let, let* and cond/case clause
// bodies. Closure bodies are walked the same way inline in Eval.
func (ev *Evaluator) tailSequence(body value.Value, en value.Env) (tailPos, value.Value, bool, error) {
	if value.IsNull(body) {
		return tailPos{}, value.Null(), false, nil
	}
	for !value.IsNull(body.Cdr()) {
		if _, err := ev.Eval(body.Car(), en); err != nil {
			return tailPos{}, value.Value{}, false, err
		}
		body = body.Cdr()
	}
	return tailPos{expr: body.Car(), env: en}, value.Value{}, true, nil
}

// evalLet evaluates every binding's init expression in the outer
// environment, then binds them simultaneously in a fresh frame (§4.3 let).
func (ev *Evaluator) evalLet(operands value.Value, en value.Env) (tailPos, value.Value, bool, error) {
	bindings := operands.Car()
	body := operands.Cdr()

	child := ev.NewChildEnv(en)
	for b := bindings; !value.IsNull(b); b = b.Cdr() {
		pair := b.Car()
		name := pair.Car().SymbolName()
		v, err := ev.Eval(pair.Cdr().Car(), en)
		if err != nil {
			return tailPos{}, value.Value{}, false, err
		}
		child.Define(name, v)
	}
	return ev.tailSequence(body, child)
}

// evalLetStar evaluates each binding's init expression in the scope
// produced by the preceding bindings (§4.3 let*).
func (ev *Evaluator) evalLetStar(operands value.Value, en value.Env) (tailPos, value.Value, bool, error) {
	bindings := operands.Car()
	body := operands.Cdr()

	child := ev.NewChildEnv(en)
	for b := bindings; !value.IsNull(b); b = b.Cdr() {
		pair := b.Car()
		name := pair.Car().SymbolName()
		v, err := ev.Eval(pair.Cdr().Car(), child)
		if err != nil {
			return tailPos{}, value.Value{}, false, err
		}
		child.Define(name, v)
	}
	return ev.tailSequence(body, child)
}

// evalCond implements §4.3 cond: first non-false test's clause runs,
// `else` always matches, a clause with no expressions returns the
// test's value.
func (ev *Evaluator) evalCond(clauses value.Value, en value.Env) (tailPos, value.Value, bool, error) {
	for c := clauses; !value.IsNull(c); c = c.Cdr() {
		clause := c.Car()
		test := clause.Car()
		if test.Tag() == value.Symbol && test.SymbolName() == "else" {
			return ev.tailSequence(clause.Cdr(), en)
		}
		v, err := ev.Eval(test, en)
		if err != nil {
			return tailPos{}, value.Value{}, false, err
		}
		if !v.IsFalse() {
			if value.IsNull(clause.Cdr()) {
				return tailPos{}, v, false, nil
			}
			return ev.tailSequence(clause.Cdr(), en)
		}
	}
	return tailPos{}, value.Null(), false, nil
}

// evalCase implements the R5RS case the Open Question resolves: the
// key is evaluated once, clauses are `(datum* expr...)` or
// `(else expr...)`, matching compares with eqv?.
func (ev *Evaluator) evalCase(operands value.Value, en value.Env) (tailPos, value.Value, bool, error) {
	key, err := ev.Eval(operands.Car(), en)
	if err != nil {
		return tailPos{}, value.Value{}, false, err
	}
	for c := operands.Cdr(); !value.IsNull(c); c = c.Cdr() {
		clause := c.Car()
		datums := clause.Car()
		if datums.Tag() == value.Symbol && datums.SymbolName() == "else" {
			return ev.tailSequence(clause.Cdr(), en)
		}
		for d := datums; !value.IsNull(d); d = d.Cdr() {
			if value.Eqv(d.Car(), key) {
				return ev.tailSequence(clause.Cdr(), en)
			}
		}
	}
	return tailPos{}, value.Null(), false, nil
}

// evalAnd short-circuits on the first false value; the last operand
// is in tail position (§4.3 and, `(and)` => #t).
func (ev *Evaluator) evalAnd(operands value.Value, en value.Env) (tailPos, value.Value, bool, error) {
	if value.IsNull(operands) {
		return tailPos{}, value.Bool(true), false, nil
	}
	for !value.IsNull(operands.Cdr()) {
		v, err := ev.Eval(operands.Car(), en)
		if err != nil {
			return tailPos{}, value.Value{}, false, err
		}
		if v.IsFalse() {
			return tailPos{}, v, false, nil
		}
		operands = operands.Cdr()
	}
	return tailPos{expr: operands.Car(), env: en}, value.Value{}, true, nil
}

// evalOr short-circuits on the first non-false value; the last operand
// is in tail position (§4.3 or, `(or)` => #f).
func (ev *Evaluator) evalOr(operands value.Value, en value.Env) (tailPos, value.Value, bool, error) {
	if value.IsNull(operands) {
		return tailPos{}, value.Bool(false), false, nil
	}
	for !value.IsNull(operands.Cdr()) {
		v, err := ev.Eval(operands.Car(), en)
		if err != nil {
			return tailPos{}, value.Value{}, false, err
		}
		if !v.IsFalse() {
			return tailPos{}, v, false, nil
		}
		operands = operands.Cdr()
	}
	return tailPos{expr: operands.Car(), env: en}, value.Value{}, true, nil
}
