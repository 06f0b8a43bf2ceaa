package builtin

import (
	"os"

	"github.com/ondrovic/goschem/internal/escape"
	"github.com/ondrovic/goschem/internal/reader"
	"github.com/ondrovic/goschem/internal/value"
)

// biApply evaluates its operands to obtain a procedure and a final
// list of arguments, then calls the procedure with those values via
// applyProcedure, which quotes each one so the ordinary evaluation
// path yields the values unchanged.
func biApply(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	proc, err := NthTyped(it, en, operands, 1, value.Procedure)
	if err != nil {
		return value.Value{}, err
	}
	rest, err := nthTail(it, en, operands, 2)
	if err != nil {
		return value.Value{}, err
	}
	args, err := spreadApplyArgs(it, en, rest)
	if err != nil {
		return value.Value{}, err
	}
	return applyProcedure(it, proc, args)
}

// nthTail returns the operand sublist starting at the nth operand
// (1-based), or the empty list once exhausted.
func nthTail(it value.Interp, en value.Env, operands value.Value, n int) (value.Value, error) {
	rest := operands
	for i := 1; i < n; i++ {
		if value.IsNull(rest) {
			return value.Null(), nil
		}
		rest = rest.Cdr()
	}
	return rest, nil
}

// spreadApplyArgs evaluates every operand but the last normally, and
// splices the last operand's value (which must be a list) onto the
// end — the standard `apply` argument-spreading rule.
func spreadApplyArgs(it value.Interp, en value.Env, operandExprs value.Value) ([]value.Value, error) {
	exprs, ok := value.ToSlice(operandExprs)
	if !ok {
		return nil, escape.Typef("list", operandExprs.KindName())
	}
	if len(exprs) == 0 {
		return nil, nil
	}
	args := make([]value.Value, 0, len(exprs))
	for _, e := range exprs[:len(exprs)-1] {
		v, err := it.Eval(e, en)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	last, err := it.Eval(exprs[len(exprs)-1], en)
	if err != nil {
		return nil, err
	}
	tail, ok := value.ToSlice(last)
	if !ok {
		return nil, escape.Typef("list", last.KindName())
	}
	return append(args, tail...), nil
}

// applyProcedure invokes proc against already-evaluated args by
// quoting each argument so the normal operand-evaluation path inside
// Eval re-derives the same values without re-running any side effects.
func applyProcedure(it value.Interp, proc value.Value, args []value.Value) (value.Value, error) {
	quoted := make([]value.Value, len(args))
	for i, a := range args {
		quoted[i] = it.NewPair(value.Sym("quote"), it.NewPair(a, value.Null()))
	}
	call := it.NewPair(proc, buildList(it, quoted))
	return it.Eval(call, it.NewChildEnv(nil))
}

// biError raises a user-level condition (§7): the sole built-in way a
// program signals failure, distinct from an implementation-detected
// type/arity/unbound error.
func biError(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	args, err := EvalAll(it, en, operands)
	if err != nil {
		return value.Value{}, err
	}
	if len(args) == 0 {
		return value.Value{}, escape.New(escape.UserError, "error")
	}
	msg := ""
	if args[0].Tag() == value.String {
		msg = string(args[0].Bytes())
	} else {
		msg = args[0].KindName()
	}
	for _, irritant := range args[1:] {
		msg += " " + irritant.KindName()
	}
	return value.Value{}, escape.New(escape.UserError, "%s", msg)
}

// biLoad reads every top-level form from path and evaluates each in
// turn in the caller's environment, per §4.5 — it does not echo
// results, unlike the REPL.
func biLoad(it value.Interp, en value.Env, operands value.Value) (value.Value, error) {
	path, err := NthTyped(it, en, operands, 1, value.String)
	if err != nil {
		return value.Value{}, err
	}
	name := string(path.Bytes())
	data, rerr := os.ReadFile(name)
	if rerr != nil {
		return value.Value{}, escape.New(escape.IOError, "cannot load %q: %v", name, rerr)
	}
	h, ok := it.(heapProvider)
	if !ok {
		return value.Value{}, escape.New(escape.IOError, "load unsupported by this interpreter")
	}
	forms, perr := reader.ReadAll(string(data), name, h.HeapForLoad())
	if perr != nil {
		return value.Value{}, escape.New(escape.SyntaxError, "%v", perr)
	}
	var result value.Value = value.Null()
	for _, f := range forms {
		result, err = it.Eval(f, en)
		if err != nil {
			return value.Value{}, err
		}
	}
	return result, nil
}

// heapProvider lets load reach the interpreter's heap to parse new
// source text without widening the Interp interface that every other
// built-in depends on.
type heapProvider interface {
	HeapForLoad() *value.Heap
}
