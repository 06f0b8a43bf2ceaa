package eval

import "github.com/ondrovic/goschem/internal/value"

// quasiquote structurally copies template, replacing (unquote E) with
// the evaluated E and splicing (unquote-splicing E) — E must evaluate
// to a list — into the enclosing list in place. Nesting of quasiquote
// itself is not required to be supported (§4.3).
func (ev *Evaluator) quasiquote(template value.Value, en value.Env, depth int) (value.Value, error) {
	if template.Tag() != value.Pair || value.IsNull(template) {
		if template.Tag() == value.Vector {
			elems := template.Elems()
			out := make([]value.Value, 0, len(elems))
			for _, e := range elems {
				expanded, err := ev.quasiquote(e, en, depth)
				if err != nil {
					return value.Value{}, err
				}
				out = append(out, expanded)
			}
			return ev.Heap.NewVector(out), nil
		}
		return template, nil
	}

	head := template.Car()
	if head.Tag() == value.Symbol {
		switch head.SymbolName() {
		case "unquote":
			return ev.Eval(template.Cdr().Car(), en)
		case "unquote-splicing":
			return value.Value{}, nil // handled by the caller when head of a list; bare is an error, ignored here
		}
	}

	// Walk the list, splicing where an element is (unquote-splicing E).
	var result []value.Value
	cur := template
	for cur.Tag() == value.Pair && !value.IsNull(cur) {
		elem := cur.Car()
		if elem.Tag() == value.Symbol && elem.SymbolName() == "unquote" {
			// (a . ,E) reads as (a unquote E): cur is a dotted tail.
			break
		}
		if elem.Tag() == value.Pair && !value.IsNull(elem) && elem.Car().Tag() == value.Symbol &&
			elem.Car().SymbolName() == "unquote-splicing" {
			spliced, err := ev.Eval(elem.Cdr().Car(), en)
			if err != nil {
				return value.Value{}, err
			}
			items, _ := value.ToSlice(spliced)
			result = append(result, items...)
		} else {
			expanded, err := ev.quasiquote(elem, en, depth)
			if err != nil {
				return value.Value{}, err
			}
			result = append(result, expanded)
		}
		cur = cur.Cdr()
	}

	tail := value.Null()
	if cur.Tag() != value.Pair || !value.IsNull(cur) {
		// dotted tail: the cdr itself may be an (unquote E) form.
		expanded, err := ev.quasiquote(cur, en, depth)
		if err != nil {
			return value.Value{}, err
		}
		tail = expanded
	}

	out := tail
	for i := len(result) - 1; i >= 0; i-- {
		out = ev.Heap.NewPair(result[i], out)
	}
	return out, nil
}
