package builtin

import "github.com/ondrovic/goschem/internal/value"

// Register binds every §6.3 built-in procedure name into env. Special
// forms are not first-class and are never bound here — the evaluator
// recognizes them by name before any lookup happens.
func Register(h *value.Heap, env value.Env) {
	for name, fn := range table {
		env.Define(name, h.NewBuiltin(name, fn))
	}
}

var table = map[string]value.BuiltinFunc{
	// equality
	"eq?":    biEqP,
	"eqv?":   biEqvP,
	"equal?": biEqualP,
	"not":    biNot,

	// numeric
	"+":          biAdd,
	"*":          biMul,
	"-":          biSub,
	"/":          biDiv,
	"modulo":     biModulo,
	"=":          biNumEq,
	"<":          biLt,
	">":          biGt,
	"<=":         biLe,
	">=":         biGe,
	"zero?":      biZeroP,
	"positive?":  biPositiveP,
	"negative?":  biNegativeP,
	"odd?":       biOddP,
	"even?":      biEvenP,
	"min":        biMin,
	"max":        biMax,
	"number?":    biNumberP,
	"complex?":   biComplexP,
	"real?":      biRealP,
	"rational?":  biRationalP,
	"integer?":   biIntegerP,
	"exact?":     biExactP,
	"inexact?":   biInexactP,
	"boolean?":   biBooleanP,

	// pairs and lists
	"pair?":    biPairP,
	"cons":     biCons,
	"car":      biCar,
	"cdr":      biCdr,
	"set-car!": biSetCarBang,
	"set-cdr!": biSetCdrBang,
	"null?":    biNullP,
	"list?":    biListP,
	"list":     biList,
	"length":   biLength,
	"append":   biAppend,

	// characters
	"char?":           biCharP,
	"char->integer":   biCharToInteger,
	"integer->char":   biIntegerToChar,

	// strings
	"string?":       biStringP,
	"make-string":   biMakeString,
	"string-length": biStringLength,
	"string-ref":    biStringRef,
	"string-set!":   biStringSetBang,

	// vectors
	"vector?":        biVectorP,
	"make-vector":    biMakeVector,
	"vector":         biVector,
	"vector-length":  biVectorLength,
	"vector-ref":     biVectorRef,
	"vector-set!":    biVectorSetBang,
	"vector-fill!":   biVectorFillBang,
	"vector->list":   biVectorToList,
	"list->vector":   biListToVector,

	// symbols
	"symbol?":         biSymbolP,
	"symbol->string":  biSymbolToString,
	"string->symbol":  biStringToSymbol,
	"procedure?":      biProcedureP,

	// ports and I/O
	"input-port?":         biInputPortP,
	"output-port?":         biOutputPortP,
	"current-input-port":   biCurrentInputPort,
	"current-output-port":  biCurrentOutputPort,
	"open-input-file":      biOpenInputFile,
	"open-output-file":     biOpenOutputFile,
	"close-input-port":     biCloseInputPort,
	"close-output-port":    biCloseOutputPort,
	"write":                biWrite,
	"display":              biDisplay,
	"newline":              biNewline,
	"write-char":           biWriteChar,

	// control
	"apply": biApply,
	"load":  biLoad,
	"error": biError,
}
