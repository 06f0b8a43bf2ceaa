// Package escape implements the interpreter's nonlocal-exit mechanism.
//
// Every error raised anywhere in the reader, evaluator or a built-in
// carries a Kind and a formatted message and unwinds, via a plain Go
// error return, to the nearest installed marker — which in practice is
// always the top-level driver loop (§4.6, §4.7 of the design). There is
// no in-language catch; Scheme-level error is the only way user code
// signals one of these.
package escape

import "fmt"

// Kind names one of the error categories from §7.
type Kind string

const (
	SyntaxError       Kind = "syntax-error"
	TypeError         Kind = "type-error"
	ArityError        Kind = "arity-error"
	UnboundIdentifier Kind = "unbound-identifier"
	ArithmeticError   Kind = "arithmetic-error"
	IOError           Kind = "io-error"
	IndexOutOfRange   Kind = "index-out-of-range"
	UserError         Kind = "error"
)

// Position is a 1-based line/column, attached to syntax errors.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Error is the unwinding value carried from the point of failure to
// the driver. It satisfies the built-in error interface so it can flow
// through ordinary (Value, error) returns.
type Error struct {
	Kind    Kind
	Message string
	Pos     *Position
}

func (e *Error) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Pos)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At attaches a source position to an error, returning a new Error.
func At(kind Kind, pos Position, format string, args ...any) *Error {
	e := New(kind, format, args...)
	e.Pos = &pos
	return e
}

// Syntaxf raises a syntax-error at the given position.
func Syntaxf(pos Position, format string, args ...any) *Error {
	return At(SyntaxError, pos, format, args...)
}

// Typef raises a type-error: "<expected> expected, got <actual>".
func Typef(expected, actual string) *Error {
	return New(TypeError, "%s expected, got %s", expected, actual)
}

// Arityf raises an arity-error, e.g. "Too few parameters passed".
func Arityf(format string, args ...any) *Error {
	return New(ArityError, format, args...)
}

// Unbound raises an unbound-identifier error for name.
func Unbound(format string, name string) *Error {
	return New(UnboundIdentifier, format, name)
}
