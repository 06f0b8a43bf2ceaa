// Package env implements the interpreter's environment chain (§3.2,
// §4.2): a node owning a hash table of bindings, linked to a parent
// frame. The root frame holds every built-in binding and top-level
// user definition; every procedure call and let/let* form pushes a
// fresh child frame grounded on the teacher's Frame{parent, bindings}
// shape, generalized from a Go map to the hand-rolled htable in
// htable.go.
package env

import (
	"github.com/ondrovic/goschem/internal/escape"
	"github.com/ondrovic/goschem/internal/value"
)

// Environment is one frame in the chain.
type Environment struct {
	parent   *Environment
	bindings *htable
}

// New creates a root environment with no parent.
func New() *Environment {
	return &Environment{bindings: newHTable()}
}

// NewChild creates a frame whose lookups fall back to parent.
func NewChild(parent *Environment) *Environment {
	return &Environment{parent: parent, bindings: newHTable()}
}

// Define binds or overwrites name in this frame only (§4.2).
func (e *Environment) Define(name string, v value.Value) {
	e.bindings.set(name, v)
}

// Set searches this frame then each parent in turn, overwriting the
// first binding found in place. Returns an unbound-identifier error if
// none exists anywhere in the chain (§4.2 set!).
func (e *Environment) Set(name string, v value.Value) error {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.bindings.get(name); ok {
			f.bindings.set(name, v)
			return nil
		}
	}
	return escape.Unbound("No binding for %s", name)
}

// Lookup searches this frame then each parent in turn (§4.2).
func (e *Environment) Lookup(name string) (value.Value, error) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.bindings.get(name); ok {
			return v, nil
		}
	}
	return value.Value{}, escape.Unbound("reference to undefined identifier: %s", name)
}

// Parent implements value.Env.
func (e *Environment) Parent() value.Env {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// Walk implements value.Env: invokes fn for every value bound directly
// in this frame (not its ancestors — the collector walks those by
// following Parent itself).
func (e *Environment) Walk(fn func(value.Value)) {
	e.bindings.each(fn)
}

var _ value.Env = (*Environment)(nil)
