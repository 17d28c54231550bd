/*
File    : golox/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements lexically-chained variable scopes,
// adapted from the teacher's scope.Scope (parent-linked map-based
// chain with LookUp/Bind/Assign) and extended with the distance-indexed
// GetAt/AssignAt access spec.md §4.4 requires, the teacher has no
// resolver, so it never needs anything but ambient lookup.
package environment

import (
	"fmt"

	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/token"
)

// Environment is one scope frame: a name→value map plus an optional
// enclosing frame. The global environment has a
// nil Enclosing.
type Environment struct {
	values    map[string]interface{}
	Enclosing *Environment
}

// New creates a top-level (global) environment.
func New() *Environment {
	return &Environment{values: make(map[string]interface{})}
}

// NewChild creates a new environment enclosed by parent, the shape
// used on block entry, function call, and super/this binding.
func NewChild(parent *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), Enclosing: parent}
}

// Define binds name to value in the current frame, unconditionally.
// Redefining an existing name in the same frame is allowed, matching
// Lox's permissive global redefinition and shadowing inside blocks.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get walks the enclosing chain looking for name (ambient access).
func (e *Environment) Get(name token.Token) (interface{}, error) {
	for env := e; env != nil; env = env.Enclosing {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, loxerr.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign walks the enclosing chain and updates the first frame that
// already defines name (ambient access); it is a runtime error if no
// frame defines it.
func (e *Environment) Assign(name token.Token, value interface{}) error {
	for env := e; env != nil; env = env.Enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}
	return loxerr.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// ancestor walks exactly distance enclosing hops. A distance recorded
// by the resolver is always valid by construction, so a mismatch here
// indicates a resolver bug, not user error. It panics rather than
// returning a runtime error.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.Enclosing == nil {
			panic(fmt.Sprintf("environment: ancestor distance %d exceeds chain depth", distance))
		}
		env = env.Enclosing
	}
	return env
}

// GetAt performs an unchecked lookup in the frame exactly distance
// hops out, per spec.md §4.4.
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.ancestor(distance).values[name]
}

// AssignAt performs an unchecked assignment in the frame exactly
// distance hops out.
func (e *Environment) AssignAt(distance int, name string, value interface{}) {
	e.ancestor(distance).values[name] = value
}
