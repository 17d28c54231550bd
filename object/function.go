/*
File    : golox/object/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
)

// Function is a LoxFunction: a declaration closed over the
// environment active at definition time. Grounded on
// function.Function, extended with Closure (the teacher's
// CallFunction instead re-derives the call-time environment from a
// stored Scp field with the same role) and IsInitializer, which the
// teacher's struct-as-record language has no equivalent of since
// GoMix structs have no constructors.
type Function struct {
	Decl          *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

func (f *Function) Arity() int { return len(f.Decl.Params) }

func (f *Function) String() string {
	return "<fn " + f.Decl.Name.Lexeme + ">"
}

// Bind returns a new Function whose closure is a one-frame extension
// of f's closure defining "this" as instance, per spec.md §4.5's
// bound-method rule. Pure environment bookkeeping, it never needs to
// invoke the interpreter.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.NewChild(f.Closure)
	env.Define("this", instance)
	return &Function{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}
