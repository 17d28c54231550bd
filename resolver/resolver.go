/*
File    : golox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements the static pre-evaluation walk from
// spec.md §4.3. It has no teacher equivalent since GoMix has no
// resolution pass, so it is new code written in the parser's
// error-collection idiom (parser.Parser's errors list and fail helper) and
// dispatches on AST node types with a Go type switch, the same
// mechanism the teacher's real evaluator uses (eval/eval_expressions.go).
package resolver

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/token"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver walks the AST once, before evaluation, recording the
// lexical distance of every resolvable variable reference.
type Resolver struct {
	scopes          []map[string]bool
	currentFunction functionType
	currentClass    classType

	distances map[ast.Expr]int
	errors    []string
}

// New creates a Resolver ready to walk a program.
func New() *Resolver {
	return &Resolver{distances: make(map[ast.Expr]int)}
}

type resolveAbort struct{ err error }

// Resolve walks stmts, returning the resolution side-table (expr →
// scope distance) or the first static error encountered. There is no
// synchronisation, matching spec.md §1's "first error aborts".
func (r *Resolver) Resolve(stmts []ast.Stmt) (distances map[ast.Expr]int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			abort, ok := rec.(resolveAbort)
			if !ok {
				panic(rec)
			}
			distances, err = nil, abort.err
		}
	}()
	r.resolveStmts(stmts)
	return r.distances, nil
}

func (r *Resolver) fail(line int, message string) resolveAbort {
	e := &loxerr.ResolveError{Line: line, Message: message}
	r.errors = append(r.errors, e.Error())
	return resolveAbort{err: e}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if _, ok := top[name.Lexeme]; ok {
		panic(r.fail(name.Line, "Already a variable with this name in this scope."))
	}
	top[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.distances[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// unresolved: treated as global at runtime, no side-table entry.
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.ReturnStmt:
		if r.currentFunction == fnNone {
			panic(r.fail(s.Keyword.Line, "Can't return from top-level code."))
		}
		if s.Value != nil {
			if r.currentFunction == fnInitializer {
				panic(r.fail(s.Keyword.Line, "Can't return a value from an initializer."))
			}
			r.resolveExpr(s.Value)
		}
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.ClassStmt:
		r.resolveClass(s)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveFunction(decl *ast.FunctionStmt, typ functionType) {
	enclosing := r.currentFunction
	r.currentFunction = typ
	r.beginScope()
	for _, param := range decl.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(decl.Body)
	r.endScope()
	r.currentFunction = enclosing
}

func (r *Resolver) resolveClass(stmt *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(stmt.Name)
	r.define(stmt.Name)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			panic(r.fail(stmt.Superclass.Name.Line, "A class can't inherit from itself."))
		}
		r.currentClass = classSubclass
		r.resolveExpr(stmt.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range stmt.Methods {
		declType := fnMethod
		if method.Name.Lexeme == "init" {
			declType = fnInitializer
		}
		r.resolveFunction(method, declType)
	}

	r.endScope()

	if stmt.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// nothing to resolve
	case *ast.VarExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				panic(r.fail(e.Name.Line, "Can't read local variable in its own initializer."))
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Grouping:
		r.resolveExpr(e.Inner)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.This:
		if r.currentClass == classNone {
			panic(r.fail(e.Keyword.Line, "Can't use 'this' outside of a class."))
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.Super:
		if r.currentClass == classNone {
			panic(r.fail(e.Keyword.Line, "Can't use 'super' outside of a class."))
		} else if r.currentClass != classSubclass {
			panic(r.fail(e.Keyword.Line, "Can't use 'super' in a class with no superclass."))
		}
		r.resolveLocal(e, e.Keyword)
	default:
		panic("resolver: unhandled expression type")
	}
}
