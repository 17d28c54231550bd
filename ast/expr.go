/*
File    : golox/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the expression and statement node types produced
// by the parser. Each node implements Accept for double-dispatch into
// an ExprVisitor/StmtVisitor, the same shape as parser.Node.Accept in
// the teacher, kept here for the debug-printing visitor even though
// the resolver and interpreter dispatch on these types with a plain Go
// type switch, the way the teacher's own Eval(n parser.Node) does.
package ast

import "github.com/akashmaji946/golox/token"

// Expr is any expression AST node.
type Expr interface {
	AcceptExpr(v ExprVisitor) interface{}
}

// ExprVisitor is implemented by anything that walks expressions (the
// debug printer is the only one in this repo; the resolver and
// interpreter use type switches instead).
type ExprVisitor interface {
	VisitLiteral(e *Literal) interface{}
	VisitUnary(e *Unary) interface{}
	VisitBinary(e *Binary) interface{}
	VisitLogical(e *Logical) interface{}
	VisitGrouping(e *Grouping) interface{}
	VisitVarExpr(e *VarExpr) interface{}
	VisitAssign(e *Assign) interface{}
	VisitCall(e *Call) interface{}
	VisitGet(e *Get) interface{}
	VisitSet(e *Set) interface{}
	VisitThis(e *This) interface{}
	VisitSuper(e *Super) interface{}
}

// Literal is a constant value already decoded by the lexer: number,
// string, bool, or nil.
type Literal struct {
	Value interface{}
}

func (e *Literal) AcceptExpr(v ExprVisitor) interface{} { return v.VisitLiteral(e) }

// Unary is a prefix operator applied to one operand: "!" or "-".
type Unary struct {
	Op    token.Token
	Right Expr
}

func (e *Unary) AcceptExpr(v ExprVisitor) interface{} { return v.VisitUnary(e) }

// Binary is an infix arithmetic/comparison/equality operator.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) AcceptExpr(v ExprVisitor) interface{} { return v.VisitBinary(e) }

// Logical is "and"/"or", kept distinct from Binary because it
// short-circuits.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Logical) AcceptExpr(v ExprVisitor) interface{} { return v.VisitLogical(e) }

// Grouping is a parenthesized expression, kept as its own node so the
// printer can reproduce source parens.
type Grouping struct {
	Inner Expr
}

func (e *Grouping) AcceptExpr(v ExprVisitor) interface{} { return v.VisitGrouping(e) }

// VarExpr is a variable reference by name. Field is named Name, not
// Ident, to line up with spec's Var(name) variant.
type VarExpr struct {
	Name token.Token
}

func (e *VarExpr) AcceptExpr(v ExprVisitor) interface{} { return v.VisitVarExpr(e) }

// Assign is a variable assignment: target name := value.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) AcceptExpr(v ExprVisitor) interface{} { return v.VisitAssign(e) }

// Call is a function/method/class invocation. Paren is the closing
// ")" token, kept for its line number in arity-mismatch diagnostics.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (e *Call) AcceptExpr(v ExprVisitor) interface{} { return v.VisitCall(e) }

// Get is property access: object.name.
type Get struct {
	Object Expr
	Name   token.Token
}

func (e *Get) AcceptExpr(v ExprVisitor) interface{} { return v.VisitGet(e) }

// Set is property assignment: object.name = value.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *Set) AcceptExpr(v ExprVisitor) interface{} { return v.VisitSet(e) }

// This is the "this" keyword used as a variable reference.
type This struct {
	Keyword token.Token
}

func (e *This) AcceptExpr(v ExprVisitor) interface{} { return v.VisitThis(e) }

// Super is "super.method".
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (e *Super) AcceptExpr(v ExprVisitor) interface{} { return v.VisitSuper(e) }
