/*
File    : golox/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/golox/token"

// Stmt is any statement AST node.
type Stmt interface {
	AcceptStmt(v StmtVisitor) interface{}
}

// StmtVisitor is implemented by anything that walks statements.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) interface{}
	VisitPrintStmt(s *PrintStmt) interface{}
	VisitVarStmt(s *VarStmt) interface{}
	VisitBlockStmt(s *BlockStmt) interface{}
	VisitIfStmt(s *IfStmt) interface{}
	VisitWhileStmt(s *WhileStmt) interface{}
	VisitFunctionStmt(s *FunctionStmt) interface{}
	VisitReturnStmt(s *ReturnStmt) interface{}
	VisitClassStmt(s *ClassStmt) interface{}
}

// ExpressionStmt evaluates an expression for its side effects only.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates an expression and writes its string form.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitPrintStmt(s) }

// VarStmt declares a variable, optionally with an initializer
// expression; an absent initializer binds nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if absent
}

func (s *VarStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitVarStmt(s) }

// BlockStmt is a brace-delimited list of statements with its own
// scope.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitBlockStmt(s) }

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Condition  Expr
	Then       Stmt
	ElseBranch Stmt // nil if absent
}

func (s *IfStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitIfStmt(s) }

// WhileStmt is a condition-guarded loop. ForStmt has no dedicated node;
// the parser desugars "for" into a WhileStmt per spec.md §4.2.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function (or a method body, reused
// inside ClassStmt.Methods).
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitFunctionStmt(s) }

// ReturnStmt unwinds to the nearest enclosing function call with an
// optional value; a bare "return;" returns nil.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if absent
}

func (s *ReturnStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitReturnStmt(s) }

// ClassStmt declares a class with an optional superclass reference
// (a VarExpr naming the parent class) and its method table.
type ClassStmt struct {
	Name       token.Token
	Superclass *VarExpr // nil if absent
	Methods    []*FunctionStmt
}

func (s *ClassStmt) AcceptStmt(v StmtVisitor) interface{} { return v.VisitClassStmt(s) }
