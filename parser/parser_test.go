/*
File    : golox/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser_test

import (
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	lex := lexer.New(src)
	toks := lex.ScanTokens()
	require.False(t, lex.HasErrors())
	p := parser.New(toks)
	stmts, err := p.Parse()
	require.NoError(t, err)
	return stmts
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	stmts := parse(t, "print 1 + 2 * 3;")
	require.Len(t, stmts, 1)
	printStmt, ok := stmts[0].(*ast.PrintStmt)
	require.True(t, ok)

	binary, ok := printStmt.Expression.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", binary.Op.Lexeme)

	right, ok := binary.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", right.Op.Lexeme)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	stmts := parse(t, "a = b = 3;")
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	outer, ok := exprStmt.Expression.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Name.Lexeme)
	inner, ok := outer.Value.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	lex := lexer.New("1 = 2;")
	toks := lex.ScanTokens()
	p := parser.New(toks)
	p.Parse()
	require.True(t, p.HasErrors())
	assert.Contains(t, p.Errors()[0], "Invalid assignment target")
}

func TestParse_SetFromGet(t *testing.T) {
	stmts := parse(t, "a.b = 3;")
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	set, ok := exprStmt.Expression.(*ast.Set)
	require.True(t, ok)
	assert.Equal(t, "b", set.Name.Lexeme)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.Len(t, stmts, 1)
	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)

	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)

	body, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
}

func TestParse_ForMissingClausesDefaultTrueCondition(t *testing.T) {
	stmts := parse(t, "for (;;) print 1;")
	whileStmt, ok := stmts[0].(*ast.WhileStmt)
	require.True(t, ok)
	lit, ok := whileStmt.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_ClassWithSuperclass(t *testing.T) {
	stmts := parse(t, "class B < A { speak() { return 1; } }")
	classStmt, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	require.NotNil(t, classStmt.Superclass)
	assert.Equal(t, "A", classStmt.Superclass.Name.Lexeme)
	require.Len(t, classStmt.Methods, 1)
	assert.Equal(t, "speak", classStmt.Methods[0].Name.Lexeme)
}

func TestParse_CallAndGetChaining(t *testing.T) {
	stmts := parse(t, "a().b.c();")
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	call, ok := exprStmt.Expression.(*ast.Call)
	require.True(t, ok)
	get, ok := call.Callee.(*ast.Get)
	require.True(t, ok)
	assert.Equal(t, "c", get.Name.Lexeme)
}

func TestParse_SuperExpression(t *testing.T) {
	stmts := parse(t, "class B < A { speak() { super.speak(); } }")
	classStmt := stmts[0].(*ast.ClassStmt)
	body := classStmt.Methods[0].Body
	exprStmt := body[0].(*ast.ExpressionStmt)
	call := exprStmt.Expression.(*ast.Call)
	super, ok := call.Callee.(*ast.Super)
	require.True(t, ok)
	assert.Equal(t, "speak", super.Method.Lexeme)
}

func TestParse_UnterminatedBlockIsParseError(t *testing.T) {
	lex := lexer.New("{ print 1;")
	toks := lex.ScanTokens()
	p := parser.New(toks)
	_, err := p.Parse()
	require.Error(t, err)
	assert.True(t, p.HasErrors())
}
