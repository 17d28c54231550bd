/*
File    : golox/ast/printer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast_test

import (
	"strings"
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
	"github.com/stretchr/testify/assert"
)

func TestPrintExpr_BinaryIndentsOperands(t *testing.T) {
	expr := &ast.Binary{
		Left:  &ast.Literal{Value: 1.0},
		Op:    token.New(token.Plus, "+", 1),
		Right: &ast.Literal{Value: 2.0},
	}

	out := ast.PrintExpr(expr)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "Binary(+)", lines[0])
	assert.Equal(t, "  Literal(1)", lines[1])
	assert.Equal(t, "  Literal(2)", lines[2])
}

func TestPrintExpr_GroupingAndUnaryDescend(t *testing.T) {
	expr := &ast.Grouping{
		Inner: &ast.Unary{
			Op:    token.New(token.Minus, "-", 1),
			Right: &ast.Literal{Value: 3.0},
		},
	}

	out := ast.PrintExpr(expr)

	assert.Equal(t, "Grouping\n  Unary(-)\n    Literal(3)\n", out)
}

func TestPrintStmt_ClassWithSuperclassShowsInheritance(t *testing.T) {
	stmt := &ast.ClassStmt{
		Name:       token.New(token.Identifier, "B", 1),
		Superclass: &ast.VarExpr{Name: token.New(token.Identifier, "A", 1)},
		Methods: []*ast.FunctionStmt{
			{Name: token.New(token.Identifier, "init", 2), Params: nil, Body: nil},
		},
	}

	out := ast.PrintStmt(stmt)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "ClassStmt(B < A)", lines[0])
	assert.Equal(t, "  FunctionStmt(init, 0 params)", lines[1])
}

func TestPrintStmt_IfWithoutElseOmitsElseBranch(t *testing.T) {
	stmt := &ast.IfStmt{
		Condition: &ast.Literal{Value: true},
		Then:      &ast.PrintStmt{Expression: &ast.Literal{Value: "hi"}},
	}

	out := ast.PrintStmt(stmt)

	assert.NotContains(t, out, "ElseBranch")
	assert.Contains(t, out, "IfStmt")
	assert.Contains(t, out, `Literal(hi)`)
}
