/*
File    : golox/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver_test

import (
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	lex := lexer.New(src)
	toks := lex.ScanTokens()
	require.False(t, lex.HasErrors())
	p := parser.New(toks)
	stmts, err := p.Parse()
	require.NoError(t, err)
	return stmts
}

func TestResolve_GlobalReferenceHasNoDistance(t *testing.T) {
	stmts := parseOK(t, `var a = 1; print a;`)
	distances, err := resolver.New().Resolve(stmts)
	require.NoError(t, err)

	printStmt := stmts[1].(*ast.PrintStmt)
	varExpr := printStmt.Expression.(*ast.VarExpr)
	_, ok := distances[varExpr]
	assert.False(t, ok)
}

func TestResolve_LocalReferenceRecordsDistance(t *testing.T) {
	stmts := parseOK(t, `{ var a = 1; print a; }`)
	distances, err := resolver.New().Resolve(stmts)
	require.NoError(t, err)

	block := stmts[0].(*ast.BlockStmt)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	varExpr := printStmt.Expression.(*ast.VarExpr)
	d, ok := distances[varExpr]
	require.True(t, ok)
	assert.Equal(t, 0, d)
}

func TestResolve_ReadInOwnInitializerIsError(t *testing.T) {
	stmts := parseOK(t, `{ var a = a; }`)
	_, err := resolver.New().Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "own initializer")
}

func TestResolve_RedeclareInSameScopeIsError(t *testing.T) {
	stmts := parseOK(t, `{ var a = 1; var a = 2; }`)
	_, err := resolver.New().Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Already a variable")
}

func TestResolve_TopLevelReturnIsError(t *testing.T) {
	stmts := parseOK(t, `return 1;`)
	_, err := resolver.New().Resolve(stmts)
	require.Error(t, err)
}

func TestResolve_ReturnValueFromInitializerIsError(t *testing.T) {
	stmts := parseOK(t, `class A { init() { return 1; } }`)
	_, err := resolver.New().Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initializer")
}

func TestResolve_ThisOutsideClassIsError(t *testing.T) {
	stmts := parseOK(t, `print this;`)
	_, err := resolver.New().Resolve(stmts)
	require.Error(t, err)
}

func TestResolve_SuperWithoutSuperclassIsError(t *testing.T) {
	stmts := parseOK(t, `class A { speak() { super.speak(); } }`)
	_, err := resolver.New().Resolve(stmts)
	require.Error(t, err)
}

func TestResolve_ClassInheritingItselfIsError(t *testing.T) {
	stmts := parseOK(t, `class A < A {}`)
	_, err := resolver.New().Resolve(stmts)
	require.Error(t, err)
}

func TestResolve_LaterShadowingKeepsGlobalResolution(t *testing.T) {
	// mirrors spec.md §8 scenario 3: the resolver resolves show()'s body
	// where show is declared, which is before "var a = local" is
	// declared, so "a" in show resolves to the global (no distance).
	stmts := parseOK(t, `
		var a = "global";
		{
			fun show() { print a; }
			show();
			var a = "local";
			show();
		}
	`)
	distances, err := resolver.New().Resolve(stmts)
	require.NoError(t, err)

	block := stmts[1].(*ast.BlockStmt)
	show := block.Statements[0].(*ast.FunctionStmt)
	varExpr := show.Body[0].(*ast.PrintStmt).Expression.(*ast.VarExpr)
	_, ok := distances[varExpr]
	assert.False(t, ok)
}
