/*
File    : golox/interp/interpreter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/interp"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run lexes, parses, resolves, and interprets src, returning combined
// stdout and any runtime error.
func run(t *testing.T, src string) (string, error) {
	t.Helper()

	lex := lexer.New(src)
	toks := lex.ScanTokens()
	require.False(t, lex.HasErrors(), lex.Errors())

	p := parser.New(toks)
	stmts, err := p.Parse()
	require.NoError(t, err)

	var distances map[ast.Expr]int
	distances, err = resolver.New().Resolve(stmts)
	require.NoError(t, err)

	var buf bytes.Buffer
	i := interp.New(&buf)
	err = i.Interpret(stmts, distances)
	return buf.String(), err
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestScenario_ArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, lines(out))
}

func TestScenario_CounterClosure(t *testing.T) {
	out, err := run(t, `
		fun make() { var i = 0; fun inc() { i = i + 1; return i; } return inc; }
		var c = make(); print c(); print c(); print c();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, lines(out))
}

func TestScenario_StaticResolutionShadowing(t *testing.T) {
	out, err := run(t, `
		var a = "global";
		{ fun show() { print a; } show(); var a = "local"; show(); }
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"global", "global"}, lines(out))
}

func TestScenario_InheritanceAndSuper(t *testing.T) {
	out, err := run(t, `
		class A { speak() { print "A"; } }
		class B < A { speak() { super.speak(); print "B"; } }
		B().speak();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, lines(out))
}

func TestScenario_InitializerReturnsInstance(t *testing.T) {
	out, err := run(t, `
		class P { init(x) { this.x = x; } }
		var p = P(42); print p.x;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, lines(out))
}

func TestScenario_RuntimeTypeError(t *testing.T) {
	_, err := run(t, `print "a" + 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operands must be")
	assert.Contains(t, err.Error(), "[line 1]")
}

func TestInitializer_EarlyReturnStillYieldsInstance(t *testing.T) {
	out, err := run(t, `
		class P {
			init(x) {
				this.x = x;
				if (x > 0) return;
				this.x = -1;
			}
		}
		var p = P(5);
		print p.x;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, lines(out))
}

func TestDivisionByZero_IsNotRuntimeError(t *testing.T) {
	out, err := run(t, `print 1 / 0; print -1 / 0; print 0 / 0;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Infinity", "-Infinity", "NaN"}, lines(out))
}

func TestAndOr_ReturnOperandValueNotBool(t *testing.T) {
	out, err := run(t, `print nil or "default"; print 1 and 2;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "2"}, lines(out))
}

func TestArityMismatch_IsRuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1")
}

func TestUndefinedVariable_IsRuntimeError(t *testing.T) {
	_, err := run(t, `print x;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable")
}

func TestClassStringification(t *testing.T) {
	out, err := run(t, `
		class Foo {}
		print Foo;
		print Foo();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo", "Foo instance"}, lines(out))
}

func TestGlobalRedefinitionIsPermitted(t *testing.T) {
	out, err := run(t, `var a = 1; var a = 2; print a;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, lines(out))
}
