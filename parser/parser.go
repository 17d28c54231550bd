/*
File    : golox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser for Lox,
// following the grammar's precedence cascade exactly. Grounded on the
// teacher's Parser struct shape (a token cursor plus a collected error
// list) from parser/parser.go; here the first parse error is recorded
// and unwinds out of Parse via a recovered panic. The per-precedence
// methods themselves are new since Lox's grammar is a fixed cascade
// rather than the teacher's Pratt-style operator-precedence maps.
package parser

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/token"
)

const maxArgs = 255

// Parser converts a token slice into a list of statements. Per
// spec.md §1 Non-goals, there is no error synchronisation: the first
// parse error aborts the whole parse.
type Parser struct {
	tokens  []token.Token
	current int
	errors  []string
}

// New creates a Parser over tokens (which must be EOF-terminated, as
// produced by lexer.Lexer.ScanTokens).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// HasErrors reports whether parsing recorded any error.
func (p *Parser) HasErrors() bool {
	return len(p.errors) > 0
}

// Errors returns every collected parse error.
func (p *Parser) Errors() []string {
	return p.errors
}

// parseAbort is the panic payload used to unwind out of a partially
// parsed declaration/statement once an error has been recorded; there
// is no synchronisation, so it always propagates out of Parse.
type parseAbort struct{ err error }

// Parse runs program → declaration* EOF, returning the parsed
// statements, or nil and the first parse error.
func (p *Parser) Parse() (stmts []ast.Stmt, err error) {
	defer func() {
		if r := recover(); r != nil {
			abort, ok := r.(parseAbort)
			if !ok {
				panic(r)
			}
			stmts, err = nil, abort.err
		}
	}()

	for !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	return stmts, nil
}

func (p *Parser) fail(tok token.Token, message string) parseAbort {
	where := "end"
	if tok.Kind != token.EOF {
		where = fmt.Sprintf("'%s'", tok.Lexeme)
	}
	e := &loxerr.ParseError{Line: tok.Line, Where: where, Message: message}
	p.errors = append(p.errors, e.Error())
	return parseAbort{err: e}
}

// --- token cursor helpers ---

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return kind == token.EOF
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.fail(p.peek(), message))
}

// --- declarations ---

func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.match(token.Var):
		return p.varDecl()
	case p.match(token.Fun):
		return p.function("function")
	case p.match(token.Class):
		return p.classDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) varDecl() ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name.")
	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.Identifier, fmt.Sprintf("Expect %s name.", kind))
	p.consume(token.LeftParen, fmt.Sprintf("Expect '(' after %s name.", kind))
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				panic(p.fail(p.peek(), fmt.Sprintf("Can't have more than %d parameters.", maxArgs)))
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")
	p.consume(token.LeftBrace, fmt.Sprintf("Expect '{' before %s body.", kind))
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) classDecl() ast.Stmt {
	name := p.consume(token.Identifier, "Expect class name.")

	var superclass *ast.VarExpr
	if p.match(token.Less) {
		superName := p.consume(token.Identifier, "Expect superclass name.")
		superclass = &ast.VarExpr{Name: superName}
	}

	p.consume(token.LeftBrace, "Expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RightBrace, "Expect '}' after class body.")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// --- statements ---

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStmt()
	case p.match(token.LeftBrace):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(token.If):
		return p.ifStmt()
	case p.match(token.While):
		return p.whileStmt()
	case p.match(token.For):
		return p.forStmt()
	case p.match(token.Return):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) printStmt() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStmt() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")
	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: cond, Then: then, ElseBranch: elseBranch}
}

func (p *Parser) whileStmt() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Condition: cond, Body: body}
}

// forStmt desugars "for (I; C; U) B" into "{ I; while (C) { B; U; } }"
// per spec.md §4.2, with a missing C treated as literal true, a
// missing I simply omitted, and a missing U leaving the inner block
// as plain B.
func (p *Parser) forStmt() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.check(token.Var):
		p.advance()
		initializer = p.varDecl()
	default:
		initializer = p.exprStmt()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// --- expressions ---

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment reinterprets the already-parsed left-hand side: a
// VarExpr becomes an Assign, a Get becomes a Set; anything else is a
// parse error, per spec.md §4.2.
func (p *Parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VarExpr:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			panic(p.fail(equals, "Invalid assignment target."))
		}
	}
	return expr
}

func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.Or) {
		op := p.previous()
		right := p.logicAnd()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.EqualEqual, token.BangEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Less, token.LessEqual, token.Greater, token.GreaterEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Star, token.Slash) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LeftParen):
			expr = p.finishCall(expr)
		case p.match(token.Dot):
			name := p.consume(token.Identifier, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				panic(p.fail(p.peek(), fmt.Sprintf("Can't have more than %d arguments.", maxArgs)))
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: false}
	case p.match(token.True):
		return &ast.Literal{Value: true}
	case p.match(token.Nil):
		return &ast.Literal{Value: nil}
	case p.match(token.Number, token.String):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.This):
		return &ast.This{Keyword: p.previous()}
	case p.match(token.Super):
		keyword := p.previous()
		p.consume(token.Dot, "Expect '.' after 'super'.")
		method := p.consume(token.Identifier, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(token.Identifier):
		return &ast.VarExpr{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	default:
		panic(p.fail(p.peek(), "Expect expression."))
	}
}
