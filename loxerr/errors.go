/*
File    : golox/loxerr/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package loxerr defines the three disjoint static error classes and
// the runtime error type, grounded on the teacher's "attach position,
// propagate, print once" shape (objects.Error, Evaluator.CreateError)
// but adapted to Go's error interface instead of a threaded sentinel
// value.
package loxerr

import (
	"fmt"

	"github.com/akashmaji946/golox/token"
)

// LexError reports a problem found while scanning, at a source line.
type LexError struct {
	Line    int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// ParseError reports a problem found while parsing tokens into an AST.
type ParseError struct {
	Line    int
	Where   string
	Message string
}

func (e *ParseError) Error() string {
	if e.Where != "" {
		return fmt.Sprintf("[line %d] Error at %s: %s", e.Line, e.Where, e.Message)
	}
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// ResolveError reports a static scoping violation found by the
// resolver before any evaluation happens.
type ResolveError struct {
	Line    int
	Message string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// RuntimeError is raised by the evaluator. It carries the offending
// token so the top-level boundary can print a line number alongside
// the message, per spec.md §7.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// NewRuntimeError is a small convenience constructor mirroring
// Evaluator.CreateError's format-then-attach-position pattern.
func NewRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
