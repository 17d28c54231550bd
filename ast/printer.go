/*
File    : golox/ast/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// Printer is a debug visitor producing an indented tree dump of an
// expression or statement, in the spirit of the teacher's
// PrintingVisitor (print_visitor.go), used only for tooling/debugging,
// never by the resolver or interpreter, which dispatch via type switch.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
	p.buf.WriteString(fmt.Sprintf(format, args...))
	p.buf.WriteString("\n")
}

// PrintExpr renders expr as an indented tree and returns the result.
func PrintExpr(expr Expr) string {
	p := &Printer{}
	expr.AcceptExpr(p)
	return p.buf.String()
}

// PrintStmt renders stmt as an indented tree and returns the result.
func PrintStmt(stmt Stmt) string {
	p := &Printer{}
	stmt.AcceptStmt(p)
	return p.buf.String()
}

func (p *Printer) descend(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

func (p *Printer) VisitLiteral(e *Literal) interface{} {
	p.writeLine("Literal(%v)", e.Value)
	return nil
}

func (p *Printer) VisitUnary(e *Unary) interface{} {
	p.writeLine("Unary(%s)", e.Op.Lexeme)
	p.descend(func() { e.Right.AcceptExpr(p) })
	return nil
}

func (p *Printer) VisitBinary(e *Binary) interface{} {
	p.writeLine("Binary(%s)", e.Op.Lexeme)
	p.descend(func() {
		e.Left.AcceptExpr(p)
		e.Right.AcceptExpr(p)
	})
	return nil
}

func (p *Printer) VisitLogical(e *Logical) interface{} {
	p.writeLine("Logical(%s)", e.Op.Lexeme)
	p.descend(func() {
		e.Left.AcceptExpr(p)
		e.Right.AcceptExpr(p)
	})
	return nil
}

func (p *Printer) VisitGrouping(e *Grouping) interface{} {
	p.writeLine("Grouping")
	p.descend(func() { e.Inner.AcceptExpr(p) })
	return nil
}

func (p *Printer) VisitVarExpr(e *VarExpr) interface{} {
	p.writeLine("Var(%s)", e.Name.Lexeme)
	return nil
}

func (p *Printer) VisitAssign(e *Assign) interface{} {
	p.writeLine("Assign(%s)", e.Name.Lexeme)
	p.descend(func() { e.Value.AcceptExpr(p) })
	return nil
}

func (p *Printer) VisitCall(e *Call) interface{} {
	p.writeLine("Call(%d args)", len(e.Args))
	p.descend(func() {
		e.Callee.AcceptExpr(p)
		for _, a := range e.Args {
			a.AcceptExpr(p)
		}
	})
	return nil
}

func (p *Printer) VisitGet(e *Get) interface{} {
	p.writeLine("Get(%s)", e.Name.Lexeme)
	p.descend(func() { e.Object.AcceptExpr(p) })
	return nil
}

func (p *Printer) VisitSet(e *Set) interface{} {
	p.writeLine("Set(%s)", e.Name.Lexeme)
	p.descend(func() {
		e.Object.AcceptExpr(p)
		e.Value.AcceptExpr(p)
	})
	return nil
}

func (p *Printer) VisitThis(e *This) interface{} {
	p.writeLine("This")
	return nil
}

func (p *Printer) VisitSuper(e *Super) interface{} {
	p.writeLine("Super(%s)", e.Method.Lexeme)
	return nil
}

func (p *Printer) VisitExpressionStmt(s *ExpressionStmt) interface{} {
	p.writeLine("ExpressionStmt")
	p.descend(func() { s.Expression.AcceptExpr(p) })
	return nil
}

func (p *Printer) VisitPrintStmt(s *PrintStmt) interface{} {
	p.writeLine("PrintStmt")
	p.descend(func() { s.Expression.AcceptExpr(p) })
	return nil
}

func (p *Printer) VisitVarStmt(s *VarStmt) interface{} {
	p.writeLine("VarStmt(%s)", s.Name.Lexeme)
	if s.Initializer != nil {
		p.descend(func() { s.Initializer.AcceptExpr(p) })
	}
	return nil
}

func (p *Printer) VisitBlockStmt(s *BlockStmt) interface{} {
	p.writeLine("BlockStmt")
	p.descend(func() {
		for _, st := range s.Statements {
			st.AcceptStmt(p)
		}
	})
	return nil
}

func (p *Printer) VisitIfStmt(s *IfStmt) interface{} {
	p.writeLine("IfStmt")
	p.descend(func() {
		s.Condition.AcceptExpr(p)
		s.Then.AcceptStmt(p)
		if s.ElseBranch != nil {
			s.ElseBranch.AcceptStmt(p)
		}
	})
	return nil
}

func (p *Printer) VisitWhileStmt(s *WhileStmt) interface{} {
	p.writeLine("WhileStmt")
	p.descend(func() {
		s.Condition.AcceptExpr(p)
		s.Body.AcceptStmt(p)
	})
	return nil
}

func (p *Printer) VisitFunctionStmt(s *FunctionStmt) interface{} {
	p.writeLine("FunctionStmt(%s, %d params)", s.Name.Lexeme, len(s.Params))
	p.descend(func() {
		for _, st := range s.Body {
			st.AcceptStmt(p)
		}
	})
	return nil
}

func (p *Printer) VisitReturnStmt(s *ReturnStmt) interface{} {
	p.writeLine("ReturnStmt")
	if s.Value != nil {
		p.descend(func() { s.Value.AcceptExpr(p) })
	}
	return nil
}

func (p *Printer) VisitClassStmt(s *ClassStmt) interface{} {
	if s.Superclass != nil {
		p.writeLine("ClassStmt(%s < %s)", s.Name.Lexeme, s.Superclass.Name.Lexeme)
	} else {
		p.writeLine("ClassStmt(%s)", s.Name.Lexeme)
	}
	p.descend(func() {
		for _, m := range s.Methods {
			m.AcceptStmt(p)
		}
	})
	return nil
}
