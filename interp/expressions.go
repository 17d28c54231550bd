/*
File    : golox/interp/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/object"
	"github.com/akashmaji946/golox/token"
)

func (i *Interpreter) evaluate(expr ast.Expr) (object.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return i.evaluate(e.Inner)

	case *ast.VarExpr:
		return i.lookUpVariable(e.Name, e)

	case *ast.Assign:
		value, err := i.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if d, ok := i.distances[e]; ok {
			i.environment.AssignAt(d, e.Name.Lexeme, value)
		} else if err := i.globals.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.Unary:
		right, err := i.evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Op.Kind {
		case token.Minus:
			n, ok := right.(float64)
			if !ok {
				return nil, loxerr.NewRuntimeError(e.Op, "Operand must be a number.")
			}
			return -n, nil
		case token.Bang:
			return !object.IsTruthy(right), nil
		}
		panic("interp: unhandled unary operator " + e.Op.Lexeme)

	case *ast.Binary:
		return i.evaluateBinary(e)

	case *ast.Logical:
		left, err := i.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Op.Kind == token.Or {
			if object.IsTruthy(left) {
				return left, nil
			}
		} else {
			if !object.IsTruthy(left) {
				return left, nil
			}
		}
		return i.evaluate(e.Right)

	case *ast.Call:
		return i.evaluateCall(e)

	case *ast.Get:
		obj, err := i.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*object.Instance)
		if !ok {
			return nil, loxerr.NewRuntimeError(e.Name, "Only instances have properties.")
		}
		return instance.Get(e.Name)

	case *ast.Set:
		obj, err := i.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*object.Instance)
		if !ok {
			return nil, loxerr.NewRuntimeError(e.Name, "Only instances have fields.")
		}
		value, err := i.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		instance.Set(e.Name, value)
		return value, nil

	case *ast.This:
		return i.lookUpVariable(e.Keyword, e)

	case *ast.Super:
		return i.evaluateSuper(e)

	default:
		panic("interp: unhandled expression type")
	}
}

func (i *Interpreter) evaluateBinary(e *ast.Binary) (object.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Plus:
		if lf, ok := left.(float64); ok {
			if rf, ok := right.(float64); ok {
				return lf + rf, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, loxerr.NewRuntimeError(e.Op, "Operands must be two numbers or two strings.")

	case token.Minus:
		lf, rf, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return lf - rf, nil

	case token.Star:
		lf, rf, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return lf * rf, nil

	case token.Slash:
		lf, rf, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return lf / rf, nil // IEEE-754: division by zero is not a runtime error.

	case token.Greater:
		lf, rf, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return lf > rf, nil

	case token.GreaterEqual:
		lf, rf, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return lf >= rf, nil

	case token.Less:
		lf, rf, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return lf < rf, nil

	case token.LessEqual:
		lf, rf, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return lf <= rf, nil

	case token.EqualEqual:
		return object.Equal(left, right), nil

	case token.BangEqual:
		return !object.Equal(left, right), nil
	}
	panic("interp: unhandled binary operator " + e.Op.Lexeme)
}

func numberOperands(op token.Token, left, right object.Value) (float64, float64, error) {
	lf, lok := left.(float64)
	rf, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, loxerr.NewRuntimeError(op, "Operands must be numbers.")
	}
	return lf, rf, nil
}

func (i *Interpreter) evaluateCall(e *ast.Call) (object.Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *object.NativeFunction:
		if len(args) != fn.Arity() {
			return nil, arityError(e.Paren, fn.Arity(), len(args))
		}
		return fn.Function(args)
	case *object.Function:
		if len(args) != fn.Arity() {
			return nil, arityError(e.Paren, fn.Arity(), len(args))
		}
		return i.callFunction(fn, args)
	case *object.Class:
		if len(args) != fn.Arity() {
			return nil, arityError(e.Paren, fn.Arity(), len(args))
		}
		return i.instantiate(fn, args)
	default:
		return nil, loxerr.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
}

func arityError(paren token.Token, want, got int) error {
	return loxerr.NewRuntimeError(paren, "Expected %d arguments but got %d.", want, got)
}

// evaluateSuper resolves "super.method" using the two distances the
// resolver records for it: the superclass sits at the recorded
// distance, "this" sits one frame closer, per spec.md §4.5.
func (i *Interpreter) evaluateSuper(e *ast.Super) (object.Value, error) {
	distance := i.distances[e]
	superclass := i.environment.GetAt(distance, "super").(*object.Class)
	instance := i.environment.GetAt(distance-1, "this").(*object.Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
