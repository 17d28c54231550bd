/*
File    : golox/object/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines the Lox runtime value model: the tagged sum
// of Nil/Bool/Number/String/Callable/Instance from spec.md §3,
// grounded on objects.GoMixObject (objects/objects.go),
// objects.GoMixStruct (objects/struct.go), and function.Function
// (function/function.go). Numbers, strings, and booleans are
// represented directly as Go's float64/string/bool rather than boxed
// wrapper structs the way the teacher boxes Integer/Float/String/
// Boolean, since Lox's dynamic typing maps onto Go's interface{}
// without needing a GetType() tag, a type switch on the concrete Go
// type already IS the tag.
package object

// Value is any Lox runtime value: nil, bool, float64, string,
// *NativeFunction, *Function, *Class, or *Instance.
type Value = interface{}

// NativeFunction is a host-provided callable, e.g. clock().
type NativeFunction struct {
	Name     string
	ArityN   int
	Function func(args []Value) (Value, error)
}

func (n *NativeFunction) Arity() int { return n.ArityN }

func (n *NativeFunction) String() string {
	return "<native fn " + n.Name + ">"
}

// IsTruthy implements Lox truthiness: nil and false are falsey,
// everything else (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal implements Lox's "==": value equality for numbers, strings,
// and booleans; nil equals only nil; everything else compares by
// reference identity (Go's == on interface values already does this
// for pointer-typed Callable/Instance values).
func Equal(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aIsNum := a.(float64)
	bn, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		return an == bn
	}
	return a == b
}
