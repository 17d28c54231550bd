/*
File    : golox/object/instance.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/token"
)

// Instance is a LoxInstance: a class pointer and its own field map.
// Fields shadow methods of the same name; methods are never stored in
// Fields. Grounded on objects.GoMixObjectInstance (objects/struct.go).
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance creates a zero-field instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (i *Instance) String() string {
	return i.Class.Name + " instance"
}

// Get implements spec.md §4.5 property access: fields first, then the
// method table (bound to this instance). Neither path needs the
// interpreter.
func (i *Instance) Get(name token.Token) (Value, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if m, ok := i.Class.FindMethod(name.Lexeme); ok {
		return m.Bind(i), nil
	}
	return nil, loxerr.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

// Set always writes into Fields, creating the field on first write.
func (i *Instance) Set(name token.Token, value Value) {
	i.Fields[name.Lexeme] = value
}
