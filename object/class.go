/*
File    : golox/object/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

// Class is a LoxClass: a name, an optional superclass, and a method
// table. Method lookup walks the superclass chain. Grounded on
// objects.GoMixStruct (objects/struct.go), extended with Superclass,
// which is new code since GoMix structs never inherit.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) String() string { return c.Name }

// FindMethod looks up name on c, then on each ancestor in turn.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of "init", or 0 if the class has no initializer.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}
