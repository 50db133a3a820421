/*
File    : lox-mix/object/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import "fmt"

// Class is a single-inheritance Lox class: a name, an optional
// superclass, and a method table. Calling a Class as a constructor is
// handled by the interpreter (it needs to run `init`); Class itself
// only holds the method-resolution logic shared by instance field
// lookup and `super`.
type Class struct {
	ClassName  string
	Superclass *Class
	Methods    map[string]*Function
}

func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{ClassName: name, Superclass: superclass, Methods: methods}
}

func (c *Class) Type() Type   { return ClassType }
func (c *Class) Name() string { return c.ClassName }

// Arity is the arity of `init`, or 0 for a class with no initializer.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

func (c *Class) ToString() string { return fmt.Sprintf("<class %s>", c.ClassName) }
func (c *Class) ToObject() string { return c.ToString() }

// FindMethod looks up name on c, then recursively up the superclass
// chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}
