/*
File    : lox-mix/object/instance.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"fmt"
	"sync/atomic"
)

var nextInstanceID int64

// Instance is a live object of some Class: a field map plus a
// back-reference to its class for method resolution. id is a
// process-unique sequential number assigned at construction, used in
// place of a real memory address in the printed form; stable and
// testable, unlike an actual pointer value.
type Instance struct {
	Class  *Class
	Fields map[string]Value
	id     int64
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value), id: atomic.AddInt64(&nextInstanceID, 1)}
}

func (i *Instance) Type() Type { return InstanceType }

func (i *Instance) ToString() string {
	return fmt.Sprintf("%s instance #%d", i.Class.ClassName, i.id)
}

func (i *Instance) ToObject() string { return i.ToString() }

// Get looks up fields first, then methods (bound to this instance),
// recursively through superclasses.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set always writes an instance field, never a class method.
func (i *Instance) Set(name string, v Value) {
	i.Fields[name] = v
}
