/*
File    : lox-mix/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the lexical frame chain the
// interpreter evaluates against: a parent-pointer chain of variable
// maps. Frames are shared by pointer and never copied: two closures
// capturing the same environment must see each other's mutations, and
// the garbage collector keeps a captured frame alive for exactly as
// long as some closure still references it.
package environment

import (
	"fmt"

	"github.com/akashmaji946/lox-mix/object"
)

// Environment is one lexical scope frame.
type Environment struct {
	values map[string]object.Value
	parent *Environment
}

// New creates a root (global) environment with no parent.
func New() *Environment {
	return &Environment{values: make(map[string]object.Value)}
}

// NewEnclosedBy creates a child frame of parent.
func NewEnclosedBy(parent *Environment) *Environment {
	return &Environment{values: make(map[string]object.Value), parent: parent}
}

// NewChild satisfies object.Env so Function.Bind can extend a closure
// without this package's concrete type leaking into package object.
func (e *Environment) NewChild() object.Env {
	return NewEnclosedBy(e)
}

// Define binds name in this frame only, shadowing any outer binding
// of the same name.
func (e *Environment) Define(name string, v object.Value) {
	e.values[name] = v
}

// Get looks up name by walking the frame chain to the root; used for
// globals, which the resolver never assigns a depth to.
func (e *Environment) Get(name string) (object.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// ancestor walks exactly distance frames up the chain.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.parent
	}
	return env
}

// GetAt reads name at exactly distance frames up, per the resolver's
// precomputed scope distance.
func (e *Environment) GetAt(distance int, name string) (object.Value, bool) {
	v, ok := e.ancestor(distance).values[name]
	return v, ok
}

// AssignAt writes name at exactly distance frames up.
func (e *Environment) AssignAt(distance int, name string, v object.Value) bool {
	env := e.ancestor(distance)
	if _, ok := env.values[name]; !ok {
		return false
	}
	env.values[name] = v
	return true
}

// Assign updates name in the frame where it was originally defined,
// walking outward from here; it does not create a new binding (use
// Define for that). Returns false if name is undefined anywhere in
// the chain.
func (e *Environment) Assign(name string, v object.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, v)
	}
	return false
}

// Root walks to the outermost (global) frame.
func (e *Environment) Root() *Environment {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	return env
}

var _ object.Env = (*Environment)(nil)

// ErrUndefined builds the "name was never bound anywhere" error
// (global lookup failure); each call returns a new error value.
func ErrUndefined(name string) error {
	return fmt.Errorf("undefined variable '%s'", name)
}
