/*
File    : lox-mix/object/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import "fmt"

// Callable is implemented by anything invocable from a Call
// expression: user functions, bound methods, classes (as
// constructors), and built-ins.
type Callable interface {
	Value
	Arity() int
	Name() string
}

// Builtin wraps a native Go function as a callable Lox value. Fn
// receives already-evaluated arguments and returns a Value or an
// error (surfaced to the interpreter as a runtime error). Arity of -1
// means variadic: Fn is responsible for validating argument count.
type Builtin struct {
	FnName  string
	FnArity int
	Fn      func(args []Value) (Value, error)
}

func NewBuiltin(name string, arity int, fn func(args []Value) (Value, error)) *Builtin {
	return &Builtin{FnName: name, FnArity: arity, Fn: fn}
}

func (b *Builtin) Type() Type       { return BuiltinType }
func (b *Builtin) Arity() int       { return b.FnArity }
func (b *Builtin) Name() string     { return b.FnName }
func (b *Builtin) ToString() string { return fmt.Sprintf("<native fn %s>", b.FnName) }
func (b *Builtin) ToObject() string { return b.ToString() }

// Call invokes the wrapped function, validating arity first unless
// the builtin is variadic.
func (b *Builtin) Call(args []Value) (Value, error) {
	if b.FnArity >= 0 && len(args) != b.FnArity {
		return nil, fmt.Errorf("%s expected %d argument(s) but got %d", b.FnName, b.FnArity, len(args))
	}
	return b.Fn(args)
}
