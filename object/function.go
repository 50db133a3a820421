/*
File    : lox-mix/object/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"fmt"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/token"
)

// Function is a user-defined Lox function, method, or lambda: a
// closure pairing an AST body with the environment active when it was
// declared. The interpreter is the only thing that knows how to
// execute one (via its Params/Body/Closure); Function itself is a
// data holder.
type Function struct {
	FnName        string
	Params        []token.Token
	Body          []ast.Stmt
	Closure       Env
	IsInitializer bool
}

func NewFunction(name string, params []token.Token, body []ast.Stmt, closure Env, isInit bool) *Function {
	return &Function{FnName: name, Params: params, Body: body, Closure: closure, IsInitializer: isInit}
}

func (f *Function) Type() Type   { return FunctionType }
func (f *Function) Arity() int   { return len(f.Params) }
func (f *Function) Name() string { return f.FnName }
func (f *Function) ToString() string {
	if f.FnName == "" {
		return "<lambda>"
	}
	return fmt.Sprintf("<fn %s>", f.FnName)
}
func (f *Function) ToObject() string { return f.ToString() }

// Bind returns a copy of f whose closure gains one more frame binding
// `this` to instance; this is how `instance.method` and `super.method`
// produce a callable with the right receiver.
func (f *Function) Bind(instance *Instance) *Function {
	env := f.Closure.NewChild()
	env.Define("this", instance)
	return NewFunction(f.FnName, f.Params, f.Body, env, f.IsInitializer)
}
