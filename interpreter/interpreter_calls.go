/*
File    : lox-mix/interpreter/interpreter_calls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/lox-mix/environment"
	"github.com/akashmaji946/lox-mix/object"
	"github.com/akashmaji946/lox-mix/token"
)

// callValue implements the call protocol for the three callable value
// kinds: user functions/lambdas/methods, classes (invoked as
// constructors), and native builtins.
func (in *Interpreter) callValue(paren token.Token, callee object.Value, args []object.Value) (object.Value, error) {
	switch c := callee.(type) {
	case *object.Function:
		return in.callFunction(paren, c, args)
	case *object.Class:
		return in.callClass(paren, c, args)
	case *object.Builtin:
		v, err := c.Call(args)
		if err != nil {
			return nil, runtimeErrorf(paren, "%s", err.Error())
		}
		return v, nil
	default:
		return nil, runtimeErrorf(paren, "can only call functions and classes")
	}
}

func (in *Interpreter) callFunction(paren token.Token, fn *object.Function, args []object.Value) (object.Value, error) {
	if len(args) != fn.Arity() {
		return nil, runtimeErrorf(paren, "expected %d argument(s) but got %d", fn.Arity(), len(args))
	}
	closureEnv, ok := fn.Closure.(*environment.Environment)
	if !ok {
		return nil, runtimeErrorf(paren, "internal error: function closure is not a frame")
	}

	callEnv := environment.NewEnclosedBy(closureEnv)
	for i, p := range fn.Params {
		callEnv.Define(p.Lexeme, args[i])
	}

	var result object.Value = object.NilValue
	if err := in.executeBlock(fn.Body, callEnv); err != nil {
		rs, isReturn := err.(returnSignal)
		if !isReturn {
			return nil, err
		}
		result = rs.Value
	}

	// An initializer always yields the bound `this`, whatever its body
	// returned.
	if fn.IsInitializer {
		if this, ok := closureEnv.Get("this"); ok {
			return this, nil
		}
		return nil, runtimeErrorf(paren, "internal error: initializer has no bound 'this'")
	}
	return result, nil
}

func (in *Interpreter) callClass(paren token.Token, cls *object.Class, args []object.Value) (object.Value, error) {
	if len(args) != cls.Arity() {
		return nil, runtimeErrorf(paren, "expected %d argument(s) but got %d", cls.Arity(), len(args))
	}
	instance := object.NewInstance(cls)
	if init, ok := cls.FindMethod("init"); ok {
		if _, err := in.callFunction(paren, init.Bind(instance), args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// getProperty implements member-access dispatch: instances expose
// fields then bound methods, while array/hash/string values and the
// requests() client expose their native method tables.
func (in *Interpreter) getProperty(name token.Token, receiver object.Value) (object.Value, error) {
	switch r := receiver.(type) {
	case *object.Instance:
		if v, ok := r.Get(name.Lexeme); ok {
			return v, nil
		}
		return nil, runtimeErrorf(name, "undefined property '%s'", name.Lexeme)
	case *object.Array:
		if m, ok := r.Method(name.Lexeme); ok {
			return m, nil
		}
		return nil, runtimeErrorf(name, "undefined property '%s'", name.Lexeme)
	case *object.Hash:
		if m, ok := r.Method(name.Lexeme); ok {
			return m, nil
		}
		return nil, runtimeErrorf(name, "undefined property '%s'", name.Lexeme)
	case *object.String:
		if m, ok := r.Method(name.Lexeme); ok {
			return m, nil
		}
		return nil, runtimeErrorf(name, "undefined property '%s'", name.Lexeme)
	case *object.HTTPClient:
		if m, ok := r.Method(name.Lexeme); ok {
			return m, nil
		}
		return nil, runtimeErrorf(name, "undefined property '%s'", name.Lexeme)
	default:
		return nil, runtimeErrorf(name, "only instances and containers have properties")
	}
}
