/*
File    : lox-mix/interpreter/interpreter_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/object"
	"github.com/akashmaji946/lox-mix/token"
)

var _ ast.ExprVisitor = (*Interpreter)(nil)

// Visit* expression methods return either an object.Value (success)
// or an error; ast.ExprVisitor's interface{} return makes both
// representable without a second return channel; evaluate() sorts
// them back out.

func (in *Interpreter) VisitLiteral(e *ast.Literal) interface{} {
	return literalToValue(e.Value)
}

func literalToValue(v interface{}) object.Value {
	switch t := v.(type) {
	case nil:
		return object.NilValue
	case bool:
		return object.BoolOf(t)
	case int64:
		return &object.Integer{Value: t}
	case float64:
		return &object.Float{Value: t}
	case string:
		return object.NewString(t)
	default:
		return object.NilValue
	}
}

func (in *Interpreter) VisitGrouping(e *ast.Grouping) interface{} {
	v, err := in.evaluate(e.Expression)
	if err != nil {
		return err
	}
	return v
}

func (in *Interpreter) VisitVariable(e *ast.Variable) interface{} {
	v, err := in.lookupVariable(e, e.Name)
	if err != nil {
		return err
	}
	return v
}

func (in *Interpreter) VisitAssign(e *ast.Assign) interface{} {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return err
	}
	if d, ok := in.depths[e.ID()]; ok {
		if in.env.AssignAt(d, e.Name.Lexeme, value) {
			return value
		}
		return runtimeErrorf(e.Name, "undefined variable '%s'", e.Name.Lexeme)
	}
	if in.Globals.Assign(e.Name.Lexeme, value) {
		return value
	}
	return runtimeErrorf(e.Name, "undefined variable '%s'", e.Name.Lexeme)
}

func (in *Interpreter) VisitLogical(e *ast.Logical) interface{} {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return err
	}
	if e.Op.Kind == token.OR {
		if object.Truthy(left) {
			return left
		}
	} else {
		if !object.Truthy(left) {
			return left
		}
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return err
	}
	return right
}

func (in *Interpreter) VisitUnary(e *ast.Unary) interface{} {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return err
	}
	switch e.Op.Kind {
	case token.BANG:
		return object.BoolOf(!object.Truthy(right))
	case token.MINUS:
		switch n := right.(type) {
		case *object.Integer:
			return &object.Integer{Value: -n.Value}
		case *object.Float:
			return &object.Float{Value: -n.Value}
		}
		return runtimeErrorf(e.Op, "operand must be a number")
	}
	return runtimeErrorf(e.Op, "unknown unary operator '%s'", e.Op.Lexeme)
}

func (in *Interpreter) VisitBinary(e *ast.Binary) interface{} {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return err
	}
	v, evalErr := evalBinary(e.Op, left, right)
	if evalErr != nil {
		return evalErr
	}
	return v
}

func (in *Interpreter) VisitCall(e *ast.Call) interface{} {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return err
	}

	args := make([]object.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return err
		}
		args[i] = v
	}

	result, callErr := in.callValue(e.Paren, callee, args)
	if callErr != nil {
		return callErr
	}
	return result
}

func (in *Interpreter) VisitGet(e *ast.Get) interface{} {
	object_, err := in.evaluate(e.Object)
	if err != nil {
		return err
	}
	v, getErr := in.getProperty(e.Name, object_)
	if getErr != nil {
		return getErr
	}
	return v
}

func (in *Interpreter) VisitSet(e *ast.Set) interface{} {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return err
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		return runtimeErrorf(e.Name, "only instances have fields")
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		return err
	}
	instance.Set(e.Name.Lexeme, value)
	return value
}

func (in *Interpreter) VisitThis(e *ast.This) interface{} {
	v, err := in.lookupVariable(e, e.Keyword)
	if err != nil {
		return err
	}
	return v
}

// VisitSuper resolves `super.method` one frame further out than
// `this` (the resolver opens the "super" scope around the "this"
// scope, so the two distances differ by exactly one), then binds the
// found method to the current `this`.
func (in *Interpreter) VisitSuper(e *ast.Super) interface{} {
	distance, ok := in.depths[e.ID()]
	if !ok {
		return runtimeErrorf(e.Keyword, "'super' used outside a resolvable scope")
	}
	superVal, _ := in.env.GetAt(distance, "super")
	superclass, ok := superVal.(*object.Class)
	if !ok {
		return runtimeErrorf(e.Keyword, "'super' is not bound to a class")
	}

	thisVal, _ := in.env.GetAt(distance-1, "this")
	instance, ok := thisVal.(*object.Instance)
	if !ok {
		return runtimeErrorf(e.Keyword, "'this' is not bound to an instance")
	}

	method, found := superclass.FindMethod(e.Method.Lexeme)
	if !found {
		return runtimeErrorf(e.Method, "undefined property '%s'", e.Method.Lexeme)
	}
	return method.Bind(instance)
}

func (in *Interpreter) VisitLambda(e *ast.Lambda) interface{} {
	return object.NewFunction("", e.Params, e.Body, in.env, false)
}
