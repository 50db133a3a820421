/*
File    : lox-mix/resolver/resolver_expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import "github.com/akashmaji946/lox-mix/ast"

var _ ast.ExprVisitor = (*Resolver)(nil)

func (r *Resolver) resolveExpr(e ast.Expr) {
	ast.Accept(e, r)
}

func (r *Resolver) VisitVariable(e *ast.Variable) interface{} {
	if s := r.peekScope(); s != nil {
		if initialized, declared := s[e.Name.Lexeme]; declared && !initialized {
			r.errorAt(e.Name, "can't read local variable in its own initializer")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil
}

func (r *Resolver) VisitAssign(e *ast.Assign) interface{} {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil
}

func (r *Resolver) VisitBinary(e *ast.Binary) interface{} {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitLogical(e *ast.Logical) interface{} {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitUnary(e *ast.Unary) interface{} {
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitCall(e *ast.Call) interface{} {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Args {
		r.resolveExpr(arg)
	}
	return nil
}

func (r *Resolver) VisitGet(e *ast.Get) interface{} {
	r.resolveExpr(e.Object)
	return nil
}

func (r *Resolver) VisitSet(e *ast.Set) interface{} {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil
}

func (r *Resolver) VisitGrouping(e *ast.Grouping) interface{} {
	r.resolveExpr(e.Expression)
	return nil
}

func (r *Resolver) VisitLiteral(e *ast.Literal) interface{} {
	return nil
}

func (r *Resolver) VisitThis(e *ast.This) interface{} {
	if r.currentCls == ClassNone {
		r.errorAt(e.Keyword, "can't use 'this' outside a class")
		return nil
	}
	r.resolveLocal(e, e.Keyword)
	return nil
}

// VisitSuper resolves `super` at `distance` scopes up, matching the
// scope nesting VisitClass opens: one scope for "super" (outer), one
// nested inside it for "this" (inner). The bound method therefore
// reads `distance` for super and `distance-1` for the `this` binding
// it closes over.
func (r *Resolver) VisitSuper(e *ast.Super) interface{} {
	switch r.currentCls {
	case ClassNone:
		r.errorAt(e.Keyword, "can't use 'super' outside a class")
	case ClassClass:
		r.errorAt(e.Keyword, "can't use 'super' in a class with no superclass")
	}
	r.resolveLocal(e, e.Keyword)
	return nil
}

func (r *Resolver) VisitLambda(e *ast.Lambda) interface{} {
	r.resolveFunctionBody(e.Params, e.Body, FuncLambda)
	return nil
}
