/*
File    : lox-mix/resolver/resolver_stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/token"
)

var _ ast.StmtVisitor = (*Resolver)(nil)

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	ast.AcceptStmt(s, r)
}

func (r *Resolver) VisitBlock(s *ast.Block) interface{} {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitVar(s *ast.Var) interface{} {
	r.declare(s.Name)
	if s.Init != nil {
		r.resolveExpr(s.Init)
	}
	r.define(s.Name)
	return nil
}

func (r *Resolver) VisitFunction(s *ast.Function) interface{} {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunctionBody(s.Params, s.Body, FuncFunction)
	return nil
}

func (r *Resolver) VisitClass(s *ast.Class) interface{} {
	enclosingClass := r.currentCls
	r.currentCls = ClassClass
	defer func() { r.currentCls = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errorAt(s.Superclass.Name, "a class can't inherit from itself")
		}
		r.currentCls = ClassSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.peekScope()["super"] = true
	}

	r.beginScope()
	r.peekScope()["this"] = true

	for _, method := range s.Methods {
		fnType := FuncMethod
		if method.IsInitializer {
			fnType = FuncInitializer
		}
		r.resolveFunctionBody(method.Params, method.Body, fnType)
	}

	r.endScope() // "this"
	if s.Superclass != nil {
		r.endScope() // "super"
	}
	return nil
}

func (r *Resolver) VisitExpression(s *ast.Expression) interface{} {
	r.resolveExpr(s.Expr)
	return nil
}

func (r *Resolver) VisitIf(s *ast.If) interface{} {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil
}

func (r *Resolver) VisitPrint(s *ast.Print) interface{} {
	r.resolveExpr(s.Expr)
	return nil
}

func (r *Resolver) VisitReturn(s *ast.Return) interface{} {
	if r.currentFn == FuncNone {
		r.errorAt(s.Keyword, "can't return from top-level code")
	}
	if s.Value != nil {
		if r.currentFn == FuncInitializer {
			r.errorAt(s.Keyword, "can't return a value from an initializer")
		}
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitThrow(s *ast.Throw) interface{} {
	r.resolveExpr(s.Value)
	return nil
}

func (r *Resolver) VisitTry(s *ast.Try) interface{} {
	r.resolveStmt(s.TryBlock)
	if s.CatchBlock != nil {
		r.beginScope()
		if s.ErrorName != nil {
			r.declare(*s.ErrorName)
			r.define(*s.ErrorName)
		}
		r.resolveStmts(s.CatchBlock.Statements)
		r.endScope()
	}
	if s.FinallyBlock != nil {
		r.resolveStmt(s.FinallyBlock)
	}
	return nil
}

func (r *Resolver) VisitWhile(s *ast.While) interface{} {
	enclosingLoop := r.currentLoop
	r.currentLoop = LoopWhile
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	r.currentLoop = enclosingLoop
	return nil
}

func (r *Resolver) VisitBreak(s *ast.Break) interface{} {
	if r.currentLoop == LoopNone {
		r.errorAt(s.Keyword, "can't use 'break' outside a loop")
	}
	return nil
}

func (r *Resolver) VisitContinue(s *ast.Continue) interface{} {
	if r.currentLoop == LoopNone {
		r.errorAt(s.Keyword, "can't use 'continue' outside a loop")
	}
	return nil
}

// resolveFunctionBody pushes a fresh function scope, declares and
// defines each parameter in it, resolves the body, and restores the
// enclosing FunctionType; shared by named functions, methods, and
// lambdas.
func (r *Resolver) resolveFunctionBody(params []token.Token, body []ast.Stmt, fnType FunctionType) {
	enclosingFn := r.currentFn
	r.currentFn = fnType

	r.beginScope()
	for _, p := range params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(body)
	r.endScope()

	r.currentFn = enclosingFn
}
