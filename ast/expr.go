/*
File    : lox-mix/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/lox-mix/token"

// Expr is implemented by every expression node. Accept dispatches to
// the matching visitor method.
type Expr interface {
	Node
	acceptExpr(v ExprVisitor) interface{}
}

// Accept runs v against e and returns v's result.
func Accept(e Expr, v ExprVisitor) interface{} {
	return e.acceptExpr(v)
}

// ExprVisitor is implemented by anything that walks expressions
// (resolver, interpreter, a future pretty-printer).
type ExprVisitor interface {
	VisitAssign(*Assign) interface{}
	VisitBinary(*Binary) interface{}
	VisitCall(*Call) interface{}
	VisitGet(*Get) interface{}
	VisitGrouping(*Grouping) interface{}
	VisitLiteral(*Literal) interface{}
	VisitLogical(*Logical) interface{}
	VisitSet(*Set) interface{}
	VisitSuper(*Super) interface{}
	VisitThis(*This) interface{}
	VisitUnary(*Unary) interface{}
	VisitVariable(*Variable) interface{}
	VisitLambda(*Lambda) interface{}
}

// Assign is `name = value`.
type Assign struct {
	base
	Name  token.Token
	Value Expr
}

func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{base: newBase(), Name: name, Value: value}
}
func (e *Assign) acceptExpr(v ExprVisitor) interface{} { return v.VisitAssign(e) }

// Binary is `left op right` for arithmetic/comparison/equality operators.
type Binary struct {
	base
	Left  Expr
	Op    token.Token
	Right Expr
}

func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{base: newBase(), Left: left, Op: op, Right: right}
}
func (e *Binary) acceptExpr(v ExprVisitor) interface{} { return v.VisitBinary(e) }

// Call is `callee(args...)`. Paren is the closing paren token, kept
// for error-position reporting.
type Call struct {
	base
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{base: newBase(), Callee: callee, Paren: paren, Args: args}
}
func (e *Call) acceptExpr(v ExprVisitor) interface{} { return v.VisitCall(e) }

// Get is `object.name` property/method access.
type Get struct {
	base
	Object Expr
	Name   token.Token
}

func NewGet(object Expr, name token.Token) *Get {
	return &Get{base: newBase(), Object: object, Name: name}
}
func (e *Get) acceptExpr(v ExprVisitor) interface{} { return v.VisitGet(e) }

// Grouping is a parenthesized expression.
type Grouping struct {
	base
	Expression Expr
}

func NewGrouping(expr Expr) *Grouping { return &Grouping{base: newBase(), Expression: expr} }
func (e *Grouping) acceptExpr(v ExprVisitor) interface{} { return v.VisitGrouping(e) }

// Literal is a pre-parsed constant: nil, bool, int64, float64 or string.
type Literal struct {
	base
	Value interface{}
}

func NewLiteral(value interface{}) *Literal { return &Literal{base: newBase(), Value: value} }
func (e *Literal) acceptExpr(v ExprVisitor) interface{} { return v.VisitLiteral(e) }

// Logical is `left and/or right`, short-circuiting.
type Logical struct {
	base
	Left  Expr
	Op    token.Token
	Right Expr
}

func NewLogical(left Expr, op token.Token, right Expr) *Logical {
	return &Logical{base: newBase(), Left: left, Op: op, Right: right}
}
func (e *Logical) acceptExpr(v ExprVisitor) interface{} { return v.VisitLogical(e) }

// Set is `object.name = value`.
type Set struct {
	base
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{base: newBase(), Object: object, Name: name, Value: value}
}
func (e *Set) acceptExpr(v ExprVisitor) interface{} { return v.VisitSet(e) }

// Super is `super.method`.
type Super struct {
	base
	Keyword token.Token
	Method  token.Token
}

func NewSuper(keyword, method token.Token) *Super {
	return &Super{base: newBase(), Keyword: keyword, Method: method}
}
func (e *Super) acceptExpr(v ExprVisitor) interface{} { return v.VisitSuper(e) }

// This is the `this` keyword used as an expression.
type This struct {
	base
	Keyword token.Token
}

func NewThis(keyword token.Token) *This { return &This{base: newBase(), Keyword: keyword} }
func (e *This) acceptExpr(v ExprVisitor) interface{} { return v.VisitThis(e) }

// Unary is `op right` for `!` and unary `-`.
type Unary struct {
	base
	Op    token.Token
	Right Expr
}

func NewUnary(op token.Token, right Expr) *Unary {
	return &Unary{base: newBase(), Op: op, Right: right}
}
func (e *Unary) acceptExpr(v ExprVisitor) interface{} { return v.VisitUnary(e) }

// Variable is a bare identifier used as an expression.
type Variable struct {
	base
	Name token.Token
}

func NewVariable(name token.Token) *Variable { return &Variable{base: newBase(), Name: name} }
func (e *Variable) acceptExpr(v ExprVisitor) interface{} { return v.VisitVariable(e) }

// Lambda is an anonymous `fun (params) { body }` expression.
type Lambda struct {
	base
	Params []token.Token
	Body   []Stmt
}

func NewLambda(params []token.Token, body []Stmt) *Lambda {
	return &Lambda{base: newBase(), Params: params, Body: body}
}
func (e *Lambda) acceptExpr(v ExprVisitor) interface{} { return v.VisitLambda(e) }
