/*
File    : lox-mix/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements the static pre-pass over a parsed
// program: for every variable-use site it records how many enclosing
// scopes to skip at runtime, and it enforces scoping rules the
// interpreter cannot check on its own (self-reference in an
// initializer, redeclaration, misplaced return/break/continue/this/
// super).
package resolver

import (
	"fmt"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/token"
)

// FunctionType tracks what kind of function body the resolver is
// currently inside, so `return` and `this` can be validated.
type FunctionType int

const (
	FuncNone FunctionType = iota
	FuncFunction
	FuncMethod
	FuncInitializer
	FuncLambda
)

// ClassType tracks whether the resolver is inside a class body, and
// whether that class has a superclass (needed to validate `super`).
type ClassType int

const (
	ClassNone ClassType = iota
	ClassClass
	ClassSubclass
)

// LoopType tracks whether the resolver is inside a loop body, needed
// to validate `break`/`continue`. `for` desugars to `while` before the
// resolver ever sees it, so there is only one loop kind.
type LoopType int

const (
	LoopNone LoopType = iota
	LoopWhile
)

// ResolveError is a single scoping violation caught statically.
type ResolveError struct {
	Token   token.Token
	Message string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve error at line %d: %s (near '%s')", e.Token.Line, e.Message, e.Token.Lexeme)
}

type scope map[string]bool

// Resolver walks a program once and fills Depths with the scope
// distance for every Variable/Assign/This/Super node that resolves to
// a local. Nodes absent from Depths are globals, looked up dynamically
// at runtime by walking the environment chain to its root.
type Resolver struct {
	scopes      []scope
	Depths      map[int64]int
	currentFn   FunctionType
	currentCls  ClassType
	currentLoop LoopType
	errors      []*ResolveError
}

// New builds an empty Resolver ready to walk a program.
func New() *Resolver {
	return &Resolver{Depths: make(map[int64]int)}
}

// HasErrors reports whether any scoping violation was recorded.
func (r *Resolver) HasErrors() bool { return len(r.errors) > 0 }

// Reset clears recorded violations while keeping the Depths map, so a
// REPL can reuse one Resolver across entries without one bad line's
// errors bleeding into every later one.
func (r *Resolver) Reset() { r.errors = nil }

// Errors returns every recorded scoping violation, in visit order.
func (r *Resolver) Errors() []*ResolveError { return r.errors }

// Resolve walks every top-level statement. Call once per program (or
// once per REPL entry sharing the same Depths map, so prior top-level
// declarations stay resolvable).
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) errorAt(tok token.Token, message string) {
	r.errors = append(r.errors, &ResolveError{Token: tok, Message: message})
}

// --- scope stack ---

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }

func (r *Resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) peekScope() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare marks name as present but not yet initialized in the
// innermost scope, catching "var a = a;" and duplicate declarations.
func (r *Resolver) declare(name token.Token) {
	s := r.peekScope()
	if s == nil {
		return
	}
	if _, exists := s[name.Lexeme]; exists {
		r.errorAt(name, "already a variable named '"+name.Lexeme+"' in this scope")
	}
	s[name.Lexeme] = false
}

// define marks name as fully initialized and available for lookup.
func (r *Resolver) define(name token.Token) {
	s := r.peekScope()
	if s == nil {
		return
	}
	s[name.Lexeme] = true
}

// resolveLocal records, for node, the number of scopes between the
// innermost scope and the one declaring name, or leaves node absent
// from Depths if name is never found locally, meaning it is a global.
func (r *Resolver) resolveLocal(node ast.Node, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.Depths[node.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
}
