/*
File    : lox-mix/interpreter/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interpreter executes a resolved statement list against the
// runtime value model in package object. It keeps a current
// Environment pointer, a node->depth map handed to it by the
// resolver, a writer for `print` output, and the source text so
// runtime errors can be reported the same way parse errors are.
package interpreter

import (
	"io"
	"time"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/environment"
	"github.com/akashmaji946/lox-mix/object"
	"github.com/akashmaji946/lox-mix/token"
)

// Interpreter walks a resolved AST and performs its side effects.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	depths  map[int64]int
	out     io.Writer
	source  string
}

// New builds an Interpreter over a resolved program. depths is the
// resolver's node-ID -> scope-distance map; out is where `print`
// writes; source is kept only for diagnostics.
func New(depths map[int64]int, out io.Writer, source string) *Interpreter {
	globals := environment.New()
	in := &Interpreter{Globals: globals, env: globals, depths: depths, out: out, source: source}
	in.defineBuiltins()
	return in
}

// Interpret executes every top-level statement in order. It returns
// the first unhandled error: an uncaught `*ThrownValue`, a
// `*RuntimeError`, or a stray break/continue/return signal that
// escaped all the way to the top (itself a bug, but reported rather
// than silently dropped).
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(s ast.Stmt) error {
	result := ast.AcceptStmt(s, in)
	if result == nil {
		return nil
	}
	return result.(error)
}

func (in *Interpreter) evaluate(e ast.Expr) (object.Value, error) {
	result := ast.Accept(e, in)
	switch v := result.(type) {
	case object.Value:
		return v, nil
	case error:
		return nil, v
	default:
		return object.NilValue, nil
	}
}

// executeBlock runs stmts inside env, restoring the interpreter's
// current environment on every exit path, normal or via a control
// signal.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// lookupVariable reads name using the resolver's precomputed depth
// when node has one, else falls back to walking to globals.
func (in *Interpreter) lookupVariable(node ast.Node, name token.Token) (object.Value, error) {
	if d, ok := in.depths[node.ID()]; ok {
		if v, ok := in.env.GetAt(d, name.Lexeme); ok {
			return v, nil
		}
		return nil, runtimeErrorf(name, "undefined variable '%s'", name.Lexeme)
	}
	if v, ok := in.Globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, runtimeErrorf(name, "undefined variable '%s'", name.Lexeme)
}

// Source returns the program text the interpreter was constructed
// with, so a caller can render a *RuntimeError's caret diagnostic
// after Interpret returns.
func (in *Interpreter) Source() string { return in.source }

func clockSeconds() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
