/*
File    : lox-mix/interpreter/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/lox-mix/object"
	"github.com/akashmaji946/lox-mix/token"
)

// RuntimeError is a normal evaluation fault (division by zero, unknown
// name, wrong arity, ...). It implements error so it can travel up the
// same return channel as control-flow signals; evaluation never panics
// for a language-level fault.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RuntimeError at line %d: %s", e.Token.Line, e.Message)
}

// Render renders the error in the caret-highlighted diagnostic form,
// pulling the offending source line out of source. The CLI
// uses this instead of Error() whenever it still has the source text
// on hand (cmd/lox and the REPL do); Error() stays a plain one-liner
// for contexts without source (e.g. wrapping inside another error).
func (e *RuntimeError) Render(source string) string {
	lines := strings.Split(source, "\n")
	var srcLine string
	if idx := e.Token.Line - 1; idx >= 0 && idx < len(lines) {
		srcLine = lines[idx]
	}
	caret := strings.Repeat(" ", maxInt(e.Token.Column-1, 0)) + "^"
	return fmt.Sprintf("RuntimeError at line %d:%d\n%s\n%s\n%s", e.Token.Line, e.Token.Column, srcLine, caret, e.Message)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func runtimeErrorf(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// ThrownValue carries a user `throw`n value up the call stack. `try`
// catches it into the named binding; an uncaught one reaches the CLI
// as a runtime error.
type ThrownValue struct {
	Token token.Token
	Value object.Value
}

func (e *ThrownValue) Error() string {
	return fmt.Sprintf("uncaught exception at line %d: %s", e.Token.Line, e.Value.ToString())
}

// Render mirrors RuntimeError.Render for an uncaught throw.
func (e *ThrownValue) Render(source string) string {
	lines := strings.Split(source, "\n")
	var srcLine string
	if idx := e.Token.Line - 1; idx >= 0 && idx < len(lines) {
		srcLine = lines[idx]
	}
	caret := strings.Repeat(" ", maxInt(e.Token.Column-1, 0)) + "^"
	return fmt.Sprintf("RuntimeError at line %d:%d\n%s\n%s\nuncaught exception: %s",
		e.Token.Line, e.Token.Column, srcLine, caret, e.Value.ToString())
}

// returnSignal carries a `return` statement's value out of a function
// body back to the call site.
type returnSignal struct{ Value object.Value }

func (returnSignal) Error() string { return "return" }

// breakSignal and continueSignal are caught by the nearest enclosing
// `while` loop.
type breakSignal struct{}

func (breakSignal) Error() string { return "break" }

type continueSignal struct{}

func (continueSignal) Error() string { return "continue" }

// asCatchable converts any error reaching a `try` block into the
// value a `catch (name)` binding should see: a thrown value is passed
// through as-is, a RuntimeError is wrapped as a string message so
// user code can still inspect it. Control-flow signals are not
// catchable and keep propagating.
func asCatchable(err error) (object.Value, bool) {
	switch e := err.(type) {
	case *ThrownValue:
		return e.Value, true
	case *RuntimeError:
		return object.NewString(e.Message), true
	default:
		return nil, false
	}
}
