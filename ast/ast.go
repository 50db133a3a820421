/*
File    : lox-mix/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the Expr and Stmt node families produced by the
// parser and consumed by the resolver and interpreter. Every
// expression node carries a unique, monotonically increasing ID
// assigned at construction: the resolver's scope-depth map is keyed by
// this ID rather than by Go pointer identity, so the same map works
// whether or not the interpreter ever copies a node.
package ast

import "sync/atomic"

var nextID int64

func newID() int64 {
	return atomic.AddInt64(&nextID, 1)
}

// Node is the common capability of every Expr and Stmt: a stable
// identity used as a map key by the resolver.
type Node interface {
	ID() int64
}

type base struct {
	id int64
}

func newBase() base {
	return base{id: newID()}
}

func (b base) ID() int64 { return b.id }
