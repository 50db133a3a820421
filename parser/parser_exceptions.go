/*
File    : lox-mix/parser/parser_exceptions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/token"
)

// throwStatement parses `throw expr;`.
func (p *Parser) throwStatement() (ast.Stmt, error) {
	keyword := p.previous()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "expected ';' after thrown value"); err != nil {
		return nil, err
	}
	return ast.NewThrow(keyword, value), nil
}

// tryStatement parses:
//
//	try block
//	(catch (name) block)?
//	(finally block)?
//
// At least one of catch/finally must be present; a bare `try { }` with
// neither is a parse error.
func (p *Parser) tryStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LBRACE, "expected '{' after 'try'"); err != nil {
		return nil, err
	}
	tryStmts, err := p.block()
	if err != nil {
		return nil, err
	}
	tryBlock := ast.NewBlock(tryStmts)

	var errName *token.Token
	var catchBlock *ast.Block
	if p.match(token.CATCH) {
		if p.match(token.LPAREN) {
			name, err := p.consume(token.IDENTIFIER, "expected exception variable name")
			if err != nil {
				return nil, err
			}
			errName = &name
			if _, err := p.consume(token.RPAREN, "expected ')' after catch variable"); err != nil {
				return nil, err
			}
		}
		if _, err := p.consume(token.LBRACE, "expected '{' after 'catch'"); err != nil {
			return nil, err
		}
		catchStmts, err := p.block()
		if err != nil {
			return nil, err
		}
		catchBlock = ast.NewBlock(catchStmts)
	}

	var finallyBlock *ast.Block
	if p.match(token.FINALLY) {
		if _, err := p.consume(token.LBRACE, "expected '{' after 'finally'"); err != nil {
			return nil, err
		}
		finallyStmts, err := p.block()
		if err != nil {
			return nil, err
		}
		finallyBlock = ast.NewBlock(finallyStmts)
	}

	if catchBlock == nil && finallyBlock == nil {
		return nil, p.errorAt(p.peek(), "expected 'catch' or 'finally' after 'try' block")
	}

	return ast.NewTry(errName, tryBlock, catchBlock, finallyBlock), nil
}
