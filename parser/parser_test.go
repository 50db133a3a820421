package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/lexer"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *Parser) {
	t.Helper()
	toks, err := lexer.New(src).ScanTokens()
	require.NoError(t, err)
	p := New(toks, src)
	stmts := p.Parse()
	return stmts, p
}

func TestParse_VarDeclaration(t *testing.T) {
	stmts, p := parse(t, `var x = 1 + 2;`)
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	bin, ok := v.Init.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op.Lexeme)
}

func TestParse_PrecedenceClimbing(t *testing.T) {
	stmts, p := parse(t, `print 1 + 2 * 3;`)
	require.False(t, p.HasErrors())
	pr := stmts[0].(*ast.Print)
	top, ok := pr.Expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", top.Op.Lexeme)
	right, ok := top.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", right.Op.Lexeme)
}

func TestParse_AssignmentTarget(t *testing.T) {
	stmts, p := parse(t, `x = 5;`)
	require.False(t, p.HasErrors())
	expr := stmts[0].(*ast.Expression).Expr
	assign, ok := expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Lexeme)
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	_, p := parse(t, `1 + 2 = 3;`)
	assert.True(t, p.HasErrors())
}

func TestParse_IfElse(t *testing.T) {
	stmts, p := parse(t, `if (true) print 1; else print 2;`)
	require.False(t, p.HasErrors())
	ifStmt, ok := stmts[0].(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_ForDesugarsToBlockWhile(t *testing.T) {
	stmts, p := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, p.HasErrors())
	block, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)
	_, isVar := block.Statements[0].(*ast.Var)
	assert.True(t, isVar)
	whileStmt, ok := block.Statements[1].(*ast.While)
	require.True(t, ok)
	// loop body is always normalized to a Block, even though the source
	// wrote a single bare `print` statement as the for-body.
	body, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
}

func TestParse_WhileBodyAlwaysBlock(t *testing.T) {
	stmts, p := parse(t, `while (true) print 1;`)
	require.False(t, p.HasErrors())
	whileStmt := stmts[0].(*ast.While)
	_, ok := whileStmt.Body.(*ast.Block)
	assert.True(t, ok)
}

func TestParse_BreakContinue(t *testing.T) {
	stmts, p := parse(t, `while (true) { break; continue; }`)
	require.False(t, p.HasErrors())
	whileStmt := stmts[0].(*ast.While)
	body := whileStmt.Body.(*ast.Block)
	_, isBreak := body.Statements[0].(*ast.Break)
	_, isContinue := body.Statements[1].(*ast.Continue)
	assert.True(t, isBreak)
	assert.True(t, isContinue)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	stmts, p := parse(t, `fun add(a, b) { return a + b; }`)
	require.False(t, p.HasErrors())
	fn, ok := stmts[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.False(t, fn.IsInitializer)
}

func TestParse_ClassWithInitializerAndSuperclass(t *testing.T) {
	stmts, p := parse(t, `
		class Animal { speak() { print "..."; } }
		class Dog < Animal {
			init(name) { this.name = name; }
			speak() { print this.name; }
		}
	`)
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 2)
	dog := stmts[1].(*ast.Class)
	assert.Equal(t, "Dog", dog.Name.Lexeme)
	require.NotNil(t, dog.Superclass)
	assert.Equal(t, "Animal", dog.Superclass.Name.Lexeme)
	require.Len(t, dog.Methods, 2)
	assert.True(t, dog.Methods[0].IsInitializer)
	assert.False(t, dog.Methods[1].IsInitializer)
}

func TestParse_Lambda(t *testing.T) {
	stmts, p := parse(t, `var f = fun (x) { return x + 1; };`)
	require.False(t, p.HasErrors())
	v := stmts[0].(*ast.Var)
	lambda, ok := v.Init.(*ast.Lambda)
	require.True(t, ok)
	require.Len(t, lambda.Params, 1)
}

func TestParse_TryCatchFinally(t *testing.T) {
	stmts, p := parse(t, `
		try {
			throw "boom";
		} catch (e) {
			print e;
		} finally {
			print "done";
		}
	`)
	require.False(t, p.HasErrors())
	tryStmt, ok := stmts[0].(*ast.Try)
	require.True(t, ok)
	require.NotNil(t, tryStmt.ErrorName)
	assert.Equal(t, "e", tryStmt.ErrorName.Lexeme)
	require.NotNil(t, tryStmt.CatchBlock)
	require.NotNil(t, tryStmt.FinallyBlock)
}

func TestParse_TryWithoutCatchOrFinallyIsError(t *testing.T) {
	_, p := parse(t, `try { print 1; }`)
	assert.True(t, p.HasErrors())
}

func TestParse_SuperCall(t *testing.T) {
	stmts, p := parse(t, `
		class A { greet() { print "A"; } }
		class B < A { greet() { super.greet(); } }
	`)
	require.False(t, p.HasErrors())
	b := stmts[1].(*ast.Class)
	exprStmt := b.Methods[0].Body[0].(*ast.Expression)
	call := exprStmt.Expr.(*ast.Call)
	_, ok := call.Callee.(*ast.Super)
	assert.True(t, ok)
}

func TestParse_GetSetChain(t *testing.T) {
	stmts, p := parse(t, `a.b.c = 1;`)
	require.False(t, p.HasErrors())
	exprStmt := stmts[0].(*ast.Expression)
	set, ok := exprStmt.Expr.(*ast.Set)
	require.True(t, ok)
	assert.Equal(t, "c", set.Name.Lexeme)
	_, ok = set.Object.(*ast.Get)
	assert.True(t, ok)
}

func TestParse_CallChain(t *testing.T) {
	stmts, p := parse(t, `a(1)(2).b();`)
	require.False(t, p.HasErrors())
	exprStmt := stmts[0].(*ast.Expression)
	outer, ok := exprStmt.Expr.(*ast.Call)
	require.True(t, ok)
	get, ok := outer.Callee.(*ast.Get)
	require.True(t, ok)
	assert.Equal(t, "b", get.Name.Lexeme)
}

func TestParse_SynchronizeRecoversAfterError(t *testing.T) {
	stmts, p := parse(t, `
		var x = ;
		var y = 2;
	`)
	require.True(t, p.HasErrors())
	require.Len(t, stmts, 1)
	v := stmts[0].(*ast.Var)
	assert.Equal(t, "y", v.Name.Lexeme)
}

func TestParse_TooManyArguments(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"
	_, p := parse(t, src)
	assert.True(t, p.HasErrors())
}
