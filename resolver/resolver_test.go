package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
)

func resolveSrc(t *testing.T, src string) ([]ast.Stmt, *Resolver) {
	t.Helper()
	toks, err := lexer.New(src).ScanTokens()
	require.NoError(t, err)
	p := parser.New(toks, src)
	stmts := p.Parse()
	require.False(t, p.HasErrors())
	r := New()
	r.Resolve(stmts)
	return stmts, r
}

func TestResolve_LocalVariableDepth(t *testing.T) {
	stmts, r := resolveSrc(t, `
		{
			var a = 1;
			{
				var b = 2;
				print a;
				print b;
			}
		}
	`)
	require.False(t, r.HasErrors())
	outer := stmts[0].(*ast.Block)
	block := outer.Statements[1].(*ast.Block)
	printA := block.Statements[1].(*ast.Print)
	printB := block.Statements[2].(*ast.Print)
	varA := printA.Expr.(*ast.Variable)
	varB := printB.Expr.(*ast.Variable)
	// a is declared one scope outside the block, b in the block itself.
	assert.Equal(t, 1, r.Depths[varA.ID()])
	assert.Equal(t, 0, r.Depths[varB.ID()])
}

func TestResolve_GlobalHasNoDepthEntry(t *testing.T) {
	stmts, r := resolveSrc(t, `
		var g = 1;
		print g;
	`)
	require.False(t, r.HasErrors())
	// top-level "var g" lives in the global scope (no scopes pushed),
	// so its use site never resolves to a local depth.
	printG := stmts[1].(*ast.Print)
	varG := printG.Expr.(*ast.Variable)
	_, ok := r.Depths[varG.ID()]
	assert.False(t, ok)
}

func TestResolve_SelfReferenceInInitializerIsError(t *testing.T) {
	_, r := resolveSrc(t, `
		var a = 1;
		{
			var a = a;
		}
	`)
	assert.True(t, r.HasErrors())
}

func TestResolve_RedeclarationInSameScopeIsError(t *testing.T) {
	_, r := resolveSrc(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	assert.True(t, r.HasErrors())
}

func TestResolve_ReturnOutsideFunctionIsError(t *testing.T) {
	_, r := resolveSrc(t, `return 1;`)
	assert.True(t, r.HasErrors())
}

func TestResolve_ReturnValueFromInitializerIsError(t *testing.T) {
	_, r := resolveSrc(t, `
		class A {
			init() { return 1; }
		}
	`)
	assert.True(t, r.HasErrors())
}

func TestResolve_BreakContinueOutsideLoopIsError(t *testing.T) {
	_, r := resolveSrc(t, `break;`)
	assert.True(t, r.HasErrors())

	_, r2 := resolveSrc(t, `continue;`)
	assert.True(t, r2.HasErrors())
}

func TestResolve_BreakContinueInsideLoopIsFine(t *testing.T) {
	_, r := resolveSrc(t, `while (true) { break; continue; }`)
	assert.False(t, r.HasErrors())
}

func TestResolve_ThisOutsideClassIsError(t *testing.T) {
	_, r := resolveSrc(t, `print this;`)
	assert.True(t, r.HasErrors())
}

func TestResolve_SuperOutsideClassIsError(t *testing.T) {
	_, r := resolveSrc(t, `
		super.greet();
	`)
	assert.True(t, r.HasErrors())
}

func TestResolve_SuperWithNoSuperclassIsError(t *testing.T) {
	_, r := resolveSrc(t, `
		class A { greet() { super.greet(); } }
	`)
	assert.True(t, r.HasErrors())
}

func TestResolve_SelfInheritanceIsError(t *testing.T) {
	_, r := resolveSrc(t, `class A < A {}`)
	assert.True(t, r.HasErrors())
}

func TestResolve_ClassWithSuperclassIsFine(t *testing.T) {
	_, r := resolveSrc(t, `
		class A { greet() { print "A"; } }
		class B < A {
			greet() { super.greet(); }
		}
	`)
	assert.False(t, r.HasErrors())
}

func TestResolve_FunctionParametersScoped(t *testing.T) {
	stmts, r := resolveSrc(t, `
		fun add(a, b) { return a + b; }
	`)
	require.False(t, r.HasErrors())
	fn := stmts[0].(*ast.Function)
	ret := fn.Body[0].(*ast.Return)
	bin := ret.Value.(*ast.Binary)
	left := bin.Left.(*ast.Variable)
	// the parameter scope is the innermost scope when the body resolves.
	assert.Equal(t, 0, r.Depths[left.ID()])
}

func TestResolve_LambdaClosesOverEnclosingBlockLocal(t *testing.T) {
	stmts, r := resolveSrc(t, `
		{
			var x = 1;
			var f = fun () { return x; };
		}
	`)
	require.False(t, r.HasErrors())
	block := stmts[0].(*ast.Block)
	v := block.Statements[1].(*ast.Var)
	lambda := v.Init.(*ast.Lambda)
	ret := lambda.Body[0].(*ast.Return)
	varX := ret.Value.(*ast.Variable)
	// one scope for the lambda's own parameter frame, one more out to
	// the enclosing block where x lives.
	assert.Equal(t, 1, r.Depths[varX.ID()])
}

func TestResolve_LambdaOverGlobalHasNoDepthEntry(t *testing.T) {
	stmts, r := resolveSrc(t, `
		var x = 1;
		var f = fun () { return x; };
	`)
	require.False(t, r.HasErrors())
	v := stmts[1].(*ast.Var)
	lambda := v.Init.(*ast.Lambda)
	ret := lambda.Body[0].(*ast.Return)
	varX := ret.Value.(*ast.Variable)
	_, ok := r.Depths[varX.ID()]
	assert.False(t, ok)
}
