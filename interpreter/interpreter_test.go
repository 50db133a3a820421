/*
File    : lox-mix/interpreter/interpreter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
	"github.com/akashmaji946/lox-mix/resolver"
)

// run lexes, parses, resolves and interprets source, returning stdout
// and any error from the final stage that fails.
func run(t *testing.T, source string) (string, error) {
	t.Helper()
	toks, err := lexer.New(source).ScanTokens()
	require.NoError(t, err, "lex")

	p := parser.New(toks, source)
	stmts := p.Parse()
	require.False(t, p.HasErrors(), "parse errors: %v", p.Errors())

	r := resolver.New()
	r.Resolve(stmts)
	require.False(t, r.HasErrors(), "resolve errors: %v", r.Errors())

	var out bytes.Buffer
	in := New(r.Depths, &out, source)
	err = in.Interpret(stmts)
	return out.String(), err
}

func TestInterpret_ArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_StringConcat(t *testing.T) {
	out, err := run(t, `var a = "hi"; print a + " there";`)
	require.NoError(t, err)
	assert.Equal(t, "hi there\n", out)
}

func TestInterpret_IntPlusIntStaysInt(t *testing.T) {
	out, err := run(t, `print 4 + 5;`)
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)
}

func TestInterpret_DivisionIsAlwaysFloat(t *testing.T) {
	out, err := run(t, `print 7 / 2;`)
	require.NoError(t, err)
	assert.Equal(t, "3.5\n", out)
}

func TestInterpret_FloorDivIsIntWhenBothOperandsAreInt(t *testing.T) {
	out, err := run(t, `print 7 \ 2;`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestInterpret_DivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 / 0;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Division by zero")
}

func TestInterpret_EqualityAcrossTypesIsAlwaysFalse(t *testing.T) {
	out, err := run(t, `print 1 == "1"; print 1 != "1";`)
	require.NoError(t, err)
	assert.Equal(t, "false\ntrue\n", out)
}

func TestInterpret_Truthiness(t *testing.T) {
	out, err := run(t, `if (nil) { print "y"; } else { print "n"; } if (0) { print "y"; } else { print "n"; }`)
	require.NoError(t, err)
	assert.Equal(t, "n\ny\n", out)
}

func TestInterpret_ClosureCounter(t *testing.T) {
	out, err := run(t, `
		fun make() {
			var i = 0;
			fun inc() {
				i = i + 1;
				return i;
			}
			return inc;
		}
		var c = make();
		print c();
		print c();
		print c();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpret_ClassInheritanceAndSuper(t *testing.T) {
	out, err := run(t, `
		class A { greet() { print "A"; } }
		class B < A { greet() { super.greet(); print "B"; } }
		B().greet();
	`)
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", out)
}

func TestInterpret_InitializerAlwaysReturnsThis(t *testing.T) {
	out, err := run(t, `
		class Counter {
			init(start) { this.value = start; }
		}
		var c = Counter(10);
		print c.value;
	`)
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func TestInterpret_FunctionArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 argument")
}

func TestInterpret_ArrayBuiltinsAndLen(t *testing.T) {
	out, err := run(t, `
		var xs = array();
		xs.append(1);
		xs.append(2);
		xs.append(3);
		print xs;
		print len(xs);
	`)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]\n3\n", out)
}

func TestInterpret_ArrayIndexOutOfRangeIsRuntimeError(t *testing.T) {
	_, err := run(t, `var xs = array(); xs.get(0);`)
	require.Error(t, err)
}

func TestInterpret_HashGetMissReturnsNil(t *testing.T) {
	out, err := run(t, `
		var h = hash();
		h.set("a", 1);
		print h.get("a");
		print h.get("b");
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\nnil\n", out)
}

func TestInterpret_StringMethods(t *testing.T) {
	out, err := run(t, `
		var s = "Hello";
		print s.lower();
		print s.upper();
		print s.contains("ell");
	`)
	require.NoError(t, err)
	assert.Equal(t, "hello\nHELLO\ntrue\n", out)
}

func TestInterpret_TryCatchBindsMessage(t *testing.T) {
	out, err := run(t, `
		try {
			throw "boom";
		} catch (e) {
			print e;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "boom\n", out)
}

func TestInterpret_TryFinallyAlwaysRuns(t *testing.T) {
	out, err := run(t, `
		try {
			print "try";
		} finally {
			print "finally";
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "try\nfinally\n", out)
}

func TestInterpret_TryCatchCatchesRuntimeError(t *testing.T) {
	_, err := run(t, `
		try {
			print 1 / 0;
		} catch (e) {
			print e;
		}
	`)
	require.NoError(t, err)
}

func TestInterpret_BreakExitsLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (true) {
			if (i == 3) { break; }
			print i;
			i = i + 1;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ContinueSkipsRestOfBody(t *testing.T) {
	out, err := run(t, `
		for (var i = 0; i < 5; i = i + 1) {
			if (i == 2) { continue; }
			print i;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n3\n4\n", out)
}

func TestInterpret_Lambda(t *testing.T) {
	out, err := run(t, `
		var add = fun (a, b) { return a + b; };
		print add(2, 3);
	`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestInterpret_PowerAndModulo(t *testing.T) {
	out, err := run(t, `
		print 2 ^ 10;
		print 2 ^ 0.5;
		print 7 % 3;
		print -7 % 3;
		print 7.5 % 2;
	`)
	require.NoError(t, err)
	assert.Equal(t, "1024\n1.4142135623730951\n1\n2\n1.5\n", out)
}

func TestInterpret_PowerBindsTighterThanFloorDiv(t *testing.T) {
	out, err := run(t, `print 10 \ 3 ^ 2;`)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestInterpret_TryCatchFinallyOrder(t *testing.T) {
	out, err := run(t, `
		try {
			throw "boom";
		} catch (e) {
			print e;
		} finally {
			print "done";
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "boom\ndone\n", out)
}

func TestInterpret_MathBuiltins(t *testing.T) {
	out, err := run(t, `
		print abs(-5);
		print ceil(2.1);
		print floor(2.9);
		print pow(2, 10);
	`)
	require.NoError(t, err)
	assert.Equal(t, "5\n3\n2\n1024\n", out)
}
