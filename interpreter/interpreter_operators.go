/*
File    : lox-mix/interpreter/interpreter_operators.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"math"

	"github.com/akashmaji946/lox-mix/object"
	"github.com/akashmaji946/lox-mix/token"
)

// evalBinary implements the binary operator table. Numeric operands
// widen to float only when at least one operand already is a float;
// two ints stay an int for `+ - * % \ ^` (with `^` widening for a
// negative exponent), while `/` is always true (float) division.
func evalBinary(op token.Token, left, right object.Value) (object.Value, *RuntimeError) {
	switch op.Kind {
	case token.PLUS:
		if ls, ok := left.(*object.String); ok {
			if rs, ok := right.(*object.String); ok {
				return object.NewString(ls.Value + rs.Value), nil
			}
			return nil, runtimeErrorf(op, "operands must be two strings or two numbers")
		}
		return numericOp(op, left, right, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	case token.MINUS:
		return numericOp(op, left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	case token.STAR:
		return numericOp(op, left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	case token.PERCENT:
		lf, lok := asFloat(left)
		rf, rok := asFloat(right)
		if !lok || !rok {
			return nil, runtimeErrorf(op, "operands must be two numbers")
		}
		if rf == 0 {
			return nil, runtimeErrorf(op, "Division by zero")
		}
		if li, ok := left.(*object.Integer); ok {
			if ri, ok := right.(*object.Integer); ok {
				// Floored modulo: the result takes the divisor's sign.
				m := li.Value % ri.Value
				if m != 0 && (m < 0) != (ri.Value < 0) {
					m += ri.Value
				}
				return &object.Integer{Value: m}, nil
			}
		}
		m := math.Mod(lf, rf)
		if m != 0 && (m < 0) != (rf < 0) {
			m += rf
		}
		return &object.Float{Value: m}, nil
	case token.SLASH:
		lf, lok := asFloat(left)
		rf, rok := asFloat(right)
		if !lok || !rok {
			return nil, runtimeErrorf(op, "operands must be two numbers")
		}
		if rf == 0 {
			return nil, runtimeErrorf(op, "Division by zero")
		}
		return &object.Float{Value: lf / rf}, nil
	case token.BACKSLASH:
		lf, lok := asFloat(left)
		rf, rok := asFloat(right)
		if !lok || !rok {
			return nil, runtimeErrorf(op, "operands must be two numbers")
		}
		if rf == 0 {
			return nil, runtimeErrorf(op, "Division by zero")
		}
		if li, ok := left.(*object.Integer); ok {
			if ri, ok := right.(*object.Integer); ok {
				return &object.Integer{Value: int64(math.Floor(float64(li.Value) / float64(ri.Value)))}, nil
			}
		}
		return &object.Float{Value: math.Floor(lf / rf)}, nil
	case token.CARET:
		lf, lok := asFloat(left)
		rf, rok := asFloat(right)
		if !lok || !rok {
			return nil, runtimeErrorf(op, "operands must be two numbers")
		}
		if li, ok := left.(*object.Integer); ok {
			if ri, ok := right.(*object.Integer); ok && ri.Value >= 0 {
				return &object.Integer{Value: intPow(li.Value, ri.Value)}, nil
			}
		}
		return &object.Float{Value: math.Pow(lf, rf)}, nil
	case token.EQUAL_EQUAL:
		return object.BoolOf(object.Equal(left, right)), nil
	case token.BANG_EQUAL:
		return object.BoolOf(!object.Equal(left, right)), nil
	case token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		lf, lok := asFloat(left)
		rf, rok := asFloat(right)
		if !lok || !rok {
			return nil, runtimeErrorf(op, "operands must be two numbers")
		}
		switch op.Kind {
		case token.LESS:
			return object.BoolOf(lf < rf), nil
		case token.LESS_EQUAL:
			return object.BoolOf(lf <= rf), nil
		case token.GREATER:
			return object.BoolOf(lf > rf), nil
		default:
			return object.BoolOf(lf >= rf), nil
		}
	}
	return nil, runtimeErrorf(op, "unknown binary operator '%s'", op.Lexeme)
}

// intPow is exponentiation by squaring for a non-negative exponent,
// keeping int^int an int the way the rest of the arithmetic table
// preserves integerness.
func intPow(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func asFloat(v object.Value) (float64, bool) {
	switch t := v.(type) {
	case *object.Integer:
		return float64(t.Value), true
	case *object.Float:
		return t.Value, true
	}
	return 0, false
}

// numericOp applies intFn when both operands are int, else widens to
// float and applies floatFn: int+int stays int, everything else is
// float.
func numericOp(op token.Token, left, right object.Value, intFn func(a, b int64) int64, floatFn func(a, b float64) float64) (object.Value, *RuntimeError) {
	li, lIsInt := left.(*object.Integer)
	ri, rIsInt := right.(*object.Integer)
	if lIsInt && rIsInt {
		return &object.Integer{Value: intFn(li.Value, ri.Value)}, nil
	}
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, runtimeErrorf(op, "operands must be two numbers")
	}
	return &object.Float{Value: floatFn(lf, rf)}, nil
}
