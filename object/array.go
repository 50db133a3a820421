/*
File    : lox-mix/object/array.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"fmt"
	"sort"
	"strings"
)

// Array is Lox's mutable ordered sequence. It owns its element slice;
// every mutating method below updates Elements in place.
type Array struct {
	Elements []Value
}

func NewArray(elems []Value) *Array {
	if elems == nil {
		elems = []Value{}
	}
	return &Array{Elements: elems}
}

func (a *Array) Type() Type { return ArrayType }

func (a *Array) ToString() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range a.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		if s, ok := e.(*String); ok {
			fmt.Fprintf(&b, "%q", s.Value)
		} else {
			b.WriteString(e.ToString())
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (a *Array) ToObject() string { return a.ToString() }

func (a *Array) Len() int { return len(a.Elements) }

// Get returns the element at index i, or a runtime error for an
// out-of-range access.
func (a *Array) Get(i int64) (Value, error) {
	if i < 0 || int(i) >= len(a.Elements) {
		return nil, fmt.Errorf("array index out of range: %d", i)
	}
	return a.Elements[i], nil
}

func (a *Array) Set(i int64, v Value) error {
	if i < 0 || int(i) >= len(a.Elements) {
		return fmt.Errorf("array index out of range: %d", i)
	}
	a.Elements[i] = v
	return nil
}

// Method returns the bound native method named name, if arrays
// support it: append insert remove contains clear pop reverse sort
// join slice extend copy, plus get/set for indexed access.
func (a *Array) Method(name string) (*Builtin, bool) {
	switch name {
	case "get":
		return NewBuiltin("get", 1, func(args []Value) (Value, error) {
			idx, ok := args[0].(*Integer)
			if !ok {
				return nil, fmt.Errorf("array.get: index must be an int")
			}
			return a.Get(idx.Value)
		}), true
	case "set":
		return NewBuiltin("set", 2, func(args []Value) (Value, error) {
			idx, ok := args[0].(*Integer)
			if !ok {
				return nil, fmt.Errorf("array.set: index must be an int")
			}
			if err := a.Set(idx.Value, args[1]); err != nil {
				return nil, err
			}
			return NilValue, nil
		}), true
	case "append":
		return NewBuiltin("append", 1, func(args []Value) (Value, error) {
			a.Elements = append(a.Elements, args[0])
			return NilValue, nil
		}), true
	case "insert":
		return NewBuiltin("insert", 2, func(args []Value) (Value, error) {
			idx, ok := args[0].(*Integer)
			if !ok {
				return nil, fmt.Errorf("array.insert: index must be an int")
			}
			i := int(idx.Value)
			if i < 0 || i > len(a.Elements) {
				return nil, fmt.Errorf("array index out of range: %d", i)
			}
			a.Elements = append(a.Elements, nil)
			copy(a.Elements[i+1:], a.Elements[i:])
			a.Elements[i] = args[1]
			return NilValue, nil
		}), true
	case "remove":
		return NewBuiltin("remove", 1, func(args []Value) (Value, error) {
			for i, e := range a.Elements {
				if Equal(e, args[0]) {
					a.Elements = append(a.Elements[:i], a.Elements[i+1:]...)
					return BoolOf(true), nil
				}
			}
			return BoolOf(false), nil
		}), true
	case "contains":
		return NewBuiltin("contains", 1, func(args []Value) (Value, error) {
			for _, e := range a.Elements {
				if Equal(e, args[0]) {
					return BoolOf(true), nil
				}
			}
			return BoolOf(false), nil
		}), true
	case "clear":
		return NewBuiltin("clear", 0, func(args []Value) (Value, error) {
			a.Elements = a.Elements[:0]
			return NilValue, nil
		}), true
	case "pop":
		return NewBuiltin("pop", 0, func(args []Value) (Value, error) {
			if len(a.Elements) == 0 {
				return nil, fmt.Errorf("pop from empty array")
			}
			last := a.Elements[len(a.Elements)-1]
			a.Elements = a.Elements[:len(a.Elements)-1]
			return last, nil
		}), true
	case "reverse":
		return NewBuiltin("reverse", 0, func(args []Value) (Value, error) {
			for i, j := 0, len(a.Elements)-1; i < j; i, j = i+1, j-1 {
				a.Elements[i], a.Elements[j] = a.Elements[j], a.Elements[i]
			}
			return NilValue, nil
		}), true
	case "sort":
		return NewBuiltin("sort", 0, func(args []Value) (Value, error) {
			var sortErr error
			sort.SliceStable(a.Elements, func(i, j int) bool {
				less, err := lessValue(a.Elements[i], a.Elements[j])
				if err != nil && sortErr == nil {
					sortErr = err
				}
				return less
			})
			return NilValue, sortErr
		}), true
	case "join":
		return NewBuiltin("join", 1, func(args []Value) (Value, error) {
			sep, ok := args[0].(*String)
			if !ok {
				return nil, fmt.Errorf("array.join: separator must be a string")
			}
			parts := make([]string, len(a.Elements))
			for i, e := range a.Elements {
				parts[i] = e.ToString()
			}
			return NewString(strings.Join(parts, sep.Value)), nil
		}), true
	case "slice":
		return NewBuiltin("slice", 2, func(args []Value) (Value, error) {
			from, ok1 := args[0].(*Integer)
			to, ok2 := args[1].(*Integer)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("array.slice: bounds must be ints")
			}
			f, t := int(from.Value), int(to.Value)
			if f < 0 || t > len(a.Elements) || f > t {
				return nil, fmt.Errorf("array slice out of range: %d:%d", f, t)
			}
			sliced := make([]Value, t-f)
			copy(sliced, a.Elements[f:t])
			return NewArray(sliced), nil
		}), true
	case "extend":
		return NewBuiltin("extend", 1, func(args []Value) (Value, error) {
			other, ok := args[0].(*Array)
			if !ok {
				return nil, fmt.Errorf("array.extend: argument must be an array")
			}
			a.Elements = append(a.Elements, other.Elements...)
			return NilValue, nil
		}), true
	case "copy":
		return NewBuiltin("copy", 0, func(args []Value) (Value, error) {
			cp := make([]Value, len(a.Elements))
			copy(cp, a.Elements)
			return NewArray(cp), nil
		}), true
	}
	return nil, false
}

// lessValue orders two scalar values for Array.sort; mixed-type pairs
// are a runtime error rather than an arbitrary ordering guess.
func lessValue(a, b Value) (bool, error) {
	switch av := a.(type) {
	case *Integer:
		switch bv := b.(type) {
		case *Integer:
			return av.Value < bv.Value, nil
		case *Float:
			return float64(av.Value) < bv.Value, nil
		}
	case *Float:
		switch bv := b.(type) {
		case *Integer:
			return av.Value < float64(bv.Value), nil
		case *Float:
			return av.Value < bv.Value, nil
		}
	case *String:
		if bv, ok := b.(*String); ok {
			return av.Value < bv.Value, nil
		}
	}
	return false, fmt.Errorf("cannot compare %s and %s", a.Type(), b.Type())
}
