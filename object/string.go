/*
File    : lox-mix/object/string.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"fmt"
	"strings"
	"unicode"
)

// String is Lox's string object: immutable value, but still a
// container with a method table, so it behaves like an instance with
// a fixed set of methods.
type String struct{ Value string }

func NewString(s string) *String { return &String{Value: s} }

func (s *String) Type() Type       { return StringType }
func (s *String) ToString() string { return s.Value }
func (s *String) ToObject() string { return fmt.Sprintf("%q", s.Value) }

// Get returns the single-character string at rune index i.
func (s *String) Get(i int64) (Value, error) {
	runes := []rune(s.Value)
	if i < 0 || int(i) >= len(runes) {
		return nil, fmt.Errorf("string index out of range: %d", i)
	}
	return NewString(string(runes[i])), nil
}

// Method returns the bound native method named name.
func (s *String) Method(name string) (*Builtin, bool) {
	unary := func(fn func(string) Value) *Builtin {
		return NewBuiltin(name, 0, func(args []Value) (Value, error) { return fn(s.Value), nil })
	}
	classify := func(fn func(string) bool) *Builtin {
		return unary(func(v string) Value { return BoolOf(fn(v)) })
	}

	switch name {
	case "get":
		return NewBuiltin("get", 1, func(args []Value) (Value, error) {
			idx, ok := args[0].(*Integer)
			if !ok {
				return nil, fmt.Errorf("string.get: index must be an int")
			}
			return s.Get(idx.Value)
		}), true
	case "lower":
		return unary(func(v string) Value { return NewString(strings.ToLower(v)) }), true
	case "upper":
		return unary(func(v string) Value { return NewString(strings.ToUpper(v)) }), true
	case "replace":
		return NewBuiltin("replace", 2, func(args []Value) (Value, error) {
			old, ok1 := args[0].(*String)
			new_, ok2 := args[1].(*String)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("string.replace: arguments must be strings")
			}
			return NewString(strings.ReplaceAll(s.Value, old.Value, new_.Value)), nil
		}), true
	case "split":
		return NewBuiltin("split", 1, func(args []Value) (Value, error) {
			sep, ok := args[0].(*String)
			if !ok {
				return nil, fmt.Errorf("string.split: separator must be a string")
			}
			parts := strings.Split(s.Value, sep.Value)
			vals := make([]Value, len(parts))
			for i, p := range parts {
				vals[i] = NewString(p)
			}
			return NewArray(vals), nil
		}), true
	case "contains":
		return NewBuiltin("contains", 1, func(args []Value) (Value, error) {
			sub, ok := args[0].(*String)
			if !ok {
				return nil, fmt.Errorf("string.contains: argument must be a string")
			}
			return BoolOf(strings.Contains(s.Value, sub.Value)), nil
		}), true
	case "isalpha":
		return classify(func(v string) bool { return v != "" && allRunes(v, unicode.IsLetter) }), true
	case "isdecimal":
		return classify(func(v string) bool { return v != "" && allRunes(v, isDecimalRune) }), true
	case "isdigit":
		return classify(func(v string) bool { return v != "" && allRunes(v, isDigitRune) }), true
	case "isnumeric":
		return classify(func(v string) bool { return v != "" && allRunes(v, isNumericRune) }), true
	case "isalnum":
		return classify(func(v string) bool {
			return v != "" && allRunes(v, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
		}), true
	case "isidentifier":
		return classify(isIdentifier), true
	case "islower":
		return classify(func(v string) bool { return v != "" && v == strings.ToLower(v) && v != strings.ToUpper(v) }), true
	case "isupper":
		return classify(func(v string) bool { return v != "" && v == strings.ToUpper(v) && v != strings.ToLower(v) }), true
	case "isprintable":
		return classify(func(v string) bool { return allRunes(v, unicode.IsPrint) }), true
	case "isspace":
		return classify(func(v string) bool { return v != "" && allRunes(v, unicode.IsSpace) }), true
	case "istitle":
		return classify(isTitleCase), true
	case "isascii":
		return classify(func(v string) bool { return allRunes(v, func(r rune) bool { return r < 128 }) }), true
	}
	return nil, false
}

// The three numeric classifiers nest: every decimal rune is a digit,
// every digit rune is numeric, but not the other way around. Decimal
// is the Nd category only; digit adds the super-/subscript digits;
// numeric further adds letterlike numerals (Nl, e.g. Roman numerals)
// and the remaining number forms (No, e.g. vulgar fractions).

func isDecimalRune(r rune) bool {
	return unicode.Is(unicode.Nd, r)
}

func isDigitRune(r rune) bool {
	if isDecimalRune(r) {
		return true
	}
	switch {
	case r == '¹' || r == '²' || r == '³' || r == '⁰':
		return true
	case r >= '⁴' && r <= '⁹': // U+2074..U+2079; U+2071..U+2073 are not digits
		return true
	case r >= '₀' && r <= '₉': // subscripts are contiguous
		return true
	}
	return false
}

func isNumericRune(r rune) bool {
	return isDigitRune(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.No, r)
}

func allRunes(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func isTitleCase(s string) bool {
	hasCased := false
	prevCased := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if !prevCased {
				if !unicode.IsUpper(r) {
					return false
				}
			} else if !unicode.IsLower(r) {
				return false
			}
			hasCased = true
			prevCased = true
		} else {
			prevCased = false
		}
	}
	return hasCased
}
