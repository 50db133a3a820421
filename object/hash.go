/*
File    : lox-mix/object/hash.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import "strings"

// Hash is Lox's mutable mapping. Keys are canonicalized via HashKey so
// Go's map can hold them; order preserves insertion order separately
// so ToString output and any future iteration support is deterministic.
type Hash struct {
	values map[string]Value
	keys   map[string]Value
	order  []string
}

func NewHash() *Hash {
	return &Hash{values: make(map[string]Value), keys: make(map[string]Value)}
}

func (h *Hash) Type() Type { return HashType }

func (h *Hash) ToString() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range h.order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(h.keys[k].ToString())
		b.WriteString(": ")
		b.WriteString(h.values[k].ToString())
	}
	b.WriteByte('}')
	return b.String()
}

func (h *Hash) ToObject() string { return h.ToString() }

func (h *Hash) Len() int { return len(h.order) }

// Keys returns the original (uncanonicalized) keys in insertion order,
// used by builtins that need to walk a hash's entries (e.g. json_encode).
func (h *Hash) Keys() []Value {
	keys := make([]Value, len(h.order))
	for i, k := range h.order {
		keys[i] = h.keys[k]
	}
	return keys
}

// Get returns the stored value for key, or nil (the value) on a miss,
// never a runtime error, unlike array/string out-of-range access.
func (h *Hash) Get(key Value) (Value, error) {
	k, err := HashKey(key)
	if err != nil {
		return nil, err
	}
	if v, ok := h.values[k]; ok {
		return v, nil
	}
	return NilValue, nil
}

func (h *Hash) Set(key, value Value) error {
	k, err := HashKey(key)
	if err != nil {
		return err
	}
	if _, exists := h.values[k]; !exists {
		h.order = append(h.order, k)
	}
	h.keys[k] = key
	h.values[k] = value
	return nil
}

// Method returns the bound native method named name. Hash only
// exposes get and set.
func (h *Hash) Method(name string) (*Builtin, bool) {
	switch name {
	case "get":
		return NewBuiltin("get", 1, func(args []Value) (Value, error) {
			return h.Get(args[0])
		}), true
	case "set":
		return NewBuiltin("set", 2, func(args []Value) (Value, error) {
			if err := h.Set(args[0], args[1]); err != nil {
				return nil, err
			}
			return NilValue, nil
		}), true
	}
	return nil, false
}
