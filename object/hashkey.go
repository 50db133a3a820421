/*
File    : lox-mix/object/hashkey.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import "fmt"

// HashKey canonicalizes a scalar Value into a comparable Go string so
// it can key a native map[string]Value. Only the hashable value kinds
// (nil, bool, int, float, string) are supported; anything else is a
// runtime error surfaced by the caller.
func HashKey(v Value) (string, error) {
	switch t := v.(type) {
	case Nil:
		return "n:", nil
	case *Boolean:
		return fmt.Sprintf("b:%t", t.Value), nil
	case *Integer:
		return fmt.Sprintf("i:%d", t.Value), nil
	case *Float:
		return fmt.Sprintf("f:%g", t.Value), nil
	case *String:
		return fmt.Sprintf("s:%s", t.Value), nil
	default:
		return "", fmt.Errorf("unhashable type: %s", v.Type())
	}
}
