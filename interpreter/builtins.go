/*
File    : lox-mix/interpreter/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"bufio"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/akashmaji946/lox-mix/object"
)

// defineBuiltins registers every built-in onto Globals: generic
// (clock/len/str/int/float/type/array/hash/ord/max/min/split), math,
// I/O, HTTP, and the json/regex/time/crypto helpers. Each entry is a
// *object.Builtin bound to a plain Go closure. The registry is a
// fixed table populated once, at construction.
func (in *Interpreter) defineBuiltins() {
	reg := func(name string, arity int, fn func(args []object.Value) (object.Value, error)) {
		in.Globals.Define(name, object.NewBuiltin(name, arity, fn))
	}

	// --- Generic ---------------------------------------------------
	reg("clock", 0, func(args []object.Value) (object.Value, error) {
		return &object.Float{Value: clockSeconds()}, nil
	})
	reg("len", 1, func(args []object.Value) (object.Value, error) { return builtinLen(args[0]) })
	reg("str", 1, func(args []object.Value) (object.Value, error) {
		return object.NewString(args[0].ToString()), nil
	})
	reg("int", 1, func(args []object.Value) (object.Value, error) { return builtinInt(args[0]) })
	reg("float", 1, func(args []object.Value) (object.Value, error) { return builtinFloat(args[0]) })
	reg("type", 1, func(args []object.Value) (object.Value, error) {
		return object.NewString(string(args[0].Type())), nil
	})
	reg("array", 0, func(args []object.Value) (object.Value, error) { return object.NewArray(nil), nil })
	reg("hash", 0, func(args []object.Value) (object.Value, error) { return object.NewHash(), nil })
	reg("ord", 1, func(args []object.Value) (object.Value, error) { return builtinOrd(args[0]) })
	reg("max", 2, func(args []object.Value) (object.Value, error) { return builtinMinMax(args[0], args[1], false) })
	reg("min", 2, func(args []object.Value) (object.Value, error) { return builtinMinMax(args[0], args[1], true) })
	reg("split", 2, func(args []object.Value) (object.Value, error) { return builtinSplit(args[0], args[1]) })

	// --- Math --------------------------------------------------------
	reg("abs", 1, func(args []object.Value) (object.Value, error) { return builtinAbs(args[0]) })
	reg("ceil", 1, func(args []object.Value) (object.Value, error) { return builtinRounding(args[0], math.Ceil) })
	reg("floor", 1, func(args []object.Value) (object.Value, error) { return builtinRounding(args[0], math.Floor) })
	reg("pow", 2, func(args []object.Value) (object.Value, error) { return builtinPow(args[0], args[1]) })
	reg("round", 2, func(args []object.Value) (object.Value, error) { return builtinRound(args[0], args[1]) })
	reg("divmod", 2, func(args []object.Value) (object.Value, error) { return builtinDivmod(args[0], args[1]) })
	reg("median", 1, func(args []object.Value) (object.Value, error) { return builtinMedian(args[0]) })
	reg("mean", 1, func(args []object.Value) (object.Value, error) { return builtinMean(args[0]) })
	reg("mode", 1, func(args []object.Value) (object.Value, error) { return builtinMode(args[0]) })

	// --- I/O -----------------------------------------------------------
	reg("input", 1, func(args []object.Value) (object.Value, error) { return in.builtinInput(args[0]) })
	reg("read", 1, func(args []object.Value) (object.Value, error) { return builtinRead(args[0]) })
	reg("read_lines", 1, func(args []object.Value) (object.Value, error) { return builtinReadLines(args[0]) })
	reg("write", 2, func(args []object.Value) (object.Value, error) { return builtinWrite(args[0], args[1]) })

	// --- HTTP ------------------------------------------------------
	reg("requests", 0, func(args []object.Value) (object.Value, error) { return object.NewHTTPClient(), nil })

	// --- Supplements: json / regex / time / crypto ------------------
	reg("json_encode", 1, func(args []object.Value) (object.Value, error) { return builtinJSONEncode(args[0]) })
	reg("json_decode", 1, func(args []object.Value) (object.Value, error) { return builtinJSONDecode(args[0]) })
	reg("regex_match", 2, func(args []object.Value) (object.Value, error) { return builtinRegexMatch(args[0], args[1]) })
	reg("regex_replace", 3, func(args []object.Value) (object.Value, error) {
		return builtinRegexReplace(args[0], args[1], args[2])
	})
	reg("now", 0, func(args []object.Value) (object.Value, error) { return &object.Float{Value: clockSeconds()}, nil })
	reg("sleep", 1, func(args []object.Value) (object.Value, error) { return builtinSleep(args[0]) })
	reg("md5", 1, func(args []object.Value) (object.Value, error) { return builtinMD5(args[0]) })
	reg("sha256", 1, func(args []object.Value) (object.Value, error) { return builtinSHA256(args[0]) })
}

func wrongType(name, want string) error {
	return fmt.Errorf("%s: expected %s argument", name, want)
}

func builtinLen(v object.Value) (object.Value, error) {
	switch t := v.(type) {
	case *object.String:
		return &object.Integer{Value: int64(len([]rune(t.Value)))}, nil
	case *object.Array:
		return &object.Integer{Value: int64(t.Len())}, nil
	case *object.Hash:
		return &object.Integer{Value: int64(t.Len())}, nil
	}
	return nil, wrongType("len", "string, array or hash")
}

func builtinInt(v object.Value) (object.Value, error) {
	switch t := v.(type) {
	case *object.Integer:
		return t, nil
	case *object.Float:
		return &object.Integer{Value: int64(t.Value)}, nil
	case *object.String:
		n, err := strconv.ParseInt(strings.TrimSpace(t.Value), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("int: cannot parse %q as an integer", t.Value)
		}
		return &object.Integer{Value: n}, nil
	}
	return nil, wrongType("int", "number or string")
}

func builtinFloat(v object.Value) (object.Value, error) {
	switch t := v.(type) {
	case *object.Float:
		return t, nil
	case *object.Integer:
		return &object.Float{Value: float64(t.Value)}, nil
	case *object.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
		if err != nil {
			return nil, fmt.Errorf("float: cannot parse %q as a float", t.Value)
		}
		return &object.Float{Value: f}, nil
	}
	return nil, wrongType("float", "number or string")
}

func builtinOrd(v object.Value) (object.Value, error) {
	s, ok := v.(*object.String)
	if !ok {
		return nil, wrongType("ord", "single-character string")
	}
	runes := []rune(s.Value)
	if len(runes) != 1 {
		return nil, fmt.Errorf("ord: expected a single-character string")
	}
	return &object.Integer{Value: int64(runes[0])}, nil
}

func asNumber(v object.Value) (float64, bool) {
	switch t := v.(type) {
	case *object.Integer:
		return float64(t.Value), true
	case *object.Float:
		return t.Value, true
	}
	return 0, false
}

func builtinMinMax(a, b object.Value, wantMin bool) (object.Value, error) {
	af, aok := asNumber(a)
	bf, bok := asNumber(b)
	if !aok || !bok {
		return nil, wrongType("min/max", "numbers")
	}
	if (wantMin && af <= bf) || (!wantMin && af >= bf) {
		return a, nil
	}
	return b, nil
}

func builtinSplit(s, sep object.Value) (object.Value, error) {
	str, ok1 := s.(*object.String)
	sp, ok2 := sep.(*object.String)
	if !ok1 || !ok2 {
		return nil, wrongType("split", "two strings")
	}
	parts := strings.Split(str.Value, sp.Value)
	vals := make([]object.Value, len(parts))
	for i, p := range parts {
		vals[i] = object.NewString(p)
	}
	return object.NewArray(vals), nil
}

func builtinAbs(v object.Value) (object.Value, error) {
	switch t := v.(type) {
	case *object.Integer:
		if t.Value < 0 {
			return &object.Integer{Value: -t.Value}, nil
		}
		return t, nil
	case *object.Float:
		return &object.Float{Value: math.Abs(t.Value)}, nil
	}
	return nil, wrongType("abs", "a number")
}

func builtinRounding(v object.Value, fn func(float64) float64) (object.Value, error) {
	f, ok := asNumber(v)
	if !ok {
		return nil, wrongType("ceil/floor", "a number")
	}
	return &object.Integer{Value: int64(fn(f))}, nil
}

func builtinPow(a, b object.Value) (object.Value, error) {
	af, aok := asNumber(a)
	bf, bok := asNumber(b)
	if !aok || !bok {
		return nil, wrongType("pow", "two numbers")
	}
	return &object.Float{Value: math.Pow(af, bf)}, nil
}

func builtinRound(v, ndigits object.Value) (object.Value, error) {
	f, ok := asNumber(v)
	n, nok := ndigits.(*object.Integer)
	if !ok || !nok {
		return nil, wrongType("round", "(number, int)")
	}
	mult := math.Pow(10, float64(n.Value))
	rounded := math.Round(f*mult) / mult
	if n.Value <= 0 {
		return &object.Integer{Value: int64(rounded)}, nil
	}
	return &object.Float{Value: rounded}, nil
}

func builtinDivmod(a, b object.Value) (object.Value, error) {
	ai, aok := a.(*object.Integer)
	bi, bok := b.(*object.Integer)
	if !aok || !bok {
		return nil, wrongType("divmod", "two ints")
	}
	if bi.Value == 0 {
		return nil, fmt.Errorf("divmod: division by zero")
	}
	q := int64(math.Floor(float64(ai.Value) / float64(bi.Value)))
	r := ai.Value - q*bi.Value
	return object.NewArray([]object.Value{&object.Integer{Value: q}, &object.Integer{Value: r}}), nil
}

func numericElements(v object.Value, who string) ([]float64, error) {
	arr, ok := v.(*object.Array)
	if !ok {
		return nil, wrongType(who, "an array")
	}
	if arr.Len() == 0 {
		return nil, fmt.Errorf("%s: array must not be empty", who)
	}
	nums := make([]float64, arr.Len())
	for i, e := range arr.Elements {
		f, ok := asNumber(e)
		if !ok {
			return nil, fmt.Errorf("%s: array must contain only numbers", who)
		}
		nums[i] = f
	}
	return nums, nil
}

func builtinMedian(v object.Value) (object.Value, error) {
	nums, err := numericElements(v, "median")
	if err != nil {
		return nil, err
	}
	sorted := append([]float64(nil), nums...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return &object.Float{Value: sorted[mid]}, nil
	}
	return &object.Float{Value: (sorted[mid-1] + sorted[mid]) / 2}, nil
}

func builtinMean(v object.Value) (object.Value, error) {
	nums, err := numericElements(v, "mean")
	if err != nil {
		return nil, err
	}
	var sum float64
	for _, n := range nums {
		sum += n
	}
	return &object.Float{Value: sum / float64(len(nums))}, nil
}

func builtinMode(v object.Value) (object.Value, error) {
	nums, err := numericElements(v, "mode")
	if err != nil {
		return nil, err
	}
	counts := make(map[float64]int)
	var best float64
	bestCount := 0
	for _, n := range nums {
		counts[n]++
		if counts[n] > bestCount {
			bestCount = counts[n]
			best = n
		}
	}
	return &object.Float{Value: best}, nil
}

func (in *Interpreter) builtinInput(prompt object.Value) (object.Value, error) {
	p, ok := prompt.(*object.String)
	if !ok {
		return nil, wrongType("input", "a string prompt")
	}
	if p.Value != "" {
		_, _ = fmt.Fprint(in.out, p.Value)
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("input: failed to read from stdin: %w", err)
	}
	return object.NewString(strings.TrimRight(line, "\r\n")), nil
}

func builtinRead(path object.Value) (object.Value, error) {
	p, ok := path.(*object.String)
	if !ok {
		return nil, wrongType("read", "a path string")
	}
	data, err := os.ReadFile(p.Value)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return object.NewString(string(data)), nil
}

func builtinReadLines(path object.Value) (object.Value, error) {
	p, ok := path.(*object.String)
	if !ok {
		return nil, wrongType("read_lines", "a path string")
	}
	data, err := os.ReadFile(p.Value)
	if err != nil {
		return nil, fmt.Errorf("read_lines: %w", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	vals := make([]object.Value, len(lines))
	for i, l := range lines {
		vals[i] = object.NewString(strings.TrimSuffix(l, "\r"))
	}
	return object.NewArray(vals), nil
}

func builtinWrite(path, text object.Value) (object.Value, error) {
	p, ok1 := path.(*object.String)
	t, ok2 := text.(*object.String)
	if !ok1 || !ok2 {
		return nil, wrongType("write", "(path string, text string)")
	}
	if err := os.WriteFile(p.Value, []byte(t.Value), 0644); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	return object.NilValue, nil
}

func builtinJSONEncode(v object.Value) (object.Value, error) {
	native, err := valueToJSON(v)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(native)
	if err != nil {
		return nil, fmt.Errorf("json_encode: %w", err)
	}
	return object.NewString(string(data)), nil
}

func valueToJSON(v object.Value) (interface{}, error) {
	switch t := v.(type) {
	case object.Nil:
		return nil, nil
	case *object.Boolean:
		return t.Value, nil
	case *object.Integer:
		return t.Value, nil
	case *object.Float:
		return t.Value, nil
	case *object.String:
		return t.Value, nil
	case *object.Array:
		out := make([]interface{}, len(t.Elements))
		for i, e := range t.Elements {
			native, err := valueToJSON(e)
			if err != nil {
				return nil, err
			}
			out[i] = native
		}
		return out, nil
	case *object.Hash:
		out := make(map[string]interface{})
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			native, err := valueToJSON(val)
			if err != nil {
				return nil, err
			}
			out[k.ToString()] = native
		}
		return out, nil
	}
	return nil, fmt.Errorf("json_encode: unsupported value of type %s", v.Type())
}

func builtinJSONDecode(s object.Value) (object.Value, error) {
	str, ok := s.(*object.String)
	if !ok {
		return nil, wrongType("json_decode", "a string")
	}
	var decoded interface{}
	if err := json.Unmarshal([]byte(str.Value), &decoded); err != nil {
		return nil, fmt.Errorf("json_decode: %w", err)
	}
	return object.JSONToValue(decoded), nil
}

func builtinRegexMatch(s, pattern object.Value) (object.Value, error) {
	str, ok1 := s.(*object.String)
	pat, ok2 := pattern.(*object.String)
	if !ok1 || !ok2 {
		return nil, wrongType("regex_match", "two strings")
	}
	re, err := regexp.Compile(pat.Value)
	if err != nil {
		return nil, fmt.Errorf("regex_match: invalid pattern: %w", err)
	}
	return object.BoolOf(re.MatchString(str.Value)), nil
}

func builtinRegexReplace(s, pattern, repl object.Value) (object.Value, error) {
	str, ok1 := s.(*object.String)
	pat, ok2 := pattern.(*object.String)
	rep, ok3 := repl.(*object.String)
	if !ok1 || !ok2 || !ok3 {
		return nil, wrongType("regex_replace", "three strings")
	}
	re, err := regexp.Compile(pat.Value)
	if err != nil {
		return nil, fmt.Errorf("regex_replace: invalid pattern: %w", err)
	}
	return object.NewString(re.ReplaceAllString(str.Value, rep.Value)), nil
}

func builtinSleep(seconds object.Value) (object.Value, error) {
	f, ok := asNumber(seconds)
	if !ok {
		return nil, wrongType("sleep", "a number of seconds")
	}
	time.Sleep(time.Duration(f * float64(time.Second)))
	return object.NilValue, nil
}

func builtinMD5(s object.Value) (object.Value, error) {
	str, ok := s.(*object.String)
	if !ok {
		return nil, wrongType("md5", "a string")
	}
	sum := md5.Sum([]byte(str.Value))
	return object.NewString(hex.EncodeToString(sum[:])), nil
}

func builtinSHA256(s object.Value) (object.Value, error) {
	str, ok := s.(*object.String)
	if !ok {
		return nil, wrongType("sha256", "a string")
	}
	sum := sha256.Sum256([]byte(str.Value))
	return object.NewString(hex.EncodeToString(sum[:])), nil
}
