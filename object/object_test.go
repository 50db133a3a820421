package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(NilValue))
	assert.False(t, Truthy(False))
	assert.True(t, Truthy(True))
	assert.True(t, Truthy(&Integer{Value: 0}))
	assert.True(t, Truthy(NewArray(nil)))
}

func TestEqual_DifferentTypesNeverEqual(t *testing.T) {
	assert.False(t, Equal(&Integer{Value: 1}, &Float{Value: 1}))
	assert.True(t, Equal(&Integer{Value: 1}, &Integer{Value: 1}))
	assert.True(t, Equal(NewString("a"), NewString("a")))
}

func TestArray_AppendPopIndex(t *testing.T) {
	a := NewArray(nil)
	appendFn, ok := a.Method("append")
	require.True(t, ok)
	_, err := appendFn.Call([]Value{&Integer{Value: 1}})
	require.NoError(t, err)
	_, err = appendFn.Call([]Value{&Integer{Value: 2}})
	require.NoError(t, err)

	v, err := a.Get(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*Integer).Value)

	_, err = a.Get(5)
	assert.Error(t, err)

	popFn, _ := a.Method("pop")
	last, err := popFn.Call(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), last.(*Integer).Value)
	assert.Equal(t, 1, a.Len())
}

func TestArray_Sort(t *testing.T) {
	a := NewArray([]Value{&Integer{Value: 3}, &Integer{Value: 1}, &Integer{Value: 2}})
	sortFn, _ := a.Method("sort")
	_, err := sortFn.Call(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.Elements[0].(*Integer).Value)
	assert.Equal(t, int64(3), a.Elements[2].(*Integer).Value)
}

func TestHash_GetMissReturnsNil(t *testing.T) {
	h := NewHash()
	v, err := h.Get(NewString("missing"))
	require.NoError(t, err)
	assert.Equal(t, NilValue, v)
}

func TestHash_SetGet(t *testing.T) {
	h := NewHash()
	require.NoError(t, h.Set(NewString("a"), &Integer{Value: 1}))
	v, err := h.Get(NewString("a"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*Integer).Value)
}

func TestString_Methods(t *testing.T) {
	s := NewString("Hello World")
	lower, _ := s.Method("lower")
	v, err := lower.Call(nil)
	require.NoError(t, err)
	assert.Equal(t, "hello world", v.(*String).Value)

	contains, _ := s.Method("contains")
	ok, err := contains.Call([]Value{NewString("World")})
	require.NoError(t, err)
	assert.True(t, ok.(*Boolean).Value)
}

func TestString_IsAlphaIsDigit(t *testing.T) {
	alpha := NewString("abc")
	fn, _ := alpha.Method("isalpha")
	v, _ := fn.Call(nil)
	assert.True(t, v.(*Boolean).Value)

	digits := NewString("123")
	fn2, _ := digits.Method("isdigit")
	v2, _ := fn2.Call(nil)
	assert.True(t, v2.(*Boolean).Value)
}

func TestString_NumericClassifiersNest(t *testing.T) {
	check := func(s, method string) bool {
		fn, ok := NewString(s).Method(method)
		require.True(t, ok)
		v, err := fn.Call(nil)
		require.NoError(t, err)
		return v.(*Boolean).Value
	}

	// plain digits satisfy all three
	assert.True(t, check("123", "isdecimal"))
	assert.True(t, check("123", "isdigit"))
	assert.True(t, check("123", "isnumeric"))

	// superscript two is a digit but not decimal
	assert.False(t, check("²", "isdecimal"))
	assert.True(t, check("²", "isdigit"))
	assert.True(t, check("²", "isnumeric"))

	// a vulgar fraction is only numeric
	assert.False(t, check("½", "isdecimal"))
	assert.False(t, check("½", "isdigit"))
	assert.True(t, check("½", "isnumeric"))

	// a Roman numeral is only numeric
	assert.False(t, check("Ⅷ", "isdigit"))
	assert.True(t, check("Ⅷ", "isnumeric"))

	assert.False(t, check("12a", "isdigit"))
	assert.False(t, check("", "isnumeric"))
}

func TestClass_FindMethodThroughSuperclass(t *testing.T) {
	base := NewClass("Animal", nil, map[string]*Function{
		"speak": NewFunction("speak", nil, nil, nil, false),
	})
	derived := NewClass("Dog", base, map[string]*Function{})
	m, ok := derived.FindMethod("speak")
	require.True(t, ok)
	assert.Equal(t, "speak", m.FnName)
}

func TestInstance_FieldsShadowMethods(t *testing.T) {
	class := NewClass("Point", nil, map[string]*Function{
		"x": NewFunction("x", nil, nil, nil, false),
	})
	inst := NewInstance(class)
	inst.Set("x", &Integer{Value: 5})
	v, ok := inst.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(5), v.(*Integer).Value)
}
