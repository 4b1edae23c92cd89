package value

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitro-lang/nitro/pkgs/ast"
	"github.com/nitro-lang/nitro/pkgs/parser"
)

func TestConstructorsAndPredicates(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		typ   Type
		text  string
	}{
		{"zero value", Value{}, TypeNil, "nil"},
		{"nil", Nil(), TypeNil, "nil"},
		{"char", Char('a'), TypeChar, "'a'"},
		{"true", True(), TypeBool, "true"},
		{"false", False(), TypeBool, "false"},
		{"int", Int(-42), TypeInt, "-42"},
		{"float", Float(2.5), TypeFloat, "2.5"},
		{"whole float", Float(3), TypeFloat, "3.0"},
		{"infinite float", Float(math.Inf(1)), TypeFloat, "+Inf"},
		{"string", String("hi"), TypeString, `"hi"`},
		{"function", Function(ast.Func("f", nil)), TypeFunction, "<func f>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.value.Type())
			assert.Equal(t, tt.text, tt.value.String())

			predicates := map[Type]bool{
				TypeNil:      tt.value.IsNil(),
				TypeChar:     tt.value.IsChar(),
				TypeBool:     tt.value.IsBool(),
				TypeInt:      tt.value.IsInt(),
				TypeFloat:    tt.value.IsFloat(),
				TypeArray:    tt.value.IsArray(),
				TypeString:   tt.value.IsString(),
				TypeFunction: tt.value.IsFunction(),
			}
			for typ, got := range predicates {
				assert.Equal(t, typ == tt.typ, got, "Is%s", typ)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	c, err := Char('z').AsChar()
	require.NoError(t, err)
	assert.Equal(t, byte('z'), c)

	b, err := True().AsBool()
	require.NoError(t, err)
	assert.True(t, b)

	i, err := Int(math.MinInt64).AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), i)

	f, err := Float(-0.5).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, -0.5, f)

	widened, err := Int(7).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 7.0, widened)

	s, err := String("abc").AsString()
	require.NoError(t, err)
	assert.Equal(t, "abc", s)

	def := ast.Func("g", []string{"x"})
	fn, err := Function(def).AsFunction()
	require.NoError(t, err)
	assert.Same(t, def, fn)
}

func TestAccessorTypeMismatch(t *testing.T) {
	_, err := Float(1).AsInt()

	var typeErr *TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, TypeInt, typeErr.Want)
	assert.Equal(t, TypeFloat, typeErr.Got)
	assert.EqualError(t, err, "value: expected Int, got Float")

	_, err = String("x").AsFloat()
	assert.EqualError(t, err, "value: expected Float, got String")

	_, err = Nil().AsBool()
	assert.EqualError(t, err, "value: expected Bool, got Nil")
}

func TestArray(t *testing.T) {
	arr, err := Array(TypeInt, Int(1), Int(2), Int(3))
	require.NoError(t, err)

	assert.True(t, arr.IsArray())
	assert.True(t, arr.IsArrayOf(TypeInt))
	assert.False(t, arr.IsArrayOf(TypeFloat))
	assert.Equal(t, "[1, 2, 3]", arr.String())

	n, err := arr.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	second, err := arr.Index(1)
	require.NoError(t, err)
	assert.Equal(t, Int(2), second)

	_, err = arr.Index(3)
	var indexErr *IndexError
	require.True(t, errors.As(err, &indexErr))
	assert.EqualError(t, err, "value: index 3 out of range [0:3]")

	_, err = Array(TypeInt, Int(1), Float(2))
	assert.EqualError(t, err, "value: expected Int, got Float")

	empty, err := Array(TypeString)
	require.NoError(t, err)
	assert.True(t, empty.IsArrayOf(TypeString))
	assert.Equal(t, "[]", empty.String())
}

func TestArrayCopiesItems(t *testing.T) {
	items := []Value{Int(1), Int(2)}
	arr, err := Array(TypeInt, items...)
	require.NoError(t, err)

	items[0] = Int(99)
	first, err := arr.Index(0)
	require.NoError(t, err)
	assert.Equal(t, Int(1), first)
}

func TestStringIndexYieldsChar(t *testing.T) {
	s := String("nitro")

	c, err := s.Index(2)
	require.NoError(t, err)
	assert.Equal(t, Char('t'), c)

	_, err = s.Index(-1)
	assert.Error(t, err)

	_, err = Int(1).Index(0)
	assert.EqualError(t, err, "value: expected Array, got Int")
}

func TestFromLiteral(t *testing.T) {
	root, err := parser.Parse([]byte("42\n2.5\ntrue\n'c'\n\"s\"\nnil\nx + 1\nfunc f():\n\treturn\n"))
	require.NoError(t, err)
	require.Len(t, root.Statements, 8)

	expected := []Value{Int(42), Float(2.5), True(), Char('c'), String("s"), Nil()}
	for i, want := range expected {
		got, err := FromLiteral(root.Statements[i])
		require.NoError(t, err, "statement %d", i)
		assert.Equal(t, want, got)
	}

	_, err = FromLiteral(root.Statements[6])
	assert.ErrorIs(t, err, ErrNotLiteral)

	fn, err := FromLiteral(root.Statements[7])
	require.NoError(t, err)
	assert.Equal(t, "<func f>", fn.String())

	_, err = FromLiteral(nil)
	assert.ErrorIs(t, err, ErrNotLiteral)
}
