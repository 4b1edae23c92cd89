// Package value defines the runtime value representation of Nitro: a small
// tagged union. Scalars live in a single data word, arrays, strings and
// functions in a reference.
package value

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nitro-lang/nitro/pkgs/ast"
)

// Type is the tag of a Value
type Type uint8

const (
	TypeNil Type = iota
	TypeChar
	TypeBool
	TypeInt
	TypeFloat
	TypeArray
	TypeString
	TypeFunction
)

var typeNames = [...]string{
	TypeNil:      "Nil",
	TypeChar:     "Char",
	TypeBool:     "Bool",
	TypeInt:      "Int",
	TypeFloat:    "Float",
	TypeArray:    "Array",
	TypeString:   "String",
	TypeFunction: "Function",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// ErrNotLiteral is returned by FromLiteral for nodes that need evaluation
var ErrNotLiteral = errors.New("value: node is not a literal")

// TypeError reports an accessor used on a value of another type
type TypeError struct {
	Want Type
	Got  Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("value: expected %s, got %s", e.Want, e.Got)
}

// IndexError reports an out-of-range index
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("value: index %d out of range [0:%d]", e.Index, e.Length)
}

// Value is a tagged union. The zero Value is nil.
type Value struct {
	typ  Type
	data uint64 // char, bool, int and float bits
	ref  any    // array, string or function payload
}

// array is the payload of an Array value
type array struct {
	elem  Type
	items []Value
}

func Nil() Value        { return Value{} }
func Char(c byte) Value { return Value{typ: TypeChar, data: uint64(c)} }
func True() Value       { return Bool(true) }
func False() Value      { return Bool(false) }
func Int(i int64) Value { return Value{typ: TypeInt, data: uint64(i)} }

func Float(f float64) Value { return Value{typ: TypeFloat, data: math.Float64bits(f)} }
func String(s string) Value { return Value{typ: TypeString, ref: s} }

func Bool(b bool) Value {
	v := Value{typ: TypeBool}
	if b {
		v.data = 1
	}
	return v
}

// Array creates an array whose elements all have type elem. Items are
// copied.
func Array(elem Type, items ...Value) (Value, error) {
	for _, item := range items {
		if item.typ != elem {
			return Nil(), &TypeError{Want: elem, Got: item.typ}
		}
	}
	return Value{typ: TypeArray, ref: &array{elem: elem, items: append([]Value(nil), items...)}}, nil
}

// Function wraps a function definition. Values only reference the
// definition; nothing here calls it.
func Function(fn *ast.FuncDef) Value {
	return Value{typ: TypeFunction, ref: fn}
}

// Type returns the tag
func (v Value) Type() Type { return v.typ }

func (v Value) IsNil() bool      { return v.typ == TypeNil }
func (v Value) IsChar() bool     { return v.typ == TypeChar }
func (v Value) IsBool() bool     { return v.typ == TypeBool }
func (v Value) IsInt() bool      { return v.typ == TypeInt }
func (v Value) IsFloat() bool    { return v.typ == TypeFloat }
func (v Value) IsArray() bool    { return v.typ == TypeArray }
func (v Value) IsString() bool   { return v.typ == TypeString }
func (v Value) IsFunction() bool { return v.typ == TypeFunction }

// IsArrayOf reports whether v is an array with elements of type elem
func (v Value) IsArrayOf(elem Type) bool {
	return v.typ == TypeArray && v.ref.(*array).elem == elem
}

func (v Value) expect(t Type) error {
	if v.typ != t {
		return &TypeError{Want: t, Got: v.typ}
	}
	return nil
}

func (v Value) AsChar() (byte, error) {
	if err := v.expect(TypeChar); err != nil {
		return 0, err
	}
	return byte(v.data), nil
}

func (v Value) AsBool() (bool, error) {
	if err := v.expect(TypeBool); err != nil {
		return false, err
	}
	return v.data != 0, nil
}

func (v Value) AsInt() (int64, error) {
	if err := v.expect(TypeInt); err != nil {
		return 0, err
	}
	return int64(v.data), nil
}

// AsFloat returns a float value. Ints widen; every other type is an error.
func (v Value) AsFloat() (float64, error) {
	switch v.typ {
	case TypeFloat:
		return math.Float64frombits(v.data), nil
	case TypeInt:
		return float64(int64(v.data)), nil
	}
	return 0, &TypeError{Want: TypeFloat, Got: v.typ}
}

func (v Value) AsString() (string, error) {
	if err := v.expect(TypeString); err != nil {
		return "", err
	}
	return v.ref.(string), nil
}

func (v Value) AsFunction() (*ast.FuncDef, error) {
	if err := v.expect(TypeFunction); err != nil {
		return nil, err
	}
	return v.ref.(*ast.FuncDef), nil
}

// Len returns the element count of an array or the byte length of a string
func (v Value) Len() (int, error) {
	switch v.typ {
	case TypeArray:
		return len(v.ref.(*array).items), nil
	case TypeString:
		return len(v.ref.(string)), nil
	}
	return 0, &TypeError{Want: TypeArray, Got: v.typ}
}

// Index returns element i of an array, or byte i of a string as a Char
func (v Value) Index(i int) (Value, error) {
	n, err := v.Len()
	if err != nil {
		return Nil(), err
	}
	if i < 0 || i >= n {
		return Nil(), &IndexError{Index: i, Length: n}
	}
	if v.typ == TypeString {
		return Char(v.ref.(string)[i]), nil
	}
	return v.ref.(*array).items[i], nil
}

// String formats v the way the value would be written in source
func (v Value) String() string {
	switch v.typ {
	case TypeNil:
		return "nil"
	case TypeChar:
		return "'" + string(byte(v.data)) + "'"
	case TypeBool:
		return strconv.FormatBool(v.data != 0)
	case TypeInt:
		return strconv.FormatInt(int64(v.data), 10)
	case TypeFloat:
		s := strconv.FormatFloat(math.Float64frombits(v.data), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		return s
	case TypeString:
		return `"` + v.ref.(string) + `"`
	case TypeArray:
		items := v.ref.(*array).items
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TypeFunction:
		return "<func " + v.ref.(*ast.FuncDef).Name + ">"
	}
	return v.typ.String()
}

// FromLiteral converts a literal node, or a function definition, into a
// value. Anything that would need evaluation yields ErrNotLiteral.
func FromLiteral(n ast.Node) (Value, error) {
	switch n := n.(type) {
	case *ast.IntegerLiteral:
		return Int(n.Value), nil
	case *ast.FloatLiteral:
		return Float(n.Value), nil
	case *ast.BooleanLiteral:
		return Bool(n.Value), nil
	case *ast.CharLiteral:
		return Char(n.Value), nil
	case *ast.StringLiteral:
		return String(n.Value), nil
	case *ast.NilLiteral:
		return Nil(), nil
	case *ast.FuncDef:
		if n != nil {
			return Function(n), nil
		}
	}
	return Nil(), ErrNotLiteral
}
