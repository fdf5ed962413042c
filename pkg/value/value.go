// Package value holds the runtime value model: a tagged Value and the Type
// tags that accompany every evaluation result.
package value

import (
	"strconv"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
)

// Type tags a binding's declared type or an evaluation result.
type Type int

const (
	Void Type = iota
	Int
	Bool
	Eq
	// EqRepr marks a result that is a symbolic AST rather than a concrete value.
	EqRepr
)

var typeNames = map[Type]string{
	Void:   "void",
	Int:    "int",
	Bool:   "bool",
	Eq:     "eq",
	EqRepr: "eq_repr",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// FromDecl maps a declared type from the syntax tree to its tag.
func FromDecl(d ast.DeclType) Type {
	switch d {
	case ast.TypeInt:
		return Int
	case ast.TypeBool:
		return Bool
	default:
		return Eq
	}
}

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNone Kind = iota
	KindInt
	KindBool
	KindUnassigned
	KindSymbolic
)

// Value is a runtime value. The zero Value is KindNone, used for void results
// and eq bindings declared without an expression.
type Value struct {
	kind Kind
	i    int64
	b    bool
	node ast.Node
}

// None returns the empty value.
func None() Value { return Value{} }

// IntVal wraps an integer.
func IntVal(i int64) Value { return Value{kind: KindInt, i: i} }

// BoolVal wraps a boolean.
func BoolVal(b bool) Value { return Value{kind: KindBool, b: b} }

// Unassigned marks an int or bool binding that has no value yet.
func Unassigned() Value { return Value{kind: KindUnassigned} }

// Symbolic wraps an unevaluated expression.
func Symbolic(n ast.Node) Value { return Value{kind: KindSymbolic, node: n} }

func (v Value) Kind() Kind { return v.kind }

// Int returns the integer payload; it is 0 unless Kind is KindInt.
func (v Value) Int() int64 { return v.i }

// Bool returns the boolean payload; it is false unless Kind is KindBool.
func (v Value) Bool() bool { return v.b }

// Node returns the expression payload; it is nil unless Kind is KindSymbolic.
func (v Value) Node() ast.Node { return v.node }

// IsConcrete reports whether v holds an int or a bool.
func (v Value) IsConcrete() bool {
	return v.kind == KindInt || v.kind == KindBool
}

// Literal converts a concrete value into a fresh literal node.
func (v Value) Literal() (ast.Node, bool) {
	switch v.kind {
	case KindInt:
		return &ast.IntLiteral{Val: v.i}, true
	case KindBool:
		return &ast.BoolLiteral{Val: v.b}, true
	default:
		return nil, false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindUnassigned:
		return "<unassigned>"
	case KindSymbolic:
		if v.node == nil {
			return "<nil>"
		}
		return v.node.String()
	default:
		return "<none>"
	}
}
