package ast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// x * 2 + y
func sample() Node {
	return &BinOp{
		Op:    OpAdd,
		Left:  &BinOp{Op: OpMul, Left: &Identifier{Name: "x"}, Right: &IntLiteral{Val: 2}},
		Right: &Identifier{Name: "y"},
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"binary", sample(), "((x * 2) + y)"},
		{"neg atom", &UnOp{Op: OpNeg, Operand: &Identifier{Name: "x"}}, "-x"},
		{"neg compound", &UnOp{Op: OpNeg, Operand: sample()}, "-(((x * 2) + y))"},
		{"not bool", &UnOp{Op: OpNot, Operand: &BoolLiteral{Val: true}}, "!true"},
		{"vardec", &VarDec{Type: TypeEq, Name: "f", Init: &Equation{Expr: sample()}}, "eq f = ((x * 2) + y)"},
		{"vardec bare", &VarDec{Type: TypeInt, Name: "a"}, "int a"},
		{"show", &ShowCmd{Args: &ArgumentList{Exprs: []Node{
			&Identifier{Name: "f"},
			&BinOp{Op: OpEq, Left: &Identifier{Name: "y"}, Right: &IntLiteral{Val: 0}},
		}}}, "show(f, (y == 0))"},
		{"input", &Input{}, "input()"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.node.String())
		})
	}
}

func TestClone(t *testing.T) {
	original := sample()
	cloned := original.Clone()
	require.Equal(t, original.String(), cloned.String())

	// Modify clone, original should be unchanged
	cloned.(*BinOp).Right = &IntLiteral{Val: 99}
	assert.NotEqual(t, original.String(), cloned.String())
	assert.Equal(t, "y", original.(*BinOp).Right.String())
}

func TestCloneStatements(t *testing.T) {
	prog := &Program{Body: &Block{Stmts: []Node{
		&If{
			Cond:  &BoolLiteral{Val: true},
			Then:  &Block{Stmts: []Node{&Assignment{Name: "a", Expr: &IntLiteral{Val: 1}}}},
			Elifs: []Elif{{Cond: &BoolLiteral{Val: false}, Body: &Block{}}},
		},
		&While{Cond: &BoolLiteral{Val: false}, Body: &Block{}},
	}}}
	cloned := prog.Clone().(*Program)
	assert.Equal(t, prog.String(), cloned.String())
	assert.NotSame(t, prog.Body, cloned.Body)
	assert.Nil(t, cloned.Body.Stmts[0].(*If).Else)
}

func TestComplexity(t *testing.T) {
	leaf := &Identifier{Name: "x"}
	assert.Equal(t, 1, NodeCount(leaf))
	assert.Equal(t, 1, Depth(leaf))

	tree := sample()
	assert.Equal(t, 5, NodeCount(tree))
	assert.Equal(t, 3, Depth(tree))
}

func TestIdentifiers(t *testing.T) {
	tree := &BinOp{Op: OpSub, Left: sample(), Right: &Identifier{Name: "x"}}
	assert.Equal(t, []string{"x", "y"}, Identifiers(tree))
	assert.Empty(t, Identifiers(&IntLiteral{Val: 3}))
}

func TestOperatorClasses(t *testing.T) {
	for _, op := range []BinaryOp{OpAdd, OpSub, OpMul, OpDiv} {
		assert.True(t, op.IsArithmetic(), op.String())
		assert.False(t, op.IsComparison(), op.String())
	}
	for _, op := range []BinaryOp{OpEq, OpNeq, OpLt, OpGt, OpLte, OpGte} {
		assert.True(t, op.IsComparison(), op.String())
	}
	assert.True(t, OpAnd.IsLogical())
	assert.True(t, OpOr.IsLogical())
	assert.True(t, IsComparison(&BinOp{Op: OpLt, Left: &IntLiteral{}, Right: &IntLiteral{}}))
	assert.False(t, IsComparison(sample()))
}

func TestVisitCoversEveryKind(t *testing.T) {
	nodes := []Node{
		&IntLiteral{}, &BoolLiteral{}, &Identifier{Name: "a"}, sample(),
		&UnOp{Op: OpNeg, Operand: &IntLiteral{}}, &Equation{Expr: &IntLiteral{}}, &Input{},
		&VarDec{Name: "a"}, &Assignment{Name: "a", Expr: &IntLiteral{}}, &Block{},
		&If{Cond: &BoolLiteral{}, Then: &Block{}}, &While{Cond: &BoolLiteral{}, Body: &Block{}},
		&Program{Body: &Block{}}, &PrintCmd{Args: &ArgumentList{}}, &ShowCmd{Args: &ArgumentList{}},
		&SolveCmd{Args: &ArgumentList{}}, &ArgumentList{},
	}
	kinds := make(map[string]bool)
	for _, n := range nodes {
		kinds[Dump(n).Kind] = true
	}
	assert.Len(t, kinds, len(nodes))
}

func TestDumpWriters(t *testing.T) {
	tree := Dump(&VarDec{Type: TypeEq, Name: "f", Init: &Equation{Expr: sample()}})

	var text bytes.Buffer
	WriteText(&text, tree)
	lines := strings.Split(strings.TrimSpace(text.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "VarDec eq f", lines[0])
	assert.Equal(t, "  Equation", lines[1])
	assert.Equal(t, "    BinOp +", lines[2])

	var js bytes.Buffer
	require.NoError(t, WriteJSON(&js, tree))
	assert.Contains(t, js.String(), `"kind": "VarDec"`)
	assert.Contains(t, js.String(), `"value": "eq f"`)

	var ym bytes.Buffer
	require.NoError(t, WriteYAML(&ym, tree))
	assert.Contains(t, ym.String(), "kind: VarDec")
	assert.Contains(t, ym.String(), "value: x")
}
