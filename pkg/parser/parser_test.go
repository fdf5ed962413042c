package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
	"github.com/wildfunctions/khwarizmi/pkg/diag"
)

func TestPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"a - b - c", "((a - b) - c)"},
		{"a / b * c", "((a / b) * c)"},
		{"x * 2 + y == 10", "(((x * 2) + y) == 10)"},
		{"a < b && c || d", "(((a < b) && c) || d)"},
		{"a == b != c", "((a == b) != c)"},
		{"-x * 2", "(-x * 2)"},
		{"-(x + 1)", "-((x + 1))"},
		{"!a && b", "(!a && b)"},
		{"a <= b || a >= c", "((a <= b) || (a >= c))"},
		{"input() + 1", "(input() + 1)"},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			e, err := ParseExpr(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, e.String())
		})
	}
}

func TestParseProgram(t *testing.T) {
	src := `// leading comment
BEGIN
  int a = 3
  bool ok
  eq f = x * 2 + y

  if a > 2 BEGIN
    print(a)
  END
  elif ok BEGIN
    print(ok)
  END else BEGIN
    a = 0
  END
  while a > 0 BEGIN
    a = a - 1
  END
  show(f, y == 0)
  solve(f == 10, x, y == 0)
END
`
	prog, err := Parse(src)
	require.NoError(t, err)
	stmts := prog.Body.Stmts
	require.Len(t, stmts, 7)

	dec := stmts[0].(*ast.VarDec)
	assert.Equal(t, ast.TypeInt, dec.Type)
	assert.Equal(t, "a", dec.Name)
	assert.Equal(t, &ast.IntLiteral{Val: 3}, dec.Init)

	assert.Nil(t, stmts[1].(*ast.VarDec).Init)

	eq := stmts[2].(*ast.VarDec)
	wrapped, ok := eq.Init.(*ast.Equation)
	require.True(t, ok, "eq initializer should be wrapped")
	assert.Equal(t, "((x * 2) + y)", wrapped.Expr.String())

	ifs := stmts[3].(*ast.If)
	require.Len(t, ifs.Elifs, 1)
	require.NotNil(t, ifs.Else)
	assert.IsType(t, &ast.Assignment{}, ifs.Else.Stmts[0])

	assert.IsType(t, &ast.While{}, stmts[4])

	show := stmts[5].(*ast.ShowCmd)
	require.Len(t, show.Args.Exprs, 2)
	assert.Equal(t, "(y == 0)", show.Args.Exprs[1].String())

	solve := stmts[6].(*ast.SolveCmd)
	assert.Equal(t, "solve((f == 10), x, (y == 0))", solve.String())
}

func TestEmptyArgsAndBlocks(t *testing.T) {
	prog, err := Parse("BEGIN\nprint()\nwhile false BEGIN END\nEND")
	require.NoError(t, err)
	require.Len(t, prog.Body.Stmts, 2)
	assert.Empty(t, prog.Body.Stmts[0].(*ast.PrintCmd).Args.Exprs)
	assert.Empty(t, prog.Body.Stmts[1].(*ast.While).Body.Stmts)
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing BEGIN", "int a\nEND"},
		{"missing END", "BEGIN\nint a\n"},
		{"two statements one line", "BEGIN\nint a int b\nEND"},
		{"bad factor", "BEGIN\nint a = * 2\nEND"},
		{"unclosed paren", "BEGIN\nprint((1 + 2)\nEND"},
		{"trailing tokens", "BEGIN\nEND\nprint(1)"},
		{"assignment without value", "BEGIN\na =\nEND"},
		{"statement keyword", "BEGIN\nelse BEGIN END\nEND"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.src)
			require.Error(t, err)
			assert.True(t, diag.Is(err, diag.SyntaxError), err.Error())
		})
	}
}

func TestLexicalErrorPassesThrough(t *testing.T) {
	_, err := Parse("BEGIN\nint a = 3 @\nEND")
	assert.True(t, diag.Is(err, diag.LexicalError))
}
