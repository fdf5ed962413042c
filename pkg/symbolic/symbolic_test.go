package symbolic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
	"github.com/wildfunctions/khwarizmi/pkg/diag"
	"github.com/wildfunctions/khwarizmi/pkg/parser"
	"github.com/wildfunctions/khwarizmi/pkg/pool"
	"github.com/wildfunctions/khwarizmi/pkg/scope"
	"github.com/wildfunctions/khwarizmi/pkg/value"
)

func mustParse(t *testing.T, src string) ast.Node {
	t.Helper()
	n, err := parser.ParseExpr(src)
	require.NoError(t, err, src)
	return n
}

func argsOf(t *testing.T, srcs ...string) *ast.ArgumentList {
	t.Helper()
	args := &ast.ArgumentList{}
	for _, src := range srcs {
		args.Exprs = append(args.Exprs, mustParse(t, src))
	}
	return args
}

// foldEval evaluates by binding, expanding and folding. Anything that does
// not fold to a literal is symbolic.
type foldEval struct{}

func (foldEval) Eval(n ast.Node, s scope.Scope) (value.Value, value.Type, error) {
	switch lit := Simplify(Bind(Expand(n, s), s)).(type) {
	case *ast.IntLiteral:
		return value.IntVal(lit.Val), value.Int, nil
	case *ast.BoolLiteral:
		return value.BoolVal(lit.Val), value.Bool, nil
	default:
		return value.Symbolic(lit), value.EqRepr, nil
	}
}

// newScope declares x and y unassigned, a = 3, ok = true and f = x * 2 + y.
func newScope(t *testing.T) (*scope.Arena, scope.Scope) {
	t.Helper()
	arena := scope.NewArena()
	root := arena.Root()
	require.NoError(t, root.Declare("x", value.Int, value.None()))
	require.NoError(t, root.Declare("y", value.Int, value.None()))
	require.NoError(t, root.Declare("a", value.Int, value.IntVal(3)))
	require.NoError(t, root.Declare("ok", value.Bool, value.BoolVal(true)))
	require.NoError(t, root.Declare("f", value.Eq, value.Symbolic(mustParse(t, "x * 2 + y"))))
	return arena, root
}

func TestSubstitute(t *testing.T) {
	in := mustParse(t, "x * 2 + y")
	out, err := Substitute(in, map[string]value.Value{"y": value.IntVal(0)})
	require.NoError(t, err)
	assert.Equal(t, "((x * 2) + 0)", out.String())
	assert.Equal(t, "((x * 2) + y)", in.String(), "input must not change")

	// Unmapped identifiers are rebuilt, never shared.
	inX := in.(*ast.BinOp).Left.(*ast.BinOp).Left
	outX := out.(*ast.BinOp).Left.(*ast.BinOp).Left
	assert.NotSame(t, inX, outX)

	// Literal leaves are copied too.
	inTwo := in.(*ast.BinOp).Left.(*ast.BinOp).Right
	outTwo := out.(*ast.BinOp).Left.(*ast.BinOp).Right
	assert.Equal(t, inTwo.String(), outTwo.String())
	assert.NotSame(t, inTwo, outTwo)

	_, err = Substitute(in, map[string]value.Value{"y": value.Unassigned()})
	assert.True(t, diag.Is(err, diag.UnsupportedSubstitutionError), "got %v", err)

	_, err = Substitute(in, map[string]value.Value{"y": value.Symbolic(mustParse(t, "z"))})
	assert.True(t, diag.Is(err, diag.UnsupportedSubstitutionError), "got %v", err)
}

func TestStringify(t *testing.T) {
	_, root := newScope(t)
	tests := []struct {
		src  string
		want string
	}{
		{"f", "((x * 2) + y)"},
		{"a + 1", "(3 + 1)"},
		{"-a", "-3"},
		{"-(x + 1)", "-((x + 1))"},
		{"z + 1", "(z + 1)"},
		{"ok && true", "(true && true)"},
		{"!ok", "!true"},
		{"f == 10", "(((x * 2) + y) == 10)"},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			assert.Equal(t, tc.want, Stringify(mustParse(t, tc.src), root))
		})
	}
}

func TestStringifySelfReference(t *testing.T) {
	arena := scope.NewArena()
	root := arena.Root()
	require.NoError(t, root.Declare("g", value.Eq, value.Symbolic(mustParse(t, "g + 1"))))
	assert.Equal(t, "(g + 1)", Stringify(mustParse(t, "g"), root))
	assert.Equal(t, "(g + 1)", Expand(mustParse(t, "g"), root).String())
}

func TestStringifyIdempotentUnderEmptySubstitution(t *testing.T) {
	_, root := newScope(t)
	p, err := pool.Get("mixed")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		e := p.RandomTree(rng, 4)
		sub, err := Substitute(e, map[string]value.Value{})
		require.NoError(t, err)
		require.Equal(t, Stringify(e, root), Stringify(sub, root), e.String())
	}
}

func TestFreeVars(t *testing.T) {
	_, root := newScope(t)
	n := Expand(mustParse(t, "f + a + z"), root)
	assert.Equal(t, []string{"x", "y", "z"}, FreeVars(n, root))
	assert.Empty(t, FreeVars(mustParse(t, "a + 1"), root))
}

func TestAnalyzeLinearity(t *testing.T) {
	_, root := newScope(t)
	tests := []struct {
		src    string
		linear bool
		coeff  int64
		konst  int64
		free   []string
	}{
		{"x * x", false, 0, 0, nil},
		{"2 * x + 3", true, 2, 3, nil},
		{"x - 7", true, 1, -7, nil},
		{"-(3 * x) + 1", true, -3, 1, nil},
		{"(4 * x + 8) / 4", true, 1, 2, nil},
		{"(3 * x + 1) / 2", false, 0, 0, nil},
		{"10 / x", false, 0, 0, nil},
		{"x + a", true, 1, 3, nil},
		{"x + y", true, 1, 0, []string{"y"}},
		{"x + z * 2", true, 1, 0, []string{"z"}},
		{"x + ok", false, 0, 0, []string{"ok"}},
		{"x < 3", false, 0, 0, nil},
		{"(x < 3) + y", false, 0, 0, []string{"y"}},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := AnalyzeLinearity(mustParse(t, tc.src), "x", root)
			require.NoError(t, err)
			assert.Equal(t, tc.linear, got.Linear)
			if tc.linear {
				assert.Equal(t, tc.coeff, got.Coeff, "coeff")
				assert.Equal(t, tc.konst, got.Const, "const")
			}
			if tc.free == nil {
				assert.Empty(t, got.FreeNames())
			} else {
				assert.Equal(t, tc.free, got.FreeNames())
			}
		})
	}
}

func TestAnalyzeLinearityDivisionByZero(t *testing.T) {
	_, root := newScope(t)
	_, err := AnalyzeLinearity(mustParse(t, "x / (a - 3)"), "x", root)
	assert.True(t, diag.Is(err, diag.DivisionByZeroError), "got %v", err)
}

// A linear tree analyzed in x must agree with the same tree analyzed with x
// bound to a concrete value.
func TestAnalyzeLinearityMatchesConcreteValue(t *testing.T) {
	p, err := pool.Get("linear")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		tree := p.RandomTree(rng, 4)
		sym, err := AnalyzeLinearity(tree, "x", scope.NewArena().Root())
		require.NoError(t, err)
		require.True(t, sym.Linear, tree.String())
		require.Empty(t, sym.Free)

		for _, xv := range []int64{-3, 0, 4} {
			root := scope.NewArena().Root()
			require.NoError(t, root.Declare("x", value.Int, value.IntVal(xv)))
			conc, err := AnalyzeLinearity(tree, "t", root)
			require.NoError(t, err)
			require.Zero(t, conc.Coeff)
			require.Equal(t, sym.Coeff*xv+sym.Const, conc.Const, "%s at x = %d", tree, xv)
		}
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x + 0", "x"},
		{"0 + x", "x"},
		{"0 * x", "0"},
		{"x * 1", "x"},
		{"x / 1", "x"},
		{"2 * 3 + x", "(6 + x)"},
		{"8 / 2", "4"},
		{"7 / 2", "(7 / 2)"},
		{"x - x", "0"},
		{"input() - input()", "(input() - input())"},
		{"-(-x)", "x"},
		{"!(!ok)", "ok"},
		{"x + -3", "(x - 3)"},
		{"x * -1", "-x"},
		{"0 - x", "-x"},
		{"3 < 4", "true"},
		{"ok && true", "ok"},
		{"false || ok", "ok"},
		{"true && false", "false"},
		{"(x * 2) + (y * 0)", "(x * 2)"},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			assert.Equal(t, tc.want, Simplify(mustParse(t, tc.src)).String())
		})
	}
}

func TestSimplifyMinInt64(t *testing.T) {
	x := &ast.Identifier{Name: "x"}
	minInt := &ast.IntLiteral{Val: math.MinInt64}

	sum := Simplify(&ast.BinOp{Op: ast.OpAdd, Left: x, Right: minInt})
	assert.Equal(t, "(x + -9223372036854775808)", sum.String())

	diff := Simplify(&ast.BinOp{Op: ast.OpSub, Left: x, Right: minInt})
	assert.Equal(t, "(x - -9223372036854775808)", diff.String())
}

func TestSolveArgs(t *testing.T) {
	tests := []struct {
		name string
		eq   string // stored as g
		args []string
		want string
	}{
		{"pinned y", "x * 2 + y", []string{"g == 10", "x", "y == 0"}, "x = 5"},
		{"odd target", "x * 2", []string{"g == 3", "x"}, "no integer solution"},
		{"free y", "x * 2 + y", []string{"g == 0", "x"}, "cannot solve: unresolved free variables {y}"},
		{"negative", "3 * x + 9", []string{"g == 0", "x"}, "x = -3"},
		{"bound constant", "x * a", []string{"g == 12", "x"}, "x = 4"},
		{"symbolic rhs", "x * 2", []string{"g == 2 * x", "x"}, "infinite solutions"},
		{"no solution", "x * 0 + 1", []string{"g == 0", "x"}, "no solution"},
		{"not linear", "x * x", []string{"g == 4", "x"}, "equation is not linear in x"},
		{"sorted free", "x + z + w", []string{"g == 0", "x"}, "cannot solve: unresolved free variables {w, z}"},
		{"two pins", "x + z + w", []string{"g == 10", "x", "z == 1", "w == 2"}, "x = 7"},
		{"pin expression", "x - y", []string{"g == 0", "x", "y == a * 2"}, "x = 6"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			arena, root := newScope(t)
			require.NoError(t, root.Declare("g", value.Eq, value.Symbolic(mustParse(t, tc.eq))))

			sol, err := SolveArgs(argsOf(t, tc.args...), root, foldEval{})
			require.NoError(t, err)
			assert.Equal(t, tc.want, sol.String())
			assert.Equal(t, 1, arena.Len(), "projection scope must be released")
		})
	}
}

func TestSolveArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind diag.Kind
	}{
		{"not an equation", []string{"f < 10", "x"}, diag.UncomparableSymbolicError},
		{"missing variable", []string{"f == 10"}, diag.UncomparableSymbolicError},
		{"variable not a name", []string{"f == 10", "x + 1"}, diag.UncomparableSymbolicError},
		{"malformed pin", []string{"f == 10", "x", "y < 0"}, diag.UncomparableSymbolicError},
		{"symbolic pin", []string{"f == 10", "x", "y == z"}, diag.UnsupportedSubstitutionError},
		{"bool target", []string{"f == ok", "x"}, diag.UncomparableSymbolicError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, root := newScope(t)
			_, err := SolveArgs(argsOf(t, tc.args...), root, foldEval{})
			require.Error(t, err)
			assert.Equal(t, tc.kind, diag.KindOf(err), err.Error())
		})
	}
}

func TestSolveOutcomeStrings(t *testing.T) {
	assert.Equal(t, "no integer solution", NoIntegerSolution.String())
	assert.Equal(t, "Outcome(42)", Outcome(42).String())
	assert.Equal(t, "y = 0", Solution{Outcome: Solved, Var: "y"}.String())
}

func TestShow(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"pin removes y", []string{"f", "y == 0"}, "f = (x * 2)"},
		{"two free", []string{"f"}, "f = ((x * 2) + y)"},
		{"pinned constant", []string{"f", "y == 3"}, "f = ((x * 2) + 3)"},
		{"closed comparison", []string{"f == 10", "x == 5", "y == 0"}, "true"},
		{"false comparison", []string{"f == 11", "x == 5", "y == 0"}, "false"},
		{"concrete", []string{"a"}, NothingToShow},
		{"fully pinned", []string{"f", "x == 1", "y == 1"}, NothingToShow},
		{"expression target", []string{"x * 0 + y"}, "y"},
		{"bound names render", []string{"f + a"}, "(((x * 2) + y) + 3)"},
		{"unassigned", []string{"x"}, "x = x"},
		{"free count after simplify", []string{"x * 0 + y + z"}, "(y + z)"},
		{"cancelled comparison", []string{"x - x == 0"}, "true"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			arena, root := newScope(t)
			got, err := Show(argsOf(t, tc.args...), root, foldEval{}, 2)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, 1, arena.Len())
		})
	}
}

func TestShowErrors(t *testing.T) {
	_, root := newScope(t)

	_, err := Show(argsOf(t, "f + z"), root, foldEval{}, 2)
	assert.True(t, diag.Is(err, diag.TooManyFreeVariablesError), "got %v", err)

	got, err := Show(argsOf(t, "f + z"), root, foldEval{}, 3)
	require.NoError(t, err)
	assert.Equal(t, "(((x * 2) + y) + z)", got)

	_, err = Show(&ast.ArgumentList{}, root, foldEval{}, 2)
	assert.True(t, diag.Is(err, diag.UncomparableSymbolicError), "got %v", err)

	_, err = Show(argsOf(t, "f", "y"), root, foldEval{}, 2)
	assert.True(t, diag.Is(err, diag.UncomparableSymbolicError), "got %v", err)
}
