package symbolic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
	"github.com/wildfunctions/khwarizmi/pkg/diag"
	"github.com/wildfunctions/khwarizmi/pkg/scope"
	"github.com/wildfunctions/khwarizmi/pkg/value"
)

// Evaluator evaluates pin values and fully substituted comparisons.
type Evaluator interface {
	Eval(n ast.Node, s scope.Scope) (value.Value, value.Type, error)
}

// Outcome classifies the result of Solve.
type Outcome int

const (
	Solved Outcome = iota
	NoIntegerSolution
	NoSolution
	InfiniteSolutions
	NotLinear
	Unresolved
)

var outcomeNames = map[Outcome]string{
	Solved:            "solved",
	NoIntegerSolution: "no integer solution",
	NoSolution:        "no solution",
	InfiniteSolutions: "infinite solutions",
	NotLinear:         "not linear",
	Unresolved:        "unresolved",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Solution is the classified answer of one solve. Value is set only when
// Outcome is Solved and Free only when it is Unresolved.
type Solution struct {
	Outcome Outcome
	Var     string
	Value   int64
	Free    []string
}

func (s Solution) String() string {
	switch s.Outcome {
	case Solved:
		return fmt.Sprintf("%s = %d", s.Var, s.Value)
	case NotLinear:
		return fmt.Sprintf("equation is not linear in %s", s.Var)
	case Unresolved:
		return fmt.Sprintf("cannot solve: unresolved free variables {%s}", strings.Join(s.Free, ", "))
	default:
		return s.Outcome.String()
	}
}

// Solve finds the integer value of solveFor satisfying eq == target.
// Pinned names in subs are substituted first and seeded into a projection
// scope that lives only for the analysis.
func Solve(eq ast.Node, target int64, solveFor string, subs map[string]value.Value, s scope.Scope) (Solution, error) {
	effective, err := Substitute(&ast.BinOp{Op: ast.OpSub, Left: eq, Right: &ast.IntLiteral{Val: target}}, subs)
	if err != nil {
		return Solution{}, err
	}

	proj := s.Push()
	defer proj.Pop()
	for _, name := range sortedKeys(subs) {
		v := subs[name]
		t := value.Int
		if v.Kind() == value.KindBool {
			t = value.Bool
		}
		if err := proj.Declare(name, t, v); err != nil {
			return Solution{}, err
		}
	}

	terms, err := AnalyzeLinearity(effective, solveFor, proj)
	if err != nil {
		return Solution{}, err
	}
	delete(terms.Free, solveFor)

	sol := Solution{Var: solveFor}
	switch {
	case len(terms.Free) > 0:
		sol.Outcome = Unresolved
		sol.Free = terms.FreeNames()
	case !terms.Linear:
		sol.Outcome = NotLinear
	case terms.Coeff == 0 && terms.Const == 0:
		sol.Outcome = InfiniteSolutions
	case terms.Coeff == 0:
		sol.Outcome = NoSolution
	case (-terms.Const)%terms.Coeff != 0:
		sol.Outcome = NoIntegerSolution
	default:
		sol.Outcome = Solved
		sol.Value = -terms.Const / terms.Coeff
	}
	return sol, nil
}

// SolveArgs runs solve(lhs == rhs, var, pins...) against s. The left side is
// expanded rather than evaluated. A concrete int right side is the target;
// a symbolic one is moved to the left and the target becomes 0.
func SolveArgs(args *ast.ArgumentList, s scope.Scope, ev Evaluator) (Solution, error) {
	exprs := argExprs(args)
	if len(exprs) < 2 {
		return Solution{}, diag.Errorf(diag.UncomparableSymbolicError, "solve needs an equation and a variable, got %d argument(s)", len(exprs))
	}
	cmp, ok := exprs[0].(*ast.BinOp)
	if !ok || cmp.Op != ast.OpEq {
		return Solution{}, diag.Errorf(diag.UncomparableSymbolicError, "cannot solve %s, expected an equation of the form lhs == rhs", exprs[0])
	}
	v, ok := exprs[1].(*ast.Identifier)
	if !ok {
		return Solution{}, diag.Errorf(diag.UncomparableSymbolicError, "cannot solve for %s, expected a variable name", exprs[1])
	}
	subs, err := parsePins(exprs[2:], s, ev)
	if err != nil {
		return Solution{}, err
	}

	lhs := Expand(cmp.Left, s)
	rv, rt, err := ev.Eval(cmp.Right, s)
	if err != nil {
		return Solution{}, err
	}
	switch {
	case rt == value.Int:
		return Solve(lhs, rv.Int(), v.Name, subs, s)
	case rt == value.EqRepr:
		diff := &ast.BinOp{Op: ast.OpSub, Left: lhs, Right: Expand(rv.Node(), s)}
		return Solve(diff, 0, v.Name, subs, s)
	default:
		return Solution{}, diag.Errorf(diag.UncomparableSymbolicError, "cannot compare equation with %s value %s", rt, rv)
	}
}

// parsePins reads name == expr arguments into a substitution map.
func parsePins(pins []ast.Node, s scope.Scope, ev Evaluator) (map[string]value.Value, error) {
	subs := make(map[string]value.Value, len(pins))
	for _, p := range pins {
		cmp, ok := p.(*ast.BinOp)
		if !ok || cmp.Op != ast.OpEq {
			return nil, diag.Errorf(diag.UncomparableSymbolicError, "pin %s is not of the form name == value", p)
		}
		id, ok := cmp.Left.(*ast.Identifier)
		if !ok {
			return nil, diag.Errorf(diag.UncomparableSymbolicError, "pin %s must name a variable on the left", p)
		}
		v, _, err := ev.Eval(cmp.Right, s)
		if err != nil {
			return nil, err
		}
		subs[id.Name] = v
	}
	return subs, nil
}

func argExprs(args *ast.ArgumentList) []ast.Node {
	if args == nil {
		return nil
	}
	return args.Exprs
}

func sortedKeys(m map[string]value.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
