package symbolic

import (
	"sort"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
	"github.com/wildfunctions/khwarizmi/pkg/diag"
	"github.com/wildfunctions/khwarizmi/pkg/value"
)

// TermAnalysis describes an expression as Coeff*target + Const. Free holds
// names that are neither the target nor resolved to a concrete integer.
type TermAnalysis struct {
	Coeff  int64
	Const  int64
	Linear bool
	Free   map[string]struct{}
}

// FreeNames returns the free names sorted.
func (t TermAnalysis) FreeNames() []string {
	names := make([]string, 0, len(t.Free))
	for name := range t.Free {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t TermAnalysis) merge(o TermAnalysis) map[string]struct{} {
	free := make(map[string]struct{}, len(t.Free)+len(o.Free))
	for name := range t.Free {
		free[name] = struct{}{}
	}
	for name := range o.Free {
		free[name] = struct{}{}
	}
	return free
}

// AnalyzeLinearity classifies n as linear or not in target. Concrete int
// bindings fold into the constant term.
func AnalyzeLinearity(n ast.Node, target string, res Resolver) (TermAnalysis, error) {
	r := ast.Visit[termResult](n, analyzer{target: target, res: res})
	return r.TermAnalysis, r.err
}

type termResult struct {
	TermAnalysis
	err error
}

type analyzer struct {
	target string
	res    Resolver
}

func linear(coeff, c int64) termResult {
	return termResult{TermAnalysis: TermAnalysis{Coeff: coeff, Const: c, Linear: true, Free: map[string]struct{}{}}}
}

// nonLinear marks n non-linear and records its free identifiers.
func (a analyzer) nonLinear(n ast.Node) termResult {
	free := make(map[string]struct{})
	for _, name := range ast.Identifiers(n) {
		if name != a.target && IsFree(name, a.res) {
			free[name] = struct{}{}
		}
	}
	return termResult{TermAnalysis: TermAnalysis{Free: free}}
}

func (a analyzer) analyze(n ast.Node) termResult {
	return ast.Visit[termResult](n, a)
}

func (a analyzer) VisitIntLiteral(n *ast.IntLiteral) termResult {
	return linear(0, n.Val)
}

func (a analyzer) VisitIdentifier(n *ast.Identifier) termResult {
	if n.Name == a.target {
		return linear(1, 0)
	}
	b, ok := a.res.Resolve(n.Name)
	if ok && b.Value.Kind() == value.KindInt {
		return linear(0, b.Value.Int())
	}
	r := linear(0, 0)
	r.Free[n.Name] = struct{}{}
	if ok && b.Type == value.Bool {
		r.Linear = false
	}
	return r
}

func (a analyzer) VisitUnOp(n *ast.UnOp) termResult {
	if n.Op != ast.OpNeg {
		return a.nonLinear(n)
	}
	r := a.analyze(n.Operand)
	if r.err != nil {
		return r
	}
	r.Coeff, r.Const = -r.Coeff, -r.Const
	return r
}

func (a analyzer) VisitBinOp(n *ast.BinOp) termResult {
	if !n.Op.IsArithmetic() {
		return a.nonLinear(n)
	}
	l := a.analyze(n.Left)
	if l.err != nil {
		return l
	}
	r := a.analyze(n.Right)
	if r.err != nil {
		return r
	}
	out := termResult{TermAnalysis: TermAnalysis{
		Linear: l.Linear && r.Linear,
		Free:   l.merge(r.TermAnalysis),
	}}

	switch n.Op {
	case ast.OpAdd:
		out.Coeff, out.Const = l.Coeff+r.Coeff, l.Const+r.Const
	case ast.OpSub:
		out.Coeff, out.Const = l.Coeff-r.Coeff, l.Const-r.Const
	case ast.OpMul:
		switch {
		case l.Coeff != 0 && r.Coeff != 0:
			out.Linear = false
		case l.Coeff != 0:
			out.Coeff, out.Const = l.Coeff*r.Const, l.Const*r.Const
		default:
			out.Coeff, out.Const = r.Coeff*l.Const, r.Const*l.Const
		}
	case ast.OpDiv:
		switch {
		case r.Coeff != 0:
			out.Linear = false
		case len(r.Free) > 0:
			// The divisor's value is unknown; the free names already block
			// solving, so keep the dividend's terms.
			out.Coeff, out.Const = l.Coeff, l.Const
		case r.Const == 0:
			return termResult{err: diag.Errorf(diag.DivisionByZeroError, "division by zero in %s", n)}
		case l.Coeff%r.Const != 0 || l.Const%r.Const != 0:
			out.Linear = false
		default:
			out.Coeff, out.Const = l.Coeff/r.Const, l.Const/r.Const
		}
	}
	return out
}

func (a analyzer) VisitEquation(n *ast.Equation) termResult {
	return a.analyze(n.Expr)
}

func (a analyzer) VisitBoolLiteral(n *ast.BoolLiteral) termResult   { return a.nonLinear(n) }
func (a analyzer) VisitInput(n *ast.Input) termResult               { return a.nonLinear(n) }
func (a analyzer) VisitVarDec(n *ast.VarDec) termResult             { return a.nonLinear(n) }
func (a analyzer) VisitAssignment(n *ast.Assignment) termResult     { return a.nonLinear(n) }
func (a analyzer) VisitBlock(n *ast.Block) termResult               { return a.nonLinear(n) }
func (a analyzer) VisitIf(n *ast.If) termResult                     { return a.nonLinear(n) }
func (a analyzer) VisitWhile(n *ast.While) termResult               { return a.nonLinear(n) }
func (a analyzer) VisitProgram(n *ast.Program) termResult           { return a.nonLinear(n) }
func (a analyzer) VisitPrintCmd(n *ast.PrintCmd) termResult         { return a.nonLinear(n) }
func (a analyzer) VisitShowCmd(n *ast.ShowCmd) termResult           { return a.nonLinear(n) }
func (a analyzer) VisitSolveCmd(n *ast.SolveCmd) termResult         { return a.nonLinear(n) }
func (a analyzer) VisitArgumentList(n *ast.ArgumentList) termResult { return a.nonLinear(n) }
