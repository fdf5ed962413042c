// Package eval walks a Khwarizmi program. Every expression evaluates to a
// concrete int or bool, or to a symbolic AST tagged eq_repr when it depends
// on an unassigned or eq binding.
package eval

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
	"github.com/wildfunctions/khwarizmi/pkg/config"
	"github.com/wildfunctions/khwarizmi/pkg/console"
	"github.com/wildfunctions/khwarizmi/pkg/diag"
	"github.com/wildfunctions/khwarizmi/pkg/scope"
	"github.com/wildfunctions/khwarizmi/pkg/symbolic"
	"github.com/wildfunctions/khwarizmi/pkg/value"
)

// Evaluator runs programs against an output sink and an integer reader.
type Evaluator struct {
	out io.Writer
	in  console.IntReader
	cfg config.Config
	log *logrus.Entry
}

var _ symbolic.Evaluator = (*Evaluator)(nil)

// New creates an evaluator. in may be nil for programs that never call
// input().
func New(out io.Writer, in console.IntReader, cfg config.Config, log *logrus.Entry) *Evaluator {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Evaluator{out: out, in: in, cfg: cfg, log: log.WithField("component", "eval")}
}

// EvaluateProgram runs prog in root. The first error ends the run.
func (e *Evaluator) EvaluateProgram(prog *ast.Program, root scope.Scope) error {
	_, _, err := e.Eval(prog, root)
	return err
}

// Eval evaluates n in s.
func (e *Evaluator) Eval(n ast.Node, s scope.Scope) (value.Value, value.Type, error) {
	r := walker{ev: e, s: s}.eval(n)
	return r.v, r.t, r.err
}

type result struct {
	v   value.Value
	t   value.Type
	err error
}

func void() result                     { return result{t: value.Void} }
func fail(err error) result            { return result{err: err} }
func intResult(i int64) result         { return result{v: value.IntVal(i), t: value.Int} }
func boolResult(b bool) result         { return result{v: value.BoolVal(b), t: value.Bool} }
func symbolicResult(n ast.Node) result { return result{v: value.Symbolic(n), t: value.EqRepr} }

// walker evaluates nodes in one scope.
type walker struct {
	ev *Evaluator
	s  scope.Scope
}

func (w walker) eval(n ast.Node) result {
	return ast.Visit[result](n, w)
}

// runBlock runs b in a fresh child scope released afterwards.
func (w walker) runBlock(b *ast.Block) result {
	if b == nil {
		return void()
	}
	child := w.s.Push()
	w.ev.log.WithFields(logrus.Fields{"scope": child.ID(), "depth": child.Depth()}).Debug("push scope")
	defer func() {
		child.Pop()
		w.ev.log.WithField("scope", child.ID()).Debug("pop scope")
	}()
	return walker{ev: w.ev, s: child}.VisitBlock(b)
}

// condition evaluates a branch or loop condition, which must be a concrete
// bool.
func (w walker) condition(n ast.Node) (bool, error) {
	r := w.eval(n)
	if r.err != nil {
		return false, r.err
	}
	if r.t != value.Bool {
		return false, diag.Errorf(diag.NonBooleanConditionError, "condition %s is %s, not bool", n, r.t)
	}
	return r.v.Bool(), nil
}

func (w walker) VisitIntLiteral(n *ast.IntLiteral) result   { return intResult(n.Val) }
func (w walker) VisitBoolLiteral(n *ast.BoolLiteral) result { return boolResult(n.Val) }

func (w walker) VisitIdentifier(n *ast.Identifier) result {
	b, err := w.s.Lookup(n.Name)
	if err != nil {
		return fail(err)
	}
	switch {
	case b.Value.Kind() == value.KindUnassigned:
		return symbolicResult(n)
	case b.Type == value.Eq:
		if b.Value.Node() == nil {
			return symbolicResult(n)
		}
		return symbolicResult(b.Value.Node())
	default:
		return result{v: b.Value, t: b.Type}
	}
}

func (w walker) VisitEquation(n *ast.Equation) result {
	return symbolicResult(n.Expr)
}

// unwrap strips the Equation wrapper from an expression stored into an eq
// binding.
func unwrap(n ast.Node) ast.Node {
	if eq, ok := n.(*ast.Equation); ok {
		return eq.Expr
	}
	return n
}

func (w walker) VisitVarDec(n *ast.VarDec) result {
	t := value.FromDecl(n.Type)
	log := w.ev.log.WithFields(logrus.Fields{"name": n.Name, "type": t, "scope": w.s.ID()})

	if t == value.Eq {
		v := value.None()
		if n.Init != nil {
			v = value.Symbolic(unwrap(n.Init))
		}
		log.Debug("declare")
		if err := w.s.Declare(n.Name, t, v); err != nil {
			return fail(err)
		}
		return void()
	}

	v := value.None()
	if n.Init != nil {
		r := w.eval(n.Init)
		if r.err != nil {
			return r
		}
		if r.t != t {
			return fail(diag.Errorf(diag.TypeMismatchError, "cannot initialize %s %s with %s value %s", t, n.Name, r.t, n.Init))
		}
		v = r.v
	}
	log.Debug("declare")
	if err := w.s.Declare(n.Name, t, v); err != nil {
		return fail(err)
	}
	return void()
}

func (w walker) VisitAssignment(n *ast.Assignment) result {
	b, err := w.s.Lookup(n.Name)
	if err != nil {
		return fail(err)
	}
	if b.Type == value.Eq {
		expr := unwrap(n.Expr)
		if err := w.s.Assign(n.Name, value.Symbolic(expr), value.EqRepr); err != nil {
			return fail(err)
		}
		return symbolicResult(expr)
	}

	r := w.eval(n.Expr)
	if r.err != nil {
		return r
	}
	if r.t != b.Type {
		return fail(diag.Errorf(diag.TypeMismatchError, "cannot assign %s value %s to %s %s", r.t, n.Expr, b.Type, n.Name))
	}
	if err := w.s.Assign(n.Name, r.v, r.t); err != nil {
		return fail(err)
	}
	return void()
}

func (w walker) VisitBlock(n *ast.Block) result {
	for _, stmt := range n.Stmts {
		if r := w.eval(stmt); r.err != nil {
			return r
		}
	}
	return void()
}

func (w walker) VisitProgram(n *ast.Program) result {
	if n.Body == nil {
		return void()
	}
	return w.VisitBlock(n.Body)
}

func (w walker) VisitIf(n *ast.If) result {
	ok, err := w.condition(n.Cond)
	if err != nil {
		return fail(err)
	}
	if ok {
		return w.runBlock(n.Then)
	}
	for _, elif := range n.Elifs {
		ok, err := w.condition(elif.Cond)
		if err != nil {
			return fail(err)
		}
		if ok {
			return w.runBlock(elif.Body)
		}
	}
	return w.runBlock(n.Else)
}

func (w walker) VisitWhile(n *ast.While) result {
	for {
		ok, err := w.condition(n.Cond)
		if err != nil {
			return fail(err)
		}
		if !ok {
			return void()
		}
		if r := w.runBlock(n.Body); r.err != nil {
			return r
		}
	}
}

func (w walker) VisitArgumentList(n *ast.ArgumentList) result {
	for _, e := range n.Exprs {
		if r := w.eval(e); r.err != nil {
			return r
		}
	}
	return void()
}
