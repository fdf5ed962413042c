package eval

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
	"github.com/wildfunctions/khwarizmi/pkg/diag"
	"github.com/wildfunctions/khwarizmi/pkg/symbolic"
	"github.com/wildfunctions/khwarizmi/pkg/value"
)

func (w walker) VisitInput(*ast.Input) result {
	if w.ev.in == nil {
		return fail(diag.Errorf(diag.EndOfInputError, "input() has no input source"))
	}
	n, err := w.ev.in.ReadInt()
	if err != nil {
		return fail(err)
	}
	return intResult(n)
}

func (w walker) VisitPrintCmd(n *ast.PrintCmd) result {
	var parts []string
	if n.Args != nil {
		for _, arg := range n.Args.Exprs {
			r := w.eval(arg)
			if r.err != nil {
				return r
			}
			parts = append(parts, w.format(r))
		}
	}
	fmt.Fprintln(w.ev.out, strings.Join(parts, " "))
	return void()
}

// format renders one print argument. An unassigned variable prints the
// placeholder; other symbolic results print as a labeled expression.
func (w walker) format(r result) string {
	if r.t != value.EqRepr {
		return r.v.String()
	}
	node := r.v.Node()
	if id, ok := node.(*ast.Identifier); ok {
		if b, ok := w.s.Resolve(id.Name); ok && b.Value.Kind() == value.KindUnassigned {
			return w.ev.cfg.UnassignedPlaceholder
		}
	}
	return fmt.Sprintf("<%s: %s>", w.ev.cfg.SymbolicLabel, symbolic.Stringify(node, w.s))
}

func (w walker) VisitShowCmd(n *ast.ShowCmd) result {
	text, err := symbolic.Show(n.Args, w.s, w.ev, w.ev.cfg.MaxFreeVars)
	if err != nil {
		return fail(err)
	}
	w.ev.log.WithField("args", n.Args.String()).Debug("show")
	fmt.Fprintln(w.ev.out, text)
	return void()
}

func (w walker) VisitSolveCmd(n *ast.SolveCmd) result {
	sol, err := symbolic.SolveArgs(n.Args, w.s, w.ev)
	if err != nil {
		return fail(err)
	}
	w.ev.log.WithFields(logrus.Fields{
		"var":     sol.Var,
		"outcome": sol.Outcome.String(),
		"free":    len(sol.Free),
	}).Debug("solve")
	fmt.Fprintln(w.ev.out, sol.String())
	return void()
}
