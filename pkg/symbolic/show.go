package symbolic

import (
	"github.com/wildfunctions/khwarizmi/pkg/ast"
	"github.com/wildfunctions/khwarizmi/pkg/diag"
	"github.com/wildfunctions/khwarizmi/pkg/scope"
	"github.com/wildfunctions/khwarizmi/pkg/value"
)

// NothingToShow is the text of a show whose target has no free variables
// and is not a comparison.
const NothingToShow = "nothing to show"

// Show renders show(target, pins...). The target is expanded, the pins are
// substituted, and the free variables left after simplification decide the
// result: none and a comparison evaluates it, none otherwise is
// NothingToShow, more than maxFree is an error, anything else is the
// simplified text.
func Show(args *ast.ArgumentList, s scope.Scope, ev Evaluator, maxFree int) (string, error) {
	exprs := argExprs(args)
	if len(exprs) == 0 {
		return "", diag.Errorf(diag.UncomparableSymbolicError, "show needs an expression to show")
	}
	subs, err := parsePins(exprs[1:], s, ev)
	if err != nil {
		return "", err
	}
	node, err := Substitute(Expand(exprs[0], s), subs)
	if err != nil {
		return "", err
	}

	// Free names are counted after simplification, so x * 0 + y has one.
	simplified := Simplify(Bind(node, s))
	free := FreeVars(simplified, s)
	if len(free) > maxFree {
		return "", diag.Errorf(diag.TooManyFreeVariablesError,
			"cannot show %s: %d free variables %v, at most %d allowed", exprs[0], len(free), free, maxFree)
	}
	if len(free) == 0 {
		if !ast.IsComparison(node) {
			return NothingToShow, nil
		}
		closed := node
		if len(FreeVars(node, s)) > 0 {
			// Only simplification removed the free names; the original
			// would evaluate to a symbolic result.
			closed = simplified
		}
		v, t, err := ev.Eval(closed, s)
		if err != nil {
			return "", err
		}
		if t != value.Bool {
			return "", diag.Errorf(diag.UncomparableSymbolicError, "comparison %s did not evaluate to a bool", node)
		}
		return v.String(), nil
	}

	text := Stringify(simplified, s)
	if id, ok := exprs[0].(*ast.Identifier); ok {
		return id.Name + " = " + text, nil
	}
	return text, nil
}
