// Package symbolic operates on unevaluated expressions: substitution,
// rendering, linear term analysis and integer equation solving.
package symbolic

import (
	"github.com/wildfunctions/khwarizmi/pkg/ast"
	"github.com/wildfunctions/khwarizmi/pkg/diag"
	"github.com/wildfunctions/khwarizmi/pkg/scope"
	"github.com/wildfunctions/khwarizmi/pkg/value"
)

// Resolver looks up bindings without failing on unknown names.
type Resolver interface {
	Resolve(name string) (scope.Binding, bool)
}

// rewriter rebuilds a tree node by node. Identifiers are handed to ident,
// which returns the replacement; every other node is reconstructed from its
// rewritten children, so the result never shares nodes with the input.
type rewriter struct {
	ident func(id *ast.Identifier) ast.Node
}

func (r rewriter) rewrite(n ast.Node) ast.Node {
	return ast.Visit[ast.Node](n, r)
}

func (r rewriter) block(b *ast.Block) *ast.Block {
	if b == nil {
		return nil
	}
	stmts := make([]ast.Node, len(b.Stmts))
	for i, s := range b.Stmts {
		stmts[i] = r.rewrite(s)
	}
	return &ast.Block{Stmts: stmts}
}

func (r rewriter) args(a *ast.ArgumentList) *ast.ArgumentList {
	if a == nil {
		return &ast.ArgumentList{}
	}
	exprs := make([]ast.Node, len(a.Exprs))
	for i, e := range a.Exprs {
		exprs[i] = r.rewrite(e)
	}
	return &ast.ArgumentList{Exprs: exprs}
}

func (r rewriter) VisitIntLiteral(n *ast.IntLiteral) ast.Node   { return n.Clone() }
func (r rewriter) VisitBoolLiteral(n *ast.BoolLiteral) ast.Node { return n.Clone() }
func (r rewriter) VisitIdentifier(n *ast.Identifier) ast.Node   { return r.ident(n) }
func (r rewriter) VisitInput(n *ast.Input) ast.Node             { return n.Clone() }

func (r rewriter) VisitBinOp(n *ast.BinOp) ast.Node {
	return &ast.BinOp{Op: n.Op, Left: r.rewrite(n.Left), Right: r.rewrite(n.Right)}
}

func (r rewriter) VisitUnOp(n *ast.UnOp) ast.Node {
	return &ast.UnOp{Op: n.Op, Operand: r.rewrite(n.Operand)}
}

func (r rewriter) VisitEquation(n *ast.Equation) ast.Node {
	return &ast.Equation{Expr: r.rewrite(n.Expr)}
}

func (r rewriter) VisitVarDec(n *ast.VarDec) ast.Node {
	d := &ast.VarDec{Type: n.Type, Name: n.Name}
	if n.Init != nil {
		d.Init = r.rewrite(n.Init)
	}
	return d
}

func (r rewriter) VisitAssignment(n *ast.Assignment) ast.Node {
	return &ast.Assignment{Name: n.Name, Expr: r.rewrite(n.Expr)}
}

func (r rewriter) VisitBlock(n *ast.Block) ast.Node {
	return r.block(n)
}

func (r rewriter) VisitIf(n *ast.If) ast.Node {
	out := &ast.If{Cond: r.rewrite(n.Cond), Then: r.block(n.Then), Else: r.block(n.Else)}
	for _, e := range n.Elifs {
		out.Elifs = append(out.Elifs, ast.Elif{Cond: r.rewrite(e.Cond), Body: r.block(e.Body)})
	}
	return out
}

func (r rewriter) VisitWhile(n *ast.While) ast.Node {
	return &ast.While{Cond: r.rewrite(n.Cond), Body: r.block(n.Body)}
}

func (r rewriter) VisitProgram(n *ast.Program) ast.Node {
	return &ast.Program{Body: r.block(n.Body)}
}

func (r rewriter) VisitPrintCmd(n *ast.PrintCmd) ast.Node {
	return &ast.PrintCmd{Args: r.args(n.Args)}
}

func (r rewriter) VisitShowCmd(n *ast.ShowCmd) ast.Node {
	return &ast.ShowCmd{Args: r.args(n.Args)}
}

func (r rewriter) VisitSolveCmd(n *ast.SolveCmd) ast.Node {
	return &ast.SolveCmd{Args: r.args(n.Args)}
}

func (r rewriter) VisitArgumentList(n *ast.ArgumentList) ast.Node {
	return r.args(n)
}

// Substitute replaces every identifier named in subs with a literal holding
// the mapped value. Only int and bool values can be substituted.
func Substitute(n ast.Node, subs map[string]value.Value) (ast.Node, error) {
	for name, v := range subs {
		if !v.IsConcrete() {
			return nil, diag.Errorf(diag.UnsupportedSubstitutionError,
				"cannot substitute %s for %q, only int and bool values are supported", v, name)
		}
	}
	r := rewriter{ident: func(id *ast.Identifier) ast.Node {
		if v, ok := subs[id.Name]; ok {
			lit, _ := v.Literal()
			return lit
		}
		return id.Clone()
	}}
	return r.rewrite(n), nil
}

// Expand inlines the stored expression of every identifier bound to eq,
// recursively. An identifier already being expanded is left in place, so
// self-referencing equations terminate.
func Expand(n ast.Node, res Resolver) ast.Node {
	active := make(map[string]bool)
	var r rewriter
	r = rewriter{ident: func(id *ast.Identifier) ast.Node {
		b, ok := res.Resolve(id.Name)
		if !ok || b.Type != value.Eq || b.Value.Node() == nil || active[id.Name] {
			return id.Clone()
		}
		active[id.Name] = true
		defer delete(active, id.Name)
		return r.rewrite(b.Value.Node())
	}}
	return r.rewrite(n)
}

// Bind replaces identifiers bound to concrete values with literals.
func Bind(n ast.Node, res Resolver) ast.Node {
	r := rewriter{ident: func(id *ast.Identifier) ast.Node {
		if b, ok := res.Resolve(id.Name); ok {
			if lit, ok := b.Value.Literal(); ok {
				return lit
			}
		}
		return id.Clone()
	}}
	return r.rewrite(n)
}

// IsFree reports whether name has no concrete value under res: it is
// unbound, unassigned, or bound to an equation.
func IsFree(name string, res Resolver) bool {
	b, ok := res.Resolve(name)
	return !ok || !b.Value.IsConcrete()
}

// FreeVars returns the free identifiers of n in order of first appearance.
func FreeVars(n ast.Node, res Resolver) []string {
	var free []string
	for _, name := range ast.Identifiers(n) {
		if IsFree(name, res) {
			free = append(free, name)
		}
	}
	return free
}
