package symbolic

import (
	"fmt"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
	"github.com/wildfunctions/khwarizmi/pkg/value"
)

// Stringify renders n as infix text. Identifiers bound to concrete values
// render as the value, identifiers bound to eq render as their expression,
// and unassigned or unknown identifiers render as their name. Every binary
// operation is parenthesized.
func Stringify(n ast.Node, res Resolver) string {
	return stringifier{res: res, active: make(map[string]bool)}.render(n)
}

type stringifier struct {
	res    Resolver
	active map[string]bool
}

func (s stringifier) render(n ast.Node) string {
	return ast.Visit[string](n, s)
}

func (s stringifier) VisitIntLiteral(n *ast.IntLiteral) string   { return n.String() }
func (s stringifier) VisitBoolLiteral(n *ast.BoolLiteral) string { return n.String() }
func (s stringifier) VisitInput(n *ast.Input) string             { return n.String() }

func (s stringifier) VisitIdentifier(n *ast.Identifier) string {
	b, ok := s.res.Resolve(n.Name)
	if !ok {
		return n.Name
	}
	if b.Value.IsConcrete() {
		return b.Value.String()
	}
	if b.Type == value.Eq && b.Value.Node() != nil && !s.active[n.Name] {
		s.active[n.Name] = true
		defer delete(s.active, n.Name)
		return s.render(b.Value.Node())
	}
	return n.Name
}

func (s stringifier) VisitBinOp(n *ast.BinOp) string {
	return fmt.Sprintf("(%s %s %s)", s.render(n.Left), n.Op, s.render(n.Right))
}

func (s stringifier) VisitUnOp(n *ast.UnOp) string {
	if ast.IsAtom(n.Operand) {
		return n.Op.String() + s.render(n.Operand)
	}
	return fmt.Sprintf("%s(%s)", n.Op, s.render(n.Operand))
}

func (s stringifier) VisitEquation(n *ast.Equation) string {
	return s.render(n.Expr)
}

func (s stringifier) VisitVarDec(n *ast.VarDec) string {
	if n.Init == nil {
		return fmt.Sprintf("%s %s", n.Type, n.Name)
	}
	return fmt.Sprintf("%s %s = %s", n.Type, n.Name, s.render(n.Init))
}

func (s stringifier) VisitAssignment(n *ast.Assignment) string {
	return fmt.Sprintf("%s = %s", n.Name, s.render(n.Expr))
}

// Statements carry no symbolic content; they render as source.

func (s stringifier) VisitBlock(n *ast.Block) string               { return n.String() }
func (s stringifier) VisitIf(n *ast.If) string                     { return n.String() }
func (s stringifier) VisitWhile(n *ast.While) string               { return n.String() }
func (s stringifier) VisitProgram(n *ast.Program) string           { return n.String() }
func (s stringifier) VisitPrintCmd(n *ast.PrintCmd) string         { return n.String() }
func (s stringifier) VisitShowCmd(n *ast.ShowCmd) string           { return n.String() }
func (s stringifier) VisitSolveCmd(n *ast.SolveCmd) string         { return n.String() }
func (s stringifier) VisitArgumentList(n *ast.ArgumentList) string { return n.String() }
