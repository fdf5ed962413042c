package ast

// Children returns the direct child nodes of n in source order.
func Children(n Node) []Node {
	return Visit[[]Node](n, childLister{})
}

type childLister struct{}

func (childLister) VisitIntLiteral(*IntLiteral) []Node   { return nil }
func (childLister) VisitBoolLiteral(*BoolLiteral) []Node { return nil }
func (childLister) VisitIdentifier(*Identifier) []Node   { return nil }
func (childLister) VisitInput(*Input) []Node             { return nil }

func (childLister) VisitBinOp(n *BinOp) []Node {
	return []Node{n.Left, n.Right}
}

func (childLister) VisitUnOp(n *UnOp) []Node {
	return []Node{n.Operand}
}

func (childLister) VisitEquation(n *Equation) []Node {
	return []Node{n.Expr}
}

func (childLister) VisitVarDec(n *VarDec) []Node {
	if n.Init == nil {
		return nil
	}
	return []Node{n.Init}
}

func (childLister) VisitAssignment(n *Assignment) []Node {
	return []Node{n.Expr}
}

func (childLister) VisitBlock(n *Block) []Node {
	return n.Stmts
}

func (childLister) VisitIf(n *If) []Node {
	out := []Node{n.Cond, n.Then}
	for _, e := range n.Elifs {
		out = append(out, e.Cond, e.Body)
	}
	if n.Else != nil {
		out = append(out, n.Else)
	}
	return out
}

func (childLister) VisitWhile(n *While) []Node {
	return []Node{n.Cond, n.Body}
}

func (childLister) VisitProgram(n *Program) []Node {
	return []Node{n.Body}
}

func (childLister) VisitPrintCmd(n *PrintCmd) []Node {
	return []Node{n.Args}
}

func (childLister) VisitShowCmd(n *ShowCmd) []Node {
	return []Node{n.Args}
}

func (childLister) VisitSolveCmd(n *SolveCmd) []Node {
	return []Node{n.Args}
}

func (childLister) VisitArgumentList(n *ArgumentList) []Node {
	return n.Exprs
}

// Identifiers returns the distinct identifier names in n, in order of first
// appearance.
func Identifiers(n Node) []string {
	seen := make(map[string]bool)
	var names []string
	var walk func(Node)
	walk = func(n Node) {
		if id, ok := n.(*Identifier); ok {
			if !seen[id.Name] {
				seen[id.Name] = true
				names = append(names, id.Name)
			}
			return
		}
		for _, c := range Children(n) {
			walk(c)
		}
	}
	walk(n)
	return names
}

// IsComparison reports whether n is a relational or equality operation.
func IsComparison(n Node) bool {
	b, ok := n.(*BinOp)
	return ok && b.Op.IsComparison()
}
