package ast

func (l *IntLiteral) Clone() Node {
	return &IntLiteral{Val: l.Val}
}

func (l *BoolLiteral) Clone() Node {
	return &BoolLiteral{Val: l.Val}
}

func (i *Identifier) Clone() Node {
	return &Identifier{Name: i.Name}
}

func (b *BinOp) Clone() Node {
	return &BinOp{
		Op:    b.Op,
		Left:  b.Left.Clone(),
		Right: b.Right.Clone(),
	}
}

func (u *UnOp) Clone() Node {
	return &UnOp{
		Op:      u.Op,
		Operand: u.Operand.Clone(),
	}
}

func (e *Equation) Clone() Node {
	return &Equation{Expr: e.Expr.Clone()}
}

func (*Input) Clone() Node {
	return &Input{}
}

func (d *VarDec) Clone() Node {
	c := &VarDec{Type: d.Type, Name: d.Name}
	if d.Init != nil {
		c.Init = d.Init.Clone()
	}
	return c
}

func (a *Assignment) Clone() Node {
	return &Assignment{Name: a.Name, Expr: a.Expr.Clone()}
}

func (b *Block) Clone() Node {
	return cloneBlock(b)
}

func (i *If) Clone() Node {
	c := &If{
		Cond: i.Cond.Clone(),
		Then: cloneBlock(i.Then),
		Else: cloneBlock(i.Else),
	}
	for _, e := range i.Elifs {
		c.Elifs = append(c.Elifs, Elif{Cond: e.Cond.Clone(), Body: cloneBlock(e.Body)})
	}
	return c
}

func (w *While) Clone() Node {
	return &While{Cond: w.Cond.Clone(), Body: cloneBlock(w.Body)}
}

func (p *Program) Clone() Node {
	return &Program{Body: cloneBlock(p.Body)}
}

func (c *PrintCmd) Clone() Node {
	return &PrintCmd{Args: cloneArgs(c.Args)}
}

func (c *ShowCmd) Clone() Node {
	return &ShowCmd{Args: cloneArgs(c.Args)}
}

func (c *SolveCmd) Clone() Node {
	return &SolveCmd{Args: cloneArgs(c.Args)}
}

func (a *ArgumentList) Clone() Node {
	return cloneArgs(a)
}

func cloneBlock(b *Block) *Block {
	if b == nil {
		return nil
	}
	stmts := make([]Node, len(b.Stmts))
	for i, s := range b.Stmts {
		stmts[i] = s.Clone()
	}
	return &Block{Stmts: stmts}
}

func cloneArgs(a *ArgumentList) *ArgumentList {
	if a == nil {
		return &ArgumentList{}
	}
	exprs := make([]Node, len(a.Exprs))
	for i, e := range a.Exprs {
		exprs[i] = e.Clone()
	}
	return &ArgumentList{Exprs: exprs}
}
