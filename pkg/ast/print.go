package ast

import (
	"fmt"
	"strings"
)

var unaryOpSymbols = map[UnaryOp]string{
	OpNeg: "-",
	OpNot: "!",
}

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpAnd: "&&",
	OpOr:  "||",
	OpEq:  "==",
	OpNeq: "!=",
	OpLt:  "<",
	OpGt:  ">",
	OpLte: "<=",
	OpGte: ">=",
}

func (op UnaryOp) String() string {
	if s, ok := unaryOpSymbols[op]; ok {
		return s
	}
	return "?"
}

func (op BinaryOp) String() string {
	if s, ok := binaryOpSymbols[op]; ok {
		return s
	}
	return "?"
}

// IsAtom reports whether n renders without surrounding parentheses.
func IsAtom(n Node) bool {
	switch n.(type) {
	case *IntLiteral, *BoolLiteral, *Identifier:
		return true
	default:
		return false
	}
}

// String methods render source-like text without consulting any scope.

func (l *IntLiteral) String() string {
	return fmt.Sprintf("%d", l.Val)
}

func (l *BoolLiteral) String() string {
	if l.Val {
		return "true"
	}
	return "false"
}

func (i *Identifier) String() string {
	return i.Name
}

func (b *BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (u *UnOp) String() string {
	if IsAtom(u.Operand) {
		return u.Op.String() + u.Operand.String()
	}
	return fmt.Sprintf("%s(%s)", u.Op, u.Operand.String())
}

func (e *Equation) String() string {
	return e.Expr.String()
}

func (*Input) String() string {
	return "input()"
}

func (d *VarDec) String() string {
	if d.Init == nil {
		return fmt.Sprintf("%s %s", d.Type, d.Name)
	}
	return fmt.Sprintf("%s %s = %s", d.Type, d.Name, d.Init.String())
}

func (a *Assignment) String() string {
	return fmt.Sprintf("%s = %s", a.Name, a.Expr.String())
}

func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("BEGIN\n")
	for _, s := range b.Stmts {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	sb.WriteString("END")
	return sb.String()
}

func (i *If) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "if %s %s", i.Cond.String(), i.Then.String())
	for _, e := range i.Elifs {
		fmt.Fprintf(&sb, " elif %s %s", e.Cond.String(), e.Body.String())
	}
	if i.Else != nil {
		fmt.Fprintf(&sb, " else %s", i.Else.String())
	}
	return sb.String()
}

func (w *While) String() string {
	return fmt.Sprintf("while %s %s", w.Cond.String(), w.Body.String())
}

func (p *Program) String() string {
	return p.Body.String()
}

func (c *PrintCmd) String() string {
	return "print(" + c.Args.String() + ")"
}

func (c *ShowCmd) String() string {
	return "show(" + c.Args.String() + ")"
}

func (c *SolveCmd) String() string {
	return "solve(" + c.Args.String() + ")"
}

func (a *ArgumentList) String() string {
	if a == nil {
		return ""
	}
	parts := make([]string, len(a.Exprs))
	for i, e := range a.Exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
