package ast

import "fmt"

// Visitor has one method per node kind. Adding a kind to this interface breaks
// every implementation until it handles the new kind.
type Visitor[R any] interface {
	VisitIntLiteral(n *IntLiteral) R
	VisitBoolLiteral(n *BoolLiteral) R
	VisitIdentifier(n *Identifier) R
	VisitBinOp(n *BinOp) R
	VisitUnOp(n *UnOp) R
	VisitEquation(n *Equation) R
	VisitInput(n *Input) R
	VisitVarDec(n *VarDec) R
	VisitAssignment(n *Assignment) R
	VisitBlock(n *Block) R
	VisitIf(n *If) R
	VisitWhile(n *While) R
	VisitProgram(n *Program) R
	VisitPrintCmd(n *PrintCmd) R
	VisitShowCmd(n *ShowCmd) R
	VisitSolveCmd(n *SolveCmd) R
	VisitArgumentList(n *ArgumentList) R
}

// Visit dispatches n to the matching method of v.
func Visit[R any](n Node, v Visitor[R]) R {
	switch n := n.(type) {
	case *IntLiteral:
		return v.VisitIntLiteral(n)
	case *BoolLiteral:
		return v.VisitBoolLiteral(n)
	case *Identifier:
		return v.VisitIdentifier(n)
	case *BinOp:
		return v.VisitBinOp(n)
	case *UnOp:
		return v.VisitUnOp(n)
	case *Equation:
		return v.VisitEquation(n)
	case *Input:
		return v.VisitInput(n)
	case *VarDec:
		return v.VisitVarDec(n)
	case *Assignment:
		return v.VisitAssignment(n)
	case *Block:
		return v.VisitBlock(n)
	case *If:
		return v.VisitIf(n)
	case *While:
		return v.VisitWhile(n)
	case *Program:
		return v.VisitProgram(n)
	case *PrintCmd:
		return v.VisitPrintCmd(n)
	case *ShowCmd:
		return v.VisitShowCmd(n)
	case *SolveCmd:
		return v.VisitSolveCmd(n)
	case *ArgumentList:
		return v.VisitArgumentList(n)
	default:
		panic(fmt.Sprintf("ast: unknown node type %T", n))
	}
}
