package eval

import (
	"github.com/wildfunctions/khwarizmi/pkg/ast"
	"github.com/wildfunctions/khwarizmi/pkg/diag"
	"github.com/wildfunctions/khwarizmi/pkg/value"
)

// VisitBinOp evaluates both operands first. If either is symbolic the node
// itself is the result.
func (w walker) VisitBinOp(n *ast.BinOp) result {
	l := w.eval(n.Left)
	if l.err != nil {
		return l
	}
	r := w.eval(n.Right)
	if r.err != nil {
		return r
	}
	if l.t == value.EqRepr || r.t == value.EqRepr {
		return symbolicResult(n)
	}

	switch {
	case n.Op.IsArithmetic() && l.t == value.Int && r.t == value.Int:
		return arith(n.Op, l.v.Int(), r.v.Int())
	case n.Op.IsLogical() && l.t == value.Bool && r.t == value.Bool:
		if n.Op == ast.OpAnd {
			return boolResult(l.v.Bool() && r.v.Bool())
		}
		return boolResult(l.v.Bool() || r.v.Bool())
	case n.Op.IsComparison() && l.t == value.Int && r.t == value.Int:
		return boolResult(compare(n.Op, l.v.Int(), r.v.Int()))
	case (n.Op == ast.OpEq || n.Op == ast.OpNeq) && l.t == value.Bool && r.t == value.Bool:
		return boolResult((l.v.Bool() == r.v.Bool()) == (n.Op == ast.OpEq))
	}
	return fail(diag.Errorf(diag.OperatorTypeError, "operator %s is not defined for %s and %s", n.Op, l.t, r.t))
}

func (w walker) VisitUnOp(n *ast.UnOp) result {
	o := w.eval(n.Operand)
	if o.err != nil {
		return o
	}
	if o.t == value.EqRepr {
		return symbolicResult(n)
	}
	switch {
	case n.Op == ast.OpNeg && o.t == value.Int:
		return intResult(-o.v.Int())
	case n.Op == ast.OpNot && o.t == value.Bool:
		return boolResult(!o.v.Bool())
	}
	return fail(diag.Errorf(diag.OperatorTypeError, "operator %s is not defined for %s", n.Op, o.t))
}

func arith(op ast.BinaryOp, a, b int64) result {
	switch op {
	case ast.OpAdd:
		return intResult(a + b)
	case ast.OpSub:
		return intResult(a - b)
	case ast.OpMul:
		return intResult(a * b)
	default:
		if b == 0 {
			return fail(diag.Errorf(diag.DivisionByZeroError, "division by zero: %d / 0", a))
		}
		return intResult(floorDiv(a, b))
	}
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func compare(op ast.BinaryOp, a, b int64) bool {
	switch op {
	case ast.OpEq:
		return a == b
	case ast.OpNeq:
		return a != b
	case ast.OpLt:
		return a < b
	case ast.OpGt:
		return a > b
	case ast.OpLte:
		return a <= b
	default:
		return a >= b
	}
}
