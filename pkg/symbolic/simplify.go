package symbolic

import (
	"math"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
)

// Simplify applies rewrite rules to reduce an expression tree.
// It repeatedly applies rules until no further changes occur. Only rules that
// hold for integer arithmetic are applied; division folds only when exact.
func Simplify(node ast.Node) ast.Node {
	for i := 0; i < 20; i++ { // cap iterations
		next := simplifyOnce(node)
		if next.String() == node.String() {
			return next
		}
		node = next
	}
	return node
}

func simplifyOnce(node ast.Node) ast.Node {
	switch n := node.(type) {
	case *ast.IntLiteral, *ast.BoolLiteral, *ast.Identifier, *ast.Input:
		return node

	case *ast.Equation:
		return simplifyOnce(n.Expr)

	case *ast.UnOp:
		child := simplifyOnce(n.Operand)

		// Double negation: -(-x) = x, !(!x) = x
		if inner, ok := child.(*ast.UnOp); ok && inner.Op == n.Op {
			return inner.Operand
		}

		switch c := child.(type) {
		case *ast.IntLiteral:
			if n.Op == ast.OpNeg {
				return &ast.IntLiteral{Val: -c.Val}
			}
		case *ast.BoolLiteral:
			if n.Op == ast.OpNot {
				return &ast.BoolLiteral{Val: !c.Val}
			}
		}
		return &ast.UnOp{Op: n.Op, Operand: child}

	case *ast.BinOp:
		left := simplifyOnce(n.Left)
		right := simplifyOnce(n.Right)

		lc, lok := left.(*ast.IntLiteral)
		rc, rok := right.(*ast.IntLiteral)

		if lok && rok {
			if folded, ok := foldConstants(n.Op, lc.Val, rc.Val); ok {
				return folded
			}
		}

		lb, lbok := left.(*ast.BoolLiteral)
		rb, rbok := right.(*ast.BoolLiteral)
		if lbok && rbok {
			if folded, ok := foldBools(n.Op, lb.Val, rb.Val); ok {
				return folded
			}
		}

		switch n.Op {
		case ast.OpAdd:
			// x + 0 = x
			if rok && rc.Val == 0 {
				return left
			}
			// 0 + x = x
			if lok && lc.Val == 0 {
				return right
			}
			// x + (-k) = x - k; MinInt64 has no positive counterpart
			if rok && rc.Val < 0 && rc.Val != math.MinInt64 {
				return simplifyOnce(&ast.BinOp{Op: ast.OpSub, Left: left, Right: &ast.IntLiteral{Val: -rc.Val}})
			}
			// x + neg(y) = x - y
			if ru, ok := right.(*ast.UnOp); ok && ru.Op == ast.OpNeg {
				return simplifyOnce(&ast.BinOp{Op: ast.OpSub, Left: left, Right: ru.Operand})
			}

		case ast.OpSub:
			// x - 0 = x
			if rok && rc.Val == 0 {
				return left
			}
			// 0 - x = -x
			if lok && lc.Val == 0 {
				return simplifyOnce(&ast.UnOp{Op: ast.OpNeg, Operand: right})
			}
			// x - (-k) = x + k
			if rok && rc.Val < 0 && rc.Val != math.MinInt64 {
				return simplifyOnce(&ast.BinOp{Op: ast.OpAdd, Left: left, Right: &ast.IntLiteral{Val: -rc.Val}})
			}
			// x - neg(y) = x + y
			if ru, ok := right.(*ast.UnOp); ok && ru.Op == ast.OpNeg {
				return simplifyOnce(&ast.BinOp{Op: ast.OpAdd, Left: left, Right: ru.Operand})
			}
			// x - x = 0 (structural equality); input() reads differ per call
			if left.String() == right.String() && !containsInput(left) {
				return &ast.IntLiteral{Val: 0}
			}

		case ast.OpMul:
			// x * 0 = 0
			if (rok && rc.Val == 0 && !containsInput(left)) || (lok && lc.Val == 0 && !containsInput(right)) {
				return &ast.IntLiteral{Val: 0}
			}
			// x * 1 = x
			if rok && rc.Val == 1 {
				return left
			}
			// 1 * x = x
			if lok && lc.Val == 1 {
				return right
			}
			// x * (-1) = -x
			if rok && rc.Val == -1 {
				return simplifyOnce(&ast.UnOp{Op: ast.OpNeg, Operand: left})
			}
			// (-1) * x = -x
			if lok && lc.Val == -1 {
				return simplifyOnce(&ast.UnOp{Op: ast.OpNeg, Operand: right})
			}

		case ast.OpDiv:
			// x / 1 = x
			if rok && rc.Val == 1 {
				return left
			}

		case ast.OpAnd:
			// x && true = x
			if rbok && rb.Val {
				return left
			}
			if lbok && lb.Val {
				return right
			}

		case ast.OpOr:
			// x || false = x
			if rbok && !rb.Val {
				return left
			}
			if lbok && !lb.Val {
				return right
			}
		}

		return &ast.BinOp{Op: n.Op, Left: left, Right: right}

	default:
		return node
	}
}

func foldConstants(op ast.BinaryOp, a, b int64) (ast.Node, bool) {
	switch op {
	case ast.OpAdd:
		return &ast.IntLiteral{Val: a + b}, true
	case ast.OpSub:
		return &ast.IntLiteral{Val: a - b}, true
	case ast.OpMul:
		// Check for overflow
		if a != 0 && b != 0 {
			result := a * b
			if result/a != b {
				return nil, false
			}
			return &ast.IntLiteral{Val: result}, true
		}
		return &ast.IntLiteral{Val: 0}, true
	case ast.OpDiv:
		if b == 0 || a%b != 0 {
			return nil, false // don't fold if not exact
		}
		return &ast.IntLiteral{Val: a / b}, true
	case ast.OpEq:
		return &ast.BoolLiteral{Val: a == b}, true
	case ast.OpNeq:
		return &ast.BoolLiteral{Val: a != b}, true
	case ast.OpLt:
		return &ast.BoolLiteral{Val: a < b}, true
	case ast.OpGt:
		return &ast.BoolLiteral{Val: a > b}, true
	case ast.OpLte:
		return &ast.BoolLiteral{Val: a <= b}, true
	case ast.OpGte:
		return &ast.BoolLiteral{Val: a >= b}, true
	default:
		return nil, false
	}
}

func foldBools(op ast.BinaryOp, a, b bool) (ast.Node, bool) {
	switch op {
	case ast.OpAnd:
		return &ast.BoolLiteral{Val: a && b}, true
	case ast.OpOr:
		return &ast.BoolLiteral{Val: a || b}, true
	case ast.OpEq:
		return &ast.BoolLiteral{Val: a == b}, true
	case ast.OpNeq:
		return &ast.BoolLiteral{Val: a != b}, true
	default:
		return nil, false
	}
}

func containsInput(n ast.Node) bool {
	if _, ok := n.(*ast.Input); ok {
		return true
	}
	for _, c := range ast.Children(n) {
		if containsInput(c) {
			return true
		}
	}
	return false
}
