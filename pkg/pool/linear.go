package pool

import (
	"math/rand"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
)

func init() {
	Register("linear", func() Pool { return &LinearPool{} })
}

// LinearPool builds trees that are linear in x: sums, differences and
// negations of x and small ints, multiplied only by int literals.
type LinearPool struct{}

func (p *LinearPool) Name() string { return "linear" }

func (p *LinearPool) RandomLeaf(rng *rand.Rand) ast.Node {
	if rng.Float64() < 0.4 {
		return &ast.Identifier{Name: "x"}
	}
	return randomInt(rng, 1, 10)
}

func (p *LinearPool) RandomUnary(*rand.Rand) ast.UnaryOp { return ast.OpNeg }

var linearBinary = []ast.BinaryOp{
	ast.OpAdd,
	ast.OpSub,
	ast.OpMul,
}

func (p *LinearPool) RandomBinary(rng *rand.Rand) ast.BinaryOp {
	return linearBinary[rng.Intn(len(linearBinary))]
}

func (p *LinearPool) RandomTree(rng *rand.Rand, maxDepth int) ast.Node {
	if maxDepth <= 1 || rng.Float64() < 0.35 {
		return p.RandomLeaf(rng)
	}
	if rng.Float64() < 0.15 {
		return &ast.UnOp{Op: ast.OpNeg, Operand: p.RandomTree(rng, maxDepth-1)}
	}
	op := p.RandomBinary(rng)
	if op != ast.OpMul {
		return &ast.BinOp{Op: op, Left: p.RandomTree(rng, maxDepth-1), Right: p.RandomTree(rng, maxDepth-1)}
	}
	// One factor is always a literal so x never multiplies x.
	k := randomInt(rng, -5, 5)
	if rng.Intn(2) == 0 {
		return &ast.BinOp{Op: op, Left: k, Right: p.RandomTree(rng, maxDepth-1)}
	}
	return &ast.BinOp{Op: op, Left: p.RandomTree(rng, maxDepth-1), Right: k}
}
