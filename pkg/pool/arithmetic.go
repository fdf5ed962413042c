package pool

import (
	"math/rand"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
)

func init() {
	Register("arithmetic", func() Pool { return &ArithmeticPool{} })
}

// ArithmeticPool provides x, y, ints 0-10 and the four arithmetic operators.
// Trees may divide by zero.
type ArithmeticPool struct{}

func (p *ArithmeticPool) Name() string { return "arithmetic" }

func (p *ArithmeticPool) RandomLeaf(rng *rand.Rand) ast.Node {
	r := rng.Float64()
	switch {
	case r < 0.25:
		return &ast.Identifier{Name: "x"}
	case r < 0.4:
		return &ast.Identifier{Name: "y"}
	default:
		return randomInt(rng, 0, 10)
	}
}

func (p *ArithmeticPool) RandomUnary(*rand.Rand) ast.UnaryOp { return ast.OpNeg }

var arithmeticBinary = []ast.BinaryOp{
	ast.OpAdd,
	ast.OpSub,
	ast.OpMul,
	ast.OpDiv,
}

func (p *ArithmeticPool) RandomBinary(rng *rand.Rand) ast.BinaryOp {
	return arithmeticBinary[rng.Intn(len(arithmeticBinary))]
}

func (p *ArithmeticPool) RandomTree(rng *rand.Rand, maxDepth int) ast.Node {
	return randomTree(p, rng, maxDepth)
}
