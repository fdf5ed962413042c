package pool

import (
	"math/rand"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
)

func init() {
	Register("mixed", func() Pool { return &MixedPool{} })
}

// MixedPool extends arithmetic with bools, comparisons and logical
// operators. Its trees are not type checked.
type MixedPool struct{}

func (p *MixedPool) Name() string { return "mixed" }

var mixedNames = []string{"x", "y", "f", "ok"}

func (p *MixedPool) RandomLeaf(rng *rand.Rand) ast.Node {
	r := rng.Float64()
	switch {
	case r < 0.4:
		return &ast.Identifier{Name: mixedNames[rng.Intn(len(mixedNames))]}
	case r < 0.85:
		return randomInt(rng, 0, 10)
	default:
		return &ast.BoolLiteral{Val: rng.Intn(2) == 0}
	}
}

var mixedUnary = []ast.UnaryOp{
	ast.OpNeg,
	ast.OpNot,
}

func (p *MixedPool) RandomUnary(rng *rand.Rand) ast.UnaryOp {
	return mixedUnary[rng.Intn(len(mixedUnary))]
}

var mixedBinary = []ast.BinaryOp{
	ast.OpAdd,
	ast.OpSub,
	ast.OpMul,
	ast.OpDiv,
	ast.OpAnd,
	ast.OpOr,
	ast.OpEq,
	ast.OpNeq,
	ast.OpLt,
	ast.OpGt,
	ast.OpLte,
	ast.OpGte,
}

func (p *MixedPool) RandomBinary(rng *rand.Rand) ast.BinaryOp {
	return mixedBinary[rng.Intn(len(mixedBinary))]
}

func (p *MixedPool) RandomTree(rng *rand.Rand, maxDepth int) ast.Node {
	return randomTree(p, rng, maxDepth)
}
