// Package pool provides random building blocks for Khwarizmi expression trees.
// Property tests draw trees from a named pool with a seeded source.
package pool

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
)

// Pool provides random building blocks for constructing expression trees.
type Pool interface {
	Name() string
	RandomLeaf(rng *rand.Rand) ast.Node
	RandomUnary(rng *rand.Rand) ast.UnaryOp
	RandomBinary(rng *rand.Rand) ast.BinaryOp
	RandomTree(rng *rand.Rand, maxDepth int) ast.Node
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown pool: %s (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// randomTree is a shared helper for building random trees.
func randomTree(p Pool, rng *rand.Rand, maxDepth int) ast.Node {
	if maxDepth <= 1 {
		return p.RandomLeaf(rng)
	}
	// Bias toward leaves at shallow depths to keep trees small
	r := rng.Float64()
	switch {
	case r < 0.4:
		return p.RandomLeaf(rng)
	case r < 0.55:
		return &ast.UnOp{
			Op:      p.RandomUnary(rng),
			Operand: randomTree(p, rng, maxDepth-1),
		}
	default:
		return &ast.BinOp{
			Op:    p.RandomBinary(rng),
			Left:  randomTree(p, rng, maxDepth-1),
			Right: randomTree(p, rng, maxDepth-1),
		}
	}
}

func randomInt(rng *rand.Rand, lo, hi int) *ast.IntLiteral {
	return &ast.IntLiteral{Val: int64(lo + rng.Intn(hi-lo+1))}
}
