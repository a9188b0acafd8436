package gen

import (
	"math/rand"

	"github.com/wildfunctions/exprfold/pkg/expr"
)

func init() {
	Register("literals", func() Profile { return &LiteralsProfile{} })
}

// LiteralsProfile generates trees whose leaves are all literals, so
// every tree it produces folds down to a single literal.
type LiteralsProfile struct{}

func (p *LiteralsProfile) Name() string { return "literals" }

func (p *LiteralsProfile) RandomLeaf(rng *rand.Rand) expr.Expr {
	if rng.Float64() < 0.25 {
		// powers of 2: 2, 4, 8, 16
		exp := rng.Intn(4) + 1
		return expr.NewLiteral(float64(int64(1) << uint(exp)))
	}
	return expr.NewLiteral(float64(rng.Intn(10) + 1))
}

func (p *LiteralsProfile) RandomOperator(rng *rand.Rand) expr.Operator {
	return operators[rng.Intn(len(operators))]
}

func (p *LiteralsProfile) RandomFunc(rng *rand.Rand) expr.Func {
	return funcs[rng.Intn(len(funcs))]
}

func (p *LiteralsProfile) RandomTree(rng *rand.Rand, maxDepth int) expr.Expr {
	return randomTree(p, rng, maxDepth)
}
