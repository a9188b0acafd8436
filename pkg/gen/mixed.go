package gen

import (
	"fmt"
	"math/rand"

	"github.com/wildfunctions/exprfold/pkg/expr"
)

func init() {
	Register("mixed", func() Profile { return &MixedProfile{} })
}

// MixedProfile extends literals with variable leaves. Trees containing
// a variable never fold completely, which exercises the fold blocker
// paths.
type MixedProfile struct{}

func (p *MixedProfile) Name() string { return "mixed" }

func (p *MixedProfile) RandomLeaf(rng *rand.Rand) expr.Expr {
	r := rng.Float64()
	switch {
	case r < 0.35:
		return expr.NewVariable(fmt.Sprintf("x%d", rng.Intn(3)))
	case r < 0.85:
		return expr.NewLiteral(float64(rng.Intn(10) + 1))
	default:
		return expr.NewLiteral(float64(rng.Intn(21) - 10))
	}
}

func (p *MixedProfile) RandomOperator(rng *rand.Rand) expr.Operator {
	return operators[rng.Intn(len(operators))]
}

func (p *MixedProfile) RandomFunc(rng *rand.Rand) expr.Func {
	return funcs[rng.Intn(len(funcs))]
}

func (p *MixedProfile) RandomTree(rng *rand.Rand, maxDepth int) expr.Expr {
	return randomTree(p, rng, maxDepth)
}
