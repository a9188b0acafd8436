package gen

import (
	"math/rand"

	"github.com/cockroachdb/errors"

	"github.com/wildfunctions/exprfold/pkg/expr"
)

// Profile provides random building blocks for constructing expression
// trees.
type Profile interface {
	Name() string
	RandomLeaf(rng *rand.Rand) expr.Expr
	RandomOperator(rng *rand.Rand) expr.Operator
	RandomFunc(rng *rand.Rand) expr.Func
	RandomTree(rng *rand.Rand, maxDepth int) expr.Expr
}

var registry = map[string]func() Profile{}

// Register adds a profile constructor to the registry.
func Register(name string, constructor func() Profile) {
	registry[name] = constructor
}

// Get returns a profile by name.
func Get(name string) (Profile, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, errors.Newf("unknown profile: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered profile names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	return names
}

var operators = []expr.Operator{
	expr.OpAdd,
	expr.OpSub,
	expr.OpMul,
	expr.OpDiv,
}

var funcs = []expr.Func{
	expr.FuncSqrt,
	expr.FuncAbs,
}

// randomTree is a shared helper for building random trees.
func randomTree(p Profile, rng *rand.Rand, maxDepth int) expr.Expr {
	if maxDepth <= 1 {
		return p.RandomLeaf(rng)
	}
	// Bias toward leaves at shallow depths to keep trees small
	r := rng.Float64()
	switch {
	case r < 0.4:
		return p.RandomLeaf(rng)
	case r < 0.6:
		arg := randomTree(p, rng, maxDepth-1)
		// The argument is always present here, so NewCall cannot fail.
		c, _ := expr.NewCall(p.RandomFunc(rng).Name(), arg)
		return c
	default:
		left := randomTree(p, rng, maxDepth-1)
		right := randomTree(p, rng, maxDepth-1)
		b, _ := expr.NewBinaryOp(left, p.RandomOperator(rng), right)
		return b
	}
}
