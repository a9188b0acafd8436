package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldLiteralOnlyTreeCollapses(t *testing.T) {
	trees := []Expr{
		lit(1.234),
		bin(t, lit(1.234), OpDiv, lit(-1.234)),
		absMulSqrtTree(t, lit(2)),
		call(t, "sqrt", bin(t, lit(32), OpSub, lit(16))),
		bin(t, bin(t, lit(1), OpAdd, lit(2)), OpMul, bin(t, lit(3), OpSub, lit(4))),
	}
	for _, tree := range trees {
		folded := Fold(tree)
		result, ok := folded.(*Literal)
		require.True(t, ok, "Fold(%v) = %v, want a single literal", tree, folded)
		assert.True(t, sameValue(tree.Evaluate(), result.Value()), "%v", tree)
		assert.Equal(t, 1, folded.NodeCount())
	}
}

func TestFoldScenario(t *testing.T) {
	b := bin(t, lit(1.234), OpDiv, lit(-1.234))
	folded := Fold(b)
	result, ok := folded.(*Literal)
	require.True(t, ok)
	assert.Equal(t, -1.0, result.Value())

	folded = Fold(absMulSqrtTree(t, lit(2)))
	result, ok = folded.(*Literal)
	require.True(t, ok)
	assert.Equal(t, 8.0, result.Value())
}

func TestVariableBlocksFoldingAtEveryAncestor(t *testing.T) {
	// abs(var * sqrt(32-16)): the sqrt subtree folds to 4, the
	// enclosing product and call stay unfolded.
	tree := absMulSqrtTree(t, NewVariable("var"))
	folded := Fold(tree)

	outer, ok := folded.(*Call)
	require.True(t, ok, "outer abs must not fold, got %v", folded)
	assert.Equal(t, FuncAbs, outer.fn)

	mul, ok := outer.arg.(*BinaryOp)
	require.True(t, ok, "product over a variable must not fold")
	assert.Equal(t, OpMul, mul.op)

	v, ok := mul.left.(*Variable)
	require.True(t, ok)
	assert.Equal(t, "var", v.name)

	right, ok := mul.right.(*Literal)
	require.True(t, ok, "sqrt(32-16) should fold to a literal")
	assert.Equal(t, 4.0, right.value)

	assert.Equal(t, "abs(var*4)", folded.String())
}

func TestFoldBareVariable(t *testing.T) {
	folded := Fold(NewVariable("x"))
	v, ok := folded.(*Variable)
	require.True(t, ok, "a variable never folds to a literal")
	assert.Equal(t, "x", v.name)
}

func TestFoldPreservesValue(t *testing.T) {
	trees := []Expr{
		absMulSqrtTree(t, lit(2)),
		absMulSqrtTree(t, NewVariable("var")),
		bin(t, NewVariable("a"), OpAdd, bin(t, lit(2), OpMul, lit(3))),
		bin(t, lit(1), OpDiv, lit(0)),
		call(t, "sqrt", lit(-4)),
	}
	for _, tree := range trees {
		assert.True(t, sameValue(tree.Evaluate(), Fold(tree).Evaluate()), "%v", tree)
	}
}

func TestFoldIsIdempotent(t *testing.T) {
	trees := []Expr{
		lit(7),
		NewVariable("x"),
		absMulSqrtTree(t, lit(2)),
		absMulSqrtTree(t, NewVariable("var")),
	}
	for _, tree := range trees {
		once := Fold(tree)
		twice := Fold(once)
		assert.Equal(t, once.String(), twice.String())
		assert.Equal(t, once.NodeCount(), twice.NodeCount())
		assert.True(t, sameValue(once.Evaluate(), twice.Evaluate()))
	}
}

func TestFoldNeverIncreasesNodeCount(t *testing.T) {
	trees := []Expr{
		lit(7),
		absMulSqrtTree(t, lit(2)),
		absMulSqrtTree(t, NewVariable("var")),
		bin(t, NewVariable("a"), OpSub, NewVariable("b")),
	}
	for _, tree := range trees {
		assert.LessOrEqual(t, Fold(tree).NodeCount(), tree.NodeCount())
	}
}

func TestFoldDoesNotMutateInput(t *testing.T) {
	tree := absMulSqrtTree(t, NewVariable("var"))
	before := tree.String()
	Fold(tree)
	assert.Equal(t, before, tree.String())
	assert.Equal(t, 7, tree.NodeCount())
}

func TestFoldComputesIEEEValues(t *testing.T) {
	// Folding a literal-only division by zero bakes the Inf in.
	folded := Fold(bin(t, lit(1), OpDiv, lit(0)))
	result, ok := folded.(*Literal)
	require.True(t, ok)
	assert.True(t, math.IsInf(result.Value(), 1))

	folded = Fold(call(t, "sqrt", lit(-4)))
	result, ok = folded.(*Literal)
	require.True(t, ok)
	assert.True(t, math.IsNaN(result.Value()))
}
