package expr

import "math"

func (l *Literal) Evaluate() float64 {
	return l.value
}

// Evaluate for Variable always returns 0; identifiers carry no binding.
func (v *Variable) Evaluate() float64 {
	return 0.0
}

func (b *BinaryOp) Evaluate() float64 {
	left := b.left.Evaluate()
	right := b.right.Evaluate()
	return b.op.apply(left, right)
}

func (c *Call) Evaluate() float64 {
	return c.fn.apply(c.arg.Evaluate())
}

// apply computes op over two evaluated operands. No zero check on
// divide: x/0 propagates as Inf or NaN.
func (op Operator) apply(left, right float64) float64 {
	switch op {
	case OpAdd:
		return left + right
	case OpSub:
		return left - right
	case OpDiv:
		return left / right
	case OpMul:
		return left * right
	default:
		return math.NaN()
	}
}

// apply computes the function over an evaluated argument. Sqrt of a
// negative propagates as NaN.
func (f Func) apply(arg float64) float64 {
	switch f {
	case FuncSqrt:
		return math.Sqrt(arg)
	case FuncAbs:
		return math.Abs(arg)
	default:
		return math.NaN()
	}
}
