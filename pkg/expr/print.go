package expr

import (
	"fmt"
	"strconv"
)

// String methods linearize a tree depth-first: left<op>right for a
// binary operation, name(arg) for a call, the bare identifier for a
// variable, and the shortest decimal form for a literal. The format is
// for observing transform results, not a durable encoding.

func (l *Literal) String() string {
	return strconv.FormatFloat(l.value, 'g', -1, 64)
}

func (v *Variable) String() string {
	return v.name
}

func (b *BinaryOp) String() string {
	return b.left.String() + b.op.Symbol() + b.right.String()
}

func (c *Call) String() string {
	return fmt.Sprintf("%s(%s)", c.fn.Name(), c.arg.String())
}

// Render returns the textual form of e.
func Render(e Expr) string {
	return e.String()
}
