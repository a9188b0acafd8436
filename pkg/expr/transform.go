package expr

// Transformer is a tree-wide operation with one method per variant.
// Each method receives the concrete node and returns a newly built
// Expr owned by the caller; implementations never mutate their input.
// New operations are added by implementing this interface, not by
// extending the variant set.
type Transformer interface {
	TransformLiteral(l *Literal) Expr
	TransformBinaryOp(b *BinaryOp) Expr
	TransformCall(c *Call) Expr
	TransformVariable(v *Variable) Expr
}

func (l *Literal) Accept(t Transformer) Expr {
	return t.TransformLiteral(l)
}

func (b *BinaryOp) Accept(t Transformer) Expr {
	return t.TransformBinaryOp(b)
}

func (c *Call) Accept(t Transformer) Expr {
	return t.TransformCall(c)
}

func (v *Variable) Accept(t Transformer) Expr {
	return t.TransformVariable(v)
}
