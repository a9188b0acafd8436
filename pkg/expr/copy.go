package expr

// Copier duplicates a tree node for node. The result shares nothing
// with the input and evaluates to the identical value.
type Copier struct{}

// Copy returns an independent deep copy of e.
func Copy(e Expr) Expr {
	return e.Accept(Copier{})
}

func (c Copier) TransformLiteral(l *Literal) Expr {
	return &Literal{value: l.value}
}

func (c Copier) TransformBinaryOp(b *BinaryOp) Expr {
	return &BinaryOp{
		left:  b.left.Accept(c),
		op:    b.op,
		right: b.right.Accept(c),
	}
}

func (c Copier) TransformCall(call *Call) Expr {
	return &Call{
		fn:  call.fn,
		arg: call.arg.Accept(c),
	}
}

func (c Copier) TransformVariable(v *Variable) Expr {
	return &Variable{name: v.name}
}
