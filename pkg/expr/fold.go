package expr

// Folder partially evaluates a tree in one bottom-up pass: any subtree
// built entirely from Literals collapses to a single Literal holding
// its value. A Variable is never constant, so every ancestor of a
// Variable stays unfolded. Folding is idempotent.
type Folder struct{}

// Fold returns a new tree with all literal-only subtrees collapsed.
func Fold(e Expr) Expr {
	return e.Accept(Folder{})
}

func (f Folder) TransformLiteral(l *Literal) Expr {
	return &Literal{value: l.value}
}

func (f Folder) TransformVariable(v *Variable) Expr {
	return &Variable{name: v.name}
}

func (f Folder) TransformBinaryOp(b *BinaryOp) Expr {
	left := b.left.Accept(f)
	right := b.right.Accept(f)

	ll, lok := left.(*Literal)
	rl, rok := right.(*Literal)
	if lok && rok {
		return &Literal{value: b.op.apply(ll.value, rl.value)}
	}
	return &BinaryOp{left: left, op: b.op, right: right}
}

func (f Folder) TransformCall(c *Call) Expr {
	arg := c.arg.Accept(f)

	if lit, ok := arg.(*Literal); ok {
		return &Literal{value: c.fn.apply(lit.value)}
	}
	return &Call{fn: c.fn, arg: arg}
}
