package expr

func (l *Literal) NodeCount() int { return 1 }

func (v *Variable) NodeCount() int { return 1 }

func (c *Call) NodeCount() int { return 1 + c.arg.NodeCount() }
func (b *BinaryOp) NodeCount() int {
	return 1 + b.left.NodeCount() + b.right.NodeCount()
}

func (l *Literal) Depth() int { return 1 }

func (v *Variable) Depth() int { return 1 }

func (c *Call) Depth() int { return 1 + c.arg.Depth() }
func (b *BinaryOp) Depth() int {
	ld := b.left.Depth()
	rd := b.right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// ContainsVariable reports whether any Variable occurs in the tree.
// Folding can never reduce such a tree to a single Literal.
func ContainsVariable(e Expr) bool {
	switch n := e.(type) {
	case *Variable:
		return true
	case *Literal:
		return false
	case *Call:
		return ContainsVariable(n.arg)
	case *BinaryOp:
		return ContainsVariable(n.left) || ContainsVariable(n.right)
	default:
		return false
	}
}
