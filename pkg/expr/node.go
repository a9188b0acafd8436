package expr

import "github.com/cockroachdb/errors"

// Expr is the interface for all expression tree nodes. A tree is built
// bottom-up through the New* constructors and is immutable afterwards:
// nodes expose read-only accessors only, and every transform returns a
// brand-new tree rather than mutating its input.
type Expr interface {
	// Evaluate computes the numeric value of the tree. It is pure and
	// never fails: division by zero and sqrt of a negative follow IEEE
	// 754 semantics (Inf/NaN) rather than signaling.
	Evaluate() float64
	// Accept dispatches to the Transformer method matching this node's
	// variant and returns the newly built tree.
	Accept(t Transformer) Expr
	String() string
	NodeCount() int
	Depth() int
}

// Construction errors. Both are raised at construction time only;
// Evaluate and the transforms never fail.
var (
	ErrInvalidOperand      = errors.New("missing operand expression")
	ErrUnsupportedFunction = errors.New("unsupported function")
)

// Operator identifies a binary arithmetic operation.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpDiv
	OpMul
)

var operatorSymbols = map[Operator]string{
	OpAdd: "+",
	OpSub: "-",
	OpDiv: "/",
	OpMul: "*",
}

// Symbol returns the operator's literal character.
func (op Operator) Symbol() string {
	return operatorSymbols[op]
}

// Func identifies one of the two supported call targets.
type Func int

const (
	FuncSqrt Func = iota
	FuncAbs
)

var funcNames = map[Func]string{
	FuncSqrt: "sqrt",
	FuncAbs:  "abs",
}

// Name returns the function's canonical lower-case name.
func (f Func) Name() string {
	return funcNames[f]
}

// funcByName maps a name to its Func tag. Case-sensitive: only the
// exact strings "sqrt" and "abs" are recognized.
func funcByName(name string) (Func, bool) {
	for f, n := range funcNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// Literal is a leaf node holding one floating-point value.
type Literal struct {
	value float64
}

// BinaryOp applies an operator to two child expressions. Both children
// are required at construction; there is no empty state.
type BinaryOp struct {
	left  Expr
	op    Operator
	right Expr
}

// Call applies one of the supported functions to a single argument.
type Call struct {
	fn  Func
	arg Expr
}

// Variable is a named leaf. No binding mechanism exists anywhere in
// this system: a Variable always evaluates to 0.0 regardless of its
// identifier. This is intended behavior, not a gap.
type Variable struct {
	name string
}

// NewLiteral constructs a Literal. Always succeeds.
func NewLiteral(value float64) *Literal {
	return &Literal{value: value}
}

// NewBinaryOp constructs a BinaryOp from two fully built operands.
func NewBinaryOp(left Expr, op Operator, right Expr) (*BinaryOp, error) {
	if left == nil || right == nil {
		return nil, errors.Wrapf(ErrInvalidOperand, "binary %q", op.Symbol())
	}
	return &BinaryOp{left: left, op: op, right: right}, nil
}

// NewCall constructs a Call. The name must be exactly "sqrt" or "abs".
func NewCall(name string, arg Expr) (*Call, error) {
	fn, ok := funcByName(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFunction, "%q", name)
	}
	if arg == nil {
		return nil, errors.Wrapf(ErrInvalidOperand, "call %q", name)
	}
	return &Call{fn: fn, arg: arg}, nil
}

// NewVariable constructs a Variable. Always succeeds.
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

// Value returns the literal's value.
func (l *Literal) Value() float64 { return l.value }

// Left returns the left operand.
func (b *BinaryOp) Left() Expr { return b.left }

// Right returns the right operand.
func (b *BinaryOp) Right() Expr { return b.right }

// Op returns the operator tag.
func (b *BinaryOp) Op() Operator { return b.op }

// Fn returns the function tag.
func (c *Call) Fn() Func { return c.fn }

// Name returns the function's canonical name.
func (c *Call) Name() string { return c.fn.Name() }

// Arg returns the call's argument.
func (c *Call) Arg() Expr { return c.arg }

// Name returns the variable's identifier.
func (v *Variable) Name() string { return v.name }
