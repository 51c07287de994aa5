package ast

import "math/big"

// ConstKind identifies a named mathematical constant.
type ConstKind int

const (
	// Pi is the circle constant π ≈ 3.14159.
	Pi ConstKind = iota
	// Tau is the full-turn constant τ = 2π.
	Tau
	// E is Euler's number e ≈ 2.71828.
	E
)

// Node is an expression in the AST. Exactly the types in this package
// implement it: Const, Num, Inverse, VarOp, Exp, Sin, Cos and Tan.
type Node interface {
	node()
}

// Const is a named constant.
type Const struct {
	Kind ConstKind
}

// Num is an exact rational literal.
//
// Val is always kept in lowest terms with a positive denominator; that is
// big.Rat's own invariant and is not re-derived here. Base records the radix
// the literal was written in by the user, or NoBase for derived values.
type Num struct {
	Val  *big.Rat
	Base Base
}

// Inverse is the multiplicative inverse 1/X.
type Inverse struct {
	X Node
}

// VarOp is an n-ary associative operator (sum or product) over an ordered
// child list. Order never affects the value; it only matters when an
// un-reduced tree is rendered back to text.
//
// Freshly constructed binary operators always have exactly 2 children.
// Longer lists arise from reduction and flattening only.
type VarOp struct {
	Kind     OpKind
	Children []Node
}

// Exp is exponentiation Base^Exponent. It is right-associative: the renderer
// parenthesizes accordingly.
type Exp struct {
	Base     Node
	Exponent Node
}

// Sin is the sine function applied to X.
type Sin struct {
	X Node
}

// Cos is the cosine function applied to X.
type Cos struct {
	X Node
}

// Tan is the tangent function applied to X.
type Tan struct {
	X Node
}

func (*Const) node()   {}
func (*Num) node()     {}
func (*Inverse) node() {}
func (*VarOp) node()   {}
func (*Exp) node()     {}
func (*Sin) node()     {}
func (*Cos) node()     {}
func (*Tan) node()     {}

// Zero returns the literal 0 with no base hint.
func Zero() *Num {
	return &Num{Val: new(big.Rat)}
}

// One returns the literal 1 with no base hint.
func One() *Num {
	return &Num{Val: big.NewRat(1, 1)}
}

// MinusOne returns the literal -1 with no base hint.
func MinusOne() *Num {
	return &Num{Val: big.NewRat(-1, 1)}
}

// NewInt returns the integer literal v with no base hint.
func NewInt(v int64) *Num {
	return &Num{Val: big.NewRat(v, 1)}
}

// NewNum returns a literal holding a copy of val, tagged with the radix it
// was written in. Use NoBase for values that were never typed by a user.
func NewNum(val *big.Rat, base Base) *Num {
	return &Num{Val: new(big.Rat).Set(val), Base: base}
}

// Add returns the two-term sum a + b.
func Add(a, b Node) Node {
	return newOp(OpAdd, a, b)
}

// Sub returns a - b, expressed as a + (-1)·b.
func Sub(a, b Node) Node {
	return Add(a, Opposite(b))
}

// Mul returns the two-factor product a · b.
func Mul(a, b Node) Node {
	return newOp(OpMul, a, b)
}

// Div returns a / b, expressed as a · (1/b).
func Div(a, b Node) Node {
	return Mul(a, &Inverse{X: b})
}

// Opposite returns -n, expressed as (-1)·n.
func Opposite(n Node) Node {
	return Mul(MinusOne(), n)
}

func newOp(kind OpKind, a, b Node) Node {
	return &VarOp{Kind: kind, Children: []Node{a, b}}
}
