package ast

import "math/big"

// OpKind selects the behavior of a VarOp: summation or multiplication.
//
// The methods below are what let the reducer treat "collect like terms" and
// "collect like factors" as one algorithm: each kind knows its identity
// element, its combining function (in float64 and exact-rational form) and
// how a repeated operand compresses.
type OpKind int

const (
	// OpAdd sums its children.
	OpAdd OpKind = iota
	// OpMul multiplies its children.
	OpMul
)

// String returns the operator's symbol.
func (k OpKind) String() string {
	if k == OpAdd {
		return "+"
	}
	return "*"
}

// IdentityFloat returns the operator's identity element as a float64:
// 0 for OpAdd, 1 for OpMul.
func (k OpKind) IdentityFloat() float64 {
	if k == OpAdd {
		return 0
	}
	return 1
}

// IdentityRat returns a fresh exact-rational identity element:
// 0 for OpAdd, 1 for OpMul.
func (k OpKind) IdentityRat() *big.Rat {
	if k == OpAdd {
		return new(big.Rat)
	}
	return big.NewRat(1, 1)
}

// CombineFloat applies the operator to two float64 operands.
func (k OpKind) CombineFloat(x, y float64) float64 {
	if k == OpAdd {
		return x + y
	}
	return x * y
}

// CombineRat applies the operator to two exact rationals, returning a new
// value and leaving the operands untouched.
func (k OpKind) CombineRat(x, y *big.Rat) *big.Rat {
	if k == OpAdd {
		return new(big.Rat).Add(x, y)
	}
	return new(big.Rat).Mul(x, y)
}

// Compress collapses count occurrences of term into a single node:
// count·term under OpAdd, term^count under OpMul. The coefficient comes
// first in the product so that re-reducing the result splits it back into
// the same (weight, key) pair.
func (k OpKind) Compress(term, count Node) Node {
	if k == OpAdd {
		return Mul(count, term)
	}
	return &Exp{Base: term, Exponent: count}
}
