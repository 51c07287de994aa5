package reduce

import (
	"errors"
	"math/big"

	"github.com/ratexlib/ratex/ast"
)

// ErrDivisionByZero is returned when reduction meets the multiplicative
// inverse of an exact zero.
var ErrDivisionByZero = errors.New("reduce: division by zero")

// Reduce rewrites n into its canonical reduced form. The input is never
// mutated; the result may share unchanged subtrees with it.
func Reduce(n ast.Node) (ast.Node, error) {
	switch x := n.(type) {
	case *ast.VarOp:
		return reduceVarOp(x)

	case *ast.Exp:
		a, err := Reduce(x.Base)
		if err != nil {
			return nil, err
		}
		b, err := Reduce(x.Exponent)
		if err != nil {
			return nil, err
		}
		// 1^k = 1
		if num, ok := a.(*ast.Num); ok && isOne(num.Val) {
			return ast.One(), nil
		}
		// k^0 = 1
		if num, ok := b.(*ast.Num); ok && num.Val.Sign() == 0 {
			return ast.One(), nil
		}
		return &ast.Exp{Base: a, Exponent: b}, nil

	case *ast.Inverse:
		inner, err := Reduce(x.X)
		if err != nil {
			return nil, err
		}
		if num, ok := inner.(*ast.Num); ok {
			if num.Val.Sign() == 0 {
				return nil, ErrDivisionByZero
			}
			// Swap numerator and denominator, keep the base tag.
			return &ast.Num{Val: new(big.Rat).Inv(num.Val), Base: num.Base}, nil
		}
		return &ast.Inverse{X: inner}, nil

	case *ast.Sin, *ast.Cos, *ast.Tan:
		return reduceTrig(n)

	default:
		// Const and Num are already in reduced form.
		return n, nil
	}
}

// reduceVarOp runs the collection pipeline: flatten same-kind children,
// reduce them, fold the numeric literals, split everything else into
// (weight, key) pairs, group by key and recombine.
func reduceVarOp(op *ast.VarOp) (ast.Node, error) {
	flat := flattenChildren(op.Children, op.Kind)
	reduced := make([]ast.Node, 0, len(flat))
	for _, child := range flat {
		r, err := Reduce(child)
		if err != nil {
			return nil, err
		}
		reduced = append(reduced, r)
	}
	children := collapseNumbers(reduced, op.Kind)

	// Group children by the structural identity of their key, preserving
	// first-seen order so reduction is deterministic.
	type group struct {
		key     ast.Node
		weights []ast.Node
	}
	index := make(map[string]int, len(children))
	groups := make([]*group, 0, len(children))
	for _, child := range children {
		weight, key := splitChild(child, op.Kind)
		fp := ast.Fingerprint(key)
		i, ok := index[fp]
		if !ok {
			i = len(groups)
			index[fp] = i
			groups = append(groups, &group{key: key})
		}
		groups[i].weights = append(groups[i].weights, weight)
	}

	out := make([]ast.Node, 0, len(groups))
	for _, g := range groups {
		// Weights always fold under addition: k copies of w1·t + w2·t sum
		// the coefficients, k copies of b^w1 · b^w2 sum the exponents.
		weights := collapseNumbers(g.weights, ast.OpAdd)
		switch len(weights) {
		case 0:
			// The group contributes nothing.
		case 1:
			if num, ok := weights[0].(*ast.Num); ok && isOne(num.Val) {
				out = append(out, g.key)
			} else {
				out = append(out, op.Kind.Compress(g.key, weights[0]))
			}
		default:
			combined := &ast.VarOp{Kind: ast.OpAdd, Children: weights}
			out = append(out, op.Kind.Compress(g.key, combined))
		}
	}

	switch len(out) {
	case 0:
		return &ast.Num{Val: op.Kind.IdentityRat()}, nil
	case 1:
		return out[0], nil
	default:
		return &ast.VarOp{Kind: op.Kind, Children: out}, nil
	}
}

// splitChild decomposes a child into its (weight, key) pair for grouping.
//
// Under addition a product contributes its leading factor as the
// coefficient and the rest as the key; under multiplication a power
// contributes its exponent as the weight and its base as the key. Anything
// else weighs 1.
func splitChild(child ast.Node, kind ast.OpKind) (weight, key ast.Node) {
	switch kind {
	case ast.OpAdd:
		if mul, ok := child.(*ast.VarOp); ok && mul.Kind == ast.OpMul {
			switch n := len(mul.Children); {
			case n == 2:
				return mul.Children[0], mul.Children[1]
			case n > 2:
				rest := &ast.VarOp{Kind: ast.OpMul, Children: mul.Children[1:]}
				return mul.Children[0], rest
			default:
				// A product with fewer than 2 factors would have been
				// reduced to a plain number before reaching this point.
				panic("reduce: multiplication with fewer than 2 factors")
			}
		}
		return ast.One(), child
	case ast.OpMul:
		if exp, ok := child.(*ast.Exp); ok {
			return exp.Exponent, exp.Base
		}
		return ast.One(), child
	default:
		panic("reduce: unknown operator kind")
	}
}

// collapseNumbers folds every numeric literal in nodes into a single literal
// using kind's exact combining function, merging their display bases along
// the way. Non-numeric children keep their relative order; the folded
// literal, if any, leads the result so that a product's coefficient is
// always its first factor.
func collapseNumbers(nodes []ast.Node, kind ast.OpKind) []ast.Node {
	rest := make([]ast.Node, 0, len(nodes))
	var acc *big.Rat
	base := ast.NoBase
	for _, n := range nodes {
		if num, ok := n.(*ast.Num); ok {
			if acc == nil {
				acc = kind.IdentityRat()
			}
			acc = kind.CombineRat(acc, num.Val)
			base = ast.CombineBase(base, num.Base)
			continue
		}
		rest = append(rest, n)
	}
	if acc == nil {
		return rest
	}
	out := make([]ast.Node, 0, len(rest)+1)
	out = append(out, &ast.Num{Val: acc, Base: base})
	return append(out, rest...)
}

// flattenChildren expands children that are VarOps of the same kind into
// their own children, repeating until none remain. Turns
// add(add(1, add(2)), 3) into add(1, 2, 3).
func flattenChildren(children []ast.Node, kind ast.OpKind) []ast.Node {
	out := make([]ast.Node, 0, len(children))
	remaining := children
	for len(remaining) > 0 {
		var next []ast.Node
		for _, child := range remaining {
			if sub, ok := child.(*ast.VarOp); ok && sub.Kind == kind {
				// Same-kind operator: expand and retry in the next round.
				next = append(next, sub.Children...)
				continue
			}
			out = append(out, child)
		}
		remaining = next
	}
	return out
}

func isOne(v *big.Rat) bool {
	return v.Cmp(oneRat) == 0
}

var oneRat = big.NewRat(1, 1)
