package eval

import (
	"fmt"
	"math"

	"github.com/ratexlib/ratex/ast"
)

// Result is the outcome of evaluating a tree: the approximate value and the
// display base the output layer should prefer when printing it
// (ast.NoBase when no literal in the tree carried a hint).
type Result struct {
	Val  float64
	Base ast.Base
}

// Eval approximates n. It terminates because trees are finite and every
// recursive call descends into a child.
func Eval(n ast.Node) Result {
	switch x := n.(type) {
	case *ast.Const:
		return Result{Val: constValue(x.Kind)}
	case *ast.Num:
		v, _ := x.Val.Float64()
		return Result{Val: v, Base: x.Base}
	case *ast.Inverse:
		r := Eval(x.X)
		return Result{Val: 1 / r.Val, Base: r.Base}
	case *ast.VarOp:
		return evalVarOp(x)
	case *ast.Exp:
		a := Eval(x.Base)
		b := Eval(x.Exponent)
		return Result{
			Val:  math.Pow(a.Val, b.Val),
			Base: ast.CombineBase(a.Base, b.Base),
		}
	case *ast.Sin:
		r := Eval(x.X)
		return Result{Val: math.Sin(r.Val), Base: r.Base}
	case *ast.Cos:
		r := Eval(x.X)
		return Result{Val: math.Cos(r.Val), Base: r.Base}
	case *ast.Tan:
		r := Eval(x.X)
		return Result{Val: math.Tan(r.Val), Base: r.Base}
	default:
		panic(fmt.Sprintf("eval: unknown node type %T", n))
	}
}

func evalVarOp(op *ast.VarOp) Result {
	acc := Result{Val: op.Kind.IdentityFloat()}
	for _, child := range op.Children {
		r := Eval(child)
		acc.Val = op.Kind.CombineFloat(acc.Val, r.Val)
		acc.Base = ast.CombineBase(acc.Base, r.Base)
	}
	return acc
}

func constValue(kind ast.ConstKind) float64 {
	switch kind {
	case ast.Pi:
		return math.Pi
	case ast.Tau:
		return 2 * math.Pi
	case ast.E:
		return math.E
	default:
		panic(fmt.Sprintf("eval: unknown constant kind %d", kind))
	}
}
