// Package eval approximates expression trees as float64 values.
//
// Eval is a pure recursive fold: constants come from package math, exact
// rationals go through big.Rat.Float64, n-ary operators fold left to right
// from their identity element, and exponentiation uses math.Pow (fractional
// and negative exponents included). Alongside the value, Eval propagates the
// preferred display base of the result; see ast.CombineBase for the
// preference rules.
//
// Eval never fails: the inverse of zero follows IEEE semantics and yields an
// infinity. Callers that want an explicit division-by-zero error should
// reduce the tree first (package reduce reports the exact-arithmetic case).
package eval
