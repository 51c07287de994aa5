// Package reduce rewrites expression trees into a canonical reduced form.
//
// Reduce normalizes associativity (nested sums of sums become one flat sum),
// folds numeric literals exactly, collects like terms and like factors,
// applies the exponent identities 1^k = 1 and k^0 = 1, inverts rational
// literals in place, and resolves sin, cos and tan of integer multiples
// of π to their exact values.
//
// Collection works the same way for both operator kinds. Every child of a
// flattened operator splits into a (weight, key) pair (the coefficient and
// the term under addition, the exponent and the base under multiplication),
// pairs group by structural equality of the key, and each group's weights
// are summed exactly. Groups re-assemble through ast.OpKind.Compress, so
// 2π + 3π becomes 5·π and x·x becomes x^2 by the same path.
//
// Reduction is value-preserving and idempotent. Wherever it cannot prove a
// rewrite safe (a fractional or overflowing π multiplier, an opaque
// subexpression) it leaves the node unreduced rather than guess.
//
// The one failure mode is exact division by zero: reducing the inverse of a
// literal zero returns ErrDivisionByZero instead of building an invalid
// rational.
package reduce
