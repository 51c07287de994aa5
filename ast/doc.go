// Package ast defines the expression tree at the heart of ratex: exact
// rational literals, named constants, n-ary sums and products, powers,
// inverses and the trigonometric functions, together with the constructors,
// structural equality and fingerprinting that the eval, reduce and render
// packages operate on.
//
// Trees are pure values. Every composite node exclusively owns its children;
// nothing is shared and nothing is mutated in place: transformations always
// build fresh nodes. That makes whole subtrees usable as grouping keys, which
// is exactly what the reducer needs.
//
// Why n-ary operators?
//
//   - Addition and multiplication are associative, so add(add(1, 2), 3) and
//     add(1, add(2, 3)) denote the same value. VarOp stores a flat child list
//     and lets the reducer normalize both shapes to add(1, 2, 3).
//   - The two kinds share one collection algorithm: OpKind supplies the
//     identity, the combining function and the compression rule (repeated
//     terms become coefficient·term, repeated factors become term^count).
//
// Numeric literals remember the radix the user wrote them in (Base), a pure
// display hint that propagates through evaluation and folding but never
// affects values. CombineBase defines the preference lattice: any hint beats
// none, non-decimal beats decimal, binary beats everything.
package ast
