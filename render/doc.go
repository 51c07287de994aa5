// Package render converts expression trees back into human-readable text
// with minimal parenthesization.
//
// Every node has one of four priorities, Add < Mul < Exp < Value. Integer
// literals, named constants and function applications are Value; fractional
// literals and inverses print with a division sign and therefore rank as
// Mul. A child is parenthesized when its priority is strictly below its
// context, or at most the context on the right-associative sides of ^.
//
// Products special-case inverse factors: a·(1/b) prints as "a / b" rather
// than "a * 1/b".
package render
