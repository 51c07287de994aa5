// Package parse turns calculator source text into expression trees.
//
// Supported syntax:
//
//	1 + 2 * 3        sums and products, usual precedence
//	-x, 1 - 2        negation and subtraction (both become (-1)·x sums)
//	6 / 4            division (becomes 6 · (1/4))
//	2 ^ 3 ^ 2        exponentiation, right-associative
//	1.5, 2/3         decimal fractions (exact: 1.5 is the rational 3/2)
//	0b101 0o17 0xff  binary, octal and hexadecimal integer literals
//	pi tau e         named constants
//	sin cos tan      functions: sin(pi/2), sin pi
//
// Literals remember their written radix: bare numbers are tagged base 10,
// prefixed ones with their prefix base. Constants and derived values carry
// no tag. The tag is what lets the calculator answer 0xff + 1 in hex.
//
// Trees are built exclusively through the ast constructors, so a parsed
// binary operator is always a 2-child VarOp, subtraction is addition of a
// (-1)-multiple, and division multiplies by an inverse.
package parse
