package ast

// Base is an advisory numeral radix recording how a literal was written
// (2, 8, 10, 16, ...). It propagates through evaluation and numeric folding
// so an output layer can print results the way the user typed them; it never
// affects computed values.
type Base int

// NoBase marks a value with no display preference, such as a derived number
// or a named constant.
const NoBase Base = 0

// CombineBase folds two display hints into one. The lattice, most preferred
// first: binary beats every other hint, any non-decimal hint beats decimal,
// any hint beats none, and two equally interesting hints keep the first.
func CombineBase(a, b Base) Base {
	switch {
	case a == NoBase:
		return b
	case b == NoBase:
		return a
	case a == 2 || b == 2:
		return 2
	case a == 10:
		return b
	case b == 10:
		return a
	default:
		return a
	}
}
