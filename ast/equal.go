package ast

import (
	"strconv"
	"strings"
)

// Equal reports deep structural equality: same variant and recursively equal
// children in order, including rational values and their base tags. Two
// Equal subtrees are interchangeable as grouping keys during reduction.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Const:
		y, ok := b.(*Const)
		return ok && x.Kind == y.Kind
	case *Num:
		y, ok := b.(*Num)
		return ok && x.Base == y.Base && x.Val.Cmp(y.Val) == 0
	case *Inverse:
		y, ok := b.(*Inverse)
		return ok && Equal(x.X, y.X)
	case *VarOp:
		y, ok := b.(*VarOp)
		if !ok || x.Kind != y.Kind || len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	case *Exp:
		y, ok := b.(*Exp)
		return ok && Equal(x.Base, y.Base) && Equal(x.Exponent, y.Exponent)
	case *Sin:
		y, ok := b.(*Sin)
		return ok && Equal(x.X, y.X)
	case *Cos:
		y, ok := b.(*Cos)
		return ok && Equal(x.X, y.X)
	case *Tan:
		y, ok := b.(*Tan)
		return ok && Equal(x.X, y.X)
	default:
		return false
	}
}

// Fingerprint returns a canonical encoding of n, usable as a map key.
// Fingerprint(a) == Fingerprint(b) exactly when Equal(a, b).
func Fingerprint(n Node) string {
	var sb strings.Builder
	fingerprint(&sb, n)
	return sb.String()
}

func fingerprint(sb *strings.Builder, n Node) {
	switch x := n.(type) {
	case *Const:
		sb.WriteString("c")
		sb.WriteString(strconv.Itoa(int(x.Kind)))
	case *Num:
		sb.WriteString("n")
		sb.WriteString(x.Val.RatString())
		sb.WriteString("@")
		sb.WriteString(strconv.Itoa(int(x.Base)))
	case *Inverse:
		sb.WriteString("inv(")
		fingerprint(sb, x.X)
		sb.WriteString(")")
	case *VarOp:
		sb.WriteString(x.Kind.String())
		sb.WriteString("(")
		for i, c := range x.Children {
			if i > 0 {
				sb.WriteString(",")
			}
			fingerprint(sb, c)
		}
		sb.WriteString(")")
	case *Exp:
		sb.WriteString("exp(")
		fingerprint(sb, x.Base)
		sb.WriteString(",")
		fingerprint(sb, x.Exponent)
		sb.WriteString(")")
	case *Sin:
		sb.WriteString("sin(")
		fingerprint(sb, x.X)
		sb.WriteString(")")
	case *Cos:
		sb.WriteString("cos(")
		fingerprint(sb, x.X)
		sb.WriteString(")")
	case *Tan:
		sb.WriteString("tan(")
		fingerprint(sb, x.X)
		sb.WriteString(")")
	}
}
