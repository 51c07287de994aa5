package render

import (
	"fmt"
	"strings"

	"github.com/ratexlib/ratex/ast"
)

// priority orders node kinds by how tightly they bind.
type priority int

const (
	prioAdd priority = iota
	prioMul
	prioExp
	prioValue
)

// Render returns the textual form of n.
func Render(n ast.Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func nodePriority(n ast.Node) priority {
	switch x := n.(type) {
	case *ast.Const:
		return prioValue
	case *ast.Num:
		if x.Val.IsInt() {
			return prioValue
		}
		// Displayed as a fraction with a division sign.
		return prioMul
	case *ast.Inverse:
		return prioMul
	case *ast.VarOp:
		if x.Kind == ast.OpAdd {
			return prioAdd
		}
		return prioMul
	case *ast.Exp:
		return prioExp
	case *ast.Sin, *ast.Cos, *ast.Tan:
		return prioValue
	default:
		panic(fmt.Sprintf("render: unknown node type %T", n))
	}
}

func write(sb *strings.Builder, n ast.Node) {
	switch x := n.(type) {
	case *ast.Const:
		sb.WriteString(constName(x.Kind))

	case *ast.Num:
		sb.WriteString(x.Val.RatString())

	case *ast.Inverse:
		sb.WriteString("1/")
		writeWithParen(sb, x.X, prioMul, false, false)

	case *ast.VarOp:
		own := nodePriority(x)
		for i, child := range x.Children {
			if i > 0 {
				if x.Kind == ast.OpMul {
					if inv, ok := child.(*ast.Inverse); ok {
						// Print "/ y" directly instead of "* 1/y".
						sb.WriteString(" / ")
						writeWithParen(sb, inv.X, prioMul, false, false)
						continue
					}
					sb.WriteString(" * ")
				} else {
					sb.WriteString(" + ")
				}
			}
			writeWithParen(sb, child, own, false, false)
		}

	case *ast.Exp:
		writeWithParen(sb, x.Base, prioExp, true, false)
		sb.WriteByte('^')
		writeWithParen(sb, x.Exponent, prioExp, true, false)

	case *ast.Sin:
		writeFunc(sb, "sin", x.X)
	case *ast.Cos:
		writeFunc(sb, "cos", x.X)
	case *ast.Tan:
		writeFunc(sb, "tan", x.X)
	}
}

// writeWithParen writes child, parenthesizing when its priority falls below
// the surrounding context (or ties with it in a right-associative position,
// so 1^(2^3) keeps its parentheses). When no parentheses are needed and
// needsSep is set, a single space separates the child from what precedes it.
func writeWithParen(sb *strings.Builder, child ast.Node, context priority, rightAssoc, needsSep bool) {
	p := nodePriority(child)
	needsParen := p < context || (rightAssoc && p == context)
	switch {
	case needsParen:
		sb.WriteByte('(')
	case needsSep:
		sb.WriteByte(' ')
	}
	write(sb, child)
	if needsParen {
		sb.WriteByte(')')
	}
}

func writeFunc(sb *strings.Builder, name string, arg ast.Node) {
	sb.WriteString(name)
	writeWithParen(sb, arg, prioValue, false, true)
}

func constName(kind ast.ConstKind) string {
	switch kind {
	case ast.Pi:
		return "pi"
	case ast.Tau:
		return "tau"
	case ast.E:
		return "e"
	default:
		panic(fmt.Sprintf("render: unknown constant kind %d", kind))
	}
}
