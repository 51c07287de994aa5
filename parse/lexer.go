package parse

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ratexlib/ratex/ast"
)

// ErrSyntax is the sentinel wrapped by every parse failure.
var ErrSyntax = errors.New("parse: syntax error")

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNum
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	pos  int      // byte offset in the input
	text string   // identifier name or literal text
	val  *big.Rat // set for tokNum
	base ast.Base // radix the literal was written in
}

// lex tokenizes src. It only fails on characters and malformed literals; all
// grammar errors are the parser's.
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '+':
			toks = append(toks, token{kind: tokPlus, pos: i})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokMinus, pos: i})
			i++
		case c == '*':
			toks = append(toks, token{kind: tokStar, pos: i})
			i++
		case c == '/':
			toks = append(toks, token{kind: tokSlash, pos: i})
			i++
		case c == '^':
			toks = append(toks, token{kind: tokCaret, pos: i})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i})
			i++
		case c >= '0' && c <= '9' || c == '.':
			tok, next, err := lexNumber(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		case isLetter(c):
			start := i
			for i < len(src) && isLetter(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, pos: start, text: strings.ToLower(src[start:i])})
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrSyntax, c, i)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}

// lexNumber scans a numeric literal starting at src[i]. A leading 0b, 0o or
// 0x prefix switches to an integer literal in that radix; otherwise the
// literal is decimal with an optional fractional part.
func lexNumber(src string, i int) (token, int, error) {
	start := i
	if src[i] == '0' && i+1 < len(src) {
		var base ast.Base
		switch src[i+1] {
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		case 'x', 'X':
			base = 16
		}
		if base != ast.NoBase {
			j := i + 2
			for j < len(src) && isDigitInBase(src[j], base) {
				j++
			}
			digits := src[i+2 : j]
			if digits == "" {
				return token{}, 0, fmt.Errorf("%w: missing digits after %q at offset %d", ErrSyntax, src[i:i+2], i)
			}
			n, ok := new(big.Int).SetString(digits, int(base))
			if !ok {
				return token{}, 0, fmt.Errorf("%w: invalid base-%d literal %q at offset %d", ErrSyntax, base, src[start:j], start)
			}
			return token{
				kind: tokNum,
				pos:  start,
				text: src[start:j],
				val:  new(big.Rat).SetInt(n),
				base: base,
			}, j, nil
		}
	}

	j := i
	dots := 0
	for j < len(src) && (src[j] >= '0' && src[j] <= '9' || src[j] == '.') {
		if src[j] == '.' {
			dots++
		}
		j++
	}
	text := src[i:j]
	if dots > 1 || text == "." {
		return token{}, 0, fmt.Errorf("%w: invalid number %q at offset %d", ErrSyntax, text, start)
	}
	val, ok := new(big.Rat).SetString(text)
	if !ok {
		return token{}, 0, fmt.Errorf("%w: invalid number %q at offset %d", ErrSyntax, text, start)
	}
	return token{kind: tokNum, pos: start, text: text, val: val, base: 10}, j, nil
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigitInBase(c byte, base ast.Base) bool {
	switch {
	case c >= '0' && c <= '9':
		return int(c-'0') < int(base)
	case c >= 'a' && c <= 'f':
		return base == 16
	case c >= 'A' && c <= 'F':
		return base == 16
	default:
		return false
	}
}
