package parse

import (
	"fmt"

	"github.com/ratexlib/ratex/ast"
)

// Parse builds an expression tree from src. Errors wrap ErrSyntax with the
// offending token and its byte offset.
func Parse(src string) (ast.Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok, "unexpected trailing input")
	}
	return n, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(tok token, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, msg, tok.pos)
}

// parseExpr: term { ("+" | "-") term }
func (p *parser) parseExpr() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = ast.Add(left, right)
		case tokMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = ast.Sub(left, right)
		default:
			return left, nil
		}
	}
}

// parseTerm: unary { ("*" | "/") unary }
func (p *parser) parseTerm() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = ast.Mul(left, right)
		case tokSlash:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = ast.Div(left, right)
		default:
			return left, nil
		}
	}
}

// parseUnary: "-" unary | power
func (p *parser) parseUnary() (ast.Node, error) {
	if p.peek().kind == tokMinus {
		p.next()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.Opposite(inner), nil
	}
	return p.parsePower()
}

// parsePower: atom [ "^" unary ]
//
// The exponent re-enters parseUnary, which makes ^ right-associative and
// allows a signed exponent: 2^-3.
func (p *parser) parsePower() (ast.Node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokCaret {
		return base, nil
	}
	p.next()
	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.Exp{Base: base, Exponent: exponent}, nil
}

// parseAtom: number | constant | function unary | "(" expr ")"
func (p *parser) parseAtom() (ast.Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNum:
		return ast.NewNum(tok.val, tok.base), nil

	case tokIdent:
		switch tok.text {
		case "pi":
			return &ast.Const{Kind: ast.Pi}, nil
		case "tau":
			return &ast.Const{Kind: ast.Tau}, nil
		case "e":
			return &ast.Const{Kind: ast.E}, nil
		case "sin", "cos", "tan":
			arg, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			switch tok.text {
			case "sin":
				return &ast.Sin{X: arg}, nil
			case "cos":
				return &ast.Cos{X: arg}, nil
			default:
				return &ast.Tan{X: arg}, nil
			}
		default:
			return nil, p.errorf(tok, "unknown identifier %q", tok.text)
		}

	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.errorf(closing, "missing closing parenthesis")
		}
		return inner, nil

	case tokEOF:
		return nil, p.errorf(tok, "unexpected end of input")

	default:
		return nil, p.errorf(tok, "unexpected token %q", tokenText(tok))
	}
}

func tokenText(tok token) string {
	switch tok.kind {
	case tokPlus:
		return "+"
	case tokMinus:
		return "-"
	case tokStar:
		return "*"
	case tokSlash:
		return "/"
	case tokCaret:
		return "^"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	case tokNum, tokIdent:
		return tok.text
	default:
		return "end of input"
	}
}
