package render_test

import (
	"math/big"
	"testing"

	"github.com/ratexlib/ratex/ast"
	"github.com/ratexlib/ratex/render"
)

func pi() ast.Node { return &ast.Const{Kind: ast.Pi} }

func TestRender(t *testing.T) {
	cases := []struct {
		name string
		node ast.Node
		want string
	}{
		{"constant", pi(), "pi"},
		{"tau", &ast.Const{Kind: ast.Tau}, "tau"},
		{"euler", &ast.Const{Kind: ast.E}, "e"},
		{"integer", ast.NewInt(42), "42"},
		{"negative integer", ast.NewInt(-7), "-7"},
		{"fraction", ast.NewNum(big.NewRat(3, 2), ast.NoBase), "3/2"},

		{"sum", ast.Add(ast.NewInt(1), ast.NewInt(2)), "1 + 2"},
		{"product", ast.Mul(ast.NewInt(2), pi()), "2 * pi"},
		{
			"product binds tighter than sum",
			ast.Add(ast.Mul(ast.NewInt(2), pi()), ast.NewInt(3)),
			"2 * pi + 3",
		},
		{
			"sum inside product needs parens",
			ast.Mul(ast.Add(ast.NewInt(1), pi()), ast.NewInt(2)),
			"(1 + pi) * 2",
		},
		{
			"flat n-ary sum",
			&ast.VarOp{Kind: ast.OpAdd, Children: []ast.Node{ast.NewInt(1), ast.NewInt(2), pi()}},
			"1 + 2 + pi",
		},

		{"inverse", &ast.Inverse{X: pi()}, "1/pi"},
		{"division sugar", ast.Div(ast.NewInt(6), ast.NewInt(4)), "6 / 4"},
		{
			"division by a sum",
			ast.Div(ast.NewInt(1), ast.Add(ast.NewInt(2), pi())),
			"1 / (2 + pi)",
		},
		{"negation", ast.Opposite(pi()), "-1 * pi"},

		{"power", &ast.Exp{Base: ast.NewInt(2), Exponent: ast.NewInt(3)}, "2^3"},
		{
			"right-associative exponent keeps parens",
			&ast.Exp{Base: ast.NewInt(2), Exponent: &ast.Exp{Base: ast.NewInt(3), Exponent: ast.NewInt(4)}},
			"2^(3^4)",
		},
		{
			"left-nested power needs parens",
			&ast.Exp{Base: &ast.Exp{Base: ast.NewInt(2), Exponent: ast.NewInt(3)}, Exponent: ast.NewInt(4)},
			"(2^3)^4",
		},
		{
			"sum as power base",
			&ast.Exp{Base: ast.Add(ast.NewInt(1), pi()), Exponent: ast.NewInt(2)},
			"(1 + pi)^2",
		},
		{
			"product as exponent",
			&ast.Exp{Base: ast.NewInt(2), Exponent: ast.Mul(ast.NewInt(3), pi())},
			"2^(3 * pi)",
		},

		{"function of atom", &ast.Sin{X: pi()}, "sin pi"},
		{"function of integer", &ast.Cos{X: ast.NewInt(2)}, "cos 2"},
		{"function of sum", &ast.Sin{X: ast.Add(ast.NewInt(1), pi())}, "sin(1 + pi)"},
		{"function of fraction", &ast.Tan{X: ast.NewNum(big.NewRat(1, 2), ast.NoBase)}, "tan(1/2)"},
		{"function of power", &ast.Sin{X: &ast.Exp{Base: ast.NewInt(2), Exponent: ast.NewInt(3)}}, "sin(2^3)"},
		{
			"function is atomic in products",
			ast.Mul(ast.NewInt(2), &ast.Sin{X: pi()}),
			"2 * sin pi",
		},
	}

	for _, tc := range cases {
		if got := render.Render(tc.node); got != tc.want {
			t.Errorf("%s: Render = %q; want %q", tc.name, got, tc.want)
		}
	}
}

// TestRender_FractionRanksAsMul checks that a fractional literal is treated
// like a division for parenthesization.
func TestRender_FractionRanksAsMul(t *testing.T) {
	half := ast.NewNum(big.NewRat(1, 2), ast.NoBase)
	// (1/2)^2 needs parens around the base
	n := &ast.Exp{Base: half, Exponent: ast.NewInt(2)}
	if got, want := render.Render(n), "(1/2)^2"; got != want {
		t.Errorf("Render = %q; want %q", got, want)
	}
	// 1 + 1/2 does not
	s := ast.Add(ast.NewInt(1), half)
	if got, want := render.Render(s), "1 + 1/2"; got != want {
		t.Errorf("Render = %q; want %q", got, want)
	}
}
