package parse_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ratexlib/ratex/ast"
	"github.com/ratexlib/ratex/parse"
	"github.com/ratexlib/ratex/render"
)

func dec(a, b int64) *ast.Num { return ast.NewNum(big.NewRat(a, b), 10) }

func mustParse(t *testing.T, src string) ast.Node {
	t.Helper()
	n, err := parse.Parse(src)
	require.NoError(t, err, "Parse(%q)", src)
	return n
}

func TestParse_Precedence(t *testing.T) {
	// 1 + 2 * 3 groups the product
	want := ast.Add(dec(1, 1), ast.Mul(dec(2, 1), dec(3, 1)))
	require.True(t, ast.Equal(want, mustParse(t, "1 + 2 * 3")))

	// (1 + 2) * 3 groups the sum
	want = ast.Mul(ast.Add(dec(1, 1), dec(2, 1)), dec(3, 1))
	require.True(t, ast.Equal(want, mustParse(t, "(1 + 2) * 3")))

	// exponentiation is right-associative and binds above *
	want = ast.Mul(dec(2, 1), &ast.Exp{
		Base:     dec(3, 1),
		Exponent: &ast.Exp{Base: dec(4, 1), Exponent: dec(5, 1)},
	})
	require.True(t, ast.Equal(want, mustParse(t, "2 * 3 ^ 4 ^ 5")))
}

func TestParse_ConstructorShapes(t *testing.T) {
	// subtraction desugars to a + (-1)·b
	want := ast.Sub(dec(2, 1), dec(3, 1))
	require.True(t, ast.Equal(want, mustParse(t, "2 - 3")))

	// division desugars to a · (1/b)
	want = ast.Div(dec(6, 1), dec(4, 1))
	require.True(t, ast.Equal(want, mustParse(t, "6 / 4")))

	// unary minus applies to the whole power: -2^2 is -(2^2)
	want = ast.Opposite(&ast.Exp{Base: dec(2, 1), Exponent: dec(2, 1)})
	require.True(t, ast.Equal(want, mustParse(t, "-2^2")))

	// signed exponent
	want = &ast.Exp{Base: dec(2, 1), Exponent: ast.Opposite(dec(3, 1))}
	require.True(t, ast.Equal(want, mustParse(t, "2^-3")))
}

func TestParse_Literals(t *testing.T) {
	cases := []struct {
		src  string
		val  *big.Rat
		base ast.Base
	}{
		{"0", big.NewRat(0, 1), 10},
		{"42", big.NewRat(42, 1), 10},
		{"1.5", big.NewRat(3, 2), 10},
		{"0.25", big.NewRat(1, 4), 10},
		{"0b101", big.NewRat(5, 1), 2},
		{"0o17", big.NewRat(15, 1), 8},
		{"0xff", big.NewRat(255, 1), 16},
		{"0xDEAD", big.NewRat(57005, 1), 16},
	}
	for _, tc := range cases {
		n := mustParse(t, tc.src)
		num, ok := n.(*ast.Num)
		require.True(t, ok, "Parse(%q) = %T; want *ast.Num", tc.src, n)
		require.Zero(t, num.Val.Cmp(tc.val), "Parse(%q) value = %s", tc.src, num.Val)
		require.Equal(t, tc.base, num.Base, "Parse(%q) base", tc.src)
	}
}

func TestParse_ConstantsAndFunctions(t *testing.T) {
	require.True(t, ast.Equal(&ast.Const{Kind: ast.Pi}, mustParse(t, "pi")))
	require.True(t, ast.Equal(&ast.Const{Kind: ast.Tau}, mustParse(t, "tau")))
	require.True(t, ast.Equal(&ast.Const{Kind: ast.E}, mustParse(t, "e")))
	// names are case-insensitive
	require.True(t, ast.Equal(&ast.Const{Kind: ast.Pi}, mustParse(t, "PI")))

	piNode := &ast.Const{Kind: ast.Pi}
	require.True(t, ast.Equal(&ast.Sin{X: piNode}, mustParse(t, "sin pi")))
	require.True(t, ast.Equal(&ast.Cos{X: piNode}, mustParse(t, "cos(pi)")))
	require.True(t, ast.Equal(
		&ast.Tan{X: ast.Div(piNode, dec(4, 1))},
		mustParse(t, "tan(pi / 4)")))
	// a function argument may carry its own sign
	require.True(t, ast.Equal(&ast.Sin{X: ast.Opposite(piNode)}, mustParse(t, "sin -pi")))
}

// TestParse_RenderRoundTrip re-parses rendered output and checks the trees
// match (modulo literal base tags, which rendering does not emit).
func TestParse_RenderRoundTrip(t *testing.T) {
	for _, src := range []string{
		"1 + 2 * 3",
		"(1 + pi) * 2",
		"2^(3^4)",
		"sin(1 + pi)",
		"6 / 4",
		"1 / (2 + pi)",
		"2 * sin pi",
	} {
		first := mustParse(t, src)
		text := render.Render(first)
		require.Equal(t, src, text, "Render(Parse(%q))", src)
		second := mustParse(t, text)
		require.True(t, ast.Equal(first, second), "round trip changed %q", src)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, src := range []string{
		"",
		"1 +",
		"* 2",
		"(1",
		"1)",
		"foo",
		"0x",
		"0b",
		"1..2",
		".",
		"1 @ 2",
		"sin",
	} {
		_, err := parse.Parse(src)
		require.Error(t, err, "Parse(%q)", src)
		require.True(t, errors.Is(err, parse.ErrSyntax), "Parse(%q) error %v should wrap ErrSyntax", src, err)
	}
}
