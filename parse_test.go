package calc

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// equal reports whether two trees have the same shape, operators, and leaf
// values.
func (n *Node) equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.Op != m.Op {
		return false
	}
	if n.Op == Number {
		if n.Value == nil || m.Value == nil {
			return n.Value == m.Value
		}
		return n.Value.Cmp(m.Value) == 0
	}
	return n.Left.equal(m.Left) && n.Right.equal(m.Right)
}

// wellFormed checks that every node has exactly the children its kind takes.
func (n *Node) wellFormed() bool {
	switch {
	case n == nil:
		return false
	case n.Op == Number:
		return n.Value != nil && n.Left == nil && n.Right == nil
	case n.Op.IsUnary():
		return n.Right == nil && n.Left.wellFormed()
	case n.Op.IsBinary():
		return n.Left.wellFormed() && n.Right.wellFormed()
	default:
		return false
	}
}

func mustParse(t *testing.T, src string) *Node {
	t.Helper()
	toks, err := Lex(src)
	require.NoError(t, err, "lexing %q", src)
	n, err := Parse(toks)
	require.NoError(t, err, "parsing %q", src)
	return n
}

func num(x int64) *Node {
	return Leaf(big.NewRat(x, 1))
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		tree string
	}{
		{"num", "2", "(2)"},
		{"decimal", "0.25", "(0.25)"},
		{"paren", "(1)", "(1)"},
		{"multi", "((((1))))", "(1)"},
		{"plus", "+(1)", "(+[1])"},
		{"neg", "-1", "(-[1])"},
		{"neg-neg", "--2", "(-[-(2)])"},
		{"add", "1+2", "([1] + [2])"},
		{"mod", "7%3", "([7] % [3])"},
		{"precedence", "2 + 3 * 4", "([2] + [(3) * (4)])"},
		{"grouping", "(2 + 3) * 4", "([(2) + (3)] * [4])"},
		{"sub-left", "1-2-3", "([(1) - (2)] - [3])"},
		{"div-left", "8/4/2", "([(8) / (4)] / [2])"},
		{"pow-left", "2^3^2", "([(2) ^ (3)] ^ [2])"},
		{"sub-neg", "1 - -1", "([1] - [-(1)])"},
		{"neg-pow", "-2^2", "(-[(2) ^ (2)])"},
		{"pow-neg-mul", "2^-3*4", "([(2) ^ (-[3])] * [4])"},
		{"mul-neg-pow", "2*-3^2", "([2] * [-([3] ^ [2])])"},
		{"neg-mul-add", "-2*3+1", "([(-[2]) * (3)] + [1])"},
		{"paren-sub", "(1)-2", "([1] - [2])"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := mustParse(t, c.src)
			assert.Equal(t, c.tree, n.String())
			assert.True(t, n.wellFormed(), "%q parsed to malformed tree %v", c.src, n)
		})
	}
}

func TestParseShapes(t *testing.T) {
	cases := []struct {
		name string
		src  string
		tree *Node
	}{
		{"left-assoc", "1 - 2 + 3", Binary(BinaryAdd, Binary(BinarySub, num(1), num(2)), num(3))},
		{"chained-same", "1*2*3*4", Binary(BinaryMul, Binary(BinaryMul, Binary(BinaryMul, num(1), num(2)), num(3)), num(4))},
		{"right-group", "1-(2-3)", Binary(BinarySub, num(1), Binary(BinarySub, num(2), num(3)))},
		{"unary-chain", "-+-1", Unary(UnaryMinus, Unary(UnaryPlus, Unary(UnaryMinus, num(1))))},
		{"pow-paren", "2^(3^2)", Binary(BinaryPow, num(2), Binary(BinaryPow, num(3), num(2)))},
		{"mixed", "1+2*3-4/2", Binary(BinarySub,
			Binary(BinaryAdd, num(1), Binary(BinaryMul, num(2), num(3))),
			Binary(BinaryDiv, num(4), num(2)),
		)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := mustParse(t, c.src)
			assert.Truef(t, c.tree.equal(n), "%q: want %v, got %v", c.src, c.tree, n)
		})
	}
}

func TestParseErrors(t *testing.T) {
	type check func(t *testing.T, err error)
	unbalanced := func(idx int, paren rune) check {
		return func(t *testing.T, err error) {
			var e *UnbalancedParenthesesError
			require.True(t, errors.As(err, &e), "want UnbalancedParenthesesError, got %v", err)
			assert.Equal(t, idx, e.Index)
			assert.Equal(t, paren, e.Paren)
		}
	}
	empty := func(idx int) check {
		return func(t *testing.T, err error) {
			var e *EmptyExpressionError
			require.True(t, errors.As(err, &e), "want EmptyExpressionError, got %v", err)
			assert.Equal(t, idx, e.Index)
		}
	}
	malformed := func(idx int) check {
		return func(t *testing.T, err error) {
			var e *MalformedExpressionError
			require.True(t, errors.As(err, &e), "want MalformedExpressionError, got %v", err)
			assert.Equal(t, idx, e.Index)
		}
	}
	cases := []struct {
		name string
		src  string
		err  check
	}{
		{"unclosed", "(1 + 2", unbalanced(0, '(')},
		{"unclosed-inner", "((1 + 2)", unbalanced(0, '(')},
		{"unopened", "1 + 2)", unbalanced(5, ')')},
		{"open-only", "((", unbalanced(0, '(')},
		{"unclosed-op", "(1 +", unbalanced(0, '(')},
		{"empty-parens", "()", empty(1)},
		{"empty-inner", "1 + (())", empty(6)},
		{"points", "..", empty(0)},
		{"two-nums", "2 3", malformed(2)},
		{"postfix", "2 3 +", malformed(2)},
		{"leading-op", "* 2", malformed(0)},
		{"trailing-op", "2 +", malformed(3)},
		{"trailing-neg", "2*-", malformed(2)},
		{"double-op", "2 * / 3", malformed(4)},
		{"juxtaposed", "(1)(2)", malformed(3)},
		{"num-paren", "2(3)", malformed(1)},
		{"paren-num", "(2)3", malformed(3)},
		{"op-close", "(1+)", malformed(3)},
		{"lone-op", "-", malformed(0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Lex(c.src)
			require.NoError(t, err)
			n, err := Parse(toks)
			assert.Nil(t, n)
			c.err(t, err)
		})
	}
}

func TestParseNoTokens(t *testing.T) {
	n, err := Parse(nil)
	assert.Nil(t, n)
	var e *EmptyExpressionError
	assert.True(t, errors.As(err, &e))
}

func TestParseInvalidToken(t *testing.T) {
	_, err := Parse([]Token{Num("1"), {Kind: Invalid, Text: "&", Pos: 1}, Num("2")})
	var e *UnsupportedOperatorError
	require.True(t, errors.As(err, &e), "got %v", err)
	assert.Equal(t, Invalid, e.Op)
}

func TestParsePostfix(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		infix string
	}{
		{"num", "2", "2"},
		{"add", "2 3 +", "2 + 3"},
		{"precedence", "2 3 4 * +", "2 + 3 * 4"},
		{"grouping", "2 3 + 4 *", "(2 + 3) * 4"},
		{"pow", "2 3 ^ 2 ^", "2 ^ 3 ^ 2"},
		{"right-group", "1 2 3 - -", "1 - (2 - 3)"},
		{"neg", "2 ~", "-2"},
		{"mul-neg", "2 3 ~ *", "2 * -3"},
		{"neg-pow", "10 2 ^ ~", "-10 ^ 2"},
		{"neg-plus", "1 ~#", "+-1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := LexPostfix(c.src)
			require.NoError(t, err)
			n, err := ParsePostfix(toks)
			require.NoError(t, err)
			want := mustParse(t, c.infix)
			assert.Truef(t, want.equal(n), "%q: want %v, got %v", c.src, want, n)
		})
	}
}

func TestParsePostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"missing-operand", "2 +"},
		{"extra-operand", "2 3"},
		{"parens", "(2)"},
		{"infix", "1 + 2"},
		{"leading-minus", "-2"},
		{"lone-neg", "~"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := LexPostfix(c.src)
			require.NoError(t, err)
			n, err := ParsePostfix(toks)
			assert.Nil(t, n)
			var e *MalformedExpressionError
			assert.True(t, errors.As(err, &e), "want MalformedExpressionError, got %v", err)
		})
	}
	_, err := ParsePostfix(nil)
	var e *EmptyExpressionError
	assert.True(t, errors.As(err, &e))
}

func TestPostfixRoundTrip(t *testing.T) {
	cases := []string{
		"1",
		"2 + 3 * 4",
		"(2 + 3) * 4",
		"--2",
		"1 - -1",
		"2 ^ 3 ^ 2",
		"-2^2",
		"2^-3*4",
		"0.1 + 0.2",
		"1---+---2^-((+2))",
		"7 % (2 - 10) / +3",
	}
	for _, src := range cases {
		n := mustParse(t, src)
		m, err := ParsePostfix(n.Postfix())
		require.NoError(t, err, "%q: postfix %v", src, n.Postfix())
		assert.Truef(t, n.equal(m), "%q: parsed %v, round-tripped %v", src, n, m)

		text := postfixText(n)
		toks, err := LexPostfix(text)
		require.NoError(t, err, "%q: lexing postfix text %q", src, text)
		m, err = ParsePostfix(toks)
		require.NoError(t, err, "%q: parsing postfix text %q", src, text)
		assert.Truef(t, n.equal(m), "%q: parsed %v, read back %v from %q", src, n, m, text)
	}
}

func postfixText(n *Node) string {
	toks := n.Postfix()
	v := make([]string, len(toks))
	for i, tok := range toks {
		v[i] = tok.Text
	}
	return strings.Join(v, " ")
}

func TestPostfixText(t *testing.T) {
	cases := []struct {
		src  string
		text string
	}{
		{"-2", "2 ~"},
		{"2 * -3", "2 3 ~ *"},
		{"1 - -1", "1 1 ~ -"},
		{"+-0.5", "0.5 ~ #"},
		{"-10 ^ 2", "10 2 ^ ~"},
		{"0.00000000000000000000000000000001", "0.00000000000000000000000000000001"},
	}
	for _, c := range cases {
		assert.Equal(t, c.text, postfixText(mustParse(t, c.src)), "%q", c.src)
	}
}

func TestNodePostfix(t *testing.T) {
	n := mustParse(t, "-10 ^ 2")
	want := []Token{Num("10"), Num("2"), Op(BinaryPow), Op(UnaryMinus)}
	got := n.Postfix()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Truef(t, want[i].Equal(got[i]), "token %d: want %v, got %v", i, want[i], got[i])
	}
	assert.Equal(t, "~", got[3].Text)
}
