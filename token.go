package calc

import (
	"math/big"
	"strings"
	"unicode"
)

// Kind identifies the type of a token and of an AST node.
type Kind int8

const (
	Invalid Kind = iota

	// Number is a decimal literal.
	Number

	UnaryPlus
	UnaryMinus

	BinaryAdd
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryPow

	LeftParen
	RightParen
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind
//go:generate go mod tidy

// IsUnary reports whether k is a prefix operator.
func (k Kind) IsUnary() bool {
	return k == UnaryPlus || k == UnaryMinus
}

// IsBinary reports whether k is an infix operator.
func (k Kind) IsBinary() bool {
	return BinaryAdd <= k && k <= BinaryPow
}

// Symbol returns the source character for an operator or parenthesis kind, or
// 0 for any other kind.
func (k Kind) Symbol() rune {
	switch k {
	case UnaryPlus, BinaryAdd:
		return '+'
	case UnaryMinus, BinarySub:
		return '-'
	case BinaryMul:
		return '*'
	case BinaryDiv:
		return '/'
	case BinaryMod:
		return '%'
	case BinaryPow:
		return '^'
	case LeftParen:
		return '('
	case RightParen:
		return ')'
	default:
		return 0
	}
}

// PostfixSymbol returns the character for k in postfix notation. There + and
// - are always binary, so negation is written ~ and unary plus is written #.
func (k Kind) PostfixSymbol() rune {
	switch k {
	case UnaryPlus:
		return '#'
	case UnaryMinus:
		return '~'
	default:
		return k.Symbol()
	}
}

// Precedence returns the binding strength of a binary operator. Higher binds
// tighter. The result is 0 for kinds which are not binary operators.
func Precedence(k Kind) int {
	switch k {
	case BinaryAdd, BinarySub:
		return 1
	case BinaryMul, BinaryDiv, BinaryMod:
		return 2
	case BinaryPow:
		return 3
	default:
		return 0
	}
}

// binaryKind gets the binary operator for an operator rune.
func binaryKind(r rune) Kind {
	switch r {
	case '+':
		return BinaryAdd
	case '-':
		return BinarySub
	case '*':
		return BinaryMul
	case '/':
		return BinaryDiv
	case '%':
		return BinaryMod
	case '^':
		return BinaryPow
	default:
		return Invalid
	}
}

// unaryKind gets the unary operator for an operator rune. Only + and - have
// unary forms.
func unaryKind(r rune) Kind {
	switch r {
	case '+':
		return UnaryPlus
	case '-':
		return UnaryMinus
	default:
		return Invalid
	}
}

// postfixUnaryKind gets the unary operator for a postfix spelling.
func postfixUnaryKind(r rune) Kind {
	switch r {
	case '#':
		return UnaryPlus
	case '~':
		return UnaryMinus
	default:
		return Invalid
	}
}

// Token is a lexical unit of an expression.
type Token struct {
	// Kind is the type of the token.
	Kind Kind
	// Text is the literal text of a number, or the character of an operator
	// or parenthesis.
	Text string
	// Pos is the 0-based rune index of the token's first character.
	Pos int
}

// Num creates a Number token with no position information.
func Num(text string) Token {
	return Token{Kind: Number, Text: text}
}

// Op creates an operator or parenthesis token with no position information.
func Op(k Kind) Token {
	return Token{Kind: k, Text: string(k.Symbol())}
}

// Equal reports whether two tokens have the same kind and payload. Numbers
// compare by value, so 1.0 equals 1. Operators compare by kind alone, so the
// infix and postfix spellings of negation are equal. Positions are ignored.
func (t Token) Equal(u Token) bool {
	if t.Kind != u.Kind {
		return false
	}
	switch t.Kind {
	case Number:
	case Invalid:
		return t.Text == u.Text
	default:
		return true
	}
	x, y := t.Value(), u.Value()
	if x == nil || y == nil {
		return x == nil && y == nil && t.Text == u.Text
	}
	return x.Cmp(y) == 0
}

// Value parses the value of a Number token. The result is nil if the token is
// not a valid number.
func (t Token) Value() *big.Rat {
	if t.Kind != Number {
		return nil
	}
	return parseDecimal(t.Text)
}

// parseDecimal parses a decimal literal as scanned by the lexer, which may
// begin or end with its decimal point.
func parseDecimal(s string) *big.Rat {
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil
	}
	return r
}

func (t Token) String() string {
	if t.Kind == Number {
		return t.Kind.String() + "(" + t.Text + ")"
	}
	return t.Kind.String()
}

// class is the lexical category of a single rune.
type class int8

const (
	classNone class = iota
	classDigit
	classOperator
	classLeftParen
	classRightParen
	classPoint
	classInvalid
)

// classify maps a single rune to its lexical category. Whitespace maps to
// classNone. The decimal point has its own class so that it is never
// reported as an invalid character.
func classify(r rune) class {
	switch {
	case '0' <= r && r <= '9':
		return classDigit
	case binaryKind(r) != Invalid:
		return classOperator
	case r == '(':
		return classLeftParen
	case r == ')':
		return classRightParen
	case r == '.':
		return classPoint
	case unicode.IsSpace(r):
		return classNone
	default:
		return classInvalid
	}
}
