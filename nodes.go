package calc

import (
	"math/big"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. Each node owns
// its children exclusively.
type Node struct {
	// Op is Number for leaves, a unary operator kind for nodes with only a
	// Left child, or a binary operator kind for nodes with both children.
	Op Kind
	// Value is the value of a leaf.
	Value *big.Rat

	Left  *Node
	Right *Node
}

// Leaf creates a terminal node holding v.
func Leaf(v *big.Rat) *Node {
	return &Node{Op: Number, Value: v}
}

// Unary creates a node applying a unary operator to x.
func Unary(op Kind, x *Node) *Node {
	return &Node{Op: op, Left: x}
}

// Binary creates a node applying a binary operator to left and right.
func Binary(op Kind, left, right *Node) *Node {
	return &Node{Op: op, Left: left, Right: right}
}

// String formats the tree with every term bracketed, alternating round and
// square brackets by depth.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch {
	case n.Op == Number:
		if n.Value == nil {
			// Invalid nodes use invalid characters.
			b.WriteByte('$')
			return
		}
		b.WriteString(literal(n.Value))
	case n.Op.IsUnary():
		b.WriteRune(n.Op.Symbol())
		n.Left.fmt(b, !square)
	case n.Op.IsBinary():
		n.Left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteRune(n.Op.Symbol())
		b.WriteByte(' ')
		n.Right.fmt(b, !square)
	default:
		panic("calc: invalid node kind " + n.Op.String() + " after writing " + b.String())
	}
}

// Postfix returns the tokens of the tree in postfix order, the order in which
// Eval applies them. ParsePostfix inverts it. Unary operators carry their
// postfix spellings, so for trees produced by Parse, the token texts joined
// by spaces lex back to the same tokens with LexPostfix.
func (n *Node) Postfix() []Token {
	return n.postfix(nil)
}

func (n *Node) postfix(toks []Token) []Token {
	switch {
	case n.Op == Number:
		return append(toks, Num(literal(n.Value)))
	case n.Op.IsUnary():
		toks = n.Left.postfix(toks)
	case n.Op.IsBinary():
		toks = n.Left.postfix(toks)
		toks = n.Right.postfix(toks)
	default:
		panic("calc: invalid node kind " + n.Op.String())
	}
	return append(toks, Token{Kind: n.Op, Text: string(n.Op.PostfixSymbol())})
}

// literal formats a leaf value exactly when its decimal expansion terminates.
func literal(v *big.Rat) string {
	if n, ok := decimalPlaces(v.Denom()); ok {
		return Format(v, n)
	}
	return Format(v, DefaultPlaces)
}
