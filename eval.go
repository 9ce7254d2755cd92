package calc

import "math/big"

// Eval reduces a tree to its value. The tree is not modified. The only option
// which affects Eval is Prec.
func Eval(n *Node, opts ...Option) (*big.Rat, error) {
	c := newConfig(opts)
	return n.eval(&c)
}

// eval computes the node's value in post-order. The result is always a new
// value which the caller may modify.
func (n *Node) eval(c *config) (*big.Rat, error) {
	switch n.Op {
	case Number:
		if n.Value == nil {
			panic("calc: leaf with no value")
		}
		return new(big.Rat).Set(n.Value), nil
	case UnaryPlus:
		return n.Left.eval(c)
	case UnaryMinus:
		x, err := n.Left.eval(c)
		if err != nil {
			return nil, err
		}
		return x.Neg(x), nil
	case BinaryAdd, BinarySub, BinaryMul, BinaryDiv, BinaryMod, BinaryPow:
		l, err := n.Left.eval(c)
		if err != nil {
			return nil, err
		}
		r, err := n.Right.eval(c)
		if err != nil {
			return nil, err
		}
		return arith(n.Op, l, r, c.prec)
	default:
		return nil, &UnsupportedOperatorError{Op: n.Op}
	}
}
