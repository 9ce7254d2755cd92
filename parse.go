package calc

// Expr = num | Plus | Neg | Add | Sub | Mul | Div | Mod | Pow | '(' Expr ')'
// Plus = '+' Expr
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Mod = Expr '%' Expr
// Pow = Expr '^' Expr

// parser holds the state of a shunting-yard parse.
type parser struct {
	// operands is the stack of completed subtrees.
	operands []*Node
	// operators is the stack of pending operators and open parens.
	operators []Token
	// want indicates that the next token must begin an operand.
	want bool
	// end is the position just past the last token seen.
	end int
}

// Parse arranges a sequence of infix tokens into a tree. All binary operators
// are left-associative. A pending unary operator is applied before any
// following binary operator except ^, so -2^2 is -(2^2) while 2^-3*4 is
// (2^(-3))*4. Unary operators thus bind tighter than * / % rather than
// sharing the precedence of binary + and -, which would read 2^-3*4 as
// 2^(-(3*4)).
func Parse(toks []Token) (*Node, error) {
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{}
	}
	p := parser{
		operands:  make([]*Node, 0, len(toks)/2+1),
		operators: make([]Token, 0, len(toks)/2+1),
		want:      true,
	}
	for _, tok := range toks {
		if err := p.token(tok); err != nil {
			return nil, err
		}
		p.end = tok.Pos + len([]rune(tok.Text))
	}
	return p.finish()
}

// token handles a single token.
func (p *parser) token(tok Token) error {
	switch {
	case tok.Kind == Number:
		if !p.want {
			return &MalformedExpressionError{Index: tok.Pos, Token: tok.Text, Want: "operator"}
		}
		v := tok.Value()
		if v == nil {
			return &MalformedExpressionError{Index: tok.Pos, Token: tok.Text, Want: "number"}
		}
		p.operands = append(p.operands, Leaf(v))
		p.want = false
	case tok.Kind.IsUnary():
		if !p.want {
			return &MalformedExpressionError{Index: tok.Pos, Token: tok.Text, Want: "operator"}
		}
		p.operators = append(p.operators, tok)
	case tok.Kind.IsBinary():
		if p.want {
			return &MalformedExpressionError{Index: tok.Pos, Token: tok.Text, Want: "operand"}
		}
		for len(p.operators) > 0 && reducesBefore(p.top().Kind, tok.Kind) {
			if err := p.reduce(); err != nil {
				return err
			}
		}
		p.operators = append(p.operators, tok)
		p.want = true
	case tok.Kind == LeftParen:
		if !p.want {
			return &MalformedExpressionError{Index: tok.Pos, Token: tok.Text, Want: "operator"}
		}
		p.operators = append(p.operators, tok)
	case tok.Kind == RightParen:
		if p.want {
			if len(p.operators) > 0 && p.top().Kind == LeftParen {
				return &EmptyExpressionError{Index: tok.Pos, End: tok.Text}
			}
			return &MalformedExpressionError{Index: tok.Pos, Token: tok.Text, Want: "operand"}
		}
		for {
			if len(p.operators) == 0 {
				return &UnbalancedParenthesesError{Index: tok.Pos, Paren: ')'}
			}
			if p.top().Kind == LeftParen {
				p.operators = p.operators[:len(p.operators)-1]
				break
			}
			if err := p.reduce(); err != nil {
				return err
			}
		}
	default:
		return &UnsupportedOperatorError{Op: tok.Kind, Symbol: tok.Text}
	}
	return nil
}

// finish reduces all pending operators and returns the root.
func (p *parser) finish() (*Node, error) {
	if p.want {
		for _, op := range p.operators {
			if op.Kind == LeftParen {
				return nil, &UnbalancedParenthesesError{Index: op.Pos, Paren: '('}
			}
		}
		return nil, &MalformedExpressionError{Index: p.end, Want: "operand"}
	}
	for len(p.operators) > 0 {
		if op := p.top(); op.Kind == LeftParen {
			return nil, &UnbalancedParenthesesError{Index: op.Pos, Paren: '('}
		}
		if err := p.reduce(); err != nil {
			return nil, err
		}
	}
	switch len(p.operands) {
	case 0:
		return nil, &EmptyExpressionError{Index: p.end}
	case 1:
		return p.operands[0], nil
	default:
		return nil, &MalformedExpressionError{Index: p.end, Want: "single expression"}
	}
}

func (p *parser) top() Token {
	return p.operators[len(p.operators)-1]
}

// reduce pops the top operator and applies it to the top one or two operands.
func (p *parser) reduce() error {
	op := p.top()
	p.operators = p.operators[:len(p.operators)-1]
	n, err := apply(p.operands, op)
	if err != nil {
		return err
	}
	p.operands = n
	return nil
}

// apply pops exactly as many operands as op takes from stack, pushes the
// resulting node, and returns the new stack. For binary operators, the
// second popped operand is the left child.
func apply(stack []*Node, op Token) ([]*Node, error) {
	switch {
	case op.Kind.IsUnary():
		if len(stack) < 1 {
			return nil, &MalformedExpressionError{Index: op.Pos, Token: op.Text, Want: "operand"}
		}
		k := len(stack) - 1
		stack[k] = Unary(op.Kind, stack[k])
		return stack, nil
	case op.Kind.IsBinary():
		if len(stack) < 2 {
			return nil, &MalformedExpressionError{Index: op.Pos, Token: op.Text, Want: "operand"}
		}
		k := len(stack) - 2
		stack[k] = Binary(op.Kind, stack[k], stack[k+1])
		stack[k+1] = nil
		return stack[:k+1], nil
	default:
		panic("calc: reducing non-operator " + op.String())
	}
}

// reducesBefore reports whether a pending operator top must be applied before
// the incoming binary operator in is pushed.
func reducesBefore(top, in Kind) bool {
	switch {
	case top.IsBinary():
		// >= makes every operator left-associative.
		return Precedence(top) >= Precedence(in)
	case top.IsUnary():
		return in != BinaryPow
	default:
		// Parens are only removed by their matching close.
		return false
	}
}

// ParsePostfix arranges a sequence of postfix tokens, as produced by
// Node.Postfix, into a tree. Each unary operator applies to the operand
// before it, and each binary operator to the two operands before it.
// Parentheses are not allowed.
func ParsePostfix(toks []Token) (*Node, error) {
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{}
	}
	stack := make([]*Node, 0, len(toks)/2+1)
	end := 0
	for _, tok := range toks {
		switch {
		case tok.Kind == Number:
			v := tok.Value()
			if v == nil {
				return nil, &MalformedExpressionError{Index: tok.Pos, Token: tok.Text, Want: "number"}
			}
			stack = append(stack, Leaf(v))
		case tok.Kind.IsUnary(), tok.Kind.IsBinary():
			var err error
			stack, err = apply(stack, tok)
			if err != nil {
				return nil, err
			}
		case tok.Kind == LeftParen, tok.Kind == RightParen:
			return nil, &MalformedExpressionError{Index: tok.Pos, Token: tok.Text, Want: "postfix term"}
		default:
			return nil, &UnsupportedOperatorError{Op: tok.Kind, Symbol: tok.Text}
		}
		end = tok.Pos + len([]rune(tok.Text))
	}
	if len(stack) != 1 {
		return nil, &MalformedExpressionError{Index: end, Want: "single expression"}
	}
	return stack[0], nil
}
