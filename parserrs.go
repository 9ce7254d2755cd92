package calc

import "strconv"

// UnbalancedParenthesesError is an error indicating a parenthesis with no
// match. It implements InputError.
type UnbalancedParenthesesError struct {
	// Index is the position of the unmatched parenthesis.
	Index int
	// Paren is the unmatched parenthesis, either ( or ).
	Paren rune
}

func (err *UnbalancedParenthesesError) Error() string {
	if err.Paren == '(' {
		return errpos(err.Index, "open paren with no close paren")
	}
	return errpos(err.Index, "close paren with no open paren")
}

func (err *UnbalancedParenthesesError) Pos() int {
	return err.Index
}

// EmptyExpressionError is an error indicating an expression or parenthesized
// subexpression with nothing in it. It implements InputError.
type EmptyExpressionError struct {
	// Index is the position of the token that ended the subexpression.
	Index int
	// End is the token that ended the subexpression, or the empty string if
	// the input ended.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		return errpos(err.Index, "no expression")
	}
	return errpos(err.Index, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Index
}

// MalformedExpressionError is an error indicating a token in a position where
// it cannot be used, or an input which does not reduce to exactly one
// expression. It implements InputError.
type MalformedExpressionError struct {
	// Index is the position of the offending token, or of the end of input.
	Index int
	// Token is the offending token's text. It is empty at the end of input.
	Token string
	// Want describes what the parser expected instead.
	Want string
}

func (err *MalformedExpressionError) Error() string {
	if err.Token == "" {
		return errpos(err.Index, "expected "+err.Want+" at end of expression")
	}
	return errpos(err.Index, "unexpected "+strconv.Quote(err.Token)+", expected "+err.Want)
}

func (err *MalformedExpressionError) Pos() int {
	return err.Index
}

// UnsupportedOperatorError is an error indicating an operator that the parser
// or evaluator does not know how to apply.
type UnsupportedOperatorError struct {
	// Op is the kind of the offending token or node.
	Op Kind
	// Symbol is the operator text, if known.
	Symbol string
}

func (err *UnsupportedOperatorError) Error() string {
	if err.Symbol == "" {
		return "unsupported operator " + err.Op.String()
	}
	return "unsupported operator " + strconv.Quote(err.Symbol) + " (" + err.Op.String() + ")"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "column " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the 0-based rune index in the input of the character that
	// caused the error.
	Pos() int
}

var (
	_ InputError = (*EmptyInputError)(nil)
	_ InputError = (*InvalidCharacterError)(nil)
	_ InputError = (*ExcessiveDecimalPointError)(nil)
	_ InputError = (*UnbalancedParenthesesError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
)
