package calc

import (
	"strconv"
	"strings"
)

type lexer struct {
	src  []rune
	toks []Token
	buf  strings.Builder
	// start is the position of the number literal in buf.
	start int
	// num and dot indicate that a number literal is being scanned and whether
	// it has a decimal point, respectively.
	num, dot bool
	// postfix selects postfix operator spellings.
	postfix bool
}

// Lex converts text into a sequence of tokens. Whitespace separates tokens
// but is never required between them. Each + or - is classified as unary or
// binary according to its position: it is unary where an operand is expected
// and one follows.
func Lex(text string) ([]Token, error) {
	return lex(text, false)
}

// LexPostfix converts postfix text into a sequence of tokens. Every + - * / %
// and ^ is binary. Negation is written ~ and unary plus is written #, as
// Node.Postfix spells them.
func LexPostfix(text string) ([]Token, error) {
	return lex(text, true)
}

func lex(text string, postfix bool) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyInputError{}
	}
	l := lexer{src: []rune(text), postfix: postfix}
	for i, r := range l.src {
		if err := l.step(i, r); err != nil {
			return nil, err
		}
	}
	l.flush()
	return l.toks, nil
}

// step scans the rune at position i.
func (l *lexer) step(i int, r rune) error {
	c := classify(r)
	if l.num {
		switch c {
		case classDigit:
			l.buf.WriteRune(r)
			return nil
		case classPoint:
			if l.dot {
				l.buf.WriteRune(r)
				return &ExcessiveDecimalPointError{Text: l.buf.String(), Index: i}
			}
			l.dot = true
			l.buf.WriteRune(r)
			return nil
		}
		// Anything else ends the literal and is then scanned on its own.
		l.flush()
	}
	switch c {
	case classNone:
		// whitespace
	case classDigit:
		l.begin(i)
		l.buf.WriteRune(r)
	case classPoint:
		// A point starts a number only when a digit follows it. Otherwise it
		// is skipped like whitespace.
		if l.digitAt(i + 1) {
			l.begin(i)
			l.dot = true
			l.buf.WriteRune(r)
		}
	case classOperator:
		l.operator(i, r)
	case classLeftParen:
		l.emit(LeftParen, "(", i)
	case classRightParen:
		l.emit(RightParen, ")", i)
	case classInvalid:
		if k := postfixUnaryKind(r); l.postfix && k != Invalid {
			l.emit(k, string(r), i)
			return nil
		}
		return &InvalidCharacterError{Char: r, Index: i}
	default:
		panic("calc: unknown character class " + strconv.Itoa(int(c)))
	}
	return nil
}

// begin starts a number literal at position i.
func (l *lexer) begin(i int) {
	l.num = true
	l.dot = false
	l.start = i
	l.buf.Reset()
}

// flush emits the number literal being scanned, if any.
func (l *lexer) flush() {
	if !l.num {
		return
	}
	l.emit(Number, l.buf.String(), l.start)
	l.buf.Reset()
	l.num = false
	l.dot = false
}

func (l *lexer) emit(k Kind, text string, pos int) {
	l.toks = append(l.toks, Token{Kind: k, Text: text, Pos: pos})
}

// operator emits the operator r at position i.
func (l *lexer) operator(i int, r rune) {
	if l.postfix {
		l.emit(binaryKind(r), string(r), i)
		return
	}
	if k := unaryKind(r); k != Invalid && l.expectsOperand() && l.operandAhead(i) {
		l.emit(k, string(r), i)
		return
	}
	l.emit(binaryKind(r), string(r), i)
}

// expectsOperand reports whether the tokens emitted so far leave the
// expression waiting for an operand, i.e. they do not end with a completed
// number or parenthesized group.
func (l *lexer) expectsOperand() bool {
	if len(l.toks) == 0 {
		return true
	}
	switch l.toks[len(l.toks)-1].Kind {
	case Number, RightParen:
		return false
	default:
		return true
	}
}

// operandAhead reports whether the first significant rune after position i
// can begin an operand: a digit, a point before a digit, an open paren, or
// another operator.
func (l *lexer) operandAhead(i int) bool {
	for j := i + 1; j < len(l.src); j++ {
		switch classify(l.src[j]) {
		case classNone:
			continue
		case classDigit, classLeftParen, classOperator:
			return true
		case classPoint:
			if l.digitAt(j + 1) {
				return true
			}
			// Stray points are skipped.
			continue
		default:
			return false
		}
	}
	return false
}

func (l *lexer) digitAt(i int) bool {
	return i < len(l.src) && classify(l.src[i]) == classDigit
}

// EmptyInputError indicates that there was no expression to lex.
type EmptyInputError struct{}

func (err *EmptyInputError) Error() string {
	return "no expression"
}

func (err *EmptyInputError) Pos() int {
	return 0
}

// InvalidCharacterError indicates a character which is not part of any token.
// It implements InputError.
type InvalidCharacterError struct {
	// Char is the unrecognized character.
	Char rune
	// Index is the 0-based rune index of Char in the input.
	Index int
}

func (err *InvalidCharacterError) Error() string {
	return errpos(err.Index, "character "+strconv.QuoteRune(err.Char)+" is not recognized")
}

func (err *InvalidCharacterError) Pos() int {
	return err.Index
}

// ExcessiveDecimalPointError indicates a number literal with more than one
// decimal point. It implements InputError.
type ExcessiveDecimalPointError struct {
	// Text is the literal up to and including the second decimal point.
	Text string
	// Index is the position of the second decimal point.
	Index int
}

func (err *ExcessiveDecimalPointError) Error() string {
	return errpos(err.Index, "number "+strconv.Quote(err.Text)+" has more than one decimal point")
}

func (err *ExcessiveDecimalPointError) Pos() int {
	return err.Index
}
