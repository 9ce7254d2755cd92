package calc

import (
	"math/big"
	"strings"
)

// Evaluate lexes, parses, and evaluates an expression. The first error from
// any stage is returned with a nil result.
func Evaluate(text string, opts ...Option) (*big.Rat, error) {
	c := newConfig(opts)
	lex, parse := Lex, Parse
	if c.postfix {
		lex, parse = LexPostfix, ParsePostfix
	}
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	n, err := parse(toks)
	if err != nil {
		return nil, err
	}
	return n.eval(&c)
}

// EvaluateString is a shortcut to evaluate an expression and format its
// result to the number of places given by the Places option.
func EvaluateString(text string, opts ...Option) (string, error) {
	r, err := Evaluate(text, opts...)
	if err != nil {
		return "", err
	}
	c := newConfig(opts)
	return Format(r, c.places), nil
}

// Format formats x in decimal. If the decimal expansion of x terminates
// within places fractional digits, the result is exact; otherwise it is
// rounded to places digits. Trailing zeros are trimmed either way.
func Format(x *big.Rat, places int) string {
	if x.IsInt() {
		return x.Num().String()
	}
	if n, ok := decimalPlaces(x.Denom()); ok && n <= places {
		places = n
	}
	s := x.FloatString(places)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		// Negative values that round to zero.
		s = "0"
	}
	return s
}

// decimalPlaces returns the number of fractional digits in the decimal
// expansion of 1/d, if it terminates.
func decimalPlaces(d *big.Int) (int, bool) {
	d = new(big.Int).Set(d)
	twos := d.TrailingZeroBits()
	d.Rsh(d, twos)
	five := big.NewInt(5)
	var m big.Int
	fives := uint(0)
	for {
		q, r := new(big.Int).QuoRem(d, five, &m)
		if r.Sign() != 0 {
			break
		}
		d = q
		fives++
	}
	if d.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	if twos > fives {
		return int(twos), true
	}
	return int(fives), true
}
