package calc

import "strconv"

const (
	// DefaultPrec is the default binary precision of powers which cannot be
	// computed exactly.
	DefaultPrec = 256
	// DefaultPlaces is the default number of fractional digits for results
	// formatted by EvaluateString.
	DefaultPlaces = 28
)

// Option is an option for evaluation.
type Option interface {
	option(*config)
}

type (
	precopt    uint
	placesopt  int
	postfixopt struct{}
)

// config holds the settings for a single evaluation.
type config struct {
	// prec is the precision in bits of inexact powers.
	prec uint
	// places is the number of fractional digits when formatting results.
	places int
	// postfix indicates that input is in postfix notation.
	postfix bool
}

func newConfig(opts []Option) config {
	c := config{prec: DefaultPrec, places: DefaultPlaces}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.option(&c)
	}
	return c
}

// Prec sets the precision in bits used to compute powers that have no exact
// rational result, like 2^0.5. Panics if bits is zero.
func Prec(bits uint) Option {
	if bits == 0 {
		panic("calc: precision must be positive")
	}
	return precopt(bits)
}

func (o precopt) option(c *config) {
	c.prec = uint(o)
}

// Places sets the number of fractional digits kept when formatting results
// that do not terminate, like 1/3. Panics if n is negative.
func Places(n int) Option {
	if n < 0 {
		panic("calc: cannot format to " + strconv.Itoa(n) + " places")
	}
	return placesopt(n)
}

func (o placesopt) option(c *config) {
	c.places = int(o)
}

// Postfix tells Evaluate to read its input in postfix notation, e.g. "2 3 +".
func Postfix() Option {
	return postfixopt{}
}

func (postfixopt) option(c *config) {
	c.postfix = true
}
