package calc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// MaxResultBits bounds the estimated size of a power's result. Integer powers
// within it are exact; any other power is rounded to Prec bits.
const MaxResultBits = 1 << 24

// arith applies a binary operator to x and y, returning a new value.
func arith(op Kind, x, y *big.Rat, prec uint) (*big.Rat, error) {
	switch op {
	case BinaryAdd:
		return new(big.Rat).Add(x, y), nil
	case BinarySub:
		return new(big.Rat).Sub(x, y), nil
	case BinaryMul:
		return new(big.Rat).Mul(x, y), nil
	case BinaryDiv:
		if y.Sign() == 0 {
			return nil, &DivisionByZeroError{Op: '/', X: x}
		}
		return new(big.Rat).Quo(x, y), nil
	case BinaryMod:
		if y.Sign() == 0 {
			return nil, &DivisionByZeroError{Op: '%', X: x}
		}
		return rem(x, y), nil
	case BinaryPow:
		return pow(x, y, prec)
	default:
		return nil, &UnsupportedOperatorError{Op: op}
	}
}

// rem computes the remainder of truncated division, x - y*trunc(x/y). The
// result has the sign of x.
func rem(x, y *big.Rat) *big.Rat {
	q := new(big.Rat).Quo(x, y)
	t := new(big.Int).Quo(q.Num(), q.Denom())
	z := new(big.Rat).SetInt(t)
	z.Mul(z, y)
	return z.Sub(x, z)
}

// pow computes x^y, exactly when y is an integer.
func pow(x, y *big.Rat, prec uint) (*big.Rat, error) {
	if x.Sign() == 0 {
		switch y.Sign() {
		case 0:
			return nil, &MathDomainError{X: x, Y: y, Reason: "0^0 is undefined"}
		case -1:
			return nil, &DivisionByZeroError{Op: '^', X: x}
		default:
			return new(big.Rat), nil
		}
	}
	if y.Sign() == 0 {
		return big.NewRat(1, 1), nil
	}
	if !y.IsInt() && x.Sign() < 0 {
		return nil, &MathDomainError{X: x, Y: y, Reason: "negative base with fractional exponent"}
	}
	if x.IsInt() && x.Num().CmpAbs(big.NewInt(1)) == 0 {
		// ±1 to any power that gets here is ±1.
		if x.Sign() < 0 && y.Num().Bit(0) == 1 {
			return big.NewRat(-1, 1), nil
		}
		return big.NewRat(1, 1), nil
	}
	if y.IsInt() {
		// The result's numerator and denominator have at most n*|y| bits.
		n := x.Num().BitLen() + x.Denom().BitLen()
		k, _ := y.Float64()
		if float64(n)*math.Abs(k) > MaxResultBits {
			return nil, &MathDomainError{X: x, Y: y, Reason: "result out of range"}
		}
		return powInt(x, y.Num()), nil
	}
	if m := magnitude(x, y); math.IsNaN(m) || m > MaxResultBits {
		return nil, &MathDomainError{X: x, Y: y, Reason: "result out of range"}
	}
	return powFloat(x, y, prec)
}

// powInt computes x^k exactly. x must be nonzero.
func powInt(x *big.Rat, k *big.Int) *big.Rat {
	e := new(big.Int).Abs(k)
	num := new(big.Int).Exp(x.Num(), e, nil)
	den := new(big.Int).Exp(x.Denom(), e, nil)
	r := new(big.Rat).SetFrac(num, den)
	if k.Sign() < 0 {
		r.Inv(r)
	}
	return r
}

// powFloat computes x^y to prec bits. x must be positive.
func powFloat(x, y *big.Rat, prec uint) (r *big.Rat, err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		err, _ = v.(error)
		if err == nil || !errors.As(err, &big.ErrNaN{}) {
			panic(v)
		}
		r, err = nil, &MathDomainError{X: x, Y: y, Reason: err.Error()}
	}()
	bx := new(big.Float).SetPrec(prec).SetRat(x)
	by := new(big.Float).SetPrec(prec).SetRat(y)
	z := bigfloat.Pow(new(big.Float).SetPrec(prec), bx, by)
	if z.IsInf() {
		return nil, &MathDomainError{X: x, Y: y, Reason: "result out of range"}
	}
	r, _ = z.Rat(nil)
	return r, nil
}

// magnitude estimates the base 2 logarithm of |x^y|.
func magnitude(x, y *big.Rat) float64 {
	f, _ := y.Float64()
	xf, _ := x.Float64()
	xf = math.Abs(xf)
	var l float64
	if xf == 0 || math.IsInf(xf, 0) {
		// Too small or large for float64; bit lengths are close enough.
		l = float64(x.Num().BitLen() - x.Denom().BitLen())
	} else {
		l = math.Log2(xf)
	}
	return math.Abs(f * l)
}

// DivisionByZeroError indicates a division, remainder, or negative power with
// a zero divisor.
type DivisionByZeroError struct {
	// Op is the operator, one of / % ^.
	Op rune
	// X is the dividend, or the base for ^.
	X *big.Rat
}

func (err *DivisionByZeroError) Error() string {
	if err.Op == '^' {
		return "division by zero: 0 to a negative power"
	}
	return "division by zero: " + Format(err.X, DefaultPlaces) + " " + string(err.Op) + " 0"
}

// MathDomainError indicates an exponentiation outside the domain of rational
// results.
type MathDomainError struct {
	// X and Y are the base and exponent.
	X, Y *big.Rat
	// Reason describes the problem.
	Reason string
}

func (err *MathDomainError) Error() string {
	return "math domain error: " + Format(err.X, DefaultPlaces) + " ^ " + Format(err.Y, DefaultPlaces) + ": " + err.Reason
}
