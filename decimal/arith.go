package decimal

import (
	"fmt"
	"math/big"

	"github.com/calebcase/fixedpoint/scale"
)

// Mantissa arithmetic shared by Fixed and Scaled. Every function returns a
// freshly allocated integer and never modifies its arguments. A nil mantissa
// is zero.

var bigZero = new(big.Int)

func nat(x *big.Int) *big.Int {
	if x == nil {
		return bigZero
	}

	return x
}

func checkNatural(x *big.Int) error {
	if x.Sign() < 0 {
		return fmt.Errorf("%w: negative mantissa %s", ErrUnderflow, x)
	}

	return nil
}

func add(x, y *big.Int) *big.Int {
	return new(big.Int).Add(nat(x), nat(y))
}

func sub(x, y *big.Int) (*big.Int, error) {
	if nat(x).Cmp(nat(y)) < 0 {
		return nil, fmt.Errorf("%w: %s - %s", ErrUnderflow, nat(x), nat(y))
	}

	return new(big.Int).Sub(nat(x), nat(y)), nil
}

// mul computes floor(x*y / 10^d).
func mul(x, y *big.Int, d uint8) *big.Int {
	z := new(big.Int).Mul(nat(x), nat(y))

	return z.Quo(z, scale.Base(d))
}

// quo computes floor(x*10^d / y). The dividend is rescaled before dividing so
// no precision is lost to an intermediate truncation.
func quo(x, y *big.Int, d uint8) (*big.Int, error) {
	if nat(y).Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	z := new(big.Int).Mul(nat(x), scale.Base(d))

	return z.Quo(z, y), nil
}

// sqrt drops the fractional digits of x, takes the integer square root and
// scales the result back to d places.
func sqrt(x *big.Int, d uint8) *big.Int {
	z := new(big.Int).Quo(nat(x), scale.Base(d))
	z.Sqrt(z)

	return z.Mul(z, scale.Base(d))
}

// rescale moves x from one decimal place count to another, truncating when
// places are dropped.
func rescale(x *big.Int, from, to uint8) *big.Int {
	switch {
	case to > from:
		return new(big.Int).Mul(nat(x), scale.Base(to-from))
	case to < from:
		return new(big.Int).Quo(nat(x), scale.Base(from-to))
	}

	return new(big.Int).Set(nat(x))
}

// shift multiplies x by 10^exp, or truncate-divides by 10^-exp when exp is
// negative. Unlike rescale the exponent is not limited to the scale table.
func shift(x *big.Int, exp int64) *big.Int {
	if exp == 0 {
		return new(big.Int).Set(x)
	}

	abs := exp
	if abs < 0 {
		abs = -abs

		// x has at most this many decimal digits, so dividing by a larger
		// power of ten leaves nothing.
		if abs > int64(x.BitLen())*30103/100000+1 {
			return new(big.Int)
		}
	}

	var p *big.Int
	if abs <= scale.Max {
		p = scale.Base(uint8(abs))
	} else {
		p = new(big.Int).Exp(big.NewInt(10), big.NewInt(abs), nil)
	}

	if exp > 0 {
		return new(big.Int).Mul(x, p)
	}

	return new(big.Int).Quo(x, p)
}
