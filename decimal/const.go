package decimal

import (
	"math/big"

	"github.com/calebcase/fixedpoint/scale"
)

// Fraction is an exact ratio used to build constants. The constant's mantissa
// is 10^D * Num / Den truncated toward zero.
type Fraction struct {
	Num, Den uint64
}

// Commonly used fractions.
var (
	Tenth         = Fraction{1, 10}
	Fifth         = Fraction{1, 5}
	Quarter       = Fraction{1, 4}
	ThreeTenths   = Fraction{3, 10}
	Third         = Fraction{1, 3}
	TwoFifths     = Fraction{2, 5}
	Half          = Fraction{1, 2}
	ThreeFifths   = Fraction{3, 5}
	TwoThirds     = Fraction{2, 3}
	SevenTenths   = Fraction{7, 10}
	ThreeQuarters = Fraction{3, 4}
	FourFifths    = Fraction{4, 5}
	NineTenths    = Fraction{9, 10}
	Double        = Fraction{2, 1}
)

// mantissa panics when d exceeds scale.Max or Den is zero.
func (fr Fraction) mantissa(d uint8) *big.Int {
	if fr.Den == 0 {
		panic(ErrDivisionByZero)
	}

	z := new(big.Int).SetUint64(fr.Num)
	z.Mul(z, scale.Base(d))

	return z.Quo(z, new(big.Int).SetUint64(fr.Den))
}

// Frac returns fr at precision P.
func Frac[P Precision](fr Fraction) Fixed[P] {
	return Fixed[P]{mant: fr.mantissa(decimals[P]())}
}

// Zero returns 0 at precision P.
func Zero[P Precision]() Fixed[P] {
	decimals[P]()

	return Fixed[P]{mant: new(big.Int)}
}

// One returns 1 at precision P.
func One[P Precision]() Fixed[P] {
	return Frac[P](Fraction{1, 1})
}

// Two returns 2 at precision P.
func Two[P Precision]() Fixed[P] {
	return Frac[P](Double)
}

// ScaledFrac returns fr with the given number of decimal places. It panics if
// decimals is greater than 31.
func ScaledFrac(fr Fraction, decimals uint8) Scaled {
	return Scaled{mant: fr.mantissa(decimals), decimals: decimals}
}

// ScaledZero returns 0 with the given number of decimal places. It panics if
// decimals is greater than 31.
func ScaledZero(decimals uint8) Scaled {
	return ScaledFrac(Fraction{0, 1}, decimals)
}

// ScaledOne returns 1 with the given number of decimal places. It panics if
// decimals is greater than 31.
func ScaledOne(decimals uint8) Scaled {
	return ScaledFrac(Fraction{1, 1}, decimals)
}

// ScaledTwo returns 2 with the given number of decimal places. It panics if
// decimals is greater than 31.
func ScaledTwo(decimals uint8) Scaled {
	return ScaledFrac(Double, decimals)
}
