package decimal

import (
	"fmt"

	sdecimal "github.com/shopspring/decimal"
)

// Decimal returns f as a shopspring decimal.
func (f Fixed[P]) Decimal() sdecimal.Decimal {
	return sdecimal.NewFromBigInt(nat(f.mant), -int32(decimals[P]()))
}

// Decimal returns s as a shopspring decimal.
func (s Scaled) Decimal() sdecimal.Decimal {
	return sdecimal.NewFromBigInt(nat(s.mant), -int32(s.decimals))
}

// FixedFromDecimal converts d to precision P, truncating digits beyond P's
// precision. Negative values fail with ErrUnderflow.
func FixedFromDecimal[P Precision](d sdecimal.Decimal) (Fixed[P], error) {
	if d.Sign() < 0 {
		return Fixed[P]{}, fmt.Errorf("%w: %s", ErrUnderflow, d)
	}

	return Fixed[P]{mant: d.Shift(int32(decimals[P]())).BigInt()}, nil
}

// ScaledFromDecimal converts d to a value with the given number of decimal
// places, truncating digits beyond them. Negative values fail with
// ErrUnderflow.
func ScaledFromDecimal(d sdecimal.Decimal, decimals uint8) (Scaled, error) {
	if d.Sign() < 0 {
		return Scaled{}, fmt.Errorf("%w: %s", ErrUnderflow, d)
	}

	return NewScaled(d.Shift(int32(decimals)).BigInt(), decimals)
}
