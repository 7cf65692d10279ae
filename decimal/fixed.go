package decimal

import (
	"math/big"
)

// Fixed is a non-negative decimal number with a precision fixed by its type
// parameter. The value is mantissa / 10^D where D is P's decimal place count.
//
// The zero value is 0. Fixed values are immutable: every operation returns a
// new value and the assignment forms replace the receiver's mantissa rather
// than modifying it, so copies are never affected.
//
// Fixed values of different precision are different types. Use Convert to
// move between them.
type Fixed[P Precision] struct {
	mant *big.Int
}

// NewFixed returns the value with the given mantissa. The mantissa is copied.
// A negative mantissa fails with ErrUnderflow.
func NewFixed[P Precision](mant *big.Int) (Fixed[P], error) {
	decimals[P]()

	if err := checkNatural(mant); err != nil {
		return Fixed[P]{}, err
	}

	return Fixed[P]{mant: new(big.Int).Set(mant)}, nil
}

// FixedFromUint64 returns the value with mantissa v, that is v / 10^D.
func FixedFromUint64[P Precision](v uint64) Fixed[P] {
	decimals[P]()

	return Fixed[P]{mant: new(big.Int).SetUint64(v)}
}

// Mantissa returns a copy of the mantissa.
func (f Fixed[P]) Mantissa() *big.Int {
	return new(big.Int).Set(nat(f.mant))
}

// Decimals returns the number of decimal places of P.
func (f Fixed[P]) Decimals() uint8 {
	return decimals[P]()
}

// Add returns f + y.
func (f Fixed[P]) Add(y Fixed[P]) Fixed[P] {
	return Fixed[P]{mant: add(f.mant, y.mant)}
}

// Sub returns f - y. It fails with ErrUnderflow when y > f.
func (f Fixed[P]) Sub(y Fixed[P]) (Fixed[P], error) {
	z, err := sub(f.mant, y.mant)
	if err != nil {
		return Fixed[P]{}, err
	}

	return Fixed[P]{mant: z}, nil
}

// Mul returns f * y truncated toward zero to D places.
func (f Fixed[P]) Mul(y Fixed[P]) Fixed[P] {
	return Fixed[P]{mant: mul(f.mant, y.mant, decimals[P]())}
}

// Quo returns f / y truncated toward zero to D places. It fails with
// ErrDivisionByZero when y is zero.
func (f Fixed[P]) Quo(y Fixed[P]) (Fixed[P], error) {
	z, err := quo(f.mant, y.mant, decimals[P]())
	if err != nil {
		return Fixed[P]{}, err
	}

	return Fixed[P]{mant: z}, nil
}

// Sqrt returns the square root of the integer part of f.
//
// The fractional digits of f are discarded before the root is taken, so the
// result is always a whole number: Sqrt(2.25) is 1, not 1.5.
func (f Fixed[P]) Sqrt() Fixed[P] {
	return Fixed[P]{mant: sqrt(f.mant, decimals[P]())}
}

// AddAssign sets f to f + y.
func (f *Fixed[P]) AddAssign(y Fixed[P]) {
	*f = f.Add(y)
}

// SubAssign sets f to f - y. On error f is left unchanged.
func (f *Fixed[P]) SubAssign(y Fixed[P]) error {
	z, err := f.Sub(y)
	if err != nil {
		return err
	}

	*f = z

	return nil
}

// MulAssign sets f to f * y.
func (f *Fixed[P]) MulAssign(y Fixed[P]) {
	*f = f.Mul(y)
}

// QuoAssign sets f to f / y. On error f is left unchanged.
func (f *Fixed[P]) QuoAssign(y Fixed[P]) error {
	z, err := f.Quo(y)
	if err != nil {
		return err
	}

	*f = z

	return nil
}

// Cmp compares f and y and returns -1, 0 or +1.
func (f Fixed[P]) Cmp(y Fixed[P]) int {
	return nat(f.mant).Cmp(nat(y.mant))
}

// Equal reports whether f and y are the same number.
func (f Fixed[P]) Equal(y Fixed[P]) bool {
	return f.Cmp(y) == 0
}

// IsZero reports whether f is zero.
func (f Fixed[P]) IsZero() bool {
	return nat(f.mant).Sign() == 0
}

// ToScaled returns f with its precision carried at run time.
func (f Fixed[P]) ToScaled() Scaled {
	return Scaled{
		mant:     nat(f.mant),
		decimals: decimals[P](),
	}
}

// Convert returns f at the precision of To. Places gained are filled with
// zeros and places dropped are truncated.
func Convert[To, From Precision](f Fixed[From]) Fixed[To] {
	return Fixed[To]{mant: rescale(f.mant, decimals[From](), decimals[To]())}
}
