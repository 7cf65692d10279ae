package decimal

import (
	"fmt"
	"math/big"

	"github.com/calebcase/fixedpoint/scale"
)

// Scaled is a non-negative decimal number whose precision is carried at run
// time. The value is mantissa / 10^decimals.
//
// The zero value is 0 with no decimal places. Binary operations require both
// operands to have the same number of decimal places and fail with
// ErrPrecisionMismatch otherwise; use Rescale to align them.
type Scaled struct {
	mant     *big.Int
	decimals uint8
}

// NewScaled returns the value mant / 10^decimals. The mantissa is copied.
func NewScaled(mant *big.Int, decimals uint8) (Scaled, error) {
	if err := scale.Check(decimals); err != nil {
		return Scaled{}, err
	}

	if err := checkNatural(mant); err != nil {
		return Scaled{}, err
	}

	return Scaled{
		mant:     new(big.Int).Set(mant),
		decimals: decimals,
	}, nil
}

// ScaledFromUint64 returns the value v / 10^decimals.
func ScaledFromUint64(v uint64, decimals uint8) (Scaled, error) {
	return NewScaled(new(big.Int).SetUint64(v), decimals)
}

// Mantissa returns a copy of the mantissa.
func (s Scaled) Mantissa() *big.Int {
	return new(big.Int).Set(nat(s.mant))
}

// Decimals returns the number of decimal places.
func (s Scaled) Decimals() uint8 {
	return s.decimals
}

func (s Scaled) check(y Scaled) error {
	if s.decimals != y.decimals {
		return fmt.Errorf("%w: %d and %d decimal places", ErrPrecisionMismatch, s.decimals, y.decimals)
	}

	return nil
}

// Add returns s + y.
func (s Scaled) Add(y Scaled) (Scaled, error) {
	if err := s.check(y); err != nil {
		return Scaled{}, err
	}

	return Scaled{mant: add(s.mant, y.mant), decimals: s.decimals}, nil
}

// Sub returns s - y. It fails with ErrUnderflow when y > s.
func (s Scaled) Sub(y Scaled) (Scaled, error) {
	if err := s.check(y); err != nil {
		return Scaled{}, err
	}

	z, err := sub(s.mant, y.mant)
	if err != nil {
		return Scaled{}, err
	}

	return Scaled{mant: z, decimals: s.decimals}, nil
}

// Mul returns s * y truncated toward zero.
func (s Scaled) Mul(y Scaled) (Scaled, error) {
	if err := s.check(y); err != nil {
		return Scaled{}, err
	}

	return Scaled{mant: mul(s.mant, y.mant, s.decimals), decimals: s.decimals}, nil
}

// Quo returns s / y truncated toward zero. It fails with ErrDivisionByZero
// when y is zero.
func (s Scaled) Quo(y Scaled) (Scaled, error) {
	if err := s.check(y); err != nil {
		return Scaled{}, err
	}

	z, err := quo(s.mant, y.mant, s.decimals)
	if err != nil {
		return Scaled{}, err
	}

	return Scaled{mant: z, decimals: s.decimals}, nil
}

// MulInt returns s * n. The mantissa is multiplied directly.
func (s Scaled) MulInt(n uint64) Scaled {
	z := new(big.Int).SetUint64(n)

	return Scaled{mant: z.Mul(nat(s.mant), z), decimals: s.decimals}
}

// QuoInt returns s / n truncated toward zero. The mantissa is divided
// directly.
func (s Scaled) QuoInt(n uint64) (Scaled, error) {
	if n == 0 {
		return Scaled{}, ErrDivisionByZero
	}

	z := new(big.Int).SetUint64(n)

	return Scaled{mant: z.Quo(nat(s.mant), z), decimals: s.decimals}, nil
}

// Sqrt returns the square root of the integer part of s.
//
// The fractional digits of s are discarded before the root is taken, so the
// result is always a whole number at s's precision.
func (s Scaled) Sqrt() Scaled {
	return Scaled{mant: sqrt(s.mant, s.decimals), decimals: s.decimals}
}

// AddAssign sets s to s + y. On error s is left unchanged.
func (s *Scaled) AddAssign(y Scaled) error {
	return s.assign(s.Add(y))
}

// SubAssign sets s to s - y. On error s is left unchanged.
func (s *Scaled) SubAssign(y Scaled) error {
	return s.assign(s.Sub(y))
}

// MulAssign sets s to s * y. On error s is left unchanged.
func (s *Scaled) MulAssign(y Scaled) error {
	return s.assign(s.Mul(y))
}

// QuoAssign sets s to s / y. On error s is left unchanged.
func (s *Scaled) QuoAssign(y Scaled) error {
	return s.assign(s.Quo(y))
}

// MulIntAssign sets s to s * n.
func (s *Scaled) MulIntAssign(n uint64) {
	*s = s.MulInt(n)
}

// QuoIntAssign sets s to s / n. On error s is left unchanged.
func (s *Scaled) QuoIntAssign(n uint64) error {
	return s.assign(s.QuoInt(n))
}

func (s *Scaled) assign(z Scaled, err error) error {
	if err != nil {
		return err
	}

	*s = z

	return nil
}

// Cmp compares s and y and returns -1, 0 or +1.
func (s Scaled) Cmp(y Scaled) (int, error) {
	if err := s.check(y); err != nil {
		return 0, err
	}

	return nat(s.mant).Cmp(nat(y.mant)), nil
}

// Equal reports whether s and y have the same mantissa and the same number of
// decimal places. 1.5 with one place and 1.50 with two are not Equal.
func (s Scaled) Equal(y Scaled) bool {
	return s.decimals == y.decimals && nat(s.mant).Cmp(nat(y.mant)) == 0
}

// IsZero reports whether s is zero.
func (s Scaled) IsZero() bool {
	return nat(s.mant).Sign() == 0
}

// Rescale returns s with the given number of decimal places. Places gained
// are filled with zeros and places dropped are truncated.
func (s Scaled) Rescale(decimals uint8) (Scaled, error) {
	if err := scale.Check(decimals); err != nil {
		return Scaled{}, err
	}

	return Scaled{mant: rescale(s.mant, s.decimals, decimals), decimals: decimals}, nil
}

// ToFixed returns s as a Fixed[P]. s must already have P's precision,
// otherwise it fails with ErrRepresentationMismatch.
func ToFixed[P Precision](s Scaled) (Fixed[P], error) {
	d := decimals[P]()
	if s.decimals != d {
		return Fixed[P]{}, fmt.Errorf("%w: have %d decimal places, want %d", ErrRepresentationMismatch, s.decimals, d)
	}

	return Fixed[P]{mant: nat(s.mant)}, nil
}
