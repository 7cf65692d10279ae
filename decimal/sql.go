package decimal

import (
	"database/sql/driver"
	"fmt"
	"math/big"

	"github.com/calebcase/fixedpoint/scale"
)

// Value implements driver.Valuer. The value is sent as decimal text.
func (f Fixed[P]) Value() (driver.Value, error) {
	return f.String(), nil
}

// Scan implements sql.Scanner. Text and integer columns are accepted;
// floating point columns are rejected.
func (f *Fixed[P]) Scan(src any) error {
	var (
		v   Fixed[P]
		err error
	)

	switch src := src.(type) {
	case string:
		v, err = ParseFixed[P](src)
	case []byte:
		v, err = ParseFixed[P](string(src))
	case int64:
		if src < 0 {
			return fmt.Errorf("%w: %d", ErrUnderflow, src)
		}

		v = Fixed[P]{mant: rescale(big.NewInt(src), 0, decimals[P]())}
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrDecode, src)
	}

	if err != nil {
		return err
	}

	*f = v

	return nil
}

// Value implements driver.Valuer. The value is sent as decimal text.
func (s Scaled) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan implements sql.Scanner. Text columns keep the number of fraction
// digits they were written with; integer columns have no decimal places.
func (s *Scaled) Scan(src any) error {
	switch src := src.(type) {
	case string:
		return s.UnmarshalText([]byte(src))
	case []byte:
		return s.UnmarshalText(src)
	case int64:
		if src < 0 {
			return fmt.Errorf("%w: %d", ErrUnderflow, src)
		}

		*s = Scaled{mant: big.NewInt(src)}

		return nil
	}

	return fmt.Errorf("%w: cannot scan %T", ErrDecode, src)
}

// Decompose returns the value as a finite decimal with a big-endian
// coefficient and exponent -Decimals. buf is used for the coefficient when it
// is large enough.
func (s Scaled) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	return 0, false, coefficientBytes(s.mant, buf), -int32(s.decimals)
}

// Compose sets s from a decomposed decimal. The number of decimal places is
// taken from the exponent; positive exponents produce a whole number.
func (s *Scaled) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	mant, err := compose(form, negative, coefficient)
	if err != nil {
		return err
	}

	if exponent > 0 {
		*s = Scaled{mant: shift(mant, int64(exponent))}

		return nil
	}

	if -int64(exponent) > scale.Max {
		return fmt.Errorf("%w: exponent %d", ErrUnsupportedPrecision, exponent)
	}

	*s = Scaled{mant: mant, decimals: uint8(-exponent)}

	return nil
}

// Decompose returns the value as a finite decimal with a big-endian
// coefficient and exponent -D.
func (f Fixed[P]) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	return 0, false, coefficientBytes(f.mant, buf), -int32(decimals[P]())
}

// Compose sets f from a decomposed decimal, truncating digits beyond P's
// precision.
func (f *Fixed[P]) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	mant, err := compose(form, negative, coefficient)
	if err != nil {
		return err
	}

	*f = Fixed[P]{mant: shift(mant, int64(exponent)+int64(decimals[P]()))}

	return nil
}

func coefficientBytes(x *big.Int, buf []byte) []byte {
	n := (nat(x).BitLen() + 7) / 8
	if cap(buf) >= n {
		return nat(x).FillBytes(buf[:n])
	}

	return nat(x).Bytes()
}

func compose(form byte, negative bool, coefficient []byte) (*big.Int, error) {
	if form != 0 {
		return nil, fmt.Errorf("%w: non-finite form %d", ErrDecode, form)
	}

	mant := new(big.Int).SetBytes(coefficient)
	if negative && mant.Sign() != 0 {
		return nil, fmt.Errorf("%w: negative coefficient", ErrUnderflow)
	}

	return mant, nil
}
