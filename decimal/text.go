package decimal

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/calebcase/fixedpoint/scale"
)

// format renders x / 10^d with exactly d fractional digits.
func format(x *big.Int, d uint8) string {
	if d == 0 {
		return nat(x).String()
	}

	q, r := new(big.Int).QuoRem(nat(x), scale.Base(d), new(big.Int))
	frac := r.String()

	return q.String() + "." + strings.Repeat("0", int(d)-len(frac)) + frac
}

// String returns the value as "<integer>.<fraction>" with exactly D
// fractional digits. With no decimal places only the integer is written.
func (f Fixed[P]) String() string {
	return format(f.mant, decimals[P]())
}

// String returns the value as "<integer>.<fraction>" with exactly Decimals
// fractional digits. With no decimal places only the integer is written.
func (s Scaled) String() string {
	return format(s.mant, s.decimals)
}

// split checks that text is digits[.digits] and returns the two digit runs.
func split(text string) (integer, fraction string, err error) {
	if strings.HasPrefix(text, "-") {
		return "", "", fmt.Errorf("%w: %q", ErrUnderflow, text)
	}

	integer, fraction, dot := strings.Cut(text, ".")
	if !digits(integer) || (dot && !digits(fraction)) {
		return "", "", fmt.Errorf("%w: invalid decimal %q", ErrDecode, text)
	}

	return integer, fraction, nil
}

func digits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// parse returns the mantissa of text at d places. Fraction digits beyond d
// are truncated.
func parse(text string, d uint8) (*big.Int, error) {
	integer, fraction, err := split(text)
	if err != nil {
		return nil, err
	}

	if len(fraction) > int(d) {
		fraction = fraction[:d]
	}

	mant, _ := new(big.Int).SetString(integer+fraction, 10)

	return mant.Mul(mant, scale.Base(d-uint8(len(fraction)))), nil
}

// ParseFixed parses text of the form digits[.digits]. Fraction digits beyond
// P's precision are truncated.
func ParseFixed[P Precision](text string) (Fixed[P], error) {
	mant, err := parse(text, decimals[P]())
	if err != nil {
		return Fixed[P]{}, err
	}

	return Fixed[P]{mant: mant}, nil
}

// ParseScaled parses text of the form digits[.digits] into a value with the
// given number of decimal places. Fraction digits beyond decimals are
// truncated.
func ParseScaled(text string, decimals uint8) (Scaled, error) {
	if err := scale.Check(decimals); err != nil {
		return Scaled{}, err
	}

	mant, err := parse(text, decimals)
	if err != nil {
		return Scaled{}, err
	}

	return Scaled{mant: mant, decimals: decimals}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Fixed[P]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fixed[P]) UnmarshalText(text []byte) error {
	v, err := ParseFixed[P](string(text))
	if err != nil {
		return err
	}

	*f = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Scaled) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The number of decimal
// places is the number of fraction digits in text.
func (s *Scaled) UnmarshalText(text []byte) error {
	_, fraction, err := split(string(text))
	if err != nil {
		return err
	}

	if len(fraction) > scale.Max {
		return fmt.Errorf("%w: %d fraction digits in %q", ErrUnsupportedPrecision, len(fraction), text)
	}

	v, err := ParseScaled(string(text), uint8(len(fraction)))
	if err != nil {
		return err
	}

	*s = v

	return nil
}
