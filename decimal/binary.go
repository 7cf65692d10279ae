package decimal

import (
	"fmt"

	"github.com/calebcase/fixedpoint/integer"
)

// MarshalBinary implements encoding.BinaryMarshaler. The output is the
// mantissa in little-endian byte order; zero is a single zero byte.
func (f Fixed[P]) MarshalBinary() ([]byte, error) {
	return integer.NewBlock(nat(f.mant)).MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *Fixed[P]) UnmarshalBinary(data []byte) error {
	decimals[P]()

	var b integer.Block

	err := b.UnmarshalBinary(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	*f = Fixed[P]{mant: b.Int()}

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. A Scaled value needs
// its precision alongside the mantissa, so the interchange form is used.
func (s Scaled) MarshalBinary() ([]byte, error) {
	return s.MarshalJSON()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Scaled) UnmarshalBinary(data []byte) error {
	return s.unmarshalObject(data)
}
