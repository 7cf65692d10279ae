// Package integer encodes non-negative integers (decimal mantissas) as
// little-endian byte blocks.
package integer

import (
	"fmt"
	"math/big"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixedpoint/control"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

var (
	ErrNegative = Error.New("negative value")
	ErrEmpty    = Error.New("empty value")
	ErrTooLarge = Error.New("value too large")
	ErrNull     = Error.New("null value")

	ErrNonCanonical = Error.New("non-canonical value")
)

// Block is a non-negative integer number stored in little-endian byte order.
// A nil Value is the null value.
type Block struct {
	Value []byte
}

// NewBlock returns the block for i. NewBlock panics if i is negative.
func NewBlock(i *big.Int) *Block {
	if i.Sign() < 0 {
		panic(oops.Trace(ErrNegative))
	}

	return &Block{
		Value: LittleEndian(i),
	}
}

// Int returns the integer held by the block.
func (b Block) Int() *big.Int {
	return FromLittleEndian(b.Value)
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The output is the shortest little-endian form of the value. Zero is a
// single zero byte.
func (b Block) MarshalBinary() (data []byte, err error) {
	if b.Value == nil {
		return nil, oops.Trace(ErrNull)
	}

	return LittleEndian(b.Int()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Only the form produced by MarshalBinary is accepted: a high order zero byte
// is an error unless it is the only byte.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return oops.Trace(ErrEmpty)
	}

	if len(data) > 1 && data[len(data)-1] == 0 {
		return oops.Trace(ErrNonCanonical)
	}

	b.Value = append([]byte(nil), data...)

	return nil
}

// LittleEndian returns the absolute value of i as little-endian bytes.
//
// Note: big.Int encodes zero as an empty byte array, but we desire zero to be
// an actual zero byte.
func LittleEndian(i *big.Int) []byte {
	data := i.Bytes()
	if len(data) == 0 {
		return []byte{0}
	}

	for l, r := 0, len(data)-1; l < r; l, r = l+1, r-1 {
		data[l], data[r] = data[r], data[l]
	}

	return data
}

// FromLittleEndian interprets data as a little-endian unsigned integer.
func FromLittleEndian(data []byte) *big.Int {
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}

	return new(big.Int).SetBytes(be)
}

// Schema for an integer.
type Schema struct {
	// MaxBytes is the largest number of bytes a value may occupy. Zero
	// means unbounded.
	MaxBytes int

	Nullable bool
}

func (s Schema) check(size uint64) error {
	if s.MaxBytes > 0 && size > uint64(s.MaxBytes) {
		return fmt.Errorf("%w: %d bytes exceeds maximum of %d", ErrTooLarge, size, s.MaxBytes)
	}

	return nil
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the current field of the control decoder into b. The caller is
// expected to have advanced the control decoder (Next) onto the field.
func (d *Decoder) Decode(b *Block) (err error) {
	defer Error.WrapP(&err)

	switch d.cd.Type() {
	case control.Null:
		if !d.schema.Nullable {
			return oops.Trace(ErrNull)
		}

		b.Value = nil

		return nil
	case control.Data, control.Data1, control.Data2, control.DataSize, control.DataSizeSize:
	default:
		return Error.New("unexpected field %q", d.cd.Type().Abbr)
	}

	// The declared size is checked before any of the data is read.
	size, err := d.cd.Size()
	if err != nil {
		return err
	}

	err = d.schema.check(size)
	if err != nil {
		return err
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	return b.UnmarshalBinary(data)
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes a block to the control encoder.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b == nil || b.Value == nil {
		if !e.schema.Nullable {
			return oops.Trace(ErrNull)
		}

		return e.ce.Null()
	}

	data, err := b.MarshalBinary()
	if err != nil {
		return err
	}

	err = e.schema.check(uint64(len(data)))
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}
