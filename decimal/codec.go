package decimal

import (
	"bytes"
	"fmt"
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/fixedpoint/control"
	"github.com/calebcase/fixedpoint/integer"
	"github.com/calebcase/fixedpoint/scale"
)

// Schema represents a configured number format for a stream of values.
//
// With a static schema each value is written as a single integer block and
// its precision is Decimals. With a dynamic schema each value is a record (a
// bounded container) holding the mantissa block followed by a one byte decimal
// place count.
type Schema struct {
	Decimals uint8
	Dynamic  bool

	Nullable bool

	// MaxBytes bounds the mantissa's byte length. Zero means unbounded.
	MaxBytes int
}

func (s Schema) integerSchema() integer.Schema {
	return integer.Schema{
		MaxBytes: s.MaxBytes,
		Nullable: s.Nullable,
	}
}

func (s Schema) check() error {
	if s.Dynamic {
		return nil
	}

	return scale.Check(s.Decimals)
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

// Encode writes a value. A nil value is written as null when the schema is
// nullable.
func (e *Encoder) Encode(s *Scaled) (err error) {
	defer Error.WrapP(&err)

	err = e.schema.check()
	if err != nil {
		return err
	}

	if s == nil {
		return integer.NewEncoder(e.schema.integerSchema(), e.ce).Encode(nil)
	}

	mant := integer.NewBlock(nat(s.mant))

	if !e.schema.Dynamic {
		if s.decimals != e.schema.Decimals {
			return oops.Trace(fmt.Errorf("%w: have %d decimal places, schema has %d", ErrPrecisionMismatch, s.decimals, e.schema.Decimals))
		}

		return integer.NewEncoder(e.schema.integerSchema(), e.ce).Encode(mant)
	}

	body := &bytes.Buffer{}
	ce := control.NewEncoder(body)

	err = integer.NewEncoder(e.schema.integerSchema(), ce).Encode(mant)
	if err != nil {
		return err
	}

	err = ce.Data([]byte{s.decimals})
	if err != nil {
		return err
	}

	return e.ce.Bound(body.Bytes())
}

// EncodeFixed writes f to e. A static schema must have f's precision.
func EncodeFixed[P Precision](e *Encoder, f Fixed[P]) error {
	s := f.ToScaled()

	return e.Encode(&s)
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

// Decode reads the next value. A null value is returned as nil. At the end of
// the stream Decode returns io.EOF. All other failures match ErrDecode.
func (d *Decoder) Decode() (s *Scaled, err error) {
	err = d.schema.check()
	if err != nil {
		return nil, err
	}

	if !d.cd.Next() {
		err = d.cd.Err()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		return nil, io.EOF
	}

	s, err = d.decode()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return s, nil
}

func (d *Decoder) decode() (*Scaled, error) {
	ints := integer.NewDecoder(d.schema.integerSchema(), d.cd)
	mant := &integer.Block{}

	switch t := d.cd.Type(); {
	case t == control.Null:
		err := ints.Decode(mant)
		if err != nil {
			return nil, err
		}

		return nil, nil
	case !d.schema.Dynamic:
		err := ints.Decode(mant)
		if err != nil {
			return nil, err
		}

		return &Scaled{mant: mant.Int(), decimals: d.schema.Decimals}, nil
	case t != control.ContainerBounded:
		return nil, Error.New("expected record, got %q", t.Abbr)
	}

	err := d.cd.Enter()
	if err != nil {
		return nil, err
	}

	if !d.cd.Next() {
		return nil, d.missing("mantissa")
	}

	if d.cd.Type() == control.Null {
		return nil, oops.Trace(integer.ErrNull)
	}

	err = ints.Decode(mant)
	if err != nil {
		return nil, err
	}

	if d.remaining() == 0 {
		return nil, Error.New("truncated record: missing decimals")
	}

	if !d.cd.Next() {
		return nil, d.missing("decimals")
	}

	if d.cd.Type() != control.Data {
		return nil, Error.New("expected decimals, got %q", d.cd.Type().Abbr)
	}

	data, err := d.cd.Data()
	if err != nil {
		return nil, err
	}

	places := data[0]

	if n := d.remaining(); n != 0 {
		return nil, Error.New("unexpected %d bytes after decimals", n)
	}

	v, err := NewScaled(mant.Int(), places)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// remaining returns the unread bytes of the record being decoded.
func (d *Decoder) remaining() uint64 {
	stack := d.cd.Stack()

	top := stack.Top()
	if top == nil {
		return 0
	}

	return top.Remaining
}

func (d *Decoder) missing(field string) error {
	if err := d.cd.Err(); err != nil {
		return err
	}

	return Error.New("truncated record: missing %s", field)
}

// DecodeFixed reads the next value from d as a Fixed[P]. The decoded value
// must have P's precision.
func DecodeFixed[P Precision](d *Decoder) (*Fixed[P], error) {
	s, err := d.Decode()
	if err != nil || s == nil {
		return nil, err
	}

	f, err := ToFixed[P](*s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &f, nil
}
