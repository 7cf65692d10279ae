package decimal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
)

// The interchange encoding is JSON. A Fixed value is its mantissa as a bare
// number (the precision is known from the type). A Scaled value is an object
// carrying both fields:
//
//	{"val":150,"decimals":2}

// MarshalJSON implements json.Marshaler.
func (f Fixed[P]) MarshalJSON() ([]byte, error) {
	return []byte(nat(f.mant).String()), nil
}

// UnmarshalJSON implements json.Unmarshaler. JSON null leaves f unchanged.
func (f *Fixed[P]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	decimals[P]()

	mant, err := natural(data)
	if err != nil {
		return err
	}

	*f = Fixed[P]{mant: mant}

	return nil
}

type scaledJSON struct {
	Val      *big.Int `json:"val"`
	Decimals uint8    `json:"decimals"`
}

// MarshalJSON implements json.Marshaler.
func (s Scaled) MarshalJSON() ([]byte, error) {
	return json.Marshal(scaledJSON{
		Val:      nat(s.mant),
		Decimals: s.decimals,
	})
}

// UnmarshalJSON implements json.Unmarshaler. JSON null leaves s unchanged.
func (s *Scaled) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	return s.unmarshalObject(data)
}

func (s *Scaled) unmarshalObject(data []byte) error {
	var obj struct {
		Val      json.RawMessage `json:"val"`
		Decimals *int            `json:"decimals"`
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	err := dec.Decode(&obj)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if dec.More() {
		return fmt.Errorf("%w: trailing data after object", ErrDecode)
	}

	if obj.Val == nil {
		return fmt.Errorf("%w: missing \"val\"", ErrDecode)
	}

	if obj.Decimals == nil {
		return fmt.Errorf("%w: missing \"decimals\"", ErrDecode)
	}

	mant, err := natural(obj.Val)
	if err != nil {
		return err
	}

	if *obj.Decimals < 0 || *obj.Decimals > 255 {
		return fmt.Errorf("%w: %w: %d decimal places", ErrDecode, ErrUnsupportedPrecision, *obj.Decimals)
	}

	v, err := NewScaled(mant, uint8(*obj.Decimals))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	*s = v

	return nil
}

// natural parses a JSON number that must be a non-negative integer.
func natural(data []byte) (*big.Int, error) {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '-' {
		return nil, fmt.Errorf("%w: %w: %s", ErrDecode, ErrUnderflow, data)
	}

	if !digits(string(data)) {
		return nil, fmt.Errorf("%w: not a natural number: %s", ErrDecode, data)
	}

	if len(data) > 1 && data[0] == '0' {
		return nil, fmt.Errorf("%w: leading zero: %s", ErrDecode, data)
	}

	mant, _ := new(big.Int).SetString(string(data), 10)

	return mant, nil
}
