package integer

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixedpoint/control"
)

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		blk  *Block
		data []byte
	}

	tcs := []TC{
		{
			name: "0",
			blk: &Block{
				Value: []byte{
					0b0000_0000,
				},
			},
			data: []byte{
				0b0000_0000,
			},
		},
		{
			name: "1",
			blk: &Block{
				Value: []byte{
					0b0000_0001,
				},
			},
			data: []byte{
				0b0000_0001,
			},
		},
		{
			name: "255",
			blk: &Block{
				Value: []byte{
					0b1111_1111,
				},
			},
			data: []byte{
				0b1111_1111,
			},
		},
		{
			name: "256",
			blk: &Block{
				Value: []byte{
					0b0000_0000,
					0b0000_0001,
				},
			},
			data: []byte{
				0b0000_0000,
				0b0000_0001,
			},
		},
		{
			name: "675",
			blk: &Block{
				Value: []byte{
					0b1010_0011,
					0b0000_0010,
				},
			},
			data: []byte{
				0b1010_0011,
				0b0000_0010,
			},
		},
		{
			name: "100000000",
			blk: &Block{
				Value: []byte{
					0x00, 0xe1, 0xf5, 0x05,
				},
			},
			data: []byte{
				0x00, 0xe1, 0xf5, 0x05,
			},
		},
		{
			name: "10000000000000000000000000000000",
			blk: &Block{
				Value: []byte{
					0x00, 0x00, 0x00, 0x80, 0x26, 0x4b, 0x91, 0xc0,
					0x22, 0x20, 0xbe, 0x37, 0x7e,
				},
			},
			data: []byte{
				0x00, 0x00, 0x00, 0x80, 0x26, 0x4b, 0x91, 0xc0,
				0x22, 0x20, 0xbe, 0x37, 0x7e,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			// These checks ensure that our test case name matches the value.
			expected, ok := new(big.Int).SetString(tc.name, 10)
			require.True(t, ok)

			t.Run("new", func(t *testing.T) {
				blk := NewBlock(expected)
				require.Equal(t, 0, expected.Cmp(blk.Int()))

				data, err := blk.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, 0, expected.Cmp(FromLittleEndian(data)))
			})

			t.Run("unmarshal", func(t *testing.T) {
				blk := &Block{}
				err := blk.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)
				require.Equal(t, 0, expected.Cmp(blk.Int()))
			})
		})
	}
}

func TestLittleEndian(t *testing.T) {
	t.Run("canonical", func(t *testing.T) {
		// Trailing zero bytes (high order) are dropped on marshal.
		blk := &Block{Value: []byte{0x05, 0x00, 0x00}}

		data, err := blk.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, []byte{0x05}, data)
	})

	t.Run("does not alias", func(t *testing.T) {
		data := []byte{0x01, 0x02}

		blk := &Block{}
		err := blk.UnmarshalBinary(data)
		require.NoError(t, err)

		data[0] = 0xff
		require.Equal(t, []byte{0x01, 0x02}, blk.Value)
	})

	t.Run("large", func(t *testing.T) {
		x, ok := new(big.Int).SetString("1"+strings.Repeat("0", 200), 10)
		require.True(t, ok)

		require.Equal(t, 0, x.Cmp(FromLittleEndian(LittleEndian(x))))
	})

	t.Run("errors", func(t *testing.T) {
		blk := &Block{}
		require.ErrorIs(t, blk.UnmarshalBinary(nil), ErrEmpty)
		require.ErrorIs(t, blk.UnmarshalBinary([]byte{0x05, 0x00, 0x00}), ErrNonCanonical)
		require.ErrorIs(t, blk.UnmarshalBinary([]byte{0x00, 0x00}), ErrNonCanonical)
		require.Nil(t, blk.Value)

		_, err := (Block{}).MarshalBinary()
		require.ErrorIs(t, err, ErrNull)

		require.Panics(t, func() {
			NewBlock(big.NewInt(-1))
		})
	})
}

func TestEncodeDecode(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		blk    *Block
		data   []byte
	}

	tcs := []TC{
		{
			name: "0",
			blk: &Block{
				Value: []byte{
					0b0000_0000,
				},
			},
			data: []byte{
				0b1000_0000,
			},
		},
		{
			name: "127",
			blk: &Block{
				Value: []byte{
					0b0111_1111,
				},
			},
			data: []byte{
				0b1111_1111,
			},
		},
		{
			name: "150",
			blk: &Block{
				Value: []byte{
					0b1001_0110,
				},
			},
			data: []byte{
				0b0100_0000,
				0b1001_0110,
			},
		},
		{
			name: "7936",
			blk: &Block{
				Value: []byte{
					0b0000_0000,
					0b0001_1111,
				},
			},
			data: []byte{
				0b0010_0000,
				0b0001_1111,
			},
		},
		{
			name: "100000000",
			schema: Schema{
				MaxBytes: 4,
			},
			blk: &Block{
				Value: []byte{
					0x00, 0xe1, 0xf5, 0x05,
				},
			},
			data: []byte{
				0b0100_0011,
				0x00, 0xe1, 0xf5, 0x05,
			},
		},
		{
			name: "null",
			schema: Schema{
				Nullable: true,
			},
			blk: &Block{},
			data: []byte{
				0b0000_0000,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("encode", func(t *testing.T) {
				buf := &bytes.Buffer{}

				e := NewEncoder(tc.schema, control.NewEncoder(buf))
				err := e.Encode(tc.blk)
				require.NoError(t, err)
				require.Equal(t, tc.data, buf.Bytes())
			})

			t.Run("decode", func(t *testing.T) {
				cd := control.NewDecoder(bytes.NewBuffer(tc.data))
				require.True(t, cd.Next())

				blk := &Block{}
				d := NewDecoder(tc.schema, cd)
				err := d.Decode(blk)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)

				require.False(t, cd.Next())
				require.NoError(t, cd.Err())
			})
		})
	}
}

func TestEncodeDecodeErrors(t *testing.T) {
	t.Run("null not allowed", func(t *testing.T) {
		buf := &bytes.Buffer{}

		e := NewEncoder(Schema{}, control.NewEncoder(buf))
		err := e.Encode(nil)
		require.Error(t, err)
		require.True(t, Error.Has(err))
		require.Equal(t, 0, buf.Len())

		cd := control.NewDecoder(bytes.NewBuffer([]byte{0b0000_0000}))
		require.True(t, cd.Next())

		err = NewDecoder(Schema{}, cd).Decode(&Block{})
		require.Error(t, err)
		require.True(t, Error.Has(err))
	})

	t.Run("too large", func(t *testing.T) {
		schema := Schema{MaxBytes: 2}
		blk := NewBlock(big.NewInt(1 << 24))

		buf := &bytes.Buffer{}
		err := NewEncoder(schema, control.NewEncoder(buf)).Encode(blk)
		require.Error(t, err)
		require.True(t, Error.Has(err))

		buf = &bytes.Buffer{}
		err = NewEncoder(Schema{}, control.NewEncoder(buf)).Encode(blk)
		require.NoError(t, err)

		cd := control.NewDecoder(buf)
		require.True(t, cd.Next())

		err = NewDecoder(schema, cd).Decode(&Block{})
		require.Error(t, err)
		require.True(t, Error.Has(err))
	})

	t.Run("declared size too large", func(t *testing.T) {
		// A size-size block declaring 2^31-2 bytes with nothing after it.
		cd := control.NewDecoder(bytes.NewBuffer([]byte{0b0000_1011, 0x7f, 0xff, 0xff, 0xfd}))
		require.True(t, cd.Next())

		err := NewDecoder(Schema{MaxBytes: 16}, cd).Decode(&Block{})
		require.ErrorIs(t, err, ErrTooLarge)
		require.Equal(t, uint64(5), cd.Consumed())
	})

	t.Run("non-canonical", func(t *testing.T) {
		cd := control.NewDecoder(bytes.NewBuffer([]byte{0b0010_0101, 0x00}))
		require.True(t, cd.Next())

		err := NewDecoder(Schema{}, cd).Decode(&Block{})
		require.ErrorIs(t, err, ErrNonCanonical)
	})

	t.Run("unexpected field", func(t *testing.T) {
		cd := control.NewDecoder(bytes.NewBuffer([]byte{0b0000_0001}))
		require.True(t, cd.Next())

		err := NewDecoder(Schema{}, cd).Decode(&Block{})
		require.Error(t, err)
		require.True(t, Error.Has(err))
	})
}
