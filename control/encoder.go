package control

import (
	"io"
	"math/big"
)

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Bound(body []byte) (err error)
	Unbound(fn func(Encoder) error) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	e := &encoder{
		w: w,
	}

	return e
}

// Data writes data using the smallest block that can hold it.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		_, err = e.w.Write([]byte{
			Data.Prefix | data[0],
		})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		_, err = e.w.Write([]byte{
			Data1.Prefix | data[0],
			data[1],
		})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		_, err = e.w.Write([]byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		})
	case size <= 64:
		_, err = e.w.Write(append(
			[]byte{DataSize.Prefix | byte(size-1)},
			data...,
		))
	default:
		s := new(big.Int).SetUint64(uint64(size - 1))
		sb := s.Bytes()
		if len(sb) == 0 {
			sb = []byte{0b_0000_0000}
		}

		if len(sb)-1 > int(DataSizeSize.Mask) {
			return Error.New("unimplemented: size>2^64")
		}

		_, err = e.w.Write([]byte{DataSizeSize.Prefix | byte(len(sb)-1)})
		if err != nil {
			return Error.Wrap(err)
		}

		_, err = e.w.Write(sb)
		if err != nil {
			return Error.Wrap(err)
		}

		_, err = e.w.Write(data)
	}

	return Error.Wrap(err)
}

// Bound writes a container holding body, which must be a sequence of encoded
// fields. The container's size is written before body so that readers can
// seek past it.
func (e *encoder) Bound(body []byte) (err error) {
	size := uint64(len(body))

	if size == 0 {
		return Error.New("invalid: size=0")
	}

	_, err = e.w.Write([]byte{
		ContainerBounded.Prefix,
	})
	if err != nil {
		return Error.Wrap(err)
	}

	s := new(big.Int).SetUint64(size)
	s.Sub(s, big.NewInt(1))

	sizeBytes := s.Bytes()
	if len(sizeBytes) == 0 {
		sizeBytes = []byte{0b_0000_0000}
	}

	err = e.Data(sizeBytes)
	if err != nil {
		return err
	}

	_, err = e.w.Write(body)

	return Error.Wrap(err)
}

// Unbound writes a container whose fields are written by fn. The container is
// closed with a ContainerEnd block once fn returns.
func (e *encoder) Unbound(fn func(Encoder) error) (err error) {
	_, err = e.w.Write([]byte{
		ContainerUnbounded.Prefix,
	})
	if err != nil {
		return Error.Wrap(err)
	}

	err = fn(e)
	if err != nil {
		return err
	}

	_, err = e.w.Write([]byte{
		ContainerEnd.Prefix,
	})

	return Error.Wrap(err)
}

func (e *encoder) Empty() (err error) {
	_, err = e.w.Write([]byte{
		Empty.Prefix,
	})

	return Error.Wrap(err)
}

func (e *encoder) Null() (err error) {
	_, err = e.w.Write([]byte{
		Null.Prefix,
	})

	return Error.Wrap(err)
}
