package control

import (
	"bytes"
	"errors"
	"io"
	"math"
	"math/big"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("control")

var ErrInvalidOperation = Error.New("invalid operation")

// Decoder reads control blocks.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Depth() int
	Stack() Stack
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
	Enter() (err error)
}

type decoder struct {
	r io.Reader
	s io.Seeker

	consumed uint64

	stack *Stack

	offset   uint64
	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r:     r,
		stack: &Stack{},
	}

	d.s, _ = r.(io.Seeker)

	return d
}

// read reads exactly size bytes. The buffer grows with the bytes actually
// read, so a size larger than the remaining input fails without allocating
// size bytes up front.
func (d *decoder) read(size uint64) (data []byte, err error) {
	if size > math.MaxInt64 {
		return nil, Error.New("unimplemented: read>2^63")
	}

	buf := &bytes.Buffer{}

	n, err := io.CopyN(buf, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, Error.Wrap(err)
	}

	if uint64(n) != size {
		return nil, Error.New("unexpected end of input: size=%d read=%d", size, n)
	}

	return buf.Bytes(), nil
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	if size > math.MaxInt64 {
		return Error.New("unimplemented: seek>2^63")
	}

	err = d.stack.Consume(size)
	if err != nil {
		return err
	}

	if d.s != nil {
		_, err = d.s.Seek(int64(size), io.SeekCurrent)
		if err != nil {
			return Error.Wrap(err)
		}

		d.consumed += size

		return nil
	}

	n, err := io.CopyN(io.Discard, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil && !errors.Is(err, io.EOF) {
		return Error.Wrap(err)
	}

	if uint64(n) != size {
		return Error.New("unexpected end of input: size=%d read=%d", size, n)
	}

	return nil
}

// skip moves the reading position to the end of the current field.
func (d *decoder) skip() (err error) {
	switch d.t {
	case Data, Empty, Null, ContainerEnd:
		// No additional bytes need to be read.
	case Data1, Data2:
		// Small enough to just read directly.
		_, err = d.Data()
		if err != nil {
			return err
		}
	case DataSize, DataSizeSize, ContainerBounded:
		if d.data != nil {
			return nil
		}

		size, err := d.Size()
		if err != nil {
			return err
		}

		err = d.seek(size)
		if err != nil {
			return err
		}
	case ContainerUnbounded:
		// Read fields until the matching ContainerEnd is found. Depth
		// will be one less than our current.
		target := d.Depth() - 1
		d.finished = true

		for d.Next() {
			if d.t == ContainerEnd && d.Depth() == target {
				break
			}
		}

		if d.err != nil {
			return d.err
		}

		if d.t != ContainerEnd {
			return Error.New("unterminated container")
		}
	default:
		return Error.New("unknown field %q: %08b", d.t.Abbr, d.value[0])
	}

	d.finished = true

	return nil
}

// Next advances to the next field. It returns false at the end of the input
// or when an error occurred (see Err).
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if d.t != Unknown && !d.finished {
		d.err = d.skip()
		if d.err != nil {
			return false
		}
	}

	// Leave any bounded containers the field finished.
	d.err = d.stack.Collapse()
	if d.err != nil {
		return false
	}

	// Reset state for next field.
	d.offset = d.consumed
	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = nil
	d.finished = false

	// Read the field control block.
	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			if d.Depth() != 0 {
				d.err = Error.New("unexpected end of input: depth=%d", d.Depth())
			}

			return false
		}

		d.err = Error.Wrap(err)

		return false
	}

	d.consumed += 1

	d.err = d.stack.Consume(1)
	if d.err != nil {
		return false
	}

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	case ContainerUnbounded:
		d.stack.Push(&Frame{
			Type:   t,
			Offset: d.offset,
		})
	case ContainerEnd:
		top := d.stack.Top()
		if top == nil {
			d.err = Error.New("unexpected container end (not in a container)")

			return false
		}

		if top.Type != ContainerUnbounded {
			d.err = Error.New(
				"unexpected container end (container not unbounded): %s",
				top.Type.Abbr,
			)

			return false
		}

		d.err = d.stack.Pop()
		if d.err != nil {
			return false
		}

		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Depth() int {
	return len(*d.stack)
}

func (d *decoder) Stack() Stack {
	return *d.stack
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the field, or for a
// ContainerBounded field the number of bytes in the container. If the field
// has no size it returns 0 and ErrInvalidOperation.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := uint64(d.value[0]&d.t.Mask) + 1

		err = d.stack.Consume(sizeSize)
		if err != nil {
			return 0, err
		}

		sizeBytes, err := d.read(sizeSize)
		if err != nil {
			return 0, err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size.Uint64()
	case ContainerBounded:
		zd := &decoder{
			r:     d.r,
			stack: &Stack{},
		}

		ok := zd.Next()
		if zd.err != nil {
			return 0, zd.err
		}
		if !ok {
			return 0, Error.New("unable to read container bounded size")
		}

		// The size itself must fit in 64 bits.
		sizeSize, err := zd.Size()
		if err != nil {
			return 0, err
		}
		if sizeSize > 8 {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		sizeBytes, err := zd.Data()
		if err != nil {
			return 0, err
		}

		d.consumed += zd.consumed

		err = d.stack.Consume(zd.consumed)
		if err != nil {
			return 0, err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size.Uint64()
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if d.t != Data && d.t != Data1 && d.t != Data2 && d.t != DataSize && d.t != DataSizeSize {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	if d.finished && d.t != Data {
		return nil, Error.New("field already consumed")
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	if size > math.MaxInt32 {
		return nil, Error.New("unimplemented: size=%d", size)
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case DataSize, DataSizeSize:
		err = d.stack.Consume(size)
		if err != nil {
			return nil, err
		}

		d.data, err = d.read(size)
		if err != nil {
			return nil, err
		}
	case Data1, Data2:
		err = d.stack.Consume(size - 1)
		if err != nil {
			return nil, err
		}

		rest, err := d.read(size - 1)
		if err != nil {
			return nil, err
		}

		d.data = append([]byte{d.value[0] & d.t.Mask}, rest...)
	}

	d.finished = true

	return d.data, nil
}

// Enter informs decoder that the ContainerBounded or ContainerUnbounded field
// should be entered. If the current field type is not ContainerBounded or
// ContainerUnbounded, then it returns ErrInvalidOperation.
func (d *decoder) Enter() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	switch d.t {
	case ContainerBounded:
		size, err := d.Size()
		if err != nil {
			return err
		}

		d.stack.Push(&Frame{
			Type:      ContainerBounded,
			Offset:    d.offset,
			Size:      size,
			Remaining: size,
		})
	case ContainerUnbounded:
	default:
		return oops.Trace(ErrInvalidOperation)
	}

	d.finished = true

	return nil
}
