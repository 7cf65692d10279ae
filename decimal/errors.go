package decimal

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/fixedpoint/scale"
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

var (
	// ErrUnsupportedPrecision is returned when more than 31 decimal places
	// are requested.
	ErrUnsupportedPrecision = scale.ErrUnsupported

	// ErrPrecisionMismatch is returned by binary operations on Scaled
	// values with differing decimal place counts.
	ErrPrecisionMismatch = Error.New("precision mismatch")

	// ErrUnderflow is returned when a result (or an input) would be
	// negative.
	ErrUnderflow = Error.New("magnitude underflow")

	// ErrDivisionByZero is returned when dividing by a zero mantissa.
	ErrDivisionByZero = Error.New("division by zero")

	// ErrRepresentationMismatch is returned when converting a Scaled value
	// to a Fixed type of a different precision.
	ErrRepresentationMismatch = Error.New("representation mismatch")

	// ErrDecode is returned for malformed text, interchange or persistence
	// input.
	ErrDecode = Error.New("decode failure")
)
