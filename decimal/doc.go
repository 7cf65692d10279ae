// Package decimal implements exact fixed point decimal arithmetic on
// non-negative numbers of unbounded magnitude.
//
// A number is an integer mantissa and a count of decimal places between 0
// and 31: the value is mantissa / 10^decimals. Two representations are
// provided.
//
// Fixed[P] carries its precision in the type. Fixed[E2] and Fixed[E8] are
// different types and cannot be mixed without Convert.
//
// Scaled carries its precision at run time. Operations on Scaled values with
// different precisions fail with ErrPrecisionMismatch; they are never
// silently aligned.
//
// Multiplication and division truncate toward zero:
//
//	a * b = floor(a.mantissa * b.mantissa / 10^d)
//	a / b = floor(a.mantissa * 10^d / b.mantissa)
//
// Subtraction that would produce a negative number fails with ErrUnderflow.
//
// Values are encoded as decimal text (MarshalText), JSON (MarshalJSON),
// compact binary (MarshalBinary) and as a stream of control blocks (Encoder
// and Decoder).
package decimal
