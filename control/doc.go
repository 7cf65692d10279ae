// Package control provides the block framing used to persist fixed point
// values as a compact byte stream.
//
// Control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte is shown.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                             |
//  |---------------|---------------||----------------|---------------------------------------------|
//  | 1 |                           || Data           | 2^7 = 128 values                            |
//  | 0 . 1 |                       || Data Size      | up to 64 bytes                              |
//  | 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 8192 values                       |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 1048576 values                  |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | up to 8 size bytes, then the data           |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 1 . 0 || Unbounded      | container closed by End                     |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 0 || End            | end of the innermost unbounded container    |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | Empty value                                 |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value (for nullable fields)            |
//  |---------------|---------------||----------------|---------------------------------------------|
//
// All sizes are indexed starting at 1 to maximize their effective range.
// Zero length data cannot be written; use the Empty block.
//
// Data Size blocks have two parts:
//
//  1. Number of bytes that contain data
//  2. Data
//
// Data Size Size blocks have 3 parts:
//
//  1. Number of bytes for the data size
//  2. Number of bytes that contain data (big-endian)
//  3. Data
//
// Unbounded containers group the fields of a record (for example a mantissa
// and its decimal place count). A decoder that does not Enter a container
// skips it entirely.
package control
