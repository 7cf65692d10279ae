// Package scale provides the shared table of decimal scales (powers of ten)
// used by the fixed point types.
package scale

import (
	"fmt"
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("scale")

// ErrUnsupported is returned (or panicked with) when a decimal place count
// larger than Max is requested.
var ErrUnsupported = Error.New("unsupported precision")

// Max is the largest supported number of decimal places.
const Max = 31

// bases is a cache of powers of 10, where bases[x] = 10^x.
var bases [Max + 1]*big.Int

func init() {
	ten := big.NewInt(10)

	bases[0] = big.NewInt(1)
	for i := 1; i <= Max; i++ {
		bases[i] = new(big.Int).Mul(bases[i-1], ten)
	}
}

// Check returns ErrUnsupported if d is larger than Max.
func Check(d uint8) error {
	if d > Max {
		return fmt.Errorf("%w: %d decimal places (max %d)", ErrUnsupported, d, Max)
	}

	return nil
}

// Base returns 10^d.
//
// The returned integer is shared and must not be modified. Base panics if d
// is larger than Max.
func Base(d uint8) *big.Int {
	err := Check(d)
	if err != nil {
		panic(err)
	}

	return bases[d]
}
