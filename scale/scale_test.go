package scale_test

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixedpoint/scale"
)

func TestBase(t *testing.T) {
	for d := uint8(0); d <= scale.Max; d++ {
		t.Run(fmt.Sprintf("%02d", d), func(t *testing.T) {
			expected, ok := new(big.Int).SetString("1"+strings.Repeat("0", int(d)), 10)
			require.True(t, ok)

			require.Equal(t, 0, expected.Cmp(scale.Base(d)))
			require.NoError(t, scale.Check(d))
		})
	}
}

func TestBaseUnsupported(t *testing.T) {
	for _, d := range []uint8{32, 33, 255} {
		t.Run(fmt.Sprintf("%d", d), func(t *testing.T) {
			err := scale.Check(d)
			require.ErrorIs(t, err, scale.ErrUnsupported)

			require.Panics(t, func() {
				scale.Base(d)
			})
		})
	}
}

func TestBaseShared(t *testing.T) {
	// Repeated lookups hand out the same table entry.
	require.Same(t, scale.Base(8), scale.Base(8))
}
