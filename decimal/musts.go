package decimal

import "math/big"

// MustNewFixed is like NewFixed but panics on error.
func MustNewFixed[P Precision](mant *big.Int) Fixed[P] {
	return must(NewFixed[P](mant))
}

// MustParseFixed is like ParseFixed but panics on error.
func MustParseFixed[P Precision](text string) Fixed[P] {
	return must(ParseFixed[P](text))
}

// MustSub is like Sub but panics on error.
func (f Fixed[P]) MustSub(y Fixed[P]) Fixed[P] {
	return must(f.Sub(y))
}

// MustQuo is like Quo but panics on error.
func (f Fixed[P]) MustQuo(y Fixed[P]) Fixed[P] {
	return must(f.Quo(y))
}

// MustNewScaled is like NewScaled but panics on error.
func MustNewScaled(mant *big.Int, decimals uint8) Scaled {
	return must(NewScaled(mant, decimals))
}

// MustParseScaled is like ParseScaled but panics on error.
func MustParseScaled(text string, decimals uint8) Scaled {
	return must(ParseScaled(text, decimals))
}

// MustAdd is like Add but panics on error.
func (s Scaled) MustAdd(y Scaled) Scaled {
	return must(s.Add(y))
}

// MustSub is like Sub but panics on error.
func (s Scaled) MustSub(y Scaled) Scaled {
	return must(s.Sub(y))
}

// MustMul is like Mul but panics on error.
func (s Scaled) MustMul(y Scaled) Scaled {
	return must(s.Mul(y))
}

// MustQuo is like Quo but panics on error.
func (s Scaled) MustQuo(y Scaled) Scaled {
	return must(s.Quo(y))
}

// MustQuoInt is like QuoInt but panics on error.
func (s Scaled) MustQuoInt(n uint64) Scaled {
	return must(s.QuoInt(n))
}

// MustRescale is like Rescale but panics on error.
func (s Scaled) MustRescale(decimals uint8) Scaled {
	return must(s.Rescale(decimals))
}

// MustToFixed is like ToFixed but panics on error.
func MustToFixed[P Precision](s Scaled) Fixed[P] {
	return must(ToFixed[P](s))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
