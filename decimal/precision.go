package decimal

import "github.com/calebcase/fixedpoint/scale"

// Precision fixes the number of decimal places of a Fixed type at compile
// time. Implementations are empty value types; Decimals must not depend on
// the receiver and must be at most 31.
type Precision interface {
	Decimals() uint8
}

// Precisions with 0 through 31 decimal places.
type (
	E0 struct{}
	E1 struct{}
	E2 struct{}
	E3 struct{}
	E4 struct{}
	E5 struct{}
	E6 struct{}
	E7 struct{}
	E8 struct{}
	E9 struct{}
	E10 struct{}
	E11 struct{}
	E12 struct{}
	E13 struct{}
	E14 struct{}
	E15 struct{}
	E16 struct{}
	E17 struct{}
	E18 struct{}
	E19 struct{}
	E20 struct{}
	E21 struct{}
	E22 struct{}
	E23 struct{}
	E24 struct{}
	E25 struct{}
	E26 struct{}
	E27 struct{}
	E28 struct{}
	E29 struct{}
	E30 struct{}
	E31 struct{}
)

func (E0) Decimals() uint8 { return 0 }
func (E1) Decimals() uint8 { return 1 }
func (E2) Decimals() uint8 { return 2 }
func (E3) Decimals() uint8 { return 3 }
func (E4) Decimals() uint8 { return 4 }
func (E5) Decimals() uint8 { return 5 }
func (E6) Decimals() uint8 { return 6 }
func (E7) Decimals() uint8 { return 7 }
func (E8) Decimals() uint8 { return 8 }
func (E9) Decimals() uint8 { return 9 }
func (E10) Decimals() uint8 { return 10 }
func (E11) Decimals() uint8 { return 11 }
func (E12) Decimals() uint8 { return 12 }
func (E13) Decimals() uint8 { return 13 }
func (E14) Decimals() uint8 { return 14 }
func (E15) Decimals() uint8 { return 15 }
func (E16) Decimals() uint8 { return 16 }
func (E17) Decimals() uint8 { return 17 }
func (E18) Decimals() uint8 { return 18 }
func (E19) Decimals() uint8 { return 19 }
func (E20) Decimals() uint8 { return 20 }
func (E21) Decimals() uint8 { return 21 }
func (E22) Decimals() uint8 { return 22 }
func (E23) Decimals() uint8 { return 23 }
func (E24) Decimals() uint8 { return 24 }
func (E25) Decimals() uint8 { return 25 }
func (E26) Decimals() uint8 { return 26 }
func (E27) Decimals() uint8 { return 27 }
func (E28) Decimals() uint8 { return 28 }
func (E29) Decimals() uint8 { return 29 }
func (E30) Decimals() uint8 { return 30 }
func (E31) Decimals() uint8 { return 31 }

// Common instantiations.
type (
	E2s  = Fixed[E2]
	E6s  = Fixed[E6]
	E8s  = Fixed[E8]
	E12s = Fixed[E12]
	E18s = Fixed[E18]
)

// decimals returns the decimal place count of P. It panics if P reports more
// than scale.Max places.
func decimals[P Precision]() uint8 {
	var p P

	d := p.Decimals()
	if err := scale.Check(d); err != nil {
		panic(err)
	}

	return d
}
