package si

import "github.com/roach88/dimkit/internal/unit"

// Type-level unit names for quantity.Of.
type (
	Seconds       struct{}
	Meters        struct{}
	Kilograms     struct{}
	Amperes       struct{}
	Kelvins       struct{}
	Moles         struct{}
	Candelas      struct{}
	Newtons       struct{}
	Coulombs      struct{}
	Dimensionless struct{}
)

// Unit returns the package-level unit each type names, e.g. Meters names
// Meter. These methods make the types quantity.Definition implementations.
func (Seconds) Unit() unit.Unit       { return Second }
func (Meters) Unit() unit.Unit        { return Meter }
func (Kilograms) Unit() unit.Unit     { return Kilogram }
func (Amperes) Unit() unit.Unit       { return Ampere }
func (Kelvins) Unit() unit.Unit       { return Kelvin }
func (Moles) Unit() unit.Unit         { return Mole }
func (Candelas) Unit() unit.Unit      { return Candela }
func (Newtons) Unit() unit.Unit       { return Newton }
func (Coulombs) Unit() unit.Unit      { return Coulomb }
func (Dimensionless) Unit() unit.Unit { return None }
