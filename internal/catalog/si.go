package catalog

import "github.com/roach88/dimkit/internal/si"

// SIDefinition is the SI system: seven base axes and units plus newton and
// coulomb.
var SIDefinition = Definition{
	Name: "si",
	Axes: []string{
		"length", "time", "mass", "current",
		"temperature", "amount_of_substance", "luminous_intensity",
	},
	Units: []BaseUnit{
		{Name: "meter", Axis: "length"},
		{Name: "second", Axis: "time"},
		{Name: "kilogram", Axis: "mass"},
		{Name: "ampere", Axis: "current"},
		{Name: "kelvin", Axis: "temperature"},
		{Name: "mole", Axis: "amount_of_substance"},
		{Name: "candela", Axis: "luminous_intensity"},
	},
	Derived: []DerivedUnit{
		{Name: "newton", Of: map[string]int{"kilogram": 1, "meter": 1, "second": -2}},
		{Name: "coulomb", Of: map[string]int{"ampere": 1, "second": 1}},
	},
}

// SI builds SIDefinition bound to the tags of package si, so its units are
// equal to si.Meter, si.Newton and the rest.
func SI(opts ...Option) *Catalog {
	opts = append([]Option{WithAxes(si.BaseAxes()), WithUnitTags(si.BaseUnitTags())}, opts...)
	c, err := Build(SIDefinition, opts...)
	if err != nil {
		panic(err)
	}
	return c
}
