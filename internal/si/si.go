// Package si declares the seven SI base axes and base units and a few
// derived units built from them.
package si

import (
	"github.com/roach88/dimkit/internal/tag"
	"github.com/roach88/dimkit/internal/unit"
)

// Base axes.
var (
	Length            = tag.Dimension("length")
	Time              = tag.Dimension("time")
	Mass              = tag.Dimension("mass")
	Current           = tag.Dimension("current")
	Temperature       = tag.Dimension("temperature")
	AmountOfSubstance = tag.Dimension("amount_of_substance")
	LuminousIntensity = tag.Dimension("luminous_intensity")
)

// Base unit tags.
var (
	SecondTag   = tag.Unit("second")
	MeterTag    = tag.Unit("meter")
	KilogramTag = tag.Unit("kilogram")
	AmpereTag   = tag.Unit("ampere")
	KelvinTag   = tag.Unit("kelvin")
	MoleTag     = tag.Unit("mole")
	CandelaTag  = tag.Unit("candela")
)

// Base units.
var (
	Second   = unit.FromTags(Time, SecondTag)
	Meter    = unit.FromTags(Length, MeterTag)
	Kilogram = unit.FromTags(Mass, KilogramTag)
	Ampere   = unit.FromTags(Current, AmpereTag)
	Kelvin   = unit.FromTags(Temperature, KelvinTag)
	Mole     = unit.FromTags(AmountOfSubstance, MoleTag)
	Candela  = unit.FromTags(LuminousIntensity, CandelaTag)
)

// Derived units.
var (
	Newton  = Force(Kilogram, unit.Must(Meter.Div(Square(Second))))
	Coulomb = Charge(Ampere, Second)
	None    = unit.Must(Second.Div(Second))
)

// Square returns u*u.
func Square(u unit.Unit) unit.Unit {
	return unit.Must(u.Mul(u))
}

// Force returns the unit of mass*acceleration.
func Force(mass, acceleration unit.Unit) unit.Unit {
	return unit.Must(mass.Mul(acceleration))
}

// Charge returns the unit of current*time.
func Charge(current, time unit.Unit) unit.Unit {
	return unit.Must(current.Mul(time))
}

// BaseAxes returns the seven base axes keyed by name.
func BaseAxes() map[string]tag.Tag {
	return map[string]tag.Tag{
		Length.Name():            Length,
		Time.Name():              Time,
		Mass.Name():              Mass,
		Current.Name():           Current,
		Temperature.Name():       Temperature,
		AmountOfSubstance.Name(): AmountOfSubstance,
		LuminousIntensity.Name(): LuminousIntensity,
	}
}

// BaseUnitTags returns the seven base unit tags keyed by name.
func BaseUnitTags() map[string]tag.Tag {
	return map[string]tag.Tag{
		SecondTag.Name():   SecondTag,
		MeterTag.Name():    MeterTag,
		KilogramTag.Name(): KilogramTag,
		AmpereTag.Name():   AmpereTag,
		KelvinTag.Name():   KelvinTag,
		MoleTag.Name():     MoleTag,
		CandelaTag.Name():  CandelaTag,
	}
}
