// Package catalog builds named unit systems from declarative definitions.
//
// A definition lists base axes, base units (one axis each) and derived units
// (products of integer powers of earlier units). Definitions are read from
// YAML or CUE; every derived unit is built through the unit algebra, so a
// definition that mixes two units on one axis fails exactly as the
// equivalent Go expression would.
//
// Example YAML:
//
//	name: mechanics
//	axes: [length, mass, time]
//	units:
//	  - {name: meter, axis: length}
//	  - {name: kilogram, axis: mass}
//	  - {name: second, axis: time}
//	derived:
//	  - name: newton
//	    of: {kilogram: 1, meter: 1, second: -2}
//
// CUE files declare the same structure under a top-level `system` field and
// are checked against a closed schema before decoding.
package catalog
