// Package unit pairs a Dimension with the UnitMap that measures it.
//
// Every Unit satisfies keys(UnitMap) ⊆ keys(Dimension). Make enforces this by
// dropping unit assignments for axes the dimension no longer has, which is
// what happens when length/length cancels the length axis.
package unit

import (
	"fmt"
	"strings"

	"github.com/roach88/dimkit/internal/dimension"
	"github.com/roach88/dimkit/internal/tag"
	"github.com/roach88/dimkit/internal/unitmap"
)

// Unit is an immutable (Dimension, UnitMap) pair.
type Unit struct {
	dim   dimension.Dimension
	units unitmap.UnitMap
}

// None is the dimensionless unit.
var None = Make(dimension.None, unitmap.None)

// Make builds a Unit, dropping unit entries for axes absent from d.
func Make(d dimension.Dimension, u unitmap.UnitMap) Unit {
	return Unit{dim: d, units: clean(d, u)}
}

func clean(d dimension.Dimension, u unitmap.UnitMap) unitmap.UnitMap {
	return u.Restrict(d.Has)
}

// FromTags builds the unit "axis^1 measured in unit". Base units such as
// meter and second are built this way; derived units are products of them.
// It panics if axis is not a dimension tag or unit is not a unit tag.
func FromTags(axis, unit tag.Tag) Unit {
	if axis.Kind() != tag.KindDimension {
		panic(fmt.Sprintf("unit.FromTags: %s is not a dimension tag", axis))
	}
	if unit.Kind() != tag.KindUnit {
		panic(fmt.Sprintf("unit.FromTags: %s is not a unit tag", unit))
	}
	return Make(dimension.Of(axis), unitmap.Of(axis, unit))
}

// Dimension returns the dimension of x.
func (x Unit) Dimension() dimension.Dimension { return x.dim }

// UnitMap returns the axis-to-unit assignments of x.
func (x Unit) UnitMap() unitmap.UnitMap { return x.units }

// IsNone reports whether x is dimensionless.
func (x Unit) IsNone() bool { return x.dim.IsNone() }

// Equal reports whether x and y have equal dimensions and unit maps.
func (x Unit) Equal(y Unit) bool {
	return x.dim.Equal(y.dim) && x.units.Equal(y.units)
}

// op pairs a dimension operation with the matching unit map operation.
type op struct {
	dim   func(a, b dimension.Dimension) (dimension.Dimension, error)
	units func(a, b unitmap.UnitMap) (unitmap.UnitMap, error)
}

func total(f func(a, b dimension.Dimension) dimension.Dimension) func(a, b dimension.Dimension) (dimension.Dimension, error) {
	return func(a, b dimension.Dimension) (dimension.Dimension, error) {
		return f(a, b), nil
	}
}

var (
	opAdd = op{dim: dimension.Dimension.Add, units: unitmap.UnitMap.Add}
	opSub = op{dim: dimension.Dimension.Sub, units: unitmap.UnitMap.Sub}
	opMul = op{dim: total(dimension.Dimension.Mul), units: unitmap.UnitMap.Mul}
	opDiv = op{dim: total(dimension.Dimension.Div), units: unitmap.UnitMap.Div}
)

// apply runs the dimension check first, then the unit map check, and
// re-cleans the result.
func (o op) apply(x, y Unit) (Unit, error) {
	d, err := o.dim(x.dim, y.dim)
	if err != nil {
		return None, err
	}
	u, err := o.units(x.units, y.units)
	if err != nil {
		return None, err
	}
	return Make(d, u), nil
}

// Add returns the unit of x+y. The dimensions must be equal and shared axes
// must use the same unit.
func (x Unit) Add(y Unit) (Unit, error) { return opAdd.apply(x, y) }

// Sub returns the unit of x-y.
func (x Unit) Sub(y Unit) (Unit, error) { return opSub.apply(x, y) }

// Mul returns the unit of x*y.
func (x Unit) Mul(y Unit) (Unit, error) { return opMul.apply(x, y) }

// Div returns the unit of x/y.
func (x Unit) Div(y Unit) (Unit, error) { return opDiv.apply(x, y) }

// Pow returns x raised to an integer power. Every exponent of the dimension
// is multiplied by n and the unit map is kept. Pow(0) is None. It fails
// with ExponentOverflow when an exponent does not fit in an int.
func (x Unit) Pow(n int) (Unit, error) {
	d, err := x.dim.Pow(n)
	if err != nil {
		return None, err
	}
	return Make(d, x.units), nil
}

// Must returns u and panics if err is non-nil.
// Use only for package-level unit declarations known to be compatible.
func Must(u Unit, err error) Unit {
	if err != nil {
		panic(err)
	}
	return u
}

// String renders x as a product of unit factors, e.g. "meter*kilogram*second^-2".
// Factors are ordered by axis. An axis with no assigned unit renders as
// "[axis]". The dimensionless unit renders as "1".
func (x Unit) String() string {
	if x.IsNone() {
		return "1"
	}
	axes := x.dim.Axes()
	parts := make([]string, 0, len(axes))
	for _, axis := range axes {
		name := "[" + axis.String() + "]"
		if u, ok := x.units.Unit(axis); ok {
			name = u.String()
		}
		parts = append(parts, dimension.Factor(name, x.dim.Exponent(axis)))
	}
	return strings.Join(parts, "*")
}
