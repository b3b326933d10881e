// Package unitmap records which unit measures each axis of a dimension,
// e.g. length -> foot.
//
// A UnitMap is not canonicalized on its own; the unit package restricts it
// to the axes of the dimension it is paired with.
package unitmap

import (
	"maps"
	"slices"
	"strings"

	"github.com/roach88/dimkit/internal/dimerr"
	"github.com/roach88/dimkit/internal/tag"
)

// UnitMap is an immutable mapping from axis tags to unit tags.
// The zero value is the empty map.
type UnitMap struct {
	units map[tag.Tag]tag.Tag
}

// None is the empty unit map.
var None = UnitMap{}

// New builds a UnitMap from an axis-to-unit map. The map is copied.
func New(units map[tag.Tag]tag.Tag) UnitMap {
	if len(units) == 0 {
		return None
	}
	return UnitMap{units: maps.Clone(units)}
}

// Of returns the map that measures a single axis in unit.
func Of(axis, unit tag.Tag) UnitMap {
	return UnitMap{units: map[tag.Tag]tag.Tag{axis: unit}}
}

// Unit returns the unit assigned to axis.
func (u UnitMap) Unit(axis tag.Tag) (tag.Tag, bool) {
	t, ok := u.units[axis]
	return t, ok
}

// Len returns the number of axes with an assigned unit.
func (u UnitMap) Len() int { return len(u.units) }

// Axes returns the axes of u in tag.Compare order.
func (u UnitMap) Axes() []tag.Tag {
	return slices.SortedFunc(maps.Keys(u.units), tag.Compare)
}

// Units returns a copy of the underlying axis-to-unit map.
func (u UnitMap) Units() map[tag.Tag]tag.Tag {
	return maps.Clone(u.units)
}

// Equal reports whether u and v have identical (axis, unit) pairs.
func (u UnitMap) Equal(v UnitMap) bool {
	return maps.Equal(u.units, v.units)
}

// Add, Sub, Mul and Div all apply the same rule: every axis present in both
// maps must be measured in the same unit. The result is the union.

// Add combines u and v for an addition.
func (u UnitMap) Add(v UnitMap) (UnitMap, error) { return u.combine("add", v) }

// Sub combines u and v for a subtraction.
func (u UnitMap) Sub(v UnitMap) (UnitMap, error) { return u.combine("sub", v) }

// Mul combines u and v for a multiplication.
func (u UnitMap) Mul(v UnitMap) (UnitMap, error) { return u.combine("mul", v) }

// Div combines u and v for a division.
func (u UnitMap) Div(v UnitMap) (UnitMap, error) { return u.combine("div", v) }

func (u UnitMap) combine(op string, v UnitMap) (UnitMap, error) {
	// Check axes in a fixed order so the reported axis is deterministic.
	for _, axis := range u.Axes() {
		if other, ok := v.units[axis]; ok && other != u.units[axis] {
			return None, dimerr.NewIncompatibleUnits(op, axis.String(), u.String(), v.String())
		}
	}
	if len(u.units)+len(v.units) == 0 {
		return None, nil
	}
	out := make(map[tag.Tag]tag.Tag, len(u.units)+len(v.units))
	maps.Copy(out, v.units)
	maps.Copy(out, u.units)
	return UnitMap{units: out}, nil
}

// Restrict returns the entries of u whose axis satisfies keep.
func (u UnitMap) Restrict(keep func(axis tag.Tag) bool) UnitMap {
	out := make(map[tag.Tag]tag.Tag, len(u.units))
	for axis, unit := range u.units {
		if keep(axis) {
			out[axis] = unit
		}
	}
	if len(out) == 0 {
		return None
	}
	return UnitMap{units: out}
}

// String renders u as "length:meter time:second", or "{}" when empty.
func (u UnitMap) String() string {
	if len(u.units) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(u.units))
	for _, axis := range u.Axes() {
		parts = append(parts, axis.String()+":"+u.units[axis].String())
	}
	return strings.Join(parts, " ")
}
