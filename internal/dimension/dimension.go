// Package dimension implements the canonical signed-exponent map over base
// axes that represents a physical dimension, e.g. length^1 * time^-2.
//
// A Dimension never stores a zero exponent. Every constructor and operation
// prunes zero entries before returning, so structural equality of the stored
// maps is dimension equality.
package dimension

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/roach88/dimkit/internal/dimerr"
	"github.com/roach88/dimkit/internal/tag"
)

// Dimension is an immutable product of powers of base axes.
// The zero value is the dimensionless dimension.
type Dimension struct {
	exps map[tag.Tag]int
}

// None is the dimensionless dimension.
var None = Dimension{}

// New builds a Dimension from an axis-to-exponent map.
// The map is copied; zero exponents are dropped.
func New(exps map[tag.Tag]int) Dimension {
	return canonical(maps.Clone(exps))
}

// Of returns the dimension consisting of a single axis with exponent 1.
func Of(axis tag.Tag) Dimension {
	return Dimension{exps: map[tag.Tag]int{axis: 1}}
}

// canonical prunes zero exponents in place and takes ownership of m.
func canonical(m map[tag.Tag]int) Dimension {
	maps.DeleteFunc(m, func(_ tag.Tag, e int) bool { return e == 0 })
	if len(m) == 0 {
		return None
	}
	return Dimension{exps: m}
}

// Exponent returns the exponent of axis, or 0 if the axis is absent.
func (d Dimension) Exponent(axis tag.Tag) int {
	return d.exps[axis]
}

// Has reports whether axis appears in d with a nonzero exponent.
func (d Dimension) Has(axis tag.Tag) bool {
	_, ok := d.exps[axis]
	return ok
}

// Len returns the number of axes in d.
func (d Dimension) Len() int { return len(d.exps) }

// IsNone reports whether d is dimensionless.
func (d Dimension) IsNone() bool { return len(d.exps) == 0 }

// Axes returns the axes of d in tag.Compare order.
func (d Dimension) Axes() []tag.Tag {
	return slices.SortedFunc(maps.Keys(d.exps), tag.Compare)
}

// Exponents returns a copy of the underlying axis-to-exponent map.
func (d Dimension) Exponents() map[tag.Tag]int {
	return maps.Clone(d.exps)
}

// Equal reports whether d and o have identical (axis, exponent) pairs.
func (d Dimension) Equal(o Dimension) bool {
	return maps.Equal(d.exps, o.exps)
}

// Add returns d when d and o are the same dimension.
// Addition never changes the dimension.
func (d Dimension) Add(o Dimension) (Dimension, error) {
	return d.same("add", o)
}

// Sub returns d when d and o are the same dimension.
func (d Dimension) Sub(o Dimension) (Dimension, error) {
	return d.same("sub", o)
}

func (d Dimension) same(op string, o Dimension) (Dimension, error) {
	if !d.Equal(o) {
		return None, dimerr.NewDimensionMismatch(op, d.String(), o.String())
	}
	return d, nil
}

// Mul adds exponents axis by axis.
func (d Dimension) Mul(o Dimension) Dimension {
	return merge(d, o, func(a, b int) int { return a + b })
}

// Div subtracts the exponents of o from those of d axis by axis.
func (d Dimension) Div(o Dimension) Dimension {
	return merge(d, o, func(a, b int) int { return a - b })
}

// Pow multiplies every exponent of d by n. Pow(0) is None. It fails with
// ExponentOverflow when a resulting exponent does not fit in an int.
func (d Dimension) Pow(n int) (Dimension, error) {
	if n == 0 {
		return None, nil
	}
	out := make(map[tag.Tag]int, len(d.exps))
	for axis, e := range d.exps {
		p := e * n
		if p/n != e || (n == -1 && e == math.MinInt) {
			return None, dimerr.NewExponentOverflow("pow", d.String(), n)
		}
		out[axis] = p
	}
	return canonical(out), nil
}

// merge combines x and y over the union of their axes. An axis missing from
// one side contributes exponent 0. Zero results are pruned.
func merge(x, y Dimension, combine func(a, b int) int) Dimension {
	out := make(map[tag.Tag]int, len(x.exps)+len(y.exps))
	for axis, e := range x.exps {
		out[axis] = combine(e, y.exps[axis])
	}
	for axis, e := range y.exps {
		if _, shared := x.exps[axis]; !shared {
			out[axis] = combine(0, e)
		}
	}
	return canonical(out)
}

// String renders d as "length*time^-2", or "1" when dimensionless.
func (d Dimension) String() string {
	if d.IsNone() {
		return "1"
	}
	parts := make([]string, 0, len(d.exps))
	for _, axis := range d.Axes() {
		parts = append(parts, Factor(axis.String(), d.exps[axis]))
	}
	return strings.Join(parts, "*")
}

// Factor renders one base raised to exp, omitting an exponent of 1.
func Factor(base string, exp int) string {
	if exp == 1 {
		return base
	}
	return fmt.Sprintf("%s^%d", base, exp)
}
