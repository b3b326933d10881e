package quantity

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/roach88/dimkit/internal/dimerr"
	"github.com/roach88/dimkit/internal/unit"
)

// Number is the set of numeric payload types a Quantity can carry.
type Number interface {
	constraints.Integer | constraints.Float
}

// Quantity is an immutable number labeled with a Unit.
type Quantity[N Number] struct {
	unit   unit.Unit
	number N
}

// New labels n with u.
func New[N Number](u unit.Unit, n N) Quantity[N] {
	return Quantity[N]{unit: u, number: n}
}

// Scalar returns n as a dimensionless quantity.
func Scalar[N Number](n N) Quantity[N] {
	return Quantity[N]{unit: unit.None, number: n}
}

// Unit returns the unit of q.
func (q Quantity[N]) Unit() unit.Unit { return q.unit }

// Number returns the raw payload of q.
func (q Quantity[N]) Number() N { return q.number }

// Convert relabels q as target. This is the only conversion path and it
// never rescales: it succeeds only when target equals the unit of q.
func Convert[N Number](q Quantity[N], target unit.Unit) (Quantity[N], error) {
	if !q.unit.Equal(target) {
		return Quantity[N]{}, dimerr.NewUnitMismatch("convert", q.unit.String(), target.String())
	}
	return Quantity[N]{unit: target, number: q.number}, nil
}

// Cast converts the payload of q to N2 with Go's numeric conversion rules.
// The unit is unchanged.
func Cast[N2, N1 Number](q Quantity[N1]) Quantity[N2] {
	return Quantity[N2]{unit: q.unit, number: N2(q.number)}
}

// binary applies a unit operation and the matching number operation.
func binary[N Number](
	x, y Quantity[N],
	unitOp func(a, b unit.Unit) (unit.Unit, error),
	numOp func(a, b N) N,
) (Quantity[N], error) {
	u, err := unitOp(x.unit, y.unit)
	if err != nil {
		return Quantity[N]{}, err
	}
	return Quantity[N]{unit: u, number: numOp(x.number, y.number)}, nil
}

// Add returns q+r. The units must have equal dimensions and measure shared
// axes in the same unit.
func (q Quantity[N]) Add(r Quantity[N]) (Quantity[N], error) {
	return binary(q, r, unit.Unit.Add, func(a, b N) N { return a + b })
}

// Sub returns q-r.
func (q Quantity[N]) Sub(r Quantity[N]) (Quantity[N], error) {
	return binary(q, r, unit.Unit.Sub, func(a, b N) N { return a - b })
}

// Mul returns q*r with the product unit.
func (q Quantity[N]) Mul(r Quantity[N]) (Quantity[N], error) {
	return binary(q, r, unit.Unit.Mul, func(a, b N) N { return a * b })
}

// Div returns q/r with the quotient unit. Integer division by zero panics
// as it does for the bare integer type.
func (q Quantity[N]) Div(r Quantity[N]) (Quantity[N], error) {
	return binary(q, r, unit.Unit.Div, func(a, b N) N { return a / b })
}

// MulScalar returns q*k. k is treated as a dimensionless quantity.
func (q Quantity[N]) MulScalar(k N) Quantity[N] {
	return Must(q.Mul(Scalar(k)))
}

// DivScalar returns q/k. k is treated as a dimensionless quantity.
// Integer division by zero panics, as in Div.
func (q Quantity[N]) DivScalar(k N) Quantity[N] {
	return Must(q.Div(Scalar(k)))
}

// ScalarMul returns k*q.
func ScalarMul[N Number](k N, q Quantity[N]) Quantity[N] {
	return Must(Scalar(k).Mul(q))
}

// ScalarDiv returns k/q, whose unit is the inverse of the unit of q.
// Integer division by a zero q panics, as in Div.
func ScalarDiv[N Number](k N, q Quantity[N]) Quantity[N] {
	return Must(Scalar(k).Div(q))
}

// Equal reports whether q and r hold equal numbers. Comparing quantities of
// different units is a UnitMismatch.
func (q Quantity[N]) Equal(r Quantity[N]) (bool, error) {
	if !q.unit.Equal(r.unit) {
		return false, dimerr.NewUnitMismatch("equal", q.unit.String(), r.unit.String())
	}
	return q.number == r.number, nil
}

// Must returns q and panics if err is non-nil.
func Must[N Number](q Quantity[N], err error) Quantity[N] {
	if err != nil {
		panic(err)
	}
	return q
}

// String renders q as "<number> <unit>", omitting the unit when dimensionless.
func (q Quantity[N]) String() string {
	if q.unit.IsNone() {
		return fmt.Sprint(q.number)
	}
	return fmt.Sprintf("%v %s", q.number, q.unit)
}
