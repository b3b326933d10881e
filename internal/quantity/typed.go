package quantity

import (
	"fmt"

	"github.com/roach88/dimkit/internal/dimerr"
	"github.com/roach88/dimkit/internal/unit"
)

// Definition names a unit at the type level. Implementations are zero-size
// struct types whose Unit method returns a package-level Unit.
type Definition interface {
	Unit() unit.Unit
}

// Of is a number whose unit is fixed by the type parameter D.
// Only quantities with the same D (and N) can be added, subtracted or
// compared, and the compiler enforces it.
type Of[D Definition, N Number] struct {
	number N
}

// Make labels n with the unit named by D.
func Make[D Definition, N Number](n N) Of[D, N] {
	return Of[D, N]{number: n}
}

// Number returns the raw payload of q.
func (q Of[D, N]) Number() N { return q.number }

// Unit returns the unit named by D.
func (q Of[D, N]) Unit() unit.Unit {
	var d D
	return d.Unit()
}

// Add returns q+r.
func (q Of[D, N]) Add(r Of[D, N]) Of[D, N] {
	return Of[D, N]{number: q.number + r.number}
}

// Sub returns q-r.
func (q Of[D, N]) Sub(r Of[D, N]) Of[D, N] {
	return Of[D, N]{number: q.number - r.number}
}

// MulScalar returns q*k.
func (q Of[D, N]) MulScalar(k N) Of[D, N] {
	return Of[D, N]{number: q.number * k}
}

// DivScalar returns q/k.
func (q Of[D, N]) DivScalar(k N) Of[D, N] {
	return Of[D, N]{number: q.number / k}
}

// Equal reports whether q and r hold equal numbers. Their units are equal
// by construction.
func (q Of[D, N]) Equal(r Of[D, N]) bool {
	return q.number == r.number
}

// Dynamic returns q as a runtime-checked Quantity.
func (q Of[D, N]) Dynamic() Quantity[N] {
	return New(q.Unit(), q.number)
}

// String renders q like Quantity.String.
func (q Of[D, N]) String() string {
	return q.Dynamic().String()
}

// As moves a runtime-checked quantity into the typed world. It fails with
// UnitMismatch when the unit of q is not structurally equal to the unit
// named by D.
func As[D Definition, N Number](q Quantity[N]) (Of[D, N], error) {
	var d D
	if !q.unit.Equal(d.Unit()) {
		return Of[D, N]{}, dimerr.NewUnitMismatch("convert", q.unit.String(), d.Unit().String())
	}
	return Of[D, N]{number: q.number}, nil
}

// MustAs is like As but panics on error.
func MustAs[D Definition, N Number](q Quantity[N]) Of[D, N] {
	out, err := As[D](q)
	if err != nil {
		panic(fmt.Sprintf("quantity.MustAs: %v", err))
	}
	return out
}

// Reinterpret relabels q with another type-level unit. Like Convert it
// never rescales and succeeds only when both units are structurally equal,
// e.g. two definitions built from the same tags.
func Reinterpret[D2, D1 Definition, N Number](q Of[D1, N]) (Of[D2, N], error) {
	return As[D2](q.Dynamic())
}

// CastOf converts the payload of q to N2. The unit is unchanged.
func CastOf[N2 Number, D Definition, N1 Number](q Of[D, N1]) Of[D, N2] {
	return Of[D, N2]{number: N2(q.number)}
}
