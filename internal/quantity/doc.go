// Package quantity wraps a raw number with the unit it is measured in.
//
// Two forms are provided:
//
//   - Quantity[N] carries its Unit as a runtime value. Every operation checks
//     the unit algebra and returns a *dimerr.Error on the first incompatible
//     combination. Multiplication and division, which change the unit, live
//     here.
//   - Of[D, N] carries its unit in the type parameter D, a zero-size type
//     naming the unit. Of[si.Meters, float64] and Of[si.Seconds, float64] are
//     different Go types, so adding them is rejected by the compiler. Use
//     Dynamic to leave the typed world for unit-changing arithmetic and As to
//     re-enter it.
//
// Payload arithmetic is Go's own: integer quotients truncate and integer
// division by zero panics.
//
// No operation ever rescales a number. Units are labels; a meter and a foot
// are incompatible, not convertible.
package quantity
