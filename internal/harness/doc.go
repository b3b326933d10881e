// Package harness runs conformance scenarios against the quantity algebra.
//
// A scenario binds named quantities from a unit catalog, combines them step by
// step and checks each result against an expect clause. Every step is recorded
// in a trace that can be compared to a golden file.
//
// # Scenario Format
//
//	name: force_from_mass
//	description: "kg * m / s^2 converts to newton"
//	catalog: si
//	units:
//	  - {name: foot, axis: length}
//	steps:
//	  - {let: m, op: value, value: 2, unit: kilogram}
//	  - {let: a, op: value, value: 3, unit: meter}
//	  - {let: ma, op: mul, args: [m, a]}
//	  - op: add
//	    args: [m, a]
//	    expect: {error: DIMENSION_MISMATCH}
//
// The catalog is "si" (the default) or a definition file path relative to the
// scenario file. Units and derived entries extend the catalog before the steps
// run.
//
// # Operations
//
//   - value: binds value in unit ("" or "1" is dimensionless)
//   - add, sub, mul, div: combine two bound quantities
//   - scale, divscalar: multiply or divide a quantity by scalar
//   - scalardiv: divide scalar by a quantity
//   - convert: relabel a quantity as unit
//   - equal: compare two quantities, producing no binding
//
// Algebra failures are outcomes, not harness errors: a step whose expect clause
// names the failing code passes. Run returns an error only when the scenario
// itself cannot execute (unknown unit, unbound name, bad catalog).
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/derived_force.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, msg := range result.Errors {
//	    log.Println(msg)
//	}
package harness
