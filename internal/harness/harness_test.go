package harness

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dimkit/internal/catalog"
)

func mustParse(t *testing.T, data string) *Scenario {
	t.Helper()
	s, err := ParseScenario([]byte(data))
	require.NoError(t, err)
	return s
}

func TestRunPassingScenario(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/derived_force.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Trace, len(s.Steps))

	f := result.Trace[5]
	assert.Equal(t, "f", f.Let)
	assert.Equal(t, "meter*kilogram*second^-2", f.Unit)
	assert.Equal(t, "1.5", f.Value)

	eq := result.Trace[7]
	require.NotNil(t, eq.Equal)
	assert.True(t, *eq.Equal)
	assert.Empty(t, eq.Unit)

	assert.Equal(t, "DIMENSION_MISMATCH", result.Trace[8].Error)
}

func TestRunReportsValueMismatch(t *testing.T) {
	s := mustParse(t, `
name: wrong_sum
description: "expects the wrong sum"
steps:
  - {let: a, op: value, value: 2, unit: meter}
  - {let: b, op: add, args: [a, a], expect: {value: 5}}
`)

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "steps[1] add: expected value 5, got 4", result.Errors[0])
}

func TestRunReportsUnitMismatch(t *testing.T) {
	s := mustParse(t, `
name: wrong_unit
description: "expects seconds from meters"
steps:
  - {let: a, op: value, value: 2, unit: meter}
  - {let: b, op: add, args: [a, a], expect: {unit: second}}
`)

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "steps[1] add: expected unit second, got meter", result.Errors[0])
}

func TestRunReportsUnexpectedError(t *testing.T) {
	s := mustParse(t, `
name: unexpected
description: "adds length to time without expecting failure"
steps:
  - {let: a, op: value, value: 2, unit: meter}
  - {let: b, op: value, value: 2, unit: second}
  - {op: add, args: [a, b]}
`)

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "steps[2] add: unexpected error: DIMENSION_MISMATCH")
	assert.Equal(t, "DIMENSION_MISMATCH", result.Trace[2].Error)
}

func TestRunReportsMissingError(t *testing.T) {
	s := mustParse(t, `
name: missing_error
description: "expects a failure that does not happen"
steps:
  - {let: a, op: value, value: 2, unit: meter}
  - {let: b, op: add, args: [a, a], expect: {error: DIMENSION_MISMATCH}}
`)

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Equal(t, []string{"steps[1] add: expected error DIMENSION_MISMATCH, got success"}, result.Errors)
}

func TestRunReportsWrongErrorCode(t *testing.T) {
	s := mustParse(t, `
name: wrong_code
description: "expects the wrong failure"
units:
  - {name: foot, axis: length}
steps:
  - {let: a, op: value, value: 2, unit: meter}
  - {let: b, op: value, value: 2, unit: foot}
  - {op: add, args: [a, b], expect: {error: DIMENSION_MISMATCH}}
`)

	result, err := Run(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"steps[2] add: expected error DIMENSION_MISMATCH, got INCOMPATIBLE_UNITS"}, result.Errors)
}

func TestRunReportsEqualMismatch(t *testing.T) {
	s := mustParse(t, `
name: not_equal
description: "two meters is not three meters"
steps:
  - {let: a, op: value, value: 2, unit: meter}
  - {let: b, op: value, value: 3, unit: meter}
  - {op: equal, args: [a, b], expect: {equal: true}}
`)

	result, err := Run(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"steps[2] equal: expected equal=true, got false"}, result.Errors)
}

func TestRunExtendsCatalogWithDerivedUnits(t *testing.T) {
	s := mustParse(t, `
name: speed
description: "derived units declared in the scenario"
derived:
  - name: mps
    of: {meter: 1, second: -1}
steps:
  - {let: d, op: value, value: 9, unit: meter}
  - {let: t, op: value, value: 3, unit: second}
  - {let: v, op: div, args: [d, t], expect: {value: 3, unit: mps}}
`)

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRunUnknownUnit(t *testing.T) {
	s := mustParse(t, `
name: unknown_unit
description: "furlong is not SI"
steps:
  - {let: a, op: value, value: 1, unit: furlong}
`)

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 0")
	assert.Contains(t, err.Error(), catalog.ErrUnknownUnit)
}

func TestRunUnknownExpectUnit(t *testing.T) {
	s := mustParse(t, `
name: unknown_expect_unit
description: "expect names a unit the catalog lacks"
steps:
  - {let: a, op: value, value: 1, unit: meter, expect: {unit: furlong}}
`)

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown unit "furlong"`)
}

func TestRunUnboundAfterUnexpectedFailure(t *testing.T) {
	s := mustParse(t, `
name: unbound
description: "a failed step leaves its name unbound"
steps:
  - {let: a, op: value, value: 2, unit: meter}
  - {let: b, op: value, value: 2, unit: second}
  - {let: c, op: add, args: [a, b]}
  - {let: d, op: mul, args: [c, a]}
`)

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `step 3: "c" is not bound`)
}

func TestRunBadCatalog(t *testing.T) {
	s := mustParse(t, `
name: bad_catalog
description: "catalog file does not exist"
catalog: missing.yaml
steps:
  - {let: a, op: value, value: 1}
`)

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load catalog")
}

func TestRunBadExtension(t *testing.T) {
	s := mustParse(t, `
name: bad_extension
description: "meter is already declared"
units:
  - {name: meter, axis: length}
steps:
  - {let: a, op: value, value: 1}
`)

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to extend catalog")
	assert.Contains(t, err.Error(), catalog.ErrDuplicateName)
}

func TestRunWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := LoadScenario("testdata/scenarios/add_same_unit.yaml")
	require.NoError(t, err)

	_, err = Run(s, WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "step executed")
	assert.Contains(t, out, "scenario finished")
	assert.Contains(t, out, "catalog built")
}

func TestRunWithNilLogger(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/add_same_unit.yaml")
	require.NoError(t, err)

	var result *Result
	require.NotPanics(t, func() {
		result, err = Run(s, WithLogger(nil))
	})
	require.NoError(t, err)
	assert.True(t, result.Pass)
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, approxEqual(0.1+0.2, 0.3))
	assert.True(t, approxEqual(1e12+1e-3, 1e12))
	assert.False(t, approxEqual(1.0, 1.001))
	assert.False(t, approxEqual(0, 1e-6))
}
