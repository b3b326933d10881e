package harness

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/roach88/dimkit/internal/catalog"
	"github.com/roach88/dimkit/internal/dimerr"
	"github.com/roach88/dimkit/internal/quantity"
	"github.com/roach88/dimkit/internal/unit"
)

// tolerance is the relative tolerance for expected values.
const tolerance = 1e-9

// Harness executes the steps of one scenario.
type Harness struct {
	catalog *catalog.Catalog
	env     map[string]quantity.Quantity[float64]
	logger  *slog.Logger
}

// Option configures Run.
type Option func(*Harness)

// WithLogger sets the logger for the run and its catalog. The default
// discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// outcome is what a step produced: a quantity, an equality, or an algebra
// error.
type outcome struct {
	q     quantity.Quantity[float64]
	equal bool
	err   error
}

// Run executes a scenario and returns the result.
//
// Expect mismatches are reported on the result. The returned error is
// reserved for scenarios that cannot execute.
func Run(s *Scenario, opts ...Option) (*Result, error) {
	h := &Harness{
		env:    make(map[string]quantity.Quantity[float64]),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	cat, err := loadCatalog(s, h.logger)
	if err != nil {
		return nil, err
	}
	h.catalog = cat

	result := NewResult()
	for i, st := range s.Steps {
		if err := h.execute(i, st, result); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}

	h.logger.Info("scenario finished",
		"scenario", s.Name,
		"steps", len(s.Steps),
		"pass", result.Pass,
		"errors", len(result.Errors),
	)
	return result, nil
}

func loadCatalog(s *Scenario, logger *slog.Logger) (*catalog.Catalog, error) {
	var cat *catalog.Catalog
	if path := s.catalogPath(); path == "" {
		cat = catalog.SI(catalog.WithLogger(logger))
	} else {
		var err error
		cat, err = catalog.LoadFile(path, catalog.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
	}
	if len(s.Units) == 0 && len(s.Derived) == 0 {
		return cat, nil
	}
	ext, err := cat.Extend(catalog.Definition{Units: s.Units, Derived: s.Derived})
	if err != nil {
		return nil, fmt.Errorf("failed to extend catalog: %w", err)
	}
	return ext, nil
}

// execute runs one step, records its trace event and checks its expect
// clause.
func (h *Harness) execute(i int, st Step, result *Result) error {
	out, err := h.evaluate(st)
	if err != nil {
		return err
	}

	ev := TraceEvent{Step: i, Op: st.Op, Let: st.Let}
	switch {
	case out.err != nil:
		ev.Error = string(dimerr.CodeOf(out.err))
	case st.Op == OpEqual:
		ev.Equal = &out.equal
	default:
		ev.Unit = out.q.Unit().String()
		ev.Value = strconv.FormatFloat(out.q.Number(), 'g', -1, 64)
		if st.Let != "" {
			h.env[st.Let] = out.q
		}
	}
	result.AddTrace(ev)

	h.logger.Debug("step executed",
		"step", i,
		"op", st.Op,
		"let", st.Let,
		"unit", ev.Unit,
		"value", ev.Value,
		"error", ev.Error,
	)

	mismatches, err := h.check(st, out)
	if err != nil {
		return err
	}
	for _, msg := range mismatches {
		result.AddError(fmt.Sprintf("steps[%d] %s: %s", i, st.Op, msg))
	}
	return nil
}

func (h *Harness) evaluate(st Step) (outcome, error) {
	args := make([]quantity.Quantity[float64], len(st.Args))
	for k, name := range st.Args {
		q, ok := h.env[name]
		if !ok {
			return outcome{}, fmt.Errorf("%q is not bound", name)
		}
		args[k] = q
	}

	var out outcome
	switch st.Op {
	case OpValue:
		u, err := h.resolveUnit(st.Unit)
		if err != nil {
			return outcome{}, err
		}
		out.q = quantity.New(u, *st.Value)
	case OpAdd:
		out.q, out.err = args[0].Add(args[1])
	case OpSub:
		out.q, out.err = args[0].Sub(args[1])
	case OpMul:
		out.q, out.err = args[0].Mul(args[1])
	case OpDiv:
		out.q, out.err = args[0].Div(args[1])
	case OpScale:
		out.q = args[0].MulScalar(*st.Scalar)
	case OpDivScalar:
		out.q = args[0].DivScalar(*st.Scalar)
	case OpScalarDiv:
		out.q = quantity.ScalarDiv(*st.Scalar, args[0])
	case OpConvert:
		u, err := h.resolveUnit(st.Unit)
		if err != nil {
			return outcome{}, err
		}
		out.q, out.err = quantity.Convert(args[0], u)
	case OpEqual:
		out.equal, out.err = args[0].Equal(args[1])
	default:
		return outcome{}, fmt.Errorf("unknown op %q", st.Op)
	}
	return out, nil
}

// check compares an outcome with the step's expect clause. With no expect
// clause a step must merely succeed.
func (h *Harness) check(st Step, out outcome) ([]string, error) {
	e := st.Expect
	if e != nil && e.Error != "" {
		if out.err == nil {
			return []string{fmt.Sprintf("expected error %s, got success", e.Error)}, nil
		}
		if got := string(dimerr.CodeOf(out.err)); got != e.Error {
			return []string{fmt.Sprintf("expected error %s, got %s", e.Error, got)}, nil
		}
		return nil, nil
	}
	if out.err != nil {
		return []string{fmt.Sprintf("unexpected error: %v", out.err)}, nil
	}
	if e == nil {
		return nil, nil
	}

	var mismatches []string
	if e.Equal != nil && *e.Equal != out.equal {
		mismatches = append(mismatches, fmt.Sprintf("expected equal=%t, got %t", *e.Equal, out.equal))
	}
	if e.Unit != "" {
		want, err := h.resolveUnit(e.Unit)
		if err != nil {
			return nil, err
		}
		if !out.q.Unit().Equal(want) {
			mismatches = append(mismatches, fmt.Sprintf("expected unit %s, got %s", want, out.q.Unit()))
		}
	}
	if e.Value != nil && !approxEqual(out.q.Number(), *e.Value) {
		mismatches = append(mismatches, fmt.Sprintf("expected value %g, got %g", *e.Value, out.q.Number()))
	}
	return mismatches, nil
}

// resolveUnit looks a unit up in the catalog. "" and "1" are dimensionless.
func (h *Harness) resolveUnit(name string) (unit.Unit, error) {
	if name == "" || name == "1" {
		return unit.None, nil
	}
	return h.catalog.Lookup(name)
}

func approxEqual(got, want float64) bool {
	return math.Abs(got-want) <= tolerance*math.Max(1, math.Abs(want))
}
