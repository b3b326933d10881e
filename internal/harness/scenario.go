package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/dimkit/internal/catalog"
	"github.com/roach88/dimkit/internal/dimerr"
)

// Scenario defines a conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Catalog is "si" or a definition file path, relative to the scenario
	// file when loaded with LoadScenario. Empty means "si".
	Catalog string `yaml:"catalog,omitempty"`

	// Units and Derived extend the catalog before the steps run.
	Units   []catalog.BaseUnit    `yaml:"units,omitempty"`
	Derived []catalog.DerivedUnit `yaml:"derived,omitempty"`

	// Steps run in order.
	Steps []Step `yaml:"steps"`

	dir string
}

// Step is one operation. Args name quantities bound by earlier steps.
type Step struct {
	Let    string   `yaml:"let,omitempty"`
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args,omitempty"`
	Value  *float64 `yaml:"value,omitempty"`
	Scalar *float64 `yaml:"scalar,omitempty"`
	Unit   string   `yaml:"unit,omitempty"`
	Expect *Expect  `yaml:"expect,omitempty"`
}

// Expect checks a step outcome. Unset fields are not checked.
type Expect struct {
	// Value is the expected number.
	Value *float64 `yaml:"value,omitempty"`

	// Unit is a catalog unit name, or "1" for dimensionless.
	Unit string `yaml:"unit,omitempty"`

	// Error is the expected error code. When set the step must fail.
	Error string `yaml:"error,omitempty"`

	// Equal is the expected outcome of an equal step.
	Equal *bool `yaml:"equal,omitempty"`
}

// Operation names.
const (
	OpValue     = "value"
	OpAdd       = "add"
	OpSub       = "sub"
	OpMul       = "mul"
	OpDiv       = "div"
	OpScale     = "scale"
	OpDivScalar = "divscalar"
	OpScalarDiv = "scalardiv"
	OpConvert   = "convert"
	OpEqual     = "equal"
)

// arity is the number of args each operation takes.
var arity = map[string]int{
	OpValue:     0,
	OpAdd:       2,
	OpSub:       2,
	OpMul:       2,
	OpDiv:       2,
	OpScale:     1,
	OpDivScalar: 1,
	OpScalarDiv: 1,
	OpConvert:   1,
	OpEqual:     2,
}

var knownCodes = map[string]bool{
	string(dimerr.CodeDimensionMismatch): true,
	string(dimerr.CodeIncompatibleUnits): true,
	string(dimerr.CodeUnitMismatch):      true,
}

// LoadScenario reads and parses a scenario YAML file. A relative catalog
// path is resolved against the file's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// ParseScenario parses scenario YAML. Unknown fields are rejected so typos
// like "expects:" fail loudly.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: empty scenario")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

// catalogPath resolves the catalog reference. The empty string means si.
func (s *Scenario) catalogPath() string {
	if s.Catalog == "" || s.Catalog == "si" {
		return ""
	}
	if filepath.IsAbs(s.Catalog) || s.dir == "" {
		return s.Catalog
	}
	return filepath.Join(s.dir, s.Catalog)
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	bound := make(map[string]bool)
	for i := range s.Steps {
		if err := validateStep(i, &s.Steps[i], bound); err != nil {
			return err
		}
	}
	return nil
}

func validateStep(i int, st *Step, bound map[string]bool) error {
	n, ok := arity[st.Op]
	if !ok {
		if st.Op == "" {
			return fmt.Errorf("steps[%d]: op is required", i)
		}
		return fmt.Errorf("steps[%d]: unknown op %q", i, st.Op)
	}
	if len(st.Args) != n {
		return fmt.Errorf("steps[%d]: %s takes %d args, got %d", i, st.Op, n, len(st.Args))
	}
	for _, arg := range st.Args {
		if !bound[arg] {
			return fmt.Errorf("steps[%d]: %q is not bound by an earlier step", i, arg)
		}
	}

	switch st.Op {
	case OpValue:
		if st.Value == nil {
			return fmt.Errorf("steps[%d]: value is required for value", i)
		}
		if st.Let == "" {
			return fmt.Errorf("steps[%d]: let is required for value", i)
		}
	case OpScale, OpDivScalar, OpScalarDiv:
		if st.Scalar == nil {
			return fmt.Errorf("steps[%d]: scalar is required for %s", i, st.Op)
		}
	case OpConvert:
		if st.Unit == "" {
			return fmt.Errorf("steps[%d]: unit is required for convert", i)
		}
	case OpEqual:
		if st.Let != "" {
			return fmt.Errorf("steps[%d]: equal does not bind a quantity", i)
		}
	}

	if e := st.Expect; e != nil {
		if e.Error != "" && !knownCodes[e.Error] {
			return fmt.Errorf("steps[%d].expect: unknown error code %q", i, e.Error)
		}
		if e.Equal != nil && st.Op != OpEqual {
			return fmt.Errorf("steps[%d].expect: equal applies only to equal steps", i)
		}
		if st.Op == OpEqual && (e.Value != nil || e.Unit != "") {
			return fmt.Errorf("steps[%d].expect: equal steps produce no value or unit", i)
		}
	}

	// A step expected to fail binds nothing.
	if st.Let != "" && (st.Expect == nil || st.Expect.Error == "") {
		bound[st.Let] = true
	}
	return nil
}
