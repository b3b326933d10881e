package harness

// TraceEvent records the outcome of one step.
type TraceEvent struct {
	Step int    `json:"step"`
	Op   string `json:"op"`
	Let  string `json:"let,omitempty"`

	// Unit and Value describe the produced quantity. Value is formatted with
	// strconv 'g' so traces contain no floats.
	Unit  string `json:"unit,omitempty"`
	Value string `json:"value,omitempty"`

	// Equal is set for equal steps that succeed.
	Equal *bool `json:"equal,omitempty"`

	// Error is the error code when the step failed.
	Error string `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every expect clause matched.
	Pass bool `json:"pass"`

	// Trace has one event per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expect mismatches. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds an expect mismatch and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a step event.
func (r *Result) AddTrace(ev TraceEvent) {
	r.Trace = append(r.Trace, ev)
}
