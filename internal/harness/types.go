package harness

// Trace event types.
const (
	EventClassify = "classify"
	EventScan     = "scan"
)

// TraceEvent records one step of a scenario run.
type TraceEvent struct {
	Type  string `json:"type"`
	Seq   int64  `json:"seq"`
	Input string `json:"input,omitempty"`
	// Kind is the canonical spelling a classify step resolved to, empty when
	// the input was unrecognized.
	Kind       string `json:"kind,omitempty"`
	Path       string `json:"path,omitempty"`
	Elements   int    `json:"elements,omitempty"`
	Attributes int    `json:"attributes,omitempty"`
	Recognized int    `json:"recognized,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every case and assertion held.
	Pass bool `json:"pass"`

	// Trace lists classify steps, then scan steps, in execution order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains one message per failed case or assertion.
	Errors []string `json:"errors,omitempty"`

	// RunID is the census run the documents were stored under.
	RunID string `json:"run_id,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
