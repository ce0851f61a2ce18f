package harness

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/svgattr/attribute"
	"github.com/roach88/svgattr/internal/census"
	"github.com/roach88/svgattr/internal/scan"
	"github.com/roach88/svgattr/internal/testutil"
)

// Harness holds the per-run state of one scenario.
type Harness struct {
	store  *census.Store
	clock  *testutil.Sequence
	runIDs *testutil.Sequence
	logger *slog.Logger
}

// Run executes a scenario and returns its result.
//
// Each run uses a fresh in-memory census store. A failing case or assertion
// is recorded in the result; only infrastructure problems return an error.
func Run(scenario *Scenario) (*Result, error) {
	st, err := census.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		store:  st,
		clock:  testutil.NewSequence(""),
		runIDs: testutil.NewSequence(scenario.Name),
		logger: slog.Default().With("scenario", scenario.Name),
	}

	ctx := context.Background()
	result := NewResult()

	h.executeCases(scenario.Cases, result)

	if len(scenario.Documents) > 0 {
		if err := h.executeDocuments(ctx, scenario, result); err != nil {
			return nil, fmt.Errorf("failed to scan documents: %w", err)
		}
	}

	actx := &AssertionContext{Store: st, Ctx: ctx, RunID: result.RunID}
	for _, msg := range EvaluateAssertions(scenario.Assertions, actx) {
		result.AddError(msg)
	}

	h.logger.Debug("scenario finished", "pass", result.Pass, "errors", len(result.Errors))
	return result, nil
}

func (h *Harness) executeCases(cases []Case, result *Result) {
	for i, c := range cases {
		event := TraceEvent{Type: EventClassify, Seq: h.clock.Next(), Input: c.Input}
		if a, ok := attribute.Lookup(c.Input); ok {
			event.Kind = a.String()
		}
		result.Trace = append(result.Trace, event)

		want := ""
		if c.Expect != nil {
			want = *c.Expect
		}
		if event.Kind != want {
			result.AddError(fmt.Sprintf("cases[%d]: %q classified as %s, expected %s",
				i, c.Input, describeKind(event.Kind), describeKind(want)))
		}
	}
}

func (h *Harness) executeDocuments(ctx context.Context, scenario *Scenario, result *Result) error {
	reports := make([]*scan.Report, 0, len(scenario.Documents))
	for i, doc := range scenario.Documents {
		report, err := scan.File(scenario.DocumentPath(i))
		if err != nil {
			return fmt.Errorf("documents[%d]: %w", i, err)
		}
		reports = append(reports, report)
		result.Trace = append(result.Trace, TraceEvent{
			Type:       EventScan,
			Seq:        h.clock.Next(),
			Path:       doc,
			Elements:   report.Elements,
			Attributes: report.Attributes,
			Recognized: report.Recognized(),
		})
	}

	runID := h.runIDs.NextID()
	source := strings.Join(scenario.Documents, ",")
	if err := h.store.WriteRun(ctx, runID, source, len(reports), scan.Merge(reports...)); err != nil {
		return err
	}
	result.RunID = runID
	return nil
}

func describeKind(kind string) string {
	if kind == "" {
		return "unrecognized"
	}
	return fmt.Sprintf("%q", kind)
}
