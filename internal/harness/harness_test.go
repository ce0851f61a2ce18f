package harness

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/svgattr/internal/census"
	"github.com/roach88/svgattr/internal/scan"
)

func strPtr(s string) *string { return &s }

func TestRun_CasesPass(t *testing.T) {
	s := &Scenario{
		Name:        "cases",
		Description: "x",
		Cases: []Case{
			{Input: "fill", Expect: strPtr("fill")},
			{Input: "FILL", Expect: strPtr("")},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.RunID)

	require.Len(t, result.Trace, 2)
	assert.Equal(t, TraceEvent{Type: EventClassify, Seq: 1, Input: "fill", Kind: "fill"}, result.Trace[0])
	assert.Equal(t, TraceEvent{Type: EventClassify, Seq: 2, Input: "FILL"}, result.Trace[1])
}

func TestRun_CaseMismatch(t *testing.T) {
	s := &Scenario{
		Name:        "mismatch",
		Description: "x",
		Cases: []Case{
			{Input: "fill", Expect: strPtr("stroke")},
			{Input: "Fill", Expect: strPtr("fill")},
			{Input: "stroke", Expect: strPtr("")},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 3)
	assert.Equal(t, `cases[0]: "fill" classified as "fill", expected "stroke"`, result.Errors[0])
	assert.Equal(t, `cases[1]: "Fill" classified as unrecognized, expected "fill"`, result.Errors[1])
	assert.Equal(t, `cases[2]: "stroke" classified as "stroke", expected unrecognized`, result.Errors[2])
}

func TestRun_Documents(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/sample_document.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, "sample_document-0001", result.RunID)

	require.Len(t, result.Trace, 1)
	assert.Equal(t, EventScan, result.Trace[0].Type)
	assert.Equal(t, 8, result.Trace[0].Elements)
	assert.Equal(t, 28, result.Trace[0].Attributes)
	assert.Equal(t, 24, result.Trace[0].Recognized)
}

func TestRun_FailingAssertions(t *testing.T) {
	s := &Scenario{
		Name:        "failing",
		Description: "x",
		Documents:   []string{filepath.Join("testdata", "documents", "sample.svg")},
		Assertions: []Assertion{
			{Type: AssertAttributeCount, Name: "width", Count: 3},
			{Type: AssertRecognizedCount, Count: 1},
			{Type: AssertUnrecognizedContains, Name: "width"},
			{Type: AssertUnrecognizedContains, Name: "onclick"},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], `"width" seen 2 times`)
	assert.Contains(t, result.Errors[1], "24 recognized attributes")
	assert.Contains(t, result.Errors[2], `"width" recognized`)
	assert.Contains(t, result.Errors[3], `"onclick" not seen`)
}

func TestRun_MissingDocumentIsError(t *testing.T) {
	s := &Scenario{
		Name:        "missing",
		Description: "x",
		Documents:   []string{filepath.Join(t.TempDir(), "gone.svg")},
	}

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "documents[0]")
}

func TestRun_Deterministic(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/core_names.yaml")
	require.NoError(t, err)

	first, err := Run(s)
	require.NoError(t, err)
	second, err := Run(s)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEvaluateAssertions_NoContext(t *testing.T) {
	assert.Empty(t, EvaluateAssertions(nil, nil))

	msgs := EvaluateAssertions([]Assertion{{Type: AssertRecognizedCount}}, nil)
	assert.Equal(t, []string{"assertions require a stored document run"}, msgs)
}

func TestEvaluateAssertions_UnknownType(t *testing.T) {
	st, err := census.Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	require.NoError(t, st.WriteRun(ctx, "r", "x", 0, scan.NewReport()))
	msgs := EvaluateAssertions([]Assertion{{Type: "final_state"}}, &AssertionContext{Store: st, Ctx: ctx, RunID: "r"})
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], `unknown assertion type "final_state"`)
}

func TestAssertionError_Format(t *testing.T) {
	err := &AssertionError{Type: AssertRecognizedCount, Expected: "1", Actual: "2"}
	assert.Equal(t, "Assertion failed: recognized_count\n  Expected: 1\n  Actual: 2", err.Error())
}
