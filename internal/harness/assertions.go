package harness

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/svgattr/internal/census"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// AssertionContext provides the census run assertions are checked against.
type AssertionContext struct {
	Store *census.Store
	Ctx   context.Context
	RunID string
}

// EvaluateAssertions checks every assertion and returns one message per failure.
func EvaluateAssertions(assertions []Assertion, actx *AssertionContext) []string {
	var errors []string
	if len(assertions) == 0 {
		return errors
	}

	if actx == nil || actx.Store == nil || actx.RunID == "" {
		return []string{"assertions require a stored document run"}
	}

	counts, err := actx.Store.Top(actx.Ctx, actx.RunID, 0)
	if err != nil {
		return []string{fmt.Sprintf("read census run %s: %v", actx.RunID, err)}
	}
	byName := make(map[string]census.Count, len(counts))
	for _, c := range counts {
		byName[c.Name] = c
	}

	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertAttributeCount:
			err = assertAttributeCount(byName, a)
		case AssertRecognizedCount:
			err = assertRecognizedCount(counts, a)
		case AssertUnrecognizedContains:
			err = assertUnrecognizedContains(byName, a)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, a.Type)
		}
		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}

func assertAttributeCount(byName map[string]census.Count, a Assertion) error {
	got := byName[a.Name].Count
	if got != a.Count {
		return &AssertionError{
			Type:     AssertAttributeCount,
			Expected: fmt.Sprintf("%q seen %d times", a.Name, a.Count),
			Actual:   fmt.Sprintf("%q seen %d times", a.Name, got),
		}
	}
	return nil
}

func assertRecognizedCount(counts []census.Count, a Assertion) error {
	got := 0
	for _, c := range counts {
		if c.Known {
			got += c.Count
		}
	}
	if got != a.Count {
		return &AssertionError{
			Type:     AssertRecognizedCount,
			Expected: fmt.Sprintf("%d recognized attributes", a.Count),
			Actual:   fmt.Sprintf("%d recognized attributes", got),
		}
	}
	return nil
}

func assertUnrecognizedContains(byName map[string]census.Count, a Assertion) error {
	c, seen := byName[a.Name]
	switch {
	case !seen:
		return &AssertionError{
			Type:     AssertUnrecognizedContains,
			Expected: fmt.Sprintf("%q seen as unrecognized", a.Name),
			Actual:   fmt.Sprintf("%q not seen", a.Name),
		}
	case c.Known:
		return &AssertionError{
			Type:     AssertUnrecognizedContains,
			Expected: fmt.Sprintf("%q seen as unrecognized", a.Name),
			Actual:   fmt.Sprintf("%q recognized", a.Name),
		}
	}
	return nil
}
