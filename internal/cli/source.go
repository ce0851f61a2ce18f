package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/svgattr/internal/attrlist"
)

// ValidationResult holds source list validation results.
type ValidationResult struct {
	Valid  bool                       `json:"valid"`
	Source string                     `json:"source"`
	Count  int                        `json:"count"`
	Errors []attrlist.ValidationError `json:"errors,omitempty"`
}

// loadSource loads the source list at path. Load failures are written through
// f and returned as command errors.
func loadSource(f *OutputFormatter, path string) (*attrlist.List, error) {
	slog.Debug("loading attribute list", "path", path)

	list, err := attrlist.Load(path)
	if err != nil {
		var loadErr *attrlist.LoadError
		if errors.As(err, &loadErr) {
			var details any
			if loadErr.Pos.IsValid() {
				details = map[string]any{"line": loadErr.Pos.Line(), "column": loadErr.Pos.Column()}
			}
			return nil, f.Fail(ExitCommandError, loadErr.Code, loadErr.Message, nil, details)
		}
		return nil, f.Fail(ExitCommandError, attrlist.ErrCodeGeneric, err.Error(), nil, nil)
	}

	slog.Debug("attribute list loaded", "entries", len(list.Entries))
	return list, nil
}

// outputValidationErrors reports every validation error and returns an
// ExitFailure error.
func outputValidationErrors(f *OutputFormatter, source string, count int, errs []attrlist.ValidationError) error {
	if f.Format == "json" {
		result := ValidationResult{Valid: false, Source: source, Count: count, Errors: errs}
		return f.Fail(ExitFailure, errs[0].Code, errs[0].Message, result, nil)
	}

	w := f.Writer
	fmt.Fprintln(w, "✗ Validation failed")
	fmt.Fprintln(w)
	for _, e := range errs {
		writeValidationError(w, e)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}

func writeValidationError(w io.Writer, e attrlist.ValidationError) {
	if e.Line > 0 {
		fmt.Fprintf(w, "line %d\n", e.Line)
	}
	fmt.Fprintf(w, "  %s: %s: %s\n\n", e.Code, e.Field, e.Message)
}
