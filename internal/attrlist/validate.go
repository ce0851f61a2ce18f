package attrlist

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/svgattr/internal/phash"
)

// Validation error codes (E200-E299)
const (
	ErrEmptyName      = "E201" // name is required
	ErrDuplicateName  = "E202" // name listed twice
	ErrDuplicateIdent = "E203" // identifier listed twice
	ErrInvalidIdent   = "E204" // not an exported Go identifier
	ErrNameNotNFC     = "E205" // name is not in Unicode NFC
	ErrNameWhitespace = "E206" // name contains whitespace
	ErrTooManyEntries = "E207" // does not fit the tag type
	ErrNameControl    = "E208" // name contains control characters
	ErrReservedIdent  = "E209" // identifier clashes with package API
)

// reservedIdents are exported names the attribute package declares by hand.
var reservedIdents = map[string]bool{
	"Attribute":   true,
	"Count":       true,
	"All":         true,
	"Lookup":      true,
	"LookupBytes": true,
	"FromName":    true,
	"IsHref":      true,
	"HrefSlot":    true,
}

// ValidationError represents a source list validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks the entries for everything the generator relies on.
// Returns all errors found (does not fail-fast).
func Validate(entries []Entry) []ValidationError {
	var errs []ValidationError

	if len(entries) > phash.MaxKeys {
		errs = append(errs, ValidationError{
			Field:   "attributes",
			Message: fmt.Sprintf("%d entries exceed the limit of %d", len(entries), phash.MaxKeys),
			Code:    ErrTooManyEntries,
		})
	}

	names := make(map[string]int, len(entries))
	idents := make(map[string]int, len(entries))

	for i, e := range entries {
		line := lineOf(e)
		field := fmt.Sprintf("attributes[%d]", i)

		if e.Name == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: "name is required and must be non-empty",
				Code:    ErrEmptyName,
				Line:    line,
			})
		} else {
			errs = append(errs, checkSpelling(field+".name", e.Name, line)...)
			if j, ok := names[e.Name]; ok {
				errs = append(errs, ValidationError{
					Field:   field + ".name",
					Message: fmt.Sprintf("duplicate name %q (first at attributes[%d])", e.Name, j),
					Code:    ErrDuplicateName,
					Line:    line,
				})
			} else {
				names[e.Name] = i
			}
		}

		if !isExportedIdent(e.Ident) {
			errs = append(errs, ValidationError{
				Field:   field + ".ident",
				Message: fmt.Sprintf("%q is not an exported Go identifier", e.Ident),
				Code:    ErrInvalidIdent,
				Line:    line,
			})
			continue
		}
		if reservedIdents[e.Ident] {
			errs = append(errs, ValidationError{
				Field:   field + ".ident",
				Message: fmt.Sprintf("%q is already declared by the attribute package", e.Ident),
				Code:    ErrReservedIdent,
				Line:    line,
			})
		}
		if j, ok := idents[e.Ident]; ok {
			errs = append(errs, ValidationError{
				Field:   field + ".ident",
				Message: fmt.Sprintf("duplicate ident %q (first at attributes[%d])", e.Ident, j),
				Code:    ErrDuplicateIdent,
				Line:    line,
			})
		} else {
			idents[e.Ident] = i
		}
	}

	return errs
}

// checkSpelling enforces that a canonical name can be matched byte-for-byte
// against names as they appear in documents.
func checkSpelling(field, name string, line int) []ValidationError {
	var errs []ValidationError

	hasSpace, hasControl := false, false
	for _, r := range name {
		switch {
		case unicode.IsSpace(r):
			hasSpace = true
		case unicode.IsControl(r):
			hasControl = true
		}
	}

	if hasSpace {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("name %q contains whitespace", name),
			Code:    ErrNameWhitespace,
			Line:    line,
		})
	}
	if hasControl {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("name %q contains control characters", name),
			Code:    ErrNameControl,
			Line:    line,
		})
	}
	if !norm.NFC.IsNormalString(name) {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("name %q is not NFC-normalized", name),
			Code:    ErrNameNotNFC,
			Line:    line,
		})
	}

	return errs
}

func isExportedIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func lineOf(e Entry) int {
	if e.Pos.IsValid() {
		return e.Pos.Line()
	}
	return 0
}
