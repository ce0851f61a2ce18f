// Package codegen renders the attribute package's generated Go source.
//
// A single validated source list yields both the Attribute constants and the
// perfect hash table that classifies names into them.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/roach88/svgattr/internal/attrlist"
	"github.com/roach88/svgattr/internal/phash"
)

// rowWidth is the number of table slots written per line.
const rowWidth = 16

// Input is everything Render needs.
type Input struct {
	Package string
	Source  string // shown in the header comment
	Entries []attrlist.Entry
	Table   *phash.Table
}

// ValidationFailedError is returned by Generate when the source list has errors.
type ValidationFailedError struct {
	Errors []attrlist.ValidationError
}

func (e *ValidationFailedError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d validation errors, first: %v", len(e.Errors), e.Errors[0])
}

var genTemplate = template.Must(template.New("gen").Parse(`// Code generated by svgattr generate. DO NOT EDIT.
// Source: {{.Source}}

package {{.Package}}

// Attribute kinds in source-list order.
const (
{{- range $i, $e := .Entries}}
	{{$e.Ident}}{{if eq $i 0}} Attribute = iota{{end}}
{{- end}}
)

var names = [...]string{
{{- range .Entries}}
	{{printf "%q" .Name}},
{{- end}}
}

// Count is the number of attribute kinds.
const Count = len(names)

// The last constant must be Count-1.
var (
	_ [Count - 1 - int({{.Last}})]struct{}
	_ [int({{.Last}}) + 1 - Count]struct{}
)

const (
	tableSeed  = {{printf "%#x" .Seed}}
	tableMask  = {{printf "%#x" .Mask}}
	maxNameLen = {{.MaxNameLen}}
)

// table maps Sum(tableSeed, name)&tableMask to the index of name in names, plus one.
var table = [{{.Size}}]uint8{
{{- range .Rows}}
	{{.}},
{{- end}}
}
`))

type templateData struct {
	Package    string
	Source     string
	Entries    []attrlist.Entry
	Last       string
	Seed       uint32
	Mask       uint32
	Size       int
	MaxNameLen int
	Rows       []string
}

// Render produces gofmt-formatted Go source for in.
func Render(in Input) ([]byte, error) {
	if len(in.Entries) == 0 {
		return nil, errors.New("codegen: no entries")
	}
	if in.Table == nil {
		return nil, errors.New("codegen: no table")
	}
	if in.Package == "" {
		return nil, errors.New("codegen: no package name")
	}

	data := templateData{
		Package: in.Package,
		Source:  in.Source,
		Entries: in.Entries,
		Last:    in.Entries[len(in.Entries)-1].Ident,
		Seed:    in.Table.Seed,
		Mask:    in.Table.Mask(),
		Size:    in.Table.Size(),
		Rows:    rows(in.Table.Slots),
	}
	for _, e := range in.Entries {
		if len(e.Name) > data.MaxNameLen {
			data.MaxNameLen = len(e.Name)
		}
	}

	var buf bytes.Buffer
	if err := genTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("codegen: executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: formatting output: %w", err)
	}
	return src, nil
}

// Generate validates list, builds its table and renders the package source.
func Generate(list *attrlist.List, pkg, source string, opts phash.Options) ([]byte, *phash.Table, error) {
	if errs := attrlist.Validate(list.Entries); len(errs) > 0 {
		return nil, nil, &ValidationFailedError{Errors: errs}
	}

	table, err := phash.Build(list.Names(), opts)
	if err != nil {
		return nil, nil, fmt.Errorf("codegen: building table: %w", err)
	}

	src, err := Render(Input{Package: pkg, Source: source, Entries: list.Entries, Table: table})
	if err != nil {
		return nil, nil, err
	}
	return src, table, nil
}

func rows(slots []uint8) []string {
	var out []string
	for start := 0; start < len(slots); start += rowWidth {
		end := min(start+rowWidth, len(slots))
		parts := make([]string, 0, end-start)
		for _, s := range slots[start:end] {
			parts = append(parts, fmt.Sprint(s))
		}
		out = append(out, strings.Join(parts, ", "))
	}
	return out
}
