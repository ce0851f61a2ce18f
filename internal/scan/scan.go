// Package scan tokenizes SVG documents and classifies every attribute name.
//
// It is the reference caller of the attribute package: one Lookup per
// attribute, with unrecognized names tallied verbatim instead of failing.
package scan

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"golang.org/x/sync/errgroup"

	"github.com/roach88/svgattr/attribute"
)

// Report tallies the attribute names seen in one or more documents.
type Report struct {
	Elements   int                  `json:"elements"`
	Attributes int                  `json:"attributes"`
	Known      [attribute.Count]int `json:"-"`
	Unknown    map[string]int       `json:"-"`
}

// KindCount is the number of occurrences of one recognized attribute.
type KindCount struct {
	Attribute attribute.Attribute `json:"-"`
	Name      string              `json:"name"`
	Count     int                 `json:"count"`
}

// NameCount is the number of occurrences of one unrecognized spelling.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{Unknown: make(map[string]int)}
}

// Recognized returns how many attributes classified to a known kind.
func (r *Report) Recognized() int {
	n := 0
	for _, c := range r.Known {
		n += c
	}
	return n
}

// Counts returns the recognized kinds that occurred, most frequent first.
// Ties are broken by Attribute order.
func (r *Report) Counts() []KindCount {
	var out []KindCount
	for i, c := range r.Known {
		if c == 0 {
			continue
		}
		a := attribute.Attribute(i)
		out = append(out, KindCount{Attribute: a, Name: a.String(), Count: c})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// UnknownCounts returns the unrecognized spellings, most frequent first.
// Ties are broken by name.
func (r *Report) UnknownCounts() []NameCount {
	out := make([]NameCount, 0, len(r.Unknown))
	for name, c := range r.Unknown {
		out = append(out, NameCount{Name: name, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Add folds other into r.
func (r *Report) Add(other *Report) {
	r.Elements += other.Elements
	r.Attributes += other.Attributes
	for i, c := range other.Known {
		r.Known[i] += c
	}
	for name, c := range other.Unknown {
		r.Unknown[name] += c
	}
}

// Merge returns a new report combining all of reports.
func Merge(reports ...*Report) *Report {
	merged := NewReport()
	for _, r := range reports {
		merged.Add(r)
	}
	return merged
}

// Document reads one XML document and classifies the attributes of every
// element. Attributes of processing instructions such as <?xml ...?> are not
// element attributes and are skipped.
func Document(r io.Reader) (*Report, error) {
	report := NewReport()
	lexer := xml.NewLexer(parse.NewInput(r))
	inPI := false

	for {
		tt, _ := lexer.Next()
		switch tt {
		case xml.ErrorToken:
			if err := lexer.Err(); err != io.EOF {
				return report, fmt.Errorf("scan: %w", err)
			}
			return report, nil
		case xml.StartTagPIToken:
			inPI = true
		case xml.StartTagClosePIToken:
			inPI = false
		case xml.StartTagToken:
			report.Elements++
		case xml.AttributeToken:
			if inPI {
				continue
			}
			report.Attributes++
			name := lexer.Text()
			if a, ok := attribute.LookupBytes(name); ok {
				report.Known[a]++
			} else {
				report.Unknown[string(name)]++
			}
		}
	}
}

// File scans the document at path.
func File(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	defer f.Close()

	report, err := Document(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return report, nil
}

// FileReport is the result for one input file.
type FileReport struct {
	Path   string  `json:"path"`
	Report *Report `json:"report"`
}

// Files scans paths with up to workers goroutines. Results keep the order of
// paths. The first error cancels the remaining files and is returned.
func Files(ctx context.Context, paths []string, workers int) ([]FileReport, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]FileReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := File(path)
			if err != nil {
				return err
			}
			slog.Debug("scanned document",
				"path", path,
				"elements", report.Elements,
				"attributes", report.Attributes,
				"unrecognized", report.Attributes-report.Recognized(),
			)
			results[i] = FileReport{Path: path, Report: report}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
