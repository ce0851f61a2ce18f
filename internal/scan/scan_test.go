package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/svgattr/attribute"
)

func TestDocument_Sample(t *testing.T) {
	report, err := File(filepath.Join("testdata", "sample.svg"))
	require.NoError(t, err)

	assert.Equal(t, 8, report.Elements)
	assert.Equal(t, 28, report.Attributes)
	assert.Equal(t, 24, report.Recognized())

	assert.Equal(t, 2, report.Known[attribute.Width])
	assert.Equal(t, 2, report.Known[attribute.Height])
	assert.Equal(t, 2, report.Known[attribute.StopColor])
	assert.Equal(t, 1, report.Known[attribute.XLinkHref])
	assert.Equal(t, 1, report.Known[attribute.Href])
	assert.Equal(t, 1, report.Known[attribute.XMLSpace])
	assert.Equal(t, 1, report.Known[attribute.ViewBox])
	assert.Equal(t, 1, report.Known[attribute.Fill])
	assert.Equal(t, 0, report.Known[attribute.Encoding], "<?xml?> attributes are not element attributes")

	assert.Equal(t, map[string]int{
		"xmlns":       1,
		"xmlns:xlink": 1,
		"data-custom": 1,
		"Fill":        1,
	}, report.Unknown)
}

func TestDocument_Inline(t *testing.T) {
	report, err := Document(strings.NewReader(`<g transform="scale(2)" TRANSFORM="x"><path d="M0 0"/></g>`))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Elements)
	assert.Equal(t, 3, report.Attributes)
	assert.Equal(t, 1, report.Known[attribute.Transform])
	assert.Equal(t, 1, report.Known[attribute.D])
	assert.Equal(t, map[string]int{"TRANSFORM": 1}, report.Unknown)
}

func TestDocument_Empty(t *testing.T) {
	report, err := Document(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Elements)
	assert.Equal(t, 0, report.Attributes)
	assert.Empty(t, report.Unknown)
}

func TestCounts_Ordering(t *testing.T) {
	report, err := File(filepath.Join("testdata", "sample.svg"))
	require.NoError(t, err)

	counts := report.Counts()
	require.NotEmpty(t, counts)

	top := counts[:4]
	assert.Equal(t, []KindCount{
		{Attribute: attribute.Height, Name: "height", Count: 2},
		{Attribute: attribute.Offset, Name: "offset", Count: 2},
		{Attribute: attribute.StopColor, Name: "stop-color", Count: 2},
		{Attribute: attribute.Width, Name: "width", Count: 2},
	}, top)

	total := 0
	for _, c := range counts {
		total += c.Count
	}
	assert.Equal(t, report.Recognized(), total)
}

func TestUnknownCounts_Ordering(t *testing.T) {
	report := NewReport()
	report.Unknown["b"] = 1
	report.Unknown["a"] = 1
	report.Unknown["z"] = 3

	assert.Equal(t, []NameCount{
		{Name: "z", Count: 3},
		{Name: "a", Count: 1},
		{Name: "b", Count: 1},
	}, report.UnknownCounts())
}

func TestMerge(t *testing.T) {
	sample, err := File(filepath.Join("testdata", "sample.svg"))
	require.NoError(t, err)
	filter, err := File(filepath.Join("testdata", "filter.svg"))
	require.NoError(t, err)

	merged := Merge(sample, filter)
	assert.Equal(t, 13, merged.Elements)
	assert.Equal(t, 42, merged.Attributes)
	assert.Equal(t, 2, merged.Unknown["xmlns"])
	assert.Equal(t, 1, merged.Unknown["onclick"])
	assert.Equal(t, 2, merged.Known[attribute.In])
	assert.Equal(t, sample.Recognized()+filter.Recognized(), merged.Recognized())

	// Inputs are not modified.
	assert.Equal(t, 1, sample.Unknown["xmlns"])
}

func TestFile_NotFound(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.svg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFiles_KeepsOrder(t *testing.T) {
	paths := []string{
		filepath.Join("testdata", "filter.svg"),
		filepath.Join("testdata", "sample.svg"),
		filepath.Join("testdata", "filter.svg"),
	}

	results, err := Files(context.Background(), paths, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
	}
	assert.Equal(t, 5, results[0].Report.Elements)
	assert.Equal(t, 8, results[1].Report.Elements)
	assert.Equal(t, results[0].Report.Known, results[2].Report.Known)
}

func TestFiles_ErrorStopsScan(t *testing.T) {
	paths := []string{
		filepath.Join("testdata", "sample.svg"),
		filepath.Join(t.TempDir(), "missing.svg"),
	}

	_, err := Files(context.Background(), paths, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.svg")
}

func TestFiles_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Files(ctx, []string{filepath.Join("testdata", "sample.svg")}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFiles_ZeroWorkers(t *testing.T) {
	results, err := Files(context.Background(), []string{filepath.Join("testdata", "filter.svg")}, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 14, results[0].Report.Attributes)
}
