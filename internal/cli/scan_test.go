package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/svgattr/internal/census"
)

var (
	sampleSVG = filepath.Join("..", "scan", "testdata", "sample.svg")
	filterSVG = filepath.Join("..", "scan", "testdata", "filter.svg")
)

func TestScan_Text(t *testing.T) {
	stdout, err := executeCommand(t, "scan", "--top", "2", sampleSVG, filterSVG)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Scanned 2 file(s): 13 elements, 42 attributes, 36 recognized\n")
	assert.Contains(t, stdout, "Top attributes:")
	assert.Contains(t, stdout, "Unrecognized:")
	assert.Contains(t, stdout, `"xmlns"`)
	assert.NotContains(t, stdout, "Stored run")
}

func TestScan_JSON(t *testing.T) {
	stdout, err := executeCommand(t, "--format", "json", "scan", "--workers", "2", "--top", "0", sampleSVG)
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   ScanResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Data.Files)
	assert.Equal(t, 28, resp.Data.Attributes)
	assert.Equal(t, 24, resp.Data.Recognized)
	assert.Empty(t, resp.Data.RunID)
	require.Len(t, resp.Data.Unrecognized, 4)

	total := 0
	for _, c := range resp.Data.Top {
		total += c.Count
	}
	assert.Equal(t, 24, total)
}

func TestScan_MissingFile(t *testing.T) {
	_, err := executeCommand(t, "scan", filepath.Join(t.TempDir(), "gone.svg"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeScan)
}

func TestScanThenReport(t *testing.T) {
	db := filepath.Join(t.TempDir(), "census.db")

	stdout, err := executeCommand(t, "--format", "json", "scan", "--db", db, sampleSVG, filterSVG)
	require.NoError(t, err)
	var scanResp struct {
		Data ScanResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &scanResp))
	require.NotEmpty(t, scanResp.Data.RunID)

	stdout, err = executeCommand(t, "--format", "json", "report", "--db", db, "--limit", "3")
	require.NoError(t, err)
	var reportResp struct {
		Status string       `json:"status"`
		Data   ReportResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &reportResp))
	assert.Equal(t, scanResp.Data.RunID, reportResp.Data.Run.ID)
	assert.Equal(t, 2, reportResp.Data.Run.Files)
	assert.Equal(t, 42, reportResp.Data.Run.Attributes)
	require.Len(t, reportResp.Data.Counts, 3)
	assert.Equal(t, census.Count{Name: "height", Known: true, Count: 2}, reportResp.Data.Counts[0])

	stdout, err = executeCommand(t, "report", "--db", db, "--run", scanResp.Data.RunID)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Run "+scanResp.Data.RunID+" (#1)")
	assert.Contains(t, stdout, "? xmlns")

	stdout, err = executeCommand(t, "report", "--db", db, "--list")
	require.NoError(t, err)
	assert.Contains(t, stdout, scanResp.Data.RunID)
}

func TestReport_Errors(t *testing.T) {
	_, err := executeCommand(t, "report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no census database")

	db := filepath.Join(t.TempDir(), "empty.db")
	_, err = executeCommand(t, "report", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "run not found")

	stdout, err := executeCommand(t, "report", "--db", db, "--list")
	require.NoError(t, err)
	assert.Equal(t, "No runs stored.\n", stdout)
}
