package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	scenariosDir = filepath.Join("..", "harness", "testdata", "scenarios")
	goldenDir    = filepath.Join("..", "harness", "testdata", "golden")
)

func TestTest_AllScenariosPass(t *testing.T) {
	stdout, err := executeCommand(t, "test", "--golden", goldenDir, scenariosDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ core_names")
	assert.Contains(t, stdout, "✓ sample_document")
	assert.Contains(t, stdout, "Test Summary: 2 passed, 0 failed, 2 total")
}

func TestTest_FilterJSON(t *testing.T) {
	stdout, err := executeCommand(t, "--format", "json", "test", "--filter", "core_*", scenariosDir)
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, TestResult{
		Scenarios: []ScenarioResult{{Name: "core_names", Pass: true}},
		Passed:    1,
		Total:     1,
	}, resp.Data)
}

func TestTest_FailingScenario(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", `name: bad
description: "wrong expectation"
cases:
  - input: Fill
    expect: fill
`)

	stdout, err := executeCommand(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "✗ bad")
	assert.Contains(t, stdout, `"Fill" classified as unrecognized`)
	assert.Contains(t, stdout, "1 failed")
}

func TestTest_InvalidScenarioFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.yaml", "name: broken\n")

	stdout, err := executeCommand(t, "test", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "failed to load scenario")
}

func TestTest_GoldenUpdateAndMismatch(t *testing.T) {
	golden := filepath.Join(t.TempDir(), "golden")
	scenario := filepath.Join(scenariosDir, "core_names.yaml")

	_, err := executeCommand(t, "test", "--golden", golden, "--update", scenario)
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(golden, "core_names.golden"))
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join(goldenDir, "core_names.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(written))

	require.NoError(t, os.WriteFile(filepath.Join(golden, "core_names.golden"), []byte("{}\n"), 0o644))
	stdout, err := executeCommand(t, "test", "--golden", golden, scenario)
	require.Error(t, err)
	assert.Contains(t, stdout, "does not match golden file")
}

func TestTest_CommandErrors(t *testing.T) {
	_, err := executeCommand(t, "test", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = executeCommand(t, "test", "--update", scenariosDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--update requires --golden")
}
