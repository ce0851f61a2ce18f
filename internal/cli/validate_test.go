package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/svgattr/internal/attrlist"
)

func TestValidate_SourceList(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{sourcePath})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "✓ "+sourcePath+" valid (146 attributes)\n", buf.String())
}

func TestValidate_SourceListJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{sourcePath})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	assert.Equal(t, 146, resp.Data.Count)
}

func TestValidate_NotFound(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"/nonexistent/attributes.cue"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), attrlist.ErrCodeNotFound)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestValidate_Errors(t *testing.T) {
	src := writeFile(t, t.TempDir(), "bad.cue", `attributes: [
	{name: "fill", ident: "Fill"},
	{name: "stroke", ident: "Fill"},
	{name: "fill", ident: "Fill3"},
]
`)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{src})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), attrlist.ErrDuplicateIdent)
	assert.Contains(t, buf.String(), attrlist.ErrDuplicateName)
}

func TestValidate_ErrorsJSON(t *testing.T) {
	src := writeFile(t, t.TempDir(), "bad.cue", `attributes: [
	{name: "fill", ident: "Fill"},
	{name: "fill", ident: "Fill2"},
]
`)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{src})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
		Error  *CLIError        `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.False(t, resp.Data.Valid)
	require.Len(t, resp.Data.Errors, 1)
	assert.Equal(t, attrlist.ErrDuplicateName, resp.Error.Code)
}

func TestValidate_SchemaViolation(t *testing.T) {
	src := writeFile(t, filepath.Clean(t.TempDir()), "schema.cue", `attributes: [
	{name: "fill", ident: "fill"},
]
`)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{src})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), attrlist.ErrCodeBuildFailed)
}
