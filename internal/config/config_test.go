package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/svgattr/internal/phash"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "svgattr.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "attribute", cfg.Package)
	assert.Equal(t, "attribute/attributes.cue", cfg.Source)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, phash.Options{MaxSeeds: phash.DefaultMaxSeeds, MaxSize: phash.DefaultMaxSize}, cfg.PhashOptions())
}

func TestLoad_MissingOptional(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.toml"), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
source = "list.cue"
package = "svgattrs"
max_seeds = 1024

[scan]
workers = 8

[census]
db = "census.db"
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "list.cue", cfg.Source)
	assert.Equal(t, "attribute/attribute_gen.go", cfg.Output, "unset keys keep defaults")
	assert.Equal(t, "svgattrs", cfg.Package)
	assert.Equal(t, uint32(1024), cfg.MaxSeeds)
	assert.Equal(t, 8, cfg.Scan.Workers)
	assert.Equal(t, "census.db", cfg.Census.DB)
}

func TestLoad_UnknownKeys(t *testing.T) {
	path := writeConfig(t, `
pakage = "typo"

[scan]
threads = 2
`)

	_, err := Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pakage")
	assert.Contains(t, err.Error(), "scan.threads")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
max_size = 1000

[scan]
workers = 0
`)

	_, err := Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_size")
	assert.Contains(t, err.Error(), "scan.workers")
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, `source = `)

	_, err := Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}
