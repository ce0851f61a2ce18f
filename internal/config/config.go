// Package config loads optional svgattr.toml settings.
//
// Every field has a default, and command-line flags override whatever the
// file sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/roach88/svgattr/internal/phash"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "svgattr.toml"

// Config holds generator, scanner and census settings.
type Config struct {
	Source   string       `toml:"source"`
	Output   string       `toml:"output"`
	Package  string       `toml:"package"`
	MaxSeeds uint32       `toml:"max_seeds"`
	MaxSize  int          `toml:"max_size"`
	Scan     ScanConfig   `toml:"scan"`
	Census   CensusConfig `toml:"census"`
}

// ScanConfig configures document scanning.
type ScanConfig struct {
	Workers int `toml:"workers"`
}

// CensusConfig configures the census database.
type CensusConfig struct {
	DB string `toml:"db"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Source:   "attribute/attributes.cue",
		Output:   "attribute/attribute_gen.go",
		Package:  "attribute",
		MaxSeeds: phash.DefaultMaxSeeds,
		MaxSize:  phash.DefaultMaxSize,
		Scan:     ScanConfig{Workers: 4},
	}
}

// PhashOptions returns the seed search limits.
func (c Config) PhashOptions() phash.Options {
	return phash.Options{MaxSeeds: c.MaxSeeds, MaxSize: c.MaxSize}
}

// Load reads path over Default(). A missing file is an error only when
// required is true; otherwise the defaults are returned.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Package == "" {
		errs = append(errs, errors.New("package must be non-empty"))
	}
	if c.MaxSeeds == 0 {
		errs = append(errs, errors.New("max_seeds must be positive"))
	}
	if c.MaxSize <= 0 || c.MaxSize&(c.MaxSize-1) != 0 {
		errs = append(errs, fmt.Errorf("max_size must be a power of two, got %d", c.MaxSize))
	}
	if c.Scan.Workers < 1 {
		errs = append(errs, fmt.Errorf("scan.workers must be at least 1, got %d", c.Scan.Workers))
	}
	return errors.Join(errs...)
}
