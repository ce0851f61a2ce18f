package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/svgattr/attribute"
)

// Scenario is one conformance test file.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Cases are single names to classify.
	Cases []Case `yaml:"cases,omitempty"`

	// Documents are SVG files to scan. Relative paths are resolved against
	// the directory of the scenario file.
	Documents []string `yaml:"documents,omitempty"`

	// Assertions are checked against the merged document report.
	Assertions []Assertion `yaml:"assertions,omitempty"`

	baseDir string
}

// Case is one classification check. An empty Expect means the input must be
// unrecognized.
type Case struct {
	Input  string  `yaml:"input"`
	Expect *string `yaml:"expect"`
}

// Assertion validates the merged document report.
type Assertion struct {
	// Type is one of attribute_count, recognized_count, unrecognized_contains.
	Type string `yaml:"type"`

	// Name is the attribute spelling (attribute_count, unrecognized_contains).
	Name string `yaml:"name,omitempty"`

	// Count is the expected number of occurrences.
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertAttributeCount       = "attribute_count"
	AssertRecognizedCount      = "recognized_count"
	AssertUnrecognizedContains = "unrecognized_contains"
)

// LoadScenario reads and validates a scenario file.
// Unknown fields are rejected so typos surface as errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	scenario.baseDir = filepath.Dir(path)

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// DocumentPath returns the resolved path of the i-th document.
func (s *Scenario) DocumentPath(i int) string {
	p := s.Documents[i]
	if filepath.IsAbs(p) || s.baseDir == "" {
		return p
	}
	return filepath.Join(s.baseDir, p)
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Cases) == 0 && len(s.Documents) == 0 {
		return fmt.Errorf("cases or documents list is required and must be non-empty")
	}

	if len(s.Assertions) > 0 && len(s.Documents) == 0 {
		return fmt.Errorf("assertions require at least one document")
	}

	for i, c := range s.Cases {
		if c.Expect == nil {
			return fmt.Errorf("cases[%d]: expect is required (use \"\" for unrecognized)", i)
		}
		if *c.Expect != "" {
			if _, ok := attribute.Lookup(*c.Expect); !ok {
				return fmt.Errorf("cases[%d]: expect %q is not a known attribute", i, *c.Expect)
			}
		}
	}

	for i := range s.Documents {
		if _, err := os.Stat(s.DocumentPath(i)); err != nil {
			return fmt.Errorf("documents[%d]: %w", i, err)
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, a); err != nil {
			return err
		}
	}

	return nil
}

func validateAssertion(index int, a Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertAttributeCount:
		if a.Name == "" {
			return fmt.Errorf("assertions[%d]: name is required for attribute_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for attribute_count", index)
		}
	case AssertRecognizedCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for recognized_count", index)
		}
	case AssertUnrecognizedContains:
		if a.Name == "" {
			return fmt.Errorf("assertions[%d]: name is required for unrecognized_contains", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
