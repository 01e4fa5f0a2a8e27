// Package testutil provides shared helpers for gologo tests.
package testutil

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ScenariosDir is the relative path from the repository root to the
// conformance scenarios.
const ScenariosDir = "testdata/scenarios"

// Scenario is one YAML conformance case: a Logo program plus the trace
// and final turtle state it must produce, or the error it must fail with.
type Scenario struct {
	Name   string         `yaml:"name"`
	Source string         `yaml:"source"`
	Expect ExpectedResult `yaml:"expect"`
}

// ExpectedResult describes the expected outcome of executing a scenario.
type ExpectedResult struct {
	// ErrorCode, when set, requires the run to fail with this
	// diagnostic code.
	ErrorCode string `yaml:"errorCode,omitempty"`
	// Segments, when set, requires exactly this trace.
	Segments []ExpectedSegment `yaml:"segments"`
	// SegmentCount checks only the trace length when Segments is empty.
	SegmentCount *int `yaml:"segmentCount,omitempty"`
	// Final turtle state checks, each optional.
	X       *float64 `yaml:"x,omitempty"`
	Y       *float64 `yaml:"y,omitempty"`
	Heading *float64 `yaml:"heading,omitempty"`
	Color   *uint8   `yaml:"color,omitempty"`
}

// ExpectedSegment is one expected line in the trace.
type ExpectedSegment struct {
	FromX float64 `yaml:"fromX"`
	FromY float64 `yaml:"fromY"`
	ToX   float64 `yaml:"toX"`
	ToY   float64 `yaml:"toY"`
	Color uint8   `yaml:"color"`
}

// LoadScenarios loads every scenario from a YAML file. A file may hold a
// list of scenarios.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}

// ListScenarioFiles returns all YAML files under the given root.
func ListScenarioFiles(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := filepath.Ext(e.Name()); ext == ".yaml" || ext == ".yml" {
			files = append(files, filepath.Join(root, e.Name()))
		}
	}
	return files, nil
}
