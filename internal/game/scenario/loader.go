// Package scenario loads scripted roll sequences used to replay games.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is a named roll sequence with an optional expected final score.
type Scenario struct {
	Name  string
	Rolls []int
	// ExpectScore is nil when the script does not assert a score.
	ExpectScore *int
}

// Validate checks the scenario invariants. Roll values are not checked here;
// rejecting bad rolls is the scoring engine's job.
//
// Postcondition: Returns nil if valid, or an error describing the violation.
func (s Scenario) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("scenario name must not be empty")
	}
	if len(s.Rolls) == 0 {
		return fmt.Errorf("scenario %q has no rolls", s.Name)
	}
	if s.ExpectScore != nil && *s.ExpectScore < 0 {
		return fmt.Errorf("scenario %q expect_score must be >= 0, got %d", s.Name, *s.ExpectScore)
	}
	return nil
}

// yamlFile is the top-level YAML structure for scenario files.
type yamlFile struct {
	Scenarios []yamlScenario `yaml:"scenarios"`
}

type yamlScenario struct {
	Name        string `yaml:"name"`
	Rolls       []int  `yaml:"rolls"`
	ExpectScore *int   `yaml:"expect_score"`
}

// LoadFromFile reads and validates a scenario YAML file.
//
// Precondition: path must point to a YAML scenario file.
// Postcondition: Returns validated scenarios in file order or a non-nil error.
func LoadFromFile(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file %s: %w", path, err)
	}
	scenarios, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return scenarios, nil
}

// LoadFromBytes parses and validates scenarios from YAML bytes.
//
// Postcondition: Returns validated scenarios with unique names or a non-nil error.
func LoadFromBytes(data []byte) ([]Scenario, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	seen := make(map[string]bool, len(file.Scenarios))
	scenarios := make([]Scenario, 0, len(file.Scenarios))
	for _, ys := range file.Scenarios {
		s := Scenario{Name: ys.Name, Rolls: ys.Rolls, ExpectScore: ys.ExpectScore}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("validating scenario: %w", err)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
