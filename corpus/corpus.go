// Package corpus loads the conformance fixtures both constructors are
// tested against, matching the fixture-file style the aretext and alterx
// examples use for declarative test data (app/config.go's YAML config
// loading; alterx's permutations.yaml-backed InductionEntry).
package corpus

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Expectation is the expected [start, end) span for one Case's Input, or
// nil if the pattern must not match Input at all.
type Expectation struct {
	Start int
	End   int
}

// UnmarshalYAML accepts either `null` (no match expected) or a two-
// element sequence `[start, end]`.
func (e *Expectation) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		return nil
	}
	var pair [2]int
	if err := value.Decode(&pair); err != nil {
		return err
	}
	e.Start, e.End = pair[0], pair[1]
	return nil
}

// Match is one input/expectation pair to check against a compiled Case.
type Match struct {
	Input  string       `yaml:"input"`
	Expect *Expectation `yaml:"expect"`
}

// Case is one pattern and every input it is checked against.
type Case struct {
	Pattern string  `yaml:"pattern"`
	Matches []Match `yaml:"matches"`
}

// Load reads and parses a YAML conformance file such as
// testdata/conformance.yaml.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}
