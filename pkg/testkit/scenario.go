// Package testkit provides a JSON-scenario-driven console testing framework.
//
// Each scenario is a JSON file that describes:
//   - The lines typed at the console (inline or from a file)
//   - Fragments the transcript must contain, in order
//   - Fragments the transcript must never contain
//
// Scenario files live next to your *_test.go files:
//
//	testdata/
//	  register_and_login.json    ← scenario
//	  register_and_login.txt     ← input lines (optional)
//
// Example _test.go:
//
//	func TestScenarios(t *testing.T) {
//	    testkit.RunDir(t, shellProgram, "testdata")
//	}
package testkit

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ─── Schema ───────────────────────────────────────────────────────────────────

// Scenario describes a single console session loaded from a JSON file.
type Scenario struct {
	// Meta
	Name        string `json:"name"`
	Description string `json:"description"`

	// Input
	Input         []string `json:"input"`         // lines typed, in order
	InputFileName string   `json:"inputFileName"` // path to a file of input lines (relative to scenario dir)

	// Transcript assertions
	Expect []string `json:"expect"` // fragments that must appear in this order
	Absent []string `json:"absent"` // fragments that must not appear at all

	// resolved at load time, not in JSON
	dir string
}

// ─── Loading ──────────────────────────────────────────────────────────────────

// LoadScenario reads and validates a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("testkit: invalid scenario %q: %w", abs, err)
	}

	s.dir = filepath.Dir(abs)
	return &s, nil
}

// validate performs basic sanity checks on the loaded scenario.
func (s *Scenario) validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if len(s.Input) > 0 && s.InputFileName != "" {
		return errors.New("input and inputFileName are mutually exclusive")
	}
	if len(s.Expect) == 0 && len(s.Absent) == 0 {
		return errors.New("expect or absent is required")
	}
	for i, e := range s.Expect {
		if e == "" {
			return fmt.Errorf("expect[%d] is empty", i)
		}
	}
	return nil
}

// InputFilePath returns the absolute path to the input file, resolved
// relative to the scenario file's directory.
// Returns "" when InputFileName is not set.
func (s *Scenario) InputFilePath() string {
	if s.InputFileName == "" {
		return ""
	}
	if filepath.IsAbs(s.InputFileName) {
		return s.InputFileName
	}
	return filepath.Join(s.dir, s.InputFileName)
}

// Lines returns the console input of the scenario.
func (s *Scenario) Lines() ([]string, error) {
	p := s.InputFilePath()
	if p == "" {
		return s.Input, nil
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("testkit: open input %q: %w", p, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("testkit: read input %q: %w", p, err)
	}
	return lines, nil
}

// Script joins lines into console input, one per line.
func Script(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// LoadAllFromDir loads every *.json file in dir as a Scenario.
// Files that fail to parse are collected as errors, not panicked.
func LoadAllFromDir(dir string) ([]*Scenario, []error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		return nil, []error{fmt.Errorf("testkit: no scenario files found in %q", dir)}
	}

	var (
		scenarios []*Scenario
		errs      []error
	)
	for _, path := range entries {
		s, err := LoadScenario(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, errs
}
