// Play() drives a console program with scripted input and returns the
// transcript. Run() executes a single scenario file; RunDir() discovers all
// *.json files in a directory and runs them as subtests.

package testkit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Program is a console session reading from in and writing to out. It must
// return once in is exhausted.
type Program func(ctx context.Context, in io.Reader, out io.Writer) error

// Timeout bounds a single Play call.
var Timeout = 5 * time.Second

// ─── Public API ───────────────────────────────────────────────────────────────

// Play feeds lines to program and returns everything it wrote.
func Play(t *testing.T, program Program, lines ...string) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	var out bytes.Buffer
	err := program(ctx, strings.NewReader(Script(lines...)), &out)
	require.NoError(t, err, "program failed\ntranscript:\n%s", out.String())
	require.NoError(t, ctx.Err(), "program did not finish within %s", Timeout)
	return out.String()
}

// Run executes a single scenario from a JSON file against program.
//
// Lifecycle per scenario:
//  1. Load the scenario JSON file.
//  2. Read input lines (inline or from inputFileName).
//  3. Play them through program.
//  4. Assert expected fragments appear in order.
//  5. Assert absent fragments never appear.
func Run(t *testing.T, program Program, scenarioPath string) {
	t.Helper()

	s, err := LoadScenario(scenarioPath)
	if err != nil {
		t.Fatalf("testkit: load scenario %q: %v", scenarioPath, err)
	}

	t.Run(s.Name, func(t *testing.T) {
		runScenario(t, program, s)
	})
}

// RunDir discovers every *.json file in dir and runs each as a t.Run subtest.
// Scenario files that fail to parse are reported as test failures (not fatal).
func RunDir(t *testing.T, program Program, dir string) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}

	for _, path := range entries {
		s, err := LoadScenario(path)
		if err != nil {
			t.Errorf("testkit: load %q: %v", path, err)
			continue
		}

		t.Run(s.Name, func(t *testing.T) {
			runScenario(t, program, s)
		})
	}
}

// ─── Internal execution ───────────────────────────────────────────────────────

func runScenario(t *testing.T, program Program, s *Scenario) {
	t.Helper()

	lines, err := s.Lines()
	if err != nil {
		t.Fatalf("[%s] %v", s.Name, err)
	}

	transcript := Play(t, program, lines...)

	AssertInOrder(t, s.Name, transcript, s.Expect...)
	AssertAbsent(t, s.Name, transcript, s.Absent...)
}

// ─── Debug helpers ────────────────────────────────────────────────────────────

// DumpScenario prints a human-readable summary of the scenario to stdout.
// Useful during test development to inspect what was loaded.
func DumpScenario(s *Scenario) {
	fmt.Printf("Scenario: %s\n", s.Name)
	fmt.Printf("  input: %q\n", s.Input)
	fmt.Printf("  inputFile: %s\n", s.InputFileName)
	for i, e := range s.Expect {
		fmt.Printf("  expect[%d]: %q\n", i, e)
	}
	for i, a := range s.Absent {
		fmt.Printf("  absent[%d]: %q\n", i, a)
	}
}
