package testkit

import (
	"strings"

	"github.com/stretchr/testify/assert"
)

// TestingT is the subset of *testing.T the assertions need.
type TestingT interface {
	assert.TestingT
	Helper()
}

// AssertInOrder checks that each fragment occurs in transcript after the
// previous one. It reports the first fragment that is missing.
func AssertInOrder(t TestingT, name, transcript string, fragments ...string) bool {
	t.Helper()

	rest := transcript
	for i, f := range fragments {
		idx := strings.Index(rest, f)
		if idx < 0 {
			return assert.Fail(t, "fragment not found in order",
				"[%s] expect[%d] %q missing after %q\ntranscript:\n%s",
				name, i, f, previous(fragments, i), transcript)
		}
		rest = rest[idx+len(f):]
	}
	return true
}

// AssertAbsent checks that no fragment occurs anywhere in transcript.
func AssertAbsent(t TestingT, name, transcript string, fragments ...string) bool {
	t.Helper()

	ok := true
	for _, f := range fragments {
		ok = assert.NotContains(t, transcript, f, "[%s] unexpected fragment", name) && ok
	}
	return ok
}

// Count returns how many times fragment occurs in transcript.
func Count(transcript, fragment string) int {
	return strings.Count(transcript, fragment)
}

func previous(fragments []string, i int) string {
	if i == 0 {
		return "<start>"
	}
	return fragments[i-1]
}
