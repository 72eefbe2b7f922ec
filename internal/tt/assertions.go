package tt

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// AssertTranscriptEqual fails the test with a unified line diff when the two
// prompt texts differ.
func AssertTranscriptEqual(t *testing.T, expected, actual string) bool {
	t.Helper()
	if expected == actual {
		return true
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  2,
	})
	t.Errorf("transcript mismatch:\n%s", diff)
	return false
}
