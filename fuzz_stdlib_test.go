package kernel_test

import (
	"regexp"
	"testing"

	kernel "github.com/coregx/kernel"
)

// hasEscapeSemanticDifference reports whether pattern contains a backslash
// escape stdlib gives special meaning to (\d, \w, \s, \b, ...) that this
// engine's grammar instead treats as a literal escape of the following
// byte. Patterns built only from the shared subset (literals, |, *, +, ?,
// ., grouping, and \-escapes of punctuation) never trigger this.
func hasEscapeSemanticDifference(pattern string) bool {
	for i := 0; i < len(pattern)-1; i++ {
		if pattern[i] != '\\' {
			continue
		}
		c := pattern[i+1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return true
		}
		i++ // skip the escaped byte itself
	}
	return false
}

// seedPatterns exercises every construct in the shared grammar subset:
// literals, \-escapes, |, *, +, ?, ., and grouping.
var seedPatterns = []string{
	"a", "ab", "a|b", "a*", "a+", "a?", "a.c",
	"(a|b)*c", "(ab)+", "a(a|b)a", `\.`, `\(`, "cat|dog",
}

var seedInputs = []string{
	"", "a", "b", "c", "aa", "ab", "ba", "abc", "aabbac", ".", "(", "cat", "dogs",
}

// FuzzFindAgreesWithStdlib compares Find against stdlib regexp for patterns
// and inputs restricted to the grammar subset both engines understand.
func FuzzFindAgreesWithStdlib(f *testing.F) {
	for _, p := range seedPatterns {
		for _, in := range seedInputs {
			f.Add(p, in)
		}
	}

	f.Fuzz(func(t *testing.T, pattern, input string) {
		if hasEscapeSemanticDifference(pattern) {
			return
		}

		stdRe, err := regexp.Compile(pattern)
		if err != nil {
			return
		}
		re, err := kernel.Compile(pattern)
		if err != nil {
			return
		}

		wantLoc := stdRe.FindStringIndex(input)
		got, ok := re.Find(input)

		if wantLoc == nil {
			if ok {
				t.Fatalf("pattern %q input %q: kernel matched [%d,%d), stdlib did not", pattern, input, got.Start, got.End)
			}
			return
		}
		if !ok {
			t.Fatalf("pattern %q input %q: stdlib matched %v, kernel did not", pattern, input, wantLoc)
		}
		if got.Start != wantLoc[0] || got.End != wantLoc[1] {
			t.Fatalf("pattern %q input %q: stdlib %v, kernel [%d,%d)", pattern, input, wantLoc, got.Start, got.End)
		}
	})
}
