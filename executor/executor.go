// Package executor implements three query operations as a small state
// machine — scanning for a candidate start position, extending a
// candidate match to its longest accepting extent, and reporting a
// terminal result — all driven by the shared DFA produced by either
// front end plus determinisation and minimisation.
package executor

import "github.com/coregx/kernel/dfa"

// Match is a half-open byte range [Start, End) within the searched input.
type Match struct {
	Start, End int
}

// matchFrom runs d over input starting at byte offset from, tracking the
// longest prefix that lands on an accepting state (leftmost-longest
// semantics). It stops early the first time a transition is undefined,
// since no longer extension from that point can succeed.
func matchFrom(d *dfa.DFA, input string, from int) (end int, ok bool) {
	state := d.Start
	longest := -1
	if d.IsAccepting(state) {
		longest = from
	}
	for j := from; j < len(input); j++ {
		next, stepOK := d.Step(state, input[j])
		if !stepOK {
			break
		}
		state = next
		if d.IsAccepting(state) {
			longest = j + 1
		}
	}
	if longest == -1 {
		return 0, false
	}
	return longest, true
}

// Find returns the leftmost-longest match starting at or after from, by
// trying successive candidate start positions until one yields an
// accepting extension. It returns ok=false if no match exists in
// input[from:].
func Find(d *dfa.DFA, input string, from int) (start, end int, ok bool) {
	for i := from; i <= len(input); i++ {
		if e, matched := matchFrom(d, input, i); matched {
			return i, e, true
		}
	}
	return 0, 0, false
}

// IsMatch reports whether pattern matches input as a whole: every byte of
// input must be consumed and the resulting state must be accepting. This
// is a different algorithm from Find, not a wrapper around it — an
// undefined transition anywhere fails the match immediately, even if a
// strict substring of input would itself satisfy the automaton.
func IsMatch(d *dfa.DFA, input string) bool {
	state := d.Start
	for i := 0; i < len(input); i++ {
		next, ok := d.Step(state, input[i])
		if !ok {
			return false
		}
		state = next
	}
	return d.IsAccepting(state)
}

// FindAll returns every non-overlapping leftmost-longest match in input,
// left to right. A match advances the scan to its end; an empty match
// (End == Start, possible for a nullable pattern) instead advances by one
// byte so the scan always makes forward progress and never reports the
// same empty match twice.
func FindAll(d *dfa.DFA, input string) []Match {
	var matches []Match
	for i := 0; i <= len(input); {
		start, end, ok := Find(d, input, i)
		if !ok {
			break
		}
		matches = append(matches, Match{Start: start, End: end})
		if end == start {
			i = start + 1
		} else {
			i = end
		}
	}
	return matches
}
