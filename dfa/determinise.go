package dfa

import (
	"sort"
	"strconv"
	"strings"
)

// NFA is the interface the determiniser consumes. Both the Thompson ε-NFA
// and the Glushkov ε-free NFA implement it, letting one subset-construction
// routine handle both by taking a closure function as input: Thompson's
// Closure performs real ε-reachability, Glushkov's is the identity
// function.
type NFA interface {
	// Start returns the NFA's start state.
	Start() int

	// Alphabet returns every character that labels some transition, in
	// any order; Determinise only needs it to know which characters to
	// probe per DFA state.
	Alphabet() []byte

	// Closure returns the set of states reachable from states by zero or
	// more ε-transitions (the identity function for an ε-free NFA). The
	// result need not be sorted or deduplicated; Determinise normalises it.
	Closure(states []int) []int

	// Step returns the states directly reachable from state by consuming
	// c, with no closure applied.
	Step(state int, c byte) []int

	// IsAccepting reports whether state is one of the NFA's accepting
	// states.
	IsAccepting(state int) bool
}

// Determinise runs subset construction over n, taking ε-closures via
// n.Closure. DFA state numbering follows insertion order: the start state
// is always 0, and subsequent states are numbered in the order their
// underlying NFA subset is first discovered. The work is driven by an
// explicit worklist, not recursion, since the source NFA is generally
// cyclic (Kleene loops).
func Determinise(n NFA) *DFA {
	alphabet := sortedAlphabet(n.Alphabet())

	startSet := normalise(n.Closure([]int{n.Start()}))
	startKey := subsetKey(startSet)

	idOf := map[string]int{startKey: 0}
	subsets := [][]int{startSet}
	worklist := []int{0}

	var transitions []transition

	for len(worklist) > 0 {
		fromID := worklist[0]
		worklist = worklist[1:]
		fromSet := subsets[fromID]

		for _, c := range alphabet {
			var reachable []int
			for _, s := range fromSet {
				reachable = append(reachable, n.Step(s, c)...)
			}
			if len(reachable) == 0 {
				continue
			}
			next := normalise(n.Closure(reachable))
			if len(next) == 0 {
				continue
			}

			nextKey := subsetKey(next)
			toID, seen := idOf[nextKey]
			if !seen {
				toID = len(subsets)
				idOf[nextKey] = toID
				subsets = append(subsets, next)
				worklist = append(worklist, toID)
			}
			transitions = append(transitions, transition{from: fromID, char: c, to: toID})
		}
	}

	d := newDFA(len(subsets))
	for id, set := range subsets {
		for _, s := range set {
			if n.IsAccepting(s) {
				d.setAccepting(id, true)
				break
			}
		}
	}
	for _, t := range transitions {
		d.setTransition(t.from, t.char, t.to)
	}

	return d
}

type transition struct {
	from int
	char byte
	to   int
}

func normalise(states []int) []int {
	if len(states) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(states))
	out := make([]int, 0, len(states))
	for _, s := range states {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Ints(out)
	return out
}

// subsetKey produces a canonical key for a sorted, deduplicated state set:
// two equal sets (by value) always produce the same key, which is what
// lets the worklist below deduplicate subsets it has already visited.
func subsetKey(states []int) string {
	var b strings.Builder
	for i, s := range states {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s))
	}
	return b.String()
}

func sortedAlphabet(alphabet []byte) []byte {
	out := append([]byte(nil), alphabet...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
