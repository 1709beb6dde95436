// Package glushkov implements the Glushkov (position automaton) NFA
// constructor: it parses a desugared pattern into a RegexAst (package
// ast), numbers every character occurrence as a distinct position, and
// emits an ε-free NFA over nullable/first/last/follow sets.
//
// This constructor never introduces ε-transitions, so its Closure method
// is the identity — the other shape dfa.Determinise's Closure
// parametrisation accepts, alongside the Thompson constructor's real
// ε-closure.
package glushkov

import (
	"sort"

	"github.com/coregx/kernel/ast"
)

// NFA is the ε-free position automaton: states are positions (one per
// character occurrence in the pattern) plus a synthetic start state.
type NFA struct {
	letters  []byte       // position -> the character it emits
	follow   map[int][]int // position -> sorted, deduplicated following positions
	firstSet []int        // first(root), sorted
	lastSet  map[int]bool // last(root), for O(1) accept checks
	nullable bool         // whether root is nullable
	start    int          // synthetic start state id (= len(letters))
}

// Compile builds the Glushkov NFA for a desugared pattern.
func Compile(pattern string) *NFA {
	root := ast.Parse(pattern)

	a := &analyzer{follow: map[int]map[int]bool{}}
	nullable, first, last := a.analyze(root)

	follow := make(map[int][]int, len(a.follow))
	for p, set := range a.follow {
		ids := make([]int, 0, len(set))
		for q := range set {
			ids = append(ids, q)
		}
		sort.Ints(ids)
		follow[p] = ids
	}

	lastSet := make(map[int]bool, len(last))
	for _, p := range last {
		lastSet[p] = true
	}

	sorted := append([]int(nil), first...)
	sort.Ints(sorted)

	return &NFA{
		letters:  a.positions,
		follow:   follow,
		firstSet: sorted,
		lastSet:  lastSet,
		nullable: nullable,
		start:    len(a.positions),
	}
}

// Start returns the synthetic start state.
func (n *NFA) Start() int { return n.start }

// NumStates returns the number of states, including the synthetic start
// state: one per character occurrence in the pattern, plus one.
func (n *NFA) NumStates() int { return len(n.letters) + 1 }

// Alphabet returns every character emitted by some position.
func (n *NFA) Alphabet() []byte {
	seen := map[byte]bool{}
	for _, c := range n.letters {
		seen[c] = true
	}
	out := make([]byte, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	return out
}

// Closure is the identity function: this NFA has no ε-transitions.
func (n *NFA) Closure(states []int) []int { return states }

// Step returns the positions reachable from state by consuming c.
func (n *NFA) Step(state int, c byte) []int {
	var candidates []int
	if state == n.start {
		candidates = n.firstSet
	} else {
		candidates = n.follow[state]
	}
	var out []int
	for _, p := range candidates {
		if n.letters[p] == c {
			out = append(out, p)
		}
	}
	return out
}

// IsAccepting reports whether state is in last(root), or is the synthetic
// start and root is nullable.
func (n *NFA) IsAccepting(state int) bool {
	if state == n.start {
		return n.nullable
	}
	return n.lastSet[state]
}
