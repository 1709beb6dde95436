// Package prefilter recognises the special case where a compiled pattern
// is a flat alternation of plain literal strings (e.g. "cat|dog|bird",
// with no star, no nested grouping) and, when it is, builds a multi-
// literal automaton that answers Find directly — skipping the DFA walk
// entirely, since every literal in the alternation is itself a complete
// match. It has no role in an anchored whole-string IsMatch query: "some
// literal occurs in the haystack" and "the haystack is exactly one of
// the literals" are different questions, so IsMatch always goes through
// the DFA instead (see Regex.IsMatch).
//
// coregex's own prefilter package documents this same strategy selection
// (single byte, single substring, few literals, "many literals →
// AhoCorasickPrefilter") as a front door in front of the full automaton;
// this package keeps only the many-literals case and backs it with the
// same automaton library used at that tier, github.com/coregx/ahocorasick,
// rather than reimplementing Aho-Corasick by hand.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/kernel/ast"
)

// Prefilter answers Find for a flat literal alternation without involving
// a DFA: a match reported by the underlying automaton already spans the
// full, unique way this pattern can match at that position.
type Prefilter struct {
	auto *ahocorasick.Automaton
}

// ExtractLiterals reports the literal alternatives root represents, and
// whether root is eligible: an Alternation (or bare Concat) whose every
// branch is a sequence of Char nodes with no Star, and where no branch is
// a byte-for-byte prefix of another. Patterns using `*` or `+` desugar into
// a Star, and `?` into an alternation with an empty branch, so they are
// never eligible here; `.` is eligible only where its expansion stands as
// the whole pattern, a flat alternation of single characters, and is
// otherwise nested inside a Concat. The no-prefix condition is what lets
// Find below report a single unambiguous leftmost-longest match: Aho-
// Corasick naturally reports the first literal it completes, which is
// only guaranteed to be the longest when no literal is a prefix of
// another starting at the same position.
func ExtractLiterals(root *ast.Node) ([][]byte, bool) {
	var branches []*ast.Node
	switch root.Kind {
	case ast.Alternation:
		branches = root.Children
	case ast.Concat, ast.Char:
		branches = []*ast.Node{root}
	default:
		return nil, false
	}

	literals := make([][]byte, 0, len(branches))
	for _, b := range branches {
		lit, ok := literalBytes(b)
		if !ok || len(lit) == 0 {
			return nil, false
		}
		literals = append(literals, lit)
	}

	for i, a := range literals {
		for j, b := range literals {
			if i != j && isPrefix(a, b) {
				return nil, false
			}
		}
	}

	return literals, true
}

func isPrefix(prefix, s []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if prefix[i] != s[i] {
			return false
		}
	}
	return true
}

// literalBytes returns n's literal text if n is a Char or a Concat of
// only Char children, in order.
func literalBytes(n *ast.Node) ([]byte, bool) {
	switch n.Kind {
	case ast.Char:
		return []byte{n.Letter}, true
	case ast.Concat:
		out := make([]byte, 0, len(n.Children))
		for _, c := range n.Children {
			if c.Kind != ast.Char {
				return nil, false
			}
			out = append(out, c.Letter)
		}
		return out, true
	default:
		return nil, false
	}
}

// Build constructs a Prefilter from a non-empty set of literal
// alternatives.
func Build(literals [][]byte) (*Prefilter, error) {
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Prefilter{auto: auto}, nil
}

// Find returns the leftmost match at or after at, as a complete
// [start, end) span.
func (p *Prefilter) Find(haystack []byte, at int) (start, end int, ok bool) {
	m := p.auto.Find(haystack, at)
	if m == nil {
		return 0, 0, false
	}
	return m.Start, m.End, true
}
