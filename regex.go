// Package kernel compiles a pattern into a minimised DFA through one of
// two interchangeable front ends (Thompson ε-NFA or Glushkov position
// automaton), sharing a single subset-construction and Hopcroft-style
// minimisation backend, and exposes IsMatch/Find/FindAll over the
// result.
package kernel

import (
	"github.com/coregx/kernel/ast"
	"github.com/coregx/kernel/dfa"
	"github.com/coregx/kernel/executor"
	"github.com/coregx/kernel/glushkov"
	"github.com/coregx/kernel/internal/desugar"
	"github.com/coregx/kernel/internal/validator"
	"github.com/coregx/kernel/nfa"
	"github.com/coregx/kernel/prefilter"
)

// Regex is a compiled pattern ready for matching.
type Regex struct {
	pattern string
	d       *dfa.DFA

	// pf is set only when the pattern is a flat alternation of
	// non-prefixing literals (prefilter.ExtractLiterals), letting
	// Find/FindAll bypass the DFA walk entirely. IsMatch never consults
	// it: it answers an unanchored substring question, not the anchored
	// whole-string one IsMatch needs.
	pf *prefilter.Prefilter
}

// Match is a half-open byte range [Start, End) within a searched input.
type Match = executor.Match

// Compile validates and compiles pattern using DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics on error, for use with
// compile-time-constant patterns.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// CompileWithConfig validates and compiles pattern under cfg, choosing the
// NFA front end cfg.Constructor selects.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if depth := maxParenDepth(pattern); depth > cfg.MaxRecursionDepth {
		return nil, newSyntaxError(pattern, -1, ErrTooDeeplyNested)
	}

	if err := validator.Validate(pattern); err != nil {
		pos, cause := -1, err
		if ve, ok := err.(*validator.Error); ok {
			pos, cause = ve.Pos, ve.Reason
		}
		return nil, newSyntaxError(pattern, pos, cause)
	}

	desugared := desugar.Desugar(pattern)

	var det *dfa.DFA
	switch cfg.Constructor {
	case ConstructorGlushkov:
		g := glushkov.Compile(desugared)
		if cfg.MaxNFAStates > 0 && g.NumStates() > cfg.MaxNFAStates {
			return nil, newSyntaxError(pattern, -1, ErrTooManyStates)
		}
		det = dfa.Determinise(g)
	default:
		n := nfa.Compile(desugared)
		if cfg.MaxNFAStates > 0 && len(n.States) > cfg.MaxNFAStates {
			return nil, newSyntaxError(pattern, -1, ErrTooManyStates)
		}
		det = dfa.Determinise(n)
	}

	re := &Regex{pattern: pattern, d: dfa.Minimise(det)}
	if lits, ok := prefilter.ExtractLiterals(ast.Parse(desugared)); ok {
		if pf, err := prefilter.Build(lits); err == nil {
			re.pf = pf
		}
	}
	return re, nil
}

// maxParenDepth returns the deepest '(' nesting level in pattern, without
// regard to whether parentheses balance (Validate catches that
// separately).
func maxParenDepth(pattern string) int {
	depth, max := 0, 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '(':
			depth++
			if depth > max {
				max = depth
			}
		case ')':
			depth--
		}
	}
	return max
}

// String returns the original pattern text.
func (re *Regex) String() string { return re.pattern }

// IsMatch reports whether re matches input in full: every byte of input
// consumed, landing on an accepting state. This always walks the DFA
// directly, even when re.pf is set — the literal prefilter answers
// "does this literal occur somewhere in the haystack", which is the
// unanchored Find question, not this one.
func (re *Regex) IsMatch(input string) bool {
	return executor.IsMatch(re.d, input)
}

// Find returns the leftmost-longest match in input, if any.
func (re *Regex) Find(input string) (Match, bool) {
	if re.pf != nil {
		start, end, ok := re.pf.Find([]byte(input), 0)
		if !ok {
			return Match{}, false
		}
		return Match{Start: start, End: end}, true
	}
	start, end, ok := executor.Find(re.d, input, 0)
	if !ok {
		return Match{}, false
	}
	return Match{Start: start, End: end}, true
}

// FindAll returns every non-overlapping leftmost-longest match in input,
// left to right.
func (re *Regex) FindAll(input string) []Match {
	if re.pf != nil {
		return re.findAllPrefilter(input)
	}
	return executor.FindAll(re.d, input)
}

func (re *Regex) findAllPrefilter(input string) []Match {
	haystack := []byte(input)
	var matches []Match
	for i := 0; i <= len(haystack); {
		start, end, ok := re.pf.Find(haystack, i)
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
