package nfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coregx/kernel/dfa"
	"github.com/coregx/kernel/internal/desugar"
	"github.com/coregx/kernel/nfa"
)

func accepts(t *testing.T, pattern, input string) bool {
	t.Helper()
	n := nfa.Compile(desugar.Desugar(pattern))
	d := dfa.Minimise(dfa.Determinise(n))
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

func TestCompile_Literal(t *testing.T) {
	assert.True(t, accepts(t, "abc", "abc"))
	assert.False(t, accepts(t, "abc", "abd"))
}

func TestCompile_Alternation(t *testing.T) {
	assert.True(t, accepts(t, "a|b", "a"))
	assert.True(t, accepts(t, "a|b", "b"))
	assert.False(t, accepts(t, "a|b", "c"))
}

func TestCompile_Star(t *testing.T) {
	assert.True(t, accepts(t, "a*", ""))
	assert.True(t, accepts(t, "a*", "aaaa"))
	assert.False(t, accepts(t, "a*", "aaab"))
}

func TestCompile_GroupedAlternationThenStar(t *testing.T) {
	assert.True(t, accepts(t, "(a|b)*c", "aabbac"))
	assert.False(t, accepts(t, "(a|b)*c", "aabba"))
}

func TestCompile_Escape(t *testing.T) {
	assert.True(t, accepts(t, `\.`, "."))
	assert.False(t, accepts(t, `\.`, "x"))
}

func TestCompile_Plus(t *testing.T) {
	assert.False(t, accepts(t, "a+", ""))
	assert.True(t, accepts(t, "a+", "aaa"))
}

func TestCompile_Optional(t *testing.T) {
	assert.True(t, accepts(t, "a?", ""))
	assert.True(t, accepts(t, "a?", "a"))
	assert.False(t, accepts(t, "a?", "aa"))
}
