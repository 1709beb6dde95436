// Package validator checks a pattern string against the kernel grammar
// before any constructor sees it.
//
//	E  := T ('|' T)*
//	T  := F*
//	F  := A '*'? | A '+'? | A '?'?
//	A  := literal | '\' any-char | '(' E ')' | '.'
//
// Validation is a pure accept/reject pass: it never transforms the pattern.
package validator

import "github.com/pkg/errors"

// Sentinel errors identifying why a pattern was rejected. Reason returns
// the relevant one from the *Error produced by Validate.
var (
	ErrEmptyPattern       = errors.New("empty pattern")
	ErrUnbalancedParen    = errors.New("unbalanced parenthesis")
	ErrDanglingQuantifier = errors.New("quantifier without operand")
	ErrRepeatedQuantifier = errors.New("repeated quantifier")
	ErrDanglingEscape     = errors.New("dangling escape")
	ErrTrailingBar        = errors.New("trailing alternation bar")
)

// Error reports a validation failure at a specific byte offset. Pos is -1
// when the failure (e.g. ErrEmptyPattern) has no single offending index.
type Error struct {
	Pos    int
	Reason error
}

func (e *Error) Error() string {
	return e.Reason.Error()
}

func (e *Error) Unwrap() error {
	return e.Reason
}

func fail(pos int, reason error) *Error {
	return &Error{Pos: pos, Reason: reason}
}

// isQuantifier reports whether c is one of the postfix repetition operators
// handled at this layer. '?' is included because the validator must accept
// it even though the desugarer is the one that expands it.
func isQuantifier(c byte) bool {
	return c == '*' || c == '+' || c == '?'
}

// Validate reports whether pattern conforms to the kernel grammar. It
// returns nil on success or an *Error describing the first violation found
// scanning left to right.
func Validate(pattern string) error {
	if len(pattern) == 0 {
		return fail(-1, ErrEmptyPattern)
	}

	depth := 0
	// lastWasAtomEnd tracks whether the immediately preceding character
	// completed an atom (literal, escape, or ')'), which is what a
	// quantifier or a following atom needs to attach to.
	lastWasAtomEnd := false
	// groupHasAtom gets an entry pushed on '(' and popped on ')'; it tracks
	// whether any atom has been seen since the most recent unmatched '('
	// or '|', so a quantifier as the first token of a group is rejected.
	groupHasAtom := []bool{true} // sentinel for the top-level sequence
	lastWasQuantifier := false

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\':
			if i+1 >= len(pattern) {
				return fail(i, ErrDanglingEscape)
			}
			i++ // consume the escaped character
			lastWasAtomEnd = true
			lastWasQuantifier = false
			groupHasAtom[len(groupHasAtom)-1] = true

		case c == '(':
			depth++
			groupHasAtom = append(groupHasAtom, false)
			lastWasAtomEnd = false
			lastWasQuantifier = false

		case c == ')':
			if depth == 0 {
				return fail(i, ErrUnbalancedParen)
			}
			depth--
			groupHasAtom = groupHasAtom[:len(groupHasAtom)-1]
			groupHasAtom[len(groupHasAtom)-1] = true
			lastWasAtomEnd = true
			lastWasQuantifier = false

		case c == '|':
			if i == len(pattern)-1 {
				return fail(i, ErrTrailingBar)
			}
			groupHasAtom[len(groupHasAtom)-1] = false
			lastWasAtomEnd = false
			lastWasQuantifier = false

		case isQuantifier(c):
			if lastWasQuantifier {
				return fail(i, ErrRepeatedQuantifier)
			}
			if !lastWasAtomEnd || !groupHasAtom[len(groupHasAtom)-1] {
				return fail(i, ErrDanglingQuantifier)
			}
			lastWasQuantifier = true
			// lastWasAtomEnd stays true: "a*?" is two stacked quantifiers,
			// rejected above by lastWasQuantifier, not by this branch.

		default:
			lastWasAtomEnd = true
			lastWasQuantifier = false
			groupHasAtom[len(groupHasAtom)-1] = true
		}
	}

	if depth != 0 {
		return fail(len(pattern)-1, ErrUnbalancedParen)
	}

	return nil
}
