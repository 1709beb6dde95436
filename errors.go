package kernel

import (
	"fmt"

	"github.com/coregx/kernel/internal/validator"
	"github.com/pkg/errors"
)

// Sentinel errors identifying the reason a pattern was rejected by the
// validator. Compare against these with errors.Is; SyntaxError.Unwrap
// returns one of them. These simply re-export internal/validator's
// sentinels: validator cannot import this package (it would be a cycle,
// since this package imports validator to run it), so it owns the
// canonical vars and this package just gives callers a stable, public
// name to compare against.
var (
	// ErrEmptyPattern indicates the pattern has zero length.
	ErrEmptyPattern = validator.ErrEmptyPattern

	// ErrUnbalancedParen indicates a '(' with no matching ')', or vice versa.
	ErrUnbalancedParen = validator.ErrUnbalancedParen

	// ErrDanglingQuantifier indicates '*', '+' or '?' with no preceding atom.
	ErrDanglingQuantifier = validator.ErrDanglingQuantifier

	// ErrRepeatedQuantifier indicates two quantifiers in a row, e.g. "a**".
	ErrRepeatedQuantifier = validator.ErrRepeatedQuantifier

	// ErrDanglingEscape indicates a trailing '\' with nothing to escape.
	ErrDanglingEscape = validator.ErrDanglingEscape

	// ErrTrailingBar indicates '|' as the final character of the pattern.
	ErrTrailingBar = validator.ErrTrailingBar

	// ErrTooDeeplyNested indicates the pattern's parenthesis nesting
	// exceeds Config.MaxRecursionDepth.
	ErrTooDeeplyNested = errors.New("pattern nesting exceeds configured recursion depth")

	// ErrTooManyStates indicates the compiled automaton exceeds
	// Config.MaxNFAStates.
	ErrTooManyStates = errors.New("compiled automaton exceeds configured state limit")
)

// SyntaxError reports that a pattern failed validation. It wraps one of the
// sentinel errors above together with the pattern and, where available, the
// byte offset of the offending character.
type SyntaxError struct {
	Pattern string
	Pos     int // -1 when no specific offset applies
	Err     error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("invalid pattern %q at position %d: %v", e.Pattern, e.Pos, e.Err)
	}
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying sentinel error, so errors.Is(err,
// ErrUnbalancedParen) works on a *SyntaxError.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func newSyntaxError(pattern string, pos int, cause error) *SyntaxError {
	return &SyntaxError{Pattern: pattern, Pos: pos, Err: cause}
}
