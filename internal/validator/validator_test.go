package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Accepts(t *testing.T) {
	patterns := []string{
		"a",
		"ab",
		"a|b",
		"a*",
		"a+",
		"a?",
		"(a|b)",
		"(a|b)*c",
		`\.`,
		`\\`,
		"a(b|c)*d",
		".",
		"a.b",
	}
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			assert.NoError(t, Validate(p))
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		pattern string
		reason  error
	}{
		{"", ErrEmptyPattern},
		{"(a", ErrUnbalancedParen},
		{"a)", ErrUnbalancedParen},
		{"(a|b", ErrUnbalancedParen},
		{"*a", ErrDanglingQuantifier},
		{"a**", ErrRepeatedQuantifier},
		{"a*+", ErrRepeatedQuantifier},
		{"(*a)", ErrDanglingQuantifier},
		{`a\`, ErrDanglingEscape},
		{"a|", ErrTrailingBar},
		{"(a|)*", nil}, // empty alternative is fine, just not a bare trailing bar
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			err := Validate(tt.pattern)
			if tt.reason == nil {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			var verr *Error
			assert.True(t, errors.As(err, &verr))
			assert.True(t, errors.Is(err, tt.reason), "got %v, want %v", err, tt.reason)
		})
	}
}
