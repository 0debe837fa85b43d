package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/cardid/internal/errors"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "digits only",
			input:     "4111111111111111",
			shouldErr: false,
		},
		{
			name:      "leading zeros",
			input:     "0012",
			shouldErr: false,
		},
		{
			name:      "empty string is left to Required",
			input:     "",
			shouldErr: false,
		},
		{
			name:      "internal space",
			input:     "4111 1111",
			shouldErr: true,
		},
		{
			name:      "negative sign",
			input:     "-12",
			shouldErr: true,
		},
		{
			name:      "letters",
			input:     "12ab",
			shouldErr: true,
		},
		{
			name:      "non ascii digits",
			input:     "١٢٣",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Digits.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCardNumberChars(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "digits only",
			input:     "4111111111111111",
			shouldErr: false,
		},
		{
			name:      "grouped with spaces",
			input:     "4111 1111 1111 1111",
			shouldErr: false,
		},
		{
			name:      "tabs and newlines",
			input:     "\t4111\n1111 ",
			shouldErr: false,
		},
		{
			name:      "whitespace only",
			input:     "   ",
			shouldErr: true,
		},
		{
			name:      "dashes",
			input:     "4111-1111",
			shouldErr: true,
		},
		{
			name:      "letters",
			input:     "4111 abcd",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CardNumberChars.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNoWhitespace(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "no whitespace",
			input:     "validstring",
			shouldErr: false,
		},
		{
			name:      "leading whitespace",
			input:     " validstring",
			shouldErr: true,
		},
		{
			name:      "trailing whitespace",
			input:     "validstring ",
			shouldErr: true,
		},
		{
			name:      "both leading and trailing",
			input:     " validstring ",
			shouldErr: true,
		},
		{
			name:      "internal spaces allowed",
			input:     "valid string",
			shouldErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NoWhitespace.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "valid string",
			input:     "validstring",
			shouldErr: false,
		},
		{
			name:      "only spaces",
			input:     "   ",
			shouldErr: true,
		},
		{
			name:      "only tabs",
			input:     "\t\t",
			shouldErr: true,
		},
		{
			name:      "only newlines",
			input:     "\n\n",
			shouldErr: true,
		},
		{
			name:      "mixed whitespace",
			input:     " \t\n ",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error returns nil",
			err:      nil,
			expected: false,
		},
		{
			name:     "wraps validation error",
			err:      assert.AnError,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WrapValidationError(tt.err)
			if tt.expected {
				assert.Error(t, result)
				assert.Contains(t, result.Error(), "invalid input")
			} else {
				assert.NoError(t, result)
			}
		})
	}
}

func TestWrapValidationError_MatchesInvalidInput(t *testing.T) {
	err := WrapValidationError(assert.AnError)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
