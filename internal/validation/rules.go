// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/cardid/internal/errors"
)

// MaxCardNumberInputLength bounds raw card number input accepted from outer surfaces,
// whitespace included.
const MaxCardNumberInputLength = 64

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// isASCIIDigit checks if r is one of '0'-'9'
func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Digits validates that a string is made only of ASCII digits
var Digits = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, r := range s {
			if !isASCIIDigit(r) {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_digits", "must contain only digits 0-9"),
)

// CardNumberChars validates that a string holds digits optionally separated by whitespace
// and contains at least one digit
var CardNumberChars = validation.NewStringRuleWithError(
	func(s string) bool {
		hasDigit := false
		for _, r := range s {
			switch {
			case isASCIIDigit(r):
				hasDigit = true
			case unicode.IsSpace(r):
			default:
				return false
			}
		}
		return hasDigit
	},
	validation.NewError("validation_card_number_chars", "must contain only digits and whitespace"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
