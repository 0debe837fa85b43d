// Package domain defines the card identification core: card numbers, number patterns,
// card types and the classifier that picks the best matching card type for a number.
// Every value in this package is immutable once constructed and safe for concurrent use.
package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// CardNumber is a whole or partial card number normalised to ASCII digits.
// Card numbers are kept as strings since they can carry leading zeros and exceed 64 bits.
type CardNumber struct {
	digits string
}

// ParseCardNumber removes all whitespace from raw and returns the remaining digits.
// Returns ErrInvalidCardNumber when nothing is left or any non-digit remains (including a sign).
func ParseCardNumber(raw string) (CardNumber, error) {
	normalised := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if !isDigits(normalised) {
		return CardNumber{}, fmt.Errorf("%w: %q", ErrInvalidCardNumber, raw)
	}

	return CardNumber{digits: normalised}, nil
}

// MustParseCardNumber is like ParseCardNumber but panics on error.
// Intended for tests and package level fixtures.
func MustParseCardNumber(raw string) CardNumber {
	n, err := ParseCardNumber(raw)
	if err != nil {
		panic(err)
	}
	return n
}

// Digits returns the normalised digit string.
func (n CardNumber) Digits() string {
	return n.digits
}

// Len returns the number of digits.
func (n CardNumber) Len() int {
	return len(n.digits)
}

// IsZero reports whether n is the zero value (never returned by ParseCardNumber).
func (n CardNumber) IsZero() bool {
	return n.digits == ""
}

// String returns the normalised digit string.
func (n CardNumber) String() string {
	return n.digits
}

// Masked returns the number with everything except the issuer prefix (first 6 digits)
// and the last 4 digits replaced by '*'. Numbers of 10 digits or fewer only keep the last 4.
func (n CardNumber) Masked() string {
	length := len(n.digits)
	if length <= 4 {
		return n.digits
	}
	if length <= 10 {
		return strings.Repeat("*", length-4) + n.digits[length-4:]
	}
	return n.digits[:6] + strings.Repeat("*", length-10) + n.digits[length-4:]
}

// isDigits reports whether s is non-empty and made only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
