package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/cardid/internal/errors"
)

func TestParseCardNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "Success_DigitsOnly", raw: "123456789", expected: "123456789"},
		{name: "Success_InteriorSpaces", raw: "123 456 789", expected: "123456789"},
		{name: "Success_SurroundingWhitespace", raw: " \t123456789\n", expected: "123456789"},
		{name: "Success_MixedWhitespace", raw: "1 2\t3\r\n4", expected: "1234"},
		{name: "Success_LeadingZerosPreserved", raw: "00 12", expected: "0012"},
		{name: "Success_SingleDigit", raw: "0", expected: "0"},
		{name: "Success_LongerThanInt64", raw: "1234567890123456789012345", expected: "1234567890123456789012345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseCardNumber(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.Digits())
			assert.Equal(t, tt.expected, n.String())
			assert.Equal(t, len(tt.expected), n.Len())
			assert.False(t, n.IsZero())
		})
	}
}

func TestParseCardNumber_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "Error_Empty", raw: ""},
		{name: "Error_WhitespaceOnly", raw: "   \t "},
		{name: "Error_Negative", raw: "-123"},
		{name: "Error_PlusSign", raw: "+123"},
		{name: "Error_Alphabetic", raw: "abc"},
		{name: "Error_MixedAlphanumeric", raw: "1234a"},
		{name: "Error_Hyphenated", raw: "4111-1111-1111-1111"},
		{name: "Error_Decimal", raw: "12.5"},
		{name: "Error_NonASCIIDigits", raw: "١٢٣"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseCardNumber(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCardNumber)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.True(t, n.IsZero())
		})
	}
}

func TestCardNumber_Equality(t *testing.T) {
	a := MustParseCardNumber("4111 1111 1111 1111")
	b := MustParseCardNumber("4111111111111111")
	c := MustParseCardNumber("4111111111111112")

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.False(t, a == c)

	seen := map[CardNumber]bool{a: true}
	assert.True(t, seen[b])
	assert.False(t, seen[c])
}

func TestCardNumber_Masked(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "4111111111111111", expected: "411111******1111"},
		{raw: "378282246310005", expected: "378282*****0005"},
		{raw: "12345678901", expected: "123456*8901"},
		{raw: "1234567890", expected: "******7890"},
		{raw: "12345", expected: "*2345"},
		{raw: "1234", expected: "1234"},
		{raw: "7", expected: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, MustParseCardNumber(tt.raw).Masked())
		})
	}
}

func TestMustParseCardNumber_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustParseCardNumber("not a number")
	})
}
