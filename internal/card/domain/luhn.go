package domain

import (
	"fmt"
)

// PassesLuhn reports whether n passes the Luhn checksum.
// Moving left from the rightmost (check) digit, every second digit is doubled and 9 is
// subtracted from doubled values above 9; the number is valid when the sum ends in zero.
func PassesLuhn(n CardNumber) bool {
	if n.IsZero() {
		return false
	}
	return luhnSum(n.digits, false)%10 == 0
}

// LuhnCheckDigit returns the digit that makes payload followed by that digit pass the Luhn check.
func LuhnCheckDigit(payload string) (int, error) {
	if !isDigits(payload) {
		return 0, fmt.Errorf("%w: payload %q must be non-empty and consist of digits 0-9", ErrInvalidCardNumber, payload)
	}
	// The check digit will occupy the rightmost position, so doubling starts at the payload's last digit.
	sum := luhnSum(payload, true)
	return (10 - sum%10) % 10, nil
}

// luhnSum walks digits right to left, doubling every second digit. When doubleFirst is set
// the rightmost digit is doubled too.
func luhnSum(digits string, doubleFirst bool) int {
	sum := 0
	double := doubleFirst
	for i := len(digits) - 1; i >= 0; i-- {
		value := int(digits[i] - '0')
		if double {
			value *= 2
			if value > 9 {
				value -= 9
			}
		}
		sum += value
		double = !double
	}
	return sum
}
