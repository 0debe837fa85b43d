package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// PatternKind identifies how a NumberPattern matches the leading digits of a card number.
type PatternKind int

const (
	// PatternExact matches a literal digit prefix such as "34".
	PatternExact PatternKind = iota
	// PatternRange matches an inclusive numeric range of equal length prefixes such as "51-55".
	PatternRange
)

// String returns the string representation of the pattern kind.
func (k PatternKind) String() string {
	switch k {
	case PatternExact:
		return "exact"
	case PatternRange:
		return "range"
	default:
		return fmt.Sprintf("PatternKind(%d)", int(k))
	}
}

// rangeRegex accepts "min-max" with optional whitespace around the hyphen only.
var rangeRegex = regexp.MustCompile(`^([0-9]+)\s*-\s*([0-9]+)$`)

// NumberPattern is a rule matched against the leading digits of a card number.
// It is either an exact prefix or an inclusive range; the zero value matches nothing.
type NumberPattern struct {
	kind PatternKind

	// prefix is set for exact patterns.
	prefix string

	// minText and maxText keep range bounds as written so leading zeros survive display.
	minText string
	maxText string
	minVal  *big.Int
	maxVal  *big.Int
}

// NewExactPattern creates a pattern matching card numbers that start with prefix.
// The prefix must be a non-empty string of digits with no whitespace.
func NewExactPattern(prefix string) (NumberPattern, error) {
	if !isDigits(prefix) {
		return NumberPattern{}, fmt.Errorf(
			"%w: %q must be non-empty and consist of digits 0-9",
			ErrInvalidPattern,
			prefix,
		)
	}
	return NumberPattern{kind: PatternExact, prefix: prefix}, nil
}

// NewRangePattern creates a pattern matching card numbers whose leading digits, taken with
// the same length as the bounds, fall within [min, max]. Both bounds must be digit strings of
// the same length and min must not be greater than max.
func NewRangePattern(min, max string) (NumberPattern, error) {
	if !isDigits(min) {
		return NumberPattern{}, fmt.Errorf("%w: min not valid: %q", ErrInvalidRange, min)
	}
	if !isDigits(max) {
		return NumberPattern{}, fmt.Errorf("%w: max not valid: %q", ErrInvalidRange, max)
	}
	if len(min) != len(max) {
		return NumberPattern{}, fmt.Errorf(
			"%w: min (%s) and max (%s) must have the same number of digits",
			ErrInvalidRange,
			min,
			max,
		)
	}

	minVal, _ := new(big.Int).SetString(min, 10)
	maxVal, _ := new(big.Int).SetString(max, 10)
	if minVal.Cmp(maxVal) > 0 {
		return NumberPattern{}, fmt.Errorf(
			"%w: min (%s) cannot be greater than max (%s)",
			ErrInvalidRange,
			min,
			max,
		)
	}

	return NumberPattern{
		kind:    PatternRange,
		minText: min,
		maxText: max,
		minVal:  minVal,
		maxVal:  maxVal,
	}, nil
}

// ParseRangePattern parses a range written as "min-max", e.g. "622126-622925" or "51 - 55".
func ParseRangePattern(s string) (NumberPattern, error) {
	parts := rangeRegex.FindStringSubmatch(s)
	if parts == nil {
		return NumberPattern{}, fmt.Errorf("%w: %q is not a range of the form min-max", ErrInvalidPattern, s)
	}
	return NewRangePattern(parts[1], parts[2])
}

// ParsePattern parses either an exact prefix ("34") or a range ("300-305").
func ParsePattern(s string) (NumberPattern, error) {
	if isDigits(s) {
		return NewExactPattern(s)
	}
	if strings.Contains(s, "-") {
		return ParseRangePattern(s)
	}
	return NumberPattern{}, fmt.Errorf(
		"%w: %q must be digits (e.g. 34) or a digit range (e.g. 51-55)",
		ErrInvalidPattern,
		s,
	)
}

// MustParsePattern is like ParsePattern but panics on error.
func MustParsePattern(s string) NumberPattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Kind returns whether the pattern is an exact prefix or a range.
func (p NumberPattern) Kind() PatternKind {
	return p.kind
}

// IsMatch reports whether the leading digits of n satisfy the pattern.
// Numbers shorter than the pattern's specificity never match.
func (p NumberPattern) IsMatch(n CardNumber) bool {
	checkLen := p.Specificity()
	if checkLen == 0 || n.Len() < checkLen {
		return false
	}
	leading := n.digits[:checkLen]

	switch p.kind {
	case PatternExact:
		return leading == p.prefix
	case PatternRange:
		value, ok := new(big.Int).SetString(leading, 10)
		if !ok {
			return false
		}
		return p.minVal.Cmp(value) <= 0 && value.Cmp(p.maxVal) <= 0
	default:
		return false
	}
}

// Specificity returns the number of leading digits consumed by a match.
func (p NumberPattern) Specificity() int {
	switch p.kind {
	case PatternExact:
		return len(p.prefix)
	case PatternRange:
		return len(p.minText)
	default:
		return 0
	}
}

// String returns the pattern as it would be written in a card type definition.
func (p NumberPattern) String() string {
	switch p.kind {
	case PatternExact:
		return p.prefix
	case PatternRange:
		return p.minText + "-" + p.maxText
	default:
		return ""
	}
}
