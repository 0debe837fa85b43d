package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/allisson/cardid/internal/errors"
)

// CardType is a named card network identified by a set of number patterns (matched against the
// Issuer Identification Number at the start of a card number) and one or more valid lengths.
// Use CardTypeBuilder to create one.
type CardType struct {
	name     string
	patterns []NumberPattern
	lengths  []int
}

// Name returns the card type name, which may be empty for anonymous card types.
func (t *CardType) Name() string {
	return t.name
}

// Patterns returns a copy of the number patterns in definition order.
func (t *CardType) Patterns() []NumberPattern {
	return slices.Clone(t.patterns)
}

// Lengths returns a copy of the valid lengths in definition order.
func (t *CardType) Lengths() []int {
	return slices.Clone(t.lengths)
}

// MatchStrength scores how well n matches the card type; 0 means no pattern matches.
//
// The score is the specificity of the longest matching pattern shifted left by one bit, plus one
// when the length of n is valid for the card type. A more specific prefix therefore always
// outranks a less specific one, and length only breaks ties between equally specific prefixes.
func (t *CardType) MatchStrength(n CardNumber) int {
	best := 0
	for _, p := range t.patterns {
		if specificity := p.Specificity(); specificity > best && p.IsMatch(n) {
			best = specificity
		}
	}
	if best == 0 {
		return 0
	}

	strength := best << 1
	if t.LengthMatches(n) {
		strength++
	}
	return strength
}

// PatternMatches reports whether the leading digits of n match at least one pattern.
func (t *CardType) PatternMatches(n CardNumber) bool {
	return t.MatchStrength(n) > 0
}

// LengthMatches reports whether the length of n is one of the valid lengths,
// regardless of whether any pattern matches.
func (t *CardType) LengthMatches(n CardNumber) bool {
	return slices.Contains(t.lengths, n.Len())
}

// String returns the display form, e.g. {name:"Visa", patterns:[4], lengths:[13, 16]}.
func (t *CardType) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	if t.name != "" {
		sb.WriteString("name:")
		sb.WriteString(strconv.Quote(t.name))
		sb.WriteString(", ")
	}
	sb.WriteString("patterns:[")
	for i, p := range t.patterns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("], lengths:[")
	for i, l := range t.lengths {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(l))
	}
	sb.WriteString("]}")
	return sb.String()
}

// CardTypeBuilder accumulates patterns and lengths for a CardType.
// Pattern errors are collected and reported by Build so calls can be chained.
type CardTypeBuilder struct {
	name        string
	patterns    []NumberPattern
	lengths     []int
	patternErrs []error
}

// NewCardTypeBuilder returns a builder for a card type with the given (optional) name.
func NewCardTypeBuilder(name string) *CardTypeBuilder {
	return &CardTypeBuilder{name: name}
}

// AddPatterns parses and appends exact ("34") or range ("51-55") patterns.
// Calling it multiple times adds more patterns.
func (b *CardTypeBuilder) AddPatterns(patterns ...string) *CardTypeBuilder {
	return b.add(ParsePattern, patterns)
}

// AddExactPatterns appends exact prefix patterns, rejecting anything that is not all digits.
func (b *CardTypeBuilder) AddExactPatterns(prefixes ...string) *CardTypeBuilder {
	return b.add(NewExactPattern, prefixes)
}

// AddRangePatterns appends "min-max" range patterns, rejecting anything that is not a range.
func (b *CardTypeBuilder) AddRangePatterns(ranges ...string) *CardTypeBuilder {
	return b.add(ParseRangePattern, ranges)
}

// AddNumberPatterns appends already constructed patterns. Zero value patterns are ignored.
func (b *CardTypeBuilder) AddNumberPatterns(patterns ...NumberPattern) *CardTypeBuilder {
	for _, p := range patterns {
		if p.Specificity() > 0 {
			b.patterns = append(b.patterns, p)
		}
	}
	return b
}

// SetLengths sets the valid lengths, replacing any lengths set by a previous call.
func (b *CardTypeBuilder) SetLengths(lengths ...int) *CardTypeBuilder {
	b.lengths = slices.Clone(lengths)
	return b
}

// Build validates the accumulated state and returns an immutable CardType.
// Returns the pattern parse errors first, then ErrIncompleteCardType when no pattern or
// no length was given, then ErrInvalidLength for lengths that are not positive.
func (b *CardTypeBuilder) Build() (*CardType, error) {
	if len(b.patternErrs) > 0 {
		return nil, errors.Join(b.patternErrs...)
	}
	if len(b.patterns) == 0 {
		return nil, fmt.Errorf("%w: no number patterns defined", ErrIncompleteCardType)
	}
	if len(b.lengths) == 0 {
		return nil, fmt.Errorf("%w: no valid lengths defined", ErrIncompleteCardType)
	}
	for _, l := range b.lengths {
		if l <= 0 {
			return nil, fmt.Errorf("%w: lengths must be greater than 0, got %d", ErrInvalidLength, l)
		}
	}

	return &CardType{
		name:     b.name,
		patterns: slices.Clone(b.patterns),
		lengths:  slices.Clone(b.lengths),
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *CardTypeBuilder) MustBuild() *CardType {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

func (b *CardTypeBuilder) add(parse func(string) (NumberPattern, error), patterns []string) *CardTypeBuilder {
	for _, s := range patterns {
		p, err := parse(s)
		if err != nil {
			b.patternErrs = append(b.patternErrs, err)
			continue
		}
		b.patterns = append(b.patterns, p)
	}
	return b
}
