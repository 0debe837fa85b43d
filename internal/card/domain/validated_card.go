package domain

import (
	"strings"
)

// ValidatedCard is the outcome of classifying a card number against a catalog.
type ValidatedCard struct {
	// Number is the normalised card number.
	Number CardNumber
	// Type is the best matching card type, or nil when no pattern matched.
	Type *CardType
	// Strength is the match strength of Type, 0 when unidentified.
	Strength int
	// Valid is true only when Type is set, the length is valid for Type and the Luhn check passes.
	Valid bool
}

// NewValidatedCard pairs n with cardType and computes the validity verdict.
func NewValidatedCard(n CardNumber, cardType *CardType) *ValidatedCard {
	v := &ValidatedCard{Number: n, Type: cardType}
	if cardType != nil {
		v.Strength = cardType.MatchStrength(n)
		v.Valid = v.Strength > 0 && cardType.LengthMatches(n) && PassesLuhn(n)
	}
	return v
}

// Identified reports whether a card type was found.
func (v *ValidatedCard) Identified() bool {
	return v.Type != nil
}

// TypeName returns the name of the matched card type, or "" when unidentified.
func (v *ValidatedCard) TypeName() string {
	if v.Type == nil {
		return ""
	}
	return v.Type.Name()
}

// String returns a summary such as { 4111111111111111, valid, {name:"Visa", ...} }.
func (v *ValidatedCard) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	sb.WriteString(v.Number.String())
	if v.Valid {
		sb.WriteString(", valid, ")
	} else {
		sb.WriteString(", invalid, ")
	}
	if v.Type != nil {
		sb.WriteString(v.Type.String())
	} else {
		sb.WriteString("unidentified")
	}
	sb.WriteString(" }")
	return sb.String()
}
