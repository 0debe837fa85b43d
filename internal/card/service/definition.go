// Package service assembles card type catalogs from external card type definitions.
// It owns the validation of definitions and the JSON catalog format; the card
// identification itself lives in the domain package.
package service

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/cardid/internal/card/domain"
	customValidation "github.com/allisson/cardid/internal/validation"
)

// CardTypeDefinition is the external description of a card type.
type CardTypeDefinition struct {
	Name           string   `json:"name"`
	NumberPatterns []string `json:"numberPatterns"`
	ValidLengths   []int    `json:"validLengths"`
}

// numberPatternRule accepts strings that parse as an exact or range number pattern.
var numberPatternRule = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_number_pattern_type", "must be a string")
	}
	if _, err := domain.ParsePattern(s); err != nil {
		return validation.NewError("validation_number_pattern", err.Error())
	}
	return nil
})

// validLengthRule accepts positive lengths. Min(1) alone would skip zero as an empty value.
var validLengthRule = validation.By(func(value interface{}) error {
	l, ok := value.(int)
	if !ok {
		return validation.NewError("validation_valid_length_type", "must be an integer")
	}
	if l <= 0 {
		return validation.NewError("validation_valid_length", "must be greater than 0")
	}
	return nil
})

// Validate checks the definition. The name is only required when requireName is set.
func (d *CardTypeDefinition) Validate(requireName bool) error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Name,
			validation.When(requireName, validation.Required, customValidation.NotBlank),
			validation.Length(0, 255),
		),
		validation.Field(&d.NumberPatterns,
			validation.Required,
			validation.Each(numberPatternRule),
		),
		validation.Field(&d.ValidLengths,
			validation.Required,
			validation.Each(validLengthRule),
		),
	)
}

// Build converts the definition into a card type. Call Validate first for field level messages.
func (d *CardTypeDefinition) Build() (*domain.CardType, error) {
	return domain.NewCardTypeBuilder(d.Name).
		AddPatterns(d.NumberPatterns...).
		SetLengths(d.ValidLengths...).
		Build()
}

// DefinitionFromCardType derives the definition of an existing card type.
// Patterns and lengths keep their original order.
func DefinitionFromCardType(t *domain.CardType) CardTypeDefinition {
	patterns := t.Patterns()
	def := CardTypeDefinition{
		Name:           t.Name(),
		NumberPatterns: make([]string, 0, len(patterns)),
		ValidLengths:   t.Lengths(),
	}
	for _, p := range patterns {
		def.NumberPatterns = append(def.NumberPatterns, p.String())
	}
	return def
}
