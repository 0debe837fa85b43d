package service

import (
	"fmt"
	"strings"

	"github.com/allisson/cardid/internal/card/domain"
	"github.com/allisson/cardid/internal/errors"
	customValidation "github.com/allisson/cardid/internal/validation"
)

// ErrInvalidDefinition indicates one or more card type definitions failed validation.
var ErrInvalidDefinition = errors.Wrap(errors.ErrInvalidInput, "invalid card type definition")

// CatalogOptions controls how definitions are turned into a catalog.
type CatalogOptions struct {
	// RequireNames rejects definitions without a name.
	RequireNames bool
}

// DefinitionError reports the failure of a single definition with its position.
type DefinitionError struct {
	Index int
	Name  string
	Err   error
}

// Error implements error.
func (e *DefinitionError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("definition %d (%q): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("definition %d: %v", e.Index, e.Err)
}

// Unwrap exposes both ErrInvalidDefinition and the underlying cause to errors.Is.
func (e *DefinitionError) Unwrap() []error {
	return []error{ErrInvalidDefinition, e.Err}
}

// DefinitionErrors aggregates every failed definition of a catalog.
type DefinitionErrors []*DefinitionError

// Error implements error.
func (e DefinitionErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, de := range e {
		msgs = append(msgs, de.Error())
	}
	return fmt.Sprintf("%d invalid card type definition(s): %s", len(e), strings.Join(msgs, "; "))
}

// Unwrap returns the individual definition errors.
func (e DefinitionErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, de := range e {
		errs = append(errs, de)
	}
	return errs
}

// BuildCatalog validates every definition and assembles a catalog in the same order.
// All failures are reported together as DefinitionErrors.
func BuildCatalog(defs []CardTypeDefinition, opts CatalogOptions) (*domain.Catalog, error) {
	if len(defs) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	types := make([]*domain.CardType, 0, len(defs))
	var failures DefinitionErrors

	for i := range defs {
		def := &defs[i]

		if err := def.Validate(opts.RequireNames); err != nil {
			failures = append(failures, &DefinitionError{
				Index: i,
				Name:  def.Name,
				Err:   customValidation.WrapValidationError(err),
			})
			continue
		}

		cardType, err := def.Build()
		if err != nil {
			failures = append(failures, &DefinitionError{Index: i, Name: def.Name, Err: err})
			continue
		}
		types = append(types, cardType)
	}

	if len(failures) > 0 {
		return nil, failures
	}

	return domain.NewCatalog(types...)
}

// ToDefinitions derives the definitions of every card type in the catalog, skipping empty slots.
func ToDefinitions(catalog *domain.Catalog) []CardTypeDefinition {
	types := catalog.CardTypes()
	defs := make([]CardTypeDefinition, 0, len(types))
	for _, t := range types {
		if t == nil {
			continue
		}
		defs = append(defs, DefinitionFromCardType(t))
	}
	return defs
}
