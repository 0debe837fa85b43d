package domain

import (
	"slices"
)

// Catalog is an ordered, non-empty collection of card types. Order expresses priority:
// when two card types match a number equally well the earlier one wins.
type Catalog struct {
	types []*CardType
}

// NewCatalog creates a catalog from the given card types in priority order.
// Nil entries are kept as empty slots and skipped during classification.
func NewCatalog(types ...*CardType) (*Catalog, error) {
	if len(types) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Catalog{types: slices.Clone(types)}, nil
}

// CardTypes returns a copy of the catalog entries in priority order.
func (c *Catalog) CardTypes() []*CardType {
	return slices.Clone(c.types)
}

// Len returns the number of entries, including empty slots.
func (c *Catalog) Len() int {
	return len(c.types)
}

// Lookup returns the first card type with the given name.
func (c *Catalog) Lookup(name string) (*CardType, bool) {
	for _, t := range c.types {
		if t != nil && t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// Classify returns the best matching card type for n together with the validity verdict.
func (c *Catalog) Classify(n CardNumber) *ValidatedCard {
	return Classify(c.types, n)
}

// ClassifyString parses raw as a card number and classifies it.
func (c *Catalog) ClassifyString(raw string) (*ValidatedCard, error) {
	n, err := ParseCardNumber(raw)
	if err != nil {
		return nil, err
	}
	return c.Classify(n), nil
}

// BestMatch returns the card type with the strictly highest match strength for n and that
// strength. Ties keep the earlier card type; nil entries are skipped. Returns nil, 0 when no
// card type matches.
func BestMatch(types []*CardType, n CardNumber) (*CardType, int) {
	var best *CardType
	bestStrength := 0
	for _, t := range types {
		if t == nil {
			continue
		}
		if strength := t.MatchStrength(n); strength > bestStrength {
			best = t
			bestStrength = strength
		}
	}
	return best, bestStrength
}

// Classify picks the best matching card type from types for n and packages the result.
// It never fails: a number matching no pattern yields an unidentified, invalid result.
func Classify(types []*CardType, n CardNumber) *ValidatedCard {
	best, _ := BestMatch(types, n)
	return NewValidatedCard(n, best)
}
