// Package usecase orchestrates card classification on top of a card type catalog.
package usecase

import (
	"context"

	"github.com/allisson/cardid/internal/card/domain"
)

// BatchItem is the classification of one entry of a batch. Exactly one of Card and Err is set.
type BatchItem struct {
	// Index is the position of the entry in the batch.
	Index int
	// Card is the classification result when the entry parsed as a card number.
	Card *domain.ValidatedCard
	// Err is the parse error for entries that are not card numbers.
	Err error
}

// CardUseCase classifies card numbers against the configured catalog.
type CardUseCase interface {
	// Classify parses raw as a card number and classifies it.
	// Returns an error wrapping ErrInvalidCardNumber when raw is not a card number.
	Classify(ctx context.Context, raw string) (*domain.ValidatedCard, error)

	// ClassifyBatch classifies every entry concurrently. Entries that fail to parse are
	// reported on their BatchItem and do not fail the batch; only context cancellation does.
	// Items are returned in input order.
	ClassifyBatch(ctx context.Context, raws []string) ([]BatchItem, error)

	// CardTypes returns the catalog entries in priority order.
	CardTypes(ctx context.Context) ([]*domain.CardType, error)

	// CardType returns the first catalog entry with the given name.
	// Returns ErrCardTypeNotFound when there is none.
	CardType(ctx context.Context, name string) (*domain.CardType, error)

	// CheckDigit returns the Luhn check digit that completes payload.
	CheckDigit(ctx context.Context, payload string) (int, error)
}
