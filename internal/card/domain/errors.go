package domain

import (
	"github.com/allisson/cardid/internal/errors"
)

var (
	// ErrInvalidCardNumber indicates the input is not a whole or partial card number.
	ErrInvalidCardNumber = errors.Wrap(errors.ErrInvalidInput, "invalid card number")

	// ErrInvalidPattern indicates a number pattern is neither a digit prefix nor a digit range.
	ErrInvalidPattern = errors.Wrap(errors.ErrInvalidInput, "invalid number pattern")

	// ErrInvalidRange indicates a range pattern whose bounds differ in length or are reversed.
	ErrInvalidRange = errors.Wrap(errors.ErrInvalidInput, "invalid range pattern")

	// ErrInvalidLength indicates a card type length that is not a positive integer.
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "invalid card length")

	// ErrIncompleteCardType indicates a card type was built without patterns or lengths.
	ErrIncompleteCardType = errors.Wrap(errors.ErrInvalidState, "card type requires at least one pattern and one length")

	// ErrCardTypeNotFound indicates no catalog entry has the requested name.
	ErrCardTypeNotFound = errors.Wrap(errors.ErrNotFound, "card type not found")

	// ErrEmptyCatalog indicates a catalog was created without card types.
	ErrEmptyCatalog = errors.Wrap(errors.ErrInvalidInput, "catalog must contain at least one card type")
)
