package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardid/internal/card/domain"
	"github.com/allisson/cardid/internal/card/usecase"
)

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog(
		domain.NewCardTypeBuilder("Visa").AddPatterns("4").SetLengths(13, 16, 19).MustBuild(),
		domain.NewCardTypeBuilder("Mastercard").AddPatterns("51-55", "2221-2720").SetLengths(16).MustBuild(),
	)
	require.NoError(t, err)
	return catalog
}

func TestMapCardTypeToResponse(t *testing.T) {
	cardType := domain.NewCardTypeBuilder("Mastercard").AddPatterns("51-55", "2221-2720").SetLengths(16).MustBuild()

	response := MapCardTypeToResponse(cardType)

	assert.Equal(t, CardTypeResponse{
		Name:           "Mastercard",
		NumberPatterns: []string{"51-55", "2221-2720"},
		ValidLengths:   []int{16},
	}, response)
}

func TestMapValidatedCardToResponse(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("Identified", func(t *testing.T) {
		response := MapValidatedCardToResponse(catalog.Classify(domain.MustParseCardNumber("4111111111111111")))

		assert.Equal(t, "411111******1111", response.Number)
		assert.Equal(t, 16, response.Length)
		assert.True(t, response.Valid)
		assert.True(t, response.Identified)
		assert.True(t, response.LengthValid)
		assert.True(t, response.LuhnValid)
		assert.Equal(t, 3, response.MatchStrength)
		require.NotNil(t, response.CardType)
		assert.Equal(t, "Visa", response.CardType.Name)
	})

	t.Run("WrongLength", func(t *testing.T) {
		response := MapValidatedCardToResponse(catalog.Classify(domain.MustParseCardNumber("41111111111111")))

		assert.False(t, response.Valid)
		assert.True(t, response.Identified)
		assert.False(t, response.LengthValid)
		assert.Equal(t, 2, response.MatchStrength)
	})

	t.Run("Unidentified", func(t *testing.T) {
		response := MapValidatedCardToResponse(catalog.Classify(domain.MustParseCardNumber("9999")))

		assert.Equal(t, "9999", response.Number)
		assert.False(t, response.Identified)
		assert.False(t, response.LengthValid)
		assert.Nil(t, response.CardType)
	})
}

func TestMapBatchToResponse(t *testing.T) {
	catalog := testCatalog(t)
	items := []usecase.BatchItem{
		{Index: 0, Card: catalog.Classify(domain.MustParseCardNumber("4111111111111111"))},
		{Index: 1, Err: errors.New("invalid card number")},
		{Index: 2, Card: catalog.Classify(domain.MustParseCardNumber("5105105105105101"))},
		{Index: 3, Card: catalog.Classify(domain.MustParseCardNumber("9999"))},
	}

	response := MapBatchToResponse(items)

	require.Len(t, response.Data, 4)
	assert.Equal(t, BatchSummary{Total: 4, Valid: 1, Invalid: 1, Unidentified: 1, Malformed: 1}, response.Summary)
	assert.Equal(t, 1, response.Data[1].Index)
	assert.Equal(t, "invalid card number", response.Data[1].Error)
	assert.Nil(t, response.Data[1].Result)
	require.NotNil(t, response.Data[2].Result)
	assert.Equal(t, "Mastercard", response.Data[2].Result.CardType.Name)
}
