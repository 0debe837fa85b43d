package dto

import (
	"github.com/allisson/cardid/internal/card/domain"
	"github.com/allisson/cardid/internal/card/usecase"
)

// CardTypeResponse represents a card type in API responses.
type CardTypeResponse struct {
	Name           string   `json:"name"`
	NumberPatterns []string `json:"number_patterns"`
	ValidLengths   []int    `json:"valid_lengths"`
}

// ClassifyCardResponse represents a classification result. The card number is masked.
type ClassifyCardResponse struct {
	Number        string            `json:"number"`
	Length        int               `json:"length"`
	Valid         bool              `json:"valid"`
	Identified    bool              `json:"identified"`
	LengthValid   bool              `json:"length_valid"`
	LuhnValid     bool              `json:"luhn_valid"`
	MatchStrength int               `json:"match_strength"`
	CardType      *CardTypeResponse `json:"card_type,omitempty"`
}

// BatchItemResponse represents one entry of a batch classification.
type BatchItemResponse struct {
	Index  int                   `json:"index"`
	Result *ClassifyCardResponse `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
}

// BatchSummary counts batch entries by outcome.
type BatchSummary struct {
	Total        int `json:"total"`
	Valid        int `json:"valid"`
	Invalid      int `json:"invalid"`
	Unidentified int `json:"unidentified"`
	Malformed    int `json:"malformed"`
}

// ClassifyBatchResponse represents a batch classification in input order.
type ClassifyBatchResponse struct {
	Data    []BatchItemResponse `json:"data"`
	Summary BatchSummary        `json:"summary"`
}

// ListCardTypesResponse represents a page of card types in priority order.
type ListCardTypesResponse struct {
	Data []CardTypeResponse `json:"data"`
}

// CheckDigitResponse represents a computed Luhn check digit.
type CheckDigitResponse struct {
	Payload    string `json:"payload"`
	CheckDigit int    `json:"check_digit"`
	Number     string `json:"number"`
}

// MapCardTypeToResponse converts a domain card type to an API response.
func MapCardTypeToResponse(cardType *domain.CardType) CardTypeResponse {
	patterns := cardType.Patterns()
	response := CardTypeResponse{
		Name:           cardType.Name(),
		NumberPatterns: make([]string, 0, len(patterns)),
		ValidLengths:   cardType.Lengths(),
	}
	for _, p := range patterns {
		response.NumberPatterns = append(response.NumberPatterns, p.String())
	}
	return response
}

// MapCardTypesToListResponse converts card types to a list response.
func MapCardTypesToListResponse(cardTypes []*domain.CardType) ListCardTypesResponse {
	data := make([]CardTypeResponse, 0, len(cardTypes))
	for _, cardType := range cardTypes {
		data = append(data, MapCardTypeToResponse(cardType))
	}
	return ListCardTypesResponse{Data: data}
}

// MapValidatedCardToResponse converts a classification result to an API response.
func MapValidatedCardToResponse(card *domain.ValidatedCard) ClassifyCardResponse {
	response := ClassifyCardResponse{
		Number:        card.Number.Masked(),
		Length:        card.Number.Len(),
		Valid:         card.Valid,
		Identified:    card.Identified(),
		LuhnValid:     domain.PassesLuhn(card.Number),
		MatchStrength: card.Strength,
	}
	if card.Type != nil {
		cardType := MapCardTypeToResponse(card.Type)
		response.CardType = &cardType
		response.LengthValid = card.Type.LengthMatches(card.Number)
	}
	return response
}

// MapBatchToResponse converts batch items to an API response with a summary.
func MapBatchToResponse(items []usecase.BatchItem) ClassifyBatchResponse {
	response := ClassifyBatchResponse{
		Data:    make([]BatchItemResponse, 0, len(items)),
		Summary: BatchSummary{Total: len(items)},
	}

	for _, item := range items {
		entry := BatchItemResponse{Index: item.Index}
		switch {
		case item.Err != nil:
			entry.Error = item.Err.Error()
			response.Summary.Malformed++
		case item.Card != nil:
			result := MapValidatedCardToResponse(item.Card)
			entry.Result = &result
			switch {
			case !item.Card.Identified():
				response.Summary.Unidentified++
			case item.Card.Valid:
				response.Summary.Valid++
			default:
				response.Summary.Invalid++
			}
		}
		response.Data = append(response.Data, entry)
	}

	return response
}
