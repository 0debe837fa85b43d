// Package http provides HTTP handlers for card classification.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cardid/internal/card/http/dto"
	"github.com/allisson/cardid/internal/card/usecase"
	"github.com/allisson/cardid/internal/httputil"
	customValidation "github.com/allisson/cardid/internal/validation"
)

// DefaultBatchMaxSize bounds the number of entries accepted by ClassifyBatchHandler when no
// positive limit is configured.
const DefaultBatchMaxSize = 1000

// CardHandler handles HTTP requests for card classification and catalog inspection.
type CardHandler struct {
	cardUseCase  usecase.CardUseCase
	batchMaxSize int
	logger       *slog.Logger
}

// NewCardHandler creates a new card handler.
func NewCardHandler(cardUseCase usecase.CardUseCase, batchMaxSize int, logger *slog.Logger) *CardHandler {
	if batchMaxSize <= 0 {
		batchMaxSize = DefaultBatchMaxSize
	}
	return &CardHandler{
		cardUseCase:  cardUseCase,
		batchMaxSize: batchMaxSize,
		logger:       logger,
	}
}

// ClassifyHandler classifies a single card number.
// POST /v1/cards/classify
// Returns 200 OK for every well formed number, including unidentified ones.
func (h *CardHandler) ClassifyHandler(c *gin.Context) {
	var req dto.ClassifyCardRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.cardUseCase.Classify(c.Request.Context(), req.Number)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValidatedCardToResponse(result))
}

// ClassifyBatchHandler classifies several card numbers at once.
// POST /v1/cards/classify/batch
// Malformed entries are reported per item; the response keeps input order.
func (h *CardHandler) ClassifyBatchHandler(c *gin.Context) {
	var req dto.ClassifyBatchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(h.batchMaxSize); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	items, err := h.cardUseCase.ClassifyBatch(c.Request.Context(), req.Numbers)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBatchToResponse(items))
}

// ListCardTypesHandler lists the catalog in priority order.
// GET /v1/card-types?offset=0&limit=50
func (h *CardHandler) ListCardTypesHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	cardTypes, err := h.cardUseCase.CardTypes(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCardTypesToListResponse(httputil.Paginate(cardTypes, offset, limit)))
}

// GetCardTypeHandler returns a single card type by name.
// GET /v1/card-types/:name
func (h *CardHandler) GetCardTypeHandler(c *gin.Context) {
	cardType, err := h.cardUseCase.CardType(c.Request.Context(), c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCardTypeToResponse(cardType))
}

// CheckDigitHandler computes the Luhn check digit for a payload.
// POST /v1/cards/check-digit
func (h *CardHandler) CheckDigitHandler(c *gin.Context) {
	var req dto.CheckDigitRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	digit, err := h.cardUseCase.CheckDigit(c.Request.Context(), req.Payload)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.CheckDigitResponse{
		Payload:    req.Payload,
		CheckDigit: digit,
		Number:     req.Payload + strconv.Itoa(digit),
	})
}
