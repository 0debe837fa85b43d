package usecase

import (
	"context"
	"time"

	"github.com/allisson/cardid/internal/card/domain"
	"github.com/allisson/cardid/internal/metrics"
)

const metricsDomain = "card"

// cardUseCaseWithMetrics decorates CardUseCase with metrics instrumentation.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with operation count and duration recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Classify records metrics for single card classification.
func (c *cardUseCaseWithMetrics) Classify(ctx context.Context, raw string) (*domain.ValidatedCard, error) {
	start := time.Now()
	result, err := c.next.Classify(ctx, raw)
	c.observe(ctx, "card_classify", start, err)
	return result, err
}

// ClassifyBatch records metrics for batch classification.
func (c *cardUseCaseWithMetrics) ClassifyBatch(ctx context.Context, raws []string) ([]BatchItem, error) {
	start := time.Now()
	items, err := c.next.ClassifyBatch(ctx, raws)
	c.observe(ctx, "card_classify_batch", start, err)
	return items, err
}

// CardTypes records metrics for catalog listing.
func (c *cardUseCaseWithMetrics) CardTypes(ctx context.Context) ([]*domain.CardType, error) {
	start := time.Now()
	types, err := c.next.CardTypes(ctx)
	c.observe(ctx, "card_types_list", start, err)
	return types, err
}

// CardType records metrics for card type lookup.
func (c *cardUseCaseWithMetrics) CardType(ctx context.Context, name string) (*domain.CardType, error) {
	start := time.Now()
	cardType, err := c.next.CardType(ctx, name)
	c.observe(ctx, "card_type_get", start, err)
	return cardType, err
}

// CheckDigit records metrics for check digit generation.
func (c *cardUseCaseWithMetrics) CheckDigit(ctx context.Context, payload string) (int, error) {
	start := time.Now()
	digit, err := c.next.CheckDigit(ctx, payload)
	c.observe(ctx, "card_check_digit", start, err)
	return digit, err
}

func (c *cardUseCaseWithMetrics) observe(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	c.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}
