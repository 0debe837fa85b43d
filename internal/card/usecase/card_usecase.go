package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/cardid/internal/card/domain"
	apperrors "github.com/allisson/cardid/internal/errors"
	"github.com/allisson/cardid/internal/metrics"
)

// DefaultBatchWorkers bounds batch concurrency when no positive worker count is configured.
const DefaultBatchWorkers = 4

// cardUseCase implements CardUseCase on a single immutable catalog.
type cardUseCase struct {
	catalog *domain.Catalog
	workers int
	metrics metrics.BusinessMetrics
	logger  *slog.Logger
}

// NewCardUseCase creates a CardUseCase. workers bounds the goroutines used by ClassifyBatch.
func NewCardUseCase(
	catalog *domain.Catalog,
	workers int,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) CardUseCase {
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}
	if businessMetrics == nil {
		businessMetrics = metrics.NewNoOpBusinessMetrics()
	}
	return &cardUseCase{
		catalog: catalog,
		workers: workers,
		metrics: businessMetrics,
		logger:  logger,
	}
}

// Classify parses and classifies a single card number.
func (c *cardUseCase) Classify(ctx context.Context, raw string) (*domain.ValidatedCard, error) {
	result, err := c.catalog.ClassifyString(raw)
	if err != nil {
		return nil, err
	}

	c.record(ctx, result)
	c.logger.Debug("card classified",
		slog.String("number", result.Number.Masked()),
		slog.String("card_type", result.TypeName()),
		slog.Bool("valid", result.Valid),
	)

	return result, nil
}

// ClassifyBatch fans the entries out over at most workers goroutines.
func (c *cardUseCase) ClassifyBatch(ctx context.Context, raws []string) ([]BatchItem, error) {
	items := make([]BatchItem, len(raws))
	for i := range items {
		items[i].Index = i
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, raw := range raws {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := c.catalog.ClassifyString(raw)
			if err != nil {
				items[i].Err = err
				return nil
			}
			items[i].Card = result
			c.record(gctx, result)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(err, "batch classification aborted")
	}
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(err, "batch classification aborted")
	}

	c.logger.Debug("card batch classified", slog.Int("size", len(raws)), slog.Int("workers", c.workers))

	return items, nil
}

// CardTypes returns the catalog entries, skipping empty slots.
func (c *cardUseCase) CardTypes(ctx context.Context) ([]*domain.CardType, error) {
	types := c.catalog.CardTypes()
	out := make([]*domain.CardType, 0, len(types))
	for _, t := range types {
		if t != nil {
			out = append(out, t)
		}
	}
	return out, nil
}

// CardType looks a catalog entry up by name.
func (c *cardUseCase) CardType(ctx context.Context, name string) (*domain.CardType, error) {
	cardType, ok := c.catalog.Lookup(name)
	if !ok {
		return nil, apperrors.Wrapf(domain.ErrCardTypeNotFound, "card type %q", name)
	}
	return cardType, nil
}

// CheckDigit computes the Luhn check digit for payload.
func (c *cardUseCase) CheckDigit(ctx context.Context, payload string) (int, error) {
	return domain.LuhnCheckDigit(payload)
}

func (c *cardUseCase) record(ctx context.Context, result *domain.ValidatedCard) {
	outcome := metrics.OutcomeInvalid
	switch {
	case !result.Identified():
		outcome = metrics.OutcomeUnidentified
	case result.Valid:
		outcome = metrics.OutcomeValid
	}
	c.metrics.RecordClassification(ctx, result.TypeName(), outcome)
}
