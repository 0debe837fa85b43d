package app

import (
	"fmt"
	"log/slog"

	"github.com/allisson/cardid/internal/card/domain"
	cardHTTP "github.com/allisson/cardid/internal/card/http"
	cardService "github.com/allisson/cardid/internal/card/service"
	cardUsecase "github.com/allisson/cardid/internal/card/usecase"
)

// Catalog returns the card type catalog. It is loaded from CATALOG_FILE when set,
// otherwise the embedded default catalog is used.
func (c *Container) Catalog() (*domain.Catalog, error) {
	var err error
	c.catalogInit.Do(func() {
		c.catalog, err = c.initCatalog()
		if err != nil {
			c.initErrors["catalog"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["catalog"]; exists {
		return nil, storedErr
	}
	return c.catalog, nil
}

// CardUseCase returns the card use case.
func (c *Container) CardUseCase() (cardUsecase.CardUseCase, error) {
	var err error
	c.cardUseCaseInit.Do(func() {
		c.cardUseCase, err = c.initCardUseCase()
		if err != nil {
			c.initErrors["cardUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardUseCase"]; exists {
		return nil, storedErr
	}
	return c.cardUseCase, nil
}

// CardHandler returns the card HTTP handler.
func (c *Container) CardHandler() (*cardHTTP.CardHandler, error) {
	var err error
	c.cardHandlerInit.Do(func() {
		c.cardHandler, err = c.initCardHandler()
		if err != nil {
			c.initErrors["cardHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardHandler"]; exists {
		return nil, storedErr
	}
	return c.cardHandler, nil
}

// initCatalog loads the configured catalog.
func (c *Container) initCatalog() (*domain.Catalog, error) {
	if c.config.CatalogFile == "" {
		catalog, err := cardService.DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("failed to load default catalog: %w", err)
		}
		return catalog, nil
	}

	catalog, err := cardService.LoadCatalogFile(c.config.CatalogFile, cardService.CatalogOptions{
		RequireNames: c.config.CatalogRequireNames,
	})
	if err != nil {
		return nil, err
	}

	c.Logger().Info("card catalog loaded",
		slog.String("file", c.config.CatalogFile),
		slog.Int("card_types", catalog.Len()))

	return catalog, nil
}

// initCardUseCase creates the card use case, wrapped with metrics when enabled.
func (c *Container) initCardUseCase() (cardUsecase.CardUseCase, error) {
	catalog, err := c.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog for card use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for card use case: %w", err)
	}

	baseUseCase := cardUsecase.NewCardUseCase(catalog, c.config.BatchWorkers, businessMetrics, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		return cardUsecase.NewCardUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initCardHandler creates the card HTTP handler.
func (c *Container) initCardHandler() (*cardHTTP.CardHandler, error) {
	cardUseCase, err := c.CardUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get card use case for card handler: %w", err)
	}

	return cardHTTP.NewCardHandler(cardUseCase, c.config.BatchMaxSize, c.Logger()), nil
}
