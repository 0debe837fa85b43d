// Package http provides the HTTP server, router and shared middleware.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/cardid/internal/card/domain"
	cardHTTP "github.com/allisson/cardid/internal/card/http"
	"github.com/allisson/cardid/internal/config"
	"github.com/allisson/cardid/internal/metrics"
)

// Server represents the HTTP server.
type Server struct {
	server       *http.Server
	router       *gin.Engine
	logger       *slog.Logger
	catalog      *domain.Catalog
	shuttingDown atomic.Bool
}

// NewServer creates a new HTTP server. The catalog is only used by the readiness probe.
func NewServer(
	catalog *domain.Catalog,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		catalog: catalog,
		logger:  logger,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// SetupRouter builds the Gin router with middleware and card routes.
// ctx bounds background work started by middleware such as the rate limiter cleanup.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	cardHandler *cardHTTP.CardHandler,
	metricsProvider *metrics.Provider,
) {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			metricsProvider.MeterProvider(),
			cfg.MetricsNamespace,
			"/health",
			"/ready",
		))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	{
		cards := v1.Group("/cards")
		if cfg.RateLimitEnabled {
			cards.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
		}
		cards.POST("/classify", cardHandler.ClassifyHandler)
		cards.POST("/classify/batch", cardHandler.ClassifyBatchHandler)
		cards.POST("/check-digit", cardHandler.CheckDigitHandler)

		cardTypes := v1.Group("/card-types")
		cardTypes.GET("", cardHandler.ListCardTypesHandler)
		cardTypes.GET("/:name", cardHandler.GetCardTypeHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. SetupRouter must be called first.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server. The readiness probe fails from now on.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether a catalog is loaded and the server is accepting traffic.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.catalog == nil || s.catalog.Len() == 0 {
		components["catalog"] = "error"
		ready = false
	} else {
		components["catalog"] = "ok"
		components["card_types"] = s.catalog.Len()
	}

	if s.shuttingDown.Load() {
		components["server"] = "shutting_down"
		ready = false
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
