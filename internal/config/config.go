// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ServerShutdownTimeout bounds the graceful shutdown of the servers.
	ServerShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// CatalogFile is the path of a JSON card type catalog. Empty uses the built-in catalog.
	CatalogFile string
	// CatalogRequireNames rejects catalog definitions without a name.
	CatalogRequireNames bool

	// BatchWorkers is the number of goroutines used to classify a batch.
	BatchWorkers int
	// BatchMaxSize is the maximum number of card numbers accepted in one batch request.
	BatchMaxSize int

	// RateLimitEnabled indicates whether per client IP rate limiting is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size per client IP.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:            env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:            env.GetInt("SERVER_PORT", 8080),
		ServerShutdownTimeout: env.GetDuration("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Catalog
		CatalogFile:         env.GetString("CATALOG_FILE", ""),
		CatalogRequireNames: env.GetBool("CATALOG_REQUIRE_NAMES", true),

		// Batch classification
		BatchWorkers: env.GetInt("BATCH_WORKERS", 4),
		BatchMaxSize: env.GetInt("BATCH_MAX_SIZE", 1000),

		// Rate Limiting (IP-based)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "cardid"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// Validate checks the configuration for values the application cannot run with.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.BatchWorkers, validation.Required, validation.Min(1), validation.Max(1024)),
		validation.Field(&c.BatchMaxSize, validation.Required, validation.Min(1)),
		validation.Field(&c.RateLimitRequestsPerSec,
			validation.When(c.RateLimitEnabled, validation.Required, validation.Min(0.0)),
		),
		validation.Field(&c.RateLimitBurst, validation.When(c.RateLimitEnabled, validation.Required, validation.Min(1))),
		validation.Field(&c.MetricsNamespace, validation.When(c.MetricsEnabled, validation.Required)),
		validation.Field(&c.MetricsPort,
			validation.When(c.MetricsEnabled, validation.Required, validation.Min(1), validation.Max(65535)),
		),
	)
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv searches for a .env file from the current directory up to the root
// and loads the first one found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
