package metrics

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// httpMetrics holds HTTP-specific metric instruments.
type httpMetrics struct {
	requestCounter metric.Int64Counter
	durationHisto  metric.Float64Histogram
	skipPaths      []string
}

// HTTPMetricsMiddleware returns a Gin middleware that records request counts and durations
// with method, path and status_code labels. The path label is the route pattern
// (e.g. /v1/cards/classify) so cardinality stays bounded. Requests whose route is listed
// in skipPaths, such as health probes, are not recorded.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string, skipPaths ...string) gin.HandlerFunc {
	meter := meterProvider.Meter(namespace)

	requestCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_total", namespace),
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return passthrough
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_http_request_duration_seconds", namespace),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return passthrough
	}

	m := &httpMetrics{
		requestCounter: requestCounter,
		durationHisto:  durationHisto,
		skipPaths:      skipPaths,
	}

	return m.handle
}

func (m *httpMetrics) handle(c *gin.Context) {
	start := time.Now()

	c.Next()

	path := sanitizePath(c.FullPath())
	if slices.Contains(m.skipPaths, path) {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("method", c.Request.Method),
		attribute.String("path", path),
		attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
	)

	m.requestCounter.Add(c.Request.Context(), 1, attrs)
	m.durationHisto.Record(c.Request.Context(), time.Since(start).Seconds(), attrs)
}

// passthrough is used when the instruments cannot be created.
func passthrough(c *gin.Context) {
	c.Next()
}

// sanitizePath returns the matched route pattern, or "unknown" when no route matched.
func sanitizePath(fullPath string) string {
	if fullPath == "" {
		return "unknown"
	}
	return fullPath
}
