// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricPrefix = "strompreis_"

var (
	// HTTPRequests counts handled requests by route and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: metricPrefix + "http_requests_total",
		Help: "Handled HTTP requests",
	}, []string{"path", "status"})

	// FetchDuration observes upstream market data fetch latency.
	FetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    metricPrefix + "upstream_fetch_duration_seconds",
		Help:    "Upstream market data fetch latency",
		Buckets: prometheus.DefBuckets,
	})

	// FetchErrors counts failed upstream fetches.
	FetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "upstream_fetch_errors_total",
		Help: "Failed upstream market data fetches",
	})

	// CacheHits counts range-cache lookups served without an upstream call.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "range_cache_hits_total",
		Help: "Market data range cache hits",
	})

	// CacheMisses counts range-cache lookups that went upstream.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "range_cache_misses_total",
		Help: "Market data range cache misses",
	})
)

// Middleware records per-route request counts.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequests.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
