// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	leadsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_created_total",
			Help: "Total number of leads created",
		},
	)

	leadValidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_validation_failures_total",
			Help: "Total number of rejected lead submissions",
		},
	)

	kvkLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kvk_lookups_total",
			Help: "Total number of company registry lookups by result",
		},
		[]string{"result"},
	)
)

// ObserveRequest records one served request. path should be the route template.
func ObserveRequest(method, path string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func RecordLeadCreated() {
	leadsCreated.Inc()
}

func RecordLeadValidationFailure() {
	leadValidationFailures.Inc()
}

func RecordKvkLookup(result string) {
	kvkLookups.WithLabelValues(result).Inc()
}
