// Package metrics exposes the service's Prometheus collectors on a private
// registry so the /metrics output stays limited to what this service owns.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var (
	httpRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Name: "talent_http_requests_total",
		Help: "HTTP requests by route, method and status code.",
	}, []string{"path", "method", "status"})

	httpDuration = promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "talent_http_request_duration_seconds",
		Help:    "HTTP request latency by route and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method"})

	candidatesImported = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "talent_candidates_imported_total",
		Help: "Candidate records created through CSV bulk import.",
	})

	importFailures = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "talent_import_failures_total",
		Help: "CSV bulk imports aborted by validation or storage errors.",
	})
)

// RecordHTTPRequest counts a finished request.
func RecordHTTPRequest(path, method, status string) {
	httpRequests.WithLabelValues(path, method, status).Inc()
}

// ObserveHTTPDuration records request latency in seconds.
func ObserveHTTPDuration(path, method string, seconds float64) {
	httpDuration.WithLabelValues(path, method).Observe(seconds)
}

// RecordImport counts candidates created by a successful bulk import.
func RecordImport(n int) {
	candidatesImported.Add(float64(n))
}

// RecordImportFailure counts an aborted bulk import.
func RecordImportFailure() {
	importFailures.Inc()
}

// Handler returns the HTTP handler serving the private registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
