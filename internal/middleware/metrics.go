package middleware

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "limon_http_requests_total",
			Help: "HTTP requests processed, by method and status code.",
		},
		[]string{"code", "method"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "limon_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and status code.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code", "method"},
	)
)

// Metrics records request counts and latencies for the /metrics endpoint.
func Metrics(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(requestDuration,
		promhttp.InstrumentHandlerCounter(requestsTotal, next))
}
