package http

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// httpMetrics holds the request instruments registered by the metrics
// stage. Each Handler carries its own registry so that repeated pipeline
// construction (restarts, tests) never trips duplicate registration.
type httpMetrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newHTTPMetrics() *httpMetrics {
	m := &httpMetrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method and status code.",
		}, []string{"method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
	m.registry.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

// withMetrics records a counter and latency observation per request and
// exposes the scrape endpoint on the configured metrics path. The stage
// is a no-op pass-through when metrics are disabled in configuration.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if !h.cfg.Metrics.Enabled {
		return next
	}

	if h.metrics == nil {
		h.metrics = newHTTPMetrics()
	}
	scrape := promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == h.cfg.Metrics.Path && r.Method == http.MethodGet {
			scrape.ServeHTTP(w, r)
			return
		}

		timer := prometheus.NewTimer(h.metrics.requestDuration.WithLabelValues(r.Method))
		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		timer.ObserveDuration()
		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.requestsTotal.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()
	})
}
