package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkshelf_http_requests_total",
		Help: "Total number of HTTP requests processed.",
	}, []string{"method", "route"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "linkshelf_http_request_duration_seconds",
		Help:    "Histogram of latencies for HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	reloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkshelf_reloads_total",
		Help: "Total number of full collection reloads by result.",
	}, []string{"result"})

	reloadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "linkshelf_reload_duration_seconds",
		Help:    "Histogram of full collection reload latencies.",
		Buckets: prometheus.DefBuckets,
	})

	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkshelf_mutations_total",
		Help: "Total number of remote mutations by operation and result.",
	}, []string{"op", "result"})

	collectionSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "linkshelf_bookmarks",
		Help: "Number of bookmarks in the local collection.",
	})
)

// Middleware records one request counter and one latency observation per
// HTTP request, labeled by chi route pattern.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := routePattern(r)
			status := strconv.Itoa(ww.Status())
			httpRequestsTotal.WithLabelValues(r.Method, route).Inc()
			httpRequestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		})
	}
}

// Handler exposes the prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveReload records one reload attempt. result is "ok", "error" or
// "stale" (a reload whose response was discarded in favor of a newer one).
func ObserveReload(elapsed time.Duration, result string) {
	reloadsTotal.WithLabelValues(result).Inc()
	reloadDuration.Observe(elapsed.Seconds())
}

// CountMutation records one mutation attempt by operation and result.
func CountMutation(op, result string) {
	mutationsTotal.WithLabelValues(op, result).Inc()
}

// SetCollectionSize tracks the size of the local collection.
func SetCollectionSize(n int) {
	collectionSize.Set(float64(n))
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := strings.TrimSpace(rctx.RoutePattern()); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
