package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkshelf/linkshelf/internal/httpserver/deps"
	"github.com/linkshelf/linkshelf/internal/metrics"
)

func init() { Register(registerMetrics) }

func registerMetrics(r chi.Router, d deps.Deps) {
	r.Method("GET", "/metrics", metrics.Handler())
}
