package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkshelf/linkshelf/internal/httpserver/deps"
	"github.com/linkshelf/linkshelf/internal/httpserver/handlers"
	"github.com/linkshelf/linkshelf/internal/httpserver/mw"
)

func init() { Register(registerActivity) }

func registerActivity(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/api/activity", handlers.Activity(d))
}
