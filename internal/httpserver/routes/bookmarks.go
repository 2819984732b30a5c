package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkshelf/linkshelf/internal/httpserver/deps"
	"github.com/linkshelf/linkshelf/internal/httpserver/handlers"
	"github.com/linkshelf/linkshelf/internal/httpserver/mw"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	sub := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	sub.Get("/api/bookmarks", handlers.ListBookmarks(d))
	sub.Post("/api/bookmarks", handlers.SubmitBookmark(d))
	sub.Post("/api/bookmarks/{id}/select", handlers.SelectBookmark(d))
	sub.Delete("/api/bookmarks/{id}", handlers.DeleteBookmark(d))
}
