package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkshelf/linkshelf/internal/dashboard"
	"github.com/linkshelf/linkshelf/internal/domain"
	"github.com/linkshelf/linkshelf/internal/httpserver/deps"
)

type listResponse struct {
	Bookmarks  []domain.Bookmark   `json:"bookmarks"`
	Total      int                 `json:"total"`
	Categories int                 `json:"categories"`
	Query      string              `json:"query,omitempty"`
	Edit       dashboard.EditState `json:"edit"`
}

// ListBookmarks returns the filtered listing. An optional q parameter
// updates the search query before listing; total always counts the whole
// collection.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("q") {
			d.Dashboard.SetSearchQuery(r.URL.Query().Get("q"))
		}

		bookmarks := d.Dashboard.Bookmarks()
		if bookmarks == nil {
			bookmarks = []domain.Bookmark{}
		}

		writeJSON(w, http.StatusOK, listResponse{
			Bookmarks:  bookmarks,
			Total:      d.Dashboard.Total(),
			Categories: d.Dashboard.CategoryCount(),
			Query:      d.Dashboard.SearchQuery(),
			Edit:       d.Dashboard.EditState(),
		})
	}
}

type submitResponse struct {
	Result string              `json:"result"`
	Edit   dashboard.EditState `json:"edit"`
}

// SubmitBookmark submits the posted draft: an update when a bookmark is
// selected for edit, a create otherwise. An incomplete draft is reported as
// 422 with the skipped result; nothing reaches the store.
func SubmitBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.Draft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid draft payload"})
			return
		}

		result, err := d.Dashboard.SubmitEdit(r.Context(), draft)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		status := http.StatusOK
		switch result {
		case domain.SubmitCreated:
			status = http.StatusCreated
		case domain.SubmitSkipped:
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, submitResponse{
			Result: result.String(),
			Edit:   d.Dashboard.EditState(),
		})
	}
}

// SelectBookmark switches the edit session to the bookmark in the URL.
func SelectBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !d.Dashboard.SelectForEdit(id) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "bookmark not found"})
			return
		}
		writeJSON(w, http.StatusOK, d.Dashboard.EditState())
	}
}

// DeleteBookmark removes one bookmark and reloads the collection.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Dashboard.DeleteBookmark(r.Context(), id); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
