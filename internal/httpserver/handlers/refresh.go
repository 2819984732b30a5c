package handlers

import (
	"net/http"

	"github.com/linkshelf/linkshelf/internal/httpserver/deps"
)

type refreshResponse struct {
	Total int `json:"total"`
}

// Refresh reloads the collection from the remote store on demand.
func Refresh(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Dashboard.Refresh(r.Context()); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, refreshResponse{Total: d.Dashboard.Total()})
	}
}
