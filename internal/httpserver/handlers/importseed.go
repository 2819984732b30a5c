package handlers

import (
	"net/http"

	"github.com/linkshelf/linkshelf/internal/httpserver/deps"
	"github.com/linkshelf/linkshelf/internal/logger"
)

type importResponse struct {
	Inserted int `json:"inserted"`
	Total    int `json:"total"`
}

// ImportSeed inserts the bookmarks from the configured seed file. 409 when
// no seed file is configured.
func ImportSeed(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.SeedFile == "" {
			writeJSON(w, http.StatusConflict, errorResponse{Error: "no seed file configured"})
			return
		}

		inserted, err := d.Dashboard.ImportSeed(r.Context(), d.SeedFile)
		if err != nil {
			d.Logger.Warn("seed import failed",
				logger.String("path", d.SeedFile),
				logger.Error(err))
			writeError(w, d.Logger, err)
			return
		}

		writeJSON(w, http.StatusOK, importResponse{
			Inserted: inserted,
			Total:    d.Dashboard.Total(),
		})
	}
}
