package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/linkshelf/linkshelf/internal/logger"
	"github.com/linkshelf/linkshelf/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps domain errors to status codes: an unauthenticated session
// is 401, a remote store failure is 502, anything else 500.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var remote *store.RemoteError

	switch {
	case errors.Is(err, store.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not signed in"})
	case errors.As(err, &remote):
		log.Warn("remote store failure", logger.Error(err))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "bookmark store unavailable"})
	default:
		log.Error("unexpected handler failure", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
