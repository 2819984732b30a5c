package handlers

import (
	"net/http"
	"time"

	"github.com/linkshelf/linkshelf/internal/httpserver/deps"
)

type sessionResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Session returns the signed-in identity, or 401 when none is established.
func Session(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := d.Dashboard.Session()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not signed in"})
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse{
			UserID:    session.UserID,
			Email:     session.Email,
			CreatedAt: session.CreatedAt,
		})
	}
}

// SignOut ends the session and clears all local bookmark state. The local
// teardown happens even when the remote revocation fails, so a failure is
// still reported as 502 after the state is gone.
func SignOut(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Dashboard.SignOut(r.Context()); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
