package handlers

import (
	"net/http"

	"github.com/linkshelf/linkshelf/internal/domain"
	"github.com/linkshelf/linkshelf/internal/httpserver/deps"
)

type activityResponse struct {
	Buckets []domain.ActivityBucket `json:"buckets"`
}

// Activity returns the trailing seven day histogram, oldest day first.
func Activity(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, activityResponse{
			Buckets: d.Dashboard.WeeklyActivity(),
		})
	}
}
