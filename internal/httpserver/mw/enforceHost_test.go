package mw

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/linkshelf/linkshelf/internal/logger"
)

func serveWithAllowlist(t *testing.T, allowed []string, host string) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := EnforceHost(allowed, logger.New("error", true))(next)

	req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
	req.Host = host
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestEnforceHost(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		host       string
		wantStatus int
	}{
		{"empty allowlist passes through", nil, "anything.example.com", http.StatusOK},
		{"exact match", []string{"links.example.com"}, "links.example.com", http.StatusOK},
		{"wildcard match", []string{"*.example.com"}, "links.example.com", http.StatusOK},
		{"wildcard rejects other domain", []string{"*.example.com"}, "links.example.org", http.StatusForbidden},
		{"unknown host rejected", []string{"links.example.com"}, "evil.example.com", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveWithAllowlist(t, tt.allowed, tt.host)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestEnforceHostRejectionBody(t *testing.T) {
	rec := serveWithAllowlist(t, []string{"links.example.com"}, "evil.example.com")

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("rejection body is not JSON: %v", err)
	}
	if body["error"] == "" {
		t.Errorf("rejection body = %v, want an error field", body)
	}
}
