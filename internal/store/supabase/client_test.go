package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/linkshelf/linkshelf/internal/domain"
	"github.com/linkshelf/linkshelf/internal/logger"
	"github.com/linkshelf/linkshelf/internal/store"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Options{
		BaseURL:     srv.URL,
		APIKey:      "anon-key",
		AccessToken: "user-token",
	}, logger.New("error", true))
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantZero bool
		want     time.Time
	}{
		{
			name:  "rfc3339",
			input: "2025-03-20T12:00:00Z",
			want:  time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with fraction and offset",
			input: "2025-03-20T12:00:00.123456+00:00",
			want:  time.Date(2025, time.March, 20, 12, 0, 0, 123456000, time.UTC),
		},
		{
			name:  "postgres without zone",
			input: "2025-03-20T12:00:00.5",
			want:  time.Date(2025, time.March, 20, 12, 0, 0, 500000000, time.UTC),
		},
		{name: "empty", input: "", wantZero: true},
		{name: "garbage", input: "not-a-date", wantZero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTimestamp(tt.input)
			if tt.wantZero {
				if !got.IsZero() {
					t.Errorf("parseTimestamp(%q) = %v, want zero", tt.input, got)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestQueryBookmarks(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/bookmarks" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("user_id"); got != "eq.owner-1" {
			t.Errorf("user_id filter = %q, want eq.owner-1", got)
		}
		if got := r.URL.Query().Get("order"); got != "created_at.desc" {
			t.Errorf("order = %q, want created_at.desc", got)
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Errorf("apikey header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"b","title":"Two","url":"https://two","category":"","user_id":"owner-1","created_at":"2025-03-20T10:00:00Z"},
			{"id":"a","title":"One","url":"https://one","category":"ref","user_id":"owner-1","created_at":"bogus"}
		]`))
	}))

	bookmarks, err := c.QueryBookmarks(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("QueryBookmarks() error = %v", err)
	}
	if len(bookmarks) != 2 {
		t.Fatalf("got %d bookmarks, want 2", len(bookmarks))
	}
	if bookmarks[0].ID != "b" || bookmarks[0].Title != "Two" {
		t.Errorf("first bookmark = %+v", bookmarks[0])
	}
	if !bookmarks[1].CreatedAt.IsZero() {
		t.Errorf("unparsable created_at should yield zero time, got %v", bookmarks[1].CreatedAt)
	}
}

func TestQueryBookmarksRemoteError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := c.QueryBookmarks(context.Background(), "owner-1")
	var remote *store.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("error = %v, want *store.RemoteError", err)
	}
	if remote.Op != "query" || remote.Status != http.StatusInternalServerError {
		t.Errorf("RemoteError = %+v", remote)
	}
}

func TestCurrentIdentityUnauthenticated(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid token", http.StatusUnauthorized)
	}))

	_, err := c.CurrentIdentity(context.Background())
	if !errors.Is(err, store.ErrUnauthenticated) {
		t.Errorf("error = %v, want ErrUnauthenticated", err)
	}
}

func TestCurrentIdentity(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"owner-1","email":"me@example.com","created_at":"2024-01-02T03:04:05Z"}`))
	}))

	sess, err := c.CurrentIdentity(context.Background())
	if err != nil {
		t.Fatalf("CurrentIdentity() error = %v", err)
	}
	if sess.UserID != "owner-1" || sess.Email != "me@example.com" {
		t.Errorf("session = %+v", sess)
	}
}

func TestUpdateBookmarkSendsOnlyMutableFields(t *testing.T) {
	var payload map[string]interface{}
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %q, want PATCH", r.Method)
		}
		if got := r.URL.Query().Get("id"); got != "eq.bm-1" {
			t.Errorf("id filter = %q, want eq.bm-1", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	err := c.UpdateBookmark(context.Background(), "bm-1", domain.Draft{
		Title: "New Title", URL: "https://new", Category: "ref",
	})
	if err != nil {
		t.Fatalf("UpdateBookmark() error = %v", err)
	}

	for _, immutable := range []string{"id", "user_id", "created_at"} {
		if _, ok := payload[immutable]; ok {
			t.Errorf("update payload must not carry %q, got %v", immutable, payload)
		}
	}
	if payload["title"] != "New Title" {
		t.Errorf("title = %v, want New Title", payload["title"])
	}
}
