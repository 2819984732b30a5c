package domain

import (
	"sort"
	"time"
)

// Bookmark is a saved link owned by exactly one user.
//
// ID, OwnerID and CreatedAt are assigned by the remote store on creation and
// are never mutated locally. A zero CreatedAt means the store returned a
// timestamp that could not be parsed; such bookmarks are displayed but never
// counted by the activity histogram.
type Bookmark struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Category  string    `json:"category"`
	OwnerID   string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the authenticated identity context for the current page view.
// It is owned by the session guard and read-only everywhere else.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Draft carries the three mutable bookmark fields as edited by the user.
type Draft struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// Incomplete reports whether a required field is missing.
// Title and URL are required; Category may be empty.
func (d Draft) Incomplete() bool {
	return d.Title == "" || d.URL == ""
}

// SubmitResult reports what a create-or-update submit did.
type SubmitResult int

const (
	// SubmitSkipped means the draft was missing title or url and nothing was
	// sent to the store. The draft is kept so the user can finish it.
	SubmitSkipped SubmitResult = iota
	SubmitCreated
	SubmitUpdated
)

func (r SubmitResult) String() string {
	switch r {
	case SubmitCreated:
		return "created"
	case SubmitUpdated:
		return "updated"
	default:
		return "skipped"
	}
}

// CountCategories returns the number of distinct non-empty categories.
func CountCategories(bookmarks []Bookmark) int {
	seen := make(map[string]struct{})
	for _, b := range bookmarks {
		if b.Category == "" {
			continue
		}
		seen[b.Category] = struct{}{}
	}
	return len(seen)
}

// SortNewestFirst orders bookmarks by CreatedAt descending, breaking ties by
// ID descending so that repeated loads of the same collection are
// byte-identical.
func SortNewestFirst(bookmarks []Bookmark) {
	sort.SliceStable(bookmarks, func(i, j int) bool {
		if !bookmarks[i].CreatedAt.Equal(bookmarks[j].CreatedAt) {
			return bookmarks[i].CreatedAt.After(bookmarks[j].CreatedAt)
		}
		return bookmarks[i].ID > bookmarks[j].ID
	})
}
