// Package store defines the narrow contract the engine requires from the
// remote authoritative store. The engine never talks to a database directly;
// it consumes this interface and treats whatever is behind it as the single
// source of truth.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/linkshelf/linkshelf/internal/domain"
)

// ErrUnauthenticated indicates that no valid session exists at the remote
// store. Identity lookup failures are treated the same as an absent session.
var ErrUnauthenticated = errors.New("no authenticated session")

// RemoteError wraps a failed remote store call. Callers leave local state
// untouched when one is returned; there are no automatic retries.
type RemoteError struct {
	Op     string // "identity", "query", "insert", "update", "delete", "signout"
	Status int    // HTTP status when applicable, 0 otherwise
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote %s failed (status %d): %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// RemoteStore is the authenticated CRUD surface over the bookmarks
// collection plus the identity lookup.
//
// QueryBookmarks must return bookmarks scoped to the given owner, ordered by
// CreatedAt descending. Mutations return only an error; the caller is
// expected to reload the full collection afterwards rather than patch any
// local copy.
type RemoteStore interface {
	CurrentIdentity(ctx context.Context) (domain.Session, error)
	QueryBookmarks(ctx context.Context, ownerID string) ([]domain.Bookmark, error)
	InsertBookmark(ctx context.Context, ownerID string, draft domain.Draft) error
	UpdateBookmark(ctx context.Context, id string, draft domain.Draft) error
	DeleteBookmark(ctx context.Context, id string) error
	SignOut(ctx context.Context) error
}
