// Package memory provides an in-process remote store. It backs the dev/demo
// driver and the test suites. Like the real store it assigns ids and
// creation timestamps itself; the engine never synthesizes them.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linkshelf/linkshelf/internal/domain"
	"github.com/linkshelf/linkshelf/internal/store"
)

// Store is an in-memory RemoteStore. Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	session   domain.Session
	signedOut bool
	bookmarks map[string]domain.Bookmark
	now       func() time.Time
}

type Option func(*Store)

// WithClock injects the timestamp source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSession overrides the default local session.
func WithSession(sess domain.Session) Option {
	return func(s *Store) { s.session = sess }
}

func New(opts ...Option) *Store {
	s := &Store{
		bookmarks: make(map[string]domain.Bookmark),
		now:       time.Now,
		session: domain.Session{
			UserID: "local",
			Email:  "local@linkshelf",
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.session.CreatedAt.IsZero() {
		s.session.CreatedAt = s.now().UTC()
	}
	return s
}

func (s *Store) CurrentIdentity(ctx context.Context) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.signedOut {
		return domain.Session{}, store.ErrUnauthenticated
	}
	return s.session, nil
}

func (s *Store) QueryBookmarks(ctx context.Context, ownerID string) ([]domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookmarks := make([]domain.Bookmark, 0, len(s.bookmarks))
	for _, b := range s.bookmarks {
		if b.OwnerID == ownerID {
			bookmarks = append(bookmarks, b)
		}
	}
	domain.SortNewestFirst(bookmarks)
	return bookmarks, nil
}

func (s *Store) InsertBookmark(ctx context.Context, ownerID string, draft domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.bookmarks[id] = domain.Bookmark{
		ID:        id,
		Title:     draft.Title,
		URL:       draft.URL,
		Category:  draft.Category,
		OwnerID:   ownerID,
		CreatedAt: s.now().UTC(),
	}
	return nil
}

// UpdateBookmark patches the three mutable fields. Updating an id that does
// not exist is a no-op, matching the remote store's behavior for a filtered
// update that touches zero rows.
func (s *Store) UpdateBookmark(ctx context.Context, id string, draft domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return nil
	}
	b.Title = draft.Title
	b.URL = draft.URL
	b.Category = draft.Category
	s.bookmarks[id] = b
	return nil
}

func (s *Store) DeleteBookmark(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.bookmarks, id)
	return nil
}

func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.signedOut = true
	return nil
}

// Seed preloads fully-formed bookmarks, for tests that need explicit ids or
// timestamps. Entries without an id are rejected.
func (s *Store) Seed(bookmarks ...domain.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range bookmarks {
		if b.ID == "" {
			return fmt.Errorf("seed bookmark %q has no id", b.Title)
		}
		s.bookmarks[b.ID] = b
	}
	return nil
}
