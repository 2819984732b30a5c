package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/linkshelf/linkshelf/internal/domain"
	"github.com/linkshelf/linkshelf/internal/store"
)

func TestInsertAssignsIDAndTimestamp(t *testing.T) {
	now := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return now }))

	if err := s.InsertBookmark(context.Background(), "owner-1", domain.Draft{Title: "t", URL: "u"}); err != nil {
		t.Fatalf("InsertBookmark() error = %v", err)
	}

	bookmarks, err := s.QueryBookmarks(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("QueryBookmarks() error = %v", err)
	}
	if len(bookmarks) != 1 {
		t.Fatalf("got %d bookmarks, want 1", len(bookmarks))
	}
	if bookmarks[0].ID == "" {
		t.Error("store should assign an id")
	}
	if !bookmarks[0].CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", bookmarks[0].CreatedAt, now)
	}
}

func TestQueryScopedToOwner(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.InsertBookmark(ctx, "owner-1", domain.Draft{Title: "mine", URL: "u"}); err != nil {
		t.Fatal(err)
	}
	if err := s.InsertBookmark(ctx, "owner-2", domain.Draft{Title: "theirs", URL: "u"}); err != nil {
		t.Fatal(err)
	}

	bookmarks, err := s.QueryBookmarks(ctx, "owner-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(bookmarks) != 1 || bookmarks[0].Title != "mine" {
		t.Errorf("owner scoping broken: %+v", bookmarks)
	}
}

func TestQueryOrdersNewestFirst(t *testing.T) {
	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	clock := base
	s := New(WithClock(func() time.Time {
		clock = clock.Add(time.Hour)
		return clock
	}))
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if err := s.InsertBookmark(ctx, "owner-1", domain.Draft{Title: title, URL: "u"}); err != nil {
			t.Fatal(err)
		}
	}

	bookmarks, err := s.QueryBookmarks(ctx, "owner-1")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"third", "second", "first"}
	for i, b := range bookmarks {
		if b.Title != want[i] {
			t.Errorf("bookmarks[%d].Title = %q, want %q", i, b.Title, want[i])
		}
	}
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	s := New()
	if err := s.UpdateBookmark(context.Background(), "ghost", domain.Draft{Title: "t", URL: "u"}); err != nil {
		t.Errorf("UpdateBookmark() on missing id = %v, want nil", err)
	}
}

func TestSignOutInvalidatesIdentity(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.CurrentIdentity(ctx); err != nil {
		t.Fatalf("CurrentIdentity() before sign-out error = %v", err)
	}
	if err := s.SignOut(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CurrentIdentity(ctx); !errors.Is(err, store.ErrUnauthenticated) {
		t.Errorf("CurrentIdentity() after sign-out = %v, want ErrUnauthenticated", err)
	}
}
