package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/linkshelf/linkshelf/internal/domain"
	"github.com/linkshelf/linkshelf/internal/logger"
	"github.com/linkshelf/linkshelf/internal/store"
	"github.com/linkshelf/linkshelf/internal/store/memory"
)

func testLogger() logger.Logger {
	return logger.New("error", true)
}

func TestEstablishSuccess(t *testing.T) {
	session := domain.Session{
		UserID:    "user-1",
		Email:     "me@example.com",
		CreatedAt: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	st := memory.New(memory.WithSession(session))
	g := New(st, testLogger())

	got, err := g.Establish(context.Background())
	if err != nil {
		t.Fatalf("Establish() error = %v", err)
	}
	if got.UserID != "user-1" || got.Email != "me@example.com" {
		t.Errorf("Establish() = %+v, want %+v", got, session)
	}

	current, ok := g.Session()
	if !ok || current.UserID != "user-1" {
		t.Errorf("Session() = %+v, %v after successful establish", current, ok)
	}
}

type brokenStore struct {
	store.RemoteStore
	err error
}

func (b *brokenStore) CurrentIdentity(ctx context.Context) (domain.Session, error) {
	return domain.Session{}, b.err
}

func TestEstablishMapsAllFailuresToUnauthenticated(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"auth rejection", store.ErrUnauthenticated},
		{"transport failure", &store.RemoteError{Op: "identity", Err: errors.New("connection refused")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&brokenStore{err: tt.err}, testLogger())

			_, err := g.Establish(context.Background())
			if !errors.Is(err, store.ErrUnauthenticated) {
				t.Errorf("Establish() error = %v, want ErrUnauthenticated", err)
			}
			if _, ok := g.Session(); ok {
				t.Error("failed establish must leave the guard unauthenticated")
			}
		})
	}
}

func TestSignOutClearsSession(t *testing.T) {
	st := memory.New(memory.WithSession(domain.Session{UserID: "user-1"}))
	g := New(st, testLogger())
	ctx := context.Background()

	if _, err := g.Establish(ctx); err != nil {
		t.Fatal(err)
	}
	if err := g.SignOut(ctx); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if _, ok := g.Session(); ok {
		t.Error("Session() still present after sign-out")
	}

	// The store invalidated the token too.
	if _, err := st.CurrentIdentity(ctx); !errors.Is(err, store.ErrUnauthenticated) {
		t.Errorf("CurrentIdentity() after sign-out = %v, want ErrUnauthenticated", err)
	}
}

type failingSignOut struct {
	store.RemoteStore
}

func (f *failingSignOut) SignOut(ctx context.Context) error {
	return &store.RemoteError{Op: "signout", Err: errors.New("gateway timeout")}
}

func TestSignOutClearsLocalSessionOnRemoteFailure(t *testing.T) {
	st := memory.New(memory.WithSession(domain.Session{UserID: "user-1"}))
	g := New(&failingSignOut{RemoteStore: st}, testLogger())
	ctx := context.Background()

	if _, err := g.Establish(ctx); err != nil {
		t.Fatal(err)
	}

	err := g.SignOut(ctx)
	var remote *store.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("SignOut() error = %v, want *store.RemoteError", err)
	}
	if _, ok := g.Session(); ok {
		t.Error("local session must be cleared even when the remote call fails")
	}
}
