// Package guard gates everything behind an authenticated session. The
// session is established once by asking the remote store who the bearer
// token belongs to; until that succeeds no bookmark state exists.
package guard

import (
	"context"
	"errors"
	"sync"

	"github.com/linkshelf/linkshelf/internal/domain"
	"github.com/linkshelf/linkshelf/internal/logger"
	"github.com/linkshelf/linkshelf/internal/store"
)

// Guard holds the current session, if any.
type Guard struct {
	store  store.RemoteStore
	logger logger.Logger

	mu      sync.RWMutex
	session *domain.Session
}

func New(st store.RemoteStore, log logger.Logger) *Guard {
	return &Guard{
		store:  st,
		logger: log,
	}
}

// Establish performs the single identity lookup. Any failure, transport
// included, leaves the guard unauthenticated and maps to
// store.ErrUnauthenticated; the underlying cause is logged, not surfaced,
// so callers see exactly one failure mode.
func (g *Guard) Establish(ctx context.Context) (domain.Session, error) {
	session, err := g.store.CurrentIdentity(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrUnauthenticated) {
			g.logger.Warn("identity lookup failed", logger.Error(err))
		}
		return domain.Session{}, store.ErrUnauthenticated
	}

	g.mu.Lock()
	g.session = &session
	g.mu.Unlock()

	g.logger.Info("session established",
		logger.String("user_id", session.UserID),
		logger.String("email", session.Email))
	return session, nil
}

// Session returns the current session and whether one is established.
func (g *Guard) Session() (domain.Session, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.session == nil {
		return domain.Session{}, false
	}
	return *g.session, true
}

// SignOut revokes the remote session and clears the local one. The local
// session is cleared even when the remote call fails; a failed revocation
// must not leave the process acting as a signed-in user.
func (g *Guard) SignOut(ctx context.Context) error {
	err := g.store.SignOut(ctx)
	if err != nil {
		g.logger.Warn("remote sign-out failed, clearing local session anyway",
			logger.Error(err))
	}

	g.mu.Lock()
	g.session = nil
	g.mu.Unlock()

	g.logger.Info("session cleared")
	return err
}
