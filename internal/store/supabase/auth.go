package supabase

import (
	"context"
	"errors"
	"net/http"

	"github.com/linkshelf/linkshelf/internal/domain"
	"github.com/linkshelf/linkshelf/internal/logger"
	"github.com/linkshelf/linkshelf/internal/store"
)

// gotrueUser mirrors the fields of the /auth/v1/user payload the engine needs.
type gotrueUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// CurrentIdentity performs the identity/session lookup. A 401/403 from the
// auth endpoint, or a response without a user id, means no valid session.
func (c *Client) CurrentIdentity(ctx context.Context) (domain.Session, error) {
	var u gotrueUser
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, nil, &u, "identity"); err != nil {
		var remote *store.RemoteError
		if errors.As(err, &remote) &&
			(remote.Status == http.StatusUnauthorized || remote.Status == http.StatusForbidden) {
			return domain.Session{}, store.ErrUnauthenticated
		}
		return domain.Session{}, err
	}
	if u.ID == "" {
		return domain.Session{}, store.ErrUnauthenticated
	}

	c.logger.Debug("identity lookup succeeded", logger.String("user_id", u.ID))
	return domain.Session{
		UserID:    u.ID,
		Email:     u.Email,
		CreatedAt: parseTimestamp(u.CreatedAt),
	}, nil
}

// SignOut revokes the session at the identity provider.
func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, nil, nil, "signout")
}
