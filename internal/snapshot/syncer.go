// Package snapshot keeps a best-effort redis mirror of the loaded
// collection. It exists only to warm the first paint after a restart; the
// remote store stays authoritative and the next load replaces the mirror.
package snapshot

import (
	"context"

	"github.com/linkshelf/linkshelf/internal/domain"
	"github.com/linkshelf/linkshelf/internal/logger"
	redisstore "github.com/linkshelf/linkshelf/internal/store/redis"
)

// Syncer pushes collection snapshots to redis and restores them at startup.
type Syncer struct {
	store  *redisstore.Store
	logger logger.Logger
}

func New(store *redisstore.Store, log logger.Logger) *Syncer {
	return &Syncer{
		store:  store,
		logger: log,
	}
}

// Restore returns the mirrored collection for the owner, or nil when the
// mirror is empty or unreadable. Failures are logged, never surfaced; a
// cold start without a mirror is normal.
func (s *Syncer) Restore(ctx context.Context, ownerID string) []domain.Bookmark {
	bookmarks, err := s.store.GetAll(ctx, ownerID)
	if err != nil {
		s.logger.Warn("snapshot restore failed, starting cold",
			logger.Error(err))
		return nil
	}
	if len(bookmarks) == 0 {
		return nil
	}

	s.logger.Info("restored collection snapshot",
		logger.Int("count", len(bookmarks)))
	return bookmarks
}

// Persist mirrors the collection, best effort. A failed write only costs
// the next restart its warm start.
func (s *Syncer) Persist(ctx context.Context, ownerID string, bookmarks []domain.Bookmark) {
	if err := s.store.ReplaceAll(ctx, ownerID, bookmarks); err != nil {
		s.logger.Warn("snapshot persist failed",
			logger.Int("count", len(bookmarks)),
			logger.Error(err))
		return
	}
	s.logger.Debug("collection snapshot persisted",
		logger.Int("count", len(bookmarks)))
}
