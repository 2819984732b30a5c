// Package redis mirrors the loaded bookmark collection into redis so that a
// restart can show the last-known state before the first authoritative load
// completes. The mirror is written best effort and is never merged with
// remote state; the next successful load replaces it wholesale.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/linkshelf/linkshelf/internal/domain"
)

// DefaultSnapshotTTL bounds how long a mirror outlives its last refresh.
const DefaultSnapshotTTL = 48 * time.Hour

// Store handles redis operations for the snapshot mirror
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a new snapshot store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		ttl:    DefaultSnapshotTTL,
	}
}

// ReplaceAll replaces the mirrored collection for one owner in a single
// pipeline: stale entries are removed first so the mirror never holds
// bookmarks the remote store no longer has.
func (s *Store) ReplaceAll(ctx context.Context, ownerID string, bookmarks []domain.Bookmark) error {
	setKey := ownerSetKey(ownerID)

	staleIDs, err := s.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read mirrored ids: %w", err)
	}

	pipe := s.client.Pipeline()
	for _, id := range staleIDs {
		pipe.Del(ctx, bookmarkKey(id))
	}
	pipe.Del(ctx, setKey)

	for _, b := range bookmarks {
		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("failed to marshal bookmark %s: %w", b.ID, err)
		}
		pipe.Set(ctx, bookmarkKey(b.ID), data, s.ttl)
		pipe.SAdd(ctx, setKey, b.ID)
	}
	if len(bookmarks) > 0 {
		pipe.Expire(ctx, setKey, s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to replace mirror: %w", err)
	}
	return nil
}

// GetAll retrieves the mirrored collection for one owner, newest first.
// Entries that cannot be read or decoded are skipped.
func (s *Store) GetAll(ctx context.Context, ownerID string) ([]domain.Bookmark, error) {
	ids, err := s.client.SMembers(ctx, ownerSetKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get mirrored ids: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Bookmark{}, nil
	}

	bookmarks := make([]domain.Bookmark, 0, len(ids))
	for _, id := range ids {
		data, err := s.client.Get(ctx, bookmarkKey(id)).Bytes()
		if err != nil {
			// Entry expired or unreadable, skip it
			continue
		}
		var b domain.Bookmark
		if err := json.Unmarshal(data, &b); err != nil {
			continue
		}
		bookmarks = append(bookmarks, b)
	}

	domain.SortNewestFirst(bookmarks)
	return bookmarks, nil
}
