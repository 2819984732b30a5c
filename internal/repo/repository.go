// Package repo owns the canonical in-memory copy of one user's bookmark
// collection and keeps it consistent with the remote store.
//
// The consistency model is write-through with mandatory reload: every
// mutation issues the remote call and then refetches the whole collection.
// The local copy is only ever replaced wholesale, never patched in place, so
// after any mutating call the collection is either the previous state (on
// failure) or the fresh remote state (on success), never a speculative
// intermediate.
package repo

import (
	"context"
	"sync"
	"time"

	"github.com/linkshelf/linkshelf/internal/domain"
	"github.com/linkshelf/linkshelf/internal/logger"
	"github.com/linkshelf/linkshelf/internal/metrics"
	"github.com/linkshelf/linkshelf/internal/store"
)

// Repository is the owner-scoped bookmark collection. Safe for concurrent
// use; reads see either the pre-reload or post-reload collection, nothing in
// between.
type Repository struct {
	store   store.RemoteStore
	ownerID string
	logger  logger.Logger

	mu        sync.RWMutex
	bookmarks []domain.Bookmark
	loadSeq    uint64 // sequence of the most recently started load
	appliedSeq uint64 // sequence of the load whose result is installed
}

func New(st store.RemoteStore, ownerID string, log logger.Logger) *Repository {
	return &Repository{
		store:   st,
		ownerID: ownerID,
		logger:  log,
	}
}

// OwnerID returns the identity this repository is scoped to.
func (r *Repository) OwnerID() string { return r.ownerID }

// Load refetches the whole collection from the remote store. On failure the
// previous collection is left untouched and the error is surfaced.
//
// Interleaved loads are serialized by sequence: each load takes a ticket
// before calling the store, and a result is discarded when a later-started
// load has already been applied. The last started load wins; a stale
// response can never clobber fresher state.
func (r *Repository) Load(ctx context.Context) error {
	r.mu.Lock()
	r.loadSeq++
	seq := r.loadSeq
	r.mu.Unlock()

	start := time.Now()
	bookmarks, err := r.store.QueryBookmarks(ctx, r.ownerID)
	if err != nil {
		metrics.ObserveReload(time.Since(start), "error")
		r.logger.Warn("reload failed, keeping previous collection",
			logger.Error(err))
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if seq < r.appliedSeq {
		metrics.ObserveReload(time.Since(start), "stale")
		r.logger.Debug("discarding stale reload",
			logger.Int("seq", int(seq)),
			logger.Int("applied", int(r.appliedSeq)))
		return nil
	}

	r.bookmarks = bookmarks
	r.appliedSeq = seq
	metrics.ObserveReload(time.Since(start), "ok")
	metrics.SetCollectionSize(len(bookmarks))
	r.logger.Debug("collection reloaded",
		logger.Int("count", len(bookmarks)))
	return nil
}

// Create inserts a bookmark and reloads. Incomplete drafts (empty title or
// url) are skipped without touching the store; the skip is reported rather
// than silently swallowed so callers can surface it.
func (r *Repository) Create(ctx context.Context, draft domain.Draft) (domain.SubmitResult, error) {
	if draft.Incomplete() {
		metrics.CountMutation("insert", "skipped")
		return domain.SubmitSkipped, nil
	}

	if err := r.store.InsertBookmark(ctx, r.ownerID, draft); err != nil {
		metrics.CountMutation("insert", "error")
		return domain.SubmitCreated, err
	}
	metrics.CountMutation("insert", "ok")

	// The store assigned id and created_at; only the reload can show them.
	return domain.SubmitCreated, r.Load(ctx)
}

// Update patches the three mutable fields of one bookmark and reloads.
// Incomplete drafts are skipped the same way Create skips them.
func (r *Repository) Update(ctx context.Context, id string, draft domain.Draft) (domain.SubmitResult, error) {
	if draft.Incomplete() {
		metrics.CountMutation("update", "skipped")
		return domain.SubmitSkipped, nil
	}

	if err := r.store.UpdateBookmark(ctx, id, draft); err != nil {
		metrics.CountMutation("update", "error")
		return domain.SubmitUpdated, err
	}
	metrics.CountMutation("update", "ok")

	return domain.SubmitUpdated, r.Load(ctx)
}

// Delete removes one bookmark and reloads.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.DeleteBookmark(ctx, id); err != nil {
		metrics.CountMutation("delete", "error")
		return err
	}
	metrics.CountMutation("delete", "ok")

	return r.Load(ctx)
}

// InsertMany inserts every complete draft, then reloads once. Used by the
// seed import; incomplete drafts are counted as skipped.
func (r *Repository) InsertMany(ctx context.Context, drafts []domain.Draft) (int, error) {
	inserted := 0
	for _, draft := range drafts {
		if draft.Incomplete() {
			metrics.CountMutation("insert", "skipped")
			continue
		}
		if err := r.store.InsertBookmark(ctx, r.ownerID, draft); err != nil {
			metrics.CountMutation("insert", "error")
			return inserted, err
		}
		metrics.CountMutation("insert", "ok")
		inserted++
	}
	if inserted == 0 {
		return 0, nil
	}
	return inserted, r.Load(ctx)
}

// Seed installs a warm-start collection. It only applies before the first
// authoritative load; once a load has been applied the seed is ignored.
func (r *Repository) Seed(bookmarks []domain.Bookmark) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.appliedSeq > 0 {
		return
	}
	r.bookmarks = bookmarks
	metrics.SetCollectionSize(len(bookmarks))
}

// Clear drops the local collection, for session teardown.
func (r *Repository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookmarks = nil
	metrics.SetCollectionSize(0)
}

// Bookmarks returns a copy of the current collection, newest first.
func (r *Repository) Bookmarks() []domain.Bookmark {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Bookmark, len(r.bookmarks))
	copy(out, r.bookmarks)
	return out
}

// Get returns one bookmark by id from the local collection.
func (r *Repository) Get(id string) (domain.Bookmark, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookmarks {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Bookmark{}, false
}

// Len returns the size of the local collection.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bookmarks)
}
