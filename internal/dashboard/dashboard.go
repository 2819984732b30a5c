// Package dashboard is the facade the presentation layer talks to. It
// composes the guard, the repository, the search filter, the activity
// aggregation and the edit session into one consistent view of the signed-in
// user's bookmarks.
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/linkshelf/linkshelf/internal/domain"
	"github.com/linkshelf/linkshelf/internal/guard"
	"github.com/linkshelf/linkshelf/internal/logger"
	"github.com/linkshelf/linkshelf/internal/repo"
	"github.com/linkshelf/linkshelf/internal/sources/seedfile"
)

// ReloadHook runs after every successful reload with a copy of the fresh
// collection. Used to keep the snapshot mirror current.
type ReloadHook func(ctx context.Context, ownerID string, bookmarks []domain.Bookmark)

// Dashboard owns the view state layered on top of the repository: the
// search query and the edit session. The collection itself lives in the
// repository; the dashboard never caches bookmarks.
type Dashboard struct {
	guard  *guard.Guard
	repo   *repo.Repository
	logger logger.Logger
	now    func() time.Time

	mu       sync.RWMutex
	query    string
	edit     editSession
	onReload ReloadHook
}

type Option func(*Dashboard)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Dashboard) { d.now = now }
}

// WithReloadHook registers a hook run after each successful reload.
func WithReloadHook(hook ReloadHook) Option {
	return func(d *Dashboard) { d.onReload = hook }
}

func New(g *guard.Guard, r *repo.Repository, log logger.Logger, opts ...Option) *Dashboard {
	d := &Dashboard{
		guard:  g,
		repo:   r,
		logger: log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Refresh reloads the collection from the remote store.
func (d *Dashboard) Refresh(ctx context.Context) error {
	if err := d.repo.Load(ctx); err != nil {
		return err
	}
	d.notifyReload(ctx)
	return nil
}

// Bookmarks returns the collection filtered by the current search query,
// newest first.
func (d *Dashboard) Bookmarks() []domain.Bookmark {
	d.mu.RLock()
	query := d.query
	d.mu.RUnlock()

	return domain.FilterBookmarks(d.repo.Bookmarks(), query)
}

// Total returns the unfiltered collection size. The search query narrows
// the listing, never the count.
func (d *Dashboard) Total() int {
	return d.repo.Len()
}

// CategoryCount returns the number of distinct non-empty categories across
// the unfiltered collection.
func (d *Dashboard) CategoryCount() int {
	return domain.CountCategories(d.repo.Bookmarks())
}

// WeeklyActivity aggregates the unfiltered collection over the trailing
// seven days.
func (d *Dashboard) WeeklyActivity() []domain.ActivityBucket {
	return domain.WeeklyActivity(d.repo.Bookmarks(), d.now())
}

// Session returns the current session, if established.
func (d *Dashboard) Session() (domain.Session, bool) {
	return d.guard.Session()
}

// EditState returns the current edit session as a read model.
func (d *Dashboard) EditState() EditState {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return EditState{
		Editing:  d.edit.editing(),
		TargetID: d.edit.targetID,
		Draft:    d.edit.draft,
	}
}

// SearchQuery returns the current filter query.
func (d *Dashboard) SearchQuery() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.query
}

// SetSearchQuery updates the filter applied by Bookmarks.
func (d *Dashboard) SetSearchQuery(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.query = query
}

// SetDraft replaces the current draft without changing modes.
func (d *Dashboard) SetDraft(draft domain.Draft) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.edit.draft = draft
}

// SelectForEdit switches to edit mode targeting the given bookmark and
// mirrors its fields into the draft. Returns false when the id is not in
// the local collection; the edit session is left untouched in that case.
func (d *Dashboard) SelectForEdit(id string) bool {
	b, ok := d.repo.Get(id)
	if !ok {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.edit.selectBookmark(b)
	return true
}

// SubmitEdit submits the current draft: an update when a bookmark is
// selected, a create otherwise. On a successful non-skipped submit the edit
// session resets to create mode; a skipped submit keeps mode and draft so
// the caller can complete the missing fields.
func (d *Dashboard) SubmitEdit(ctx context.Context, draft domain.Draft) (domain.SubmitResult, error) {
	d.mu.Lock()
	d.edit.draft = draft
	targetID := d.edit.targetID
	editing := d.edit.editing()
	d.mu.Unlock()

	var (
		result domain.SubmitResult
		err    error
	)
	if editing {
		result, err = d.repo.Update(ctx, targetID, draft)
	} else {
		result, err = d.repo.Create(ctx, draft)
	}
	if err != nil {
		return result, err
	}
	if result == domain.SubmitSkipped {
		return result, nil
	}

	d.mu.Lock()
	d.edit.reset()
	d.mu.Unlock()

	d.notifyReload(ctx)
	return result, nil
}

// DeleteBookmark removes one bookmark. The edit session is left untouched,
// even when the deleted bookmark is the one being edited; submitting such a
// draft becomes a zero-row update.
func (d *Dashboard) DeleteBookmark(ctx context.Context, id string) error {
	if err := d.repo.Delete(ctx, id); err != nil {
		return err
	}
	d.notifyReload(ctx)
	return nil
}

// SignOut ends the session and drops all local view state.
func (d *Dashboard) SignOut(ctx context.Context) error {
	err := d.guard.SignOut(ctx)

	d.repo.Clear()

	d.mu.Lock()
	d.edit.reset()
	d.query = ""
	d.mu.Unlock()

	return err
}

// ImportSeed loads drafts from a yaml seed file and inserts them, then
// reloads once. Returns how many bookmarks were inserted.
func (d *Dashboard) ImportSeed(ctx context.Context, path string) (int, error) {
	cfg, err := seedfile.NewLoader(path).Load()
	if err != nil {
		return 0, err
	}

	drafts := seedfile.Map(cfg)
	inserted, err := d.repo.InsertMany(ctx, drafts)
	if err != nil {
		return inserted, err
	}
	if inserted > 0 {
		d.notifyReload(ctx)
	}

	d.logger.Info("seed import finished",
		logger.String("path", path),
		logger.Int("inserted", inserted),
		logger.Int("parsed", len(drafts)))
	return inserted, nil
}

func (d *Dashboard) notifyReload(ctx context.Context) {
	d.mu.RLock()
	hook := d.onReload
	d.mu.RUnlock()

	if hook == nil {
		return
	}
	hook(ctx, d.repo.OwnerID(), d.repo.Bookmarks())
}
