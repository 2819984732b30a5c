package supabase

import (
	"context"
	"net/http"
	"net/url"

	"github.com/linkshelf/linkshelf/internal/domain"
)

const collectionPath = "/rest/v1/bookmarks"

// record is the wire shape of one row in the bookmarks collection:
// {id, title, url, category, user_id, created_at}.
type record struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Category  string `json:"category"`
	UserID    string `json:"user_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// QueryBookmarks fetches the owner's full collection, newest first. The
// ordering is requested from the store rather than applied locally.
func (c *Client) QueryBookmarks(ctx context.Context, ownerID string) ([]domain.Bookmark, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("user_id", "eq."+ownerID)
	q.Set("order", "created_at.desc")

	var rows []record
	if err := c.do(ctx, http.MethodGet, collectionPath, q, nil, &rows, "query"); err != nil {
		return nil, err
	}

	bookmarks := make([]domain.Bookmark, 0, len(rows))
	for _, r := range rows {
		bookmarks = append(bookmarks, domain.Bookmark{
			ID:        r.ID,
			Title:     r.Title,
			URL:       r.URL,
			Category:  r.Category,
			OwnerID:   r.UserID,
			CreatedAt: parseTimestamp(r.CreatedAt),
		})
	}
	return bookmarks, nil
}

// InsertBookmark creates a row. The store assigns id and created_at; they
// are never synthesized here.
func (c *Client) InsertBookmark(ctx context.Context, ownerID string, draft domain.Draft) error {
	row := record{
		Title:    draft.Title,
		URL:      draft.URL,
		Category: draft.Category,
		UserID:   ownerID,
	}
	return c.do(ctx, http.MethodPost, collectionPath, nil, row, nil, "insert")
}

// UpdateBookmark patches the three mutable fields of one row. id, user_id
// and created_at never travel on updates.
func (c *Client) UpdateBookmark(ctx context.Context, id string, draft domain.Draft) error {
	q := url.Values{}
	q.Set("id", "eq."+id)

	row := record{
		Title:    draft.Title,
		URL:      draft.URL,
		Category: draft.Category,
	}
	return c.do(ctx, http.MethodPatch, collectionPath, q, row, nil, "update")
}

// DeleteBookmark removes one row.
func (c *Client) DeleteBookmark(ctx context.Context, id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	return c.do(ctx, http.MethodDelete, collectionPath, q, nil, nil, "delete")
}
