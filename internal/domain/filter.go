package domain

import "strings"

// FilterBookmarks returns the subsequence of bookmarks whose title or
// category contains query as a case-insensitive substring. An empty query
// returns the input unchanged. Order is preserved and no state is kept
// between calls.
func FilterBookmarks(bookmarks []Bookmark, query string) []Bookmark {
	if query == "" {
		return bookmarks
	}

	q := strings.ToLower(query)
	matches := make([]Bookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Category), q) {
			matches = append(matches, b)
		}
	}
	return matches
}
