package seedfile

import (
	"sort"

	"github.com/linkshelf/linkshelf/internal/domain"
)

// Map flattens a Config into drafts, categories in sorted order so the
// import is deterministic. Entries missing a title or url are dropped.
func Map(cfg Config) []domain.Draft {
	categories := make([]string, 0, len(cfg))
	for category := range cfg {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var drafts []domain.Draft
	for _, category := range categories {
		for _, entry := range cfg[category] {
			if entry.Title == "" || entry.URL == "" {
				continue
			}
			drafts = append(drafts, domain.Draft{
				Title:    entry.Title,
				URL:      entry.URL,
				Category: category,
			})
		}
	}
	return drafts
}
