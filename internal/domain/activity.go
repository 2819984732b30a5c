package domain

import "time"

// activityWindowDays is the size of the trailing activity window.
const activityWindowDays = 7

// ActivityBucket is one day slot in the weekly activity histogram.
type ActivityBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// WeeklyActivity derives the 7-day activity histogram from bookmark creation
// timestamps. Buckets cover the days now-6d .. now, oldest first, each
// labeled with its short weekday name. A bookmark counts toward the bucket
// whose label matches its creation weekday when the fractional-day distance
// from now is at most 7. Bookmarks with a zero CreatedAt count nowhere.
//
// Buckets are keyed by weekday label, not calendar date. Within a single
// 7-day window every label is unique, so the mapping is unambiguous per run.
//
// The function is pure: same bookmarks and same now produce identical output.
func WeeklyActivity(bookmarks []Bookmark, now time.Time) []ActivityBucket {
	buckets := make([]ActivityBucket, 0, activityWindowDays)
	slot := make(map[string]int, activityWindowDays)
	for i := activityWindowDays - 1; i >= 0; i-- {
		label := now.AddDate(0, 0, -i).Format("Mon")
		slot[label] = len(buckets)
		buckets = append(buckets, ActivityBucket{Label: label})
	}

	for _, b := range bookmarks {
		if b.CreatedAt.IsZero() {
			continue
		}
		ageDays := now.Sub(b.CreatedAt).Hours() / 24
		if ageDays > activityWindowDays {
			continue
		}
		if i, ok := slot[b.CreatedAt.Format("Mon")]; ok {
			buckets[i].Count++
		}
	}

	return buckets
}
