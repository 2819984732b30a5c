package domain

import (
	"reflect"
	"testing"
	"time"
)

// fixedNow is a Thursday at noon UTC.
var fixedNow = time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)

func TestWeeklyActivityBucketLabels(t *testing.T) {
	buckets := WeeklyActivity(nil, fixedNow)

	if len(buckets) != 7 {
		t.Fatalf("WeeklyActivity() returned %d buckets, want 7", len(buckets))
	}

	// Oldest first: the window is Fri Mar 14 .. Thu Mar 20.
	want := []string{"Fri", "Sat", "Sun", "Mon", "Tue", "Wed", "Thu"}
	for i, b := range buckets {
		if b.Label != want[i] {
			t.Errorf("bucket[%d].Label = %q, want %q", i, b.Label, want[i])
		}
		if b.Count != 0 {
			t.Errorf("bucket[%d].Count = %d, want 0 for empty input", i, b.Count)
		}
	}
}

func TestWeeklyActivityCreatedToday(t *testing.T) {
	bookmarks := []Bookmark{
		{ID: "a", CreatedAt: fixedNow.Add(-2 * time.Hour)},
	}

	buckets := WeeklyActivity(bookmarks, fixedNow)

	for _, b := range buckets {
		want := 0
		if b.Label == "Thu" {
			want = 1
		}
		if b.Count != want {
			t.Errorf("bucket %q count = %d, want %d", b.Label, b.Count, want)
		}
	}
}

func TestWeeklyActivityWindowBoundaries(t *testing.T) {
	bookmarks := []Bookmark{
		// Exactly 7 fractional days old: still inside the window. Its weekday
		// is the same as today's, so it lands in the newest bucket.
		{ID: "boundary", CreatedAt: fixedNow.Add(-7 * 24 * time.Hour)},
		// 7.5 days old: outside.
		{ID: "old", CreatedAt: fixedNow.Add(-180 * time.Hour)},
		// 6.5 days old: Friday morning, oldest bucket.
		{ID: "edge", CreatedAt: fixedNow.Add(-156 * time.Hour)},
	}

	buckets := WeeklyActivity(bookmarks, fixedNow)

	counts := map[string]int{}
	total := 0
	for _, b := range buckets {
		counts[b.Label] = b.Count
		total += b.Count
	}

	if total != 2 {
		t.Errorf("total count = %d, want 2 (the 7.5-day-old bookmark is excluded)", total)
	}
	if counts["Thu"] != 1 {
		t.Errorf("Thu count = %d, want 1", counts["Thu"])
	}
	if counts["Fri"] != 1 {
		t.Errorf("Fri count = %d, want 1", counts["Fri"])
	}
}

func TestWeeklyActivitySkipsZeroTimestamps(t *testing.T) {
	bookmarks := []Bookmark{
		{ID: "good", CreatedAt: fixedNow.Add(-time.Hour)},
		{ID: "unparsable"}, // zero CreatedAt
	}

	buckets := WeeklyActivity(bookmarks, fixedNow)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	if total != 1 {
		t.Errorf("total count = %d, want 1 (zero timestamps count nowhere)", total)
	}
}

func TestWeeklyActivityCountInvariant(t *testing.T) {
	bookmarks := []Bookmark{
		{ID: "a", CreatedAt: fixedNow.Add(-1 * time.Hour)},
		{ID: "b", CreatedAt: fixedNow.Add(-30 * time.Hour)},
		{ID: "c", CreatedAt: fixedNow.Add(-50 * time.Hour)},
		{ID: "d", CreatedAt: fixedNow.Add(-100 * time.Hour)},
		{ID: "e", CreatedAt: fixedNow.Add(-200 * time.Hour)}, // outside window
		{ID: "f"}, // zero timestamp
	}

	inWindow := 0
	for _, b := range bookmarks {
		if b.CreatedAt.IsZero() {
			continue
		}
		if fixedNow.Sub(b.CreatedAt).Hours()/24 <= 7 {
			inWindow++
		}
	}

	buckets := WeeklyActivity(bookmarks, fixedNow)
	total := 0
	for _, b := range buckets {
		total += b.Count
	}

	if total != inWindow {
		t.Errorf("sum of bucket counts = %d, want %d", total, inWindow)
	}
}

func TestWeeklyActivityDeterministic(t *testing.T) {
	bookmarks := []Bookmark{
		{ID: "a", CreatedAt: fixedNow.Add(-3 * time.Hour)},
		{ID: "b", CreatedAt: fixedNow.Add(-72 * time.Hour)},
		{ID: "c", CreatedAt: fixedNow.Add(-140 * time.Hour)},
	}

	first := WeeklyActivity(bookmarks, fixedNow)
	second := WeeklyActivity(bookmarks, fixedNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs differ:\n%v\n%v", first, second)
	}
}
