package query

import (
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sitedesk/sitedesk/internal/models"
)

// Named due-date buckets, classified against wall-clock time at query time.
const (
	BucketToday   = "today"
	BucketWeek    = "week"
	BucketMonth   = "month"
	BucketOverdue = "overdue"
)

// Search keeps the items whose listed field values contain term as a
// case-insensitive substring. An empty term keeps everything.
func Search[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	return lo.Filter(items, func(item T, _ int) bool {
		for _, v := range fields(item) {
			if strings.Contains(strings.ToLower(v), needle) {
				return true
			}
		}
		return false
	})
}

// Filter applies an equality-filter conjunction. A filter whose value is
// empty or "all" is skipped. value resolves a filter key to the item's
// comparable field value.
func Filter[T any](items []T, filters map[string]string, value func(T, string) string) []T {
	active := map[string]string{}
	for k, v := range filters {
		if v != "" && v != models.FilterAll {
			active[k] = v
		}
	}
	if len(active) == 0 {
		return items
	}
	return lo.Filter(items, func(item T, _ int) bool {
		for k, want := range active {
			if value(item, k) != want {
				return false
			}
		}
		return true
	})
}

// InBucket reports whether a due date falls into the named bucket relative
// to now. Unknown bucket names (including "all") match everything; a nil
// due date matches nothing but the neutral bucket.
func InBucket(due *time.Time, bucket string, now time.Time) bool {
	switch bucket {
	case BucketToday, BucketWeek, BucketMonth, BucketOverdue:
	default:
		return true
	}
	if due == nil {
		return false
	}
	switch bucket {
	case BucketToday:
		return sameDay(*due, now)
	case BucketWeek:
		return sameWeek(*due, now)
	case BucketMonth:
		return due.Year() == now.Year() && due.Month() == now.Month()
	case BucketOverdue:
		return due.Before(startOfDay(now))
	}
	return true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// sameWeek uses Sunday-started calendar weeks.
func sameWeek(a, b time.Time) bool {
	return startOfWeek(a).Equal(startOfWeek(b))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// FilterTasks applies the workspace filter set (status, priority, assignee
// and due-date bucket) to a task list.
func FilterTasks(tasks []models.Task, f models.Filters, now time.Time) []models.Task {
	return lo.Filter(tasks, func(t models.Task, _ int) bool {
		if f.Status != "" && f.Status != models.FilterAll && t.Status != f.Status {
			return false
		}
		if f.Priority != "" && f.Priority != models.FilterAll && t.Priority != f.Priority {
			return false
		}
		if f.Assignee != "" && f.Assignee != models.FilterAll && !lo.Contains(t.Assignees, f.Assignee) {
			return false
		}
		if f.DueDate != "" && f.DueDate != models.FilterAll && !InBucket(t.DueDate, f.DueDate, now) {
			return false
		}
		return true
	})
}
