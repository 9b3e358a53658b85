package query

import (
	"time"

	"github.com/samber/lo"
	"github.com/sitedesk/sitedesk/internal/models"
)

// ProjectStats summarizes the project collection by progress value.
type ProjectStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"in_progress"`
	Planning       int     `json:"planning"`
	CompletionRate float64 `json:"completion_rate"` // percent, 0 for an empty collection
}

// ProjectStatsOf buckets projects by progress: 100 is completed, 0 is
// still planning, anything between is in progress.
func ProjectStatsOf(projects []models.Project) ProjectStats {
	stats := ProjectStats{Total: len(projects)}
	for _, p := range projects {
		switch {
		case p.Progress == 100:
			stats.Completed++
		case p.Progress > 0:
			stats.InProgress++
		default:
			stats.Planning++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}

// StageStats is one pipeline stage: how many deals sit in it and their
// summed numeric value.
type StageStats struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Value  float64 `json:"value"`
}

// PipelineStats groups the deal pipeline by status. Values that fail
// currency parsing contribute zero rather than erroring: malformed deal
// values are a form-layer concern.
func PipelineStats(deals []models.Deal) []StageStats {
	groups := lo.GroupBy(deals, func(d models.Deal) string { return d.Status })
	stages := make([]StageStats, 0, len(groups))
	for status, ds := range groups {
		stage := StageStats{Status: status, Count: len(ds)}
		for _, d := range ds {
			if v, ok := ParseCurrency(d.Value); ok {
				stage.Value += v
			}
		}
		stages = append(stages, stage)
	}
	return SortBy(stages, func(s StageStats) any { return s.Status }, false)
}

// TaskStats summarizes one project's tasks.
type TaskStats struct {
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"by_status"`
	Overdue   int            `json:"overdue"`
	DueToday  int            `json:"due_today"`
	Completed float64        `json:"completion_rate"` // percent, 0 when empty
}

// TaskStatsOf counts tasks by workflow status and due-date bucket.
func TaskStatsOf(tasks []models.Task, now time.Time) TaskStats {
	stats := TaskStats{Total: len(tasks), ByStatus: map[string]int{}}
	done := 0
	for _, t := range tasks {
		stats.ByStatus[t.Status]++
		if t.Status == models.TaskDone {
			done++
		}
		// a finished task is never overdue, whatever its due date says
		if t.Status != models.TaskDone && InBucket(t.DueDate, BucketOverdue, now) {
			stats.Overdue++
		}
		if InBucket(t.DueDate, BucketToday, now) {
			stats.DueToday++
		}
	}
	if stats.Total > 0 {
		stats.Completed = float64(done) / float64(stats.Total) * 100
	}
	return stats
}
