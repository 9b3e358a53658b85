package query

import (
	"testing"
	"time"

	"github.com/sitedesk/sitedesk/internal/models"
)

func TestProjectStatsOf(t *testing.T) {
	projects := []models.Project{
		{Name: "done", Progress: 100},
		{Name: "half", Progress: 50},
		{Name: "fresh", Progress: 0},
		{Name: "also done", Progress: 100},
	}

	stats := ProjectStatsOf(projects)
	if stats.Total != 4 || stats.Completed != 2 || stats.InProgress != 1 || stats.Planning != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.CompletionRate != 50 {
		t.Errorf("completion rate = %v, expected 50", stats.CompletionRate)
	}
}

func TestProjectStatsOf_Empty(t *testing.T) {
	stats := ProjectStatsOf(nil)
	if stats.Total != 0 || stats.CompletionRate != 0 {
		t.Errorf("empty collection stats = %+v, expected zero rate", stats)
	}
}

func TestPipelineStats(t *testing.T) {
	deals := []models.Deal{
		{Status: "Planning", Value: "$1.2M"},
		{Status: "Planning", Value: "$800K"},
		{Status: "Completed", Value: "$300K"},
		{Status: "Completed", Value: "not a number"},
	}

	stages := PipelineStats(deals)
	if len(stages) != 2 {
		t.Fatalf("got %d stages, expected 2", len(stages))
	}
	// sorted by status name
	if stages[0].Status != "Completed" || stages[1].Status != "Planning" {
		t.Errorf("stage order = %q, %q", stages[0].Status, stages[1].Status)
	}
	if stages[0].Count != 2 || stages[0].Value != 300_000 {
		t.Errorf("Completed stage = %+v, malformed value should contribute zero", stages[0])
	}
	if stages[1].Count != 2 || stages[1].Value != 2_000_000 {
		t.Errorf("Planning stage = %+v", stages[1])
	}
}

func TestTaskStatsOf(t *testing.T) {
	now := time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)
	ptr := func(t time.Time) *time.Time { return &t }
	tasks := []models.Task{
		{Status: models.TaskDone},
		{Status: models.TaskTodo, DueDate: ptr(now.AddDate(0, 0, -2))},
		{Status: models.TaskInProgress, DueDate: ptr(now.Add(time.Hour))},
		{Status: models.TaskTodo},
	}

	stats := TaskStatsOf(tasks, now)
	if stats.Total != 4 {
		t.Errorf("total = %d", stats.Total)
	}
	if stats.ByStatus[models.TaskTodo] != 2 || stats.ByStatus[models.TaskDone] != 1 {
		t.Errorf("by status = %v", stats.ByStatus)
	}
	if stats.Overdue != 1 || stats.DueToday != 1 {
		t.Errorf("overdue = %d, due today = %d", stats.Overdue, stats.DueToday)
	}
	if stats.Completed != 25 {
		t.Errorf("completion rate = %v, expected 25", stats.Completed)
	}
}

func TestTaskStatsOf_DoneTaskIsNeverOverdue(t *testing.T) {
	now := time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -5)
	tasks := []models.Task{
		{Status: models.TaskDone, DueDate: &past},
		{Status: models.TaskTodo, DueDate: &past},
	}

	stats := TaskStatsOf(tasks, now)
	if stats.Overdue != 1 {
		t.Errorf("overdue = %d, expected only the unfinished task", stats.Overdue)
	}
}

func TestTaskStatsOf_Empty(t *testing.T) {
	stats := TaskStatsOf(nil, time.Now())
	if stats.Total != 0 || stats.Completed != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}
