package services

import (
	"testing"
	"time"

	"github.com/sitedesk/sitedesk/internal/models"
	"github.com/sitedesk/sitedesk/internal/store"
)

func seedTaskStore(t *testing.T) (*store.Store, int64) {
	t.Helper()
	st := store.NewStore(nil)
	p := st.AddProject(store.ProjectCreate{Name: "Riverside Development"})

	yesterday := time.Now().AddDate(0, 0, -1)
	mustAdd := func(req store.TaskCreate) {
		if _, err := st.AddTask(p.ID, req); err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
	}
	mustAdd(store.TaskCreate{Title: "Pour foundation", Status: models.TaskTodo, Priority: models.PriorityHigh, Assignees: []string{"maria"}})
	mustAdd(store.TaskCreate{Title: "Frame walls", Status: models.TaskInProgress, Priority: models.PriorityMedium})
	mustAdd(store.TaskCreate{Title: "Order rebar", Status: models.TaskTodo, Priority: models.PriorityLow, DueDate: &yesterday})
	mustAdd(store.TaskCreate{Title: "Final inspection", Status: models.TaskDone, Priority: models.PriorityHigh})
	return st, p.ID
}

func TestTaskService_List_ExplicitFilters(t *testing.T) {
	st, projectID := seedTaskStore(t)
	svc := NewTaskService(st)
	now := time.Now()

	resp := svc.List(projectID, &TaskListRequest{Status: models.TaskTodo}, now)
	if resp.Total != 2 {
		t.Errorf("status filter total = %d, expected 2", resp.Total)
	}

	resp = svc.List(projectID, &TaskListRequest{Assignee: "maria"}, now)
	if resp.Total != 1 || resp.Items[0].Title != "Pour foundation" {
		t.Errorf("assignee filter = %+v", resp.Items)
	}

	resp = svc.List(projectID, &TaskListRequest{DueDate: "overdue"}, now)
	if resp.Total != 1 || resp.Items[0].Title != "Order rebar" {
		t.Errorf("overdue filter = %+v", resp.Items)
	}
}

// An empty request falls back to the workspace filter set.
func TestTaskService_List_WorkspaceFilterFallback(t *testing.T) {
	st, projectID := seedTaskStore(t)
	svc := NewTaskService(st)

	st.SetFilters(models.Filters{Status: models.TaskDone, Priority: "all", Assignee: "all", DueDate: "all"})

	resp := svc.List(projectID, &TaskListRequest{}, time.Now())
	if resp.Total != 1 || resp.Items[0].Title != "Final inspection" {
		t.Errorf("fallback filter = %+v", resp.Items)
	}
}

func TestTaskService_List_UnknownProjectIsEmpty(t *testing.T) {
	st, _ := seedTaskStore(t)
	svc := NewTaskService(st)

	resp := svc.List(999999, &TaskListRequest{}, time.Now())
	if resp.Total != 0 || len(resp.Items) != 0 {
		t.Errorf("unknown project list = %+v", resp)
	}
}

func TestTaskService_List_SortAndPaginate(t *testing.T) {
	st, projectID := seedTaskStore(t)
	svc := NewTaskService(st)

	resp := svc.List(projectID, &TaskListRequest{SortKey: "title", Page: 1, PageSize: 2}, time.Now())
	if resp.Total != 4 || resp.TotalPages != 2 {
		t.Errorf("total = %d, pages = %d", resp.Total, resp.TotalPages)
	}
	if len(resp.Items) != 2 || resp.Items[0].Title != "Final inspection" {
		t.Errorf("page 1 = %+v", resp.Items)
	}
}

func TestTaskService_BulkUpdateStatus(t *testing.T) {
	st, projectID := seedTaskStore(t)
	svc := NewTaskService(st)

	tasks := st.TasksOf(projectID)
	n := svc.BulkUpdateStatus(projectID, []int64{tasks[0].ID, tasks[1].ID, 999999}, models.TaskDone)
	if n != 2 {
		t.Errorf("updated %d, expected 2 (unknown ID skipped)", n)
	}

	stats := svc.Stats(projectID, time.Now())
	if stats.ByStatus[models.TaskDone] != 3 {
		t.Errorf("done count = %d, expected 3", stats.ByStatus[models.TaskDone])
	}
}
