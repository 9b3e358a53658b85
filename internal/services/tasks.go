package services

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/models"
	"github.com/sitedesk/sitedesk/internal/query"
	"github.com/sitedesk/sitedesk/internal/store"
)

// TaskService layers the board's derived task views over the store.
type TaskService struct {
	store *store.Store
}

func NewTaskService(st *store.Store) *TaskService {
	return &TaskService{store: st}
}

// TaskListRequest mirrors the board controls. Filters default to the
// workspace filter set when not supplied.
type TaskListRequest struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Assignee string `form:"assignee"`
	DueDate  string `form:"due_date"` // today, week, month, overdue
	SortKey  string `form:"sort_key"` // title, status, priority, due_date, progress
	SortDesc bool   `form:"sort_desc"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type TaskListResponse struct {
	Items      []models.Task `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}

// List runs the filter -> sort -> paginate chain over one project's tasks.
// A deleted or unknown project yields an empty list, not an error.
func (s *TaskService) List(projectID int64, req *TaskListRequest, now time.Time) *TaskListResponse {
	tasks := s.store.TasksOf(projectID)

	tasks = query.Search(tasks, req.Search, func(t models.Task) []string {
		return append([]string{t.Title, t.Description}, t.Assignees...)
	})

	filters := models.Filters{
		Status:   req.Status,
		Priority: req.Priority,
		Assignee: req.Assignee,
		DueDate:  req.DueDate,
	}
	if filters == (models.Filters{}) {
		filters = s.store.Filters()
	}
	tasks = query.FilterTasks(tasks, filters, now)

	if req.SortKey != "" {
		tasks = query.SortBy(tasks, taskSortKey(req.SortKey), req.SortDesc)
	}

	total := len(tasks)
	page := req.Page
	if page < 1 {
		page = 1
	}

	return &TaskListResponse{
		Items:      query.Paginate(tasks, page, req.PageSize),
		Total:      total,
		Page:       page,
		TotalPages: query.TotalPages(total, req.PageSize),
	}
}

func taskSortKey(key string) func(models.Task) any {
	switch key {
	case "status":
		return func(t models.Task) any { return t.Status }
	case "priority":
		return func(t models.Task) any { return t.Priority }
	case "due_date":
		return func(t models.Task) any {
			if t.DueDate == nil {
				return time.Time{}
			}
			return *t.DueDate
		}
	case "progress":
		return func(t models.Task) any { return t.Progress }
	default:
		return func(t models.Task) any { return t.Title }
	}
}

// BulkUpdateStatus moves every listed task to the given status. Unknown
// IDs are skipped; the returned count is how many moved.
func (s *TaskService) BulkUpdateStatus(projectID int64, taskIDs []int64, status string) int {
	updated := 0
	for _, id := range taskIDs {
		if _, err := s.store.UpdateTask(projectID, id, store.TaskPatch{Status: &status}); err == nil {
			updated++
		}
	}
	return updated
}

// Stats summarizes one project's tasks for the board header.
func (s *TaskService) Stats(projectID int64, now time.Time) query.TaskStats {
	return query.TaskStatsOf(s.store.TasksOf(projectID), now)
}
