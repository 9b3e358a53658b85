package models

// View modes
const (
	ViewList   = "list"
	ViewKanban = "kanban"
	ViewTable  = "table"
	ViewGrid   = "grid"
)

// FilterAll is the neutral filter value: a filter set to "all" (or left
// empty) is not applied.
const FilterAll = "all"

// Filters is the active task filter set. DueDate takes a named bucket:
// today, week, month or overdue.
type Filters struct {
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Assignee string `json:"assignee"`
	DueDate  string `json:"due_date"`
}

// DefaultFilters returns the neutral filter set.
func DefaultFilters() Filters {
	return Filters{
		Status:   FilterAll,
		Priority: FilterAll,
		Assignee: FilterAll,
		DueDate:  FilterAll,
	}
}

// Selection is session-only UI selection state: the focused project/task
// and the checked rows of the active table.
type Selection struct {
	ProjectID *int64  `json:"project_id,omitempty"`
	TaskID    *int64  `json:"task_id,omitempty"`
	Rows      []int64 `json:"rows"`
}
