package models

import "time"

// Task workflow states. Distinct from project states: any status may be
// set to any other, there is no enforced state machine.
const (
	TaskTodo       = "Todo"
	TaskInProgress = "In Progress"
	TaskReview     = "Review"
	TaskDone       = "Done"
)

// Task priorities
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Submission flow states. By convention these move
// draft -> submitted -> approved/rejected, but the store does not enforce it.
const (
	SubmissionDraft     = "draft"
	SubmissionSubmitted = "submitted"
	SubmissionApproved  = "approved"
	SubmissionRejected  = "rejected"
)

// Task belongs to exactly one project. Comments and attachments are owned
// collections, discarded when the task (or its project) is deleted.
type Task struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Status           string       `json:"status"` // Todo, In Progress, Review, Done
	Priority         string       `json:"priority"`
	DueDate          *time.Time   `json:"due_date,omitempty"`
	StartDate        *time.Time   `json:"start_date,omitempty"`
	EndDate          *time.Time   `json:"end_date,omitempty"`
	Progress         int          `json:"progress"`
	Assignees        []string     `json:"assignees"`
	Attachments      []Attachment `json:"attachments"`
	Comments         []Comment    `json:"comments"`
	EstimatedHours   float64      `json:"estimated_hours"`
	SubmissionStatus string       `json:"submission_status"` // draft, submitted, approved, rejected
	SubmittedAt      *time.Time   `json:"submitted_at,omitempty"`
	SubmissionNotes  string       `json:"submission_notes"`
	CreatedAt        time.Time    `json:"created_at"`
	LastUpdated      time.Time    `json:"last_updated"`
}

// Comment is an append-only note on a task. Review comments carry the
// reviewer's decision alongside the text.
type Comment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`               // comment, review
	Decision  string    `json:"decision,omitempty"` // approved, rejected (review comments only)
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	out := t
	out.Assignees = append([]string(nil), t.Assignees...)
	out.Attachments = append([]Attachment(nil), t.Attachments...)
	out.Comments = append([]Comment(nil), t.Comments...)
	return out
}
