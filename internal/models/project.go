package models

import "time"

// Project lifecycle states
const (
	ProjectPlanning   = "Planning"
	ProjectInProgress = "In Progress"
	ProjectCompleted  = "Completed"
	ProjectOnHold     = "On Hold"
)

// Project is the root entity of the workspace. Tasks, attachments and
// milestones are owned collections: they live and die with the project.
type Project struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Status      string       `json:"status"` // Planning, In Progress, Completed, On Hold
	Progress    int          `json:"progress"`
	StartDate   *time.Time   `json:"start_date,omitempty"`
	EndDate     *time.Time   `json:"end_date,omitempty"`
	Budget      string       `json:"budget"` // display string, e.g. "$1.2M"
	Client      string       `json:"client"`
	Team        []string     `json:"team"`
	Tasks       []Task       `json:"tasks"`
	Attachments []Attachment `json:"attachments"`
	Milestones  []Milestone  `json:"milestones"`
	CreatedAt   time.Time    `json:"created_at"`
	LastUpdated time.Time    `json:"last_updated"`
}

// Milestone is a dated checkpoint within a project.
type Milestone struct {
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
}

// Clone returns a deep copy so callers can never mutate store state
// through a returned project.
func (p Project) Clone() Project {
	out := p
	out.Team = append([]string(nil), p.Team...)
	out.Attachments = append([]Attachment(nil), p.Attachments...)
	out.Milestones = append([]Milestone(nil), p.Milestones...)
	if p.Tasks != nil {
		out.Tasks = make([]Task, len(p.Tasks))
		for i, t := range p.Tasks {
			out.Tasks[i] = t.Clone()
		}
	}
	return out
}
