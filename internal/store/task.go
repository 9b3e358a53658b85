package store

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/models"
)

// TaskCreate is a partial creation payload for a task.
type TaskCreate struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	DueDate        *time.Time `json:"due_date"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Progress       int        `json:"progress"`
	Assignees      []string   `json:"assignees"`
	EstimatedHours float64    `json:"estimated_hours"`
}

// TaskPatch is a shallow-merge update; nil fields are left unchanged.
// Status transitions are free-form: any status may be set to any other.
type TaskPatch struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Status         *string    `json:"status"`
	Priority       *string    `json:"priority"`
	DueDate        *time.Time `json:"due_date"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Progress       *int       `json:"progress"`
	Assignees      *[]string  `json:"assignees"`
	EstimatedHours *float64   `json:"estimated_hours"`
}

// AddTask appends a task to the owning project. Touching a nested task
// always refreshes the project's LastUpdated as well.
func (s *Store) AddTask(projectID int64, req TaskCreate) (models.Task, error) {
	s.mu.Lock()
	p := s.findProjectLocked(projectID)
	if p == nil {
		s.mu.Unlock()
		return models.Task{}, ErrProjectNotFound
	}
	now := s.now()
	t := models.Task{
		ID:               s.nextIDLocked(),
		Title:            req.Title,
		Description:      req.Description,
		Status:           models.TaskTodo,
		Priority:         req.Priority,
		DueDate:          req.DueDate,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Progress:         req.Progress,
		Assignees:        []string{},
		Attachments:      []models.Attachment{},
		Comments:         []models.Comment{},
		EstimatedHours:   req.EstimatedHours,
		SubmissionStatus: models.SubmissionDraft,
		CreatedAt:        now,
		LastUpdated:      now,
	}
	if req.Status != "" {
		t.Status = req.Status
	}
	if len(req.Assignees) > 0 {
		t.Assignees = append([]string{}, req.Assignees...)
	}
	p.Tasks = append(p.Tasks, t)
	p.LastUpdated = now
	s.persistLocked()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "task", Action: "created", ID: t.ID, ProjectID: projectID})
	return t.Clone(), nil
}

// UpdateTask applies a shallow patch to a task.
func (s *Store) UpdateTask(projectID, taskID int64, patch TaskPatch) (models.Task, error) {
	s.mu.Lock()
	p, t, err := s.findTaskLocked(projectID, taskID)
	if err != nil {
		s.mu.Unlock()
		return models.Task{}, err
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
	if patch.StartDate != nil {
		t.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		t.EndDate = patch.EndDate
	}
	if patch.Progress != nil {
		t.Progress = *patch.Progress
	}
	if patch.Assignees != nil {
		t.Assignees = append([]string{}, (*patch.Assignees)...)
	}
	if patch.EstimatedHours != nil {
		t.EstimatedHours = *patch.EstimatedHours
	}
	now := s.now()
	t.LastUpdated = now
	p.LastUpdated = now
	out := t.Clone()
	s.persistLocked()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "task", Action: "updated", ID: taskID, ProjectID: projectID})
	return out, nil
}

// DeleteTask removes a task and everything it owns.
func (s *Store) DeleteTask(projectID, taskID int64) error {
	s.mu.Lock()
	p := s.findProjectLocked(projectID)
	if p == nil {
		s.mu.Unlock()
		return ErrProjectNotFound
	}
	kept := p.Tasks[:0]
	found := false
	for _, t := range p.Tasks {
		if t.ID == taskID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		s.mu.Unlock()
		return ErrTaskNotFound
	}
	p.Tasks = kept
	p.LastUpdated = s.now()
	if s.state.Selection.TaskID != nil && *s.state.Selection.TaskID == taskID {
		s.state.Selection.TaskID = nil
	}
	s.persistLocked()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "task", Action: "deleted", ID: taskID, ProjectID: projectID})
	return nil
}

// Task returns a deep copy of one task.
func (s *Store) Task(projectID, taskID int64) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, t, err := s.findTaskLocked(projectID, taskID)
	if err != nil {
		return models.Task{}, err
	}
	return t.Clone(), nil
}

// TasksOf returns copies of a project's tasks. A missing project yields an
// empty slice, not an error: views routinely query just-deleted parents.
func (s *Store) TasksOf(projectID int64) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.findProjectLocked(projectID)
	if p == nil {
		return []models.Task{}
	}
	out := make([]models.Task, len(p.Tasks))
	for i := range p.Tasks {
		out[i] = p.Tasks[i].Clone()
	}
	return out
}

// SubmitTask moves a task into the review flow: submission status becomes
// "submitted" and the workflow status flips to Review.
func (s *Store) SubmitTask(projectID, taskID int64, notes string) (models.Task, error) {
	s.mu.Lock()
	p, t, err := s.findTaskLocked(projectID, taskID)
	if err != nil {
		s.mu.Unlock()
		return models.Task{}, err
	}
	now := s.now()
	t.SubmissionStatus = models.SubmissionSubmitted
	t.SubmittedAt = &now
	t.SubmissionNotes = notes
	t.Status = models.TaskReview
	t.LastUpdated = now
	p.LastUpdated = now
	out := t.Clone()
	s.persistLocked()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "task", Action: "updated", ID: taskID, ProjectID: projectID})
	return out, nil
}

// ReviewTask records a review decision ("approved" or "rejected") with an
// optional feedback comment. Approval completes the task; rejection sends
// it back to In Progress.
func (s *Store) ReviewTask(projectID, taskID int64, decision, feedback, reviewer string) (models.Task, error) {
	s.mu.Lock()
	p, t, err := s.findTaskLocked(projectID, taskID)
	if err != nil {
		s.mu.Unlock()
		return models.Task{}, err
	}
	now := s.now()
	t.SubmissionStatus = decision
	switch decision {
	case models.SubmissionApproved:
		t.Status = models.TaskDone
		t.Progress = 100
	case models.SubmissionRejected:
		t.Status = models.TaskInProgress
	}
	if feedback != "" {
		t.Comments = append(t.Comments, models.Comment{
			ID:        s.nextIDLocked(),
			Author:    reviewer,
			Content:   feedback,
			Type:      "review",
			Decision:  decision,
			CreatedAt: now,
		})
	}
	t.LastUpdated = now
	p.LastUpdated = now
	out := t.Clone()
	s.persistLocked()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "task", Action: "updated", ID: taskID, ProjectID: projectID})
	return out, nil
}

// AddTaskComment appends a plain comment to the task.
func (s *Store) AddTaskComment(projectID, taskID int64, author, content string) (models.Comment, error) {
	s.mu.Lock()
	p, t, err := s.findTaskLocked(projectID, taskID)
	if err != nil {
		s.mu.Unlock()
		return models.Comment{}, err
	}
	now := s.now()
	c := models.Comment{
		ID:        s.nextIDLocked(),
		Author:    author,
		Content:   content,
		Type:      "comment",
		CreatedAt: now,
	}
	t.Comments = append(t.Comments, c)
	t.LastUpdated = now
	p.LastUpdated = now
	s.persistLocked()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "task", Action: "updated", ID: taskID, ProjectID: projectID})
	return c, nil
}

// AddTaskAttachment appends a file descriptor to the task.
func (s *Store) AddTaskAttachment(projectID, taskID int64, att models.Attachment) (models.Attachment, error) {
	s.mu.Lock()
	p, t, err := s.findTaskLocked(projectID, taskID)
	if err != nil {
		s.mu.Unlock()
		return models.Attachment{}, err
	}
	if att.ID == 0 {
		att.ID = s.nextIDLocked()
	}
	if att.UploadedAt.IsZero() {
		att.UploadedAt = s.now()
	}
	now := s.now()
	t.Attachments = append(t.Attachments, att)
	t.LastUpdated = now
	p.LastUpdated = now
	s.persistLocked()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "task", Action: "updated", ID: taskID, ProjectID: projectID})
	return att, nil
}

// RemoveTaskAttachment deletes one attachment from the task.
func (s *Store) RemoveTaskAttachment(projectID, taskID, attachmentID int64) error {
	s.mu.Lock()
	p, t, err := s.findTaskLocked(projectID, taskID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	kept := t.Attachments[:0]
	found := false
	for _, a := range t.Attachments {
		if a.ID == attachmentID {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		s.mu.Unlock()
		return ErrAttachmentNotFound
	}
	t.Attachments = kept
	now := s.now()
	t.LastUpdated = now
	p.LastUpdated = now
	s.persistLocked()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "task", Action: "updated", ID: taskID, ProjectID: projectID})
	return nil
}

// findTaskLocked resolves a task and its owning project; callers hold the lock.
func (s *Store) findTaskLocked(projectID, taskID int64) (*models.Project, *models.Task, error) {
	p := s.findProjectLocked(projectID)
	if p == nil {
		return nil, nil, ErrProjectNotFound
	}
	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			return p, &p.Tasks[i], nil
		}
	}
	return nil, nil, ErrTaskNotFound
}
