package store

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/models"
)

// ProjectCreate is a partial creation payload. Supplied fields are merged
// over the defaulted skeleton; the store accepts any shape, validation is a
// form concern.
type ProjectCreate struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Status      string             `json:"status"`
	Progress    int                `json:"progress"`
	StartDate   *time.Time         `json:"start_date"`
	EndDate     *time.Time         `json:"end_date"`
	Budget      string             `json:"budget"`
	Client      string             `json:"client"`
	Team        []string           `json:"team"`
	Milestones  []models.Milestone `json:"milestones"`
}

// ProjectPatch is a shallow-merge update; nil fields are left unchanged.
type ProjectPatch struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Status      *string             `json:"status"`
	Progress    *int                `json:"progress"`
	StartDate   *time.Time          `json:"start_date"`
	EndDate     *time.Time          `json:"end_date"`
	Budget      *string             `json:"budget"`
	Client      *string             `json:"client"`
	Team        *[]string           `json:"team"`
	Milestones  *[]models.Milestone `json:"milestones"`
}

// AddProject appends a new project built from the defaulted skeleton with
// the supplied fields merged over it.
func (s *Store) AddProject(req ProjectCreate) models.Project {
	s.mu.Lock()
	now := s.now()
	p := models.Project{
		ID:          s.nextIDLocked(),
		Name:        req.Name,
		Description: req.Description,
		Status:      models.ProjectPlanning,
		Progress:    req.Progress,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Client:      req.Client,
		Team:        []string{},
		Tasks:       []models.Task{},
		Attachments: []models.Attachment{},
		Milestones:  []models.Milestone{},
		CreatedAt:   now,
		LastUpdated: now,
	}
	if req.Status != "" {
		p.Status = req.Status
	}
	if len(req.Team) > 0 {
		p.Team = append([]string{}, req.Team...)
	}
	if len(req.Milestones) > 0 {
		p.Milestones = append([]models.Milestone{}, req.Milestones...)
	}
	s.state.Projects = append(s.state.Projects, p)
	s.persistLocked()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "project", Action: "created", ID: p.ID})
	return p.Clone()
}

// UpdateProject applies a shallow patch and refreshes LastUpdated.
func (s *Store) UpdateProject(id int64, patch ProjectPatch) (models.Project, error) {
	s.mu.Lock()
	p := s.findProjectLocked(id)
	if p == nil {
		s.mu.Unlock()
		return models.Project{}, ErrProjectNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Progress != nil {
		p.Progress = *patch.Progress
	}
	if patch.StartDate != nil {
		p.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = patch.EndDate
	}
	if patch.Budget != nil {
		p.Budget = *patch.Budget
	}
	if patch.Client != nil {
		p.Client = *patch.Client
	}
	if patch.Team != nil {
		p.Team = append([]string{}, (*patch.Team)...)
	}
	if patch.Milestones != nil {
		p.Milestones = append([]models.Milestone{}, (*patch.Milestones)...)
	}
	p.LastUpdated = s.now()
	out := p.Clone()
	s.persistLocked()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "project", Action: "updated", ID: id})
	return out, nil
}

// DeleteProject removes a project; its tasks, attachments and milestones
// are discarded with it.
func (s *Store) DeleteProject(id int64) error {
	s.mu.Lock()
	idx := -1
	for i := range s.state.Projects {
		if s.state.Projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrProjectNotFound
	}
	s.state.Projects = append(s.state.Projects[:idx], s.state.Projects[idx+1:]...)
	if s.state.Selection.ProjectID != nil && *s.state.Selection.ProjectID == id {
		s.state.Selection.ProjectID = nil
		s.state.Selection.TaskID = nil
	}
	s.persistLocked()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "project", Action: "deleted", ID: id})
	return nil
}

// Project returns a deep copy of one project.
func (s *Store) Project(id int64) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.state.Projects {
		if s.state.Projects[i].ID == id {
			return s.state.Projects[i].Clone(), nil
		}
	}
	return models.Project{}, ErrProjectNotFound
}

// Projects returns a deep copy of the full project collection.
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, len(s.state.Projects))
	for i := range s.state.Projects {
		out[i] = s.state.Projects[i].Clone()
	}
	return out
}

// AddProjectAttachment appends a file descriptor to the project itself.
func (s *Store) AddProjectAttachment(projectID int64, att models.Attachment) (models.Attachment, error) {
	s.mu.Lock()
	p := s.findProjectLocked(projectID)
	if p == nil {
		s.mu.Unlock()
		return models.Attachment{}, ErrProjectNotFound
	}
	if att.ID == 0 {
		att.ID = s.nextIDLocked()
	}
	if att.UploadedAt.IsZero() {
		att.UploadedAt = s.now()
	}
	p.Attachments = append(p.Attachments, att)
	p.LastUpdated = s.now()
	s.persistLocked()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "project", Action: "updated", ID: projectID})
	return att, nil
}

// RemoveProjectAttachment deletes one attachment from the project.
func (s *Store) RemoveProjectAttachment(projectID, attachmentID int64) error {
	s.mu.Lock()
	p := s.findProjectLocked(projectID)
	if p == nil {
		s.mu.Unlock()
		return ErrProjectNotFound
	}
	kept := p.Attachments[:0]
	found := false
	for _, a := range p.Attachments {
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
	p.Attachments = kept
	p.LastUpdated = s.now()
	s.persistLocked()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "project", Action: "updated", ID: projectID})
	return nil
}

// findProjectLocked returns a pointer into state; callers hold the lock.
func (s *Store) findProjectLocked(id int64) *models.Project {
	for i := range s.state.Projects {
		if s.state.Projects[i].ID == id {
			return &s.state.Projects[i]
		}
	}
	return nil
}
