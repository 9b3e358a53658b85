package store

import "github.com/sitedesk/sitedesk/internal/models"

// MessageCreate is the payload for a new chat entry.
type MessageCreate struct {
	Type      string        `json:"type"`
	Content   string        `json:"content"`
	FileName  string        `json:"file_name"`
	FileSize  int64         `json:"file_size"`
	FileType  string        `json:"file_type"`
	Sender    models.Sender `json:"sender"`
	ProjectID *int64        `json:"project_id"`
	TaskID    *int64        `json:"task_id"`
}

// AddMessage appends to the message log.
func (s *Store) AddMessage(req MessageCreate) models.Message {
	s.mu.Lock()
	m := models.Message{
		ID:        s.nextIDLocked(),
		Type:      req.Type,
		Content:   req.Content,
		FileName:  req.FileName,
		FileSize:  req.FileSize,
		FileType:  req.FileType,
		Sender:    req.Sender,
		ProjectID: req.ProjectID,
		TaskID:    req.TaskID,
		CreatedAt: s.now(),
	}
	if m.Type == "" {
		m.Type = models.MessageText
	}
	s.state.Messages = append(s.state.Messages, m)
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "message", Action: "created", ID: m.ID})
	return m
}

// UpdateMessage edits the content of an existing entry.
func (s *Store) UpdateMessage(id int64, content string) (models.Message, error) {
	s.mu.Lock()
	for i := range s.state.Messages {
		if s.state.Messages[i].ID == id {
			s.state.Messages[i].Content = content
			out := s.state.Messages[i]
			s.mu.Unlock()
			s.emit(ChangeEvent{Entity: "message", Action: "updated", ID: id})
			return out, nil
		}
	}
	s.mu.Unlock()
	return models.Message{}, ErrMessageNotFound
}

// DeleteMessage removes one entry from the log.
func (s *Store) DeleteMessage(id int64) error {
	s.mu.Lock()
	idx := -1
	for i := range s.state.Messages {
		if s.state.Messages[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrMessageNotFound
	}
	s.state.Messages = append(s.state.Messages[:idx], s.state.Messages[idx+1:]...)
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "message", Action: "deleted", ID: id})
	return nil
}

// Messages returns a copy of the log in append order.
func (s *Store) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Message{}, s.state.Messages...)
}
