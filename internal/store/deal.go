package store

import "github.com/sitedesk/sitedesk/internal/models"

// DealCreate is a partial creation payload for a pipeline entry.
type DealCreate struct {
	Name     string   `json:"name"`
	Value    string   `json:"value"`
	Status   string   `json:"status"`
	Progress int      `json:"progress"`
	Priority string   `json:"priority"`
	Team     []string `json:"team"`
}

// DealPatch is a shallow-merge update; nil fields are left unchanged.
type DealPatch struct {
	Name     *string   `json:"name"`
	Value    *string   `json:"value"`
	Status   *string   `json:"status"`
	Progress *int      `json:"progress"`
	Priority *string   `json:"priority"`
	Team     *[]string `json:"team"`
}

// AddDeal appends a deal to the pipeline.
func (s *Store) AddDeal(req DealCreate) models.Deal {
	s.mu.Lock()
	d := models.Deal{
		ID:          s.nextIDLocked(),
		Name:        req.Name,
		Value:       req.Value,
		Status:      req.Status,
		Progress:    req.Progress,
		Priority:    req.Priority,
		Team:        []string{},
		LastUpdated: s.now(),
	}
	if d.Status == "" {
		d.Status = models.ProjectPlanning
	}
	if len(req.Team) > 0 {
		d.Team = append([]string{}, req.Team...)
	}
	s.state.Deals = append(s.state.Deals, d)
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "deal", Action: "created", ID: d.ID})
	return d.Clone()
}

// UpdateDeal applies a shallow patch and refreshes LastUpdated.
func (s *Store) UpdateDeal(id int64, patch DealPatch) (models.Deal, error) {
	s.mu.Lock()
	var d *models.Deal
	for i := range s.state.Deals {
		if s.state.Deals[i].ID == id {
			d = &s.state.Deals[i]
			break
		}
	}
	if d == nil {
		s.mu.Unlock()
		return models.Deal{}, ErrDealNotFound
	}
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Value != nil {
		d.Value = *patch.Value
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	if patch.Progress != nil {
		d.Progress = *patch.Progress
	}
	if patch.Priority != nil {
		d.Priority = *patch.Priority
	}
	if patch.Team != nil {
		d.Team = append([]string{}, (*patch.Team)...)
	}
	d.LastUpdated = s.now()
	out := d.Clone()
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "deal", Action: "updated", ID: id})
	return out, nil
}

// DeleteDeal removes a deal and drops it from the row selection.
func (s *Store) DeleteDeal(id int64) error {
	s.mu.Lock()
	idx := -1
	for i := range s.state.Deals {
		if s.state.Deals[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrDealNotFound
	}
	s.state.Deals = append(s.state.Deals[:idx], s.state.Deals[idx+1:]...)
	kept := s.state.Selection.Rows[:0]
	for _, row := range s.state.Selection.Rows {
		if row != id {
			kept = append(kept, row)
		}
	}
	s.state.Selection.Rows = kept
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "deal", Action: "deleted", ID: id})
	return nil
}

// Deal returns a copy of one deal.
func (s *Store) Deal(id int64) (models.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.state.Deals {
		if s.state.Deals[i].ID == id {
			return s.state.Deals[i].Clone(), nil
		}
	}
	return models.Deal{}, ErrDealNotFound
}

// Deals returns a copy of the full pipeline.
func (s *Store) Deals() []models.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Deal, len(s.state.Deals))
	for i := range s.state.Deals {
		out[i] = s.state.Deals[i].Clone()
	}
	return out
}
