package store

import (
	"encoding/json"

	"github.com/sitedesk/sitedesk/internal/models"
	"github.com/sitedesk/sitedesk/pkg/logger"
)

// persistedState is the durable subset of the store. Deals, messages,
// notifications and selection are deliberately session-only.
type persistedState struct {
	Projects    []models.Project `json:"projects"`
	Filters     models.Filters   `json:"filters"`
	View        string           `json:"view"`
	SidebarOpen bool             `json:"sidebar_open"`
}

// persistLocked writes the persisted subset through the Persister. A save
// failure must never fail the mutation that triggered it, so it is logged
// and swallowed. Callers hold the lock.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	snap := persistedState{
		Projects:    s.state.Projects,
		Filters:     s.state.Filters,
		View:        s.state.View,
		SidebarOpen: s.state.SidebarOpen,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to serialize workspace snapshot")
		return
	}
	if err := s.persister.Save(data); err != nil {
		logger.Warn().Err(err).Msg("failed to persist workspace snapshot")
	}
}

// Restore loads the snapshot over the default state. A missing or
// malformed snapshot falls back to defaults, so a corrupt blob behaves
// exactly like a first-ever run. Reports whether a snapshot was applied.
func (s *Store) Restore() bool {
	if s.persister == nil {
		return false
	}
	data, err := s.persister.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load workspace snapshot, starting fresh")
		return false
	}
	if len(data) == 0 {
		return false
	}
	var snap persistedState
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Warn().Err(err).Msg("malformed workspace snapshot, starting fresh")
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Projects != nil {
		s.state.Projects = snap.Projects
	}
	if snap.Filters != (models.Filters{}) {
		s.state.Filters = snap.Filters
	}
	if snap.View != "" {
		s.state.View = snap.View
	}
	s.state.SidebarOpen = snap.SidebarOpen

	// Advance the id cursor past every restored identifier so new entities
	// can never collide with snapshot contents.
	for i := range s.state.Projects {
		p := &s.state.Projects[i]
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
		for j := range p.Tasks {
			if p.Tasks[j].ID > s.lastID {
				s.lastID = p.Tasks[j].ID
			}
		}
	}
	return true
}
