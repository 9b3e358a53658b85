package store

import "github.com/sitedesk/sitedesk/internal/models"

// SetFilters replaces the active filter set.
func (s *Store) SetFilters(f models.Filters) {
	s.mu.Lock()
	s.state.Filters = f
	s.persistLocked()
	s.mu.Unlock()
	s.emit(ChangeEvent{Entity: "workspace", Action: "updated"})
}

// Filters returns the active filter set.
func (s *Store) Filters() models.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Filters
}

// SetView switches the active view mode (list, kanban, table, grid).
func (s *Store) SetView(view string) {
	s.mu.Lock()
	s.state.View = view
	s.persistLocked()
	s.mu.Unlock()
	s.emit(ChangeEvent{Entity: "workspace", Action: "updated"})
}

// View returns the active view mode.
func (s *Store) View() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.View
}

// SetSidebarOpen toggles the sidebar flag.
func (s *Store) SetSidebarOpen(open bool) {
	s.mu.Lock()
	s.state.SidebarOpen = open
	s.persistLocked()
	s.mu.Unlock()
	s.emit(ChangeEvent{Entity: "workspace", Action: "updated"})
}

// SidebarOpen reports the sidebar flag.
func (s *Store) SidebarOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SidebarOpen
}

// SelectProject focuses a project and clears any task focus.
func (s *Store) SelectProject(id *int64) {
	s.mu.Lock()
	s.state.Selection.ProjectID = id
	s.state.Selection.TaskID = nil
	s.mu.Unlock()
}

// SelectTask focuses a task.
func (s *Store) SelectTask(id *int64) {
	s.mu.Lock()
	s.state.Selection.TaskID = id
	s.mu.Unlock()
}

// ClearSelection drops project/task focus and checked rows.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.state.Selection = models.Selection{}
	s.mu.Unlock()
}

// ToggleRow checks or unchecks one table row.
func (s *Store) ToggleRow(id int64) {
	s.mu.Lock()
	rows := s.state.Selection.Rows
	for i, row := range rows {
		if row == id {
			s.state.Selection.Rows = append(rows[:i], rows[i+1:]...)
			s.mu.Unlock()
			return
		}
	}
	s.state.Selection.Rows = append(rows, id)
	s.mu.Unlock()
}

// SetSelectedRows replaces the checked-row set.
func (s *Store) SetSelectedRows(rows []int64) {
	s.mu.Lock()
	s.state.Selection.Rows = append([]int64{}, rows...)
	s.mu.Unlock()
}

// Selection returns a copy of the selection state.
func (s *Store) Selection() models.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel := s.state.Selection
	sel.Rows = append([]int64{}, s.state.Selection.Rows...)
	return sel
}
