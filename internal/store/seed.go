package store

import "github.com/sitedesk/sitedesk/internal/models"

// SeedDemoData populates an empty pipeline with sample deals and a welcome
// notification, so a cold start shows a populated dashboard. No-op when
// deals already exist.
func (s *Store) SeedDemoData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Deals) > 0 {
		return
	}

	now := s.now()
	s.state.Deals = []models.Deal{
		{
			ID:          s.nextIDLocked(),
			Name:        "City Center Complex",
			Value:       "$1.2M",
			Status:      models.ProjectInProgress,
			Progress:    65,
			Priority:    models.PriorityHigh,
			Team:        []string{"John D.", "Sarah M."},
			LastUpdated: now.AddDate(0, 0, -1),
		},
		{
			ID:          s.nextIDLocked(),
			Name:        "Riverside Development",
			Value:       "$2.5M",
			Status:      models.ProjectPlanning,
			Progress:    25,
			Priority:    models.PriorityMedium,
			Team:        []string{"Emily R.", "Michael K."},
			LastUpdated: now.AddDate(0, 0, -2),
		},
		{
			ID:          s.nextIDLocked(),
			Name:        "Metro Station Renovation",
			Value:       "$800K",
			Status:      models.ProjectCompleted,
			Progress:    100,
			Priority:    models.PriorityLow,
			Team:        []string{"David L."},
			LastUpdated: now.AddDate(0, 0, -3),
		},
	}

	s.state.Notifications = append(s.state.Notifications, models.Notification{
		ID:        s.nextIDLocked(),
		Type:      models.NotifyInfo,
		Title:     "Welcome to Sitedesk",
		Message:   "Your workspace is ready. Create a project to get started.",
		CreatedAt: now,
	})
}
