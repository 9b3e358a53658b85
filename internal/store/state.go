package store

import "github.com/sitedesk/sitedesk/internal/models"

// state is the full in-memory shape. Only projects, filters, view and the
// sidebar flag are durably snapshotted; deals, messages, notifications and
// selection are session-only and reset on every restart.
type state struct {
	Projects      []models.Project
	Deals         []models.Deal
	Messages      []models.Message
	Notifications []models.Notification
	Filters       models.Filters
	View          string
	SidebarOpen   bool
	Selection     models.Selection
}

func defaultState() state {
	return state{
		Projects:      []models.Project{},
		Deals:         []models.Deal{},
		Messages:      []models.Message{},
		Notifications: []models.Notification{},
		Filters:       models.DefaultFilters(),
		View:          models.ViewList,
		SidebarOpen:   true,
	}
}
