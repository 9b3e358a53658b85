package models

import "time"

// Notification severities
const (
	NotifyInfo    = "info"
	NotifySuccess = "success"
	NotifyWarning = "warning"
	NotifyError   = "error"
)

// Notification is a transient, session-scoped user message. Entries with an
// expiry are swept by the retention scheduler once it passes.
type Notification struct {
	ID        int64      `json:"id"`
	Type      string     `json:"type"` // info, success, warning, error
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
