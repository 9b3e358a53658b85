package store

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/models"
)

// NotificationCreate is the payload for a new notification. A non-zero TTL
// schedules the entry for the retention sweep.
type NotificationCreate struct {
	Type    string        `json:"type"`
	Title   string        `json:"title"`
	Message string        `json:"message"`
	TTL     time.Duration `json:"-"`
}

// AddNotification appends a notification.
func (s *Store) AddNotification(req NotificationCreate) models.Notification {
	s.mu.Lock()
	now := s.now()
	n := models.Notification{
		ID:        s.nextIDLocked(),
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		CreatedAt: now,
	}
	if n.Type == "" {
		n.Type = models.NotifyInfo
	}
	if req.TTL > 0 {
		expires := now.Add(req.TTL)
		n.ExpiresAt = &expires
	}
	s.state.Notifications = append(s.state.Notifications, n)
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "notification", Action: "created", ID: n.ID})
	return n
}

// MarkNotificationRead flags one entry as read.
func (s *Store) MarkNotificationRead(id int64) error {
	s.mu.Lock()
	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID == id {
			s.state.Notifications[i].Read = true
			s.mu.Unlock()
			s.emit(ChangeEvent{Entity: "notification", Action: "updated", ID: id})
			return nil
		}
	}
	s.mu.Unlock()
	return ErrNotificationNotFound
}

// RemoveNotification deletes one entry.
func (s *Store) RemoveNotification(id int64) error {
	s.mu.Lock()
	idx := -1
	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotificationNotFound
	}
	s.state.Notifications = append(s.state.Notifications[:idx], s.state.Notifications[idx+1:]...)
	s.mu.Unlock()

	s.emit(ChangeEvent{Entity: "notification", Action: "deleted", ID: id})
	return nil
}

// ClearNotifications empties the list.
func (s *Store) ClearNotifications() {
	s.mu.Lock()
	s.state.Notifications = []models.Notification{}
	s.mu.Unlock()
	s.emit(ChangeEvent{Entity: "notification", Action: "deleted"})
}

// PurgeExpired drops entries whose expiry has passed and returns how many
// were removed. Called by the retention scheduler.
func (s *Store) PurgeExpired(now time.Time) int {
	s.mu.Lock()
	kept := s.state.Notifications[:0]
	removed := 0
	for _, n := range s.state.Notifications {
		if n.ExpiresAt != nil && n.ExpiresAt.Before(now) {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	s.state.Notifications = kept
	s.mu.Unlock()

	if removed > 0 {
		s.emit(ChangeEvent{Entity: "notification", Action: "deleted"})
	}
	return removed
}

// Notifications returns a copy of the list, newest last.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification{}, s.state.Notifications...)
}
