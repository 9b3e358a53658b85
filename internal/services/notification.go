package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sitedesk/sitedesk/internal/models"
	"github.com/sitedesk/sitedesk/internal/store"
	"github.com/sitedesk/sitedesk/pkg/logger"
)

// defaultNotificationTTL matches the toast-style lifetime of transient
// status notifications. Zero-TTL notifications stay until dismissed.
const defaultNotificationTTL = 24 * time.Hour

// NotificationService is a thin typed layer over the store's notification
// log plus the retention sweep.
type NotificationService struct {
	store *store.Store
	cron  *cron.Cron
}

func NewNotificationService(st *store.Store) *NotificationService {
	return &NotificationService{store: st}
}

func (s *NotificationService) Success(title, message string) models.Notification {
	return s.store.AddNotification(store.NotificationCreate{
		Type: models.NotifySuccess, Title: title, Message: message, TTL: defaultNotificationTTL,
	})
}

func (s *NotificationService) Error(title, message string) models.Notification {
	return s.store.AddNotification(store.NotificationCreate{
		Type: models.NotifyError, Title: title, Message: message,
	})
}

func (s *NotificationService) Warning(title, message string) models.Notification {
	return s.store.AddNotification(store.NotificationCreate{
		Type: models.NotifyWarning, Title: title, Message: message, TTL: defaultNotificationTTL,
	})
}

func (s *NotificationService) Info(title, message string) models.Notification {
	return s.store.AddNotification(store.NotificationCreate{
		Type: models.NotifyInfo, Title: title, Message: message, TTL: defaultNotificationTTL,
	})
}

// StartRetention schedules the hourly sweep that purges expired
// notifications and dead share links.
func (s *NotificationService) StartRetention(shares *ShareService) {
	s.cron = cron.New()
	s.cron.AddFunc("@hourly", func() {
		if n := s.store.PurgeExpired(time.Now()); n > 0 {
			logger.Infof("[Retention] Purged %d expired notifications", n)
		}
		if shares != nil {
			if n, err := shares.PurgeExpired(); err != nil {
				logger.Warnf("[Retention] Share link purge failed: %v", err)
			} else if n > 0 {
				logger.Infof("[Retention] Purged %d dead share links", n)
			}
		}
	})
	s.cron.Start()
}

// StopRetention halts the sweep scheduler.
func (s *NotificationService) StopRetention() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
