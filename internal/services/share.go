package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitedesk/sitedesk/internal/models"
	"github.com/sitedesk/sitedesk/internal/store"
	"gorm.io/gorm"
)

const defaultShareTTL = 7 * 24 * time.Hour

var ErrShareLinkInvalid = errors.New("share link invalid or expired")

// ShareService creates and resolves tokenized project share links. Link
// records live in the database so they survive restarts independently of
// the workspace snapshot.
type ShareService struct {
	db      *gorm.DB
	store   *store.Store
	queue   TaskQueue
	baseURL string
}

func NewShareService(db *gorm.DB, st *store.Store, queue TaskQueue, baseURL string) *ShareService {
	return &ShareService{db: db, store: st, queue: queue, baseURL: baseURL}
}

type ShareRequest struct {
	ProjectID  int64    `json:"project_id" binding:"required"`
	Recipients []string `json:"recipients"`
	Message    string   `json:"message"`
	Permission string   `json:"permission" binding:"omitempty,oneof=view edit"`
	TTLHours   int      `json:"ttl_hours"`
}

// ShareView is what a resolved token grants: the project plus the access
// level the link carries.
type ShareView struct {
	Project    models.Project `json:"project"`
	Permission string         `json:"permission"`
}

// Share creates a link for the project and fans out email invitations
// through the task queue. The sharer gets an in-app notification either way.
func (s *ShareService) Share(req *ShareRequest, sharedBy string) (*models.ShareLink, error) {
	project, err := s.store.Project(req.ProjectID)
	if err != nil {
		return nil, err
	}

	ttl := defaultShareTTL
	if req.TTLHours > 0 {
		ttl = time.Duration(req.TTLHours) * time.Hour
	}

	permission := req.Permission
	if permission == "" {
		permission = models.ShareView
	}

	link := models.ShareLink{
		Token:      uuid.New().String(),
		ProjectID:  project.ID,
		CreatedBy:  sharedBy,
		Permission: permission,
		ExpiresAt:  time.Now().Add(ttl),
	}
	if err := s.db.Create(&link).Error; err != nil {
		return nil, err
	}

	if len(req.Recipients) > 0 {
		task := &ShareEmailTask{
			Token:       link.Token,
			ProjectID:   project.ID,
			ProjectName: project.Name,
			SharedBy:    sharedBy,
			Message:     req.Message,
			ShareURL:    s.ShareURL(link.Token),
			Recipients:  req.Recipients,
		}
		if err := s.queue.Enqueue(task); err != nil {
			s.store.AddNotification(store.NotificationCreate{
				Type:    models.NotifyError,
				Title:   "Share failed",
				Message: fmt.Sprintf("Could not queue invitations for %q", project.Name),
			})
			return &link, err
		}
	}

	s.store.AddNotification(store.NotificationCreate{
		Type:    models.NotifySuccess,
		Title:   "Project shared",
		Message: fmt.Sprintf("%q shared with %d recipient(s)", project.Name, len(req.Recipients)),
	})

	return &link, nil
}

// Resolve returns the shared project for a live token.
func (s *ShareService) Resolve(token string) (*ShareView, error) {
	var link models.ShareLink
	if err := s.db.Where("token = ?", token).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShareLinkInvalid
		}
		return nil, err
	}
	if !link.Active(time.Now()) {
		return nil, ErrShareLinkInvalid
	}
	project, err := s.store.Project(link.ProjectID)
	if err != nil {
		return nil, err
	}
	return &ShareView{Project: project, Permission: link.Permission}, nil
}

// Revoke disables a token immediately.
func (s *ShareService) Revoke(token string) error {
	now := time.Now()
	result := s.db.Model(&models.ShareLink{}).
		Where("token = ? AND revoked_at IS NULL", token).
		Update("revoked_at", now)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrShareLinkInvalid
	}
	return nil
}

// LinksFor lists the links created for a project, newest first.
func (s *ShareService) LinksFor(projectID int64) ([]models.ShareLink, error) {
	var links []models.ShareLink
	err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

// PurgeExpired deletes dead links. Returns the number removed.
func (s *ShareService) PurgeExpired() (int64, error) {
	result := s.db.Where("expires_at < ? OR revoked_at IS NOT NULL", time.Now()).
		Delete(&models.ShareLink{})
	return result.RowsAffected, result.Error
}

// ShareURL builds the public URL for a token.
func (s *ShareService) ShareURL(token string) string {
	return strings.TrimSuffix(s.baseURL, "/") + "/share/" + token
}
