package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitedesk/sitedesk/internal/config"
	"github.com/sitedesk/sitedesk/internal/models"
	"github.com/sitedesk/sitedesk/pkg/logger"
)

var ErrFileTooLarge = errors.New("file exceeds upload size limit")

// UploadService stores attachment files on disk. Files are written under
// the uploads dir with uuid names; the original filename survives only in
// the attachment record.
type UploadService struct {
	cfg *config.UploadsConfig
}

func NewUploadService(cfg *config.UploadsConfig) (*UploadService, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &UploadService{cfg: cfg}, nil
}

// Save writes the uploaded file to disk and returns a persisted attachment
// descriptor ready to be handed to the store.
func (s *UploadService) Save(c *gin.Context, file *multipart.FileHeader) (models.Attachment, error) {
	if s.cfg.MaxMB > 0 && file.Size > int64(s.cfg.MaxMB)<<20 {
		return models.Attachment{}, ErrFileTooLarge
	}

	storedName := uuid.New().String() + sanitizeExt(file.Filename)
	dst := filepath.Join(s.cfg.Dir, storedName)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		return models.Attachment{}, err
	}

	att := models.Attachment{
		Name:       file.Filename,
		Size:       file.Size,
		Type:       file.Header.Get("Content-Type"),
		URL:        strings.TrimSuffix(s.cfg.BaseURL, "/") + "/" + storedName,
		State:      models.AttachmentPersisted,
		StoredName: storedName,
		UploadedAt: time.Now(),
	}
	return att, nil
}

// Remove deletes the stored file for a persisted attachment. Pending
// attachments have no server-side file, so there is nothing to remove.
func (s *UploadService) Remove(att models.Attachment) {
	if att.State != models.AttachmentPersisted || att.StoredName == "" {
		return
	}
	path := filepath.Join(s.cfg.Dir, filepath.Base(att.StoredName))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warnf("[Upload] Failed to remove %s: %v", path, err)
	}
}

// Dir returns the directory served as static files.
func (s *UploadService) Dir() string {
	return s.cfg.Dir
}

// sanitizeExt keeps a short, safe file extension for the stored name.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return ext
}
