package models

import "time"

// Share link permissions.
const (
	ShareView = "view"
	ShareEdit = "edit"
)

// ShareLink is a tokenized invitation to a project. Links expire and are
// swept by the retention job.
type ShareLink struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Token      string     `gorm:"uniqueIndex;size:64;not null" json:"token"`
	ProjectID  int64      `gorm:"index;not null" json:"project_id"`
	CreatedBy  string     `gorm:"size:100" json:"created_by"`
	Permission string     `gorm:"size:20;default:view" json:"permission"`
	ExpiresAt  time.Time  `json:"expires_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (ShareLink) TableName() string { return "share_links" }

// Active reports whether the link is usable at the given instant.
func (l ShareLink) Active(now time.Time) bool {
	return l.RevokedAt == nil && now.Before(l.ExpiresAt)
}
