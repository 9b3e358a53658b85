package models

import "time"

// Attachment states. A pending attachment is backed by a client-local blob
// URL that dies with the browser session; a persisted one points at a file
// stored under the uploads directory and survives restarts.
const (
	AttachmentPending   = "pending"
	AttachmentPersisted = "persisted"
)

// Attachment is a file descriptor owned by a project or task.
type Attachment struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"` // MIME type
	URL        string    `json:"url"`
	State      string    `json:"state"`       // pending, persisted
	StoredName string    `json:"stored_name"` // server-side filename, persisted only
	UploadedAt time.Time `json:"uploaded_at"`
}
