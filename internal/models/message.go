package models

import "time"

// Message kinds
const (
	MessageText  = "text"
	MessageFile  = "file"
	MessageImage = "image"
)

// Sender identifies who posted a chat message.
type Sender struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Message is an append-only chat entry. File messages reference an uploaded
// attachment via URL plus the file metadata. The optional project/task
// association is a soft reference, not enforced against the project
// collection.
type Message struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"` // text, file, image
	Content   string    `json:"content"`
	FileName  string    `json:"file_name,omitempty"`
	FileSize  int64     `json:"file_size,omitempty"`
	FileType  string    `json:"file_type,omitempty"`
	Sender    Sender    `json:"sender"`
	ProjectID *int64    `json:"project_id,omitempty"`
	TaskID    *int64    `json:"task_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
