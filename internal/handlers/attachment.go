package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sitedesk/sitedesk/internal/models"
	"github.com/sitedesk/sitedesk/internal/services"
	"github.com/sitedesk/sitedesk/internal/store"
	"github.com/sitedesk/sitedesk/pkg/response"
)

// AttachmentHandler manages file attachments on projects and tasks.
// Uploaded files are stored on disk and become persisted attachments;
// pending attachments (client-side blob references) go straight into the
// store without a file.
type AttachmentHandler struct {
	store         *store.Store
	uploadService *services.UploadService
}

func NewAttachmentHandler(st *store.Store, uploads *services.UploadService) *AttachmentHandler {
	return &AttachmentHandler{store: st, uploadService: uploads}
}

// UploadToProject stores a file and attaches it to a project
// POST /api/projects/:id/attachments
func (h *AttachmentHandler) UploadToProject(c *gin.Context) {
	projectID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	att, ok := h.saveUpload(c)
	if !ok {
		return
	}

	stored, err := h.store.AddProjectAttachment(projectID, att)
	if err != nil {
		h.uploadService.Remove(att)
		handleStoreError(c, err)
		return
	}

	response.Created(c, stored)
}

// UploadToTask stores a file and attaches it to a task
// POST /api/projects/:id/tasks/:task_id/attachments
func (h *AttachmentHandler) UploadToTask(c *gin.Context) {
	projectID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}
	taskID, err := parseID(c, "task_id")
	if err != nil {
		response.BadRequest(c, "invalid task id")
		return
	}

	att, ok := h.saveUpload(c)
	if !ok {
		return
	}

	stored, err := h.store.AddTaskAttachment(projectID, taskID, att)
	if err != nil {
		h.uploadService.Remove(att)
		handleStoreError(c, err)
		return
	}

	response.Created(c, stored)
}

type pendingAttachmentRequest struct {
	Name string `json:"name" binding:"required"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// AddPendingToProject records a client-side attachment reference without
// a server-side file
// POST /api/projects/:id/attachments/pending
func (h *AttachmentHandler) AddPendingToProject(c *gin.Context) {
	projectID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req pendingAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	att := models.Attachment{
		Name:       req.Name,
		Size:       req.Size,
		Type:       req.Type,
		URL:        req.URL,
		State:      models.AttachmentPending,
		UploadedAt: time.Now(),
	}

	stored, err := h.store.AddProjectAttachment(projectID, att)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Created(c, stored)
}

// DeleteFromProject removes an attachment and its stored file
// DELETE /api/projects/:id/attachments/:attachment_id
func (h *AttachmentHandler) DeleteFromProject(c *gin.Context) {
	projectID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}
	attachmentID, err := parseID(c, "attachment_id")
	if err != nil {
		response.BadRequest(c, "invalid attachment id")
		return
	}

	att, ok := h.findProjectAttachment(projectID, attachmentID)

	if err := h.store.RemoveProjectAttachment(projectID, attachmentID); err != nil {
		handleStoreError(c, err)
		return
	}
	if ok {
		h.uploadService.Remove(att)
	}

	response.Success(c, gin.H{"message": "attachment removed"})
}

// DeleteFromTask removes a task attachment and its stored file
// DELETE /api/projects/:id/tasks/:task_id/attachments/:attachment_id
func (h *AttachmentHandler) DeleteFromTask(c *gin.Context) {
	projectID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}
	taskID, err := parseID(c, "task_id")
	if err != nil {
		response.BadRequest(c, "invalid task id")
		return
	}
	attachmentID, err := parseID(c, "attachment_id")
	if err != nil {
		response.BadRequest(c, "invalid attachment id")
		return
	}

	att, ok := h.findTaskAttachment(projectID, taskID, attachmentID)

	if err := h.store.RemoveTaskAttachment(projectID, taskID, attachmentID); err != nil {
		handleStoreError(c, err)
		return
	}
	if ok {
		h.uploadService.Remove(att)
	}

	response.Success(c, gin.H{"message": "attachment removed"})
}

func (h *AttachmentHandler) saveUpload(c *gin.Context) (models.Attachment, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return models.Attachment{}, false
	}

	att, err := h.uploadService.Save(c, file)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) {
			err = response.NewBadRequest(err.Error())
		}
		response.Error(c, err)
		return models.Attachment{}, false
	}
	return att, true
}

func (h *AttachmentHandler) findProjectAttachment(projectID, attachmentID int64) (models.Attachment, bool) {
	project, err := h.store.Project(projectID)
	if err != nil {
		return models.Attachment{}, false
	}
	for _, att := range project.Attachments {
		if att.ID == attachmentID {
			return att, true
		}
	}
	return models.Attachment{}, false
}

func (h *AttachmentHandler) findTaskAttachment(projectID, taskID, attachmentID int64) (models.Attachment, bool) {
	task, err := h.store.Task(projectID, taskID)
	if err != nil {
		return models.Attachment{}, false
	}
	for _, att := range task.Attachments {
		if att.ID == attachmentID {
			return att, true
		}
	}
	return models.Attachment{}, false
}
