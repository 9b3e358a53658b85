package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sitedesk/sitedesk/internal/store"
	"github.com/sitedesk/sitedesk/pkg/response"
)

type NotificationHandler struct {
	store *store.Store
}

func NewNotificationHandler(st *store.Store) *NotificationHandler {
	return &NotificationHandler{store: st}
}

// List returns all notifications, newest last
// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	response.Success(c, h.store.Notifications())
}

// Create appends a notification
// POST /api/notifications
func (h *NotificationHandler) Create(c *gin.Context) {
	var req store.NotificationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, h.store.AddNotification(req))
}

// MarkRead flags one notification as read
// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid notification id")
		return
	}

	if err := h.store.MarkNotificationRead(id); err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "marked read"})
}

// Delete removes one notification
// DELETE /api/notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid notification id")
		return
	}

	if err := h.store.RemoveNotification(id); err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "notification removed"})
}

// Clear empties the notification list
// DELETE /api/notifications
func (h *NotificationHandler) Clear(c *gin.Context) {
	h.store.ClearNotifications()
	response.Success(c, gin.H{"message": "notifications cleared"})
}
