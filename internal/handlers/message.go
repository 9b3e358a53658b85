package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sitedesk/sitedesk/internal/store"
	"github.com/sitedesk/sitedesk/pkg/response"
)

type MessageHandler struct {
	store *store.Store
}

func NewMessageHandler(st *store.Store) *MessageHandler {
	return &MessageHandler{store: st}
}

// List returns the whole message log in insertion order
// GET /api/messages
func (h *MessageHandler) List(c *gin.Context) {
	response.Success(c, h.store.Messages())
}

// Create appends a message to the log
// POST /api/messages
func (h *MessageHandler) Create(c *gin.Context) {
	var req store.MessageCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, h.store.AddMessage(req))
}

type editMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// Update edits a message's content
// PUT /api/messages/:id
func (h *MessageHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	var req editMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.store.UpdateMessage(id, req.Content)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, msg)
}

// Delete removes a message
// DELETE /api/messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	if err := h.store.DeleteMessage(id); err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "message deleted successfully"})
}
