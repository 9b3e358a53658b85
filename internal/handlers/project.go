package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sitedesk/sitedesk/internal/store"
	"github.com/sitedesk/sitedesk/pkg/response"
)

type ProjectHandler struct {
	store *store.Store
}

func NewProjectHandler(st *store.Store) *ProjectHandler {
	return &ProjectHandler{store: st}
}

// List returns all projects
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	response.Success(c, h.store.Projects())
}

// GetByID returns a project by ID
// GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	project, err := h.store.Project(id)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, project)
}

// Create creates a new project
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req store.ProjectCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, h.store.AddProject(req))
}

// Update patches a project
// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var patch store.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.store.UpdateProject(id, patch)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, project)
}

// Delete removes a project and everything it owns
// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	if err := h.store.DeleteProject(id); err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "project deleted successfully"})
}

// parseID reads a numeric path parameter.
func parseID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// handleStoreError converts the store's sentinel errors into AppError
// values so every handler emits the same envelope for the same failure.
// Anything unrecognized falls through response.Error as a 500.
func handleStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrProjectNotFound):
		err = response.NewNotFound("project not found")
	case errors.Is(err, store.ErrTaskNotFound):
		err = response.NewNotFound("task not found")
	case errors.Is(err, store.ErrDealNotFound):
		err = response.NewNotFound("deal not found")
	case errors.Is(err, store.ErrMessageNotFound):
		err = response.NewNotFound("message not found")
	case errors.Is(err, store.ErrAttachmentNotFound):
		err = response.NewNotFound("attachment not found")
	case errors.Is(err, store.ErrNotificationNotFound):
		err = response.NewNotFound("notification not found")
	}
	response.Error(c, err)
}
