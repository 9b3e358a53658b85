package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sitedesk/sitedesk/internal/models"
	"github.com/sitedesk/sitedesk/internal/store"
	"github.com/sitedesk/sitedesk/pkg/response"
)

// WorkspaceHandler exposes the UI workspace state: filters, view mode,
// sidebar and selection.
type WorkspaceHandler struct {
	store *store.Store
}

func NewWorkspaceHandler(st *store.Store) *WorkspaceHandler {
	return &WorkspaceHandler{store: st}
}

type workspaceState struct {
	Filters     models.Filters   `json:"filters"`
	View        string           `json:"view"`
	SidebarOpen bool             `json:"sidebar_open"`
	Selection   models.Selection `json:"selection"`
}

// Get returns the whole workspace state in one shot
// GET /api/workspace
func (h *WorkspaceHandler) Get(c *gin.Context) {
	response.Success(c, workspaceState{
		Filters:     h.store.Filters(),
		View:        h.store.View(),
		SidebarOpen: h.store.SidebarOpen(),
		Selection:   h.store.Selection(),
	})
}

// SetFilters replaces the filter set
// PUT /api/workspace/filters
func (h *WorkspaceHandler) SetFilters(c *gin.Context) {
	var f models.Filters
	if err := c.ShouldBindJSON(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	h.store.SetFilters(f)
	response.Success(c, h.store.Filters())
}

type viewRequest struct {
	View string `json:"view" binding:"required,oneof=list kanban table grid"`
}

// SetView switches the board view mode
// PUT /api/workspace/view
func (h *WorkspaceHandler) SetView(c *gin.Context) {
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	h.store.SetView(req.View)
	response.Success(c, gin.H{"view": h.store.View()})
}

type sidebarRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// SetSidebar toggles the sidebar
// PUT /api/workspace/sidebar
func (h *WorkspaceHandler) SetSidebar(c *gin.Context) {
	var req sidebarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	h.store.SetSidebarOpen(*req.Open)
	response.Success(c, gin.H{"sidebar_open": h.store.SidebarOpen()})
}

type selectionRequest struct {
	ProjectID *int64  `json:"project_id"`
	TaskID    *int64  `json:"task_id"`
	Rows      []int64 `json:"rows"`
}

// SetSelection replaces the selection. Selected IDs are not validated
// against the collections; a stale selection is the UI's concern.
// PUT /api/workspace/selection
func (h *WorkspaceHandler) SetSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	h.store.SelectProject(req.ProjectID)
	h.store.SelectTask(req.TaskID)
	if req.Rows != nil {
		h.store.SetSelectedRows(req.Rows)
	}
	response.Success(c, h.store.Selection())
}

// ToggleRow flips one deal row in the selection
// POST /api/workspace/selection/rows/:id
func (h *WorkspaceHandler) ToggleRow(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid row id")
		return
	}

	h.store.ToggleRow(id)
	response.Success(c, h.store.Selection())
}

// ClearSelection drops the project, task and row selection
// DELETE /api/workspace/selection
func (h *WorkspaceHandler) ClearSelection(c *gin.Context) {
	h.store.ClearSelection()
	response.Success(c, h.store.Selection())
}

// Reset wipes the workspace back to its defaults
// POST /api/workspace/reset
func (h *WorkspaceHandler) Reset(c *gin.Context) {
	h.store.Reset()
	response.Success(c, gin.H{"message": "workspace reset"})
}
