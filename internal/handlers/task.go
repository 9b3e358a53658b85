package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sitedesk/sitedesk/internal/middleware"
	"github.com/sitedesk/sitedesk/internal/services"
	"github.com/sitedesk/sitedesk/internal/store"
	"github.com/sitedesk/sitedesk/pkg/response"
)

type TaskHandler struct {
	store       *store.Store
	taskService *services.TaskService
}

func NewTaskHandler(st *store.Store) *TaskHandler {
	return &TaskHandler{
		store:       st,
		taskService: services.NewTaskService(st),
	}
}

// List returns a project's tasks filtered, sorted and paginated.
// A deleted project yields an empty list, not a 404.
// GET /api/projects/:id/tasks
func (h *TaskHandler) List(c *gin.Context) {
	projectID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req services.TaskListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, h.taskService.List(projectID, &req, time.Now()))
}

// GetByID returns one task
// GET /api/projects/:id/tasks/:task_id
func (h *TaskHandler) GetByID(c *gin.Context) {
	projectID, taskID, ok := h.taskIDs(c)
	if !ok {
		return
	}

	task, err := h.store.Task(projectID, taskID)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, task)
}

// Create adds a task to a project
// POST /api/projects/:id/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	projectID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req store.TaskCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.store.AddTask(projectID, req)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Created(c, task)
}

// Update patches a task
// PUT /api/projects/:id/tasks/:task_id
func (h *TaskHandler) Update(c *gin.Context) {
	projectID, taskID, ok := h.taskIDs(c)
	if !ok {
		return
	}

	var patch store.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.store.UpdateTask(projectID, taskID, patch)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, task)
}

// Delete removes a task
// DELETE /api/projects/:id/tasks/:task_id
func (h *TaskHandler) Delete(c *gin.Context) {
	projectID, taskID, ok := h.taskIDs(c)
	if !ok {
		return
	}

	if err := h.store.DeleteTask(projectID, taskID); err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "task deleted successfully"})
}

type submitRequest struct {
	Notes string `json:"notes"`
}

// Submit moves a task into review
// POST /api/projects/:id/tasks/:task_id/submit
func (h *TaskHandler) Submit(c *gin.Context) {
	projectID, taskID, ok := h.taskIDs(c)
	if !ok {
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.store.SubmitTask(projectID, taskID, req.Notes)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, task)
}

type reviewRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
	Feedback string `json:"feedback"`
}

// Review approves or rejects a submitted task
// POST /api/projects/:id/tasks/:task_id/review
func (h *TaskHandler) Review(c *gin.Context) {
	projectID, taskID, ok := h.taskIDs(c)
	if !ok {
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reviewer := middleware.GetUsername(c)
	task, err := h.store.ReviewTask(projectID, taskID, req.Decision, req.Feedback, reviewer)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, task)
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment appends a comment to a task
// POST /api/projects/:id/tasks/:task_id/comments
func (h *TaskHandler) AddComment(c *gin.Context) {
	projectID, taskID, ok := h.taskIDs(c)
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	author := middleware.GetUsername(c)
	comment, err := h.store.AddTaskComment(projectID, taskID, author, req.Content)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Created(c, comment)
}

type bulkStatusRequest struct {
	TaskIDs []int64 `json:"task_ids" binding:"required"`
	Status  string  `json:"status" binding:"required"`
}

// BulkStatus moves several tasks at once (kanban drag of a selection)
// POST /api/projects/:id/tasks/bulk-status
func (h *TaskHandler) BulkStatus(c *gin.Context) {
	projectID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req bulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated := h.taskService.BulkUpdateStatus(projectID, req.TaskIDs, req.Status)
	response.Success(c, gin.H{"updated": updated})
}

// Stats summarizes a project's tasks
// GET /api/projects/:id/tasks/stats
func (h *TaskHandler) Stats(c *gin.Context) {
	projectID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	response.Success(c, h.taskService.Stats(projectID, time.Now()))
}

func (h *TaskHandler) taskIDs(c *gin.Context) (projectID, taskID int64, ok bool) {
	projectID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return 0, 0, false
	}
	taskID, err = parseID(c, "task_id")
	if err != nil {
		response.BadRequest(c, "invalid task id")
		return 0, 0, false
	}
	return projectID, taskID, true
}
