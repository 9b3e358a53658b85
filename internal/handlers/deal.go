package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sitedesk/sitedesk/internal/services"
	"github.com/sitedesk/sitedesk/internal/store"
	"github.com/sitedesk/sitedesk/pkg/response"
)

type DealHandler struct {
	store       *store.Store
	dealService *services.DealService
}

func NewDealHandler(st *store.Store) *DealHandler {
	return &DealHandler{
		store:       st,
		dealService: services.NewDealService(st),
	}
}

// Table returns the pipeline table view: searched, filtered, sorted,
// paginated.
// GET /api/deals
func (h *DealHandler) Table(c *gin.Context) {
	var req services.DealTableRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, h.dealService.Table(&req))
}

// GetByID returns one deal
// GET /api/deals/:id
func (h *DealHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid deal id")
		return
	}

	deal, err := h.store.Deal(id)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, deal)
}

// Create adds a deal to the pipeline
// POST /api/deals
func (h *DealHandler) Create(c *gin.Context) {
	var req store.DealCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, h.store.AddDeal(req))
}

// Update patches a deal
// PUT /api/deals/:id
func (h *DealHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid deal id")
		return
	}

	var patch store.DealPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	deal, err := h.store.UpdateDeal(id, patch)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, deal)
}

// Delete removes a deal
// DELETE /api/deals/:id
func (h *DealHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid deal id")
		return
	}

	if err := h.store.DeleteDeal(id); err != nil {
		handleStoreError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "deal deleted successfully"})
}

type bulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required"`
}

// BulkDelete removes several deals at once
// POST /api/deals/bulk-delete
func (h *DealHandler) BulkDelete(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"deleted": h.dealService.BulkDelete(req.IDs)})
}

// DeleteSelected removes every deal in the current row selection
// POST /api/deals/delete-selected
func (h *DealHandler) DeleteSelected(c *gin.Context) {
	response.Success(c, gin.H{"deleted": h.dealService.DeleteSelected()})
}

// Pipeline returns the stage summary
// GET /api/deals/pipeline
func (h *DealHandler) Pipeline(c *gin.Context) {
	response.Success(c, h.dealService.Pipeline())
}
