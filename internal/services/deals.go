package services

import (
	"github.com/samber/lo"
	"github.com/sitedesk/sitedesk/internal/models"
	"github.com/sitedesk/sitedesk/internal/query"
	"github.com/sitedesk/sitedesk/internal/store"
)

// DealService answers the pipeline table's derived queries: search,
// column filters, sortable columns and pagination, always evaluated
// against the live deal collection.
type DealService struct {
	store *store.Store
}

func NewDealService(st *store.Store) *DealService {
	return &DealService{store: st}
}

// DealTableRequest mirrors the table controls.
type DealTableRequest struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	Priority string `form:"priority"`
	SortKey  string `form:"sort_key"` // name, value, status, progress, priority, last_updated
	SortDesc bool   `form:"sort_desc"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type DealTableResponse struct {
	Items      []models.Deal `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}

// Table runs the filter -> sort -> paginate chain over the pipeline.
func (s *DealService) Table(req *DealTableRequest) *DealTableResponse {
	deals := s.store.Deals()

	deals = query.Search(deals, req.Search, func(d models.Deal) []string {
		return append([]string{d.Name, d.Status, d.Priority}, d.Team...)
	})

	deals = query.Filter(deals, map[string]string{
		"status":   req.Status,
		"priority": req.Priority,
	}, func(d models.Deal, key string) string {
		if key == "status" {
			return d.Status
		}
		return d.Priority
	})

	if req.SortKey != "" {
		deals = query.SortBy(deals, dealSortKey(req.SortKey), req.SortDesc)
	}

	total := len(deals)
	page := req.Page
	if page < 1 {
		page = 1
	}

	return &DealTableResponse{
		Items:      query.Paginate(deals, page, req.PageSize),
		Total:      total,
		Page:       page,
		TotalPages: query.TotalPages(total, req.PageSize),
	}
}

func dealSortKey(key string) func(models.Deal) any {
	switch key {
	case "value":
		return func(d models.Deal) any { return d.Value }
	case "status":
		return func(d models.Deal) any { return d.Status }
	case "progress":
		return func(d models.Deal) any { return d.Progress }
	case "priority":
		return func(d models.Deal) any { return d.Priority }
	case "last_updated":
		return func(d models.Deal) any { return d.LastUpdated }
	default:
		return func(d models.Deal) any { return d.Name }
	}
}

// BulkDelete removes each listed deal. Unknown IDs are skipped; the
// returned count is how many actually went away.
func (s *DealService) BulkDelete(ids []int64) int {
	deleted := 0
	for _, id := range lo.Uniq(ids) {
		if err := s.store.DeleteDeal(id); err == nil {
			deleted++
		}
	}
	return deleted
}

// DeleteSelected deletes every deal in the current row selection and
// clears it.
func (s *DealService) DeleteSelected() int {
	n := s.BulkDelete(s.store.Selection().Rows)
	s.store.SetSelectedRows(nil)
	return n
}

// Pipeline returns the stage summary for the pipeline board.
func (s *DealService) Pipeline() []query.StageStats {
	return query.PipelineStats(s.store.Deals())
}
