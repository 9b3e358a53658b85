package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sitedesk/sitedesk/internal/middleware"
	"github.com/sitedesk/sitedesk/internal/services"
	"github.com/sitedesk/sitedesk/pkg/response"
)

type ShareHandler struct {
	shareService *services.ShareService
}

func NewShareHandler(svc *services.ShareService) *ShareHandler {
	return &ShareHandler{shareService: svc}
}

// Create issues a share link and queues email invitations
// POST /api/shares
func (h *ShareHandler) Create(c *gin.Context) {
	var req services.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	link, err := h.shareService.Share(&req, middleware.GetUsername(c))
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Created(c, gin.H{
		"link": link,
		"url":  h.shareService.ShareURL(link.Token),
	})
}

// ListForProject lists a project's share links
// GET /api/projects/:id/shares
func (h *ShareHandler) ListForProject(c *gin.Context) {
	projectID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	links, err := h.shareService.LinksFor(projectID)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, links)
}

// Revoke disables a share link
// DELETE /api/shares/:token
func (h *ShareHandler) Revoke(c *gin.Context) {
	if err := h.shareService.Revoke(c.Param("token")); err != nil {
		if errors.Is(err, services.ErrShareLinkInvalid) {
			err = response.NewNotFound("share link not found")
		}
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "share link revoked"})
}

// Resolve is the public, unauthenticated view behind a share token
// GET /share/:token
func (h *ShareHandler) Resolve(c *gin.Context) {
	view, err := h.shareService.Resolve(c.Param("token"))
	if err != nil {
		if errors.Is(err, services.ErrShareLinkInvalid) {
			response.Error(c, response.NewNotFound("share link invalid or expired"))
			return
		}
		handleStoreError(c, err)
		return
	}

	response.Success(c, view)
}
