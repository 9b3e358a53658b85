package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sitedesk/sitedesk/internal/services"
	"github.com/sitedesk/sitedesk/internal/utils"
	"github.com/sitedesk/sitedesk/pkg/logger"
	"github.com/sitedesk/sitedesk/pkg/response"
)

var chatUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers cannot set Authorization on WebSocket upgrades; the token
	// arrives as a query parameter and CORS is handled there instead.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ChatHandler upgrades connections into the team chat hub
type ChatHandler struct {
	hub *services.ChatHub
}

func NewChatHandler(hub *services.ChatHub) *ChatHandler {
	return &ChatHandler{hub: hub}
}

// Connect upgrades to a WebSocket and joins the chat
// GET /api/chat/ws?token=...
func (h *ChatHandler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	claims, err := utils.ParseToken(token)
	if err != nil {
		response.Unauthorized(c, "Invalid token")
		return
	}

	conn, err := chatUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warnf("[Chat] Upgrade failed: %v", err)
		return
	}

	client := &services.ChatClient{
		Hub:      h.hub,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		Username: claims.Username,
	}
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
