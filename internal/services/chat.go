package services

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sitedesk/sitedesk/internal/models"
	"github.com/sitedesk/sitedesk/internal/store"
	"github.com/sitedesk/sitedesk/pkg/logger"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 1024 * 1024 // 1MB
)

// ChatClient represents one connected chat participant.
type ChatClient struct {
	Hub      *ChatHub
	Conn     *websocket.Conn
	Send     chan []byte
	Username string
}

// ChatFrame is the wire format for chat traffic in both directions.
type ChatFrame struct {
	Type      string         `json:"type"` // message, ping, pong
	Content   string         `json:"content,omitempty"`
	ProjectID *int64         `json:"project_id,omitempty"`
	TaskID    *int64         `json:"task_id,omitempty"`
	Message   models.Message `json:"message,omitempty"`
	User      string         `json:"user,omitempty"`
}

// ReadPump pumps frames from the WebSocket connection to the hub.
// Incoming chat messages are appended to the store before broadcast, so
// the log and the live stream never diverge.
func (c *ChatClient) ReadPump() {
	defer func() {
		c.Hub.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warnf("[Chat] WebSocket error: %v", err)
			}
			break
		}

		var frame ChatFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			logger.Warnf("[Chat] Malformed frame from %s: %v", c.Username, err)
			continue
		}

		if frame.Type == "ping" {
			pong, err := json.Marshal(ChatFrame{Type: "pong"})
			if err == nil {
				c.Send <- pong
			}
			continue
		}

		if frame.Type != "message" || frame.Content == "" {
			continue
		}

		msg := c.Hub.store.AddMessage(store.MessageCreate{
			Type:      models.MessageText,
			Content:   frame.Content,
			Sender:    models.Sender{Name: c.Username},
			ProjectID: frame.ProjectID,
			TaskID:    frame.TaskID,
		})

		out, err := json.Marshal(ChatFrame{Type: "message", Message: msg, User: c.Username})
		if err != nil {
			logger.Warnf("[Chat] Marshal failed: %v", err)
			continue
		}
		c.Hub.broadcast <- out
	}
}

// WritePump pumps frames from the hub to the WebSocket connection.
func (c *ChatClient) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case raw, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(raw)

			// Drain queued frames into the same write
			n := len(c.Send)
			for i := 0; i < n; i++ {
				w.Write([]byte("\n"))
				w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ChatHub maintains the set of active chat clients and broadcasts
// messages between them.
type ChatHub struct {
	store      *store.Store
	clients    map[*ChatClient]bool
	broadcast  chan []byte
	register   chan *ChatClient
	unregister chan *ChatClient
}

// NewChatHub creates a hub bound to the workspace store.
func NewChatHub(st *store.Store) *ChatHub {
	return &ChatHub{
		store:      st,
		broadcast:  make(chan []byte),
		register:   make(chan *ChatClient),
		unregister: make(chan *ChatClient),
		clients:    make(map[*ChatClient]bool),
	}
}

// Register adds a client to the hub
func (h *ChatHub) Register(client *ChatClient) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *ChatHub) Unregister(client *ChatClient) {
	h.unregister <- client
}

// Run starts the hub's main loop
func (h *ChatHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			logger.Infof("[Chat] Client connected: %s", client.Username)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				logger.Infof("[Chat] Client disconnected: %s", client.Username)
			}
		case raw := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- raw:
				default:
					// Send buffer full, assume disconnected
					close(client.Send)
					delete(h.clients, client)
				}
			}
		}
	}
}
