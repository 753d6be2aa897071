package websocket

import (
	"sync"

	"postboard/internal/pkg/logger"

	"github.com/google/uuid"
)

// Hub fans post events out to every connected page. There is no per-user
// routing: the application is single-user, every socket gets everything.
type Hub struct {
	// Registered clients by connection id
	clients map[uuid.UUID]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ConnId] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"conn_id": client.ConnId})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ConnId]; ok {
				delete(h.clients, client.ConnId)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"conn_id": client.ConnId})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends an already-serialized event to all connected clients.
// A client with a full send buffer is dropped rather than blocking the hub.
func (h *Hub) Broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"conn_id": client.ConnId})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}
