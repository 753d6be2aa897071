package handler

import (
	"postboard/internal/pkg/logger"
	internalWS "postboard/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// FeedHandler exposes the live post-event feed over a websocket. No auth:
// the application is single-user and the feed carries no secrets.
type FeedHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewFeedHandler(hub *internalWS.Hub, log logger.ILogger) *FeedHandler {
	return &FeedHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *FeedHandler) RegisterRoutes(r fiber.Router) {
	r.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	r.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		internalWS.ServeWs(h.hub, conn)
	}))
}
