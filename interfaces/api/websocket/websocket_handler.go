package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	wsManager "github.com/creative-sdg/multitulza-sub000/infrastructure/websocket"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

type WebSocketHandler struct{}

func NewWebSocketHandler() *WebSocketHandler {
	return &WebSocketHandler{}
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleWebSocket ผูก connection เข้ากับ user แล้วรอรับ message
// task event ถูกยิงเข้า connection นี้ผ่าน TaskBroadcaster
func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	userKey := ""
	if userContext := c.Locals("user"); userContext != nil {
		if user, ok := userContext.(*utils.UserContext); ok {
			userKey = user.Key()
		}
	}
	if userKey == "" {
		logger.Warn("WebSocket connection without identity rejected")
		c.Close()
		return
	}

	logger.Info("WebSocket client connected", "user_id", userKey)

	wsManager.Manager.RegisterClient(c, userKey)
	defer wsManager.Manager.UnregisterClient(c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		wsManager.HandleWebSocketMessage(c, messageType, message)
	}

	logger.Info("WebSocket client disconnected", "user_id", userKey)
}
