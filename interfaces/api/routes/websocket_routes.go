package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/creative-sdg/multitulza-sub000/interfaces/api/handlers"
	websocketHandler "github.com/creative-sdg/multitulza-sub000/interfaces/api/websocket"
)

func SetupWebSocketRoutes(app *fiber.App, h *handlers.Handlers, identify fiber.Handler) {
	wsHandler := websocketHandler.NewWebSocketHandler()

	app.Use("/ws", identify, wsHandler.WebSocketUpgrade)
	app.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
