package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/interfaces/api/handlers"
	"github.com/creative-sdg/multitulza-sub000/interfaces/api/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")

	// identify: JWT หรือ X-Studio-User header
	identify := middleware.Identify(h.Services.JWTSecret, h.Services.UserService)

	SetupAuthRoutes(api, h, identify)
	SetupCharacterRoutes(api, h, identify)
	SetupMediaRoutes(api, h, identify)
	SetupTaskRoutes(api, h, identify)
	SetupBlobRoutes(api, h, identify)
	SetupHistoryRoutes(api, h, identify)
	SetupSpeechRoutes(api, h, identify)
	SetupAudioRoutes(api, h, identify)
	SetupTextBlockRoutes(api, h, identify)
	SetupSettingRoutes(api, h)

	// WebSocket อยู่บน app ตรง ๆ ไม่ใช่ api group
	SetupWebSocketRoutes(app, h, identify)
}
