package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/interfaces/api/handlers"
	"github.com/creative-sdg/multitulza-sub000/interfaces/api/middleware"
)

func SetupSettingRoutes(api fiber.Router, h *handlers.Handlers) {
	// settings แก้ได้เฉพาะ registered admin ผ่าน JWT
	settings := api.Group("/settings",
		middleware.Protected(h.Services.JWTSecret),
		middleware.AdminOnly(),
	)

	settings.Get("/", h.SettingHandler.GetAll)
	settings.Get("/audit", h.SettingHandler.GetAuditLogs)
	settings.Get("/:category", h.SettingHandler.GetByCategory)
	settings.Put("/:category", h.SettingHandler.UpdateBatch)
	settings.Put("/:category/:key", h.SettingHandler.Update)
	settings.Delete("/:category/:key", h.SettingHandler.Reset)
}
