package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/interfaces/api/handlers"
)

func SetupHistoryRoutes(api fiber.Router, h *handlers.Handlers, identify fiber.Handler) {
	history := api.Group("/history", identify)

	history.Get("/", h.HistoryHandler.List)
	history.Put("/", h.HistoryHandler.Save)
	history.Delete("/", h.HistoryHandler.DeleteAll)
	history.Get("/:imageId", h.HistoryHandler.Get)
	history.Delete("/:imageId", h.HistoryHandler.Delete)
}
