package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/interfaces/api/handlers"
)

func SetupMediaRoutes(api fiber.Router, h *handlers.Handlers, identify fiber.Handler) {
	media := api.Group("/media", identify)

	media.Post("/images", h.MediaHandler.GenerateImage)
	media.Post("/videos", h.MediaHandler.GenerateVideo)
	media.Post("/reframe", h.MediaHandler.ReframeImage)
}

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, identify fiber.Handler) {
	tasks := api.Group("/tasks", identify)

	tasks.Get("/", h.TaskHandler.List)
	tasks.Get("/:id", h.TaskHandler.Get)
	tasks.Post("/:id/cancel", h.TaskHandler.Cancel)
	tasks.Delete("/:id", h.TaskHandler.Dismiss)
}
