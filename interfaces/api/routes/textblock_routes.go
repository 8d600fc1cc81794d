package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/interfaces/api/handlers"
)

func SetupTextBlockRoutes(api fiber.Router, h *handlers.Handlers, identify fiber.Handler) {
	textblocks := api.Group("/textblocks", identify)

	textblocks.Post("/fetch", h.TextBlockHandler.Fetch)
	textblocks.Post("/rebrand", h.TextBlockHandler.Rebrand)
}
