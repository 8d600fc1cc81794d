package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/interfaces/api/handlers"
)

func SetupCharacterRoutes(api fiber.Router, h *handlers.Handlers, identify fiber.Handler) {
	characters := api.Group("/characters", identify)

	characters.Post("/profile", h.CharacterHandler.GenerateProfile)
	characters.Post("/prompts", h.CharacterHandler.GeneratePrompts)
	characters.Post("/prompts/regenerate", h.CharacterHandler.RegeneratePrompt)
}
