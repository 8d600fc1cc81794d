package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/interfaces/api/handlers"
)

func SetupSpeechRoutes(api fiber.Router, h *handlers.Handlers, identify fiber.Handler) {
	speech := api.Group("/speech", identify)

	speech.Post("/", h.SpeechHandler.Synthesize)
	speech.Get("/voices", h.SpeechHandler.ListVoices)
}

func SetupAudioRoutes(api fiber.Router, h *handlers.Handlers, identify fiber.Handler) {
	audio := api.Group("/audio", identify)

	audio.Post("/timeline", h.AudioHandler.RecalculateTimeline)
	audio.Post("/chunks/:index/speech", h.AudioHandler.GenerateChunkSpeech)
}
