package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/interfaces/api/handlers"
)

func SetupBlobRoutes(api fiber.Router, h *handlers.Handlers, identify fiber.Handler) {
	blobs := api.Group("/blobs", identify)

	blobs.Get("/", h.BlobHandler.List)
	blobs.Post("/", h.BlobHandler.SaveFromURL)
	blobs.Post("/upload", h.BlobHandler.Upload)
	blobs.Get("/:key/meta", h.BlobHandler.Meta)
	blobs.Get("/:key", h.BlobHandler.Get)
	blobs.Delete("/:key", h.BlobHandler.Delete)
}
