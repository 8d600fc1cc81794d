package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/interfaces/api/middleware"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

type SpeechHandler struct {
	speechService services.SpeechService
}

func NewSpeechHandler(speechService services.SpeechService) *SpeechHandler {
	return &SpeechHandler{speechService: speechService}
}

// Synthesize สร้างเสียงพูดจากข้อความ
// POST /api/v1/speech
func (h *SpeechHandler) Synthesize(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.SynthesizeSpeechRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	resp, err := h.speechService.Synthesize(c.UserContext(), user.Key(), &req)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, resp)
}

// ListVoices ดึงเสียงที่อนุญาตให้ใช้
// GET /api/v1/speech/voices
func (h *SpeechHandler) ListVoices(c *fiber.Ctx) error {
	voices, err := h.speechService.ListVoices(c.UserContext())
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.ListVoicesResponse{Voices: voices})
}
