package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/interfaces/api/middleware"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

type CharacterHandler struct {
	characterService services.CharacterService
}

func NewCharacterHandler(characterService services.CharacterService) *CharacterHandler {
	return &CharacterHandler{characterService: characterService}
}

// GenerateProfile วิเคราะห์รูปแล้วคืน character profile
// POST /api/v1/characters/profile
func (h *CharacterHandler) GenerateProfile(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.GenerateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	profile, err := h.characterService.GenerateProfile(c.UserContext(), user.Key(), &req)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.GenerateProfileResponse{Profile: *profile})
}

// GeneratePrompts สร้าง scene prompts หนึ่งชุดจาก profile
// POST /api/v1/characters/prompts
func (h *CharacterHandler) GeneratePrompts(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.GeneratePromptsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	prompts, err := h.characterService.GeneratePrompts(c.UserContext(), user.Key(), &req)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.GeneratePromptsResponse{Prompts: prompts})
}

// RegeneratePrompt สร้าง prompt ใหม่สำหรับ scene เดียว
// POST /api/v1/characters/prompts/regenerate
func (h *CharacterHandler) RegeneratePrompt(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.RegeneratePromptRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	prompt, err := h.characterService.RegeneratePrompt(c.UserContext(), user.Key(), &req)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.RegeneratePromptResponse{Prompt: *prompt})
}
