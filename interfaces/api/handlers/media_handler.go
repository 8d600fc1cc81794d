package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/interfaces/api/middleware"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

type MediaHandler struct {
	mediaService services.MediaService
}

func NewMediaHandler(mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// GenerateImage เริ่ม image generation task - ตอบ 202 ทันที
// POST /api/v1/media/images
func (h *MediaHandler) GenerateImage(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.GenerateImageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.mediaService.StartImageGeneration(c.UserContext(), user.Key(), &req)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.AcceptedResponse(c, dto.TaskAcceptedResponse{
		TaskID: task.ID.String(),
		Kind:   string(task.Kind),
		State:  string(task.State),
	})
}

// GenerateVideo เริ่ม image-to-video task
// POST /api/v1/media/videos
func (h *MediaHandler) GenerateVideo(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.GenerateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.mediaService.StartVideoGeneration(c.UserContext(), user.Key(), &req)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.AcceptedResponse(c, dto.TaskAcceptedResponse{
		TaskID: task.ID.String(),
		Kind:   string(task.Kind),
		State:  string(task.State),
	})
}

// ReframeImage ขยายภาพเป็น aspect ratio ใหม่
// POST /api/v1/media/reframe
func (h *MediaHandler) ReframeImage(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.ReframeImageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.mediaService.StartReframe(c.UserContext(), user.Key(), &req)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.AcceptedResponse(c, dto.TaskAcceptedResponse{
		TaskID: task.ID.String(),
		Kind:   string(task.Kind),
		State:  string(task.State),
	})
}
