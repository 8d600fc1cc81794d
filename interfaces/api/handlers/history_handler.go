package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/interfaces/api/middleware"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

type HistoryHandler struct {
	historyService services.HistoryService
}

func NewHistoryHandler(historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// Save upsert history item ของ (user, imageId)
// PUT /api/v1/history
func (h *HistoryHandler) Save(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.SaveHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	item, err := h.historyService.Save(c.UserContext(), user.Key(), &req)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.HistoryItemToResponse(item))
}

// Get ดึง history item เดียวด้วย imageId
// GET /api/v1/history/:imageId
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	imageID := c.Params("imageId")
	if imageID == "" {
		return utils.BadRequestResponse(c, "Image ID is required")
	}

	item, err := h.historyService.Get(c.UserContext(), user.Key(), imageID)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.HistoryItemToResponse(item))
}

// List ดึง history เรียงใหม่สุดก่อน
// GET /api/v1/history
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var page dto.PaginationRequest
	if err := c.QueryParser(&page); err != nil {
		return utils.BadRequestResponse(c, "Invalid pagination parameters")
	}
	if err := utils.ValidateStruct(&page); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}
	page.Normalize()

	items, total, err := h.historyService.List(c.UserContext(), user.Key(), page.Offset, page.Limit)
	if err != nil {
		return middleware.ServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.HistoryListResponse{
		Items: dto.HistoryItemsToResponse(items),
		Meta: dto.PaginationMeta{
			Total:  total,
			Offset: page.Offset,
			Limit:  page.Limit,
		},
	})
}

// Delete ลบ item เดียว
// DELETE /api/v1/history/:imageId
func (h *HistoryHandler) Delete(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	imageID := c.Params("imageId")
	if imageID == "" {
		return utils.BadRequestResponse(c, "Image ID is required")
	}

	if err := h.historyService.Delete(c.UserContext(), user.Key(), imageID); err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.NoContentResponse(c)
}

// DeleteAll ล้าง history ทั้งหมดของ user
// DELETE /api/v1/history
func (h *HistoryHandler) DeleteAll(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	removed, err := h.historyService.DeleteAll(c.UserContext(), user.Key())
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.Map{"removed": removed})
}
