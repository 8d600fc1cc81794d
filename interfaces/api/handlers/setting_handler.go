package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/interfaces/api/middleware"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

type SettingHandler struct {
	settingService services.SettingService
}

func NewSettingHandler(settingService services.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// GetAll ดึง settings ทุก category
// GET /api/v1/settings
func (h *SettingHandler) GetAll(c *fiber.Ctx) error {
	result, err := h.settingService.GetAll(c.UserContext())
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, result)
}

// GetByCategory ดึง settings ใน category เดียว
// GET /api/v1/settings/:category
func (h *SettingHandler) GetByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	if category == "" {
		return utils.BadRequestResponse(c, "Category is required")
	}

	result, err := h.settingService.GetByCategory(c.UserContext(), category)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, result)
}

// Update แก้ไขค่า setting เดียว
// PUT /api/v1/settings/:category/:key
func (h *SettingHandler) Update(c *fiber.Ctx) error {
	category := c.Params("category")
	key := c.Params("key")

	var req dto.UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.settingService.Update(c.UserContext(), category, key, req.Value, middleware.ChangedBy(c)); err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.Map{"updated": true})
}

// UpdateBatch แก้หลายค่าใน category เดียว
// PUT /api/v1/settings/:category
func (h *SettingHandler) UpdateBatch(c *fiber.Ctx) error {
	category := c.Params("category")

	var req dto.UpdateSettingsBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.settingService.UpdateBatch(c.UserContext(), category, req.Settings, middleware.ChangedBy(c)); err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.Map{"updated": len(req.Settings)})
}

// Reset ลบค่าใน database ให้ fallback กลับ default
// DELETE /api/v1/settings/:category/:key
func (h *SettingHandler) Reset(c *fiber.Ctx) error {
	category := c.Params("category")
	key := c.Params("key")

	if err := h.settingService.Reset(c.UserContext(), category, key, middleware.ChangedBy(c)); err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.Map{"reset": true})
}

// GetAuditLogs ดึงประวัติการแก้ไข
// GET /api/v1/settings/audit
func (h *SettingHandler) GetAuditLogs(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	logs, total, err := h.settingService.GetAuditLogs(c.UserContext(), limit, offset)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.SettingAuditLogListResponse{
		Logs: logs,
		Meta: dto.PaginationMeta{Total: total, Offset: offset, Limit: limit},
	})
}
