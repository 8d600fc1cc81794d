package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/interfaces/api/middleware"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

type TextBlockHandler struct {
	textBlockService services.TextBlockService
}

func NewTextBlockHandler(textBlockService services.TextBlockService) *TextBlockHandler {
	return &TextBlockHandler{textBlockService: textBlockService}
}

// Fetch อ่าน text block หนึ่งแถวจาก spreadsheet
// แถวที่ว่างทุกคอลัมน์คืน textBlock: null ให้ client รู้ว่าไม่มีข้อมูล
// POST /api/v1/textblocks/fetch
func (h *TextBlockHandler) Fetch(c *fiber.Ctx) error {
	var req dto.FetchTextBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	block, err := h.textBlockService.FetchBlock(c.UserContext(), &req)
	if err != nil {
		return middleware.ServiceError(c, err)
	}

	resp := dto.TextBlockResponse{Row: req.Row}
	if !block.IsEmpty() {
		resp.TextBlock = block
	}
	return utils.SuccessResponse(c, resp)
}

// Rebrand แทน competitor brand ในข้อความ
// POST /api/v1/textblocks/rebrand
func (h *TextBlockHandler) Rebrand(c *fiber.Ctx) error {
	var req dto.RebrandRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	return utils.SuccessResponse(c, dto.RebrandResponse{
		Text: h.textBlockService.Rebrand(req.Text, req.Brand),
	})
}
