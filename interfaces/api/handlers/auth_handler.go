package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/interfaces/api/middleware"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register สมัคร user ใหม่
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	resp, err := h.userService.Register(c.UserContext(), &req)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.CreatedResponse(c, resp)
}

// Login แลก credentials เป็น JWT
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	resp, err := h.userService.Login(c.UserContext(), &req)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, resp)
}

// Me คืนตัวตนปัจจุบัน (รวม pseudo user)
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	return utils.SuccessResponse(c, dto.UserResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
		StudioID: user.StudioID,
		Role:     user.Role,
		Pseudo:   user.Pseudo,
	})
}
