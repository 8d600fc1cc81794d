package middleware

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

// StudioUserHeader คือ header ที่ browser studio ใช้ระบุตัวตนแบบไม่ต้อง login
const StudioUserHeader = "X-Studio-User"

// studio ID ต้องเป็น token ปลอดภัย - กัน path traversal เข้า storage path
var studioIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,100}$`)

// Protected validate JWT และใส่ user context - ไม่รับ pseudo identity
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := utils.ExtractTokenFromHeader(c.Get("Authorization"))
		if token == "" {
			return utils.UnauthorizedResponse(c, "Missing or malformed authorization header")
		}

		userCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			switch err {
			case utils.ErrExpiredToken:
				return utils.UnauthorizedResponse(c, "Token has expired")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
		}

		c.Locals("user", userCtx)
		return c.Next()
	}
}

// Identify รับได้ทั้ง JWT และ X-Studio-User header
// studio header สร้าง pseudo user ให้อัตโนมัติ - ตัวตนคงที่ต่อ studio ID
func Identify(jwtSecret string, userSvc services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := utils.ExtractTokenFromHeader(c.Get("Authorization")); token != "" {
			userCtx, err := utils.ValidateToken(token, jwtSecret)
			if err != nil {
				if err == utils.ErrExpiredToken {
					return utils.UnauthorizedResponse(c, "Token has expired")
				}
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
			c.Locals("user", userCtx)
			return c.Next()
		}

		studioID := c.Get(StudioUserHeader)
		if studioID == "" {
			return utils.UnauthorizedResponse(c, "Missing credentials: provide a token or "+StudioUserHeader)
		}
		if !studioIDPattern.MatchString(studioID) {
			return utils.BadRequestResponse(c, "Invalid studio user ID")
		}

		user, err := userSvc.ResolveStudioUser(c.UserContext(), studioID)
		if err != nil {
			logger.ErrorContext(c.UserContext(), "Failed to resolve studio user",
				"studio_id", studioID,
				"error", err,
			)
			return utils.InternalServerErrorResponse(c)
		}

		c.Locals("user", &utils.UserContext{
			ID:       user.ID,
			StudioID: studioID,
			Username: user.Username,
			Role:     user.Role,
			Pseudo:   true,
		})
		return c.Next()
	}
}

// AdminOnly จำกัดเฉพาะ admin (pseudo user ไม่มีทางเป็น admin)
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "User not authenticated")
		}
		if user.Pseudo || user.Role != "admin" {
			return utils.ForbiddenResponse(c, "Admin access required")
		}
		return c.Next()
	}
}

// ChangedBy ดึง UUID ของ caller สำหรับ audit log (nil สำหรับ pseudo user)
func ChangedBy(c *fiber.Ctx) *uuid.UUID {
	user, err := utils.GetUserFromContext(c)
	if err != nil || user.Pseudo {
		return nil
	}
	id := user.ID
	return &id
}
