package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

// ErrorHandler แปลง error เป็น envelope เดียวกันทั้ง API
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusUnauthorized:
				errCode = utils.ErrCodeUnauthorized
			case fiber.StatusForbidden:
				errCode = utils.ErrCodeForbidden
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusConflict:
				errCode = utils.ErrCodeConflict
			}
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error",
			"path", c.Path(),
			"error", err,
		)
		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}

// ServiceError map sentinel error จาก service layer เป็น HTTP response
// คืน true ถ้า error ถูกจัดการแล้ว
func ServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrLocked):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrTooLarge):
		return utils.ErrorResponse(c, fiber.StatusRequestEntityTooLarge, utils.ErrCodeBadRequest, err.Error(), nil)
	case errors.Is(err, services.ErrUpstream):
		return utils.UpstreamErrorResponse(c, err.Error())
	default:
		logger.ErrorContext(c.UserContext(), "Service error",
			"path", c.Path(),
			"error", err,
		)
		return utils.InternalServerErrorResponse(c)
	}
}
