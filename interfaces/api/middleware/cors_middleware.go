package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173,http://localhost:5174,http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS,HEAD",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,Range,Cache-Control,X-Requested-With,X-Studio-User,X-Request-ID",
		ExposeHeaders:    "Content-Length,Content-Range,Accept-Ranges,Content-Type,X-Request-ID",
		AllowCredentials: true,
	})
}
