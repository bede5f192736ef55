package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "tripku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan yang benar:
// recovery paling luar, lalu CORS, logger, dan rate limiter global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
