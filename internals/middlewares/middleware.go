package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "agendaestudos_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra os middlewares base na ordem certa.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
