package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "agendaestudos_backend/internals/features/users/auth/controller"
	authMiddleware "agendaestudos_backend/internals/middlewares/auth"
	middleware "agendaestudos_backend/internals/middlewares"
)

// AuthRoutes monta /api/auth. Login e registro levam rate limit próprio,
// mais apertado que o global.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := &authController.AuthController{DB: db}

	auth := app.Group("/api/auth")

	auth.Post("/register", middleware.LoginRateLimiter(), ctl.Register)
	auth.Post("/login", middleware.LoginRateLimiter(), ctl.Login)
	auth.Post("/login-google", middleware.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Post("/refresh", ctl.Refresh)

	// abaixo exige access token válido
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctl.Logout)
	auth.Get("/me", authMiddleware.AuthMiddleware(db), ctl.Me)
	auth.Patch("/me/preferencias", authMiddleware.AuthMiddleware(db), ctl.UpdatePreferences)
	auth.Post("/change-password", authMiddleware.AuthMiddleware(db), ctl.ChangePassword)
}
