package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "tripku_backend/internals/features/users/auth/controller"
	authMw "tripku_backend/internals/middlewares/auth"
	middlewares "tripku_backend/internals/middlewares"
)

// AuthRoutes: endpoint auth publik + yang butuh login
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	grp := app.Group("/api/auth")

	// =====================
	// Public
	// =====================
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	grp.Post("/refresh", ctrl.Refresh)

	// =====================
	// Butuh login
	// =====================
	secured := grp.Group("", authMw.AuthMiddleware(db))
	secured.Post("/logout", ctrl.Logout)
	secured.Get("/me", ctrl.Me)
}
