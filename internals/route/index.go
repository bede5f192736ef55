// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/constants"
	bookingRoutes "tripku_backend/internals/features/bookings/route"
	guideRoutes "tripku_backend/internals/features/guides/route"
	notifRoutes "tripku_backend/internals/features/notifications/route"
	tripRoutes "tripku_backend/internals/features/trips/route"
	authRoutes "tripku_backend/internals/features/users/auth/route"
	userRoutes "tripku_backend/internals/features/users/user/route"
	authMw "tripku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE & AUTH =====================
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoutes.AuthRoutes(app, db)

	// Webhook gateway: publik, diverifikasi via signature (bukan JWT)
	log.Println("[INFO] Setting up Webhook routes...")
	bookingRoutes.BookingWebhookRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa login (katalog storefront)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// USER → semua role yang login
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMw.AuthMiddleware(db))

	// GUIDE → operasional lapangan
	log.Println("[INFO] Setting up GUIDE group...")
	guide := app.Group("/api/g",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorGuide("operasional trip"), constants.GuideAndAbove...),
	)

	// ADMIN → admin & owner
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorAdmin("manajemen"), constants.OwnerAndAbove...),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Trip routes...")
	tripRoutes.TripPublicRoutes(public, db)
	tripRoutes.TripUserRoutes(user, db)
	tripRoutes.TripGuideRoutes(guide, db)
	tripRoutes.TripAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Guide routes...")
	guideRoutes.GuidePanelRoutes(guide, db)
	guideRoutes.GuideAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Booking routes...")
	bookingRoutes.BookingUserRoutes(user, db)
	bookingRoutes.BookingGuideRoutes(guide, db)

	log.Println("[INFO] Mounting Notification routes...")
	notifRoutes.NotificationUserRoutes(user, db)

	log.Println("[INFO] Mounting User admin routes...")
	userRoutes.UserAdminRoutes(admin, db)
}
