package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifCtrl "tripku_backend/internals/features/notifications/controller"
)

// NotificationUserRoutes: inbox notifikasi user login
func NotificationUserRoutes(u fiber.Router, db *gorm.DB) {
	nc := notifCtrl.NewNotificationController(db)

	u.Get("/notifications", nc.ListMine)
	u.Patch("/notifications/:id/read", nc.MarkRead)
}
