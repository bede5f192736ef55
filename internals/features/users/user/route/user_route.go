package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtrl "tripku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: manajemen akun (group sudah dilindungi auth + role admin/owner)
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewUserAdminController(db)

	users := admin.Group("/users")
	users.Get("/", ctrl.List)
	users.Patch("/:id", ctrl.Update)
}
