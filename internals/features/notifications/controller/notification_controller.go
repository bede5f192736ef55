package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripku_backend/internals/features/notifications/model"
	helper "tripku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/u/notifications?unread=1
func (ctrl *NotificationController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("notification_user_id = ?", userID)
	if c.Query("unread") != "" {
		q = q.Where("notification_is_read = ?", false)
	}

	var rows []model.NotificationModel
	if err := q.Order("notification_created_at DESC").Limit(100).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}
	return helper.Success(c, "OK", rows)
}

/* ===================== MARK READ ===================== */
// PATCH /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"notification_is_read": true,
			"notification_read_at": time.Now(),
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update notifikasi")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}
	return helper.Success(c, "Notifikasi ditandai dibaca", nil)
}
