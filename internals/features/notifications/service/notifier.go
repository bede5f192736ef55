package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	guideModel "tripku_backend/internals/features/guides/guides/model"
	"tripku_backend/internals/features/notifications/model"
)

// Notifier menyimpan notifikasi in-app dan menulis log pengiriman.
// Seluruh pemanggil memperlakukannya best-effort.
type Notifier struct {
	DB *gorm.DB
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{DB: db}
}

// NotifyGuideAssigned mengabari guide bahwa dia ditugaskan ke sebuah trip.
// Guide tanpa akun user tertaut tidak bisa dikirimi notifikasi in-app.
func (n *Notifier) NotifyGuideAssigned(ctx context.Context, guideID uuid.UUID, tripCode string, deadline time.Time) error {
	var g guideModel.GuideModel
	if err := n.DB.WithContext(ctx).
		Where("guide_id = ?", guideID).
		First(&g).Error; err != nil {
		return fmt.Errorf("muat guide %s: %w", guideID, err)
	}
	if g.GuideUserID == nil {
		return errors.New("guide belum punya akun user")
	}

	notif := model.NotificationModel{
		NotificationUserID: *g.GuideUserID,
		NotificationType:   model.NotificationTypeAssignment,
		NotificationTitle:  "Penugasan trip baru",
		NotificationBody: fmt.Sprintf("Kamu ditugaskan ke trip %s. Konfirmasi sebelum %s ya!",
			tripCode, deadline.Format("02 Jan 2006 15:04 MST")),
	}
	if err := n.DB.WithContext(ctx).Create(&notif).Error; err != nil {
		return fmt.Errorf("simpan notifikasi: %w", err)
	}

	log.Printf("[INFO] 🔔 Notifikasi penugasan trip %s terkirim ke user %s", tripCode, *g.GuideUserID)
	return nil
}

// NotifyUser: notifikasi generik untuk user apa pun (booking, pembayaran, dst).
func (n *Notifier) NotifyUser(ctx context.Context, userID uuid.UUID, typ, title, body string) error {
	notif := model.NotificationModel{
		NotificationUserID: userID,
		NotificationType:   typ,
		NotificationTitle:  title,
		NotificationBody:   body,
	}
	if err := n.DB.WithContext(ctx).Create(&notif).Error; err != nil {
		return fmt.Errorf("simpan notifikasi: %w", err)
	}
	return nil
}
