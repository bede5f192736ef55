package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripku_backend/internals/features/guides/certifications/model"
)

// AllValid mengecek validitas sertifikasi sebuah guide pada waktu tertentu.
// Aturan: guide wajib punya minimal satu sertifikasi aktif, dan TIDAK boleh
// ada sertifikasi aktif yang sudah lewat tanggal kadaluarsanya.
func AllValid(db *gorm.DB, guideID uuid.UUID, at time.Time) (bool, error) {
	var total int64
	if err := db.Model(&model.GuideCertificationModel{}).
		Where("guide_certification_guide_id = ?", guideID).
		Count(&total).Error; err != nil {
		return false, err
	}
	if total == 0 {
		return false, nil
	}

	var expired int64
	if err := db.Model(&model.GuideCertificationModel{}).
		Where("guide_certification_guide_id = ? AND guide_certification_expires_at < ?", guideID, at).
		Count(&expired).Error; err != nil {
		return false, err
	}
	return expired == 0, nil
}
