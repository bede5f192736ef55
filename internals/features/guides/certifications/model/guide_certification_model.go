package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuideCertificationModel: sertifikasi pemandu (SIM pemandu gunung, first aid, dll).
type GuideCertificationModel struct {
	GuideCertificationID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:guide_certification_id" json:"guide_certification_id"`
	GuideCertificationGuideID uuid.UUID `gorm:"type:uuid;not null;index;column:guide_certification_guide_id" json:"guide_certification_guide_id"`

	GuideCertificationName   string  `gorm:"size:120;not null;column:guide_certification_name" json:"guide_certification_name"`
	GuideCertificationNumber *string `gorm:"size:80;column:guide_certification_number" json:"guide_certification_number,omitempty"`
	GuideCertificationIssuer *string `gorm:"size:120;column:guide_certification_issuer" json:"guide_certification_issuer,omitempty"`

	GuideCertificationIssuedAt  *time.Time `gorm:"type:date;column:guide_certification_issued_at" json:"guide_certification_issued_at,omitempty"`
	GuideCertificationExpiresAt time.Time  `gorm:"type:date;not null;column:guide_certification_expires_at" json:"guide_certification_expires_at"`

	GuideCertificationCreatedAt time.Time      `gorm:"column:guide_certification_created_at;autoCreateTime" json:"guide_certification_created_at"`
	GuideCertificationUpdatedAt time.Time      `gorm:"column:guide_certification_updated_at;autoUpdateTime" json:"guide_certification_updated_at"`
	GuideCertificationDeletedAt gorm.DeletedAt `gorm:"column:guide_certification_deleted_at;index" json:"guide_certification_deleted_at,omitempty"`
}

func (GuideCertificationModel) TableName() string { return "guide_certifications" }
