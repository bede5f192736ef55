package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status ketersediaan guide untuk penugasan trip
const (
	GuideStatusStandby      = "standby"
	GuideStatusOnTrip       = "on_trip"
	GuideStatusNotAvailable = "not_available"
)

// GuideModel merepresentasikan tabel guides (roster pemandu).
type GuideModel struct {
	GuideID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:guide_id" json:"guide_id"`
	GuideUserID *uuid.UUID `gorm:"type:uuid;uniqueIndex;column:guide_user_id" json:"guide_user_id,omitempty"`

	GuideName  string  `gorm:"size:100;not null;column:guide_name" json:"guide_name"`
	GuidePhone *string `gorm:"size:30;column:guide_phone" json:"guide_phone,omitempty"`
	GuideEmail *string `gorm:"size:255;column:guide_email" json:"guide_email,omitempty"`

	// standby | on_trip | not_available
	GuideStatus string `gorm:"type:varchar(20);not null;default:'standby';column:guide_status" json:"guide_status"`

	// rating agregat 1..5 dari review customer; NULL = belum pernah dinilai
	GuideRating *float64 `gorm:"type:numeric(3,2);column:guide_rating" json:"guide_rating,omitempty"`

	GuideCreatedAt time.Time      `gorm:"column:guide_created_at;autoCreateTime" json:"guide_created_at"`
	GuideUpdatedAt time.Time      `gorm:"column:guide_updated_at;autoUpdateTime" json:"guide_updated_at"`
	GuideDeletedAt gorm.DeletedAt `gorm:"column:guide_deleted_at;index" json:"guide_deleted_at,omitempty"`
}

func (GuideModel) TableName() string { return "guides" }
