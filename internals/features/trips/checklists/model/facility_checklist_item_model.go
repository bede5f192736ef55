package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu item fasilitas wajib per trip (tenda, P3K, transport, dst).
// Checklist fasilitas dianggap lengkap hanya jika total item > 0 dan
// semuanya sudah di-verify.
type FacilityChecklistItemModel struct {
	FacilityChecklistItemID     uuid.UUID `gorm:"column:facility_checklist_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"facility_checklist_item_id"`
	FacilityChecklistItemTripID uuid.UUID `gorm:"column:facility_checklist_item_trip_id;type:uuid;not null;index" json:"facility_checklist_item_trip_id"`

	FacilityChecklistItemName string `gorm:"column:facility_checklist_item_name;type:varchar(120);not null" json:"facility_checklist_item_name"`

	FacilityChecklistItemIsVerified bool       `gorm:"column:facility_checklist_item_is_verified;not null;default:false" json:"facility_checklist_item_is_verified"`
	FacilityChecklistItemVerifiedAt *time.Time `gorm:"column:facility_checklist_item_verified_at" json:"facility_checklist_item_verified_at,omitempty"`

	FacilityChecklistItemCreatedAt time.Time      `gorm:"column:facility_checklist_item_created_at;autoCreateTime" json:"facility_checklist_item_created_at"`
	FacilityChecklistItemUpdatedAt time.Time      `gorm:"column:facility_checklist_item_updated_at;autoUpdateTime" json:"facility_checklist_item_updated_at"`
	FacilityChecklistItemDeletedAt gorm.DeletedAt `gorm:"column:facility_checklist_item_deleted_at;index" json:"-"`
}

func (FacilityChecklistItemModel) TableName() string {
	return "facility_checklist_items"
}
