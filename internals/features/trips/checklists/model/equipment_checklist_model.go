package model

import (
	"time"

	"github.com/google/uuid"
)

// Rekaman pemeriksaan perlengkapan oleh guide, append-only per trip-guide.
// Record terbaru yang dipakai evaluator: selesai jika flag is_completed true
// ATAU checked == total.
type EquipmentChecklistModel struct {
	EquipmentChecklistID      uuid.UUID `gorm:"column:equipment_checklist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"equipment_checklist_id"`
	EquipmentChecklistTripID  uuid.UUID `gorm:"column:equipment_checklist_trip_id;type:uuid;not null;index" json:"equipment_checklist_trip_id"`
	EquipmentChecklistGuideID uuid.UUID `gorm:"column:equipment_checklist_guide_id;type:uuid;not null;index" json:"equipment_checklist_guide_id"`

	EquipmentChecklistChecked int `gorm:"column:equipment_checklist_checked;not null;default:0" json:"equipment_checklist_checked"`
	EquipmentChecklistTotal   int `gorm:"column:equipment_checklist_total;not null;default:0" json:"equipment_checklist_total"`

	EquipmentChecklistIsCompleted bool `gorm:"column:equipment_checklist_is_completed;not null;default:false" json:"equipment_checklist_is_completed"`

	EquipmentChecklistCreatedAt time.Time `gorm:"column:equipment_checklist_created_at;autoCreateTime" json:"equipment_checklist_created_at"`
}

func (EquipmentChecklistModel) TableName() string {
	return "equipment_checklists"
}
