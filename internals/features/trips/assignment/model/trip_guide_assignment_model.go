package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status penugasan guide
const (
	AssignmentStatusPending   = "pending"
	AssignmentStatusConfirmed = "confirmed"
	AssignmentStatusDeclined  = "declined"
)

// Satu trip maksimal punya satu penugasan hidup; penugasan yang di-decline
// di-soft-delete supaya uniqueIndex parsial membebaskan slot-nya lagi.
type TripGuideAssignmentModel struct {
	TripGuideAssignmentID uuid.UUID `gorm:"column:trip_guide_assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"trip_guide_assignment_id"`

	TripGuideAssignmentTripID  uuid.UUID `gorm:"column:trip_guide_assignment_trip_id;type:uuid;not null;uniqueIndex:uq_trip_guide_assignment_trip_alive,where:trip_guide_assignment_deleted_at IS NULL" json:"trip_guide_assignment_trip_id"`
	TripGuideAssignmentGuideID uuid.UUID `gorm:"column:trip_guide_assignment_guide_id;type:uuid;not null;index" json:"trip_guide_assignment_guide_id"`

	TripGuideAssignmentStatus string  `gorm:"column:trip_guide_assignment_status;type:varchar(20);not null;default:'pending'" json:"trip_guide_assignment_status"`
	TripGuideAssignmentScore  float64 `gorm:"column:trip_guide_assignment_score;type:numeric(8,2);not null;default:0" json:"trip_guide_assignment_score"`
	TripGuideAssignmentReason string  `gorm:"column:trip_guide_assignment_reason;type:text;not null;default:''" json:"trip_guide_assignment_reason"`

	// Batas konfirmasi: 22:00 WIB sehari sebelum keberangkatan
	TripGuideAssignmentConfirmDeadline time.Time  `gorm:"column:trip_guide_assignment_confirm_deadline;not null" json:"trip_guide_assignment_confirm_deadline"`
	TripGuideAssignmentConfirmedAt     *time.Time `gorm:"column:trip_guide_assignment_confirmed_at" json:"trip_guide_assignment_confirmed_at,omitempty"`

	TripGuideAssignmentCreatedAt time.Time      `gorm:"column:trip_guide_assignment_created_at;autoCreateTime" json:"trip_guide_assignment_created_at"`
	TripGuideAssignmentUpdatedAt time.Time      `gorm:"column:trip_guide_assignment_updated_at;autoUpdateTime" json:"trip_guide_assignment_updated_at"`
	TripGuideAssignmentDeletedAt gorm.DeletedAt `gorm:"column:trip_guide_assignment_deleted_at;index" json:"-"`
}

func (TripGuideAssignmentModel) TableName() string {
	return "trip_guide_assignments"
}
