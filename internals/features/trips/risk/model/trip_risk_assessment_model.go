package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Penilaian risiko per trip (cuaca, jalur, kondisi medan). Keberadaan baris ini
// menjadi syarat mulai trip; verdict aman/tidak hanya dilaporkan.
type TripRiskAssessmentModel struct {
	TripRiskAssessmentID     uuid.UUID `gorm:"column:trip_risk_assessment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"trip_risk_assessment_id"`
	TripRiskAssessmentTripID uuid.UUID `gorm:"column:trip_risk_assessment_trip_id;type:uuid;not null;uniqueIndex" json:"trip_risk_assessment_trip_id"`

	TripRiskAssessmentIsSafe bool    `gorm:"column:trip_risk_assessment_is_safe;not null;default:true" json:"trip_risk_assessment_is_safe"`
	TripRiskAssessmentNotes  *string `gorm:"column:trip_risk_assessment_notes;type:text" json:"trip_risk_assessment_notes,omitempty"`

	// detail terstruktur bebas: {"cuaca":"hujan ringan","jalur":"normal",...}
	TripRiskAssessmentDetails datatypes.JSON `gorm:"column:trip_risk_assessment_details;type:jsonb" json:"trip_risk_assessment_details,omitempty"`

	TripRiskAssessmentAssessedBy *uuid.UUID `gorm:"column:trip_risk_assessment_assessed_by;type:uuid" json:"trip_risk_assessment_assessed_by,omitempty"`

	TripRiskAssessmentCreatedAt time.Time `gorm:"column:trip_risk_assessment_created_at;autoCreateTime" json:"trip_risk_assessment_created_at"`
	TripRiskAssessmentUpdatedAt time.Time `gorm:"column:trip_risk_assessment_updated_at;autoUpdateTime" json:"trip_risk_assessment_updated_at"`
}

func (TripRiskAssessmentModel) TableName() string {
	return "trip_risk_assessments"
}
