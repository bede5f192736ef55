package dto

import (
	"time"

	"github.com/google/uuid"

	"tripku_backend/internals/features/trips/assignment/model"
)

type TripGuideAssignmentResponse struct {
	AssignmentID    uuid.UUID  `json:"assignment_id"`
	TripID          uuid.UUID  `json:"trip_id"`
	GuideID         uuid.UUID  `json:"guide_id"`
	Status          string     `json:"status"`
	Score           float64    `json:"score"`
	Reason          string     `json:"reason"`
	ConfirmDeadline time.Time  `json:"confirm_deadline"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func NewTripGuideAssignmentResponse(m model.TripGuideAssignmentModel) TripGuideAssignmentResponse {
	return TripGuideAssignmentResponse{
		AssignmentID:    m.TripGuideAssignmentID,
		TripID:          m.TripGuideAssignmentTripID,
		GuideID:         m.TripGuideAssignmentGuideID,
		Status:          m.TripGuideAssignmentStatus,
		Score:           m.TripGuideAssignmentScore,
		Reason:          m.TripGuideAssignmentReason,
		ConfirmDeadline: m.TripGuideAssignmentConfirmDeadline,
		ConfirmedAt:     m.TripGuideAssignmentConfirmedAt,
		CreatedAt:       m.TripGuideAssignmentCreatedAt,
	}
}
