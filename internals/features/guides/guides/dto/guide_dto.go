package dto

import (
	"time"

	"github.com/google/uuid"

	m "tripku_backend/internals/features/guides/guides/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON)
type CreateGuideRequest struct {
	GuideUserID *uuid.UUID `json:"guide_user_id" validate:"omitempty,uuid4"`
	GuideName   string     `json:"guide_name" validate:"required,min=3,max=100"`
	GuidePhone  *string    `json:"guide_phone" validate:"omitempty,max=30"`
	GuideEmail  *string    `json:"guide_email" validate:"omitempty,email"`
	GuideStatus *string    `json:"guide_status" validate:"omitempty,oneof=standby on_trip not_available"`
}

// Update (partial JSON)
type UpdateGuideRequest struct {
	GuideName   *string  `json:"guide_name" validate:"omitempty,min=3,max=100"`
	GuidePhone  *string  `json:"guide_phone" validate:"omitempty,max=30"`
	GuideEmail  *string  `json:"guide_email" validate:"omitempty,email"`
	GuideStatus *string  `json:"guide_status" validate:"omitempty,oneof=standby on_trip not_available"`
	GuideRating *float64 `json:"guide_rating" validate:"omitempty,gte=0,lte=5"`
}

// Filter / List (query)
type FilterGuideRequest struct {
	Status *string `query:"status" validate:"omitempty,oneof=standby on_trip not_available"`
	Search *string `query:"search" validate:"omitempty,max=100"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type GuideResponse struct {
	GuideID     uuid.UUID  `json:"guide_id"`
	GuideUserID *uuid.UUID `json:"guide_user_id,omitempty"`
	GuideName   string     `json:"guide_name"`
	GuidePhone  *string    `json:"guide_phone,omitempty"`
	GuideEmail  *string    `json:"guide_email,omitempty"`
	GuideStatus string     `json:"guide_status"`
	GuideRating *float64   `json:"guide_rating,omitempty"`
	GuideCreatedAt time.Time `json:"guide_created_at"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateGuideRequest) ToModel() m.GuideModel {
	g := m.GuideModel{
		GuideUserID: r.GuideUserID,
		GuideName:   r.GuideName,
		GuidePhone:  r.GuidePhone,
		GuideEmail:  r.GuideEmail,
		GuideStatus: m.GuideStatusStandby,
	}
	if r.GuideStatus != nil {
		g.GuideStatus = *r.GuideStatus
	}
	return g
}

func NewGuideResponse(mdl m.GuideModel) GuideResponse {
	return GuideResponse{
		GuideID:        mdl.GuideID,
		GuideUserID:    mdl.GuideUserID,
		GuideName:      mdl.GuideName,
		GuidePhone:     mdl.GuidePhone,
		GuideEmail:     mdl.GuideEmail,
		GuideStatus:    mdl.GuideStatus,
		GuideRating:    mdl.GuideRating,
		GuideCreatedAt: mdl.GuideCreatedAt,
	}
}
