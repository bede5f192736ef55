package dto

import (
	"time"

	"github.com/google/uuid"

	m "tripku_backend/internals/features/guides/certifications/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateGuideCertificationRequest struct {
	GuideID   uuid.UUID  `json:"guide_id" validate:"required,uuid4"`
	Name      string     `json:"name" validate:"required,min=3,max=120"`
	Number    *string    `json:"number" validate:"omitempty,max=80"`
	Issuer    *string    `json:"issuer" validate:"omitempty,max=120"`
	IssuedAt  *time.Time `json:"issued_at" validate:"omitempty"`
	ExpiresAt time.Time  `json:"expires_at" validate:"required"`
}

type UpdateGuideCertificationRequest struct {
	Name      *string    `json:"name" validate:"omitempty,min=3,max=120"`
	Number    *string    `json:"number" validate:"omitempty,max=80"`
	Issuer    *string    `json:"issuer" validate:"omitempty,max=120"`
	IssuedAt  *time.Time `json:"issued_at" validate:"omitempty"`
	ExpiresAt *time.Time `json:"expires_at" validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type GuideCertificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	GuideID   uuid.UUID  `json:"guide_id"`
	Name      string     `json:"name"`
	Number    *string    `json:"number,omitempty"`
	Issuer    *string    `json:"issuer,omitempty"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	ExpiresAt time.Time  `json:"expires_at"`
	IsExpired bool       `json:"is_expired"`
}

func (r CreateGuideCertificationRequest) ToModel() m.GuideCertificationModel {
	return m.GuideCertificationModel{
		GuideCertificationGuideID:   r.GuideID,
		GuideCertificationName:      r.Name,
		GuideCertificationNumber:    r.Number,
		GuideCertificationIssuer:    r.Issuer,
		GuideCertificationIssuedAt:  r.IssuedAt,
		GuideCertificationExpiresAt: r.ExpiresAt,
	}
}

func NewGuideCertificationResponse(mdl m.GuideCertificationModel, now time.Time) GuideCertificationResponse {
	return GuideCertificationResponse{
		ID:        mdl.GuideCertificationID,
		GuideID:   mdl.GuideCertificationGuideID,
		Name:      mdl.GuideCertificationName,
		Number:    mdl.GuideCertificationNumber,
		Issuer:    mdl.GuideCertificationIssuer,
		IssuedAt:  mdl.GuideCertificationIssuedAt,
		ExpiresAt: mdl.GuideCertificationExpiresAt,
		IsExpired: mdl.GuideCertificationExpiresAt.Before(now),
	}
}
