package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tripku_backend/internals/features/trips/packages/model"
)

/* ===================== REQUEST ===================== */

type CreateTravelPackageRequest struct {
	Code         string   `json:"code" validate:"required,min=3,max=30"`
	Name         string   `json:"name" validate:"required,min=3,max=120"`
	Destination  string   `json:"destination" validate:"required,min=2,max=80"`
	Type         string   `json:"type" validate:"required,oneof=open_trip private_trip corporate kol_trip"`
	DurationDays int      `json:"duration_days" validate:"required,min=1,max=60"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	NtaPrice     *float64 `json:"nta_price" validate:"omitempty,gt=0"`
	Description  *string  `json:"description" validate:"omitempty,max=5000"`
}

type UpdateTravelPackageRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=3,max=120"`
	Destination  *string  `json:"destination" validate:"omitempty,min=2,max=80"`
	Type         *string  `json:"type" validate:"omitempty,oneof=open_trip private_trip corporate kol_trip"`
	DurationDays *int     `json:"duration_days" validate:"omitempty,min=1,max=60"`
	Price        *float64 `json:"price" validate:"omitempty,gt=0"`
	NtaPrice     *float64 `json:"nta_price" validate:"omitempty,gt=0"`
	Description  *string  `json:"description" validate:"omitempty,max=5000"`
	IsActive     *bool    `json:"is_active"`
}

func (r CreateTravelPackageRequest) ToModel(slug string) model.TravelPackageModel {
	return model.TravelPackageModel{
		TravelPackageCode:         strings.ToUpper(strings.TrimSpace(r.Code)),
		TravelPackageName:         strings.TrimSpace(r.Name),
		TravelPackageSlug:         slug,
		TravelPackageDestination:  strings.ToLower(strings.TrimSpace(r.Destination)),
		TravelPackageType:         r.Type,
		TravelPackageDurationDays: r.DurationDays,
		TravelPackagePrice:        r.Price,
		TravelPackageNtaPrice:     r.NtaPrice,
		TravelPackageDescription:  r.Description,
		TravelPackageIsActive:     true,
	}
}

/* ===================== RESPONSE ===================== */

type TravelPackageResponse struct {
	TravelPackageID uuid.UUID `json:"travel_package_id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Destination     string    `json:"destination"`
	Type            string    `json:"type"`
	DurationDays    int       `json:"duration_days"`
	Price           float64   `json:"price"`
	NtaPrice        *float64  `json:"nta_price,omitempty"`
	Description     *string   `json:"description,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewTravelPackageResponse(m model.TravelPackageModel) TravelPackageResponse {
	return TravelPackageResponse{
		TravelPackageID: m.TravelPackageID,
		Code:            m.TravelPackageCode,
		Name:            m.TravelPackageName,
		Slug:            m.TravelPackageSlug,
		Destination:     m.TravelPackageDestination,
		Type:            m.TravelPackageType,
		DurationDays:    m.TravelPackageDurationDays,
		Price:           m.TravelPackagePrice,
		NtaPrice:        m.TravelPackageNtaPrice,
		Description:     m.TravelPackageDescription,
		ImageURL:        m.TravelPackageImageURL,
		IsActive:        m.TravelPackageIsActive,
		CreatedAt:       m.TravelPackageCreatedAt,
	}
}
