package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tripku_backend/internals/features/trips/trips/model"
	"tripku_backend/internals/helpers/dbtime"
)

/* ===================== REQUEST ===================== */

type CreateTripRequest struct {
	Code            string  `json:"code" validate:"required,min=3,max=30"`
	TravelPackageID string  `json:"travel_package_id" validate:"required,uuid"`
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	DepartureTime   string  `json:"departure_time" validate:"omitempty,datetime=15:04"`
	Quota           int     `json:"quota" validate:"required,min=1,max=500"`
	MeetingPoint    *string `json:"meeting_point" validate:"omitempty,max=500"`
}

type UpdateTripRequest struct {
	Date          *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	DepartureTime *string `json:"departure_time" validate:"omitempty,datetime=15:04"`
	Quota         *int    `json:"quota" validate:"omitempty,min=1,max=500"`
	Status        *string `json:"status" validate:"omitempty,oneof=scheduled ongoing completed cancelled"`
	MeetingPoint  *string `json:"meeting_point" validate:"omitempty,max=500"`
}

func (r CreateTripRequest) ToModel() (model.TripModel, error) {
	pkgID, err := uuid.Parse(r.TravelPackageID)
	if err != nil {
		return model.TripModel{}, err
	}
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return model.TripModel{}, err
	}

	var tod dbtime.Tod
	if r.DepartureTime != "" {
		if tod, err = dbtime.Parse(r.DepartureTime); err != nil {
			return model.TripModel{}, err
		}
	}

	return model.TripModel{
		TripCode:            strings.ToUpper(strings.TrimSpace(r.Code)),
		TripTravelPackageID: pkgID,
		TripDate:            date,
		TripDepartureTime:   tod,
		TripQuota:           r.Quota,
		TripStatus:          model.TripStatusScheduled,
		TripMeetingPoint:    r.MeetingPoint,
	}, nil
}

/* ===================== RESPONSE ===================== */

type TripResponse struct {
	TripID          uuid.UUID `json:"trip_id"`
	Code            string    `json:"code"`
	TravelPackageID uuid.UUID `json:"travel_package_id"`
	Date            string    `json:"date"`
	DepartureTime   string    `json:"departure_time"`
	Quota           int       `json:"quota"`
	Booked          int       `json:"booked"`
	SeatsLeft       int       `json:"seats_left"`
	Status          string    `json:"status"`
	MeetingPoint    *string   `json:"meeting_point,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewTripResponse(m model.TripModel) TripResponse {
	left := m.TripQuota - m.TripBooked
	if left < 0 {
		left = 0
	}
	return TripResponse{
		TripID:          m.TripID,
		Code:            m.TripCode,
		TravelPackageID: m.TripTravelPackageID,
		Date:            m.TripDate.Format("2006-01-02"),
		DepartureTime:   m.TripDepartureTime.Format("15:04"),
		Quota:           m.TripQuota,
		Booked:          m.TripBooked,
		SeatsLeft:       left,
		Status:          m.TripStatus,
		MeetingPoint:    m.TripMeetingPoint,
		CreatedAt:       m.TripCreatedAt,
	}
}
