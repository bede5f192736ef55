package dto

import (
	"time"

	"github.com/google/uuid"

	"tripku_backend/internals/features/bookings/bookings/model"
)

/* ===================== REQUEST ===================== */

type PassengerInput struct {
	Name  string  `json:"name" validate:"required,min=2,max=100"`
	Phone *string `json:"phone" validate:"omitempty,min=8,max=30"`
}

type CreateBookingRequest struct {
	TripID     string           `json:"trip_id" validate:"required,uuid"`
	Passengers []PassengerInput `json:"passengers" validate:"required,min=1,max=50,dive"`
}

/* ===================== RESPONSE ===================== */

type PassengerResponse struct {
	PassengerID uuid.UUID  `json:"passenger_id"`
	Name        string     `json:"name"`
	Phone       *string    `json:"phone,omitempty"`
	IsBoarded   bool       `json:"is_boarded"`
	BoardedAt   *time.Time `json:"boarded_at,omitempty"`
}

type BookingResponse struct {
	BookingID     uuid.UUID           `json:"booking_id"`
	Code          string              `json:"code"`
	TripID        uuid.UUID           `json:"trip_id"`
	Channel       string              `json:"channel"`
	Pax           int                 `json:"pax"`
	TotalAmount   float64             `json:"total_amount"`
	NtaAmount     *float64            `json:"nta_amount,omitempty"`
	Status        string              `json:"status"`
	RefundAmount  *float64            `json:"refund_amount,omitempty"`
	RefundPercent *int                `json:"refund_percent,omitempty"`
	CancelledAt   *time.Time          `json:"cancelled_at,omitempty"`
	Passengers    []PassengerResponse `json:"passengers,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

func NewBookingResponse(m model.BookingModel) BookingResponse {
	pax := make([]PassengerResponse, 0, len(m.BookingPassengers))
	for _, p := range m.BookingPassengers {
		pax = append(pax, PassengerResponse{
			PassengerID: p.BookingPassengerID,
			Name:        p.BookingPassengerName,
			Phone:       p.BookingPassengerPhone,
			IsBoarded:   p.BookingPassengerIsBoarded,
			BoardedAt:   p.BookingPassengerBoardedAt,
		})
	}
	return BookingResponse{
		BookingID:     m.BookingID,
		Code:          m.BookingCode,
		TripID:        m.BookingTripID,
		Channel:       m.BookingChannel,
		Pax:           m.BookingPax,
		TotalAmount:   m.BookingTotalAmount,
		NtaAmount:     m.BookingNtaAmount,
		Status:        m.BookingStatus,
		RefundAmount:  m.BookingRefundAmount,
		RefundPercent: m.BookingRefundPercent,
		CancelledAt:   m.BookingCancelledAt,
		Passengers:    pax,
		CreatedAt:     m.BookingCreatedAt,
	}
}
