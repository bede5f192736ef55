package model

import (
	"time"

	"github.com/google/uuid"
)

// Penumpang per booking; flag boarded jadi sumber persentase manifest.
type BookingPassengerModel struct {
	BookingPassengerID        uuid.UUID `gorm:"column:booking_passenger_id;type:uuid;default:gen_random_uuid();primaryKey" json:"booking_passenger_id"`
	BookingPassengerBookingID uuid.UUID `gorm:"column:booking_passenger_booking_id;type:uuid;not null;index" json:"booking_passenger_booking_id"`

	BookingPassengerName  string  `gorm:"column:booking_passenger_name;type:varchar(100);not null" json:"booking_passenger_name"`
	BookingPassengerPhone *string `gorm:"column:booking_passenger_phone;type:varchar(30)" json:"booking_passenger_phone,omitempty"`

	BookingPassengerIsBoarded bool       `gorm:"column:booking_passenger_is_boarded;not null;default:false" json:"booking_passenger_is_boarded"`
	BookingPassengerBoardedAt *time.Time `gorm:"column:booking_passenger_boarded_at" json:"booking_passenger_boarded_at,omitempty"`

	BookingPassengerCreatedAt time.Time `gorm:"column:booking_passenger_created_at;autoCreateTime" json:"booking_passenger_created_at"`
}

func (BookingPassengerModel) TableName() string {
	return "booking_passengers"
}
