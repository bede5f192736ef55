package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status booking
const (
	BookingStatusPendingPayment = "pending_payment"
	BookingStatusPaid           = "paid"
	BookingStatusCancelled      = "cancelled"
	BookingStatusRefunded       = "refunded"
)

// Channel penjualan
const (
	BookingChannelB2C = "b2c" // storefront customer
	BookingChannelB2B = "b2b" // partner dengan harga NTA
)

type BookingModel struct {
	BookingID   uuid.UUID `gorm:"column:booking_id;type:uuid;default:gen_random_uuid();primaryKey" json:"booking_id"`
	BookingCode string    `gorm:"column:booking_code;type:varchar(30);uniqueIndex;not null" json:"booking_code"`

	BookingTripID uuid.UUID `gorm:"column:booking_trip_id;type:uuid;not null;index" json:"booking_trip_id"`
	BookingUserID uuid.UUID `gorm:"column:booking_user_id;type:uuid;not null;index" json:"booking_user_id"`

	BookingChannel string `gorm:"column:booking_channel;type:varchar(10);not null;default:'b2c'" json:"booking_channel"`

	BookingPax int `gorm:"column:booking_pax;not null" json:"booking_pax"`

	BookingTotalAmount float64  `gorm:"column:booking_total_amount;type:numeric(14,2);not null" json:"booking_total_amount"`
	BookingNtaAmount   *float64 `gorm:"column:booking_nta_amount;type:numeric(14,2)" json:"booking_nta_amount,omitempty"`

	BookingStatus string `gorm:"column:booking_status;type:varchar(20);not null;default:'pending_payment'" json:"booking_status"`

	// Terisi saat booking dibatalkan
	BookingRefundAmount  *float64   `gorm:"column:booking_refund_amount;type:numeric(14,2)" json:"booking_refund_amount,omitempty"`
	BookingRefundPercent *int       `gorm:"column:booking_refund_percent" json:"booking_refund_percent,omitempty"`
	BookingCancelledAt   *time.Time `gorm:"column:booking_cancelled_at" json:"booking_cancelled_at,omitempty"`

	BookingCreatedAt time.Time      `gorm:"column:booking_created_at;autoCreateTime" json:"booking_created_at"`
	BookingUpdatedAt time.Time      `gorm:"column:booking_updated_at;autoUpdateTime" json:"booking_updated_at"`
	BookingDeletedAt gorm.DeletedAt `gorm:"column:booking_deleted_at;index" json:"-"`

	BookingPassengers []BookingPassengerModel `gorm:"foreignKey:BookingPassengerBookingID;references:BookingID" json:"booking_passengers,omitempty"`
}

func (BookingModel) TableName() string {
	return "bookings"
}
