package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripku_backend/internals/helpers/dbtime"
)

// Status trip
const (
	TripStatusScheduled = "scheduled"
	TripStatusOngoing   = "ongoing"
	TripStatusCompleted = "completed"
	TripStatusCancelled = "cancelled"
)

type TripModel struct {
	TripID   uuid.UUID `gorm:"column:trip_id;type:uuid;default:gen_random_uuid();primaryKey" json:"trip_id"`
	TripCode string    `gorm:"column:trip_code;type:varchar(30);uniqueIndex;not null" json:"trip_code"`

	TripTravelPackageID uuid.UUID `gorm:"column:trip_travel_package_id;type:uuid;not null;index" json:"trip_travel_package_id"`

	// Tanggal keberangkatan (date) + jam kumpul (TIME, tanpa zona)
	TripDate          time.Time  `gorm:"column:trip_date;type:date;not null;index" json:"trip_date"`
	TripDepartureTime dbtime.Tod `gorm:"column:trip_departure_time;type:time" json:"trip_departure_time"`

	TripQuota  int `gorm:"column:trip_quota;not null;default:0" json:"trip_quota"`
	TripBooked int `gorm:"column:trip_booked;not null;default:0" json:"trip_booked"`

	TripStatus string `gorm:"column:trip_status;type:varchar(20);not null;default:'scheduled'" json:"trip_status"`

	TripMeetingPoint *string `gorm:"column:trip_meeting_point;type:text" json:"trip_meeting_point,omitempty"`

	TripCreatedAt time.Time      `gorm:"column:trip_created_at;autoCreateTime" json:"trip_created_at"`
	TripUpdatedAt time.Time      `gorm:"column:trip_updated_at;autoUpdateTime" json:"trip_updated_at"`
	TripDeletedAt gorm.DeletedAt `gorm:"column:trip_deleted_at;index" json:"-"`
}

func (TripModel) TableName() string {
	return "trips"
}
