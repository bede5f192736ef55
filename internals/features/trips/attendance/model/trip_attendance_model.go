package model

import (
	"time"

	"github.com/google/uuid"
)

// Check-in kehadiran guide di titik kumpul, satu baris per pasangan trip-guide.
type TripAttendanceModel struct {
	TripAttendanceID      uuid.UUID `gorm:"column:trip_attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"trip_attendance_id"`
	TripAttendanceTripID  uuid.UUID `gorm:"column:trip_attendance_trip_id;type:uuid;not null;uniqueIndex:uq_trip_attendance_trip_guide" json:"trip_attendance_trip_id"`
	TripAttendanceGuideID uuid.UUID `gorm:"column:trip_attendance_guide_id;type:uuid;not null;uniqueIndex:uq_trip_attendance_trip_guide" json:"trip_attendance_guide_id"`

	TripAttendanceCheckedInAt time.Time `gorm:"column:trip_attendance_checked_in_at;not null" json:"trip_attendance_checked_in_at"`

	TripAttendanceLat *float64 `gorm:"column:trip_attendance_lat;type:numeric(10,7)" json:"trip_attendance_lat,omitempty"`
	TripAttendanceLng *float64 `gorm:"column:trip_attendance_lng;type:numeric(10,7)" json:"trip_attendance_lng,omitempty"`

	TripAttendanceCreatedAt time.Time `gorm:"column:trip_attendance_created_at;autoCreateTime" json:"trip_attendance_created_at"`
}

func (TripAttendanceModel) TableName() string {
	return "trip_attendances"
}
