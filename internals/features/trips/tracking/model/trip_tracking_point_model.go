package model

import (
	"time"

	"github.com/google/uuid"
)

// Titik GPS live tracking, append-only, dikirim berkala dari app guide.
type TripTrackingPointModel struct {
	TripTrackingPointID      uuid.UUID `gorm:"column:trip_tracking_point_id;type:uuid;default:gen_random_uuid();primaryKey" json:"trip_tracking_point_id"`
	TripTrackingPointTripID  uuid.UUID `gorm:"column:trip_tracking_point_trip_id;type:uuid;not null;index:idx_trip_tracking_point_trip_time" json:"trip_tracking_point_trip_id"`
	TripTrackingPointGuideID uuid.UUID `gorm:"column:trip_tracking_point_guide_id;type:uuid;not null" json:"trip_tracking_point_guide_id"`

	TripTrackingPointLat float64 `gorm:"column:trip_tracking_point_lat;type:numeric(10,7);not null" json:"trip_tracking_point_lat"`
	TripTrackingPointLng float64 `gorm:"column:trip_tracking_point_lng;type:numeric(10,7);not null" json:"trip_tracking_point_lng"`

	TripTrackingPointAccuracyM *float64 `gorm:"column:trip_tracking_point_accuracy_m;type:numeric(8,2)" json:"trip_tracking_point_accuracy_m,omitempty"`

	TripTrackingPointRecordedAt time.Time `gorm:"column:trip_tracking_point_recorded_at;not null;index:idx_trip_tracking_point_trip_time,sort:desc" json:"trip_tracking_point_recorded_at"`
	TripTrackingPointCreatedAt  time.Time `gorm:"column:trip_tracking_point_created_at;autoCreateTime" json:"trip_tracking_point_created_at"`
}

func (TripTrackingPointModel) TableName() string {
	return "trip_tracking_points"
}
