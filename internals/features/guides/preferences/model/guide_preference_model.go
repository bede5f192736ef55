package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// GuidePreferenceModel menyimpan preferensi penugasan per guide (1:1).
// Dipakai scorer auto-assignment; guide tanpa baris preferensi tetap bisa ditugaskan.
type GuidePreferenceModel struct {
	GuidePreferenceID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:guide_preference_id" json:"guide_preference_id"`
	GuidePreferenceGuideID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:guide_preference_guide_id" json:"guide_preference_guide_id"`

	// destinasi favorit (lowercase), mis. {"bromo","rinjani"}
	GuidePreferenceDestinations pq.StringArray `gorm:"type:text[];column:guide_preference_destinations" json:"guide_preference_destinations"`

	// tipe trip yang disukai: open_trip | private_trip | corporate | kol_trip
	GuidePreferenceTripTypes pq.StringArray `gorm:"type:text[];column:guide_preference_trip_types" json:"guide_preference_trip_types"`

	// durasi (hari) yang disukai, mis. {2,3}
	GuidePreferenceDurations pq.Int64Array `gorm:"type:integer[];column:guide_preference_durations" json:"guide_preference_durations"`

	GuidePreferenceCreatedAt time.Time `gorm:"column:guide_preference_created_at;autoCreateTime" json:"guide_preference_created_at"`
	GuidePreferenceUpdatedAt time.Time `gorm:"column:guide_preference_updated_at;autoUpdateTime" json:"guide_preference_updated_at"`
}

func (GuidePreferenceModel) TableName() string { return "guide_preferences" }
