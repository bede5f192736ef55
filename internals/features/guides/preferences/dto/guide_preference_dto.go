package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "tripku_backend/internals/features/guides/preferences/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Upsert (JSON) — selalu replace penuh, bukan merge
type UpsertGuidePreferenceRequest struct {
	Destinations []string `json:"destinations" validate:"omitempty,dive,min=2,max=100"`
	TripTypes    []string `json:"trip_types" validate:"omitempty,dive,oneof=open_trip private_trip corporate kol_trip"`
	Durations    []int64  `json:"durations" validate:"omitempty,dive,min=1,max=30"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type GuidePreferenceResponse struct {
	GuideID      uuid.UUID `json:"guide_id"`
	Destinations []string  `json:"destinations"`
	TripTypes    []string  `json:"trip_types"`
	Durations    []int64   `json:"durations"`
	UpdatedAt    time.Time `json:"updated_at"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r UpsertGuidePreferenceRequest) ToModel(guideID uuid.UUID) m.GuidePreferenceModel {
	// normalisasi destinasi ke lowercase supaya match scorer konsisten
	dests := make(pq.StringArray, 0, len(r.Destinations))
	for _, d := range r.Destinations {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			dests = append(dests, d)
		}
	}
	return m.GuidePreferenceModel{
		GuidePreferenceGuideID:      guideID,
		GuidePreferenceDestinations: dests,
		GuidePreferenceTripTypes:    pq.StringArray(r.TripTypes),
		GuidePreferenceDurations:    pq.Int64Array(r.Durations),
	}
}

func NewGuidePreferenceResponse(mdl m.GuidePreferenceModel) GuidePreferenceResponse {
	return GuidePreferenceResponse{
		GuideID:      mdl.GuidePreferenceGuideID,
		Destinations: mdl.GuidePreferenceDestinations,
		TripTypes:    mdl.GuidePreferenceTripTypes,
		Durations:    mdl.GuidePreferenceDurations,
		UpdatedAt:    mdl.GuidePreferenceUpdatedAt,
	}
}
