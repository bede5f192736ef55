package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string    { return &s }
func intPtr(i int) *int          { return &i }
func f64Ptr(f float64) *float64  { return &f }

func TestScorePreferences(t *testing.T) {
	fullPrefs := GuidePreferenceSnapshot{
		Destinations: []string{"bromo", "rinjani"},
		TripTypes:    []string{"open_trip"},
		Durations:    []int64{2, 3},
	}

	tests := []struct {
		name  string
		prefs GuidePreferenceSnapshot
		trip  TripAttributes
		want  int
	}{
		{
			name:  "semua dimensi match",
			prefs: fullPrefs,
			trip:  TripAttributes{Destination: strPtr("bromo"), TripType: strPtr("open_trip"), DurationDays: intPtr(3)},
			want:  ScoreDestinationMatch + ScoreTripTypeMatch + ScoreDurationMatch,
		},
		{
			name:  "hanya destinasi match",
			prefs: fullPrefs,
			trip:  TripAttributes{Destination: strPtr("rinjani"), TripType: strPtr("corporate"), DurationDays: intPtr(7)},
			want:  ScoreDestinationMatch,
		},
		{
			name:  "destinasi case-insensitive",
			prefs: fullPrefs,
			trip:  TripAttributes{Destination: strPtr("Bromo")},
			want:  ScoreDestinationMatch,
		},
		{
			name:  "tanpa preferensi sama sekali tetap 0 bukan negatif",
			prefs: GuidePreferenceSnapshot{},
			trip:  TripAttributes{Destination: strPtr("bromo"), TripType: strPtr("open_trip"), DurationDays: intPtr(3)},
			want:  0,
		},
		{
			name:  "atribut trip nil tidak menambah skor",
			prefs: fullPrefs,
			trip:  TripAttributes{},
			want:  0,
		},
		{
			name:  "durasi match saja",
			prefs: fullPrefs,
			trip:  TripAttributes{Destination: strPtr("karimunjawa"), TripType: strPtr("kol_trip"), DurationDays: intPtr(2)},
			want:  ScoreDurationMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScorePreferences(tt.prefs, tt.trip))
		})
	}
}
