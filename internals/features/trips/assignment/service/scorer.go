package service

import "strings"

// Bobot afinitas preferensi guide terhadap trip.
// Destinasi paling berat karena paling menentukan kualitas pengalaman tamu.
const (
	ScoreDestinationMatch = 5
	ScoreTripTypeMatch    = 3
	ScoreDurationMatch    = 2
)

// GuidePreferenceSnapshot: preferensi guide yang sudah dimuat dari DB.
// Slice kosong / nil artinya guide belum pernah set preferensi → skor 0, tetap eligible.
type GuidePreferenceSnapshot struct {
	Destinations []string
	TripTypes    []string
	Durations    []int64
}

// TripAttributes: atribut trip (dari paket) yang dipakai untuk matching.
// Field nullable mengikuti data paket — nil tidak pernah menambah skor.
type TripAttributes struct {
	Destination  *string
	TripType     *string
	DurationDays *int
}

// ScorePreferences menghitung skor afinitas guide↔trip.
// Tiap dimensi yang match menambah increment tetap; tidak ada penalti negatif.
func ScorePreferences(prefs GuidePreferenceSnapshot, trip TripAttributes) int {
	score := 0

	if trip.Destination != nil && containsFold(prefs.Destinations, *trip.Destination) {
		score += ScoreDestinationMatch
	}
	if trip.TripType != nil && containsFold(prefs.TripTypes, *trip.TripType) {
		score += ScoreTripTypeMatch
	}
	if trip.DurationDays != nil {
		for _, d := range prefs.Durations {
			if int(d) == *trip.DurationDays {
				score += ScoreDurationMatch
				break
			}
		}
	}
	return score
}

func containsFold(xs []string, target string) bool {
	for _, x := range xs {
		if strings.EqualFold(strings.TrimSpace(x), strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}
