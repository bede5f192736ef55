package service

import (
	"sort"

	"github.com/google/uuid"

	guideModel "tripku_backend/internals/features/guides/guides/model"
)

// Bobot skor total: rating dominan (kualitas dulu), preferensi sekunder,
// beban kerja mengurangi.
const (
	WeightRating          = 10.0
	WeightWorkloadPenalty = 2.0
)

// Candidate: proyeksi transien satu guide untuk satu keputusan penugasan.
type Candidate struct {
	GuideID   uuid.UUID
	GuideName string
	Status    string
	Rating    *float64 // nil = belum punya rating → dihitung 0
	PrefScore int
	Workload  int
}

// TotalScore = rating×10 + skor preferensi − workload×2.
func (c Candidate) TotalScore() float64 {
	rating := 0.0
	if c.Rating != nil {
		rating = *c.Rating
	}
	return rating*WeightRating + float64(c.PrefScore) - float64(c.Workload)*WeightWorkloadPenalty
}

// RankCandidates: buang yang bukan standby, lalu urutkan menurun by total score.
// Skor sama persis → workload lebih kecil menang; masih sama → urutan input
// dipertahankan (sort stabil) supaya hasil deterministik.
func RankCandidates(cands []Candidate) []Candidate {
	eligible := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Status == guideModel.GuideStatusStandby {
			eligible = append(eligible, c)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		si, sj := eligible[i].TotalScore(), eligible[j].TotalScore()
		if si != sj {
			return si > sj
		}
		return eligible[i].Workload < eligible[j].Workload
	})
	return eligible
}

// PickBest memilih pemenang tunggal; list kosong setelah filter → ErrNoSuitableGuide.
func PickBest(cands []Candidate) (Candidate, error) {
	ranked := RankCandidates(cands)
	if len(ranked) == 0 {
		return Candidate{}, ErrNoSuitableGuide
	}
	return ranked[0], nil
}
