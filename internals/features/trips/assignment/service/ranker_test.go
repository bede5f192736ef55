package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	guideModel "tripku_backend/internals/features/guides/guides/model"
)

func TestCandidateTotalScore(t *testing.T) {
	c := Candidate{Rating: f64Ptr(4.5), PrefScore: 8, Workload: 3}
	// 4.5*10 + 8 - 3*2 = 47
	assert.InDelta(t, 47.0, c.TotalScore(), 0.0001)

	// rating nil dihitung 0
	noRating := Candidate{PrefScore: 5, Workload: 1}
	assert.InDelta(t, 3.0, noRating.TotalScore(), 0.0001)
}

func TestPickBest_StandbyGate(t *testing.T) {
	cands := []Candidate{
		{GuideID: uuid.New(), Status: guideModel.GuideStatusOnTrip, Rating: f64Ptr(5)},
		{GuideID: uuid.New(), Status: guideModel.GuideStatusNotAvailable, Rating: f64Ptr(5)},
	}
	_, err := PickBest(cands)
	assert.ErrorIs(t, err, ErrNoSuitableGuide)

	_, err = PickBest(nil)
	assert.ErrorIs(t, err, ErrNoSuitableGuide)
}

func TestPickBest_HighestTotalWins(t *testing.T) {
	low := Candidate{GuideID: uuid.New(), Status: guideModel.GuideStatusStandby, Rating: f64Ptr(3.0), PrefScore: 10}
	high := Candidate{GuideID: uuid.New(), Status: guideModel.GuideStatusStandby, Rating: f64Ptr(4.8), PrefScore: 0}
	busyButTop := Candidate{GuideID: uuid.New(), Status: guideModel.GuideStatusOnTrip, Rating: f64Ptr(5.0), PrefScore: 10}

	got, err := PickBest([]Candidate{low, busyButTop, high})
	require.NoError(t, err)
	assert.Equal(t, high.GuideID, got.GuideID)
}

func TestPickBest_TieBreakLowerWorkload(t *testing.T) {
	// Rating & preferensi identik; workload dinolkan di formula dengan penalti,
	// jadi bikin skor total persis sama via workload 0 vs 0 tapi beda field lain —
	// skenario klasik: A workload 0, B workload 3, skor total A lebih tinggi karena penalti.
	a := Candidate{GuideID: uuid.New(), GuideName: "A", Status: guideModel.GuideStatusStandby, Rating: f64Ptr(5), PrefScore: 10, Workload: 0}
	b := Candidate{GuideID: uuid.New(), GuideName: "B", Status: guideModel.GuideStatusStandby, Rating: f64Ptr(5), PrefScore: 10, Workload: 3}

	got, err := PickBest([]Candidate{b, a})
	require.NoError(t, err)
	assert.Equal(t, a.GuideID, got.GuideID)

	// Skor total persis sama (beda rating mengkompensasi penalti workload):
	// A: 4.0*10 + 0 - 0 = 40 ; B: 4.2*10 + 0 - 1*2 = 40 → workload lebih kecil menang.
	a2 := Candidate{GuideID: uuid.New(), GuideName: "A2", Status: guideModel.GuideStatusStandby, Rating: f64Ptr(4.0), Workload: 0}
	b2 := Candidate{GuideID: uuid.New(), GuideName: "B2", Status: guideModel.GuideStatusStandby, Rating: f64Ptr(4.2), Workload: 1}
	require.InDelta(t, a2.TotalScore(), b2.TotalScore(), 0.0001)

	got, err = PickBest([]Candidate{b2, a2})
	require.NoError(t, err)
	assert.Equal(t, a2.GuideID, got.GuideID)
}

func TestPickBest_TieBreakInputOrder(t *testing.T) {
	// Skor DAN workload identik → urutan input menang (sort stabil).
	first := Candidate{GuideID: uuid.New(), Status: guideModel.GuideStatusStandby, Rating: f64Ptr(4.5), Workload: 1}
	second := Candidate{GuideID: uuid.New(), Status: guideModel.GuideStatusStandby, Rating: f64Ptr(4.5), Workload: 1}

	got, err := PickBest([]Candidate{first, second})
	require.NoError(t, err)
	assert.Equal(t, first.GuideID, got.GuideID)
}

func TestRankCandidates_Deterministic(t *testing.T) {
	cands := []Candidate{
		{GuideID: uuid.New(), Status: guideModel.GuideStatusStandby, Rating: f64Ptr(4.0), Workload: 2},
		{GuideID: uuid.New(), Status: guideModel.GuideStatusStandby, Rating: f64Ptr(4.9), Workload: 0},
		{GuideID: uuid.New(), Status: guideModel.GuideStatusOnTrip, Rating: f64Ptr(5.0)},
		{GuideID: uuid.New(), Status: guideModel.GuideStatusStandby, Rating: nil, PrefScore: 7},
	}

	r1 := RankCandidates(cands)
	r2 := RankCandidates(cands)
	require.Len(t, r1, 3) // on_trip terfilter
	assert.Equal(t, r1, r2)

	for i := 1; i < len(r1); i++ {
		assert.GreaterOrEqual(t, r1[i-1].TotalScore(), r1[i].TotalScore())
	}
}
