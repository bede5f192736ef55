package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot yang lolos semua check
func allPassSnapshot() ReadinessSnapshot {
	return ReadinessSnapshot{
		AttendanceCheckedIn:    true,
		FacilityChecked:        5,
		FacilityTotal:          5,
		EquipmentRecordExists:  true,
		EquipmentChecked:       8,
		EquipmentTotal:         10,
		EquipmentCompletedFlag: true, // flag cukup walau 8/10
		RiskExists:             true,
		RiskSafe:               true,
		CertificationsValid:    true,
		ManifestBoarded:        12,
		ManifestTotal:          20,
	}
}

func TestEvaluateReadiness_AllPass(t *testing.T) {
	v := EvaluateReadiness(allPassSnapshot())

	assert.True(t, v.CanStart)
	assert.Empty(t, v.Reasons)
	assert.True(t, v.FacilityChecklist.Complete)
	assert.True(t, v.EquipmentChecklist.Complete)
	assert.True(t, v.RiskAssessment.Exists)
	assert.InDelta(t, 60.0, v.Manifest.Percentage, 0.0001)
}

func TestEvaluateReadiness_FacilityVacuousFalse(t *testing.T) {
	// Nol fasilitas wajib = TIDAK lengkap, bukan lolos otomatis.
	s := allPassSnapshot()
	s.FacilityChecked = 0
	s.FacilityTotal = 0

	v := EvaluateReadiness(s)
	assert.False(t, v.CanStart)
	assert.False(t, v.FacilityChecklist.Complete)
	require.Len(t, v.Reasons, 1)
	assert.Equal(t, "Fasilitas belum lengkap (0/0 sudah di-verify)", v.Reasons[0])
}

func TestEvaluateReadiness_FacilityPartial(t *testing.T) {
	s := allPassSnapshot()
	s.FacilityChecked = 3
	s.FacilityTotal = 5

	v := EvaluateReadiness(s)
	assert.False(t, v.CanStart)
	require.Equal(t, []string{"Fasilitas belum lengkap (3/5 sudah di-verify)"}, v.Reasons)
}

func TestEvaluateReadiness_EquipmentOrLogic(t *testing.T) {
	// checked == total cukup walau flag false
	s := allPassSnapshot()
	s.EquipmentCompletedFlag = false
	s.EquipmentChecked = 10
	s.EquipmentTotal = 10
	assert.True(t, EvaluateReadiness(s).EquipmentChecklist.Complete)

	// flag true cukup walau checked < total
	s.EquipmentCompletedFlag = true
	s.EquipmentChecked = 4
	assert.True(t, EvaluateReadiness(s).EquipmentChecklist.Complete)

	// dua-duanya gagal → tidak lengkap
	s.EquipmentCompletedFlag = false
	v := EvaluateReadiness(s)
	assert.False(t, v.EquipmentChecklist.Complete)
	assert.Contains(t, v.Reasons, "Perlengkapan belum lengkap (4/10 sudah dicek)")

	// belum ada record sama sekali → tidak lengkap
	s.EquipmentRecordExists = false
	s.EquipmentChecked = 0
	s.EquipmentTotal = 0
	assert.False(t, EvaluateReadiness(s).EquipmentChecklist.Complete)
}

func TestEvaluateReadiness_RiskExistenceGatesNotSafety(t *testing.T) {
	// Assessment ada tapi verdict tidak aman → tetap boleh mulai; safe dilaporkan false.
	s := allPassSnapshot()
	s.RiskSafe = false

	v := EvaluateReadiness(s)
	assert.True(t, v.CanStart)
	assert.True(t, v.RiskAssessment.Exists)
	assert.False(t, v.RiskAssessment.Safe)

	// Assessment tidak ada → blok.
	s.RiskExists = false
	v = EvaluateReadiness(s)
	assert.False(t, v.CanStart)
	assert.Equal(t, []string{"Risk assessment belum diisi"}, v.Reasons)
}

func TestEvaluateReadiness_ReasonOrder(t *testing.T) {
	// Semua gagal sekaligus: urutan wajib kehadiran, fasilitas, perlengkapan, risk, sertifikasi.
	s := ReadinessSnapshot{}
	v := EvaluateReadiness(s)

	require.Len(t, v.Reasons, 5)
	assert.Equal(t, "Belum check-in kehadiran", v.Reasons[0])
	assert.Equal(t, "Fasilitas belum lengkap (0/0 sudah di-verify)", v.Reasons[1])
	assert.Equal(t, "Perlengkapan belum lengkap (0/0 sudah dicek)", v.Reasons[2])
	assert.Equal(t, "Risk assessment belum diisi", v.Reasons[3])
	assert.Equal(t, "Sertifikasi guide tidak valid atau sudah kedaluwarsa", v.Reasons[4])
	assert.False(t, v.CanStart)
}

func TestEvaluateReadiness_SingleFailureSingleReason(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ReadinessSnapshot)
		reason string
	}{
		{"kehadiran", func(s *ReadinessSnapshot) { s.AttendanceCheckedIn = false }, "Belum check-in kehadiran"},
		{"fasilitas", func(s *ReadinessSnapshot) { s.FacilityChecked = 2 }, "Fasilitas belum lengkap (2/5 sudah di-verify)"},
		{"perlengkapan", func(s *ReadinessSnapshot) {
			s.EquipmentRecordExists = false
			s.EquipmentChecked, s.EquipmentTotal = 0, 0
		}, "Perlengkapan belum lengkap (0/0 sudah dicek)"},
		{"risk", func(s *ReadinessSnapshot) { s.RiskExists = false }, "Risk assessment belum diisi"},
		{"sertifikasi", func(s *ReadinessSnapshot) { s.CertificationsValid = false }, "Sertifikasi guide tidak valid atau sudah kedaluwarsa"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := allPassSnapshot()
			tc.mutate(&s)

			v := EvaluateReadiness(s)
			assert.False(t, v.CanStart)
			require.Len(t, v.Reasons, 1)
			assert.Equal(t, tc.reason, v.Reasons[0])
		})
	}
}

func TestEvaluateReadiness_Idempotent(t *testing.T) {
	s := allPassSnapshot()
	s.FacilityChecked = 3

	v1 := EvaluateReadiness(s)
	v2 := EvaluateReadiness(s)
	assert.Equal(t, v1, v2)
}

func TestEvaluateReadiness_ManifestNeverGates(t *testing.T) {
	s := allPassSnapshot()
	s.ManifestBoarded = 0
	s.ManifestTotal = 0

	v := EvaluateReadiness(s)
	assert.True(t, v.CanStart)
	assert.Zero(t, v.Manifest.Percentage)
}
