package service

import "fmt"

// ReadinessSnapshot: potret state trip-guide hasil query, input murni evaluator.
type ReadinessSnapshot struct {
	AttendanceCheckedIn bool

	FacilityChecked int
	FacilityTotal   int

	EquipmentRecordExists  bool
	EquipmentChecked       int
	EquipmentTotal         int
	EquipmentCompletedFlag bool

	RiskExists bool
	RiskSafe   bool

	CertificationsValid bool

	ManifestBoarded int
	ManifestTotal   int
}

type ChecklistStatus struct {
	Complete bool `json:"complete"`
	Checked  int  `json:"checked"`
	Total    int  `json:"total"`
}

type RiskStatus struct {
	Exists bool `json:"exists"`
	Safe   bool `json:"safe"`
}

type ManifestStatus struct {
	Boarded    int     `json:"boarded"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ReadinessVerdict: hasil agregasi lima pemeriksaan kesiapan.
type ReadinessVerdict struct {
	CanStart            bool            `json:"can_start"`
	AttendanceCheckedIn bool            `json:"attendance_checked_in"`
	FacilityChecklist   ChecklistStatus `json:"facility_checklist"`
	EquipmentChecklist  ChecklistStatus `json:"equipment_checklist"`
	RiskAssessment      RiskStatus      `json:"risk_assessment"`
	CertificationsValid bool            `json:"certifications_valid"`
	Manifest            ManifestStatus  `json:"manifest"`
	Reasons             []string        `json:"reasons"`
}

// EvaluateReadiness menghitung verdict go/no-go mulai trip dari snapshot.
// can_start = AND kelima check. Reasons selalu dalam urutan tetap:
// kehadiran, fasilitas, perlengkapan, risk, sertifikasi — supaya UI konsisten.
// Murni dan idempoten: snapshot sama → output identik.
func EvaluateReadiness(s ReadinessSnapshot) ReadinessVerdict {
	// Fasilitas: nol item wajib = TIDAK lengkap (penjaga untuk paket salah konfigurasi)
	facilityComplete := s.FacilityTotal > 0 && s.FacilityChecked == s.FacilityTotal

	// Perlengkapan: flag selesai ATAU checked == total pada record terbaru
	equipmentComplete := s.EquipmentRecordExists &&
		(s.EquipmentCompletedFlag || s.EquipmentChecked == s.EquipmentTotal)

	// Risk: keberadaan assessment yang jadi gerbang; verdict aman hanya dilaporkan
	riskOK := s.RiskExists

	canStart := s.AttendanceCheckedIn &&
		facilityComplete &&
		equipmentComplete &&
		riskOK &&
		s.CertificationsValid

	reasons := make([]string, 0, 5)
	if !s.AttendanceCheckedIn {
		reasons = append(reasons, "Belum check-in kehadiran")
	}
	if !facilityComplete {
		reasons = append(reasons, fmt.Sprintf("Fasilitas belum lengkap (%d/%d sudah di-verify)",
			s.FacilityChecked, s.FacilityTotal))
	}
	if !equipmentComplete {
		reasons = append(reasons, fmt.Sprintf("Perlengkapan belum lengkap (%d/%d sudah dicek)",
			s.EquipmentChecked, s.EquipmentTotal))
	}
	if !riskOK {
		reasons = append(reasons, "Risk assessment belum diisi")
	}
	if !s.CertificationsValid {
		reasons = append(reasons, "Sertifikasi guide tidak valid atau sudah kedaluwarsa")
	}

	pct := 0.0
	if s.ManifestTotal > 0 {
		pct = float64(s.ManifestBoarded) / float64(s.ManifestTotal) * 100
	}

	return ReadinessVerdict{
		CanStart:            canStart,
		AttendanceCheckedIn: s.AttendanceCheckedIn,
		FacilityChecklist: ChecklistStatus{
			Complete: facilityComplete,
			Checked:  s.FacilityChecked,
			Total:    s.FacilityTotal,
		},
		EquipmentChecklist: ChecklistStatus{
			Complete: equipmentComplete,
			Checked:  s.EquipmentChecked,
			Total:    s.EquipmentTotal,
		},
		RiskAssessment: RiskStatus{
			Exists: s.RiskExists,
			Safe:   s.RiskExists && s.RiskSafe,
		},
		CertificationsValid: s.CertificationsValid,
		Manifest: ManifestStatus{
			Boarded:    s.ManifestBoarded,
			Total:      s.ManifestTotal,
			Percentage: pct,
		},
		Reasons: reasons,
	}
}
