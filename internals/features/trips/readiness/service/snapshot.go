package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingModel "tripku_backend/internals/features/bookings/bookings/model"
	certService "tripku_backend/internals/features/guides/certifications/service"
	attModel "tripku_backend/internals/features/trips/attendance/model"
	checklistModel "tripku_backend/internals/features/trips/checklists/model"
	riskModel "tripku_backend/internals/features/trips/risk/model"
	tripModel "tripku_backend/internals/features/trips/trips/model"
)

var ErrTripNotFound = errors.New("trip tidak ditemukan")

// LoadSnapshot memuat seluruh state kesiapan satu pasangan trip-guide.
// Selalu baca live — verdict tidak pernah dipersist.
func LoadSnapshot(ctx context.Context, db *gorm.DB, tripID, guideID uuid.UUID) (ReadinessSnapshot, error) {
	var snap ReadinessSnapshot

	var tripCount int64
	if err := db.WithContext(ctx).
		Model(&tripModel.TripModel{}).
		Where("trip_id = ?", tripID).
		Count(&tripCount).Error; err != nil {
		return snap, fmt.Errorf("cek trip: %w", err)
	}
	if tripCount == 0 {
		return snap, ErrTripNotFound
	}

	// 1) Kehadiran
	var attCount int64
	if err := db.WithContext(ctx).
		Model(&attModel.TripAttendanceModel{}).
		Where("trip_attendance_trip_id = ? AND trip_attendance_guide_id = ?", tripID, guideID).
		Count(&attCount).Error; err != nil {
		return snap, fmt.Errorf("muat kehadiran: %w", err)
	}
	snap.AttendanceCheckedIn = attCount > 0

	// 2) Checklist fasilitas
	type facilityAgg struct {
		Total   int
		Checked int
	}
	var fa facilityAgg
	err := db.WithContext(ctx).
		Model(&checklistModel.FacilityChecklistItemModel{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE facility_checklist_item_is_verified) AS checked").
		Where("facility_checklist_item_trip_id = ?", tripID).
		Scan(&fa).Error
	if err != nil {
		return snap, fmt.Errorf("muat checklist fasilitas: %w", err)
	}
	snap.FacilityTotal = fa.Total
	snap.FacilityChecked = fa.Checked

	// 3) Checklist perlengkapan (record terbaru)
	var eq checklistModel.EquipmentChecklistModel
	err = db.WithContext(ctx).
		Where("equipment_checklist_trip_id = ? AND equipment_checklist_guide_id = ?", tripID, guideID).
		Order("equipment_checklist_created_at DESC").
		First(&eq).Error
	switch {
	case err == nil:
		snap.EquipmentRecordExists = true
		snap.EquipmentChecked = eq.EquipmentChecklistChecked
		snap.EquipmentTotal = eq.EquipmentChecklistTotal
		snap.EquipmentCompletedFlag = eq.EquipmentChecklistIsCompleted
	case errors.Is(err, gorm.ErrRecordNotFound):
		// belum pernah submit
	default:
		return snap, fmt.Errorf("muat checklist perlengkapan: %w", err)
	}

	// 4) Risk assessment
	var risk riskModel.TripRiskAssessmentModel
	err = db.WithContext(ctx).
		Where("trip_risk_assessment_trip_id = ?", tripID).
		First(&risk).Error
	switch {
	case err == nil:
		snap.RiskExists = true
		snap.RiskSafe = risk.TripRiskAssessmentIsSafe
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return snap, fmt.Errorf("muat risk assessment: %w", err)
	}

	// 5) Validitas sertifikasi
	valid, err := certService.AllValid(db.WithContext(ctx), guideID, time.Now())
	if err != nil {
		return snap, fmt.Errorf("cek sertifikasi: %w", err)
	}
	snap.CertificationsValid = valid

	// Manifest (telemetri, bukan gerbang): penumpang booking paid untuk trip ini
	type manifestAgg struct {
		Total   int
		Boarded int
	}
	var ma manifestAgg
	err = db.WithContext(ctx).
		Model(&bookingModel.BookingPassengerModel{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE booking_passenger_is_boarded) AS boarded").
		Joins("JOIN bookings ON bookings.booking_id = booking_passengers.booking_passenger_booking_id").
		Where("bookings.booking_trip_id = ?", tripID).
		Where("bookings.booking_status = ?", bookingModel.BookingStatusPaid).
		Where("bookings.booking_deleted_at IS NULL").
		Scan(&ma).Error
	if err != nil {
		return snap, fmt.Errorf("muat manifest: %w", err)
	}
	snap.ManifestTotal = ma.Total
	snap.ManifestBoarded = ma.Boarded

	return snap, nil
}
