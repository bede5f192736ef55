package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Jendela beban kerja: trip lain dalam ±15 hari dari tanggal trip target.
// Murni input ranking, bukan gerbang eligibility.
const WorkloadWindowDays = 15

// CountWorkload menghitung jumlah trip lain (selain excludeTripID) yang sudah
// ditugaskan ke guide dalam jendela ±WorkloadWindowDays di sekitar tripDate.
// Assignment yang di-soft-delete (declined) tidak dihitung.
func CountWorkload(ctx context.Context, db *gorm.DB, guideID uuid.UUID, tripDate time.Time, excludeTripID uuid.UUID) (int, error) {
	from := tripDate.AddDate(0, 0, -WorkloadWindowDays)
	to := tripDate.AddDate(0, 0, WorkloadWindowDays)

	var count int64
	err := db.WithContext(ctx).
		Table("trip_guide_assignments").
		Joins("JOIN trips ON trips.trip_id = trip_guide_assignments.trip_guide_assignment_trip_id").
		Where("trip_guide_assignments.trip_guide_assignment_guide_id = ?", guideID).
		Where("trip_guide_assignments.trip_guide_assignment_deleted_at IS NULL").
		Where("trip_guide_assignments.trip_guide_assignment_trip_id <> ?", excludeTripID).
		Where("trips.trip_deleted_at IS NULL").
		Where("trips.trip_date BETWEEN ? AND ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("hitung workload guide %s: %w", guideID, err)
	}
	return int(count), nil
}
