package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	guideModel "tripku_backend/internals/features/guides/guides/model"
	prefModel "tripku_backend/internals/features/guides/preferences/model"
	"tripku_backend/internals/features/trips/assignment/model"
	pkgModel "tripku_backend/internals/features/trips/packages/model"
	tripModel "tripku_backend/internals/features/trips/trips/model"
	"tripku_backend/internals/helpers/dbtime"
)

// AssignmentNotifier: pengiriman notifikasi ke guide terpilih. Best-effort —
// kegagalan kirim tidak pernah membatalkan penugasan yang sudah tersimpan.
type AssignmentNotifier interface {
	NotifyGuideAssigned(ctx context.Context, guideID uuid.UUID, tripCode string, deadline time.Time) error
}

type Orchestrator struct {
	DB       *gorm.DB
	Notifier AssignmentNotifier // boleh nil
}

func NewOrchestrator(db *gorm.DB, notifier AssignmentNotifier) *Orchestrator {
	return &Orchestrator{DB: db, Notifier: notifier}
}

// AutoAssign memilih satu guide terbaik untuk trip dan menyimpan penugasan
// berstatus pending dengan deadline konfirmasi.
//
// Guard idempoten: cek penugasan hidup dulu, lalu uniqueIndex parsial di DB
// menjadi benteng terakhir saat dua request balapan — yang kalah insert
// dapat ErrAlreadyAssigned, bukan baris ganda.
func (o *Orchestrator) AutoAssign(ctx context.Context, tripID uuid.UUID) (*model.TripGuideAssignmentModel, error) {
	// 1) Trip + atribut paket
	trip, attrs, err := o.loadTripContext(ctx, tripID)
	if err != nil {
		return nil, err
	}

	// 2) Sudah ada penugasan hidup?
	var existing int64
	if err := o.DB.WithContext(ctx).
		Model(&model.TripGuideAssignmentModel{}).
		Where("trip_guide_assignment_trip_id = ?", tripID).
		Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("cek penugasan existing: %w", err)
	}
	if existing > 0 {
		return nil, ErrAlreadyAssigned
	}

	// 3) Roster
	var guides []guideModel.GuideModel
	if err := o.DB.WithContext(ctx).Find(&guides).Error; err != nil {
		return nil, fmt.Errorf("muat roster guide: %w", err)
	}
	if len(guides) == 0 {
		return nil, ErrNoGuidesAvailable
	}

	// 4) Preferensi semua guide sekali jalan
	prefsByGuide, err := o.loadPreferences(ctx, guides)
	if err != nil {
		return nil, err
	}

	// 5) Kandidat: skor preferensi + beban kerja
	cands := make([]Candidate, 0, len(guides))
	for _, g := range guides {
		workload, err := CountWorkload(ctx, o.DB, g.GuideID, trip.TripDate, tripID)
		if err != nil {
			return nil, err
		}
		cands = append(cands, Candidate{
			GuideID:   g.GuideID,
			GuideName: g.GuideName,
			Status:    g.GuideStatus,
			Rating:    g.GuideRating,
			PrefScore: ScorePreferences(prefsByGuide[g.GuideID], attrs),
			Workload:  workload,
		})
	}

	winner, err := PickBest(cands)
	if err != nil {
		return nil, err
	}

	// 6) Deadline + reason
	now := time.Now()
	deadline := ComputeConfirmationDeadline(trip.TripDate, now, dbtime.JakartaLocation())
	rating := 0.0
	if winner.Rating != nil {
		rating = *winner.Rating
	}
	reason := fmt.Sprintf("Skor tertinggi %.1f (rating %.1f, preferensi %d, beban %d trip dalam ±%d hari)",
		winner.TotalScore(), rating, winner.PrefScore, winner.Workload, WorkloadWindowDays)

	asg := model.TripGuideAssignmentModel{
		TripGuideAssignmentTripID:          tripID,
		TripGuideAssignmentGuideID:         winner.GuideID,
		TripGuideAssignmentStatus:          model.AssignmentStatusPending,
		TripGuideAssignmentScore:           winner.TotalScore(),
		TripGuideAssignmentReason:          reason,
		TripGuideAssignmentConfirmDeadline: deadline,
	}
	if err := o.DB.WithContext(ctx).Create(&asg).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrAlreadyAssigned
		}
		return nil, fmt.Errorf("simpan penugasan: %w", err)
	}

	// 7) Notifikasi best-effort
	if o.Notifier != nil {
		if nerr := o.Notifier.NotifyGuideAssigned(ctx, winner.GuideID, trip.TripCode, deadline); nerr != nil {
			log.Printf("[ERROR] Notifikasi penugasan trip %s ke guide %s gagal: %v",
				trip.TripCode, winner.GuideID, nerr)
		}
	}

	log.Printf("[INFO] ✅ Trip %s ditugaskan ke %s (skor %.1f)", trip.TripCode, winner.GuideName, winner.TotalScore())
	return &asg, nil
}

func (o *Orchestrator) loadTripContext(ctx context.Context, tripID uuid.UUID) (*tripModel.TripModel, TripAttributes, error) {
	var trip tripModel.TripModel
	if err := o.DB.WithContext(ctx).
		Where("trip_id = ?", tripID).
		First(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, TripAttributes{}, ErrTripNotFound
		}
		return nil, TripAttributes{}, fmt.Errorf("muat trip: %w", err)
	}

	var attrs TripAttributes
	var pkg pkgModel.TravelPackageModel
	err := o.DB.WithContext(ctx).
		Where("travel_package_id = ?", trip.TripTravelPackageID).
		First(&pkg).Error
	switch {
	case err == nil:
		dest := pkg.TravelPackageDestination
		typ := pkg.TravelPackageType
		dur := pkg.TravelPackageDurationDays
		attrs = TripAttributes{Destination: &dest, TripType: &typ, DurationDays: &dur}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// paket hilang → semua atribut nil, skor preferensi jatuh ke 0
	default:
		return nil, TripAttributes{}, fmt.Errorf("muat paket trip: %w", err)
	}
	return &trip, attrs, nil
}

func (o *Orchestrator) loadPreferences(ctx context.Context, guides []guideModel.GuideModel) (map[uuid.UUID]GuidePreferenceSnapshot, error) {
	ids := make([]uuid.UUID, 0, len(guides))
	for _, g := range guides {
		ids = append(ids, g.GuideID)
	}

	var rows []prefModel.GuidePreferenceModel
	if err := o.DB.WithContext(ctx).
		Where("guide_preference_guide_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("muat preferensi guide: %w", err)
	}

	out := make(map[uuid.UUID]GuidePreferenceSnapshot, len(rows))
	for _, r := range rows {
		out[r.GuidePreferenceGuideID] = GuidePreferenceSnapshot{
			Destinations: r.GuidePreferenceDestinations,
			TripTypes:    r.GuidePreferenceTripTypes,
			Durations:    r.GuidePreferenceDurations,
		}
	}
	return out, nil
}
