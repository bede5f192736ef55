package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifService "tripku_backend/internals/features/notifications/service"
	asgCtrl "tripku_backend/internals/features/trips/assignment/controller"
	asgService "tripku_backend/internals/features/trips/assignment/service"
	attCtrl "tripku_backend/internals/features/trips/attendance/controller"
	checklistCtrl "tripku_backend/internals/features/trips/checklists/controller"
	pkgCtrl "tripku_backend/internals/features/trips/packages/controller"
	readinessCtrl "tripku_backend/internals/features/trips/readiness/controller"
	riskCtrl "tripku_backend/internals/features/trips/risk/controller"
	trackingCtrl "tripku_backend/internals/features/trips/tracking/controller"
	tripCtrl "tripku_backend/internals/features/trips/trips/controller"
	middlewares "tripku_backend/internals/middlewares"
)

// TripPublicRoutes: katalog paket & jadwal trip untuk storefront
func TripPublicRoutes(public fiber.Router, db *gorm.DB) {
	pc := pkgCtrl.NewTravelPackageController(db)
	tc := tripCtrl.NewTripController(db)

	public.Get("/travel-packages", pc.List)
	public.Get("/travel-packages/:slug", pc.GetBySlug)
	public.Get("/trips", tc.List)
	public.Get("/trips/:id", tc.GetByID)
}

// TripUserRoutes: fitur untuk user login (live tracking trip yang dibooking)
func TripUserRoutes(u fiber.Router, db *gorm.DB) {
	trk := trackingCtrl.NewTripTrackingController(db)

	u.Get("/trips/:trip_id/tracking/latest", trk.GetLatest)
	u.Get("/trips/:trip_id/tracking", trk.GetTrail)
}

// TripGuideRoutes: operasional lapangan guide (check-in, checklist, readiness, tracking)
func TripGuideRoutes(g fiber.Router, db *gorm.DB) {
	orch := asgService.NewOrchestrator(db, notifService.NewNotifier(db))
	ac := asgCtrl.NewTripGuideAssignmentController(db, orch)
	att := attCtrl.NewTripAttendanceController(db)
	cl := checklistCtrl.NewChecklistController(db)
	rc := riskCtrl.NewTripRiskAssessmentController(db)
	rd := readinessCtrl.NewReadinessController(db)
	trk := trackingCtrl.NewTripTrackingController(db)

	g.Get("/assignments", ac.ListMine)
	g.Patch("/assignments/:id/confirm", ac.Confirm)
	g.Patch("/assignments/:id/decline", ac.Decline)

	g.Post("/trips/:trip_id/check-in", att.CheckIn)
	g.Get("/trips/:trip_id/check-in", att.GetMine)

	g.Get("/trips/:trip_id/facility-checklist", cl.ListFacilityItems)
	g.Patch("/facility-checklist/:id/verify", cl.VerifyFacilityItem)
	g.Post("/trips/:trip_id/equipment-checklist", cl.SubmitEquipment)
	g.Get("/trips/:trip_id/equipment-checklist", cl.GetLatestEquipment)

	g.Get("/trips/:trip_id/risk-assessment", rc.GetByTripID)
	g.Get("/trips/:trip_id/readiness", rd.GetMine)

	g.Post("/trips/:trip_id/tracking", middlewares.TrackingRateLimiter(), trk.PushPoint)
}

// TripAdminRoutes: manajemen paket, trip, penugasan, dan kesiapan oleh admin/owner
func TripAdminRoutes(admin fiber.Router, db *gorm.DB) {
	orch := asgService.NewOrchestrator(db, notifService.NewNotifier(db))
	pc := pkgCtrl.NewTravelPackageController(db)
	tc := tripCtrl.NewTripController(db)
	ac := asgCtrl.NewTripGuideAssignmentController(db, orch)
	cl := checklistCtrl.NewChecklistController(db)
	rc := riskCtrl.NewTripRiskAssessmentController(db)
	rd := readinessCtrl.NewReadinessController(db)

	pkgs := admin.Group("/travel-packages")
	pkgs.Post("/", pc.Create)
	pkgs.Get("/", pc.List)
	pkgs.Get("/:id", pc.GetByID)
	pkgs.Patch("/:id", pc.Update)
	pkgs.Post("/:id/image", pc.UploadImage)
	pkgs.Delete("/:id", pc.Delete)

	trips := admin.Group("/trips")
	trips.Post("/", tc.Create)
	trips.Get("/", tc.List)
	trips.Get("/:id", tc.GetByID)
	trips.Patch("/:id", tc.Update)
	trips.Delete("/:id", tc.Delete)

	trips.Post("/:trip_id/auto-assign", ac.AutoAssign)
	trips.Get("/:trip_id/assignment", ac.GetByTripID)

	trips.Post("/:trip_id/facility-checklist", cl.CreateFacilityItems)
	trips.Put("/:trip_id/risk-assessment", rc.Upsert)
	trips.Get("/:trip_id/readiness/:guide_id", rd.GetForGuide)
}
