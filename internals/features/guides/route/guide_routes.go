package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certCtrl "tripku_backend/internals/features/guides/certifications/controller"
	guideCtrl "tripku_backend/internals/features/guides/guides/controller"
	prefCtrl "tripku_backend/internals/features/guides/preferences/controller"
)

// GuideAdminRoutes: manajemen guide oleh admin/owner (group sudah dilindungi auth + role)
func GuideAdminRoutes(admin fiber.Router, db *gorm.DB) {
	gc := guideCtrl.NewGuideController(db)
	pc := prefCtrl.NewGuidePreferenceController(db)
	cc := certCtrl.NewGuideCertificationController(db)

	guides := admin.Group("/guides")
	guides.Post("/", gc.Create)
	guides.Get("/", gc.List)
	guides.Get("/:id", gc.GetByID)
	guides.Patch("/:id", gc.Update)
	guides.Delete("/:id", gc.Delete)

	guides.Get("/:guide_id/preferences", pc.GetByGuideID)
	guides.Put("/:guide_id/preferences", pc.UpsertByGuideID)
	guides.Get("/:guide_id/certifications", cc.ListByGuideID)

	certs := admin.Group("/guide-certifications")
	certs.Post("/", cc.Create)
	certs.Patch("/:id", cc.Update)
	certs.Delete("/:id", cc.Delete)
}

// GuidePanelRoutes: endpoint self-service untuk guide yang login
func GuidePanelRoutes(g fiber.Router, db *gorm.DB) {
	pc := prefCtrl.NewGuidePreferenceController(db)
	cc := certCtrl.NewGuideCertificationController(db)

	g.Get("/preferences", pc.GetMine)
	g.Put("/preferences", pc.UpsertMine)
	g.Get("/certifications", cc.ListMine)
}
