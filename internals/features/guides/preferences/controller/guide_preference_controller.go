package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripku_backend/internals/features/guides/preferences/dto"
	"tripku_backend/internals/features/guides/preferences/model"
	helper "tripku_backend/internals/helpers"
)

type GuidePreferenceController struct {
	DB *gorm.DB
}

func NewGuidePreferenceController(db *gorm.DB) *GuidePreferenceController {
	return &GuidePreferenceController{DB: db}
}

var validate = validator.New()

/* ===================== UPSERT (guide sendiri) ===================== */
// PUT /api/g/preferences
func (ctrl *GuidePreferenceController) UpsertMine(c *fiber.Ctx) error {
	guideID, err := helper.GetGuideIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.upsert(c, guideID)
}

/* ===================== UPSERT (admin, per guide) ===================== */
// PUT /api/a/guides/:guide_id/preferences
func (ctrl *GuidePreferenceController) UpsertByGuideID(c *fiber.Ctx) error {
	guideID, err := uuid.Parse(c.Params("guide_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Guide ID tidak valid")
	}
	return ctrl.upsert(c, guideID)
}

func (ctrl *GuidePreferenceController) upsert(c *fiber.Ctx, guideID uuid.UUID) error {
	var req dto.UpsertGuidePreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel(guideID)
	// upsert by guide_id (unique)
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "guide_preference_guide_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"guide_preference_destinations",
			"guide_preference_trip_types",
			"guide_preference_durations",
			"guide_preference_updated_at",
		}),
	}).Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan preferensi")
	}

	return helper.Success(c, "Preferensi tersimpan", dto.NewGuidePreferenceResponse(mdl))
}

/* ===================== GET ===================== */
// GET /api/g/preferences  |  GET /api/a/guides/:guide_id/preferences
func (ctrl *GuidePreferenceController) GetMine(c *fiber.Ctx) error {
	guideID, err := helper.GetGuideIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.getByGuideID(c, guideID)
}

func (ctrl *GuidePreferenceController) GetByGuideID(c *fiber.Ctx) error {
	guideID, err := uuid.Parse(c.Params("guide_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Guide ID tidak valid")
	}
	return ctrl.getByGuideID(c, guideID)
}

func (ctrl *GuidePreferenceController) getByGuideID(c *fiber.Ctx, guideID uuid.UUID) error {
	var mdl model.GuidePreferenceModel
	if err := ctrl.DB.Where("guide_preference_guide_id = ?", guideID).First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// belum pernah set preferensi = bukan error; kirim kosong
			return helper.Success(c, "Belum ada preferensi", dto.GuidePreferenceResponse{GuideID: guideID})
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewGuidePreferenceResponse(mdl))
}
