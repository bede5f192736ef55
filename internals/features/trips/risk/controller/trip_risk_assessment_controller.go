package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripku_backend/internals/features/trips/risk/model"
	helper "tripku_backend/internals/helpers"
)

type TripRiskAssessmentController struct {
	DB *gorm.DB
}

func NewTripRiskAssessmentController(db *gorm.DB) *TripRiskAssessmentController {
	return &TripRiskAssessmentController{DB: db}
}

var validate = validator.New()

type upsertRiskRequest struct {
	IsSafe  bool           `json:"is_safe"`
	Notes   *string        `json:"notes" validate:"omitempty,max=2000"`
	Details datatypes.JSON `json:"details"`
}

/* ===================== UPSERT ===================== */
// PUT /api/a/trips/:trip_id/risk-assessment (satu assessment hidup per trip)
func (ctrl *TripRiskAssessmentController) Upsert(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}

	var req upsertRiskRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var assessedBy *uuid.UUID
	if uid, err := helper.GetUserIDFromToken(c); err == nil {
		assessedBy = &uid
	}

	mdl := model.TripRiskAssessmentModel{
		TripRiskAssessmentTripID:     tripID,
		TripRiskAssessmentIsSafe:     req.IsSafe,
		TripRiskAssessmentNotes:      req.Notes,
		TripRiskAssessmentDetails:    req.Details,
		TripRiskAssessmentAssessedBy: assessedBy,
	}

	err = ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "trip_risk_assessment_trip_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"trip_risk_assessment_is_safe",
			"trip_risk_assessment_notes",
			"trip_risk_assessment_details",
			"trip_risk_assessment_assessed_by",
			"trip_risk_assessment_updated_at",
		}),
	}).Create(&mdl).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan risk assessment")
	}
	return helper.Success(c, "Risk assessment tersimpan", mdl)
}

/* ===================== GET ===================== */
// GET /api/g/trips/:trip_id/risk-assessment
func (ctrl *TripRiskAssessmentController) GetByTripID(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}

	var mdl model.TripRiskAssessmentModel
	if err := ctrl.DB.Where("trip_risk_assessment_trip_id = ?", tripID).First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Belum ada risk assessment", fiber.Map{"exists": false})
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{"exists": true, "assessment": mdl})
}
