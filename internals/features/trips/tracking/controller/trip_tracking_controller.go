package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripku_backend/internals/features/trips/tracking/model"
	helper "tripku_backend/internals/helpers"
)

type TripTrackingController struct {
	DB *gorm.DB
}

func NewTripTrackingController(db *gorm.DB) *TripTrackingController {
	return &TripTrackingController{DB: db}
}

var validate = validator.New()

type pushPointRequest struct {
	Lat        float64    `json:"lat" validate:"required,min=-90,max=90"`
	Lng        float64    `json:"lng" validate:"required,min=-180,max=180"`
	AccuracyM  *float64   `json:"accuracy_m" validate:"omitempty,min=0"`
	RecordedAt *time.Time `json:"recorded_at"`
}

/* ===================== PUSH POINT ===================== */
// POST /api/g/trips/:trip_id/tracking
func (ctrl *TripTrackingController) PushPoint(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}
	guideID, err := helper.GetGuideIDFromToken(c)
	if err != nil {
		return err
	}

	var req pushPointRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	recordedAt := time.Now()
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	pt := model.TripTrackingPointModel{
		TripTrackingPointTripID:     tripID,
		TripTrackingPointGuideID:    guideID,
		TripTrackingPointLat:        req.Lat,
		TripTrackingPointLng:        req.Lng,
		TripTrackingPointAccuracyM:  req.AccuracyM,
		TripTrackingPointRecordedAt: recordedAt,
	}
	if err := ctrl.DB.Create(&pt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan titik tracking")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Titik tracking tercatat", pt)
}

/* ===================== POSISI TERAKHIR ===================== */
// GET /api/u/trips/:trip_id/tracking/latest
func (ctrl *TripTrackingController) GetLatest(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}

	var pt model.TripTrackingPointModel
	err = ctrl.DB.
		Where("trip_tracking_point_trip_id = ?", tripID).
		Order("trip_tracking_point_recorded_at DESC").
		First(&pt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Belum ada titik tracking", nil)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", pt)
}

/* ===================== JEJAK ===================== */
// GET /api/u/trips/:trip_id/tracking?limit=200
func (ctrl *TripTrackingController) GetTrail(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}

	limit := c.QueryInt("limit", 200)
	if limit < 1 || limit > 1000 {
		limit = 200
	}

	var pts []model.TripTrackingPointModel
	if err := ctrl.DB.
		Where("trip_tracking_point_trip_id = ?", tripID).
		Order("trip_tracking_point_recorded_at DESC").
		Limit(limit).
		Find(&pts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jejak")
	}
	return helper.Success(c, "OK", pts)
}
