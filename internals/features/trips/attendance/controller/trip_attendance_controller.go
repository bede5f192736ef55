package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tripku_backend/internals/features/trips/attendance/model"
	helper "tripku_backend/internals/helpers"
)

type TripAttendanceController struct {
	DB *gorm.DB
}

func NewTripAttendanceController(db *gorm.DB) *TripAttendanceController {
	return &TripAttendanceController{DB: db}
}

var validate = validator.New()

type checkInRequest struct {
	Lat *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lng *float64 `json:"lng" validate:"omitempty,min=-180,max=180"`
}

/* ===================== CHECK-IN ===================== */
// POST /api/g/trips/:trip_id/check-in
func (ctrl *TripAttendanceController) CheckIn(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}
	guideID, err := helper.GetGuideIDFromToken(c)
	if err != nil {
		return err
	}

	var req checkInRequest
	// body boleh kosong (check-in tanpa lokasi)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
		}
		if err := validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	att := model.TripAttendanceModel{
		TripAttendanceTripID:      tripID,
		TripAttendanceGuideID:     guideID,
		TripAttendanceCheckedInAt: time.Now(),
		TripAttendanceLat:         req.Lat,
		TripAttendanceLng:         req.Lng,
	}
	if err := ctrl.DB.Create(&att).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fiber.NewError(fiber.StatusConflict, "Sudah check-in untuk trip ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan check-in")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Check-in tercatat", att)
}

/* ===================== STATUS ===================== */
// GET /api/g/trips/:trip_id/check-in
func (ctrl *TripAttendanceController) GetMine(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}
	guideID, err := helper.GetGuideIDFromToken(c)
	if err != nil {
		return err
	}

	var att model.TripAttendanceModel
	err = ctrl.DB.
		Where("trip_attendance_trip_id = ? AND trip_attendance_guide_id = ?", tripID, guideID).
		First(&att).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Belum check-in", fiber.Map{"checked_in": false})
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{"checked_in": true, "attendance": att})
}
