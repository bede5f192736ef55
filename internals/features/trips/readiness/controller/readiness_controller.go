package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripku_backend/internals/features/trips/readiness/service"
	helper "tripku_backend/internals/helpers"
)

type ReadinessController struct {
	DB *gorm.DB
}

func NewReadinessController(db *gorm.DB) *ReadinessController {
	return &ReadinessController{DB: db}
}

/* ===================== READINESS GUIDE ===================== */
// GET /api/g/trips/:trip_id/readiness
func (ctrl *ReadinessController) GetMine(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}
	guideID, err := helper.GetGuideIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.evaluate(c, tripID, guideID)
}

/* ===================== READINESS ADMIN ===================== */
// GET /api/a/trips/:trip_id/readiness/:guide_id
func (ctrl *ReadinessController) GetForGuide(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}
	guideID, err := uuid.Parse(c.Params("guide_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Guide ID tidak valid")
	}
	return ctrl.evaluate(c, tripID, guideID)
}

func (ctrl *ReadinessController) evaluate(c *fiber.Ctx, tripID, guideID uuid.UUID) error {
	snap, err := service.LoadSnapshot(c.Context(), ctrl.DB, tripID, guideID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Trip tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat data kesiapan")
	}
	return helper.Success(c, "OK", service.EvaluateReadiness(snap))
}
