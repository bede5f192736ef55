package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripku_backend/internals/features/trips/assignment/dto"
	"tripku_backend/internals/features/trips/assignment/model"
	"tripku_backend/internals/features/trips/assignment/service"
	helper "tripku_backend/internals/helpers"
)

type TripGuideAssignmentController struct {
	DB           *gorm.DB
	Orchestrator *service.Orchestrator
}

func NewTripGuideAssignmentController(db *gorm.DB, orch *service.Orchestrator) *TripGuideAssignmentController {
	return &TripGuideAssignmentController{DB: db, Orchestrator: orch}
}

/* ===================== AUTO ASSIGN ===================== */
// POST /api/a/trips/:trip_id/auto-assign
func (ctrl *TripGuideAssignmentController) AutoAssign(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}

	asg, err := ctrl.Orchestrator.AutoAssign(c.Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTripNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Trip tidak ditemukan")
		case errors.Is(err, service.ErrAlreadyAssigned):
			return fiber.NewError(fiber.StatusConflict, "Trip sudah memiliki guide")
		case errors.Is(err, service.ErrNoGuidesAvailable):
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Tidak ada guide terdaftar")
		case errors.Is(err, service.ErrNoSuitableGuide):
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Tidak ada guide yang cocok (semua non-standby)")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menjalankan auto-assign")
		}
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Guide berhasil ditugaskan",
		dto.NewTripGuideAssignmentResponse(*asg))
}

/* ===================== GET PER TRIP ===================== */
// GET /api/a/trips/:trip_id/assignment
func (ctrl *TripGuideAssignmentController) GetByTripID(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}

	var asg model.TripGuideAssignmentModel
	if err := ctrl.DB.
		Where("trip_guide_assignment_trip_id = ?", tripID).
		First(&asg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Trip belum memiliki penugasan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewTripGuideAssignmentResponse(asg))
}

/* ===================== LIST MILIK GUIDE ===================== */
// GET /api/g/assignments
func (ctrl *TripGuideAssignmentController) ListMine(c *fiber.Ctx) error {
	guideID, err := helper.GetGuideIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.TripGuideAssignmentModel
	if err := ctrl.DB.
		Where("trip_guide_assignment_guide_id = ?", guideID).
		Order("trip_guide_assignment_created_at DESC").
		Limit(100).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil penugasan")
	}

	out := make([]dto.TripGuideAssignmentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewTripGuideAssignmentResponse(r))
	}
	return helper.Success(c, "OK", out)
}

/* ===================== CONFIRM ===================== */
// PATCH /api/g/assignments/:id/confirm
func (ctrl *TripGuideAssignmentController) Confirm(c *fiber.Ctx) error {
	asg, err := ctrl.loadOwnPending(c)
	if err != nil {
		return err
	}

	now := time.Now()
	if now.After(asg.TripGuideAssignmentConfirmDeadline) {
		return fiber.NewError(fiber.StatusConflict, "Batas konfirmasi sudah lewat")
	}

	if err := ctrl.DB.Model(asg).Updates(map[string]interface{}{
		"trip_guide_assignment_status":       model.AssignmentStatusConfirmed,
		"trip_guide_assignment_confirmed_at": now,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal konfirmasi penugasan")
	}

	asg.TripGuideAssignmentStatus = model.AssignmentStatusConfirmed
	asg.TripGuideAssignmentConfirmedAt = &now
	return helper.Success(c, "Penugasan dikonfirmasi", dto.NewTripGuideAssignmentResponse(*asg))
}

/* ===================== DECLINE ===================== */
// PATCH /api/g/assignments/:id/decline
// Baris di-soft-delete supaya slot trip terbuka lagi untuk auto-assign berikutnya.
func (ctrl *TripGuideAssignmentController) Decline(c *fiber.Ctx) error {
	asg, err := ctrl.loadOwnPending(c)
	if err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(asg).
			Update("trip_guide_assignment_status", model.AssignmentStatusDeclined).Error; err != nil {
			return err
		}
		return tx.Delete(asg).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menolak penugasan")
	}

	return helper.Success(c, "Penugasan ditolak", nil)
}

func (ctrl *TripGuideAssignmentController) loadOwnPending(c *fiber.Ctx) (*model.TripGuideAssignmentModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	guideID, err := helper.GetGuideIDFromToken(c)
	if err != nil {
		return nil, err
	}

	var asg model.TripGuideAssignmentModel
	if err := ctrl.DB.
		Where("trip_guide_assignment_id = ? AND trip_guide_assignment_guide_id = ?", id, guideID).
		First(&asg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Penugasan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if asg.TripGuideAssignmentStatus != model.AssignmentStatusPending {
		return nil, fiber.NewError(fiber.StatusConflict, "Penugasan sudah diproses")
	}
	return &asg, nil
}
