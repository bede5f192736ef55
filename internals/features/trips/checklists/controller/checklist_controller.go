package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripku_backend/internals/features/trips/checklists/model"
	helper "tripku_backend/internals/helpers"
)

type ChecklistController struct {
	DB *gorm.DB
}

func NewChecklistController(db *gorm.DB) *ChecklistController {
	return &ChecklistController{DB: db}
}

var validate = validator.New()

/* ===================== FACILITY ===================== */

type createFacilityItemRequest struct {
	Names []string `json:"names" validate:"required,min=1,dive,required,min=2,max=120"`
}

// POST /api/a/trips/:trip_id/facility-checklist (bulk tambah item wajib)
func (ctrl *ChecklistController) CreateFacilityItems(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}

	var req createFacilityItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	items := make([]model.FacilityChecklistItemModel, 0, len(req.Names))
	for _, name := range req.Names {
		items = append(items, model.FacilityChecklistItemModel{
			FacilityChecklistItemTripID: tripID,
			FacilityChecklistItemName:   name,
		})
	}
	if err := ctrl.DB.Create(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan item fasilitas")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Item fasilitas ditambahkan", items)
}

// GET /api/g/trips/:trip_id/facility-checklist
func (ctrl *ChecklistController) ListFacilityItems(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}

	var items []model.FacilityChecklistItemModel
	if err := ctrl.DB.
		Where("facility_checklist_item_trip_id = ?", tripID).
		Order("facility_checklist_item_created_at ASC").
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil checklist fasilitas")
	}

	checked := 0
	for _, it := range items {
		if it.FacilityChecklistItemIsVerified {
			checked++
		}
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":   items,
		"checked": checked,
		"total":   len(items),
	})
}

// PATCH /api/g/facility-checklist/:id/verify
func (ctrl *ChecklistController) VerifyFacilityItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var item model.FacilityChecklistItemModel
	if err := ctrl.DB.Where("facility_checklist_item_id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Item fasilitas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	if err := ctrl.DB.Model(&item).Updates(map[string]interface{}{
		"facility_checklist_item_is_verified": true,
		"facility_checklist_item_verified_at": now,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal verify item")
	}

	item.FacilityChecklistItemIsVerified = true
	item.FacilityChecklistItemVerifiedAt = &now
	return helper.Success(c, "Item fasilitas di-verify", item)
}

/* ===================== EQUIPMENT ===================== */

type submitEquipmentRequest struct {
	Checked     int  `json:"checked" validate:"min=0"`
	Total       int  `json:"total" validate:"required,min=1"`
	IsCompleted bool `json:"is_completed"`
}

// POST /api/g/trips/:trip_id/equipment-checklist
func (ctrl *ChecklistController) SubmitEquipment(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}
	guideID, err := helper.GetGuideIDFromToken(c)
	if err != nil {
		return err
	}

	var req submitEquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Checked > req.Total {
		return fiber.NewError(fiber.StatusBadRequest, "Checked tidak boleh melebihi total")
	}

	rec := model.EquipmentChecklistModel{
		EquipmentChecklistTripID:      tripID,
		EquipmentChecklistGuideID:     guideID,
		EquipmentChecklistChecked:     req.Checked,
		EquipmentChecklistTotal:       req.Total,
		EquipmentChecklistIsCompleted: req.IsCompleted,
	}
	if err := ctrl.DB.Create(&rec).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan checklist perlengkapan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Checklist perlengkapan tercatat", rec)
}

// GET /api/g/trips/:trip_id/equipment-checklist (record terbaru milik guide)
func (ctrl *ChecklistController) GetLatestEquipment(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("trip_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}
	guideID, err := helper.GetGuideIDFromToken(c)
	if err != nil {
		return err
	}

	var rec model.EquipmentChecklistModel
	err = ctrl.DB.
		Where("equipment_checklist_trip_id = ? AND equipment_checklist_guide_id = ?", tripID, guideID).
		Order("equipment_checklist_created_at DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Belum ada record", nil)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rec)
}
