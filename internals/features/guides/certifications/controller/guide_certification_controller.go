package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripku_backend/internals/features/guides/certifications/dto"
	"tripku_backend/internals/features/guides/certifications/model"
	certService "tripku_backend/internals/features/guides/certifications/service"
	helper "tripku_backend/internals/helpers"
)

type GuideCertificationController struct {
	DB *gorm.DB
}

func NewGuideCertificationController(db *gorm.DB) *GuideCertificationController {
	return &GuideCertificationController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/a/guide-certifications
func (ctrl *GuideCertificationController) Create(c *fiber.Ctx) error {
	var req dto.CreateGuideCertificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel()
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan sertifikasi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sertifikasi tersimpan",
		dto.NewGuideCertificationResponse(mdl, time.Now()))
}

/* ===================== LIST PER GUIDE ===================== */
// GET /api/a/guides/:guide_id/certifications  |  GET /api/g/certifications
func (ctrl *GuideCertificationController) ListByGuideID(c *fiber.Ctx) error {
	guideID, err := uuid.Parse(c.Params("guide_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Guide ID tidak valid")
	}
	return ctrl.list(c, guideID)
}

func (ctrl *GuideCertificationController) ListMine(c *fiber.Ctx) error {
	guideID, err := helper.GetGuideIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.list(c, guideID)
}

func (ctrl *GuideCertificationController) list(c *fiber.Ctx, guideID uuid.UUID) error {
	var rows []model.GuideCertificationModel
	if err := ctrl.DB.
		Where("guide_certification_guide_id = ?", guideID).
		Order("guide_certification_expires_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sertifikasi")
	}

	now := time.Now()
	out := make([]dto.GuideCertificationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewGuideCertificationResponse(r, now))
	}

	valid, err := certService.AllValid(ctrl.DB, guideID, now)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengecek validitas")
	}

	return helper.Success(c, "OK", fiber.Map{
		"certifications": out,
		"all_valid":      valid,
	})
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/guide-certifications/:id
func (ctrl *GuideCertificationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateGuideCertificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mdl model.GuideCertificationModel
	if err := ctrl.DB.Where("guide_certification_id = ?", id).First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sertifikasi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["guide_certification_name"] = *req.Name
	}
	if req.Number != nil {
		updates["guide_certification_number"] = *req.Number
	}
	if req.Issuer != nil {
		updates["guide_certification_issuer"] = *req.Issuer
	}
	if req.IssuedAt != nil {
		updates["guide_certification_issued_at"] = *req.IssuedAt
	}
	if req.ExpiresAt != nil {
		updates["guide_certification_expires_at"] = *req.ExpiresAt
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&mdl).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update sertifikasi")
		}
	}
	return helper.Success(c, "Sertifikasi diupdate", dto.NewGuideCertificationResponse(mdl, time.Now()))
}

/* ===================== DELETE ===================== */
// DELETE /api/a/guide-certifications/:id (soft delete)
func (ctrl *GuideCertificationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.Where("guide_certification_id = ?", id).Delete(&model.GuideCertificationModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus sertifikasi")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sertifikasi tidak ditemukan")
	}
	return helper.Success(c, "Sertifikasi dihapus", nil)
}
