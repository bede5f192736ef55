package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripku_backend/internals/features/guides/guides/dto"
	"tripku_backend/internals/features/guides/guides/model"
	helper "tripku_backend/internals/helpers"
)

type GuideController struct {
	DB *gorm.DB
}

func NewGuideController(db *gorm.DB) *GuideController {
	return &GuideController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/a/guides
func (ctrl *GuideController) Create(c *fiber.Ctx) error {
	var req dto.CreateGuideRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	g := req.ToModel()
	if err := ctrl.DB.Create(&g).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat guide")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Guide berhasil dibuat", dto.NewGuideResponse(g))
}

/* ===================== LIST ===================== */
// GET /api/a/guides?status=standby&search=...
func (ctrl *GuideController) List(c *fiber.Ctx) error {
	var q dto.FilterGuideRequest
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctrl.DB.Model(&model.GuideModel{})
	if q.Status != nil {
		tx = tx.Where("guide_status = ?", *q.Status)
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		s := "%" + strings.ToLower(strings.TrimSpace(*q.Search)) + "%"
		tx = tx.Where("LOWER(guide_name) LIKE ?", s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung guide")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "guide_created_at",
		"name":       "guide_name",
		"rating":     "guide_rating",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Sort tidak dikenal")
	}

	var rows []model.GuideModel
	if err := tx.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil guide")
	}

	out := make([]dto.GuideResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewGuideResponse(r))
	}
	return helper.SuccessList(c, "OK", out, helper.BuildMeta(total, p))
}

/* ===================== DETAIL ===================== */
// GET /api/a/guides/:id
func (ctrl *GuideController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var g model.GuideModel
	if err := ctrl.DB.Where("guide_id = ?", id).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Guide tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewGuideResponse(g))
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/guides/:id
func (ctrl *GuideController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateGuideRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var g model.GuideModel
	if err := ctrl.DB.Where("guide_id = ?", id).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Guide tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.GuideName != nil {
		updates["guide_name"] = *req.GuideName
	}
	if req.GuidePhone != nil {
		updates["guide_phone"] = *req.GuidePhone
	}
	if req.GuideEmail != nil {
		updates["guide_email"] = *req.GuideEmail
	}
	if req.GuideStatus != nil {
		updates["guide_status"] = *req.GuideStatus
	}
	if req.GuideRating != nil {
		updates["guide_rating"] = *req.GuideRating
	}
	if len(updates) == 0 {
		return helper.Success(c, "Tidak ada perubahan", dto.NewGuideResponse(g))
	}

	if err := ctrl.DB.Model(&g).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update guide")
	}
	return helper.Success(c, "Guide berhasil diupdate", dto.NewGuideResponse(g))
}

/* ===================== DELETE ===================== */
// DELETE /api/a/guides/:id (soft delete)
func (ctrl *GuideController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Where("guide_id = ?", id).Delete(&model.GuideModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus guide")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Guide tidak ditemukan")
	}
	return helper.Success(c, "Guide berhasil dihapus", nil)
}
