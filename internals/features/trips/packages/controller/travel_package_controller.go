package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tripku_backend/internals/features/trips/packages/dto"
	"tripku_backend/internals/features/trips/packages/model"
	helper "tripku_backend/internals/helpers"
	ossHelper "tripku_backend/internals/helpers/oss"
)

type TravelPackageController struct {
	DB *gorm.DB
}

func NewTravelPackageController(db *gorm.DB) *TravelPackageController {
	return &TravelPackageController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/a/travel-packages
func (ctrl *TravelPackageController) Create(c *fiber.Ctx) error {
	var req dto.CreateTravelPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	base := helper.SuggestSlugFromName(req.Name)
	slug, err := helper.EnsureUniqueSlugCI(
		c.Context(), ctrl.DB,
		"travel_packages", "travel_package_slug",
		base, nil, 140,
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	mdl := req.ToModel(slug)
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fiber.NewError(fiber.StatusConflict, "Kode paket sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan paket")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Paket travel dibuat",
		dto.NewTravelPackageResponse(mdl))
}

/* ===================== LIST ===================== */
// GET /api/public/travel-packages  |  GET /api/a/travel-packages?include_inactive=1
func (ctrl *TravelPackageController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.TravelPackageModel{})
	if c.Query("include_inactive") == "" {
		q = q.Where("travel_package_is_active = ?", true)
	}
	if dest := strings.ToLower(strings.TrimSpace(c.Query("destination"))); dest != "" {
		q = q.Where("travel_package_destination = ?", dest)
	}
	if typ := c.Query("type"); typ != "" {
		q = q.Where("travel_package_type = ?", typ)
	}
	if kw := strings.TrimSpace(c.Query("q")); kw != "" {
		q = q.Where("travel_package_name ILIKE ?", "%"+kw+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung paket")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "travel_package_created_at",
		"name":       "travel_package_name",
		"price":      "travel_package_price",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Kolom sort tidak dikenal")
	}

	var rows []model.TravelPackageModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil paket")
	}

	out := make([]dto.TravelPackageResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewTravelPackageResponse(r))
	}
	return helper.SuccessList(c, "OK", out, helper.BuildMeta(total, p))
}

/* ===================== DETAIL ===================== */
// GET /api/public/travel-packages/:slug
func (ctrl *TravelPackageController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(c.Params("slug"))

	var mdl model.TravelPackageModel
	err := ctrl.DB.
		Where("LOWER(travel_package_slug) = ? AND travel_package_is_active = ?", slug, true).
		First(&mdl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Paket tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewTravelPackageResponse(mdl))
}

// GET /api/a/travel-packages/:id
func (ctrl *TravelPackageController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var mdl model.TravelPackageModel
	if err := ctrl.DB.Where("travel_package_id = ?", id).First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Paket tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewTravelPackageResponse(mdl))
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/travel-packages/:id
func (ctrl *TravelPackageController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateTravelPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mdl model.TravelPackageModel
	if err := ctrl.DB.Where("travel_package_id = ?", id).First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Paket tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["travel_package_name"] = strings.TrimSpace(*req.Name)
		// nama berubah → slug ikut diregenerasi
		base := helper.SuggestSlugFromName(*req.Name)
		slug, err := helper.EnsureUniqueSlugCI(
			c.Context(), ctrl.DB,
			"travel_packages", "travel_package_slug",
			base,
			func(q *gorm.DB) *gorm.DB {
				return q.Where("travel_package_id <> ?", id)
			},
			140,
		)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		updates["travel_package_slug"] = slug
	}
	if req.Destination != nil {
		updates["travel_package_destination"] = strings.ToLower(strings.TrimSpace(*req.Destination))
	}
	if req.Type != nil {
		updates["travel_package_type"] = *req.Type
	}
	if req.DurationDays != nil {
		updates["travel_package_duration_days"] = *req.DurationDays
	}
	if req.Price != nil {
		updates["travel_package_price"] = *req.Price
	}
	if req.NtaPrice != nil {
		updates["travel_package_nta_price"] = *req.NtaPrice
	}
	if req.Description != nil {
		updates["travel_package_description"] = *req.Description
	}
	if req.IsActive != nil {
		updates["travel_package_is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&mdl).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update paket")
		}
	}
	return helper.Success(c, "Paket diupdate", dto.NewTravelPackageResponse(mdl))
}

/* ===================== UPLOAD IMAGE ===================== */
// POST /api/a/travel-packages/:id/image (multipart "image")
func (ctrl *TravelPackageController) UploadImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var mdl model.TravelPackageModel
	if err := ctrl.DB.Where("travel_package_id = ?", id).First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Paket tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File image wajib diisi")
	}

	svc, err := ossHelper.NewOSSServiceFromEnv("travel-packages")
	if err != nil {
		log.Printf("[ERROR] OSS init gagal: %v", err)
		return fiber.NewError(fiber.StatusBadGateway, "Storage tidak tersedia")
	}

	url, err := svc.UploadPackageImage(c.Context(), id, fh)
	if err != nil {
		log.Printf("[ERROR] Upload image paket %s gagal: %v", id, err)
		return fiber.NewError(fiber.StatusBadGateway, "Gagal upload image")
	}

	// Hapus image lama best-effort
	if mdl.TravelPackageImageURL != nil {
		if key, ok := svc.ExtractKeyFromPublicURL(*mdl.TravelPackageImageURL); ok {
			if derr := svc.DeleteObject(c.Context(), key); derr != nil {
				log.Printf("[CLEANUP] Gagal hapus image lama %s: %v", key, derr)
			}
		}
	}

	if err := ctrl.DB.Model(&mdl).
		Update("travel_package_image_url", url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan URL image")
	}

	mdl.TravelPackageImageURL = &url
	return helper.Success(c, "Image paket diupload", dto.NewTravelPackageResponse(mdl))
}

/* ===================== DELETE ===================== */
// DELETE /api/a/travel-packages/:id (soft delete)
func (ctrl *TravelPackageController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.Where("travel_package_id = ?", id).Delete(&model.TravelPackageModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus paket")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Paket tidak ditemukan")
	}
	return helper.Success(c, "Paket dihapus", nil)
}
