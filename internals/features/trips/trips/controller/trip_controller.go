package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	pkgModel "tripku_backend/internals/features/trips/packages/model"
	"tripku_backend/internals/features/trips/trips/dto"
	"tripku_backend/internals/features/trips/trips/model"
	helper "tripku_backend/internals/helpers"
	"tripku_backend/internals/helpers/dbtime"
)

type TripController struct {
	DB *gorm.DB
}

func NewTripController(db *gorm.DB) *TripController {
	return &TripController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/a/trips
func (ctrl *TripController) Create(c *fiber.Ctx) error {
	var req dto.CreateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal/ID tidak valid")
	}

	// Paket harus ada & aktif
	var pkg pkgModel.TravelPackageModel
	if err := ctrl.DB.
		Where("travel_package_id = ? AND travel_package_is_active = ?", mdl.TripTravelPackageID, true).
		First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Paket travel tidak ditemukan atau nonaktif")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fiber.NewError(fiber.StatusConflict, "Kode trip sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan trip")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Trip dibuat", dto.NewTripResponse(mdl))
}

/* ===================== LIST ===================== */
// GET /api/public/trips?package_id=&status=&from=&to=
func (ctrl *TripController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "date", "asc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.TripModel{})
	if pid := c.Query("package_id"); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "package_id tidak valid")
		}
		q = q.Where("trip_travel_package_id = ?", id)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("trip_status = ?", st)
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "from tidak valid (YYYY-MM-DD)")
		}
		q = q.Where("trip_date >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "to tidak valid (YYYY-MM-DD)")
		}
		q = q.Where("trip_date <= ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung trip")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"date":       "trip_date",
		"created_at": "trip_created_at",
		"code":       "trip_code",
	}, "date")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Kolom sort tidak dikenal")
	}

	var rows []model.TripModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil trip")
	}

	out := make([]dto.TripResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewTripResponse(r))
	}
	return helper.SuccessList(c, "OK", out, helper.BuildMeta(total, p))
}

/* ===================== DETAIL ===================== */
// GET /api/public/trips/:id
func (ctrl *TripController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var mdl model.TripModel
	if err := ctrl.DB.Where("trip_id = ?", id).First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Trip tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewTripResponse(mdl))
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/trips/:id
func (ctrl *TripController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mdl model.TripModel
	if err := ctrl.DB.Where("trip_id = ?", id).First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Trip tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.Date != nil {
		t, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tanggal tidak valid")
		}
		updates["trip_date"] = t
	}
	if req.DepartureTime != nil {
		tod, err := dbtime.Parse(*req.DepartureTime)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Jam keberangkatan tidak valid")
		}
		updates["trip_departure_time"] = tod
	}
	if req.Quota != nil {
		if *req.Quota < mdl.TripBooked {
			return fiber.NewError(fiber.StatusBadRequest, "Quota tidak boleh di bawah jumlah booking")
		}
		updates["trip_quota"] = *req.Quota
	}
	if req.Status != nil {
		updates["trip_status"] = *req.Status
	}
	if req.MeetingPoint != nil {
		updates["trip_meeting_point"] = *req.MeetingPoint
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&mdl).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update trip")
		}
	}
	return helper.Success(c, "Trip diupdate", dto.NewTripResponse(mdl))
}

/* ===================== DELETE ===================== */
// DELETE /api/a/trips/:id (soft delete)
func (ctrl *TripController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.Where("trip_id = ?", id).Delete(&model.TripModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus trip")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Trip tidak ditemukan")
	}
	return helper.Success(c, "Trip dihapus", nil)
}
