package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripku_backend/internals/constants"
	"tripku_backend/internals/features/users/user/model"
	helper "tripku_backend/internals/helpers"
)

// Manajemen akun oleh admin/owner: lihat daftar, ubah role, aktif/nonaktifkan.
type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

var validate = validator.New()

/* ===================== LIST ===================== */
// GET /api/a/users?role=&q=
func (ctrl *UserAdminController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if kw := strings.TrimSpace(c.Query("q")); kw != "" {
		q = q.Where("user_name ILIKE ? OR user_email ILIKE ?", "%"+kw+"%", "%"+kw+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "user_created_at",
		"name":       "user_name",
		"email":      "user_email",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Kolom sort tidak dikenal")
	}

	var rows []model.UserModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.SuccessList(c, "OK", rows, helper.BuildMeta(total, p))
}

/* ===================== UPDATE ROLE / STATUS ===================== */

type updateUserRequest struct {
	Role     *string `json:"role" validate:"omitempty,oneof=customer guide partner admin owner"`
	IsActive *bool   `json:"is_active"`
}

// PATCH /api/a/users/:id
func (ctrl *UserAdminController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u model.UserModel
	if err := ctrl.DB.Where("user_id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Role owner hanya boleh diberikan oleh sesama owner
	if req.Role != nil && *req.Role == constants.RoleOwner &&
		helper.GetRoleFromToken(c) != constants.RoleOwner {
		return fiber.NewError(fiber.StatusForbidden, "Hanya owner yang boleh memberikan role owner")
	}

	updates := map[string]interface{}{}
	if req.Role != nil {
		updates["user_role"] = *req.Role
	}
	if req.IsActive != nil {
		updates["user_is_active"] = *req.IsActive
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&u).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update user")
		}
	}
	return helper.Success(c, "User diupdate", u)
}
