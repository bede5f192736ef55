package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Nama locals yang diisi middleware AuthMiddleware setelah verifikasi JWT
const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
	LocGuideID  = "guide_id"
)

// Ambil user_id dari c.Locals("user_id").
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, LocUserID, "User belum login", "User ID pada token tidak valid")
}

// Ambil guide_id dari token (diisi middleware untuk akun dengan role guide).
func GetGuideIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, LocGuideID, "Akun ini bukan guide", "Guide ID pada token tidak valid")
}

// Ambil role dari token; kosong = belum login.
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return ""
}

func localsUUID(c *fiber.Ctx, key, emptyMsg, invalidMsg string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, invalidMsg)
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, invalidMsg)
	}
}
