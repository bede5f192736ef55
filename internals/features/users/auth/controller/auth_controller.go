package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tripku_backend/internals/configs"
	"tripku_backend/internals/constants"
	guideModel "tripku_backend/internals/features/guides/guides/model"
	"tripku_backend/internals/features/users/auth/dto"
	authModel "tripku_backend/internals/features/users/auth/model"
	authService "tripku_backend/internals/features/users/auth/service"
	userModel "tripku_backend/internals/features/users/user/model"
	helper "tripku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

/* ===================== REGISTER ===================== */
// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Email unik?
	var count int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek email")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	u := userModel.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword: string(hashed),
		UserRole:     constants.RoleCustomer,
	}
	if p := strings.TrimSpace(req.Phone); p != "" {
		u.UserPhone = &p
	}
	u.SetDefaultValues()

	if err := ctrl.DB.Create(&u).Error; err != nil {
		log.Println("[ERROR] Gagal membuat user:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", fiber.Map{
		"user_id": u.UserID,
	})
}

/* ===================== LOGIN ===================== */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u userModel.UserModel
	if err := ctrl.DB.
		Where("user_email = ? AND user_is_active = TRUE", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	return ctrl.issueTokens(c, &u)
}

/* ===================== GOOGLE LOGIN ===================== */
// POST /api/auth/google
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		log.Println("[ERROR] Google ID token invalid:", err)
		return fiber.NewError(fiber.StatusUnauthorized, "Google token tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Google token tidak bisa dibaca")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Google token tanpa email")
	}

	var u userModel.UserModel
	err = ctrl.DB.Where("user_email = ? AND user_is_active = TRUE", email).First(&u).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// auto-register akun customer
		name := strings.TrimSpace(claimSet.Name)
		if name == "" {
			name = strings.Split(email, "@")[0]
		}
		sub := claimSet.Sub
		u = userModel.UserModel{
			UserName:     name,
			UserEmail:    email,
			UserPassword: "-", // login via Google, tanpa password lokal
			UserGoogleID: &sub,
			UserRole:     constants.RoleCustomer,
		}
		if err := ctrl.DB.Create(&u).Error; err != nil {
			log.Println("[ERROR] Gagal auto-register Google:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun")
		}
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal login")
	}

	return ctrl.issueTokens(c, &u)
}

/* ===================== REFRESH ===================== */
// POST /api/auth/refresh
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	_ = c.BodyParser(&req) // boleh kosong; fallback ke cookie

	raw := strings.TrimSpace(req.RefreshToken)
	if raw == "" {
		raw = helper.GetRefreshTokenFromCookie(c)
	}
	if raw == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak ditemukan")
	}

	userID, newRefresh, err := authService.RotateRefreshToken(ctrl.DB, raw)
	if err != nil {
		if errors.Is(err, authService.ErrRefreshTokenInvalid) {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal refresh token")
	}

	var u userModel.UserModel
	if err := ctrl.DB.Where("user_id = ? AND user_is_active = TRUE", userID).First(&u).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
	}

	access, expiresIn, err := authService.CreateAccessToken(&u, ctrl.lookupGuideID(&u))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}

	setAuthCookies(c, access, newRefresh)
	return helper.Success(c, "Token diperbarui", dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: newRefresh,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
	})
}

/* ===================== LOGOUT ===================== */
// POST /api/auth/logout (butuh auth)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Belum login")
	}

	// blacklist access token sampai masa berlakunya habis
	bl := authModel.TokenBlacklist{
		Token:     raw,
		ExpiredAt: time.Now().Add(authService.AccessTTLDefault),
	}
	if err := ctrl.DB.Create(&bl).Error; err != nil {
		log.Println("[WARN] Gagal blacklist token (mungkin sudah ada):", err)
	}

	// revoke seluruh refresh token user
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		_ = authService.RevokeAllRefreshTokens(ctrl.DB, userID)
	}

	c.ClearCookie("access_token", "refresh_token")
	return helper.Success(c, "Berhasil logout", nil)
}

/* ===================== ME ===================== */
// GET /api/auth/me (butuh auth)
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var u userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&u).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	resp := dto.MeResponse{
		UserID:   u.UserID.String(),
		UserName: u.UserName,
		Email:    u.UserEmail,
		Role:     u.UserRole,
	}
	if gid := ctrl.lookupGuideID(&u); gid != nil {
		s := gid.String()
		resp.GuideID = &s
	}

	return helper.Success(c, "OK", resp)
}

/* ===================== INTERNAL ===================== */

func (ctrl *AuthController) issueTokens(c *fiber.Ctx, u *userModel.UserModel) error {
	access, expiresIn, err := authService.CreateAccessToken(u, ctrl.lookupGuideID(u))
	if err != nil {
		log.Println("[ERROR] Gagal menerbitkan access token:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}
	refresh, err := authService.IssueRefreshToken(ctrl.DB, u.UserID)
	if err != nil {
		log.Println("[ERROR] Gagal menerbitkan refresh token:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}

	setAuthCookies(c, access, refresh)
	return helper.Success(c, "Login berhasil", dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
	})
}

// lookupGuideID: isi klaim guide_id untuk akun role guide (best-effort).
func (ctrl *AuthController) lookupGuideID(u *userModel.UserModel) *uuid.UUID {
	if !strings.EqualFold(u.UserRole, constants.RoleGuide) {
		return nil
	}
	var g guideModel.GuideModel
	if err := ctrl.DB.Select("guide_id").
		Where("guide_user_id = ?", u.UserID).
		First(&g).Error; err != nil {
		return nil
	}
	return &g.GuideID
}

func setAuthCookies(c *fiber.Ctx, access, refresh string) {
	secure := true
	c.Cookie(&fiber.Cookie{
		Name: "access_token", Value: access,
		HTTPOnly: true, Secure: secure, SameSite: "Lax",
		Expires: time.Now().Add(authService.AccessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name: "refresh_token", Value: refresh,
		HTTPOnly: true, Secure: secure, SameSite: "Lax",
		Expires: time.Now().Add(authService.RefreshTTLDefault),
	})
}
