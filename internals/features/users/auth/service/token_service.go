package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripku_backend/internals/configs"
	authModel "tripku_backend/internals/features/users/auth/model"
	userModel "tripku_backend/internals/features/users/user/model"
)

/* ==========================
   Const & Types
========================== */

const (
	AccessTTLDefault  = 24 * time.Hour
	RefreshTTLDefault = 7 * 24 * time.Hour
)

var (
	ErrMissingSecret       = errors.New("JWT secret belum diset")
	ErrRefreshTokenInvalid = errors.New("refresh token tidak valid atau sudah kadaluarsa")
)

/* ==========================
   ACCESS TOKEN
========================== */

// CreateAccessToken menerbitkan JWT access token.
// guideID opsional, diisi hanya untuk akun dengan role guide
// supaya endpoint guide-app tidak perlu query roster ulang.
func CreateAccessToken(u *userModel.UserModel, guideID *uuid.UUID) (string, int64, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", 0, ErrMissingSecret
	}

	now := time.Now().UTC()
	exp := now.Add(AccessTTLDefault)

	claims := jwt.MapClaims{
		"id":        u.UserID.String(),
		"user_name": u.UserName,
		"role":      strings.ToLower(u.UserRole),
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}
	if guideID != nil && *guideID != uuid.Nil {
		claims["guide_id"] = guideID.String()
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		return "", 0, err
	}
	return signed, int64(AccessTTLDefault.Seconds()), nil
}

/* ==========================
   REFRESH TOKEN
========================== */

// computeRefreshHash: simpan HMAC, bukan token mentah.
func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func refreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", ErrMissingSecret
	}
	return secret, nil
}

// IssueRefreshToken membuat refresh token (JWT HS256) + simpan hash-nya.
func IssueRefreshToken(db *gorm.DB, userID uuid.UUID) (string, error) {
	secret, err := refreshSecret()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	exp := now.Add(RefreshTTLDefault)

	claims := jwt.MapClaims{
		"sub": userID.String(),
		"typ": "refresh",
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	row := authModel.RefreshToken{
		RefreshTokenUserID:    userID,
		RefreshTokenHash:      computeRefreshHash(signed, secret),
		RefreshTokenExpiresAt: exp,
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return signed, nil
}

// RotateRefreshToken memvalidasi refresh token lama, revoke, lalu terbitkan baru.
// Return (userID, refreshTokenBaru, error).
func RotateRefreshToken(db *gorm.DB, raw string) (uuid.UUID, string, error) {
	secret, err := refreshSecret()
	if err != nil {
		return uuid.Nil, "", err
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrRefreshTokenInvalid
		}
		return []byte(secret), nil
	}); err != nil {
		return uuid.Nil, "", ErrRefreshTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(strings.TrimSpace(sub))
	if err != nil {
		return uuid.Nil, "", ErrRefreshTokenInvalid
	}

	hash := computeRefreshHash(raw, secret)

	var row authModel.RefreshToken
	if err := db.
		Where("refresh_token_hash = ? AND refresh_token_user_id = ? AND refresh_token_expires_at > NOW()", hash, userID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, "", ErrRefreshTokenInvalid
		}
		return uuid.Nil, "", err
	}

	// revoke token lama (soft delete), lalu terbitkan baru
	if err := db.Delete(&row).Error; err != nil {
		return uuid.Nil, "", err
	}
	newTok, err := IssueRefreshToken(db, userID)
	if err != nil {
		return uuid.Nil, "", err
	}
	return userID, newTok, nil
}

// RevokeAllRefreshTokens dipakai saat logout-all / ganti password.
func RevokeAllRefreshTokens(db *gorm.DB, userID uuid.UUID) error {
	return db.
		Where("refresh_token_user_id = ?", userID).
		Delete(&authModel.RefreshToken{}).Error
}
