package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshToken menyimpan HMAC hash refresh token per user (bukan token mentah).
type RefreshToken struct {
	RefreshTokenID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:refresh_token_id" json:"refresh_token_id"`
	RefreshTokenUserID    uuid.UUID      `gorm:"type:uuid;not null;index;column:refresh_token_user_id" json:"refresh_token_user_id"`
	RefreshTokenHash      []byte         `gorm:"type:bytea;not null;uniqueIndex;column:refresh_token_hash" json:"-"`
	RefreshTokenExpiresAt time.Time      `gorm:"not null;column:refresh_token_expires_at" json:"refresh_token_expires_at"`
	RefreshTokenCreatedAt time.Time      `gorm:"column:refresh_token_created_at;autoCreateTime" json:"refresh_token_created_at"`
	RefreshTokenDeletedAt gorm.DeletedAt `gorm:"column:refresh_token_deleted_at;index" json:"refresh_token_deleted_at,omitempty"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }
