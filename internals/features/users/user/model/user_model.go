package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database.
// Satu user bisa terhubung ke profil guide (guides.guide_user_id) atau partner.
type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"size:50;not null;column:user_name" json:"user_name" validate:"required,min=3,max=50"`
	UserEmail    string    `gorm:"size:255;unique;not null;column:user_email" json:"user_email" validate:"required,email"`
	UserPassword string    `gorm:"not null;column:user_password" json:"-"`
	UserGoogleID *string   `gorm:"size:255;unique;column:user_google_id" json:"user_google_id,omitempty"`
	UserPhone    *string   `gorm:"size:30;column:user_phone" json:"user_phone,omitempty"`

	// role: customer | guide | partner | admin | owner
	UserRole string `gorm:"type:varchar(20);not null;default:'customer';column:user_role" json:"user_role"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

// SetDefaultValues memastikan nilai default sebelum simpan
func (u *UserModel) SetDefaultValues() {
	if u.UserRole == "" {
		u.UserRole = "customer"
	}
}
