package users

import (
	"encoding/json"
	"log"
	"os"

	"tripku_backend/internals/features/users/user/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

// SeedUsersFromJSON membuat akun awal (owner, admin, guide, partner, customer).
// User dengan email yang sama akan dilewati.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		// 🔐 Hash password sebelum disimpan
		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			UserName:     data.UserName,
			UserEmail:    data.Email,
			UserPassword: string(hashed),
			UserRole:     data.Role,
		}
		if data.Phone != "" {
			phone := data.Phone
			newUser.UserPhone = &phone
		}
		newUser.SetDefaultValues()

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Email, err)
		} else {
			log.Printf("✅ Berhasil insert user '%s' (role %s)", data.Email, newUser.UserRole)
		}
	}
}
