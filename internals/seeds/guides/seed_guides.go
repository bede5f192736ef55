package guides

import (
	"encoding/json"
	"log"
	"os"

	guideModel "tripku_backend/internals/features/guides/guides/model"
	prefModel "tripku_backend/internals/features/guides/preferences/model"
	userModel "tripku_backend/internals/features/users/user/model"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GuideSeed struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	UserEmail string `json:"user_email"`
	Status    string `json:"status"`
	Rating    *float64 `json:"rating"`

	PreferredDestinations []string `json:"preferred_destinations"`
	PreferredTripTypes    []string `json:"preferred_trip_types"`
	PreferredDurations    []int64  `json:"preferred_durations"`
}

// SeedGuidesFromJSON membuat roster guide beserta preferensinya.
// Guide ditautkan ke akun user via user_email bila akunnya ada.
func SeedGuidesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file guide:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []GuideSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing guideModel.GuideModel
		if err := db.Where("guide_name = ?", data.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Guide '%s' sudah ada, dilewati.", data.Name)
			continue
		}

		newGuide := guideModel.GuideModel{
			GuideName:   data.Name,
			GuideStatus: data.Status,
			GuideRating: data.Rating,
		}
		if newGuide.GuideStatus == "" {
			newGuide.GuideStatus = guideModel.GuideStatusStandby
		}
		if data.Phone != "" {
			phone := data.Phone
			newGuide.GuidePhone = &phone
		}
		if data.Email != "" {
			email := data.Email
			newGuide.GuideEmail = &email
		}

		// 🔗 tautkan ke akun user bila tersedia
		if data.UserEmail != "" {
			var u userModel.UserModel
			if err := db.Where("user_email = ?", data.UserEmail).First(&u).Error; err == nil {
				uid := u.UserID
				newGuide.GuideUserID = &uid
			} else {
				log.Printf("ℹ️ Akun '%s' untuk guide '%s' tidak ditemukan, guide tetap dibuat tanpa akun.", data.UserEmail, data.Name)
			}
		}

		if err := db.Create(&newGuide).Error; err != nil {
			log.Printf("❌ Gagal insert guide '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Berhasil insert guide '%s'", data.Name)

		if len(data.PreferredDestinations) == 0 && len(data.PreferredTripTypes) == 0 && len(data.PreferredDurations) == 0 {
			continue
		}

		pref := prefModel.GuidePreferenceModel{
			GuidePreferenceGuideID:      newGuide.GuideID,
			GuidePreferenceDestinations: pq.StringArray(data.PreferredDestinations),
			GuidePreferenceTripTypes:    pq.StringArray(data.PreferredTripTypes),
			GuidePreferenceDurations:    pq.Int64Array(data.PreferredDurations),
		}
		if err := db.Create(&pref).Error; err != nil {
			log.Printf("❌ Gagal insert preferensi guide '%s': %v", data.Name, err)
		}
	}
}
