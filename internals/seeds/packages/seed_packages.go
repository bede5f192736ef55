package packages

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"tripku_backend/internals/features/trips/packages/model"
	helper "tripku_backend/internals/helpers"

	"gorm.io/gorm"
)

type PackageSeed struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Destination  string   `json:"destination"`
	Type         string   `json:"type"`
	DurationDays int      `json:"duration_days"`
	Price        float64  `json:"price"`
	NtaPrice     *float64 `json:"nta_price"`
	Description  string   `json:"description"`
}

// SeedPackagesFromJSON membuat paket perjalanan contoh.
// Paket dengan kode yang sama akan dilewati.
func SeedPackagesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file paket:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []PackageSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		code := strings.ToUpper(strings.TrimSpace(data.Code))

		var existing model.TravelPackageModel
		if err := db.Where("travel_package_code = ?", code).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Paket '%s' sudah ada, dilewati.", code)
			continue
		}

		slug := helper.Slugify(data.Name, 140)

		newPackage := model.TravelPackageModel{
			TravelPackageCode:         code,
			TravelPackageName:         data.Name,
			TravelPackageSlug:         slug,
			TravelPackageDestination:  strings.ToLower(strings.TrimSpace(data.Destination)),
			TravelPackageType:         data.Type,
			TravelPackageDurationDays: data.DurationDays,
			TravelPackagePrice:        data.Price,
			TravelPackageNtaPrice:     data.NtaPrice,
			TravelPackageIsActive:     true,
		}
		if data.Description != "" {
			desc := data.Description
			newPackage.TravelPackageDescription = &desc
		}

		if err := db.Create(&newPackage).Error; err != nil {
			log.Printf("❌ Gagal insert paket '%s': %v", code, err)
		} else {
			log.Printf("✅ Berhasil insert paket '%s' (%s)", code, slug)
		}
	}
}
