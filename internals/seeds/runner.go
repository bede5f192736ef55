package seeds

import (
	guideSeed "tripku_backend/internals/seeds/guides"
	packageSeed "tripku_backend/internals/seeds/packages"
	userSeed "tripku_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data awal (akun, roster guide, paket contoh).
// Semua seeder idempotent: baris yang sudah ada akan dilewati.
func RunAllSeeds(db *gorm.DB) {
	userSeed.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	guideSeed.SeedGuidesFromJSON(db, "internals/seeds/guides/data_guides.json")
	packageSeed.SeedPackagesFromJSON(db, "internals/seeds/packages/data_packages.json")
}
