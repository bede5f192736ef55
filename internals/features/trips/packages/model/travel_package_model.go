package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipe paket perjalanan
const (
	PackageTypeOpenTrip    = "open_trip"
	PackageTypePrivateTrip = "private_trip"
	PackageTypeCorporate   = "corporate"
	PackageTypeKolTrip     = "kol_trip"
)

type TravelPackageModel struct {
	TravelPackageID   uuid.UUID `gorm:"column:travel_package_id;type:uuid;default:gen_random_uuid();primaryKey" json:"travel_package_id"`
	TravelPackageCode string    `gorm:"column:travel_package_code;type:varchar(30);uniqueIndex;not null" json:"travel_package_code"`
	TravelPackageName string    `gorm:"column:travel_package_name;type:varchar(120);not null" json:"travel_package_name"`
	TravelPackageSlug string    `gorm:"column:travel_package_slug;type:varchar(140);uniqueIndex;not null" json:"travel_package_slug"`

	// destinasi dinormalisasi lowercase, dipakai juga untuk matching preferensi guide
	TravelPackageDestination string `gorm:"column:travel_package_destination;type:varchar(80);not null" json:"travel_package_destination"`
	TravelPackageType        string `gorm:"column:travel_package_type;type:varchar(20);not null;default:'open_trip'" json:"travel_package_type"`

	TravelPackageDurationDays int `gorm:"column:travel_package_duration_days;not null" json:"travel_package_duration_days"`

	// harga jual & harga NTA (nett-to-agent) untuk booking B2B partner
	TravelPackagePrice    float64  `gorm:"column:travel_package_price;type:numeric(14,2);not null" json:"travel_package_price"`
	TravelPackageNtaPrice *float64 `gorm:"column:travel_package_nta_price;type:numeric(14,2)" json:"travel_package_nta_price,omitempty"`

	TravelPackageDescription *string `gorm:"column:travel_package_description;type:text" json:"travel_package_description,omitempty"`
	TravelPackageImageURL    *string `gorm:"column:travel_package_image_url;type:text" json:"travel_package_image_url,omitempty"`

	TravelPackageIsActive bool `gorm:"column:travel_package_is_active;not null;default:true" json:"travel_package_is_active"`

	TravelPackageCreatedAt time.Time      `gorm:"column:travel_package_created_at;autoCreateTime" json:"travel_package_created_at"`
	TravelPackageUpdatedAt time.Time      `gorm:"column:travel_package_updated_at;autoUpdateTime" json:"travel_package_updated_at"`
	TravelPackageDeletedAt gorm.DeletedAt `gorm:"column:travel_package_deleted_at;index" json:"-"`
}

func (TravelPackageModel) TableName() string {
	return "travel_packages"
}
