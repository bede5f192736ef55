package model

import (
	"time"

	"github.com/google/uuid"
)

type PartnerWalletModel struct {
	PartnerWalletID     uuid.UUID `gorm:"column:partner_wallet_id;type:uuid;default:gen_random_uuid();primaryKey" json:"partner_wallet_id"`
	PartnerWalletUserID uuid.UUID `gorm:"column:partner_wallet_user_id;type:uuid;not null;uniqueIndex" json:"partner_wallet_user_id"`

	PartnerWalletBalance float64 `gorm:"column:partner_wallet_balance;type:numeric(16,2);not null;default:0" json:"partner_wallet_balance"`

	PartnerWalletCreatedAt time.Time `gorm:"column:partner_wallet_created_at;autoCreateTime" json:"partner_wallet_created_at"`
	PartnerWalletUpdatedAt time.Time `gorm:"column:partner_wallet_updated_at;autoUpdateTime" json:"partner_wallet_updated_at"`
}

func (PartnerWalletModel) TableName() string {
	return "partner_wallets"
}
