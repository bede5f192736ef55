package model

import (
	"time"

	"github.com/google/uuid"
)

// Arah mutasi ledger
const (
	WalletEntryTypeCredit = "credit"
	WalletEntryTypeDebit  = "debit"
)

// Ledger append-only; saldo berjalan direkam per baris untuk audit.
type PartnerWalletEntryModel struct {
	PartnerWalletEntryID       uuid.UUID `gorm:"column:partner_wallet_entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"partner_wallet_entry_id"`
	PartnerWalletEntryWalletID uuid.UUID `gorm:"column:partner_wallet_entry_wallet_id;type:uuid;not null;index" json:"partner_wallet_entry_wallet_id"`

	PartnerWalletEntryType   string  `gorm:"column:partner_wallet_entry_type;type:varchar(10);not null" json:"partner_wallet_entry_type"`
	PartnerWalletEntryAmount float64 `gorm:"column:partner_wallet_entry_amount;type:numeric(16,2);not null" json:"partner_wallet_entry_amount"`

	PartnerWalletEntryBalanceAfter float64 `gorm:"column:partner_wallet_entry_balance_after;type:numeric(16,2);not null" json:"partner_wallet_entry_balance_after"`

	// Referensi sumber mutasi (mis. booking id)
	PartnerWalletEntryReference *uuid.UUID `gorm:"column:partner_wallet_entry_reference;type:uuid" json:"partner_wallet_entry_reference,omitempty"`
	PartnerWalletEntryNote      string     `gorm:"column:partner_wallet_entry_note;type:varchar(255);not null;default:''" json:"partner_wallet_entry_note"`

	PartnerWalletEntryCreatedAt time.Time `gorm:"column:partner_wallet_entry_created_at;autoCreateTime" json:"partner_wallet_entry_created_at"`
}

func (PartnerWalletEntryModel) TableName() string {
	return "partner_wallet_entries"
}
