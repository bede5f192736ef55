package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripku_backend/internals/features/bookings/wallet/model"
)

var ErrInsufficientBalance = errors.New("saldo wallet tidak cukup")

// Credit menambah saldo wallet partner (buat wallet kalau belum ada) dan
// mencatat baris ledger. Jalan di dalam transaksi supaya saldo & ledger konsisten.
func Credit(ctx context.Context, db *gorm.DB, userID uuid.UUID, amount float64, reference *uuid.UUID, note string) error {
	if amount <= 0 {
		return errors.New("nominal credit harus positif")
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wallet, err := lockWallet(tx, userID, true)
		if err != nil {
			return err
		}

		newBalance := wallet.PartnerWalletBalance + amount
		if err := tx.Model(wallet).
			Update("partner_wallet_balance", newBalance).Error; err != nil {
			return fmt.Errorf("update saldo: %w", err)
		}

		entry := model.PartnerWalletEntryModel{
			PartnerWalletEntryWalletID:     wallet.PartnerWalletID,
			PartnerWalletEntryType:         model.WalletEntryTypeCredit,
			PartnerWalletEntryAmount:       amount,
			PartnerWalletEntryBalanceAfter: newBalance,
			PartnerWalletEntryReference:    reference,
			PartnerWalletEntryNote:         note,
		}
		return tx.Create(&entry).Error
	})
}

// Debit mengurangi saldo; gagal dengan ErrInsufficientBalance kalau tidak cukup.
func Debit(ctx context.Context, db *gorm.DB, userID uuid.UUID, amount float64, reference *uuid.UUID, note string) error {
	if amount <= 0 {
		return errors.New("nominal debit harus positif")
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wallet, err := lockWallet(tx, userID, false)
		if err != nil {
			return err
		}
		if wallet.PartnerWalletBalance < amount {
			return ErrInsufficientBalance
		}

		newBalance := wallet.PartnerWalletBalance - amount
		if err := tx.Model(wallet).
			Update("partner_wallet_balance", newBalance).Error; err != nil {
			return fmt.Errorf("update saldo: %w", err)
		}

		entry := model.PartnerWalletEntryModel{
			PartnerWalletEntryWalletID:     wallet.PartnerWalletID,
			PartnerWalletEntryType:         model.WalletEntryTypeDebit,
			PartnerWalletEntryAmount:       amount,
			PartnerWalletEntryBalanceAfter: newBalance,
			PartnerWalletEntryReference:    reference,
			PartnerWalletEntryNote:         note,
		}
		return tx.Create(&entry).Error
	})
}

// lockWallet mengunci baris wallet (FOR UPDATE); createIfMissing membuatkan
// wallet kosong untuk partner yang belum pernah bertransaksi.
func lockWallet(tx *gorm.DB, userID uuid.UUID, createIfMissing bool) (*model.PartnerWalletModel, error) {
	var wallet model.PartnerWalletModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("partner_wallet_user_id = ?", userID).
		First(&wallet).Error
	if err == nil {
		return &wallet, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("muat wallet: %w", err)
	}
	if !createIfMissing {
		return nil, ErrInsufficientBalance
	}

	wallet = model.PartnerWalletModel{PartnerWalletUserID: userID}
	if err := tx.Create(&wallet).Error; err != nil {
		return nil, fmt.Errorf("buat wallet: %w", err)
	}
	return &wallet, nil
}
