package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripku_backend/internals/features/bookings/wallet/model"
	helper "tripku_backend/internals/helpers"
)

type WalletController struct {
	DB *gorm.DB
}

func NewWalletController(db *gorm.DB) *WalletController {
	return &WalletController{DB: db}
}

/* ===================== SALDO ===================== */
// GET /api/u/wallet (role partner)
func (ctrl *WalletController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var wallet model.PartnerWalletModel
	err = ctrl.DB.Where("partner_wallet_user_id = ?", userID).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "OK", fiber.Map{"balance": 0})
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", wallet)
}

/* ===================== LEDGER ===================== */
// GET /api/u/wallet/entries
func (ctrl *WalletController) ListEntries(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var wallet model.PartnerWalletModel
	err = ctrl.DB.Where("partner_wallet_user_id = ?", userID).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "OK", []model.PartnerWalletEntryModel{})
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var entries []model.PartnerWalletEntryModel
	if err := ctrl.DB.
		Where("partner_wallet_entry_wallet_id = ?", wallet.PartnerWalletID).
		Order("partner_wallet_entry_created_at DESC").
		Limit(100).
		Find(&entries).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil ledger")
	}
	return helper.Success(c, "OK", entries)
}
