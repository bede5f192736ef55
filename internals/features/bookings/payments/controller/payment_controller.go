package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripku_backend/internals/configs"
	bookingModel "tripku_backend/internals/features/bookings/bookings/model"
	"tripku_backend/internals/features/bookings/payments/model"
	"tripku_backend/internals/features/bookings/payments/service"
	walletService "tripku_backend/internals/features/bookings/wallet/service"
	notifService "tripku_backend/internals/features/notifications/service"
	notifModel "tripku_backend/internals/features/notifications/model"
	userModel "tripku_backend/internals/features/users/user/model"
	helper "tripku_backend/internals/helpers"
)

type PaymentController struct {
	DB       *gorm.DB
	Notifier *notifService.Notifier
}

func NewPaymentController(db *gorm.DB, notifier *notifService.Notifier) *PaymentController {
	return &PaymentController{DB: db, Notifier: notifier}
}

/* =======================================================================
   Create Snap Transaction
======================================================================= */
// POST /api/u/bookings/:booking_id/pay
func (ctrl *PaymentController) CreateSnap(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("booking_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Booking ID tidak valid")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var booking bookingModel.BookingModel
	if err := ctrl.DB.
		Where("booking_id = ? AND booking_user_id = ?", bookingID, userID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Booking tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if booking.BookingStatus != bookingModel.BookingStatusPendingPayment {
		return fiber.NewError(fiber.StatusConflict, "Booking tidak menunggu pembayaran")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat user")
	}

	// OrderID unik per percobaan bayar supaya retry setelah expire tetap bisa
	orderID := fmt.Sprintf("%s-%d", booking.BookingCode, time.Now().Unix())

	token, redirectURL, err := service.GenerateSnapToken(orderID, booking, service.CustomerInput{
		Name:  user.UserName,
		Email: user.UserEmail,
	})
	if err != nil {
		log.Printf("[ERROR] Snap token booking %s gagal: %v", booking.BookingCode, err)
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	payment := model.PaymentModel{
		PaymentBookingID:   bookingID,
		PaymentOrderID:     orderID,
		PaymentAmountIDR:   int64(booking.BookingTotalAmount),
		PaymentStatus:      model.PaymentStatusPending,
		PaymentSnapToken:   &token,
		PaymentRedirectURL: &redirectURL,
	}
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan payment")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Transaksi pembayaran dibuat", payment)
}

/* =======================================================================
   Webhook Midtrans
======================================================================= */

type midtransNotif struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
	TransactionID     string `json:"transaction_id"`
}

// POST /api/payments/midtrans/notification (tanpa auth — diverifikasi via signature)
func (ctrl *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	var notif midtransNotif
	if err := c.BodyParser(&notif); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	// Verify signature — SHA512(order_id + status_code + gross_amount + ServerKey)
	want := strings.ToLower(notif.SignatureKey)
	raw := notif.OrderID + notif.StatusCode + notif.GrossAmount + configs.MidtransServer
	if want == "" || sha512sum(raw) != want {
		return fiber.NewError(fiber.StatusUnauthorized, "Signature tidak valid")
	}

	var payment model.PaymentModel
	if err := ctrl.DB.
		Where("payment_order_id = ?", notif.OrderID).
		First(&payment).Error; err != nil {
		// Balas 200 supaya Midtrans berhenti retry untuk order tak dikenal
		log.Printf("[ERROR] Webhook: payment untuk order %s tidak ditemukan", notif.OrderID)
		return c.JSON(fiber.Map{"status": "ignored", "reason": "payment not found"})
	}

	// Idempoten: notifikasi ulang untuk payment final diabaikan
	if payment.PaymentStatus == model.PaymentStatusPaid {
		return c.JSON(fiber.Map{"status": "ok", "note": "already paid"})
	}

	newStatus := mapMidtransStatus(notif)
	now := time.Now()

	updates := map[string]interface{}{
		"payment_status":            newStatus,
		"payment_last_notification": c.Body(),
	}
	if notif.TransactionID != "" {
		updates["payment_gateway_reference"] = notif.TransactionID
	}
	if newStatus == model.PaymentStatusPaid {
		updates["payment_paid_at"] = now
	}
	if err := ctrl.DB.Model(&payment).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update payment")
	}

	if newStatus == model.PaymentStatusPaid {
		if err := ctrl.settleBooking(c, payment, now); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update booking")
		}
	}

	return c.JSON(fiber.Map{
		"status":             "ok",
		"payment_status":     newStatus,
		"transaction_status": notif.TransactionStatus,
	})
}

// settleBooking: booking → paid, kredit margin NTA ke wallet partner (b2b),
// lalu notifikasi best-effort.
func (ctrl *PaymentController) settleBooking(c *fiber.Ctx, payment model.PaymentModel, paidAt time.Time) error {
	var booking bookingModel.BookingModel
	if err := ctrl.DB.
		Where("booking_id = ?", payment.PaymentBookingID).
		First(&booking).Error; err != nil {
		return err
	}
	if booking.BookingStatus == bookingModel.BookingStatusPaid {
		return nil
	}

	if err := ctrl.DB.Model(&booking).
		Update("booking_status", bookingModel.BookingStatusPaid).Error; err != nil {
		return err
	}

	// Margin partner = harga jual − NTA
	if booking.BookingChannel == bookingModel.BookingChannelB2B && booking.BookingNtaAmount != nil {
		margin := booking.BookingTotalAmount - *booking.BookingNtaAmount
		if margin > 0 {
			ref := booking.BookingID
			err := walletService.Credit(c.Context(), ctrl.DB, booking.BookingUserID, margin, &ref,
				fmt.Sprintf("Margin booking %s", booking.BookingCode))
			if err != nil {
				log.Printf("[ERROR] Kredit margin booking %s gagal: %v", booking.BookingCode, err)
			}
		}
	}

	if ctrl.Notifier != nil {
		if err := ctrl.Notifier.NotifyUser(c.Context(), booking.BookingUserID,
			notifModel.NotificationTypePayment,
			"Pembayaran diterima",
			fmt.Sprintf("Pembayaran booking %s sudah kami terima. Sampai jumpa di trip!", booking.BookingCode),
		); err != nil {
			log.Printf("[ERROR] Notifikasi pembayaran booking %s gagal: %v", booking.BookingCode, err)
		}
	}

	log.Printf("[INFO] 💰 Booking %s lunas (%s)", booking.BookingCode, paidAt.Format(time.RFC3339))
	return nil
}

func mapMidtransStatus(n midtransNotif) string {
	switch n.TransactionStatus {
	case "capture":
		if n.FraudStatus == "accept" {
			return model.PaymentStatusPaid
		}
		return model.PaymentStatusPending
	case "settlement":
		return model.PaymentStatusPaid
	case "deny", "failure":
		return model.PaymentStatusFailed
	case "cancel":
		return model.PaymentStatusCanceled
	case "expire":
		return model.PaymentStatusExpired
	default:
		return model.PaymentStatusPending
	}
}

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}
