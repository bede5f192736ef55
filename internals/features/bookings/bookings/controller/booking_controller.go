package controller

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripku_backend/internals/constants"
	"tripku_backend/internals/features/bookings/bookings/dto"
	"tripku_backend/internals/features/bookings/bookings/model"
	"tripku_backend/internals/features/bookings/bookings/service"
	pkgModel "tripku_backend/internals/features/trips/packages/model"
	tripModel "tripku_backend/internals/features/trips/trips/model"
	helper "tripku_backend/internals/helpers"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/u/bookings — customer pakai harga jual, partner (b2b) pakai NTA
func (ctrl *BookingController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Trip ID tidak valid")
	}

	pax := len(req.Passengers)
	isPartner := helper.GetRoleFromToken(c) == constants.RolePartner

	var booking model.BookingModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// Kunci baris trip supaya cek kuota tidak balapan
		var trip tripModel.TripModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("trip_id = ? AND trip_status = ?", tripID, tripModel.TripStatusScheduled).
			First(&trip).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Trip tidak ditemukan atau tidak bisa dibooking")
			}
			return err
		}
		if trip.TripBooked+pax > trip.TripQuota {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Kuota tidak cukup (sisa %d kursi)", trip.TripQuota-trip.TripBooked))
		}

		var pkg pkgModel.TravelPackageModel
		if err := tx.Where("travel_package_id = ?", trip.TripTravelPackageID).First(&pkg).Error; err != nil {
			return err
		}

		unitPrice := pkg.TravelPackagePrice
		channel := model.BookingChannelB2C
		var ntaTotal *float64
		if isPartner && pkg.TravelPackageNtaPrice != nil {
			channel = model.BookingChannelB2B
			nta := *pkg.TravelPackageNtaPrice * float64(pax)
			ntaTotal = &nta
		}

		booking = model.BookingModel{
			BookingCode:        generateBookingCode(),
			BookingTripID:      tripID,
			BookingUserID:      userID,
			BookingChannel:     channel,
			BookingPax:         pax,
			BookingTotalAmount: unitPrice * float64(pax),
			BookingNtaAmount:   ntaTotal,
			BookingStatus:      model.BookingStatusPendingPayment,
		}
		for _, p := range req.Passengers {
			booking.BookingPassengers = append(booking.BookingPassengers, model.BookingPassengerModel{
				BookingPassengerName:  p.Name,
				BookingPassengerPhone: p.Phone,
			})
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		return tx.Model(&trip).
			Update("trip_booked", gorm.Expr("trip_booked + ?", pax)).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Booking dibuat",
		dto.NewBookingResponse(booking))
}

/* ===================== LIST MILIK USER ===================== */
// GET /api/u/bookings
func (ctrl *BookingController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.BookingModel
	if err := ctrl.DB.
		Preload("BookingPassengers").
		Where("booking_user_id = ?", userID).
		Order("booking_created_at DESC").
		Limit(100).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil booking")
	}

	out := make([]dto.BookingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewBookingResponse(r))
	}
	return helper.Success(c, "OK", out)
}

/* ===================== DETAIL ===================== */
// GET /api/u/bookings/:id
func (ctrl *BookingController) GetByID(c *fiber.Ctx) error {
	booking, err := ctrl.loadOwn(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", dto.NewBookingResponse(*booking))
}

/* ===================== CANCEL ===================== */
// POST /api/u/bookings/:id/cancel — refund sesuai band hari sebelum keberangkatan
func (ctrl *BookingController) Cancel(c *fiber.Ctx) error {
	booking, err := ctrl.loadOwn(c)
	if err != nil {
		return err
	}
	if booking.BookingStatus == model.BookingStatusCancelled ||
		booking.BookingStatus == model.BookingStatusRefunded {
		return fiber.NewError(fiber.StatusConflict, "Booking sudah dibatalkan")
	}

	var trip tripModel.TripModel
	if err := ctrl.DB.Where("trip_id = ?", booking.BookingTripID).First(&trip).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat trip")
	}

	now := time.Now()
	amount, pct := service.RefundAmount(booking.BookingTotalAmount, trip.TripDate, now)

	// Belum bayar → cukup cancel tanpa refund
	if booking.BookingStatus == model.BookingStatusPendingPayment {
		amount, pct = 0, 0
	}

	newStatus := model.BookingStatusCancelled
	if amount > 0 {
		newStatus = model.BookingStatusRefunded
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(booking).Updates(map[string]interface{}{
			"booking_status":         newStatus,
			"booking_refund_amount":  amount,
			"booking_refund_percent": pct,
			"booking_cancelled_at":   now,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&trip).
			Update("trip_booked", gorm.Expr("GREATEST(trip_booked - ?, 0)", booking.BookingPax)).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membatalkan booking")
	}

	booking.BookingStatus = newStatus
	booking.BookingRefundAmount = &amount
	booking.BookingRefundPercent = &pct
	booking.BookingCancelledAt = &now
	return helper.Success(c, "Booking dibatalkan", dto.NewBookingResponse(*booking))
}

/* ===================== BOARDING (MANIFEST) ===================== */
// PATCH /api/g/passengers/:id/board — guide menandai penumpang naik
func (ctrl *BookingController) BoardPassenger(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var p model.BookingPassengerModel
	if err := ctrl.DB.Where("booking_passenger_id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Penumpang tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if p.BookingPassengerIsBoarded {
		return fiber.NewError(fiber.StatusConflict, "Penumpang sudah naik")
	}

	now := time.Now()
	if err := ctrl.DB.Model(&p).Updates(map[string]interface{}{
		"booking_passenger_is_boarded": true,
		"booking_passenger_boarded_at": now,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update boarding")
	}

	p.BookingPassengerIsBoarded = true
	p.BookingPassengerBoardedAt = &now
	return helper.Success(c, "Penumpang naik", p)
}

func (ctrl *BookingController) loadOwn(c *fiber.Ctx) (*model.BookingModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	var booking model.BookingModel
	if err := ctrl.DB.
		Preload("BookingPassengers").
		Where("booking_id = ? AND booking_user_id = ?", id, userID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Booking tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &booking, nil
}

// generateBookingCode: TRK-XXXXXXXX (hex acak)
func generateBookingCode() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return fmt.Sprintf("TRK-%X", b)
}
