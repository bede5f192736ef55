package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingCtrl "tripku_backend/internals/features/bookings/bookings/controller"
	paymentCtrl "tripku_backend/internals/features/bookings/payments/controller"
	walletCtrl "tripku_backend/internals/features/bookings/wallet/controller"
	notifService "tripku_backend/internals/features/notifications/service"
	middlewares "tripku_backend/internals/middlewares"
)

// BookingUserRoutes: booking, pembayaran, dan wallet untuk user login
func BookingUserRoutes(u fiber.Router, db *gorm.DB) {
	bc := bookingCtrl.NewBookingController(db)
	pc := paymentCtrl.NewPaymentController(db, notifService.NewNotifier(db))
	wc := walletCtrl.NewWalletController(db)

	u.Post("/bookings", middlewares.BookingRateLimiter(), bc.Create)
	u.Get("/bookings", bc.ListMine)
	u.Get("/bookings/:id", bc.GetByID)
	u.Post("/bookings/:id/cancel", bc.Cancel)
	u.Post("/bookings/:booking_id/pay", pc.CreateSnap)

	u.Get("/wallet", wc.GetMine)
	u.Get("/wallet/entries", wc.ListEntries)
}

// BookingGuideRoutes: manifest boarding oleh guide
func BookingGuideRoutes(g fiber.Router, db *gorm.DB) {
	bc := bookingCtrl.NewBookingController(db)

	g.Patch("/passengers/:id/board", bc.BoardPassenger)
}

// BookingWebhookRoutes: endpoint publik untuk notifikasi gateway.
// Path-nya masuk daftar skip auth middleware — verifikasi lewat signature.
func BookingWebhookRoutes(app fiber.Router, db *gorm.DB) {
	pc := paymentCtrl.NewPaymentController(db, notifService.NewNotifier(db))

	app.Post("/api/payments/midtrans/notification", pc.MidtransWebhook)
}
