package service

import (
	"errors"
	"os"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	bookingModel "tripku_backend/internals/features/bookings/bookings/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans dipanggil sekali saat bootstrap. MIDTRANS_ENV=production
// memakai endpoint production, selain itu Sandbox.
func InitMidtrans(serverKey string) {
	if os.Getenv("MIDTRANS_ENV") == "production" {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

/* =========================================================
   Generate Snap Token
========================================================= */

// GenerateSnapToken membuat transaksi Snap untuk satu booking.
// orderID dipakai sebagai OrderID Midtrans; amount dalam rupiah bulat.
func GenerateSnapToken(orderID string, booking bookingModel.BookingModel, cust CustomerInput) (string, string, error) {
	amount := int64(booking.BookingTotalAmount)
	if amount <= 0 {
		return "", "", errors.New("nominal pembayaran tidak valid")
	}
	if orderID == "" {
		return "", "", errors.New("order id wajib diisi")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		// Satu line item supaya total item selalu = gross amount
		Items: &[]midtrans.ItemDetails{
			{
				ID:       booking.BookingCode,
				Price:    amount,
				Qty:      1,
				Name:     "Trip " + booking.BookingCode,
				Category: "TRIP",
			},
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
