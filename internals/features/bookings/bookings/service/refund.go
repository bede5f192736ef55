package service

import (
	"math"
	"time"
)

// Kebijakan refund pembatalan, berdasarkan jarak hari ke keberangkatan.
// Band mengikuti syarat & ketentuan produk.
const (
	RefundPercentFar    = 75 // ≥ 30 hari sebelum berangkat
	RefundPercentMid    = 50 // ≥ 14 hari
	RefundPercentNear   = 25 // ≥ 7 hari
	RefundPercentLate   = 0  // < 7 hari: hangus
	RefundFarThreshold  = 30
	RefundMidThreshold  = 14
	RefundNearThreshold = 7
)

// RefundPercent menentukan persentase refund dari selisih hari kalender
// antara saat pembatalan dan tanggal trip.
func RefundPercent(tripDate, cancelledAt time.Time) int {
	days := daysUntil(tripDate, cancelledAt)
	switch {
	case days >= RefundFarThreshold:
		return RefundPercentFar
	case days >= RefundMidThreshold:
		return RefundPercentMid
	case days >= RefundNearThreshold:
		return RefundPercentNear
	default:
		return RefundPercentLate
	}
}

// RefundAmount menghitung nominal refund, dibulatkan ke rupiah terdekat.
func RefundAmount(totalAmount float64, tripDate, cancelledAt time.Time) (float64, int) {
	pct := RefundPercent(tripDate, cancelledAt)
	amount := math.Round(totalAmount * float64(pct) / 100)
	return amount, pct
}

// daysUntil: selisih hari kalender (tanggal ke tanggal, abaikan jam).
func daysUntil(tripDate, from time.Time) int {
	t := time.Date(tripDate.Year(), tripDate.Month(), tripDate.Day(), 0, 0, 0, 0, time.UTC)
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
