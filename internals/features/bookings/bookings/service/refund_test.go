package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefundPercent(t *testing.T) {
	trip := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	day := func(daysBefore int) time.Time {
		return trip.AddDate(0, 0, -daysBefore)
	}

	tests := []struct {
		name        string
		cancelledAt time.Time
		want        int
	}{
		{"45 hari sebelum → 75%", day(45), 75},
		{"tepat 30 hari → 75%", day(30), 75},
		{"29 hari → 50%", day(29), 50},
		{"tepat 14 hari → 50%", day(14), 50},
		{"13 hari → 25%", day(13), 25},
		{"tepat 7 hari → 25%", day(7), 25},
		{"6 hari → hangus", day(6), 0},
		{"hari-H → hangus", day(0), 0},
		{"setelah tanggal trip → hangus", day(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RefundPercent(trip, tt.cancelledAt))
		})
	}
}

func TestRefundPercent_IgnoresClockTime(t *testing.T) {
	// 23:59 di H-7 tetap dihitung 7 hari penuh.
	trip := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	lateEvening := time.Date(2026, time.October, 8, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 25, RefundPercent(trip, lateEvening))
}

func TestRefundAmount(t *testing.T) {
	trip := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	cancelled := trip.AddDate(0, 0, -40)

	amount, pct := RefundAmount(1500000, trip, cancelled)
	assert.Equal(t, 75, pct)
	assert.Equal(t, 1125000.0, amount)

	// pembulatan ke rupiah terdekat
	amount, pct = RefundAmount(999999, trip, trip.AddDate(0, 0, -10))
	assert.Equal(t, 25, pct)
	assert.Equal(t, 250000.0, amount)
}
