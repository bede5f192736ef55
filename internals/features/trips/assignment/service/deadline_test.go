package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripku_backend/internals/helpers/dbtime"
)

func TestComputeConfirmationDeadline(t *testing.T) {
	loc := dbtime.JakartaLocation()
	require.NotNil(t, loc)

	date := func(y int, m time.Month, d, hh, mm int) time.Time {
		return time.Date(y, m, d, hh, mm, 0, 0, loc)
	}

	t.Run("trip masih jauh → 22:00 H-1", func(t *testing.T) {
		now := date(2026, time.September, 1, 10, 0)
		tripDate := date(2026, time.September, 10, 0, 0)

		got := ComputeConfirmationDeadline(tripDate, now, loc)
		assert.Equal(t, date(2026, time.September, 9, 22, 0), got)
	})

	t.Run("trip besok, sekarang pagi → 22:00 hari ini", func(t *testing.T) {
		now := date(2026, time.September, 1, 8, 0)
		tripDate := date(2026, time.September, 2, 0, 0)

		got := ComputeConfirmationDeadline(tripDate, now, loc)
		assert.Equal(t, date(2026, time.September, 1, 22, 0), got)
	})

	t.Run("trip hari ini jam 23:00 → 22:00 besok, bukan masa lalu", func(t *testing.T) {
		now := date(2026, time.September, 1, 23, 0)
		tripDate := date(2026, time.September, 1, 0, 0)

		got := ComputeConfirmationDeadline(tripDate, now, loc)
		assert.Equal(t, date(2026, time.September, 2, 22, 0), got)
	})

	t.Run("trip hari ini jam 21:00 → 22:00 hari ini", func(t *testing.T) {
		now := date(2026, time.September, 1, 21, 0)
		tripDate := date(2026, time.September, 1, 0, 0)

		got := ComputeConfirmationDeadline(tripDate, now, loc)
		assert.Equal(t, date(2026, time.September, 1, 22, 0), got)
	})

	t.Run("deadline tidak pernah di masa lalu", func(t *testing.T) {
		nows := []time.Time{
			date(2026, time.September, 1, 0, 0),
			date(2026, time.September, 1, 21, 59),
			date(2026, time.September, 1, 22, 0),
			date(2026, time.September, 1, 23, 59),
		}
		tripDate := date(2026, time.September, 1, 0, 0)
		for _, now := range nows {
			got := ComputeConfirmationDeadline(tripDate, now, loc)
			assert.True(t, got.After(now), "deadline %v harus setelah now %v", got, now)
		}
	})
}
