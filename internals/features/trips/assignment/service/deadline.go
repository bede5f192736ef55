package service

import "time"

// Jam batas konfirmasi penugasan (22:00 waktu lokal trip)
const ConfirmDeadlineHour = 22

// ComputeConfirmationDeadline: 22:00 sehari sebelum tanggal trip.
// Kalau titik itu sudah lewat (trip hari ini / besok), geser ke 22:00
// terdekat berikutnya — deadline tidak pernah lahir dalam keadaan expired.
func ComputeConfirmationDeadline(tripDate, now time.Time, loc *time.Location) time.Time {
	now = now.In(loc)

	dayBefore := tripDate.In(loc).AddDate(0, 0, -1)
	deadline := time.Date(dayBefore.Year(), dayBefore.Month(), dayBefore.Day(),
		ConfirmDeadlineHour, 0, 0, 0, loc)

	if deadline.After(now) {
		return deadline
	}

	// Floor ke 22:00 berikutnya: hari ini kalau belum lewat jam 22, besok kalau sudah.
	next := time.Date(now.Year(), now.Month(), now.Day(),
		ConfirmDeadlineHour, 0, 0, 0, loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
