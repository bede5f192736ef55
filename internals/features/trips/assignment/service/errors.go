package service

import "errors"

var (
	// Trip target tidak ada (atau sudah dihapus)
	ErrTripNotFound = errors.New("trip tidak ditemukan")
	// Sudah ada penugasan hidup untuk trip ini
	ErrAlreadyAssigned = errors.New("trip sudah memiliki guide")
	// Roster guide kosong sama sekali
	ErrNoGuidesAvailable = errors.New("tidak ada guide terdaftar")
	// Roster ada tapi tidak satu pun lolos filter standby
	ErrNoSuitableGuide = errors.New("tidak ada guide yang cocok")
)
