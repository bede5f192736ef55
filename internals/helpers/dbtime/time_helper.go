// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Nama locals mengikuti yg di-set di middleware Auth
const (
	LocTripTimezone = "trip_timezone" // string, misal "Asia/Jakarta"
	LocTripLoc      = "trip_loc"      // *time.Location
)

// JakartaLocation: timezone operasional default (semua trip domestik).
// Fallback ke UTC+7 fixed kalau tzdata tidak tersedia di image.
func JakartaLocation() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*3600)
}

// Ambil *time.Location berdasarkan token:
// 1) Prioritas: c.Locals("trip_loc") yang diisi middleware
// 2) Kalau belum ada: coba baca "trip_timezone" (string) lalu LoadLocation
// 3) Fallback: Asia/Jakarta
func GetTripLocation(c *fiber.Ctx) *time.Location {
	if c == nil {
		return JakartaLocation()
	}

	// 1) Kalau middleware sudah set "trip_loc"
	if v := c.Locals(LocTripLoc); v != nil {
		if loc, ok := v.(*time.Location); ok && loc != nil {
			return loc
		}
	}

	// 2) Kalau cuma punya "trip_timezone" (string)
	if v := c.Locals(LocTripTimezone); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			s = strings.TrimSpace(s)
			if loc, err := time.LoadLocation(s); err == nil {
				// cache ke locals biar next call lebih murah
				c.Locals(LocTripLoc, loc)
				return loc
			}
		}
	}

	// 3) Fallback
	loc := JakartaLocation()
	c.Locals(LocTripLoc, loc)
	return loc
}

// ToTripTime mengonversi waktu (biasanya dari DB = UTC) ke timezone trip.
// Kalau t.IsZero() → dikembalikan apa adanya.
func ToTripTime(c *fiber.Ctx, t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	loc := GetTripLocation(c)
	if loc == nil {
		return t
	}
	return t.In(loc)
}

// Versi pointer, biar gampang dipakai di DTO yg pakai *time.Time
func ToTripTimePtr(c *fiber.Ctx, t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := ToTripTime(c, *t)
	return &v
}

// Helper kecil untuk "sekarang di timezone trip"
func NowInTrip(c *fiber.Ctx) time.Time {
	return time.Now().In(GetTripLocation(c))
}
