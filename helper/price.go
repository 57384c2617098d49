package helper

import (
	"math"
	"time"
)

// Nights returns the stay length in nights, rounding partial days up.
// Check-out on or before check-in is zero nights.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

// TotalPrice is the derived reservation total: nights × nightly price.
func TotalPrice(checkIn, checkOut time.Time, pricePerNight float64) float64 {
	return float64(Nights(checkIn, checkOut)) * pricePerNight
}
