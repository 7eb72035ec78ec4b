package sunpos

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	toRad = math.Pi / 180
	toDeg = 180 / math.Pi

	// j2000 is the Julian Date of the J2000.0 epoch, 2000-01-01T12:00 TT.
	j2000 = 2451545.0
)

// reg wraps an angle in radians onto [0, 2π).
func reg(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// wrap360 wraps an angle in degrees onto [0, 360).
func wrap360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// wrap24 wraps a time-like quantity in hours onto [0, 24).
func wrap24(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

// dayHours returns the fractional UTC hour of day, 0 ≤ h < 24.
func dayHours(t time.Time) float64 {
	t = t.UTC()
	return float64(t.Hour()) + float64(t.Minute())/60 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600
}

// julianDay returns the Julian Date of t.
func julianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// julianDay0UT returns the Julian Date of the preceding 0h UT.
func julianDay0UT(t time.Time) float64 {
	return math.Floor(julianDay(t)-0.5) + 0.5
}

// daysInMonth returns the calendar length of the given month.
func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
