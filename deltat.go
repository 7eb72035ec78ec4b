package sunpos

import (
	"log"
	"math"
	"time"
)

// ΔT, the difference TT − UT in seconds, estimated from the piecewise
// polynomial fits of Espenak & Meeus, "Five Millennium Canon of Solar
// Eclipses" (the same fits NREL's SPA documentation points at). Each
// year range owns a polynomial in a range-local variable; the ranges
// partition the whole real line, and the leading/trailing parabola in
// (y-1820)/100 extrapolates indefinitely.

// The fits were made for this span of years. Outside it the
// extrapolation still returns a number, with a warning.
const (
	deltaTMinYear = -1999
	deltaTMaxYear = 3000
)

// DeltaT estimates TT − UT in seconds for the given year and month.
// Both arguments may be fractional; the effective epoch is
// year + (month − 0.5)/12. The result is always finite: outside
// [-1999, 3000] the asymptotic formula is used and a warning is logged.
func DeltaT(year, month float64) float64 {
	y := year + (month-0.5)/12

	if y < deltaTMinYear || y > deltaTMaxYear {
		log.Printf("sunpos: ΔT is undefined outside years [%d, %d]; extrapolating for %.1f", deltaTMinYear, deltaTMaxYear, y)
	}

	switch {
	case y < -500:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	case y < 500:
		u := y / 100
		return 10583.6 + u*(-1014.41+u*(33.78311+u*(-5.952053+
			u*(-0.1798452+u*(0.022174192+u*0.0090316521)))))
	case y < 1600:
		u := (y - 1000) / 100
		return 1574.2 + u*(-556.01+u*(71.23472+u*(0.319781+
			u*(-0.8503463+u*(-0.005050998+u*0.0083572073)))))
	case y < 1700:
		t := y - 1600
		return 120 + t*(-0.9808+t*(-0.01532+t/7129))
	case y < 1800:
		t := y - 1700
		return 8.83 + t*(0.1603+t*(-0.0059285+t*(0.00013336-t/1174000)))
	case y < 1860:
		t := y - 1800
		return 13.72 + t*(-0.332447+t*(0.0068612+t*(0.0041116+
			t*(-0.00037436+t*(0.0000121272+t*(-0.0000001699+t*0.000000000875))))))
	case y < 1900:
		t := y - 1860
		return 7.62 + t*(0.5737+t*(-0.251754+t*(0.01680668+
			t*(-0.0004473624+t/233174))))
	case y < 1920:
		t := y - 1900
		return -2.79 + t*(1.494119+t*(-0.0598939+t*(0.0061966-t*0.000197)))
	case y < 1941:
		t := y - 1920
		return 21.20 + t*(0.84493+t*(-0.076100+t*0.0020936))
	case y < 1961:
		t := y - 1950
		return 29.07 + t*(0.407+t*(-1.0/233+t/2547))
	case y < 1986:
		t := y - 1975
		return 45.45 + t*(1.067+t*(-1.0/260-t/718))
	case y < 2005:
		t := y - 2000
		return 63.86 + t*(0.3345+t*(-0.060374+t*(0.0017275+
			t*(0.000651814+t*0.00002373599))))
	case y < 2050:
		t := y - 2000
		return 62.92 + t*(0.32217+t*0.005589)
	case y < 2150:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}
}

// DeltaTForDate estimates ΔT for a calendar date. The fractional month
// is interpolated linearly from the day of month, so ΔT varies smoothly
// within a month.
func DeltaTForDate(year int, month time.Month, day int) float64 {
	frac := float64(day) / float64(daysInMonth(year, month))
	return DeltaT(float64(year), float64(month)+frac)
}

// DeltaTAt estimates ΔT for an instant, converting to UTC first.
func DeltaTAt(t time.Time) float64 {
	t = t.UTC()
	return DeltaTForDate(t.Year(), t.Month(), t.Day())
}

// resolveDeltaT maps the NaN "auto" sentinel to the estimate for t.
func resolveDeltaT(dt float64, t time.Time) float64 {
	if math.IsNaN(dt) {
		return DeltaTAt(t)
	}
	return dt
}
