package sunpos

import (
	"math"
	"time"
)

// Walraven is the algorithm of R. Walraven, "Calculating the position
// of the sun", Solar Energy 20 (1978) 393, including the quadrant
// correction published in the 1989 erratum. It keeps two legacy
// conventions from the original listing that must not be "cleaned up":
// the day count from the 1980 epoch with truncating integer division
// and ±1-day leap corrections, and a negated (west-positive) longitude.
// It has no parameters.
type Walraven struct{}

// Position computes the true solar position.
func (Walraven) Position(o *Observer, t time.Time) SolPos {
	t = t.UTC()
	hours := dayHours(t)

	// day count from 1980-01-01; integer division truncates toward
	// zero as in the original FORTRAN
	delta := t.Year() - 1980
	leap := delta / 4
	days := float64(delta*365+leap+t.YearDay()-1) + hours/24
	if delta == leap*4 {
		days--
	}
	if delta < 0 && delta != leap*4 {
		days--
	}

	// orbital elements, all in radians
	angle := 2 * math.Pi * days / 365.25
	meanAnom := -0.031271 - 4.53963e-7*days + angle
	eclipticLong := 4.900968 + 3.67474e-7*days +
		(0.033434-2.3e-9*days)*math.Sin(meanAnom) +
		0.000349*math.Sin(2*meanAnom) + angle
	obliquity := 0.409140 - 6.2149e-9*days

	sinLong := math.Sin(eclipticLong)
	ra := reg(math.Atan2(sinLong*math.Cos(obliquity), math.Cos(eclipticLong)))
	decl := math.Asin(sinLong * math.Sin(obliquity))

	// sidereal time; days already carries the fractional day, so the
	// hour term adds the solar clock angle only
	sidereal := 1.759335 + 2*math.Pi*(days/365.25-float64(delta)) + 3.694e-7*days
	if sidereal >= 2*math.Pi {
		sidereal -= 2 * math.Pi
	}

	// negated longitude, the historical west-positive convention
	lonWest := -o.Longitude * toRad

	localSidereal := sidereal - lonWest + hours*(math.Pi/12)
	if localSidereal >= 2*math.Pi {
		localSidereal -= 2 * math.Pi
	}

	// note the reversed sense: RA minus sidereal
	hourAngle := ra - localSidereal

	sinDecl, cosDecl := math.Sincos(decl)
	elevation := math.Asin(o.sinLat*sinDecl + o.cosLat*cosDecl*math.Cos(hourAngle))

	azimuth := math.Asin(cosDecl * math.Sin(hourAngle) / math.Cos(elevation))

	// 1989 quadrant correction; the sign of this term is the sign of
	// the azimuth's cosine
	critical := sinDecl - math.Sin(elevation)*o.sinLat
	switch {
	case critical >= 0 && math.Sin(azimuth) < 0:
		azimuth += 2 * math.Pi
	case critical < 0:
		azimuth = math.Pi - azimuth
	}

	elevDeg := elevation * toDeg
	return SolPos{
		Azimuth:   azimuth * toDeg,
		Elevation: elevDeg,
		Zenith:    90 - elevDeg,
	}
}
