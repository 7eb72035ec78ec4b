package sunpos

import (
	"fmt"
	"math"
	"time"
)

// USNO is the "Approximate Solar Coordinates" reduction published by
// the United States Naval Observatory: mean elements as linear
// functions of days from J2000, a two-term equation of center, and
// sidereal time with the equation of the equinoxes. Accuracy is about
// 0.01° between 1950 and 2050.
type USNO struct {
	// DeltaT is TT − UT in seconds. NaN selects the piecewise
	// polynomial estimate for the instant.
	DeltaT float64

	// GMSTOption selects one of the two published Greenwich Mean
	// Sidereal Time formulas, 1 (default) or 2. They approximate the
	// same quantity and agree to roughly 1e-5 degrees, but are
	// bit-distinct.
	GMSTOption int
}

// NewUSNO builds the algorithm. gmstOption must be 1 or 2; anything
// else is rejected before any position is computed.
func NewUSNO(gmstOption int) (*USNO, error) {
	if gmstOption != 1 && gmstOption != 2 {
		return nil, fmt.Errorf("sunpos: USNO gmst option must be 1 or 2, got %d", gmstOption)
	}
	return &USNO{DeltaT: math.NaN(), GMSTOption: gmstOption}, nil
}

// Position computes the true solar position. Orbital elements use
// terrestrial time; sidereal time uses the UT clock.
func (u *USNO) Position(o *Observer, t time.Time) SolPos {
	t = t.UTC()
	deltaT := resolveDeltaT(u.DeltaT, t)

	jd := julianDay(t)
	d := jd + deltaT/86400 - j2000 // TT days from J2000

	meanAnom := wrap360(357.529 + 0.98560028*d)
	meanLong := wrap360(280.459 + 0.98564736*d)

	gRad := meanAnom * toRad
	// apparent ecliptic longitude; the two periodic terms fold in the
	// equation of center and aberration
	eclipticLong := meanLong + 1.915*math.Sin(gRad) + 0.020*math.Sin(2*gRad)
	obliquity := 23.439 - 0.00000036*d

	longRad := eclipticLong * toRad
	obliqRad := obliquity * toRad
	ra := math.Atan2(math.Cos(obliqRad)*math.Sin(longRad), math.Cos(longRad)) * toDeg / 15
	ra = wrap24(ra) // hours
	decl := math.Asin(math.Sin(obliqRad) * math.Sin(longRad))

	gmst := u.gmst(t)

	// nutation in longitude and the equation of the equinoxes, hours
	ut := jd - j2000
	node := (125.04 - 0.052954*ut) * toRad
	nutLong := -0.000319*math.Sin(node) - 0.000024*math.Sin(2*meanLong*toRad)
	eqEquinox := nutLong * math.Cos(obliqRad)
	gast := gmst + eqEquinox

	hourAngle := ((gast-ra)*15 + o.Longitude) * toRad

	sinDecl, cosDecl := math.Sincos(decl)
	cosHA := math.Cos(hourAngle)
	elevation := math.Asin(cosHA*cosDecl*o.cosLat + sinDecl*o.sinLat)
	azimuth := math.Atan2(-math.Sin(hourAngle)*cosDecl,
		sinDecl*o.cosLat-cosDecl*o.sinLat*cosHA)

	elevDeg := elevation * toDeg
	return SolPos{
		Azimuth:   wrap360(azimuth * toDeg),
		Elevation: elevDeg,
		Zenith:    90 - elevDeg,
	}
}

// gmst returns Greenwich Mean Sidereal Time in hours on [0, 24) by the
// selected formula. Both are from the USNO sidereal-time memorandum.
func (u *USNO) gmst(t time.Time) float64 {
	opt := u.GMSTOption
	if opt == 0 {
		opt = 1
	}
	d := julianDay(t) - j2000
	switch opt {
	case 1:
		d0 := julianDay0UT(t) - j2000
		h := dayHours(t)
		century := d / 36525
		return wrap24(6.697374558 + 0.06570982441908*d0 +
			1.00273790935*h + 0.000026*century*century)
	default:
		return wrap24(18.697374558 + 24.06570982441908*d)
	}
}
