package sunpos

import (
	"math"
	"time"
)

// NOAA is the algorithm behind the NOAA Solar Calculator
// (gml.noaa.gov/grad/solcalc/), a compact Meeus-style reduction:
// Julian century, Earth's mean orbital elements, equation of center,
// apparent longitude with the ascending-node nutation correction,
// declination, and an equation-of-time series in tan(obliquity/2).
// The historical NOAA convention pairs it with the Hughes refraction
// model at 10 °C; here refraction is a separate composition step.
type NOAA struct {
	// DeltaT is TT − UT in seconds. NaN selects the piecewise
	// polynomial estimate for the instant.
	DeltaT float64
}

// NewNOAA returns the algorithm with ΔT estimated automatically.
func NewNOAA() *NOAA {
	return &NOAA{DeltaT: math.NaN()}
}

// Position computes the true solar position. Orbital elements are
// evaluated in terrestrial time (UT + ΔT); the true-solar-time/hour
// angle step uses the civil UTC clock.
func (n *NOAA) Position(o *Observer, t time.Time) SolPos {
	t = t.UTC()
	deltaT := resolveDeltaT(n.DeltaT, t)

	jd := julianDay(t)
	jc := (jd + deltaT/86400 - j2000) / 36525

	meanLong := wrap360(280.46646 + jc*(36000.76983+jc*0.0003032))
	meanAnom := 357.52911 + jc*(35999.05029-jc*0.0001537)
	eccent := 0.016708634 - jc*(0.000042037+jc*0.0000001267)

	mRad := meanAnom * toRad
	center := math.Sin(mRad)*(1.914602-jc*(0.004817+jc*0.000014)) +
		math.Sin(2*mRad)*(0.019993-jc*0.000101) +
		math.Sin(3*mRad)*0.000289

	trueLong := meanLong + center
	omega := 125.04 - 1934.136*jc
	appLong := trueLong - 0.00569 - 0.00478*math.Sin(omega*toRad)

	meanObliq := 23 + (26+(21.448-jc*(46.815+jc*(0.00059-jc*0.001813)))/60)/60
	obliq := meanObliq + 0.00256*math.Cos(omega*toRad)

	obliqRad := obliq * toRad
	appLongRad := appLong * toRad
	decl := math.Asin(math.Sin(obliqRad) * math.Sin(appLongRad))

	// equation of time, minutes
	y := math.Tan(obliqRad / 2)
	y *= y
	l0Rad := meanLong * toRad
	eqTime := 4 * toDeg * (y*math.Sin(2*l0Rad) - 2*eccent*math.Sin(mRad) +
		4*eccent*y*math.Sin(mRad)*math.Cos(2*l0Rad) -
		0.5*y*y*math.Sin(4*l0Rad) - 1.25*eccent*eccent*math.Sin(2*mRad))

	// true solar time in minutes, then the hour angle
	trueSolarTime := math.Mod(dayHours(t)*60+eqTime+4*o.Longitude, 1440)
	if trueSolarTime < 0 {
		trueSolarTime += 1440
	}
	hourAngle := trueSolarTime/4 - 180
	if trueSolarTime/4 < 0 {
		hourAngle = trueSolarTime/4 + 180
	}

	haRad := hourAngle * toRad
	cosZenith := o.sinLat*math.Sin(decl) + o.cosLat*math.Cos(decl)*math.Cos(haRad)
	if cosZenith > 1 {
		cosZenith = 1
	} else if cosZenith < -1 {
		cosZenith = -1
	}
	zenith := math.Acos(cosZenith) * toDeg

	// quadrant-aware azimuth; the arccos branch depends on the sign
	// of the hour angle
	zenRad := zenith * toRad
	acosArg := (o.sinLat*math.Cos(zenRad) - math.Sin(decl)) / (o.cosLat * math.Sin(zenRad))
	if acosArg > 1 {
		acosArg = 1
	} else if acosArg < -1 {
		acosArg = -1
	}
	var azimuth float64
	if hourAngle > 0 {
		azimuth = wrap360(math.Acos(acosArg)*toDeg + 180)
	} else {
		azimuth = wrap360(540 - math.Acos(acosArg)*toDeg)
	}

	return SolPos{
		Azimuth:   azimuth,
		Elevation: 90 - zenith,
		Zenith:    zenith,
	}
}
