package sunpos

import (
	"math"
	"time"
)

// SPA is the NREL Solar Position Algorithm (Reda & Andreas 2008),
// uncertainty ±0.0003° over the years −2000 to 6000. It is the only
// algorithm here that computes a topocentric position with parallax,
// and the only one that carries its own refraction correction, so it
// always produces the full result shape.
type SPA struct {
	// DeltaT is TT − UT in seconds. NaN selects the piecewise
	// polynomial estimate for the instant.
	DeltaT float64

	// Pressure is annual average local pressure in pascals and
	// Temperature the annual average temperature in °C; both feed only
	// the refraction correction.
	Pressure    float64
	Temperature float64

	// AtmosRefract is the refraction at sunrise/sunset in degrees. The
	// correction is applied while the true elevation is above
	// −(0.26667 + AtmosRefract) and is zero below it.
	AtmosRefract float64
}

// NewSPA returns SPA with ΔT estimated automatically and the standard
// atmosphere: 101325 Pa, 12 °C, 0.5667° horizon refraction.
func NewSPA() *SPA {
	return &SPA{
		DeltaT:       math.NaN(),
		Pressure:     101325,
		Temperature:  12,
		AtmosRefract: 0.5667,
	}
}

// Position computes the topocentric true position, satisfying
// Positioner. The refraction fields do not influence it.
func (s *SPA) Position(o *Observer, t time.Time) SolPos {
	return s.FullPosition(o, t).SolPos
}

// FullPosition runs the complete reduction: heliocentric position from
// the periodic-term series, nutation, true obliquity, aberration,
// apparent sidereal time, geocentric right ascension and declination,
// topocentric parallax, refraction and the equation of time.
func (s *SPA) FullPosition(o *Observer, t time.Time) SPASolPos {
	t = t.UTC()
	deltaT := resolveDeltaT(s.DeltaT, t)

	jd := julianDay(t)
	jde := jd + deltaT/86400
	jc := (jd - j2000) / 36525
	jce := (jde - j2000) / 36525
	jme := jce / 10

	helioLong := wrap360(spaSeries(spaL[:], jme) * toDeg)
	helioLat := spaSeries(spaB[:], jme) * toDeg
	radius := spaSeries(spaR[:], jme) // AU

	geoLong := wrap360(helioLong + 180)
	geoLat := -helioLat

	deltaPsi, deltaEps := spaNutationAngles(jce)

	// true obliquity of the ecliptic, degrees
	u := jme / 10
	eps0 := 84381.448 + u*(-4680.93+u*(-1.55+u*(1999.25+u*(-51.38+
		u*(-249.67+u*(-39.05+u*(7.12+u*(27.87+u*(5.79+u*2.45)))))))))
	obliquity := eps0/3600 + deltaEps
	obliqRad := obliquity * toRad

	aberration := -20.4898 / (3600 * radius)
	apparentLong := geoLong + deltaPsi + aberration

	// apparent sidereal time at Greenwich, degrees
	nu0 := wrap360(280.46061837 + 360.98564736629*(jd-j2000) +
		jc*jc*(0.000387933-jc/38710000))
	nu := nu0 + deltaPsi*math.Cos(obliqRad)

	lambdaRad := apparentLong * toRad
	betaRad := geoLat * toRad
	sinLambda := math.Sin(lambdaRad)
	ra := wrap360(math.Atan2(sinLambda*math.Cos(obliqRad)-
		math.Tan(betaRad)*math.Sin(obliqRad), math.Cos(lambdaRad)) * toDeg)
	decl := math.Asin(math.Sin(betaRad)*math.Cos(obliqRad) +
		math.Cos(betaRad)*math.Sin(obliqRad)*sinLambda)

	hourAngle := wrap360(nu + o.Longitude - ra)
	haRad := hourAngle * toRad

	// topocentric parallax (equatorial horizontal parallax ξ plus the
	// observer terms precomputed in NewObserver)
	xi := 8.794 / (3600 * radius) * toRad
	sinXi := math.Sin(xi)
	sinDecl, cosDecl := math.Sincos(decl)
	sinHA, cosHA := math.Sincos(haRad)
	deltaAlpha := math.Atan2(-o.spaX*sinXi*sinHA, cosDecl-o.spaX*sinXi*cosHA)
	topoDecl := math.Atan2((sinDecl-o.spaY*sinXi)*math.Cos(deltaAlpha),
		cosDecl-o.spaX*sinXi*cosHA)
	topoHA := haRad - deltaAlpha

	sinTopoDecl, cosTopoDecl := math.Sincos(topoDecl)
	sinTopoHA, cosTopoHA := math.Sincos(topoHA)
	elevation := math.Asin(o.sinLat*sinTopoDecl+
		o.cosLat*cosTopoDecl*cosTopoHA) * toDeg

	refraction := s.refraction(elevation)

	azimuth := wrap360(math.Atan2(sinTopoHA,
		cosTopoHA*o.sinLat-math.Tan(topoDecl)*o.cosLat)*toDeg + 180)

	// equation of time, minutes
	meanLong := wrap360(280.4664567 + jme*(360007.6982779+jme*(0.03032028+
		jme*(1.0/49931+jme*(-1.0/15300+jme*(-1.0/2000000))))))
	eqTime := 4 * (meanLong - 0.0057183 - ra + deltaPsi*math.Cos(obliqRad))
	if eqTime > 20 {
		eqTime -= 1440
	} else if eqTime < -20 {
		eqTime += 1440
	}

	apparent := elevation + refraction
	return SPASolPos{
		ApparentSolPos: ApparentSolPos{
			SolPos: SolPos{
				Azimuth:   azimuth,
				Elevation: elevation,
				Zenith:    90 - elevation,
			},
			ApparentElevation: apparent,
			ApparentZenith:    90 - apparent,
		},
		EquationOfTime: eqTime,
	}
}

// refraction applies the report's own correction step; it is the
// standalone SPARefraction model with this SPA's atmosphere.
func (s *SPA) refraction(elevation float64) float64 {
	r := SPARefraction{
		Pressure:        s.Pressure,
		Temperature:     s.Temperature,
		RefractionLimit: s.AtmosRefract,
	}
	return r.Correction(elevation)
}

// result adapts FullPosition to the Result union for SolarPosition.
func (s *SPA) result(o *Observer, t time.Time) Result {
	full := s.FullPosition(o, t)
	return Result{
		Kind:              KindSPA,
		SolPos:            full.SolPos,
		ApparentElevation: full.ApparentElevation,
		ApparentZenith:    full.ApparentZenith,
		EquationOfTime:    full.EquationOfTime,
	}
}

// spaSeries evaluates one of the L/B/R tables: each order i sums
// A·cos(B + C·JME) and the orders combine as a polynomial in JME,
// scaled by 1e-8. L and B come out in radians, R in AU.
func spaSeries(orders [][][3]float64, jme float64) float64 {
	var sum, pow float64
	pow = 1
	for _, terms := range orders {
		var order float64
		for _, t := range terms {
			order += t[0] * math.Cos(t[1]+t[2]*jme)
		}
		sum += order * pow
		pow *= jme
	}
	return sum / 1e8
}

// spaNutationAngles returns nutation in longitude and in obliquity,
// both in degrees, from the 63-term IAU 1980 series.
func spaNutationAngles(jce float64) (deltaPsi, deltaEps float64) {
	x := [5]float64{
		// mean elongation of the moon from the sun
		297.85036 + jce*(445267.111480+jce*(-0.0019142+jce/189474)),
		// mean anomaly of the sun
		357.52772 + jce*(35999.050340+jce*(-0.0001603-jce/300000)),
		// mean anomaly of the moon
		134.96298 + jce*(477198.867398+jce*(0.0086972+jce/56250)),
		// moon's argument of latitude
		93.27191 + jce*(483202.017538+jce*(-0.0036825+jce/327270)),
		// longitude of the moon's ascending node
		125.04452 + jce*(-1934.136261+jce*(0.0020708+jce/450000)),
	}
	for _, term := range spaNutation {
		var arg float64
		for j, y := range term.y {
			arg += x[j] * y
		}
		argRad := arg * toRad
		deltaPsi += (term.a + term.b*jce) * math.Sin(argRad)
		deltaEps += (term.c + term.d*jce) * math.Cos(argRad)
	}
	deltaPsi /= 36000000
	deltaEps /= 36000000
	return deltaPsi, deltaEps
}
