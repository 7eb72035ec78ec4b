package sunpos

import (
	"fmt"
	"math"
	"time"
)

// PSA is the Plataforma Solar de Almería algorithm: Blanco-Muriel,
// Alarcón-Padilla, López-Moratalla & Lara-Coira, "Computing the solar
// vector", Solar Energy 70 (2001), with the refitted coefficients from
// Blanco, Gabaldón-Castillo & Hernández (2020). Claimed accuracy is
// ±0.01° for the 2001 fit (valid 1999–2015) and ±0.0083° for the 2020
// fit (valid 2020–2050).
type PSA struct {
	// CoefficientYear selects the fit, 2001 or 2020.
	CoefficientYear int

	c psaCoefficients
}

type psaCoefficients struct {
	omega     [2]float64 // longitude of ascending lunar node
	meanLong  [2]float64
	meanAnom  [2]float64
	ecliptic  [4]float64 // sin M, sin 2M, constant, sin omega
	obliquity [3]float64
	gmst      [2]float64
}

var psa2001 = psaCoefficients{
	omega:     [2]float64{2.1429, -0.0010394594},
	meanLong:  [2]float64{4.8950630, 0.017202791698},
	meanAnom:  [2]float64{6.2400600, 0.0172019699},
	ecliptic:  [4]float64{0.03341607, 0.00034894, 0.0001134, 0.0000203},
	obliquity: [3]float64{0.4090928, -6.2140e-9, 0.0000396},
	gmst:      [2]float64{6.6974243242, 0.0657098283},
}

var psa2020 = psaCoefficients{
	omega:     [2]float64{2.267127827, -9.300339267e-4},
	meanLong:  [2]float64{4.895036035, 1.720279602e-2},
	meanAnom:  [2]float64{6.239468336, 1.720200135e-2},
	ecliptic:  [4]float64{3.338320972e-2, 3.497596876e-4, 1.132296e-4, 2.0054e-5},
	obliquity: [3]float64{4.090904909e-1, -6.213605399e-9, 4.418094944e-5},
	gmst:      [2]float64{6.697096103, 6.570984737e-2},
}

// PSA's parallax correction constants, kilometres.
const (
	earthMeanRadius  = 6371.01
	astronomicalUnit = 149597890
)

// NewPSA builds a PSA algorithm with the given coefficient fit year.
// Only 2001 and 2020 exist; anything else is a configuration error.
func NewPSA(coefficientYear int) (*PSA, error) {
	switch coefficientYear {
	case 2001:
		return &PSA{CoefficientYear: 2001, c: psa2001}, nil
	case 2020:
		return &PSA{CoefficientYear: 2020, c: psa2020}, nil
	default:
		return nil, fmt.Errorf("sunpos: no PSA coefficient set for year %d (have 2001, 2020)", coefficientYear)
	}
}

// DefaultPSA returns PSA with the 2020 coefficients, the package-wide
// default algorithm.
func DefaultPSA() *PSA {
	return &PSA{CoefficientYear: 2020, c: psa2020}
}

// Position computes the true solar position. The pipeline follows the
// published C code: days from J2000, ecliptic longitude and obliquity
// from short trigonometric series, right ascension and declination,
// local sidereal time from a linear GMST model plus the fractional
// hour, then zenith by the spherical law of cosines with a final
// Earth-radius/AU parallax term added to the zenith angle.
func (p *PSA) Position(o *Observer, t time.Time) SolPos {
	t = t.UTC()
	c := p.c
	if c.gmst[0] == 0 {
		// zero-value PSA: fall back to the default fit
		c = psa2020
	}

	elapsed := julianDay(t) - j2000
	hours := dayHours(t)

	omega := c.omega[0] + c.omega[1]*elapsed
	meanLong := c.meanLong[0] + c.meanLong[1]*elapsed
	meanAnom := c.meanAnom[0] + c.meanAnom[1]*elapsed

	eclipticLong := meanLong + c.ecliptic[0]*math.Sin(meanAnom) +
		c.ecliptic[1]*math.Sin(2*meanAnom) - c.ecliptic[2] -
		c.ecliptic[3]*math.Sin(omega)
	obliquity := c.obliquity[0] + c.obliquity[1]*elapsed +
		c.obliquity[2]*math.Cos(omega)

	sinLong := math.Sin(eclipticLong)
	ra := reg(math.Atan2(math.Cos(obliquity)*sinLong, math.Cos(eclipticLong)))
	decl := math.Asin(math.Sin(obliquity) * sinLong)

	gmst := c.gmst[0] + c.gmst[1]*elapsed + hours
	lmst := (gmst*15 + o.Longitude) * toRad
	hourAngle := lmst - ra

	cosHA := math.Cos(hourAngle)
	zenith := math.Acos(o.cosLat*cosHA*math.Cos(decl) + math.Sin(decl)*o.sinLat)
	azimuth := math.Atan2(-math.Sin(hourAngle), math.Tan(decl)*o.cosLat-o.sinLat*cosHA)
	if azimuth < 0 {
		azimuth += 2 * math.Pi
	}

	// topocentric correction: mean Earth radius over one AU
	zenith += earthMeanRadius / astronomicalUnit * math.Sin(zenith)

	zenDeg := zenith * toDeg
	return SolPos{
		Azimuth:   azimuth * toDeg,
		Elevation: 90 - zenDeg,
		Zenith:    zenDeg,
	}
}
