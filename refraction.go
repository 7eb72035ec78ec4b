package sunpos

import "math"

// The six refraction models. Each takes the true elevation in degrees
// and returns a correction in degrees to add to it. All are closed
// forms with no state beyond their construction parameters, and all
// stay finite over the whole [-1°, 90°] range; the small offsets inside
// the tangent arguments keep them away from the 90° pole.

// Hughes is the model from Hughes, Yallop & Hohenkerk, "The Equation
// of Time" lineage as used by the NOAA solar calculator: three
// elevation regimes, each a different form, in arcseconds before the
// pressure/temperature scaling.
type Hughes struct {
	Pressure    float64 // Pa
	Temperature float64 // °C
}

// NewHughes returns the model at the NOAA calculator's reference
// atmosphere, 101325 Pa and 10 °C.
func NewHughes() *Hughes {
	return &Hughes{Pressure: 101325, Temperature: 10}
}

func (h *Hughes) Correction(trueElevation float64) float64 {
	pressure := h.Pressure
	if pressure == 0 {
		pressure = 101325
	}
	el := trueElevation
	var arcsec float64
	switch {
	case el > 85:
		arcsec = 0
	case el > 5:
		te := math.Tan(el * toRad)
		arcsec = 58.1/te - 0.07/(te*te*te) + 0.000086/(te*te*te*te*te)
	case el > -0.575:
		arcsec = 1735 + el*(-518.2+el*(103.4+el*(-12.79+el*0.711)))
	default:
		arcsec = -20.774 / math.Tan(el*toRad)
	}
	return arcsec * (pressure / 101325) * (283 / (273 + h.Temperature)) / 3600
}

// Archer is the fixed-atmosphere perturbation of the zenith cosine
// from Archer, "Comments on 'Calculating the position of the sun'",
// Solar Energy 25 (1980). It crosses zero a little below 90° and so
// returns a small negative correction at the zenith itself.
type Archer struct{}

func (Archer) Correction(trueElevation float64) float64 {
	return 0.05797/(math.Sin(trueElevation*toRad)+0.0931) - 0.05603
}

// Bennett is the single closed form of Bennett, "The calculation of
// astronomical refraction in marine navigation", J. Navigation 35
// (1982): a cotangent in arcminutes with the classic 7.31/(h+4.4)
// argument shift.
type Bennett struct {
	Pressure    float64 // Pa
	Temperature float64 // °C
}

// NewBennett returns the model at 101325 Pa and 10 °C, where the
// scaling factor is within 0.3% of one.
func NewBennett() *Bennett {
	return &Bennett{Pressure: 101325, Temperature: 10}
}

func (b *Bennett) Correction(trueElevation float64) float64 {
	pressure := b.Pressure
	if pressure == 0 {
		pressure = 101325
	}
	el := trueElevation
	arcmin := 1 / math.Tan((el+7.31/(el+4.4))*toRad)
	return arcmin * 0.28 * (pressure / 100) / (b.Temperature + 273) / 60
}

// Michalsky is the correction from Michalsky, "The Astronomical
// Almanac's algorithm for approximate solar position (1950–2050)",
// Solar Energy 40 (1988), at its fixed reference atmosphere. The
// rational form misbehaves below −0.56°, so the correction is clamped
// to 0.56° there.
type Michalsky struct{}

func (Michalsky) Correction(trueElevation float64) float64 {
	el := trueElevation
	switch {
	case el < -0.56:
		return 0.56
	case el < 19.225:
		return 3.51561 * (0.1594 + el*(0.0196+el*0.00002)) /
			(1 + el*(0.505+el*0.0845))
	default:
		return 0.00452 * 3.51561 / math.Tan(el*toRad)
	}
}

// SG2 is the correction used by the SG2 algorithm (Blanc & Wald,
// "The SG2 algorithm for a fast and accurate computation of the
// position of the sun", Solar Energy 86 (2012)): two regimes split at
// −0.01 rad, both computed in radians.
type SG2 struct {
	Pressure    float64 // Pa
	Temperature float64 // °C
}

// NewSG2 returns the model at 101325 Pa and 10 °C.
func NewSG2() *SG2 {
	return &SG2{Pressure: 101325, Temperature: 10}
}

func (s *SG2) Correction(trueElevation float64) float64 {
	pressure := s.Pressure
	if pressure == 0 {
		pressure = 101325
	}
	k := pressure / 100 / 1010 * 283 / (273 + s.Temperature)
	gamma := trueElevation * toRad
	var rad float64
	if gamma > -0.01 {
		rad = k * 2.96706e-4 / math.Tan(gamma+0.0031376/(gamma+0.089186))
	} else {
		rad = -k * 1.005516e-4 / math.Tan(gamma)
	}
	return rad * toDeg
}

// SPARefraction is the SPA report's refraction step as a standalone
// model, usable with any positioning algorithm. Below the horizon
// threshold −(0.26667° + RefractionLimit) the correction is zero.
type SPARefraction struct {
	Pressure    float64 // Pa
	Temperature float64 // °C

	// RefractionLimit is the assumed refraction at sunrise/sunset in
	// degrees; it only moves the cutoff elevation.
	RefractionLimit float64
}

// NewSPARefraction returns the model at 101325 Pa, 12 °C and the
// standard 0.5667° sunrise/sunset refraction, matching NewSPA.
func NewSPARefraction() *SPARefraction {
	return &SPARefraction{Pressure: 101325, Temperature: 12, RefractionLimit: 0.5667}
}

func (r *SPARefraction) Correction(trueElevation float64) float64 {
	pressure, limit := r.Pressure, r.RefractionLimit
	if pressure == 0 {
		pressure = 101325
	}
	if limit == 0 {
		limit = 0.5667
	}
	el := trueElevation
	if el < -(0.26667 + limit) {
		return 0
	}
	return pressure / 100 / 1010 * (283 / (273 + r.Temperature)) *
		1.02 / (60 * math.Tan((el+10.3/(el+5.11))*toRad))
}
