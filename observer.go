package sunpos

import (
	"log"
	"math"

	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/unit"
)

// poleNudge is how far an observer sitting exactly on a pole is moved
// toward the equator. tan(latitude) appears in several downstream
// formulas and is singular at ±90°.
const poleNudge = 1e-6

// Observer is an immutable observing site. The trigonometric values
// every algorithm consumes repeatedly are computed once at
// construction, as are the SPA topocentric-parallax terms, which depend
// only on latitude and altitude.
type Observer struct {
	// Coord carries the typed latitude/longitude pair.
	Coord globe.Coord

	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	Altitude  float64 // metres above mean sea level

	latRad, lonRad float64
	sinLat, cosLat float64

	// parallax terms from the SPA reduction (Reda & Andreas §3.12.3)
	spaX, spaY float64
}

// NewObserver builds an observer for the given site. Latitude exactly
// at ±90° is nudged 1e-6° toward the equator with a warning. Latitudes
// beyond ±90° are nonphysical but accepted; the formulas extrapolate.
func NewObserver(latitude, longitude, altitude float64) *Observer {
	switch latitude {
	case 90:
		latitude -= poleNudge
		log.Printf("sunpos: observer latitude at +90° adjusted to %.6f° to avoid a pole singularity", latitude)
	case -90:
		latitude += poleNudge
		log.Printf("sunpos: observer latitude at -90° adjusted to %.6f° to avoid a pole singularity", latitude)
	}

	o := &Observer{
		Coord: globe.Coord{
			Lat: unit.AngleFromDeg(latitude),
			Lon: unit.AngleFromDeg(longitude),
		},
		Latitude:  latitude,
		Longitude: longitude,
		Altitude:  altitude,
	}
	o.latRad = o.Coord.Lat.Rad()
	o.lonRad = o.Coord.Lon.Rad()
	o.sinLat, o.cosLat = math.Sincos(o.latRad)

	u := math.Atan(0.99664719 * math.Tan(o.latRad))
	o.spaX = math.Cos(u) + altitude/6378140*o.cosLat
	o.spaY = 0.99664719*math.Sin(u) + altitude/6378140*o.sinLat

	return o
}
