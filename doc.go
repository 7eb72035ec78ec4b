// Copyright 2025, Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

/*
Package sunpos computes the apparent position of the sun (azimuth,
elevation, zenith angle) for an observer and an instant, using one of
several interchangeable closed-form algorithms, with optional
atmospheric-refraction correction layered on top.

Five positioning algorithms are provided, each an independent published
derivation with its own accuracy claim:

  - PSA (Blanco-Muriel et al. 2001, updated coefficients Blanco et al.
    2020), ±0.01° / ±0.0083°
  - NOAA (the NOAA solar calculator's Meeus-style reduction), ~±0.01°
  - Walraven (Solar Energy 20, 1978, with the 1989 quadrant erratum)
  - USNO (the "Approximate Solar Coordinates" reduction from the
    Astronomical Almanac / aa.usno.navy.mil)
  - SPA (Reda & Andreas, NREL TP-560-34302), ±0.0003°, including
    topocentric parallax, its own refraction correction, and the
    equation of time

Six refraction models (Hughes, Archer, Bennett, Michalsky, SG2, and the
standalone SPA correction) convert true elevation to apparent elevation.

All angles cross the package boundary in degrees; azimuth is measured
from north, increasing clockwise (east positive). Pressure is in
pascals, temperature in degrees Celsius, ΔT in seconds, equation of time
in minutes. Instants are UTC; zone-aware times are converted before any
computation. Every computation is a pure function of its arguments, so
all entry points are safe for concurrent use.

A typical scalar call:

	obs := sunpos.NewObserver(45, 10, 0)
	res := sunpos.SolarPosition(obs, t, sunpos.DefaultPSA(), sunpos.NewHughes())
	fmt.Printf("azimuth %.2f° apparent elevation %.2f°\n", res.Azimuth, res.ApparentElevation)

Series and SeriesInto vectorize over a slice of instants, and
Table.AppendPositions augments a columnar table keyed by a timestamp
column. The cmd/sunpath tool prints a daily sun-path forecast table.
*/
package sunpos
