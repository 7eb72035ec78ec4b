// Copyright 2025, Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

package sunpos

import (
	"log"
	"time"
)

// SolPos is the true (geometric) position of the sun. Azimuth is in
// degrees from north, increasing clockwise; elevation is degrees above
// the horizon; Zenith = 90 − Elevation always.
type SolPos struct {
	Azimuth   float64
	Elevation float64
	Zenith    float64
}

// ApparentSolPos is a SolPos plus the refraction-corrected elevation
// and its zenith complement.
type ApparentSolPos struct {
	SolPos
	ApparentElevation float64
	ApparentZenith    float64
}

// SPASolPos is the full SPA result: apparent position plus the
// equation of time in minutes.
type SPASolPos struct {
	ApparentSolPos
	EquationOfTime float64
}

// Positioner is the capability every positioning algorithm implements:
// compute the true solar position for an observer at an instant, using
// its own immutable parameters.
type Positioner interface {
	Position(o *Observer, t time.Time) SolPos
}

// Refractor is a closed-form atmospheric refraction model. Correction
// takes the true elevation in degrees and returns the correction in
// degrees to add to it.
type Refractor interface {
	Correction(trueElevation float64) float64
}

// Kind reports which fields of a Result are meaningful.
type Kind int

const (
	// KindBasic: SolPos fields only.
	KindBasic Kind = iota
	// KindApparent: SolPos plus ApparentElevation/ApparentZenith.
	KindApparent
	// KindSPA: everything, including EquationOfTime.
	KindSPA
)

var kindNames = []string{"basic", "apparent", "spa"}

func (k Kind) String() string {
	if k < KindBasic || k > KindSPA {
		return "unknown"
	}
	return kindNames[k]
}

// Result is the union of the three result shapes. Kind tells which
// fields past the embedded SolPos carry a value.
type Result struct {
	Kind Kind
	SolPos
	ApparentElevation float64
	ApparentZenith    float64
	EquationOfTime    float64 // minutes
}

// Shape maps an algorithm/refraction combination to the result shape
// SolarPosition will produce for it. SPA always yields KindSPA; its
// built-in refraction is authoritative.
func Shape(alg Positioner, refr Refractor) Kind {
	if _, ok := alg.(*SPA); ok {
		return KindSPA
	}
	if refr == nil {
		return KindBasic
	}
	return KindApparent
}

// SolarPosition computes the solar position for one instant. A nil
// algorithm selects PSA with its default (2020) coefficients; a nil
// refraction model leaves the result uncorrected. Combining SPA with an
// external refraction model logs a warning and keeps SPA's own
// correction.
func SolarPosition(o *Observer, t time.Time, alg Positioner, refr Refractor) Result {
	if alg == nil {
		alg = DefaultPSA()
	}
	if s, ok := alg.(*SPA); ok {
		if refr != nil {
			log.Printf("sunpos: SPA applies its own refraction correction; external %T ignored", refr)
		}
		return s.result(o, t)
	}
	pos := alg.Position(o, t)
	if refr == nil {
		return Result{Kind: KindBasic, SolPos: pos}
	}
	apparent := pos.Elevation + refr.Correction(pos.Elevation)
	return Result{
		Kind:              KindApparent,
		SolPos:            pos,
		ApparentElevation: apparent,
		ApparentZenith:    90 - apparent,
	}
}
