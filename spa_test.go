package sunpos

import (
	"math"
	"testing"
	"time"
)

// the worked example from the SPA report: Golden, Colorado,
// 2003-10-17 12:30:30 local (UTC−7), 1830.14 m, 820 mbar, 11 °C,
// ΔT = 67 s. Published results: topocentric zenith 50.11162°,
// azimuth 194.34024°.
var (
	spaReportObserver = NewObserver(39.742476, -105.1786, 1830.14)
	spaReportInstant  = time.Date(2003, time.October, 17, 19, 30, 30, 0, time.UTC)
	spaReportParams   = &SPA{
		DeltaT:       67,
		Pressure:     82000,
		Temperature:  11,
		AtmosRefract: 0.5667,
	}
)

func TestSPAReportExample(t *testing.T) {
	full := spaReportParams.FullPosition(spaReportObserver, spaReportInstant)
	if math.Abs(full.ApparentZenith-50.11162) > 0.02 {
		t.Errorf("apparent zenith = %f, want 50.11162", full.ApparentZenith)
	}
	if math.Abs(full.Azimuth-194.34024) > 0.02 {
		t.Errorf("azimuth = %f, want 194.34024", full.Azimuth)
	}
	// refraction at ~40° elevation is small and positive
	refr := full.ApparentElevation - full.Elevation
	if refr <= 0 || refr > 0.03 {
		t.Errorf("refraction correction = %f, want a small positive value", refr)
	}
	if math.Abs(full.EquationOfTime-14.64) > 0.1 {
		t.Errorf("equation of time = %f min, want about 14.64", full.EquationOfTime)
	}
}

func TestSPAPositionMatchesFullPosition(t *testing.T) {
	full := spaReportParams.FullPosition(spaReportObserver, spaReportInstant)
	pos := spaReportParams.Position(spaReportObserver, spaReportInstant)
	if pos != full.SolPos {
		t.Errorf("Position %+v differs from FullPosition's true part %+v", pos, full.SolPos)
	}
}

func TestSPAFixture(t *testing.T) {
	full := NewSPA().FullPosition(fixtureObserver, fixtureInstant)
	if angDiff(full.Azimuth, 204.95) > 0.1 {
		t.Errorf("azimuth = %f, want about 204.95", full.Azimuth)
	}
	if full.Elevation < 32.0 || full.Elevation > 32.5 {
		t.Errorf("elevation = %f, want about 32.2", full.Elevation)
	}
	if math.Abs(full.ApparentZenith-(90-full.ApparentElevation)) > 1e-12 {
		t.Error("apparent zenith is not the complement of apparent elevation")
	}
	if math.Abs(full.EquationOfTime-14.8) > 0.3 {
		t.Errorf("equation of time = %f min, want about 14.8 in mid October", full.EquationOfTime)
	}
}

func TestSPANoRefractionBelowThreshold(t *testing.T) {
	// deep night: the correction cuts off below the horizon threshold,
	// so apparent and true elevation coincide
	at := time.Date(2020, time.October, 17, 0, 30, 0, 0, time.UTC)
	full := NewSPA().FullPosition(fixtureObserver, at)
	if full.Elevation > -10 {
		t.Fatalf("elevation = %f, expected deep night", full.Elevation)
	}
	if full.ApparentElevation != full.Elevation {
		t.Errorf("apparent %f differs from true %f below the refraction cutoff", full.ApparentElevation, full.Elevation)
	}
}

func TestSPANearZenithRefractionTiny(t *testing.T) {
	// subsolar conditions: equatorial observer, March equinox noon
	o := NewObserver(0, 0, 0)
	at := time.Date(2024, time.March, 20, 12, 8, 0, 0, time.UTC)
	full := NewSPA().FullPosition(o, at)
	if full.Elevation < 85 {
		t.Fatalf("elevation = %f, expected the sun nearly overhead", full.Elevation)
	}
	if math.Abs(full.ApparentElevation-full.Elevation) > 1e-3 {
		t.Errorf("refraction = %f near the zenith, want below 0.001°", full.ApparentElevation-full.Elevation)
	}
}

func TestSPAAltitudeParallax(t *testing.T) {
	// parallax depends on the observer radius; sea level and an
	// 8000 m observer must differ, but only by fractions of an arcsecond
	low := NewObserver(45, 10, 0)
	high := NewObserver(45, 10, 8000)
	a := NewSPA().Position(low, fixtureInstant)
	b := NewSPA().Position(high, fixtureInstant)
	if a == b {
		t.Error("altitude has no effect on the topocentric position")
	}
	if math.Abs(a.Elevation-b.Elevation) > 0.01 {
		t.Errorf("8 km of altitude moved elevation by %f°", a.Elevation-b.Elevation)
	}
}
