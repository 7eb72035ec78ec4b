package sunpos

import (
	"math"
	"testing"
	"time"
)

// angDiff returns the magnitude of the angular difference in degrees,
// accounting for the 0/360 wrap.
func angDiff(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 360))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// the shared reference condition used across the algorithm tests
var (
	fixtureObserver = NewObserver(45, 10, 0)
	fixtureInstant  = time.Date(2020, time.October, 17, 12, 30, 0, 0, time.UTC)
)

func allAlgorithms(t *testing.T) map[string]Positioner {
	t.Helper()
	usno, err := NewUSNO(1)
	if err != nil {
		t.Fatal(err)
	}
	return map[string]Positioner{
		"psa":      DefaultPSA(),
		"noaa":     NewNOAA(),
		"walraven": Walraven{},
		"usno":     usno,
		"spa":      NewSPA(),
	}
}

func TestAlgorithmsAgreeAtFixture(t *testing.T) {
	for name, alg := range allAlgorithms(t) {
		t.Run(name, func(t *testing.T) {
			pos := alg.Position(fixtureObserver, fixtureInstant)
			if angDiff(pos.Azimuth, 204.95) > 0.3 {
				t.Errorf("azimuth = %f, want about 204.95", pos.Azimuth)
			}
			if pos.Elevation < 31.9 || pos.Elevation > 32.7 {
				t.Errorf("elevation = %f, want about 32.2", pos.Elevation)
			}
		})
	}
}

func TestAlgorithmsAgreePairwise(t *testing.T) {
	observers := []*Observer{
		NewObserver(-60, -120, 0),
		NewObserver(-35, 150, 0),
		NewObserver(0, 0, 0),
		NewObserver(45, 10, 0),
		NewObserver(60, -45, 0),
	}
	instants := []time.Time{
		time.Date(2005, time.February, 3, 8, 0, 0, 0, time.UTC),
		time.Date(2012, time.June, 21, 18, 15, 0, 0, time.UTC),
		time.Date(2020, time.October, 17, 12, 30, 0, 0, time.UTC),
		time.Date(2024, time.December, 25, 3, 45, 0, 0, time.UTC),
	}
	algs := allAlgorithms(t)
	ref := algs["noaa"]
	for name, alg := range algs {
		if name == "noaa" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			for _, o := range observers {
				for _, at := range instants {
					want := ref.Position(o, at)
					got := alg.Position(o, at)
					if math.Abs(got.Elevation-want.Elevation) > 0.3 {
						t.Errorf("lat %.0f lon %.0f %s: elevation %f vs noaa %f",
							o.Latitude, o.Longitude, at.Format(time.RFC3339), got.Elevation, want.Elevation)
					}
					// azimuth is ill-conditioned with the sun near the
					// zenith; skip the comparison there
					if want.Elevation < 80 && angDiff(got.Azimuth, want.Azimuth) > 0.5 {
						t.Errorf("lat %.0f lon %.0f %s: azimuth %f vs noaa %f",
							o.Latitude, o.Longitude, at.Format(time.RFC3339), got.Azimuth, want.Azimuth)
					}
				}
			}
		})
	}
}

func TestAlgorithmsFiniteInDegenerateGeometry(t *testing.T) {
	observers := []*Observer{
		NewObserver(90, 0, 0),   // nudged pole
		NewObserver(-90, 45, 0), // nudged pole
		NewObserver(70, 0, 0),   // polar night in December
	}
	at := time.Date(2021, time.December, 21, 12, 0, 0, 0, time.UTC)
	for name, alg := range allAlgorithms(t) {
		t.Run(name, func(t *testing.T) {
			for _, o := range observers {
				pos := alg.Position(o, at)
				for field, v := range map[string]float64{
					"azimuth": pos.Azimuth, "elevation": pos.Elevation, "zenith": pos.Zenith,
				} {
					if math.IsNaN(v) || math.IsInf(v, 0) {
						t.Errorf("lat %.0f: %s = %f", o.Latitude, field, v)
					}
				}
			}
		})
	}
}

func TestAlgorithmsDeterministic(t *testing.T) {
	for name, alg := range allAlgorithms(t) {
		t.Run(name, func(t *testing.T) {
			a := alg.Position(fixtureObserver, fixtureInstant)
			b := alg.Position(fixtureObserver, fixtureInstant)
			if a != b {
				t.Errorf("two identical calls disagree: %+v vs %+v", a, b)
			}
		})
	}
}

func TestZenithComplement(t *testing.T) {
	for name, alg := range allAlgorithms(t) {
		t.Run(name, func(t *testing.T) {
			pos := alg.Position(fixtureObserver, fixtureInstant)
			if math.Abs(pos.Zenith-(90-pos.Elevation)) > 1e-12 {
				t.Errorf("zenith %f is not the complement of elevation %f", pos.Zenith, pos.Elevation)
			}
		})
	}
}

func TestShape(t *testing.T) {
	usno, _ := NewUSNO(2)
	tests := []struct {
		name string
		alg  Positioner
		refr Refractor
		want Kind
	}{
		{"nil/nil", nil, nil, KindBasic},
		{"psa/nil", DefaultPSA(), nil, KindBasic},
		{"usno/hughes", usno, NewHughes(), KindApparent},
		{"nil/bennett", nil, NewBennett(), KindApparent},
		{"spa/nil", NewSPA(), nil, KindSPA},
		{"spa/hughes", NewSPA(), NewHughes(), KindSPA},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Shape(tc.alg, tc.refr); got != tc.want {
				t.Errorf("Shape = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindBasic.String() != "basic" || KindApparent.String() != "apparent" || KindSPA.String() != "spa" {
		t.Error("kind names changed")
	}
	if Kind(42).String() != "unknown" {
		t.Error("out-of-range kind not reported as unknown")
	}
}

func TestSolarPositionDefaultsToPSA(t *testing.T) {
	got := SolarPosition(fixtureObserver, fixtureInstant, nil, nil)
	want := DefaultPSA().Position(fixtureObserver, fixtureInstant)
	if got.Kind != KindBasic {
		t.Fatalf("kind = %v, want basic", got.Kind)
	}
	if got.SolPos != want {
		t.Errorf("nil algorithm result %+v differs from PSA %+v", got.SolPos, want)
	}
	if got.ApparentElevation != 0 || got.ApparentZenith != 0 || got.EquationOfTime != 0 {
		t.Error("basic result carries non-zero apparent fields")
	}
}

func TestSolarPositionApparent(t *testing.T) {
	refr := NewBennett()
	got := SolarPosition(fixtureObserver, fixtureInstant, NewNOAA(), refr)
	if got.Kind != KindApparent {
		t.Fatalf("kind = %v, want apparent", got.Kind)
	}
	want := got.Elevation + refr.Correction(got.Elevation)
	if math.Abs(got.ApparentElevation-want) > 1e-12 {
		t.Errorf("apparent elevation = %f, want %f", got.ApparentElevation, want)
	}
	if math.Abs(got.ApparentZenith-(90-got.ApparentElevation)) > 1e-12 {
		t.Error("apparent zenith is not the complement of apparent elevation")
	}
	if got.ApparentElevation <= got.Elevation {
		t.Error("refraction should lift the apparent elevation above the true one here")
	}
}

func TestSolarPositionSPAIgnoresExternalRefraction(t *testing.T) {
	withRefr := SolarPosition(fixtureObserver, fixtureInstant, NewSPA(), NewHughes())
	without := SolarPosition(fixtureObserver, fixtureInstant, NewSPA(), nil)
	if withRefr.Kind != KindSPA || without.Kind != KindSPA {
		t.Fatalf("kinds = %v, %v, want spa", withRefr.Kind, without.Kind)
	}
	if withRefr != without {
		t.Errorf("external refraction changed the SPA result: %+v vs %+v", withRefr, without)
	}
}
