package sunpos

import (
	"math"
	"testing"
)

func TestNewPSA(t *testing.T) {
	for _, year := range []int{2001, 2020} {
		p, err := NewPSA(year)
		if err != nil {
			t.Fatalf("NewPSA(%d): %v", year, err)
		}
		if p.CoefficientYear != year {
			t.Errorf("coefficient year = %d, want %d", p.CoefficientYear, year)
		}
	}
	for _, year := range []int{0, 1999, 2019, 2021} {
		if _, err := NewPSA(year); err == nil {
			t.Errorf("NewPSA(%d) accepted an unknown coefficient set", year)
		}
	}
}

func TestPSACoefficientSetsAgree(t *testing.T) {
	// the refit moves results by well under a hundredth of a degree
	// inside the shared validity years
	old, _ := NewPSA(2001)
	cur, _ := NewPSA(2020)
	a := old.Position(fixtureObserver, fixtureInstant)
	b := cur.Position(fixtureObserver, fixtureInstant)
	if angDiff(a.Azimuth, b.Azimuth) > 0.05 || math.Abs(a.Elevation-b.Elevation) > 0.05 {
		t.Errorf("2001 fit %+v and 2020 fit %+v diverge", a, b)
	}
}

func TestPSAZeroValueUsesDefaultFit(t *testing.T) {
	var zero PSA
	got := zero.Position(fixtureObserver, fixtureInstant)
	want := DefaultPSA().Position(fixtureObserver, fixtureInstant)
	if got != want {
		t.Errorf("zero-value PSA %+v differs from the 2020 default %+v", got, want)
	}
}

func TestPSANightElevationNegative(t *testing.T) {
	at := fixtureInstant.Add(-12 * 3600e9) // 00:30 UTC, deep night at 10°E
	pos := DefaultPSA().Position(fixtureObserver, at)
	if pos.Elevation >= 0 {
		t.Errorf("elevation = %f at local midnight, want negative", pos.Elevation)
	}
}
