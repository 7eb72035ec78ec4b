package sunpos

import (
	"math"
	"testing"
)

func TestNewObserver(t *testing.T) {
	o := NewObserver(45, 10, 250)
	if o.Latitude != 45 || o.Longitude != 10 || o.Altitude != 250 {
		t.Fatalf("observer fields not stored: %+v", o)
	}
	if math.Abs(o.Coord.Lat.Deg()-45) > 1e-12 || math.Abs(o.Coord.Lon.Deg()-10) > 1e-12 {
		t.Errorf("typed coordinates disagree with the degree fields: %v", o.Coord)
	}
	if math.Abs(o.sinLat-math.Sin(45*toRad)) > 1e-15 {
		t.Errorf("sinLat = %v, want sin(45°)", o.sinLat)
	}
	if math.Abs(o.cosLat-math.Cos(45*toRad)) > 1e-15 {
		t.Errorf("cosLat = %v, want cos(45°)", o.cosLat)
	}
}

func TestNewObserverPoleNudge(t *testing.T) {
	north := NewObserver(90, 0, 0)
	if north.Latitude != 90-poleNudge {
		t.Errorf("north pole latitude = %v, want %v", north.Latitude, 90-poleNudge)
	}
	south := NewObserver(-90, 0, 0)
	if south.Latitude != -90+poleNudge {
		t.Errorf("south pole latitude = %v, want %v", south.Latitude, -90+poleNudge)
	}
	// just inside the pole is left alone
	near := NewObserver(89.999999, 0, 0)
	if near.Latitude != 89.999999 {
		t.Errorf("near-pole latitude modified: %v", near.Latitude)
	}
}

func TestNewObserverAcceptsNonphysicalLatitude(t *testing.T) {
	// beyond ±90° is nonphysical but not rejected; the trig just
	// extrapolates
	o := NewObserver(91, 0, 0)
	if o.Latitude != 91 {
		t.Errorf("latitude 91° altered to %v", o.Latitude)
	}
	if math.IsNaN(o.sinLat) || math.IsNaN(o.cosLat) {
		t.Error("trig fields not finite for latitude 91°")
	}
}
