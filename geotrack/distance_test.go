package geotrack

import (
	"math"
	"testing"
)

func TestDistanceMetersIdentity(t *testing.T) {
	for _, p := range []Point{
		{Lat: 46.0, Lon: 7.0},
		{Lat: -33.9, Lon: 151.2},
		{Lat: 0, Lon: 0},
	} {
		if d := DistanceMeters(p.Lat, p.Lon, p.Lat, p.Lon); d != 0 {
			t.Errorf("distance of point to itself: got %v, want 0", d)
		}
	}
}

func TestDistanceMetersSymmetry(t *testing.T) {
	d1 := DistanceMeters(46.0, 7.0, 47.2, 8.5)
	d2 := DistanceMeters(47.2, 8.5, 46.0, 7.0)

	if d1 != d2 {
		t.Errorf("asymmetric distance: %v != %v", d1, d2)
	}
}

func TestDistanceMetersOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is roughly 111195 m on a 6371 km sphere.
	d := DistanceMeters(46.0, 7.0, 47.0, 7.0)

	want := 111195.0
	if math.Abs(d-want) > want*0.01 {
		t.Errorf("one degree of latitude: got %v, want %v within 1%%", d, want)
	}
}

func TestDistanceMetersNaNPropagates(t *testing.T) {
	d := DistanceMeters(math.NaN(), 7.0, 46.0, 7.0)
	if !math.IsNaN(d) {
		t.Errorf("expected NaN distance, got %v", d)
	}
}
