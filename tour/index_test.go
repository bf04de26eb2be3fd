package tour

import (
	"math"
	"testing"

	"gitlab.com/begraf/tourenblick/geotrack"
)

func TestDecodeSummaryPolylineKnownValue(t *testing.T) {
	// Reference encoding from the polyline format specification.
	points, err := DecodeSummaryPolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []geotrack.Point{
		{Lat: 38.5, Lon: -120.2},
		{Lat: 40.7, Lon: -120.95},
		{Lat: 43.252, Lon: -126.453},
	}

	if len(points) != len(want) {
		t.Fatalf("point count: got %d, want %d", len(points), len(want))
	}
	for i := range want {
		if math.Abs(points[i].Lat-want[i].Lat) > 1e-5 || math.Abs(points[i].Lon-want[i].Lon) > 1e-5 {
			t.Errorf("point %d: got %+v, want %+v", i, points[i], want[i])
		}
	}
}

func TestSummaryPolylineRoundTrip(t *testing.T) {
	points := []geotrack.Point{
		{Lat: 46.0, Lon: 7.0},
		{Lat: 46.1, Lon: 7.2},
		{Lat: 46.0, Lon: 7.4},
	}

	decoded, err := DecodeSummaryPolyline(EncodeSummaryPolyline(points))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(decoded) != len(points) {
		t.Fatalf("point count: got %d, want %d", len(decoded), len(points))
	}
	for i := range points {
		if math.Abs(decoded[i].Lat-points[i].Lat) > 1e-5 || math.Abs(decoded[i].Lon-points[i].Lon) > 1e-5 {
			t.Errorf("point %d: got %+v, want %+v", i, decoded[i], points[i])
		}
	}
}

func TestEncodeSummaryPolylineSimplifies(t *testing.T) {
	// 101 collinear points collapse to the two endpoints.
	var points []geotrack.Point
	for i := 0; i <= 100; i++ {
		points = append(points, geotrack.Point{Lat: 46.0 + float64(i)*0.001, Lon: 7.0})
	}

	decoded, err := DecodeSummaryPolyline(EncodeSummaryPolyline(points))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded) != 2 {
		t.Errorf("simplified point count: got %d, want 2", len(decoded))
	}
}

func TestDecodeSummaryPolylineInvalid(t *testing.T) {
	if _, err := DecodeSummaryPolyline("\x01"); err == nil {
		t.Error("expected error for invalid input")
	}
}
