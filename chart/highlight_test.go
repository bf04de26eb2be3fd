package chart

import (
	"strings"
	"testing"

	"gitlab.com/begraf/tourenblick/geotrack"
)

func TestNearestPointTieBreaksEarlier(t *testing.T) {
	points := []ProjectedPoint{
		{X: 100, TrackIndex: 0},
		{X: 200, TrackIndex: 0},
	}

	// 150 is exactly between both points; the earlier one wins.
	p, ok := NearestPoint(points, 150)
	if !ok {
		t.Fatal("no match")
	}
	if p.X != 100 {
		t.Errorf("tie-break: got x=%v, want 100", p.X)
	}
}

func TestNearestPointEmpty(t *testing.T) {
	if _, ok := NearestPoint(nil, 100); ok {
		t.Error("match on empty point set")
	}
}

func TestHighlightAtOutsidePlottingArea(t *testing.T) {
	track := geotrack.Track{
		{Lat: 46.0, Lon: 7.0, Elevation: 1000},
		{Lat: 46.05, Lon: 7.0, Elevation: 1300},
	}
	c := projectTracks(t, []geotrack.Track{track}, 800, 400)

	if h := c.HighlightAt(Padding - 1); h != nil {
		t.Errorf("highlight left of plot: %+v", h)
	}
	if h := c.HighlightAt(float64(c.Width) - Padding + 1); h != nil {
		t.Errorf("highlight right of plot: %+v", h)
	}
}

func TestHighlightAtRightmostPixel(t *testing.T) {
	track := geotrack.Track{
		{Lat: 46.0, Lon: 7.0, Elevation: 1000},
		{Lat: 46.01, Lon: 7.0, Elevation: 1100},
	}
	c := projectTracks(t, []geotrack.Track{track}, 800, 400)

	h := c.HighlightAt(float64(c.Width) - Padding)
	if h == nil {
		t.Fatal("no highlight at rightmost plotting pixel")
	}
	if h.Point.Elevation != 1100 {
		t.Errorf("matched point: got elevation %v, want 1100", h.Point.Elevation)
	}
	if h.TrackNumber != 1 {
		t.Errorf("track number: got %d, want 1", h.TrackNumber)
	}
	if h.Color != c.TrackColor(0) {
		t.Errorf("highlight color: got %s, want track color %s", h.Color, c.TrackColor(0))
	}
}

func TestHighlightColorFollowsTrack(t *testing.T) {
	tracks := []geotrack.Track{
		{
			{Lat: 46.00, Lon: 7.0, Elevation: 1000},
			{Lat: 46.02, Lon: 7.0, Elevation: 1100},
		},
		{
			{Lat: 46.03, Lon: 7.0, Elevation: 1150},
			{Lat: 46.05, Lon: 7.0, Elevation: 1250},
		},
	}
	c := projectTracks(t, tracks, 800, 400)

	h := c.HighlightAt(float64(c.Width) - Padding)
	if h == nil {
		t.Fatal("no highlight")
	}
	if h.TrackNumber != 2 {
		t.Errorf("track number: got %d, want 2", h.TrackNumber)
	}
	if h.Color != c.TrackColor(1) {
		t.Errorf("color: got %s, want second track color", h.Color)
	}
}

func TestTooltip(t *testing.T) {
	h := &Highlight{
		Point:       ProjectedPoint{Elevation: 1234, DistanceKm: 5.678},
		TrackNumber: 2,
	}

	tip := h.Tooltip()
	for _, want := range []string{"1234 m", "5.68 km", "track 2"} {
		if !strings.Contains(tip, want) {
			t.Errorf("tooltip %q missing %q", tip, want)
		}
	}
}
