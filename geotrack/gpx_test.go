package geotrack

import (
	"errors"
	"testing"
)

const gpxHeader = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="tourenblick" xmlns="http://www.topografix.com/GPX/1/1">`

func TestParseGPXDropsPointsWithoutElevation(t *testing.T) {
	doc := gpxHeader + `
	<trk><trkseg>
		<trkpt lat="46.0" lon="7.0"><ele>1000</ele></trkpt>
		<trkpt lat="46.001" lon="7.0"></trkpt>
		<trkpt lat="46.002" lon="7.0"><ele>1010</ele></trkpt>
	</trkseg></trk>
	</gpx>`

	tourData, err := ParseGPX([]byte(doc), "sample.gpx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tourData.Tracks) != 1 {
		t.Fatalf("track count: got %d, want 1", len(tourData.Tracks))
	}
	if got := len(tourData.Tracks[0]); got != 2 {
		t.Errorf("point count: got %d, want 2", got)
	}
}

func TestParseGPXAllPointsWithoutElevation(t *testing.T) {
	doc := gpxHeader + `
	<trk><trkseg>
		<trkpt lat="46.0" lon="7.0"></trkpt>
		<trkpt lat="46.001" lon="7.0"></trkpt>
	</trkseg></trk>
	</gpx>`

	_, err := ParseGPX([]byte(doc), "sample.gpx")
	if !errors.Is(err, ErrEmptyTrack) {
		t.Errorf("got %v, want ErrEmptyTrack", err)
	}
}

func TestParseGPXMalformed(t *testing.T) {
	_, err := ParseGPX([]byte("<gpx><trk>"), "broken.gpx")
	if !errors.Is(err, ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}

func TestParseGPXNamePrecedence(t *testing.T) {
	withMetadata := gpxHeader + `
	<metadata><name>Grand Combin</name><desc>Long ridge</desc><keywords>July 2024</keywords></metadata>
	<trk><name>Day 1</name><trkseg>
		<trkpt lat="46.0" lon="7.0"><ele>1000</ele></trkpt>
	</trkseg></trk>
	</gpx>`

	tourData, err := ParseGPX([]byte(withMetadata), "grand_combin.gpx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tourData.Name != "Grand Combin" {
		t.Errorf("name: got %q, want metadata name", tourData.Name)
	}
	if tourData.Description != "Long ridge" {
		t.Errorf("description: got %q", tourData.Description)
	}
	if tourData.Date != "July 2024" {
		t.Errorf("date: got %q", tourData.Date)
	}

	trackNameOnly := gpxHeader + `
	<trk><name>Day 1</name><trkseg>
		<trkpt lat="46.0" lon="7.0"><ele>1000</ele></trkpt>
	</trkseg></trk>
	</gpx>`

	tourData, err = ParseGPX([]byte(trackNameOnly), "grand_combin.gpx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tourData.Name != "Day 1" {
		t.Errorf("name: got %q, want first track name", tourData.Name)
	}

	nameless := gpxHeader + `
	<trk><trkseg>
		<trkpt lat="46.0" lon="7.0"><ele>1000</ele></trkpt>
	</trkseg></trk>
	</gpx>`

	tourData, err = ParseGPX([]byte(nameless), "grand_combin.gpx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tourData.Name != "grand combin" {
		t.Errorf("name: got %q, want file-derived name", tourData.Name)
	}
}

func TestParseGPXMultipleTracks(t *testing.T) {
	doc := gpxHeader + `
	<trk><trkseg>
		<trkpt lat="46.0" lon="7.0"><ele>1000</ele></trkpt>
		<trkpt lat="46.01" lon="7.0"><ele>1100</ele></trkpt>
	</trkseg></trk>
	<trk><trkseg>
		<trkpt lat="46.02" lon="7.0"></trkpt>
	</trkseg></trk>
	<trk><trkseg>
		<trkpt lat="46.03" lon="7.0"><ele>1200</ele></trkpt>
	</trkseg></trk>
	</gpx>`

	tourData, err := ParseGPX([]byte(doc), "multi.gpx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The middle track has no usable point and disappears.
	if len(tourData.Tracks) != 2 {
		t.Fatalf("track count: got %d, want 2", len(tourData.Tracks))
	}
	if tourData.Tracks[1][0].Elevation != 1200 {
		t.Errorf("second track elevation: got %v", tourData.Tracks[1][0].Elevation)
	}
}
