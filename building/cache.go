package building

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tkrajina/gpxgo/gpx"
	"gitlab.com/begraf/tourenblick/filesystem"
	"gitlab.com/begraf/tourenblick/geotrack"
	"gitlab.com/begraf/tourenblick/tour"
)

// polylineCache is the per-tour cache of the expensive summary fields:
// the simplified encoded polyline and the maximum elevation.
type polylineCache struct {
	SummaryPolyline string `json:"summary_polyline"`
	MaxElevation    int    `json:"max_elevation"`
}

// CacheIsStale reports whether the polyline cache must be regenerated,
// i.e. it is missing or older than the clean GPX.
func CacheIsStale(gpxPath, cachePath string) bool {
	cacheMod, err := filesystem.FileModifiedTime(cachePath)
	if err != nil {
		return true
	}

	return filesystem.NewerThan(gpxPath, cacheMod)
}

// WritePolylineCache computes and stores the summary fields for one
// clean GPX file. Every point with coordinates contributes to the
// polyline; elevation only feeds the maximum.
func WritePolylineCache(gpxPath, cachePath string) error {
	g, err := gpx.ParseFile(gpxPath)
	if err != nil {
		return fmt.Errorf("parse GPX %s: %w", gpxPath, err)
	}

	var (
		points []geotrack.Point
		maxEle float64
	)

	for _, track := range g.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				points = append(points, geotrack.Point{Lat: p.Latitude, Lon: p.Longitude})

				if p.Elevation.NotNull() && p.Elevation.Value() > maxEle {
					maxEle = p.Elevation.Value()
				}
			}
		}
	}

	if len(points) == 0 {
		return fmt.Errorf("%s: %w", gpxPath, geotrack.ErrEmptyTrack)
	}

	cache := polylineCache{
		SummaryPolyline: tour.EncodeSummaryPolyline(points),
		MaxElevation:    int(maxEle),
	}

	data, err := json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("encode polyline cache: %w", err)
	}

	return os.WriteFile(cachePath, data, 0o666)
}

func readPolylineCache(cachePath string) (polylineCache, error) {
	var cache polylineCache

	data, err := os.ReadFile(cachePath)
	if err != nil {
		return cache, err
	}

	if err := json.Unmarshal(data, &cache); err != nil {
		return cache, fmt.Errorf("decode polyline cache: %w", err)
	}

	return cache, nil
}
