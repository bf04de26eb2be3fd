package geotrack

import "math"

// Stats aggregates distance and elevation figures over a flattened point
// sequence. An empty sequence yields zero distance and gain with
// MinElevation = +Inf and MaxElevation = -Inf; callers guard the
// degenerate case before display.
type Stats struct {
	DistanceKm    float64
	ElevationGain float64
	MaxElevation  float64
	MinElevation  float64
}

// ComputeStats walks consecutive point pairs accumulating great-circle
// distance and cumulative ascent. Only positive elevation deltas count
// towards the gain; descents contribute nothing.
//
// Points with an elevation of exactly 0 do not participate in the
// min/max scan. That matches the historic behavior of the site this
// data feeds; see DESIGN.md before changing it.
func ComputeStats(points []Point) Stats {
	stats := Stats{
		MinElevation: math.Inf(1),
		MaxElevation: math.Inf(-1),
	}

	var meters float64
	for i := 1; i < len(points); i++ {
		meters += DistanceMeters(points[i-1].Lat, points[i-1].Lon, points[i].Lat, points[i].Lon)

		if delta := points[i].Elevation - points[i-1].Elevation; delta > 0 {
			stats.ElevationGain += delta
		}
	}

	stats.DistanceKm = meters / 1000

	for _, p := range points {
		if p.Elevation == 0 {
			continue
		}

		stats.MinElevation = math.Min(stats.MinElevation, p.Elevation)
		stats.MaxElevation = math.Max(stats.MaxElevation, p.Elevation)
	}

	return stats
}
